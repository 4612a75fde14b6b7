package service

import (
	"github.com/achyut02/Ai-Placement-Tracker/internal/apperror"
	"github.com/achyut02/Ai-Placement-Tracker/internal/dto"
	"github.com/achyut02/Ai-Placement-Tracker/internal/model"
	"github.com/achyut02/Ai-Placement-Tracker/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

const (
	recentInterviewsLimit = 5
	defaultHistoryLimit   = 10
	maxHistoryLimit       = 100
)

// StatsService assembles the dashboard aggregates and paginated history.
type StatsService interface {
	GetProgress(userID uint) (*dto.ProgressResponse, error)
	GetHistory(userID uint, topicID string, page, limit int) (*dto.HistoryResponse, error)
}

type statsService struct {
	interviewRepo repository.InterviewRepository
}

func NewStatsService(interviewRepo repository.InterviewRepository) StatsService {
	return &statsService{interviewRepo: interviewRepo}
}

func (s *statsService) GetProgress(userID uint) (*dto.ProgressResponse, error) {
	stats, err := s.interviewRepo.GetUserStats(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetProgress: stats aggregation failed")
		return nil, apperror.From(err, "")
	}

	recent, err := s.interviewRepo.FindRecent(userID, recentInterviewsLimit)
	if err != nil {
		return nil, apperror.From(err, "")
	}

	return &dto.ProgressResponse{
		UserStats:        *stats,
		RecentInterviews: toSummaries(recent),
	}, nil
}

func (s *statsService) GetHistory(userID uint, topicID string, page, limit int) (*dto.HistoryResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	interviews, total, err := s.interviewRepo.FindPage(userID, topicID, page, limit)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetHistory: page fetch failed")
		return nil, apperror.From(err, "")
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return &dto.HistoryResponse{
		Interviews: toSummaries(interviews),
		Pagination: dto.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

func toSummaries(interviews []model.Interview) []dto.InterviewSummary {
	summaries := make([]dto.InterviewSummary, 0, len(interviews))
	for i := range interviews {
		var summary dto.InterviewSummary
		if err := copier.Copy(&summary, &interviews[i]); err != nil {
			log.Warn().Err(err).Uint("interviewID", interviews[i].ID).Msg("Failed to copy interview to summary")
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
