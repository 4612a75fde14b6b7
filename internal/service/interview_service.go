package service

import (
	"context"

	"github.com/achyut02/Ai-Placement-Tracker/internal/apperror"
	"github.com/achyut02/Ai-Placement-Tracker/internal/dto"
	"github.com/achyut02/Ai-Placement-Tracker/internal/model"
	"github.com/achyut02/Ai-Placement-Tracker/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// InterviewService coordinates one stateless exchange at a time: question
// generation, answer scoring with persistence, and record fetch/delete.
// Session state (the running question count, accumulated scores) lives
// entirely on the client; requests are correlated only by the session id.
type InterviewService interface {
	StartInterview(ctx context.Context, userID uint, req dto.StartInterviewRequest) (*dto.StartInterviewResponse, error)
	GenerateQuestion(ctx context.Context, req dto.GenerateQuestionRequest) (*dto.QuestionResponse, error)
	SubmitAnswer(ctx context.Context, userID uint, req dto.SubmitAnswerRequest) (*dto.AnswerResponse, error)
	GetInterview(userID, interviewID uint) (*dto.InterviewResponse, error)
	DeleteInterview(userID, interviewID uint) error
}

type interviewService struct {
	interviewRepo repository.InterviewRepository
	userRepo      repository.UserRepository
	aiService     InterviewAIService
}

func NewInterviewService(
	interviewRepo repository.InterviewRepository,
	userRepo repository.UserRepository,
	aiService InterviewAIService,
) InterviewService {
	return &interviewService{
		interviewRepo: interviewRepo,
		userRepo:      userRepo,
		aiService:     aiService,
	}
}

func (s *interviewService) StartInterview(ctx context.Context, userID uint, req dto.StartInterviewRequest) (*dto.StartInterviewResponse, error) {
	if !model.IsValidTopicID(req.TopicID) {
		// Unknown codes are allowed through; the catalog is advisory.
		log.Warn().Str("topicId", req.TopicID).Msg("StartInterview: topic id not in catalog")
	}

	question, err := s.aiService.GenerateQuestion(ctx, req.Topic)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	log.Info().Uint("userID", userID).Str("sessionID", sessionID).Str("topic", req.Topic).Msg("Interview session started")

	return &dto.StartInterviewResponse{
		Question:  question,
		SessionID: sessionID,
		Topic:     req.Topic,
		TopicID:   req.TopicID,
	}, nil
}

func (s *interviewService) GenerateQuestion(ctx context.Context, req dto.GenerateQuestionRequest) (*dto.QuestionResponse, error) {
	question, err := s.aiService.GenerateQuestion(ctx, req.Topic)
	if err != nil {
		return nil, err
	}
	return &dto.QuestionResponse{Question: question}, nil
}

// SubmitAnswer scores the answer, persists the record and recomputes the
// owner's summary. The record write and the summary recompute are two
// independently committed steps; a crash between them leaves a stale summary
// that self-corrects on the next recompute.
func (s *interviewService) SubmitAnswer(ctx context.Context, userID uint, req dto.SubmitAnswerRequest) (*dto.AnswerResponse, error) {
	score, feedback, err := s.aiService.ScoreAnswer(ctx, req.Question, req.Answer, req.Topic)
	if err != nil {
		return nil, err
	}

	difficulty := model.DifficultyMedium
	if topic, ok := model.TopicByID(req.TopicID); ok {
		difficulty = catalogDifficultyTag(topic.Difficulty)
	}

	interview := &model.Interview{
		UserID:      userID,
		Topic:       req.Topic,
		TopicID:     req.TopicID,
		Question:    req.Question,
		Answer:      req.Answer,
		Feedback:    feedback,
		Score:       score,
		Difficulty:  difficulty,
		Duration:    req.Duration,
		IsCompleted: true,
		SessionID:   req.SessionID,
	}
	if err := s.interviewRepo.Create(interview); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("SubmitAnswer: failed to persist interview record")
		return nil, apperror.From(err, "")
	}

	if err := s.userRepo.RecomputeSummary(userID); err != nil {
		// The stored record is the source of truth; the summary catches up
		// on the next recompute trigger.
		log.Warn().Err(err).Uint("userID", userID).Msg("SubmitAnswer: summary recompute failed")
	}

	return &dto.AnswerResponse{
		Feedback:    feedback,
		Score:       score,
		InterviewID: interview.ID,
	}, nil
}

func (s *interviewService) GetInterview(userID, interviewID uint) (*dto.InterviewResponse, error) {
	interview, err := s.interviewRepo.FindByIDAndUser(interviewID, userID)
	if err != nil {
		return nil, apperror.From(err, "Interview not found")
	}

	var resp dto.InterviewResponse
	if err := copier.Copy(&resp, interview); err != nil {
		return nil, apperror.Internal("Failed to prepare response", err)
	}
	return &resp, nil
}

func (s *interviewService) DeleteInterview(userID, interviewID uint) error {
	if err := s.interviewRepo.DeleteByIDAndUser(interviewID, userID); err != nil {
		return apperror.From(err, "Interview not found")
	}

	if err := s.userRepo.RecomputeSummary(userID); err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("DeleteInterview: summary recompute failed")
	}

	log.Info().Uint("userID", userID).Uint("interviewID", interviewID).Msg("Interview deleted")
	return nil
}

// catalogDifficultyTag maps catalog difficulty labels onto record tags.
func catalogDifficultyTag(label string) string {
	switch label {
	case "Beginner":
		return model.DifficultyEasy
	case "Advanced":
		return model.DifficultyHard
	default: // "Intermediate", "Mixed"
		return model.DifficultyMedium
	}
}
