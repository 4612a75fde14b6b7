package repository

import (
	"math"

	"github.com/achyut02/Ai-Placement-Tracker/internal/apperror"
	"github.com/achyut02/Ai-Placement-Tracker/internal/dto"
	"github.com/achyut02/Ai-Placement-Tracker/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(interview *model.Interview) error
	FindByIDAndUser(id, userID uint) (*model.Interview, error)
	DeleteByIDAndUser(id, userID uint) error
	FindRecent(userID uint, limit int) ([]model.Interview, error)
	FindPage(userID uint, topicID string, page, limit int) ([]model.Interview, int64, error)
	GetUserStats(userID uint) (*dto.UserStats, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) Create(interview *model.Interview) error {
	if r.db == nil {
		return apperror.ErrDatabaseUnavailable
	}
	return r.db.Create(interview).Error
}

func (r *interviewRepository) FindByIDAndUser(id, userID uint) (*model.Interview, error) {
	if r.db == nil {
		return nil, apperror.ErrDatabaseUnavailable
	}
	var interview model.Interview
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&interview).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) DeleteByIDAndUser(id, userID uint) error {
	if r.db == nil {
		return apperror.ErrDatabaseUnavailable
	}
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Interview{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *interviewRepository) FindRecent(userID uint, limit int) ([]model.Interview, error) {
	if r.db == nil {
		return nil, apperror.ErrDatabaseUnavailable
	}
	var interviews []model.Interview
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&interviews).Error
	return interviews, err
}

func (r *interviewRepository) FindPage(userID uint, topicID string, page, limit int) ([]model.Interview, int64, error) {
	if r.db == nil {
		return nil, 0, apperror.ErrDatabaseUnavailable
	}
	query := r.db.Model(&model.Interview{}).Where("user_id = ?", userID)
	if topicID != "" {
		query = query.Where("topic_id = ?", topicID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var interviews []model.Interview
	err := query.
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&interviews).Error
	return interviews, total, err
}

// GetUserStats aggregates every record the user owns. A user with no records
// gets a zero-valued struct with empty slices, never an error.
func (r *interviewRepository) GetUserStats(userID uint) (*dto.UserStats, error) {
	if r.db == nil {
		return nil, apperror.ErrDatabaseUnavailable
	}

	stats := &dto.UserStats{
		TopicPerformance: []dto.TopicPerformance{},
		ProgressData:     []dto.ProgressPoint{},
	}

	var overall struct {
		Total int64
		Avg   float64
		Max   float64
		Min   float64
	}
	err := r.db.Model(&model.Interview{}).
		Select("COUNT(*) as total, COALESCE(AVG(score), 0) as avg, COALESCE(MAX(score), 0) as max, COALESCE(MIN(score), 0) as min").
		Where("user_id = ?", userID).
		Scan(&overall).Error
	if err != nil {
		return nil, err
	}
	if overall.Total == 0 {
		return stats, nil
	}

	stats.TotalInterviews = int(overall.Total)
	stats.AverageScore = roundOneDecimal(overall.Avg)
	stats.MaxScore = overall.Max
	stats.MinScore = overall.Min

	var perTopic []struct {
		Topic string
		Mean  float64
		Count int
	}
	err = r.db.Model(&model.Interview{}).
		Select("topic, AVG(score) as mean, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("topic").
		Scan(&perTopic).Error
	if err != nil {
		return nil, err
	}
	for _, tp := range perTopic {
		stats.TopicPerformance = append(stats.TopicPerformance, dto.TopicPerformance{
			Name:  tp.Topic,
			Value: roundOneDecimal(tp.Mean),
			Count: tp.Count,
		})
	}

	// Progress series: the 10 most recent records, presented oldest first.
	var recent []model.Interview
	err = r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(10).
		Find(&recent).Error
	if err != nil {
		return nil, err
	}
	for i := len(recent) - 1; i >= 0; i-- {
		iv := recent[i]
		stats.ProgressData = append(stats.ProgressData, dto.ProgressPoint{
			Attempt: len(recent) - i,
			Score:   iv.Score,
			Date:    iv.CreatedAt.Format("2006-01-02"),
		})
	}

	return stats, nil
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
