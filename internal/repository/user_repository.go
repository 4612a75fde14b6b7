package repository

import (
	"strings"
	"time"

	"github.com/achyut02/Ai-Placement-Tracker/internal/apperror"
	"github.com/achyut02/Ai-Placement-Tracker/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	TouchLastLogin(userID uint) error
	RecomputeSummary(userID uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	if r.db == nil {
		return apperror.ErrDatabaseUnavailable
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	if r.db == nil {
		return nil, apperror.ErrDatabaseUnavailable
	}
	var user model.User
	if err := r.db.Where("is_active = ?", true).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail is case-insensitive and only matches active accounts.
func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	if r.db == nil {
		return nil, apperror.ErrDatabaseUnavailable
	}
	var user model.User
	err := r.db.Where("email = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(email)), true).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) TouchLastLogin(userID uint) error {
	if r.db == nil {
		return apperror.ErrDatabaseUnavailable
	}
	return r.db.Model(&model.User{}).Where("id = ?", userID).
		Update("last_login", time.Now()).Error
}

// RecomputeSummary re-derives totalInterviews and averageScore from the full
// set of the user's interview records. A full recompute, not an incremental
// update; called after every interview create and delete.
func (r *userRepository) RecomputeSummary(userID uint) error {
	if r.db == nil {
		return apperror.ErrDatabaseUnavailable
	}

	var summary struct {
		Total int64
		Avg   float64
	}
	err := r.db.Model(&model.Interview{}).
		Select("COUNT(*) as total, COALESCE(AVG(score), 0) as avg").
		Where("user_id = ?", userID).
		Scan(&summary).Error
	if err != nil {
		return err
	}

	return r.db.Model(&model.User{}).Where("id = ?", userID).
		Updates(map[string]any{
			"total_interviews": summary.Total,
			"average_score":    roundOneDecimal(summary.Avg),
		}).Error
}
