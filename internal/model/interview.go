package model

import (
	"time"

	"gorm.io/gorm"
)

// Interview is one answered question. Records are immutable after creation
// except for deletion, which triggers a summary recompute for the owner.
type Interview struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `json:"user_id" gorm:"not null;index:idx_interviews_user_created,priority:1"`
	Topic       string         `json:"topic" gorm:"size:100;not null;index"`
	TopicID     string         `json:"topic_id" gorm:"not null"`
	Question    string         `json:"question" gorm:"size:1000;not null"`
	Answer      string         `json:"answer" gorm:"size:5000;not null"`
	Feedback    string         `json:"feedback" gorm:"size:2000;not null"`
	Score       float64        `json:"score" gorm:"not null;index"` // 0-10 inclusive
	Difficulty  string         `json:"difficulty" gorm:"default:'Medium'"`
	Duration    int            `json:"duration" gorm:"default:0"` // seconds
	IsCompleted bool           `json:"is_completed" gorm:"default:true"`
	SessionID   string         `json:"session_id" gorm:"not null;index"`
	CreatedAt   time.Time      `json:"created_at" gorm:"index:idx_interviews_user_created,priority:2"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Difficulty tags accepted on an interview record.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)
