package model

import (
	"time"

	"gorm.io/gorm"
)

// Preferences is stored as a JSON column on the user row.
type Preferences struct {
	TargetCompanies []string `json:"target_companies,omitempty"`
	SkillLevel      string   `json:"skill_level,omitempty"` // "Beginner", "Intermediate", "Advanced"
	PreferredTopics []string `json:"preferred_topics,omitempty"`
}

type User struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	Name             string         `json:"name" gorm:"not null"`
	Email            string         `json:"email" gorm:"not null;uniqueIndex"` // stored lowercase
	Password         string         `json:"-" gorm:"not null"`                 // bcrypt hash, never serialized
	RegistrationDate time.Time      `json:"registration_date" gorm:"autoCreateTime"`
	LastLogin        time.Time      `json:"last_login" gorm:"autoCreateTime"`
	TotalInterviews  int            `json:"total_interviews" gorm:"default:0"`
	AverageScore     float64        `json:"average_score" gorm:"default:0"` // derived, 0-10, one decimal
	IsActive         bool           `json:"is_active" gorm:"default:true;index"`
	Preferences      Preferences    `json:"preferences" gorm:"serializer:json"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
