package model

import (
	"time"
)

// Assessment is the persisted snapshot of a session's assessment flow. One row per session.
type Assessment struct {
	SessionID    string               `gorm:"primaryKey;type:varchar(36)" json:"session_id"`
	State        string               `gorm:"not null;default:'idle'" json:"state"` // "idle", "loading", "ready", "load_failed", "scored", "completed"
	Language     string               `json:"language"`
	StudentClass int                  `json:"student_class"`
	WeakSubjects []string             `gorm:"serializer:json;type:text" json:"weak_subjects"`
	CurrentIndex int                  `json:"current_index"`
	Score        *int                 `json:"score,omitempty"`
	ErrorMessage string               `gorm:"type:text" json:"error_message,omitempty"`
	Questions    []AssessmentQuestion `gorm:"foreignKey:AssessmentID;references:SessionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"questions,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}
