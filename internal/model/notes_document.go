package model

import "time"

// NotesDocument holds the latest generated chapter notes for a session. It is replaced wholesale on every
// successful request.
type NotesDocument struct {
	SessionID string    `gorm:"primaryKey;type:varchar(36)" json:"session_id"`
	Subject   string    `gorm:"not null" json:"subject"`
	Chapter   string    `gorm:"not null" json:"chapter"`
	Language  string    `gorm:"not null" json:"language"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
