package model

import "time"

type SessionEntry struct {
	SessionID string    `gorm:"primaryKey;type:varchar(36)"`
	Key       string    `gorm:"primaryKey;column:entry_key;type:varchar(64)"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
