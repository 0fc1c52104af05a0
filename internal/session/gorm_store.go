package session

import (
	"context"

	"github.com/lshigami/Shiksha/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps entries in the session_entries table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, sessionID string, key Key) (string, bool, error) {
	// Find, not First: a missing key is not an error.
	var entries []model.SessionEntry
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND entry_key = ?", sessionID, string(key)).
		Limit(1).
		Find(&entries).Error
	if err != nil {
		return "", false, err
	}
	if len(entries) == 0 {
		return "", false, nil
	}
	return entries[0].Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, sessionID string, key Key, value string) error {
	entry := model.SessionEntry{SessionID: sessionID, Key: string(key), Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (s *GormStore) Delete(ctx context.Context, sessionID string, keys ...Key) error {
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return s.db.WithContext(ctx).
		Where("session_id = ? AND entry_key IN ?", sessionID, names).
		Delete(&model.SessionEntry{}).Error
}

func (s *GormStore) Clear(ctx context.Context, sessionID string) error {
	return s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&model.SessionEntry{}).Error
}
