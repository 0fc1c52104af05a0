package repository

import (
	"errors"

	"github.com/lshigami/Shiksha/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotesRepository interface {
	// Replace overwrites the session's notes document.
	Replace(doc *model.NotesDocument) error
	FindBySession(sessionID string) (*model.NotesDocument, error)
	Delete(sessionID string) error
}

type notesRepository struct {
	db *gorm.DB
}

func NewNotesRepository(db *gorm.DB) NotesRepository {
	return &notesRepository{db: db}
}

func (r *notesRepository) Replace(doc *model.NotesDocument) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"subject", "chapter", "language", "content", "updated_at"}),
	}).Create(doc).Error
}

func (r *notesRepository) FindBySession(sessionID string) (*model.NotesDocument, error) {
	var doc model.NotesDocument
	err := r.db.First(&doc, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *notesRepository) Delete(sessionID string) error {
	return r.db.Where("session_id = ?", sessionID).Delete(&model.NotesDocument{}).Error
}
