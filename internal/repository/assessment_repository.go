package repository

import (
	"errors"

	"github.com/lshigami/Shiksha/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("record not found")

type AssessmentRepository interface {
	// Save replaces the stored snapshot for the session, questions included.
	Save(assessment *model.Assessment) error
	FindBySession(sessionID string) (*model.Assessment, error)
	Delete(sessionID string) error
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Save(assessment *model.Assessment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Questions").
			Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "session_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"state", "language", "student_class", "weak_subjects",
					"current_index", "score", "error_message", "updated_at",
				}),
			}).
			Create(assessment).Error; err != nil {
			return err
		}
		if err := tx.Where("assessment_id = ?", assessment.SessionID).Delete(&model.AssessmentQuestion{}).Error; err != nil {
			return err
		}
		if len(assessment.Questions) == 0 {
			return nil
		}
		for i := range assessment.Questions {
			assessment.Questions[i].ID = 0
			assessment.Questions[i].AssessmentID = assessment.SessionID
		}
		return tx.Create(&assessment.Questions).Error
	})
}

func (r *assessmentRepository) FindBySession(sessionID string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("assessment_questions.position ASC")
	}).First(&assessment, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) Delete(sessionID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assessment_id = ?", sessionID).Delete(&model.AssessmentQuestion{}).Error; err != nil {
			return err
		}
		return tx.Where("session_id = ?", sessionID).Delete(&model.Assessment{}).Error
	})
}
