package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Shiksha/internal/catalog"
	"github.com/lshigami/Shiksha/internal/dto"
	"github.com/rs/zerolog/log"
)

type CatalogService interface {
	SubjectsForClass(studentClass int) (*dto.ClassSubjectsDTO, error)
	Subjects() ([]dto.SubjectDTO, error)
}

type catalogService struct {
	catalog *catalog.Catalog
}

func NewCatalogService(c *catalog.Catalog) CatalogService {
	return &catalogService{catalog: c}
}

func (s *catalogService) SubjectsForClass(studentClass int) (*dto.ClassSubjectsDTO, error) {
	subjects := s.catalog.SubjectsForClass(studentClass)
	if subjects == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownClass, studentClass)
	}
	return &dto.ClassSubjectsDTO{StudentClass: studentClass, Subjects: subjects}, nil
}

func (s *catalogService) Subjects() ([]dto.SubjectDTO, error) {
	var out []dto.SubjectDTO
	if err := copier.Copy(&out, &s.catalog.Subjects); err != nil {
		log.Error().Err(err).Msg("Failed to copy catalog subjects to DTOs")
		return nil, fmt.Errorf("error preparing subjects response: %w", err)
	}
	return out, nil
}
