package service

import (
	"context"

	"github.com/lshigami/Shiksha/internal/dto"
	"github.com/lshigami/Shiksha/internal/session"
)

type DashboardService interface {
	Get(ctx context.Context, sess *session.Session) (*dto.DashboardDTO, error)
}

type dashboardService struct {
	onboarding OnboardingService
	catalog    CatalogService
	notes      NotesService
}

func NewDashboardService(onboarding OnboardingService, catalog CatalogService, notes NotesService) DashboardService {
	return &dashboardService{onboarding: onboarding, catalog: catalog, notes: notes}
}

func (s *dashboardService) Get(ctx context.Context, sess *session.Session) (*dto.DashboardDTO, error) {
	profile, err := s.onboarding.GetProfile(ctx, sess)
	if err != nil {
		return nil, err
	}
	lang, _, err := sess.Language(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := s.catalog.Subjects()
	if err != nil {
		return nil, err
	}
	notes, err := s.notes.Get(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardDTO{
		Profile:  *profile,
		Language: dto.LanguageDTO{Code: lang.Code, Name: lang.Name},
		Subjects: subjects,
		Notes:    *notes,
	}, nil
}
