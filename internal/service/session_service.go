package service

import (
	"context"
	"fmt"

	"github.com/lshigami/Shiksha/internal/dto"
	"github.com/lshigami/Shiksha/internal/language"
	"github.com/lshigami/Shiksha/internal/session"
	"github.com/rs/zerolog/log"
)

type SessionService interface {
	Create(ctx context.Context) (*dto.SessionResponseDTO, error)
	Open(ctx context.Context, sessionID string) (*session.Session, error)
	Describe(ctx context.Context, sess *session.Session) (*dto.SessionResponseDTO, error)
	SelectLanguage(ctx context.Context, sess *session.Session, code string) (*dto.SessionResponseDTO, error)
	Languages() []dto.LanguageDTO
}

type sessionService struct {
	store session.Store
}

func NewSessionService(store session.Store) SessionService {
	return &sessionService{store: store}
}

func (s *sessionService) Create(ctx context.Context) (*dto.SessionResponseDTO, error) {
	sess, err := session.Create(ctx, s.store)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create session")
		return nil, err
	}
	log.Info().Str("sessionID", sess.ID()).Msg("Session created")
	return s.Describe(ctx, sess)
}

func (s *sessionService) Open(ctx context.Context, sessionID string) (*session.Session, error) {
	return session.Open(ctx, s.store, sessionID)
}

func (s *sessionService) Describe(ctx context.Context, sess *session.Session) (*dto.SessionResponseDTO, error) {
	lang, selected, err := sess.Language(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading language: %w", err)
	}
	loggedIn, err := sess.LoggedIn(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading login flag: %w", err)
	}
	email, err := sess.Email(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading email: %w", err)
	}
	complete, err := sess.AssessmentComplete(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading completion flag: %w", err)
	}
	view, err := sess.View(ctx)
	if err != nil {
		return nil, fmt.Errorf("error resolving view: %w", err)
	}
	return &dto.SessionResponseDTO{
		SessionID:          sess.ID(),
		View:               string(view),
		LanguageCode:       lang.Code,
		LanguageName:       lang.Name,
		LanguageSelected:   selected,
		LoggedIn:           loggedIn,
		Email:              email,
		AssessmentComplete: complete,
	}, nil
}

func (s *sessionService) SelectLanguage(ctx context.Context, sess *session.Session, code string) (*dto.SessionResponseDTO, error) {
	lang, err := sess.SetLanguage(ctx, code)
	if err != nil {
		return nil, err
	}
	log.Info().Str("sessionID", sess.ID()).Str("language", lang.Code).Msg("Language selected")
	return s.Describe(ctx, sess)
}

func (s *sessionService) Languages() []dto.LanguageDTO {
	supported := language.Supported()
	out := make([]dto.LanguageDTO, len(supported))
	for i, l := range supported {
		out[i] = dto.LanguageDTO{Code: l.Code, Name: l.Name}
	}
	return out
}
