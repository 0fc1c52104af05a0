package service

import (
	"context"
	"strings"

	"github.com/lshigami/Shiksha/internal/session"
	"github.com/rs/zerolog/log"
)

// AuthService is a placeholder: any non-empty credential pair is accepted and nothing is verified.
// Real authentication belongs to an external identity provider.
type AuthService interface {
	Login(ctx context.Context, sess *session.Session, email, password string) error
	Signup(ctx context.Context, sess *session.Session, email, password, confirmPassword string) error
	Logout(ctx context.Context, sess *session.Session) error
}

type authService struct {
	assessment AssessmentService
	notes      NotesService
}

func NewAuthService(assessment AssessmentService, notes NotesService) AuthService {
	return &authService{assessment: assessment, notes: notes}
}

func (s *authService) Login(ctx context.Context, sess *session.Session, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	if err := sess.Login(ctx, email); err != nil {
		log.Error().Err(err).Str("sessionID", sess.ID()).Msg("Failed to store login")
		return err
	}
	log.Info().Str("sessionID", sess.ID()).Msg("Mock login accepted")
	return nil
}

func (s *authService) Signup(ctx context.Context, sess *session.Session, email, password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	return s.Login(ctx, sess, email, password)
}

func (s *authService) Logout(ctx context.Context, sess *session.Session) error {
	if err := sess.Logout(ctx); err != nil {
		log.Error().Err(err).Str("sessionID", sess.ID()).Msg("Failed to clear session on logout")
		return err
	}
	// Everything tied to the previous user goes with the login.
	if s.assessment != nil {
		if err := s.assessment.Reset(ctx, sess); err != nil {
			return err
		}
	}
	if s.notes != nil {
		if err := s.notes.Reset(ctx, sess); err != nil {
			return err
		}
	}
	return nil
}
