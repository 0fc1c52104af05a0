package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Shiksha/internal/catalog"
	"github.com/lshigami/Shiksha/internal/dto"
	"github.com/lshigami/Shiksha/internal/model"
	"github.com/lshigami/Shiksha/internal/session"
	"github.com/rs/zerolog/log"
)

const fallbackEmail = "student@example.com"

type OnboardingService interface {
	SaveProfile(ctx context.Context, sess *session.Session, req dto.OnboardingRequest) (*dto.ProfileDTO, error)
	GetProfile(ctx context.Context, sess *session.Session) (*dto.ProfileDTO, error)
}

type onboardingService struct {
	catalog  *catalog.Catalog
	validate *validator.Validate
}

func NewOnboardingService(c *catalog.Catalog) OnboardingService {
	return &onboardingService{catalog: c, validate: validator.New()}
}

// ProfileError lists every problem found in a submitted profile.
type ProfileError struct {
	Problems []string
}

func (e *ProfileError) Error() string {
	return ErrInvalidProfile.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *ProfileError) Unwrap() error { return ErrInvalidProfile }

func (s *onboardingService) SaveProfile(ctx context.Context, sess *session.Session, req dto.OnboardingRequest) (*dto.ProfileDTO, error) {
	loggedIn, err := sess.LoggedIn(ctx)
	if err != nil {
		return nil, err
	}
	if !loggedIn {
		return nil, ErrNotLoggedIn
	}
	email, err := sess.Email(ctx)
	if err != nil {
		return nil, err
	}
	if email == "" {
		email = fallbackEmail
	}

	profile := model.UserProfile{
		Name:         strings.TrimSpace(req.Name),
		Age:          req.Age,
		StudentClass: req.StudentClass,
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		Interests:    trimAll(req.Interests),
		WeakSubjects: trimAll(req.WeakSubjects),
	}
	if err := s.check(profile); err != nil {
		log.Warn().Err(err).Str("sessionID", sess.ID()).Msg("Rejected onboarding profile")
		return nil, err
	}

	if err := sess.SetProfile(ctx, profile); err != nil {
		log.Error().Err(err).Str("sessionID", sess.ID()).Msg("Failed to store profile")
		return nil, fmt.Errorf("error saving profile: %w", err)
	}
	log.Info().Str("sessionID", sess.ID()).Int("class", profile.StudentClass).Strs("weakSubjects", profile.WeakSubjects).Msg("Onboarding complete")
	return toProfileDTO(profile)
}

func (s *onboardingService) GetProfile(ctx context.Context, sess *session.Session) (*dto.ProfileDTO, error) {
	profile, err := sess.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileRequired
	}
	return toProfileDTO(*profile)
}

func (s *onboardingService) check(p model.UserProfile) error {
	var problems []string
	if err := s.validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			problems = append(problems, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	if s.catalog.SubjectsForClass(p.StudentClass) != nil {
		for _, subject := range p.WeakSubjects {
			if subject != "" && !s.catalog.HasSubject(p.StudentClass, subject) {
				problems = append(problems, fmt.Sprintf("%q is not a class %d subject", subject, p.StudentClass))
			}
		}
	}
	if len(problems) > 0 {
		return &ProfileError{Problems: problems}
	}
	return nil
}

func toProfileDTO(p model.UserProfile) (*dto.ProfileDTO, error) {
	var out dto.ProfileDTO
	if err := copier.Copy(&out, &p); err != nil {
		return nil, fmt.Errorf("error preparing profile response: %w", err)
	}
	return &out, nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
