package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lshigami/Shiksha/internal/language"
	"github.com/lshigami/Shiksha/internal/model"
	"github.com/rs/zerolog/log"
)

// View is the screen the client should show next.
type View string

const (
	ViewLanguageSelection View = "language_selection"
	ViewAuth              View = "auth"
	ViewOnboarding        View = "onboarding"
	ViewAssessment        View = "assessment"
	ViewDashboard         View = "dashboard"
)

const flagTrue = "true"

// Session is a typed view over one session's entries in a Store.
type Session struct {
	store Store
	id    string
}

// Create starts a new session with a random id.
func Create(ctx context.Context, store Store) (*Session, error) {
	id := uuid.NewString()
	if err := store.Set(ctx, id, KeySchemaVersion, SchemaVersion); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &Session{store: store, id: id}, nil
}

// Open attaches to an existing session. Sessions written under an older schema are reset.
func Open(ctx context.Context, store Store, id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrUnknownSession
	}
	version, ok, err := store.Get(ctx, id, KeySchemaVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return nil, ErrUnknownSession
	}
	if version != SchemaVersion {
		log.Info().Str("sessionID", id).Str("storedVersion", version).Msg("Resetting session written under another schema version")
		if err := store.Clear(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to reset session: %w", err)
		}
		if err := store.Set(ctx, id, KeySchemaVersion, SchemaVersion); err != nil {
			return nil, fmt.Errorf("failed to reset session: %w", err)
		}
	}
	return &Session{store: store, id: id}, nil
}

func (s *Session) ID() string { return s.id }

// Language returns the selected language, or the default with selected=false.
func (s *Session) Language(ctx context.Context) (lang language.Language, selected bool, err error) {
	code, ok, err := s.store.Get(ctx, s.id, KeySelectedLanguageCode)
	if err != nil {
		return language.Language{}, false, err
	}
	if !ok {
		code = language.Default
	}
	lang, lookupErr := language.Lookup(code)
	if lookupErr != nil {
		lang, _ = language.Lookup(language.Default)
		return lang, false, nil
	}
	return lang, ok, nil
}

func (s *Session) SetLanguage(ctx context.Context, code string) (language.Language, error) {
	lang, err := language.Lookup(code)
	if err != nil {
		return language.Language{}, err
	}
	if err := s.store.Set(ctx, s.id, KeySelectedLanguageCode, lang.Code); err != nil {
		return language.Language{}, err
	}
	if err := s.store.Set(ctx, s.id, KeySelectedLanguage, lang.Name); err != nil {
		return language.Language{}, err
	}
	return lang, nil
}

func (s *Session) LoggedIn(ctx context.Context) (bool, error) {
	return s.flag(ctx, KeyLoggedIn)
}

func (s *Session) Email(ctx context.Context) (string, error) {
	v, _, err := s.store.Get(ctx, s.id, KeyUserEmail)
	return v, err
}

func (s *Session) Login(ctx context.Context, email string) error {
	if err := s.store.Set(ctx, s.id, KeyLoggedIn, flagTrue); err != nil {
		return err
	}
	return s.store.Set(ctx, s.id, KeyUserEmail, email)
}

// Logout clears everything tied to the user. The display language survives.
func (s *Session) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, s.id, KeyLoggedIn, KeyUserEmail, KeyUserProfile, KeyAssessmentComplete)
}

// Profile returns nil when onboarding has not been completed.
func (s *Session) Profile(ctx context.Context) (*model.UserProfile, error) {
	raw, ok, err := s.store.Get(ctx, s.id, KeyUserProfile)
	if err != nil || !ok {
		return nil, err
	}
	var p model.UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("stored profile is corrupt: %w", err)
	}
	return &p, nil
}

func (s *Session) SetProfile(ctx context.Context, p model.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, s.id, KeyUserProfile, string(raw))
}

func (s *Session) AssessmentComplete(ctx context.Context) (bool, error) {
	return s.flag(ctx, KeyAssessmentComplete)
}

func (s *Session) SetAssessmentComplete(ctx context.Context) error {
	return s.store.Set(ctx, s.id, KeyAssessmentComplete, flagTrue)
}

// View resolves the screen from the stored flags: language, login, onboarding, assessment, dashboard.
func (s *Session) View(ctx context.Context) (View, error) {
	if _, selected, err := s.Language(ctx); err != nil {
		return "", err
	} else if !selected {
		return ViewLanguageSelection, nil
	}
	if ok, err := s.LoggedIn(ctx); err != nil {
		return "", err
	} else if !ok {
		return ViewAuth, nil
	}
	if p, err := s.Profile(ctx); err != nil {
		return "", err
	} else if p == nil {
		return ViewOnboarding, nil
	}
	if done, err := s.AssessmentComplete(ctx); err != nil {
		return "", err
	} else if !done {
		return ViewAssessment, nil
	}
	return ViewDashboard, nil
}

func (s *Session) flag(ctx context.Context, key Key) (bool, error) {
	v, ok, err := s.store.Get(ctx, s.id, key)
	if err != nil {
		return false, err
	}
	return ok && v == flagTrue, nil
}
