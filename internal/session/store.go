// Package session holds the per-session key-value state that drives the onboarding flow: chosen language,
// login flag, profile and assessment completion. Every backend is last-write-wins with no transactions.
package session

import (
	"context"
	"errors"
)

type Key string

const (
	KeySchemaVersion        Key = "schemaVersion"
	KeyAssessmentComplete   Key = "assessmentComplete"
	KeySelectedLanguageCode Key = "selectedLanguageCode"
	KeySelectedLanguage     Key = "selectedLanguage"
	KeyLoggedIn             Key = "isLoggedIn"
	KeyUserEmail            Key = "userEmail"
	KeyUserProfile          Key = "userProfile"
)

// SchemaVersion is bumped whenever the meaning of a stored key changes. Sessions written under another
// version are cleared on open.
const SchemaVersion = "1"

var ErrUnknownSession = errors.New("unknown session")

type Store interface {
	// Get returns ok=false when the key is not set.
	Get(ctx context.Context, sessionID string, key Key) (value string, ok bool, err error)
	Set(ctx context.Context, sessionID string, key Key, value string) error
	Delete(ctx context.Context, sessionID string, keys ...Key) error
	Clear(ctx context.Context, sessionID string) error
}
