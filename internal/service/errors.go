package service

import "errors"

var (
	ErrNotLoggedIn        = errors.New("please log in first")
	ErrProfileRequired    = errors.New("complete onboarding first")
	ErrMissingCredentials = errors.New("please fill in all fields")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidProfile     = errors.New("invalid profile")
	ErrUnknownClass       = errors.New("unknown class")
	ErrUnknownChapter     = errors.New("unknown subject or chapter")
	ErrNotesUnavailable   = errors.New("notes are not available for this chapter")
)
