package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest    = errors.New("invalid generation request")
	ErrTransport         = errors.New("content service unreachable")
	ErrService           = errors.New("content service returned an error")
	ErrMalformedResponse = errors.New("malformed content response")
)

// GenerationError is returned by every ContentService failure. Kind is one of the four sentinels above,
// so callers can branch with errors.Is.
type GenerationError struct {
	Kind   error
	Detail string
	Err    error
}

func (e *GenerationError) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GenerationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// UserMessage is the text shown to the student when the attempt fails.
func (e *GenerationError) UserMessage() string {
	switch e.Kind {
	case ErrInvalidRequest:
		return "The request is missing required details: " + e.Detail
	case ErrTransport:
		return "Could not reach the content service. Please check your connection and try again."
	case ErrService:
		return "The content service could not generate this content. Please check your API key and try again."
	case ErrMalformedResponse:
		return "Received an invalid response from the AI. Please try again."
	}
	return "An unknown error occurred."
}

func invalidRequest(format string, args ...any) error {
	return &GenerationError{Kind: ErrInvalidRequest, Detail: fmt.Sprintf(format, args...)}
}

func malformed(format string, args ...any) error {
	return &GenerationError{Kind: ErrMalformedResponse, Detail: fmt.Sprintf(format, args...)}
}

// UserMessage extracts a displayable message from any error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.UserMessage()
	}
	return err.Error()
}
