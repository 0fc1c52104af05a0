package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Shiksha/internal/dto"
	"github.com/lshigami/Shiksha/internal/language"
	"github.com/lshigami/Shiksha/internal/repository"
	"github.com/lshigami/Shiksha/internal/service"
	"github.com/lshigami/Shiksha/internal/session"
	"github.com/rs/zerolog/log"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrInvalidProfile),
		errors.Is(err, service.ErrUnknownClass),
		errors.Is(err, service.ErrUnknownOption),
		errors.Is(err, service.ErrMissingCredentials),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, language.ErrUnsupported):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrUnknownSession):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotLoggedIn),
		errors.Is(err, service.ErrProfileRequired):
		return http.StatusForbidden
	case errors.Is(err, service.ErrUnknownChapter),
		errors.Is(err, service.ErrNotesUnavailable),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidState),
		errors.Is(err, service.ErrNoAnswerSelected),
		errors.Is(err, service.ErrSuperseded):
		return http.StatusConflict
	case errors.Is(err, service.ErrTransport),
		errors.Is(err, service.ErrService),
		errors.Is(err, service.ErrMalformedResponse):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func respondError(ctx *gin.Context, err error, action string) {
	status := statusFor(err)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Str("path", ctx.FullPath()).Msg(action)

	resp := dto.ErrorResponse{Message: service.UserMessage(err)}
	var profileErr *service.ProfileError
	if errors.As(err, &profileErr) {
		resp.Message = service.ErrInvalidProfile.Error()
		resp.Details = profileErr.Problems
	} else if status == http.StatusInternalServerError {
		resp.Message = action
		resp.Details = []string{err.Error()}
	}
	ctx.JSON(status, resp)
}

func bindingError(ctx *gin.Context, err error) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind JSON")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}
