package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Shiksha/internal/dto"
	"github.com/lshigami/Shiksha/internal/service"
	"github.com/lshigami/Shiksha/internal/session"
	"github.com/rs/zerolog/log"
)

const (
	SessionHeader     = "X-Session-ID"
	sessionContextKey = "session"
)

// RequireSession resolves the X-Session-ID header and stores the session on the gin context.
func RequireSession(sessions service.SessionService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(SessionHeader)
		if id == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing " + SessionHeader + " header"})
			return
		}
		sess, err := sessions.Open(ctx.Request.Context(), id)
		if errors.Is(err, session.ErrUnknownSession) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unknown session, create a new one"})
			return
		}
		if err != nil {
			log.Error().Err(err).Str("sessionID", id).Msg("Failed to open session")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to open session", Details: []string{err.Error()}})
			return
		}
		ctx.Set(sessionContextKey, sess)
		ctx.Next()
	}
}

func currentSession(ctx *gin.Context) *session.Session {
	return ctx.MustGet(sessionContextKey).(*session.Session)
}
