package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Shiksha/internal/dto"
	"github.com/lshigami/Shiksha/internal/service"
	"github.com/rs/zerolog/log"
)

type NotesController struct {
	notesService service.NotesService
}

func NewNotesController(ns service.NotesService) *NotesController {
	return &NotesController{notesService: ns}
}

// RequestNotes godoc
// @Summary Generate study notes for a chapter
// @Description Replaces the session's notes. When requests overlap only the latest one is applied; older ones get 409.
// @Tags Notes
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param body body dto.NotesRequest true "Subject and chapter (id or title)"
// @Success 200 {object} dto.NotesViewDTO
// @Failure 403 {object} dto.ErrorResponse "Onboarding not completed"
// @Failure 404 {object} dto.ErrorResponse "Unknown chapter or no notes for it"
// @Failure 409 {object} dto.ErrorResponse "Superseded by a newer request"
// @Router /notes [post]
func (c *NotesController) RequestNotes(ctx *gin.Context) {
	var req dto.NotesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}
	sess := currentSession(ctx)
	log.Info().Str("sessionID", sess.ID()).Str("subject", req.Subject).Str("chapter", req.Chapter).Msg("Received notes request")

	view, err := c.notesService.Request(ctx.Request.Context(), sess, req.Subject, req.Chapter)
	if err != nil {
		respondError(ctx, err, "Failed to generate notes")
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// GetNotes godoc
// @Summary Latest notes for the session
// @Tags Notes
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.NotesViewDTO
// @Router /notes [get]
func (c *NotesController) GetNotes(ctx *gin.Context) {
	view, err := c.notesService.Get(ctx.Request.Context(), currentSession(ctx))
	if err != nil {
		respondError(ctx, err, "Failed to read notes")
		return
	}
	ctx.JSON(http.StatusOK, view)
}
