package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Shiksha/internal/dto"
	"github.com/lshigami/Shiksha/internal/service"
)

type SessionController struct {
	sessionService service.SessionService
}

func NewSessionController(ss service.SessionService) *SessionController {
	return &SessionController{sessionService: ss}
}

// CreateSession godoc
// @Summary Start a new student session
// @Description Creates an anonymous session. Send the returned session_id as the X-Session-ID header on later calls.
// @Tags Session
// @Produce json
// @Success 201 {object} dto.SessionResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	resp, err := c.sessionService.Create(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Failed to create session")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetSession godoc
// @Summary Current session state
// @Description Returns the view the student should see plus the stored flags.
// @Tags Session
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.SessionResponseDTO
// @Failure 401 {object} dto.ErrorResponse "Unknown session"
// @Router /session [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	resp, err := c.sessionService.Describe(ctx.Request.Context(), currentSession(ctx))
	if err != nil {
		respondError(ctx, err, "Failed to read session")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetLanguages godoc
// @Summary Supported display languages
// @Tags Session
// @Produce json
// @Success 200 {array} dto.LanguageDTO
// @Router /languages [get]
func (c *SessionController) GetLanguages(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.sessionService.Languages())
}

// SelectLanguage godoc
// @Summary Choose the display language
// @Description Generated tests and notes are produced in this language.
// @Tags Session
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param body body dto.SelectLanguageRequest true "Language code"
// @Success 200 {object} dto.SessionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Unsupported language"
// @Failure 401 {object} dto.ErrorResponse "Unknown session"
// @Router /session/language [put]
func (c *SessionController) SelectLanguage(ctx *gin.Context) {
	var req dto.SelectLanguageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}
	resp, err := c.sessionService.SelectLanguage(ctx.Request.Context(), currentSession(ctx), req.Code)
	if err != nil {
		respondError(ctx, err, "Failed to select language")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
