package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Shiksha/internal/dto"
	"github.com/lshigami/Shiksha/internal/service"
)

type AuthController struct {
	authService    service.AuthService
	sessionService service.SessionService
}

func NewAuthController(as service.AuthService, ss service.SessionService) *AuthController {
	return &AuthController{authService: as, sessionService: ss}
}

// Login godoc
// @Summary (Placeholder) Log in
// @Description Accepts any non-empty email and password. No credential is verified.
// @Tags Auth
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.SessionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}
	sess := currentSession(ctx)
	if err := c.authService.Login(ctx.Request.Context(), sess, req.Email, req.Password); err != nil {
		respondError(ctx, err, "Failed to log in")
		return
	}
	c.describe(ctx)
}

// Signup godoc
// @Summary (Placeholder) Sign up
// @Description Password and confirmation must match; the student is then logged in.
// @Tags Auth
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param body body dto.SignupRequest true "Credentials"
// @Success 200 {object} dto.SessionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing fields or password mismatch"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}
	sess := currentSession(ctx)
	if err := c.authService.Signup(ctx.Request.Context(), sess, req.Email, req.Password, req.ConfirmPassword); err != nil {
		respondError(ctx, err, "Failed to sign up")
		return
	}
	c.describe(ctx)
}

// Logout godoc
// @Summary Log out
// @Description Clears login, profile and assessment completion. The language choice is kept.
// @Tags Auth
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.SessionResponseDTO
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.authService.Logout(ctx.Request.Context(), currentSession(ctx)); err != nil {
		respondError(ctx, err, "Failed to log out")
		return
	}
	c.describe(ctx)
}

func (c *AuthController) describe(ctx *gin.Context) {
	resp, err := c.sessionService.Describe(ctx.Request.Context(), currentSession(ctx))
	if err != nil {
		respondError(ctx, err, "Failed to read session")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
