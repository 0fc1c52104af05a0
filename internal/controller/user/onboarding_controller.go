package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Shiksha/internal/dto"
	"github.com/lshigami/Shiksha/internal/service"
	"github.com/rs/zerolog/log"
)

type OnboardingController struct {
	onboardingService service.OnboardingService
}

func NewOnboardingController(obs service.OnboardingService) *OnboardingController {
	return &OnboardingController{onboardingService: obs}
}

// SaveProfile godoc
// @Summary Complete onboarding
// @Description Stores the student profile. Requires a logged-in session; weak subjects must belong to the chosen class.
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param body body dto.OnboardingRequest true "Profile"
// @Success 200 {object} dto.ProfileDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid profile"
// @Failure 403 {object} dto.ErrorResponse "Not logged in"
// @Router /onboarding [post]
func (c *OnboardingController) SaveProfile(ctx *gin.Context) {
	var req dto.OnboardingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}
	sess := currentSession(ctx)
	log.Info().Str("sessionID", sess.ID()).Int("class", req.StudentClass).Msg("Received onboarding profile")

	profile, err := c.onboardingService.SaveProfile(ctx.Request.Context(), sess, req)
	if err != nil {
		respondError(ctx, err, "Failed to save profile")
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// GetProfile godoc
// @Summary Stored student profile
// @Tags Onboarding
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.ProfileDTO
// @Failure 403 {object} dto.ErrorResponse "Onboarding not completed"
// @Router /onboarding [get]
func (c *OnboardingController) GetProfile(ctx *gin.Context) {
	profile, err := c.onboardingService.GetProfile(ctx.Request.Context(), currentSession(ctx))
	if err != nil {
		respondError(ctx, err, "Failed to read profile")
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
