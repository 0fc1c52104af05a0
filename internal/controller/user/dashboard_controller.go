package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Shiksha/internal/service"
)

type DashboardController struct {
	dashboardService service.DashboardService
}

func NewDashboardController(ds service.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: ds}
}

// GetDashboard godoc
// @Summary Student dashboard
// @Description Profile, language, subject tree and the latest notes.
// @Tags Dashboard
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.DashboardDTO
// @Failure 403 {object} dto.ErrorResponse "Onboarding not completed"
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	resp, err := c.dashboardService.Get(ctx.Request.Context(), currentSession(ctx))
	if err != nil {
		respondError(ctx, err, "Failed to load dashboard")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
