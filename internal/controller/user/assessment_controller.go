package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Shiksha/internal/dto"
	"github.com/lshigami/Shiksha/internal/service"
	"github.com/lshigami/Shiksha/internal/session"
)

type AssessmentController struct {
	assessmentService service.AssessmentService
}

func NewAssessmentController(as service.AssessmentService) *AssessmentController {
	return &AssessmentController{assessmentService: as}
}

// StartAssessment godoc
// @Summary Generate the placement test
// @Description Generates questions for the student's class and weak subjects in the selected language.
// @Description A failed generation is reported through state=load_failed and the error field.
// @Tags Assessment
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.AssessmentViewDTO
// @Failure 403 {object} dto.ErrorResponse "Onboarding not completed"
// @Failure 409 {object} dto.ErrorResponse "Assessment already completed or request superseded"
// @Router /assessment [post]
func (c *AssessmentController) StartAssessment(ctx *gin.Context) {
	c.run(ctx, "Failed to start assessment", c.assessmentService.Start)
}

// GetAssessment godoc
// @Summary Current assessment view
// @Tags Assessment
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.AssessmentViewDTO
// @Router /assessment [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	c.run(ctx, "Failed to read assessment", c.assessmentService.Get)
}

// SelectAnswer godoc
// @Summary Answer the current question
// @Description Overwrites any earlier answer for the current question. Does not advance.
// @Tags Assessment
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param body body dto.SelectAnswerRequest true "Chosen option text"
// @Success 200 {object} dto.AssessmentViewDTO
// @Failure 400 {object} dto.ErrorResponse "Option not offered"
// @Failure 409 {object} dto.ErrorResponse "No question is active"
// @Router /assessment/answer [put]
func (c *AssessmentController) SelectAnswer(ctx *gin.Context) {
	var req dto.SelectAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err)
		return
	}
	c.run(ctx, "Failed to select answer", func(rc context.Context, sess *session.Session) (*dto.AssessmentViewDTO, error) {
		return c.assessmentService.SelectAnswer(rc, sess, req.Option)
	})
}

// Advance godoc
// @Summary Go to the next question
// @Description On the last question this scores the test.
// @Tags Assessment
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.AssessmentViewDTO
// @Failure 409 {object} dto.ErrorResponse "No answer selected or wrong state"
// @Router /assessment/advance [post]
func (c *AssessmentController) Advance(ctx *gin.Context) {
	c.run(ctx, "Failed to advance assessment", c.assessmentService.Advance)
}

// Retry godoc
// @Summary Retry a failed generation
// @Tags Assessment
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.AssessmentViewDTO
// @Failure 409 {object} dto.ErrorResponse "Nothing to retry"
// @Router /assessment/retry [post]
func (c *AssessmentController) Retry(ctx *gin.Context) {
	c.run(ctx, "Failed to retry assessment", c.assessmentService.Retry)
}

// Finish godoc
// @Summary Leave the results screen
// @Description Records the assessment as complete so the dashboard opens from now on.
// @Tags Assessment
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.AssessmentViewDTO
// @Failure 409 {object} dto.ErrorResponse "Test not scored yet"
// @Router /assessment/finish [post]
func (c *AssessmentController) Finish(ctx *gin.Context) {
	c.run(ctx, "Failed to finish assessment", c.assessmentService.Finish)
}

func (c *AssessmentController) run(ctx *gin.Context, action string, op func(context.Context, *session.Session) (*dto.AssessmentViewDTO, error)) {
	view, err := op(ctx.Request.Context(), currentSession(ctx))
	if err != nil {
		respondError(ctx, err, action)
		return
	}
	ctx.JSON(http.StatusOK, view)
}
