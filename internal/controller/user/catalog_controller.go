package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Shiksha/internal/dto"
	"github.com/lshigami/Shiksha/internal/service"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(cs service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: cs}
}

// GetClassSubjects godoc
// @Summary Subjects offered for a class
// @Description Used by onboarding to list the weak-subject choices.
// @Tags Catalog
// @Produce json
// @Param class query int true "Student class (2-10)"
// @Success 200 {object} dto.ClassSubjectsDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid or unknown class"
// @Router /catalog/subjects [get]
func (c *CatalogController) GetClassSubjects(ctx *gin.Context) {
	class, err := strconv.Atoi(ctx.Query("class"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid class format in query"})
		return
	}
	resp, err := c.catalogService.SubjectsForClass(class)
	if err != nil {
		respondError(ctx, err, "Failed to list subjects")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetChapters godoc
// @Summary Subject and chapter tree
// @Tags Catalog
// @Produce json
// @Success 200 {array} dto.SubjectDTO
// @Router /catalog/chapters [get]
func (c *CatalogController) GetChapters(ctx *gin.Context) {
	subjects, err := c.catalogService.Subjects()
	if err != nil {
		respondError(ctx, err, "Failed to list chapters")
		return
	}
	ctx.JSON(http.StatusOK, subjects)
}
