package user

import (
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Shiksha/internal/service"
)

// Controllers groups every handler registered under /api/v1.
type Controllers struct {
	Session    *SessionController
	Auth       *AuthController
	Catalog    *CatalogController
	Onboarding *OnboardingController
	Assessment *AssessmentController
	Notes      *NotesController
	Dashboard  *DashboardController
}

func RegisterRoutes(api *gin.RouterGroup, sessions service.SessionService, c Controllers) {
	// Public
	api.POST("/sessions", c.Session.CreateSession)
	api.GET("/languages", c.Session.GetLanguages)
	api.GET("/catalog/subjects", c.Catalog.GetClassSubjects)
	api.GET("/catalog/chapters", c.Catalog.GetChapters)

	scoped := api.Group("", RequireSession(sessions))
	{
		scoped.GET("/session", c.Session.GetSession)
		scoped.PUT("/session/language", c.Session.SelectLanguage)

		scoped.POST("/auth/login", c.Auth.Login)
		scoped.POST("/auth/signup", c.Auth.Signup)
		scoped.POST("/auth/logout", c.Auth.Logout)

		scoped.POST("/onboarding", c.Onboarding.SaveProfile)
		scoped.GET("/onboarding", c.Onboarding.GetProfile)

		scoped.POST("/assessment", c.Assessment.StartAssessment)
		scoped.GET("/assessment", c.Assessment.GetAssessment)
		scoped.PUT("/assessment/answer", c.Assessment.SelectAnswer)
		scoped.POST("/assessment/advance", c.Assessment.Advance)
		scoped.POST("/assessment/retry", c.Assessment.Retry)
		scoped.POST("/assessment/finish", c.Assessment.Finish)

		scoped.POST("/notes", c.Notes.RequestNotes)
		scoped.GET("/notes", c.Notes.GetNotes)

		scoped.GET("/dashboard", c.Dashboard.GetDashboard)
	}
}
