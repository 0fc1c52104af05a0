package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Shiksha/config"
	"github.com/lshigami/Shiksha/database"
	_ "github.com/lshigami/Shiksha/docs"
	"github.com/lshigami/Shiksha/internal/catalog"
	userctrl "github.com/lshigami/Shiksha/internal/controller/user"
	"github.com/lshigami/Shiksha/internal/logger"
	"github.com/lshigami/Shiksha/internal/repository"
	"github.com/lshigami/Shiksha/internal/service"
	"github.com/lshigami/Shiksha/internal/session"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Shiksha Student Portal API
// @version 1.0
// @description Onboarding, AI-generated placement tests and chapter notes for school students.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init("info")

	root := &cobra.Command{
		Use:          "shiksha",
		Short:        "Student learning portal backend",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.LogLevel)
	return cfg, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			app := newApp(cfg)
			if err := app.Start(cmd.Context()); err != nil {
				return err
			}
			sig := <-app.Wait()
			log.Info().Msgf("Application shutting down gracefully (%v)...", sig.Signal)

			stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return app.Stop(stopCtx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.NewDatabase(cfg)
			if err != nil {
				return err
			}
			return database.AutoMigrate(db)
		},
	}
}

func newApp(cfg *config.Config) *fx.App {
	return fx.New(
		fx.NopLogger,
		fx.Supply(cfg),

		// Infrastructure
		fx.Provide(
			database.NewDatabase,
			catalog.Load,
			session.NewStore,
			NewGinEngine,
			newGeminiModel,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewAssessmentRepository,
			repository.NewNotesRepository,
		),

		// Services Layer
		fx.Provide(
			func(model service.ContentModel, cfg *config.Config) service.ContentService {
				return service.NewContentService(model, cfg.Assessment.QuestionCount)
			},
			service.NewSessionService,
			service.NewAuthService,
			service.NewCatalogService,
			service.NewOnboardingService,
			service.NewAssessmentService,
			service.NewNotesService,
			service.NewDashboardService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewSessionController,
			userctrl.NewAuthController,
			userctrl.NewCatalogController,
			userctrl.NewOnboardingController,
			userctrl.NewAssessmentController,
			userctrl.NewNotesController,
			userctrl.NewDashboardController,
		),

		fx.Invoke(func(db *gorm.DB) error { return database.AutoMigrate(db) }),
		fx.Invoke(RegisterRoutesAndStartServer),
	)
}

// newGeminiModel exposes the Gemini client as the ContentModel and closes it on shutdown.
func newGeminiModel(lc fx.Lifecycle, cfg *config.Config) (service.ContentModel, error) {
	m, err := service.NewGeminiModel(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return m.Close()
		},
	})
	return m, nil
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", userctrl.SessionHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

type routeParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Router     *gin.Engine
	Config     *config.Config
	Sessions   service.SessionService
	Session    *userctrl.SessionController
	Auth       *userctrl.AuthController
	Catalog    *userctrl.CatalogController
	Onboarding *userctrl.OnboardingController
	Assessment *userctrl.AssessmentController
	Notes      *userctrl.NotesController
	Dashboard  *userctrl.DashboardController
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(p routeParams) {
	userctrl.RegisterRoutes(p.Router.Group("/api/v1"), p.Sessions, userctrl.Controllers{
		Session:    p.Session,
		Auth:       p.Auth,
		Catalog:    p.Catalog,
		Onboarding: p.Onboarding,
		Assessment: p.Assessment,
		Notes:      p.Notes,
		Dashboard:  p.Dashboard,
	})

	server := &http.Server{
		Addr:    ":" + p.Config.Server.Port,
		Handler: p.Router,
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Shiksha API server starting on port %s", p.Config.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", p.Config.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}
