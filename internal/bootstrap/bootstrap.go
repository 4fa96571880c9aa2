package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/coursemap/internal/app/controllers"
	appMigrations "github.com/yigit/coursemap/internal/app/migrations"
	appRepos "github.com/yigit/coursemap/internal/app/repositories"
	appRoutes "github.com/yigit/coursemap/internal/app/routes"
	appServices "github.com/yigit/coursemap/internal/app/services"
	"github.com/yigit/coursemap/internal/config"
	"github.com/yigit/coursemap/internal/db"
	appMiddleware "github.com/yigit/coursemap/internal/middleware"
	"github.com/yigit/coursemap/internal/pkg/histograms"
	"github.com/yigit/coursemap/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService   appServices.CatalogService
	GradesService    appServices.GradesService
	CourseController *appControllers.CourseController
	GradesController *appControllers.GradesController
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFromStrings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Debug().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Str("host", cfg.Database.Host).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	migrator := appMigrations.NewMigrator(database.Pool, lgr.With().Str("component", "migrations").Logger())
	if err := migrator.Migrate(ctx, appMigrations.Files()); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database ready")
	return database.Pool, nil
}

// CatalogSource picks where the served catalog comes from. The pool is only
// used, and only required, for the postgres source.
func CatalogSource(cfg *config.Config, pool *pgxpool.Pool) (appServices.CatalogSource, error) {
	switch cfg.Catalog.Source {
	case config.SourceFile:
		return appServices.NewFileCatalogSource(cfg.Catalog.Path), nil
	case config.SourcePostgres:
		if pool == nil {
			return nil, fmt.Errorf("postgres catalog source needs a database connection")
		}
		return appRepos.NewRepositories(pool).CourseRepository, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

// HistogramClient creates the grade histogram client from the grades section
func HistogramClient(cfg *config.Config, lgr zerolog.Logger) *histograms.Client {
	return histograms.NewClient(histograms.Config{
		APIBaseURL: cfg.Grades.APIBaseURL,
		RawBaseURL: cfg.Grades.RawBaseURL,
		Owner:      cfg.Grades.Owner,
		Repo:       cfg.Grades.Repo,
		Branch:     cfg.Grades.Branch,
		Token:      cfg.Grades.Token,
		Exam:       cfg.Grades.Exam,
		Timeout:    cfg.GradesTimeout(),
	}, nil, lgr)
}

// BuildDependencies loads the catalog and wires services and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, source appServices.CatalogSource, histogramSource appServices.HistogramSource, lgr zerolog.Logger) (*Dependencies, error) {
	catalog, err := source.List(ctx)
	if err != nil {
		lgr.Error().Err(err).Str("source", cfg.Catalog.Source).Msg("Failed to load course catalog")
		return nil, fmt.Errorf("failed to load course catalog: %w", err)
	}

	deps := &Dependencies{Logger: lgr}
	deps.CatalogService = appServices.NewCatalogService(catalog, cfg.Pipeline.CodeWidth)
	deps.GradesService = appServices.NewGradesService(histogramSource, cfg.Grades.Concurrency, lgr.With().Str("component", "grades").Logger())
	lgr.Info().Int("courses", deps.CatalogService.Len()).Str("source", cfg.Catalog.Source).Msg("Course catalog loaded")

	deps.CourseController = appControllers.NewCourseController(deps.CatalogService)
	deps.GradesController = appControllers.NewGradesController(deps.CatalogService, deps.GradesService)

	return deps, nil
}

// corsConfig allows read-only cross origin access from the configured origins
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", appMiddleware.RequestIDHeader},
		ExposeHeaders: []string{appMiddleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range cfg.Server.AllowedOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			c.AllowOrigins = nil
			return c
		}
		c.AllowOrigins = append(c.AllowOrigins, origin)
	}
	if len(c.AllowOrigins) == 0 {
		c.AllowAllOrigins = true
	}
	return c
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.AccessLog(lgr.With().Str("component", "http").Logger()))
	router.Use(cors.New(corsConfig(cfg)))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.CourseController, deps.GradesController)

	return router, nil
}
