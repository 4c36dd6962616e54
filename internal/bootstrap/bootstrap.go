package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/eschool/internal/app/controllers"
	appMigrations "github.com/yigit/eschool/internal/app/migrations"
	appRepos "github.com/yigit/eschool/internal/app/repositories"
	appRoutes "github.com/yigit/eschool/internal/app/routes"
	appServices "github.com/yigit/eschool/internal/app/services"
	"github.com/yigit/eschool/internal/config"
	"github.com/yigit/eschool/internal/db"
	appMiddleware "github.com/yigit/eschool/internal/middleware"
	pkgAuth "github.com/yigit/eschool/internal/pkg/auth"
	"github.com/yigit/eschool/internal/pkg/helpers"
	"github.com/yigit/eschool/internal/pkg/logger"
	"github.com/yigit/eschool/internal/seed"
)

// DefaultConfigPath is used unless CONFIG_PATH is set
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	TeacherService       appServices.TeacherService
	CourseService        appServices.CourseService
	CourseTeacherService appServices.CourseTeacherService
	Controllers          appRoutes.Controllers
	AuthMiddleware       *appMiddleware.AuthMiddleware // nil when auth is disabled
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// ConfigPath returns the configuration file location
func ConfigPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultConfigPath
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(ConfigPath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds default data.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Migrations.Dir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	migrateCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	if err := appMigrations.NewMigrator(dbPool, lgr).Migrate(migrateCtx, os.DirFS(migrationsDir)); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		repos := appRepos.NewRepositories(dbPool)
		if err := seed.CreateDefaultData(ctx, repos.TeacherRepository, repos.CourseRepository, lgr); err != nil {
			// Seeding is best effort
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.CourseTeacherService = appServices.NewCourseTeacherService(
		deps.Repos.CourseTeacherRepository,
		deps.Repos.TeacherRepository,
		deps.Repos.CourseRepository,
		lgr,
	)

	if cfg.Auth.Enabled {
		deps.JWTService = NewJWTService(cfg)
		deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	}

	deps.Controllers = appRoutes.Controllers{
		CourseTeacher: appControllers.NewCourseTeacherController(deps.CourseTeacherService),
		Teacher:       appControllers.NewTeacherController(deps.TeacherService),
		Course:        appControllers.NewCourseController(deps.CourseService),
		Health:        appControllers.NewHealthController(dbPool),
	}

	return deps
}

// NewJWTService builds the token service from the auth configuration
func NewJWTService(cfg *config.Config) *pkgAuth.JWTService {
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.Auth.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.Auth.TokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.Auth.Issuer,
	})
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	return router
}
