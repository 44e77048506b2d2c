// Package bootstrap assembles configuration, storage, and dependencies.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/deniz/classbooker/internal/app/auth"
	appControllers "github.com/deniz/classbooker/internal/app/controllers"
	appMigrations "github.com/deniz/classbooker/internal/app/migrations"
	appRepos "github.com/deniz/classbooker/internal/app/repositories"
	appRoutes "github.com/deniz/classbooker/internal/app/routes"
	appServices "github.com/deniz/classbooker/internal/app/services"
	"github.com/deniz/classbooker/internal/config"
	"github.com/deniz/classbooker/internal/db"
	appMiddleware "github.com/deniz/classbooker/internal/middleware"
	pkgAuth "github.com/deniz/classbooker/internal/pkg/auth"
	"github.com/deniz/classbooker/internal/pkg/logger"
	"github.com/deniz/classbooker/internal/pkg/paygate"
	"github.com/deniz/classbooker/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	UserService          appServices.UserService
	ClassService         appServices.ClassService
	BookingService       appServices.BookingService
	PaymentService       appServices.PaymentService
	EnrollmentService    appServices.EnrollmentService
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	ClassController      *appControllers.ClassController
	BookingController    *appControllers.BookingController
	PaymentController    *appControllers.PaymentController
	EnrollmentController *appControllers.EnrollmentController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	AuthzService         *appAuth.AuthorizationService
	PaymentGateway       paygate.Gateway
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations, and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection established")

	migrator := appMigrations.NewMigrator(dbPool)
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: parseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.User)
	deps.PaymentGateway = paygate.NewClient(cfg.Payment.APIBaseURL, cfg.Payment.SecretKey)

	deps.AuthService = appServices.NewAuthService(deps.Repos.User, deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(deps.Repos.User, lgr)
	deps.ClassService = appServices.NewClassService(deps.Repos.Class, lgr)
	deps.BookingService = appServices.NewBookingService(deps.Repos.Booking, deps.Repos.Class, lgr)
	deps.PaymentService = appServices.NewPaymentService(
		deps.Repos.Payment,
		deps.Repos.Enrollment,
		deps.Repos.Class,
		deps.Repos.Booking,
		deps.PaymentGateway,
		cfg.Payment.Currency,
		lgr,
	)
	deps.EnrollmentService = appServices.NewEnrollmentService(deps.Repos.Enrollment, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, deps.AuthzService, lgr)
	deps.ClassController = appControllers.NewClassController(deps.ClassService, lgr)
	deps.BookingController = appControllers.NewBookingController(deps.BookingService, lgr)
	deps.PaymentController = appControllers.NewPaymentController(deps.PaymentService, lgr)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ClassController,
		deps.BookingController,
		deps.PaymentController,
		deps.EnrollmentController,
		deps.AuthMiddleware,
	)

	return router
}

// parseDuration parses a duration string and falls back to a default on error.
func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
