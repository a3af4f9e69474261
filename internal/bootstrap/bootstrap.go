// Package bootstrap wires configuration, storage, services and routes.
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

	appControllers "github.com/rakshithv/placemate/internal/app/controllers"
	appMigrations "github.com/rakshithv/placemate/internal/app/migrations"
	appRepos "github.com/rakshithv/placemate/internal/app/repositories"
	"github.com/rakshithv/placemate/internal/app/repositories/memory"
	"github.com/rakshithv/placemate/internal/app/repositories/postgres"
	appRoutes "github.com/rakshithv/placemate/internal/app/routes"
	appServices "github.com/rakshithv/placemate/internal/app/services"
	"github.com/rakshithv/placemate/internal/config"
	"github.com/rakshithv/placemate/internal/db"
	appMiddleware "github.com/rakshithv/placemate/internal/middleware"
	pkgAuth "github.com/rakshithv/placemate/internal/pkg/auth"
	"github.com/rakshithv/placemate/internal/pkg/filestorage"
	"github.com/rakshithv/placemate/internal/pkg/helpers"
	"github.com/rakshithv/placemate/internal/pkg/logger"
	"github.com/rakshithv/placemate/internal/seed"
)

// Dependencies holds all the application dependencies.
type Dependencies struct {
	Store               *appRepos.Store
	AuthService         *appServices.AuthService
	StudentService      *appServices.StudentService
	DocumentService     *appServices.DocumentService
	CompanyService      *appServices.CompanyService
	DriveService        *appServices.DriveService
	AnalyticsService    *appServices.AnalyticsService
	ReportService       *appServices.ReportService
	InterviewService    *appServices.InterviewService
	AuthController      *appControllers.AuthController
	StudentController   *appControllers.StudentController
	DocumentController  *appControllers.DocumentController
	CompanyController   *appControllers.CompanyController
	DriveController     *appControllers.DriveController
	ReportController    *appControllers.ReportController
	InterviewController *appControllers.InterviewController
	EmployerController  *appControllers.EmployerController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	JWTService          *pkgAuth.JWTService
	FileStorage         *filestorage.LocalStorage
	Logger              zerolog.Logger
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

// SetupStore builds the repository store for the configured storage mode.
// Postgres mode connects, migrates and returns the pool for shutdown;
// memory mode returns a nil pool.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Store, *pgxpool.Pool, error) {
	if cfg.Storage.Mode == config.StorageModeMemory {
		lgr.Warn().Msg("Running with the in-memory store; data is lost on shutdown")
		store := memory.NewStore()
		if err := seed.CreateDefaultData(context.Background(), store, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
		return store, nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		dbPool.Close()
		return nil, nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	store := postgres.NewStore(dbPool)
	if err := seed.CreateDefaultData(context.Background(), store, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return store, dbPool, nil
}

// BuildDependencies initializes storage, services and controllers.
func BuildDependencies(cfg *config.Config, store *appRepos.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Store: store, Logger: lgr}

	fileStorage, err := filestorage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = fileStorage

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	var verifier pkgAuth.CredentialVerifier = pkgAuth.BcryptVerifier{}
	if cfg.Auth.Mode == config.AuthModeDemo {
		lgr.Warn().Msg("Demo credential mode enabled; every account accepts the shared demo password")
		verifier = pkgAuth.DemoVerifier{}
	}

	deps.AuthService = appServices.NewAuthService(store.Students, store.Officers, verifier, deps.JWTService)
	deps.StudentService = appServices.NewStudentService(store.Students, store.Interviews, store.Applications, fileStorage)
	deps.DocumentService = appServices.NewDocumentService(store.Documents, fileStorage, cfg.MaxUploadBytes())
	deps.CompanyService = appServices.NewCompanyService(store.Companies)
	deps.DriveService = appServices.NewDriveService(store.Drives, store.Students)
	deps.AnalyticsService = appServices.NewAnalyticsService(store.Analytics)
	deps.ReportService = appServices.NewReportService(store.Students, deps.AnalyticsService)
	deps.InterviewService = appServices.NewInterviewService(store.Interviews, store.Students)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, lgr)
	deps.DocumentController = appControllers.NewDocumentController(deps.DocumentService, lgr)
	deps.CompanyController = appControllers.NewCompanyController(deps.CompanyService, lgr)
	deps.DriveController = appControllers.NewDriveController(deps.DriveService, lgr)
	deps.ReportController = appControllers.NewReportController(deps.AnalyticsService, deps.ReportService, lgr)
	deps.InterviewController = appControllers.NewInterviewController(deps.InterviewService, lgr)
	deps.EmployerController = appControllers.NewEmployerController(deps.DriveService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	return deps, nil
}

// SetupRouter builds the gin engine with middleware and all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.StudentController,
		deps.DocumentController,
		deps.CompanyController,
		deps.DriveController,
		deps.ReportController,
		deps.InterviewController,
		deps.EmployerController,
		deps.AuthMiddleware,
		cfg.Storage.UploadDir,
	)

	lgr.Info().Msg("Router configured")
	return router
}
