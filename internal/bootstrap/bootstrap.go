package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/schoolportal/internal/app/auth"
	appControllers "github.com/yigit/schoolportal/internal/app/controllers"
	appMigrations "github.com/yigit/schoolportal/internal/app/migrations"
	appRepos "github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/app/repositories/memory"
	"github.com/yigit/schoolportal/internal/app/repositories/postgres"
	appRoutes "github.com/yigit/schoolportal/internal/app/routes"
	appServices "github.com/yigit/schoolportal/internal/app/services"
	"github.com/yigit/schoolportal/internal/config"
	"github.com/yigit/schoolportal/internal/db"
	appMiddleware "github.com/yigit/schoolportal/internal/middleware"
	pkgAuth "github.com/yigit/schoolportal/internal/pkg/auth"
	"github.com/yigit/schoolportal/internal/pkg/logger"
	"github.com/yigit/schoolportal/internal/pkg/retry"
	"github.com/yigit/schoolportal/internal/pkg/validation"
	"github.com/yigit/schoolportal/internal/pkg/websocket"
	"github.com/yigit/schoolportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Config         *config.Config
	Store          appRepos.Store
	Postgres       *db.PostgresDB // nil for the memory driver
	JWTService     *pkgAuth.JWTService
	Services       *appServices.Services
	AuthzService   *appAuth.AuthorizationService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Hub            *websocket.Hub
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger

	stopHub context.CancelFunc
}

// Close stops the notification hub and releases the store connection, if any
func (d *Dependencies) Close() {
	if d.stopHub != nil {
		d.stopHub()
	}
	if d.Postgres != nil {
		d.Postgres.Close()
	}
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// RetryPolicy builds the read retry policy from configuration
func RetryPolicy(cfg *config.Config) retry.Policy {
	return retry.Policy{
		MaxAttempts:     cfg.Retry.MaxAttempts,
		InitialInterval: cfg.Retry.InitialInterval,
		MaxInterval:     cfg.Retry.MaxInterval,
	}
}

// ConnectPostgres opens the connection pool described by cfg.
func ConnectPostgres(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("dbname", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// SetupStore opens the store selected by the configured driver. For postgres the
// embedded migrations are applied before the store is returned.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (appRepos.Store, *db.PostgresDB, error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		lgr.Warn().Msg("Using in-memory store; data is lost on restart")
		return memory.NewStore(), nil, nil

	case config.DriverPostgres:
		database, err := ConnectPostgres(ctx, cfg, lgr)
		if err != nil {
			return nil, nil, err
		}

		lgr.Info().Msg("Running database migrations...")
		if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx, appMigrations.Embedded()); err != nil {
			database.Close()
			lgr.Error().Err(err).Msg("Database migration error")
			return nil, nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		return postgres.NewStore(database), database, nil

	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// BuildDependencies initializes the store, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	store, database, err := SetupStore(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}

	deps := NewDependencies(cfg, store, lgr)
	deps.Postgres = database

	if err := seed.CreateDefaultData(ctx, cfg, deps.Services.Auth, lgr); err != nil {
		// seeding is best effort
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return deps, nil
}

// NewDependencies wires services and controllers on top of an open store. It
// starts the notification hub, which runs until Close is called.
func NewDependencies(cfg *config.Config, store appRepos.Store, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Config: cfg,
		Store:  store,
		Logger: lgr,
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Hub = websocket.NewHub(logger.Component("websocket_hub"))
	hubCtx, cancel := context.WithCancel(context.Background())
	deps.stopHub = cancel
	go deps.Hub.Run(hubCtx)

	deps.Services = appServices.NewServices(store, deps.JWTService, RetryPolicy(cfg), deps.Hub, lgr)
	deps.AuthzService = appAuth.NewAuthorizationService()
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:       appControllers.NewAuthController(deps.Services.Auth, logger.Component("auth_controller")),
		Students:   appControllers.NewStudentController(deps.Services.Students, deps.Services.Summary, deps.AuthzService, logger.Component("student_controller")),
		Tasks:      appControllers.NewTaskController(deps.Services.Tasks, logger.Component("task_controller")),
		Attendance: appControllers.NewAttendanceController(deps.Services.Attendance, logger.Component("attendance_controller")),
		Exams:      appControllers.NewExamController(deps.Services.Exams, logger.Component("exam_controller")),
		Me:         appControllers.NewMeController(deps.Services, logger.Component("me_controller")),
		Health:     appControllers.NewHealthController(cfg.Database.Driver),

		Notifications: websocket.NewHandler(deps.Hub, logger.Component("websocket")),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}

	// request DTOs report json field names and understand the custom tags
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.Configure(v)
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	if appRoutes.SetupSwagger(router, cfg) {
		lgr.Info().Str("path", "/swagger/index.html").Msg("Swagger UI enabled")
	}

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
