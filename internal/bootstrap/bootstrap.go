package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/idscan/internal/app/controllers"
	appMigrations "github.com/yigit/idscan/internal/app/migrations"
	appRepos "github.com/yigit/idscan/internal/app/repositories"
	appRoutes "github.com/yigit/idscan/internal/app/routes"
	appServices "github.com/yigit/idscan/internal/app/services"
	"github.com/yigit/idscan/internal/config"
	"github.com/yigit/idscan/internal/db"
	appMiddleware "github.com/yigit/idscan/internal/middleware"
	"github.com/yigit/idscan/internal/pkg/helpers"
	"github.com/yigit/idscan/internal/pkg/logger"
	"github.com/yigit/idscan/internal/pkg/remoteapi"
	"github.com/yigit/idscan/internal/pkg/websocket"
)

// Core holds the storage and services shared by the API server and the CLI
type Core struct {
	Repos   *appRepos.Repositories
	Factory *appServices.RecordFactory
	Store   *appServices.StudentStore
	Scans   *appServices.ScanService
	Uploads *appServices.UploadService
	Export  *appServices.ExportService
}

// Close releases the storage backend
func (c *Core) Close() error {
	return c.Repos.Close()
}

// Dependencies holds everything the HTTP server needs
type Dependencies struct {
	*Core
	Hub               *websocket.Hub
	FeedHandler       *websocket.Handler
	StudentController *appControllers.StudentController
	ScanController    *appControllers.ScanController
	UploadController  *appControllers.UploadController
	HealthController  *appControllers.HealthController
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Str("storage", cfg.Storage.Driver).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// OpenStorage connects the key/value backend selected by storage.driver.
// For PostgreSQL the bundled migrations run first.
func OpenStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (appRepos.KeyValueStore, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		lgr.Warn().Msg("Using in-memory storage; the list is lost on exit")
		return appRepos.NewMemoryKV(), nil

	case config.DriverFile:
		return appRepos.NewFileKV(cfg.Storage.Path)

	case config.DriverSQLite:
		conn, err := db.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		return appRepos.NewSQLiteKV(conn), nil

	case config.DriverPostgres:
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			return nil, err
		}
		lgr.Info().Msg("Running database migrations...")
		if err := appMigrations.NewMigrator(database).Migrate(ctx); err != nil {
			database.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		return &postgresStore{PostgresKV: appRepos.NewPostgresKV(database.Pool), db: database}, nil

	case config.DriverRedis:
		client, err := db.NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		return appRepos.NewRedisKV(client, "idscan:"), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// postgresStore closes the pool together with the store
type postgresStore struct {
	*appRepos.PostgresKV
	db *db.PostgresDB
}

func (s *postgresStore) Close() error {
	s.db.Close()
	return nil
}

// NewUploader builds the remote API client, or returns nil when no base URL
// is configured.
func NewUploader(cfg *config.Config, lgr zerolog.Logger) (appServices.StudentUploader, error) {
	timeout := helpers.ParseDuration(cfg.Remote.Timeout, 30*time.Second)
	client, err := remoteapi.NewClient(cfg.Remote.BaseURL, timeout, lgr.With().Str("component", "remoteapi").Logger())
	if errors.Is(err, remoteapi.ErrNotConfigured) {
		lgr.Warn().Msg("Remote API base URL is not set; uploads will fail")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	lgr.Info().Str("endpoint", client.Endpoint()).Msg("Remote API configured")
	return client, nil
}

// BuildCore wires repositories and services over kv and hydrates the list.
func BuildCore(ctx context.Context, cfg *config.Config, kv appRepos.KeyValueStore, lgr zerolog.Logger) (*Core, error) {
	core := &Core{Repos: appRepos.NewRepositories(kv, cfg.Storage.Key)}

	core.Factory = appServices.NewRecordFactory(cfg.Records.TimestampLayout)
	core.Store = appServices.NewStudentStore(core.Repos.StudentList, core.Factory, lgr.With().Str("component", "store").Logger())
	if err := core.Store.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load student list: %w", err)
	}

	uploader, err := NewUploader(cfg, lgr)
	if err != nil {
		return nil, err
	}

	core.Scans = appServices.NewScanService(core.Store, nil)
	core.Uploads = appServices.NewUploadService(core.Store, uploader, cfg.Remote.MaxConcurrency, lgr.With().Str("component", "upload").Logger())
	core.Export = appServices.NewExportService(core.Store, cfg.Export.Filename, cfg.Export.Quote)
	return core, nil
}

// BuildDependencies adds the scan feed and controllers on top of core.
func BuildDependencies(cfg *config.Config, core *Core, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Core: core, Logger: lgr}

	deps.Hub = websocket.NewHub(lgr.With().Str("component", "scanfeed").Logger())
	core.Store.Subscribe(deps.Hub.NotifyListChanged)
	deps.FeedHandler = websocket.NewHandler(deps.Hub, core.Scans, lgr.With().Str("component", "scanfeed").Logger())

	deps.StudentController = appControllers.NewStudentController(core.Store, core.Export)
	deps.ScanController = appControllers.NewScanController(core.Scans)
	deps.UploadController = appControllers.NewUploadController(core.Uploads)
	deps.HealthController = appControllers.NewHealthController(core.Store, cfg.Storage.Driver)
	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr.With().Str("component", "http").Logger()))
	router.Use(appMiddleware.CORS())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.ScanController,
		deps.UploadController,
		deps.HealthController,
		deps.FeedHandler,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
