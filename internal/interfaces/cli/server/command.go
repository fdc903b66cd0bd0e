package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/parley-chat/parley/internal/infrastructure/cache"
	"github.com/parley-chat/parley/internal/infrastructure/config"
	"github.com/parley-chat/parley/internal/infrastructure/database"
	"github.com/parley-chat/parley/internal/infrastructure/migration"
	"github.com/parley-chat/parley/internal/infrastructure/storage"
	httpRouter "github.com/parley-chat/parley/internal/interfaces/http"
	"github.com/parley-chat/parley/internal/shared/logger"
)

var (
	configFile     string
	autoMigrate    bool
	skipMigrations bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Parley chat server: REST API, session cookies and the /ws presence socket.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Derive the schema from the GORM models instead of running goose scripts (sqlite development only)")
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not migrate the database on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server",
		"mode", cfg.Server.Mode,
		"database", cfg.Database.Driver,
		"redis", cfg.Redis.Enabled,
		"auto_migrate", autoMigrate,
	)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := handleMigrations(cfg, log); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())
	}

	objects, err := storage.NewS3ObjectStore(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize object storage: %w", err)
	}

	router := httpRouter.NewRouter(httpRouter.Dependencies{
		DB:      database.Get(),
		Config:  cfg,
		Logger:  log,
		Redis:   redisClient,
		Objects: objects,
	})
	router.SetupRoutes()

	// No read/write timeouts: uploads can be slow and the socket pumps set
	// their own deadlines.
	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           router.GetEngine(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Infow("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	router.Shutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(cfg *config.Config, log logger.Interface) error {
	if skipMigrations {
		log.Infow("skipping migrations")
		return nil
	}

	if autoMigrate && cfg.Server.Mode == gin.ReleaseMode {
		log.Warnw("auto-migration is enabled in release mode - this is not recommended!")
	}

	manager := migration.NewManager(cfg.Database.Driver, autoMigrate)
	if err := manager.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
