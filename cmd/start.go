package cmd

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"filestorage/core/config"
	"filestorage/core/loader"
	"filestorage/core/logger"
	"filestorage/core/middleware/rayid"
	"filestorage/core/server"
	"filestorage/core/storage"
	"filestorage/feature/objects"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "filestorage/docs/swagger"
)

// @title File Storage API
// @version 1.0
// @description Stores, fetches and deletes opaque objects under slash-delimited keys on the local filesystem.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the object storage server",
	Long:  `Creates the storage root if needed, then serves objects over HTTP until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := cfg.Server.Validate(); err != nil {
			return err
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		engine, err := storage.NewEngine(cfg.Storage.Root)
		if err != nil {
			return fmt.Errorf("failed to initialize storage root %s: %w", cfg.Storage.Root, err)
		}

		app, err := newApp(cfg.Server, engine, logg)
		if err != nil {
			return err
		}

		// Bind before serving so an unusable address fails the command instead of a goroutine.
		ln, err := net.Listen("tcp", cfg.Server.Address)
		if err != nil {
			return fmt.Errorf("failed to bind %s: %w", cfg.Server.Address, err)
		}

		serveErr := make(chan error, 1)
		go func() {
			logg.Info("Starting server",
				zap.String("address", ln.Addr().String()),
				zap.String("storage_root", engine.Root()))
			serveErr <- app.Listener(ln)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err := <-serveErr:
			if err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-quit:
			logg.Info("Shutting down server...")
			return app.Shutdown()
		}
	},
}

// newApp builds the fiber app with middleware, API docs and every enabled feature mounted.
func newApp(cfg server.Config, engine *storage.Engine, logg *zap.Logger) (*fiber.App, error) {
	app := server.NewApp(cfg)

	// RayID must be first to trace everything
	app.Use(rayid.New())
	app.Use(requestLogger(logg))

	app.Get("/swagger/*", swagger.HandlerDefault)

	mgr := loader.NewManager()
	mgr.Register(objects.NewFeature(engine, logg))
	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}

	for _, f := range mgr.Features() {
		if f.IsEnabled() {
			logg.Info("Feature loaded", zap.String("feature", f.Name()))
		}
	}

	return app, nil
}

// requestLogger logs every request with its ray id, status and failure if any.
func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		err := c.Next()
		l.Info("Request handled",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()))
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
