package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"display-sync/core/config"
	"display-sync/core/displayapi"
	"display-sync/core/loader"
	"display-sync/core/logger"
	"display-sync/core/middleware/auth"
	"display-sync/core/middleware/rayid"
	"display-sync/core/scheduler"
	"display-sync/core/storage"

	"display-sync/feature/bookings"
	"display-sync/feature/libevents"
	"display-sync/feature/nemdeling"
	"display-sync/feature/slideshow"
	"display-sync/feature/video"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"github.com/thejerf/suture/v4"
	"go.uber.org/zap"

	_ "display-sync/docs/swagger"
)

// @title Display Sync API
// @version 1.0
// @description Webhook endpoints for syncing display content from external feeds.
// @host localhost:3000
// @BasePath /api/v1

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the sync service",
	Long:  `Starts the HTTP server, registers the webhook endpoints and supervises one periodic runner per enabled feed.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Display API Client
		client := displayapi.NewClient(cfg.DisplayAPI, logg)

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Webhook API (basic auth when credentials are configured)
		if !cfg.Server.AuthEnabled() {
			logg.Warn("Webhook basic auth is disabled")
		}
		api := app.Group("/api/v1", auth.New(auth.Config{
			Username: cfg.Server.BasicAuthUser,
			Password: cfg.Server.BasicAuthPass,
		}))

		// 5. Load Webhook Features
		mgr := loader.NewManager()
		mgr.Register(nemdeling.NewFeature(client, logg, cfg.NemDeling))
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Supervision Tree: HTTP server plus one runner per enabled feed
		supervisor := suture.New("display-sync", suture.Spec{
			EventHook: scheduler.ZapEventHook(logg),
		})
		supervisor.Add(scheduler.NewHTTPService(app, ":"+cfg.Server.Port))

		if cfg.LibEvents.Enabled() {
			svc := libevents.NewService(client, logg, cfg.LibEvents)
			supervisor.Add(scheduler.NewRunner(svc, interval(cfg.LibEvents.IntervalSeconds), logg))
		}
		if cfg.Bookings.Enabled {
			svc := bookings.NewService(client, logg, cfg.Bookings)
			supervisor.Add(scheduler.NewRunner(svc, interval(cfg.Bookings.IntervalSeconds), logg))
		}
		if cfg.Video.Enabled {
			svc := video.NewService(client, logg, cfg.Video)
			supervisor.Add(scheduler.NewRunner(svc, interval(cfg.Video.IntervalSeconds), logg))
		}
		if cfg.Slideshow.Enabled() {
			store, err := storage.NewClient(cfg.Slideshow.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			svc := slideshow.NewService(client, store, logg, cfg.Slideshow)
			supervisor.Add(scheduler.NewRunner(svc, interval(cfg.Slideshow.IntervalSeconds), logg))
		}

		// 7. Serve until interrupted
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logg.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := supervisor.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logg.Fatal("Supervisor exited", zap.Error(err))
		}
		logg.Info("Shut down cleanly")
	},
}

// interval converts a configured interval to a duration with a sane floor.
func interval(seconds int) time.Duration {
	if seconds <= 0 {
		seconds = 300
	}
	return time.Duration(seconds) * time.Second
}

func init() {
	RootCmd.AddCommand(startCmd)
}
