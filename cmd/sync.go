package cmd

import (
	"fmt"
	"log"

	"display-sync/core/config"
	"display-sync/core/displayapi"
	"display-sync/core/logger"
	"display-sync/core/scheduler"
	"display-sync/core/storage"

	"display-sync/feature/bookings"
	"display-sync/feature/libevents"
	"display-sync/feature/slideshow"
	"display-sync/feature/video"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd runs one pass of the scheduled pull feeds and exits. Useful for
// testing feed configuration and for running syncs from an external
// scheduler instead of the built-in one.
var syncCmd = &cobra.Command{
	Use:   "sync [feed]",
	Short: "Run one sync pass and exit",
	Long: `Runs a single sync pass of the scheduled pull feeds.

Without arguments all enabled feeds are synced once. With a feed name
(libevents, bookings, video, slideshow) only that feed runs, whether or
not it is enabled.

Examples:
  # Sync all enabled feeds once
  display-sync sync

  # Sync only the library events feed
  display-sync sync libevents`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}

		logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		client := displayapi.NewClient(cfg.DisplayAPI, logg)

		jobs, err := selectJobs(cfg, client, logg, args)
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			logg.Warn("No feeds enabled, nothing to sync")
			return nil
		}

		ctx := cmd.Context()
		for _, job := range jobs {
			logg.Info("Syncing feed", zap.String("feed", job.Name()))
			if err := job.Run(ctx); err != nil {
				return fmt.Errorf("%s: %w", job.Name(), err)
			}
		}
		return nil
	},
}

// selectJobs resolves which feeds to run: the named one, or all enabled.
func selectJobs(cfg *config.Config, client displayapi.Client, logg *zap.Logger, args []string) ([]scheduler.Job, error) {
	newSlideshow := func() (scheduler.Job, error) {
		store, err := storage.NewClient(cfg.Slideshow.Storage)
		if err != nil {
			return nil, fmt.Errorf("creating storage client: %w", err)
		}
		return slideshow.NewService(client, store, logg, cfg.Slideshow), nil
	}

	if len(args) == 1 {
		switch args[0] {
		case "libevents":
			return []scheduler.Job{libevents.NewService(client, logg, cfg.LibEvents)}, nil
		case "bookings":
			return []scheduler.Job{bookings.NewService(client, logg, cfg.Bookings)}, nil
		case "video":
			return []scheduler.Job{video.NewService(client, logg, cfg.Video)}, nil
		case "slideshow":
			job, err := newSlideshow()
			if err != nil {
				return nil, err
			}
			return []scheduler.Job{job}, nil
		default:
			return nil, fmt.Errorf("unknown feed %q", args[0])
		}
	}

	var jobs []scheduler.Job
	if cfg.LibEvents.Enabled() {
		jobs = append(jobs, libevents.NewService(client, logg, cfg.LibEvents))
	}
	if cfg.Bookings.Enabled {
		jobs = append(jobs, bookings.NewService(client, logg, cfg.Bookings))
	}
	if cfg.Video.Enabled {
		jobs = append(jobs, video.NewService(client, logg, cfg.Video))
	}
	if cfg.Slideshow.Enabled() {
		job, err := newSlideshow()
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
