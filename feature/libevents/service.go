package libevents

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"display-sync/core/displayapi"
	"display-sync/core/reconcile"

	"go.uber.org/zap"
)

// feedName is used in logs and in the titles of slides created for this
// feature.
const feedName = "LibEvents"

// Service syncs the library activities feed into the Display API event
// playlists. It implements scheduler.Job.
type Service struct {
	client       displayapi.Client
	http         *http.Client
	logger       *zap.Logger
	cfg          Config
	guard        reconcile.Guard
	orchestrator *reconcile.Orchestrator
}

// NewService creates a new library events service.
func NewService(client displayapi.Client, logger *zap.Logger, cfg Config) *Service {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &Service{
		client:       client,
		http:         &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger:       logger,
		cfg:          cfg,
		orchestrator: reconcile.NewOrchestrator(client, logger, feedName, "event"),
	}
}

// Name implements scheduler.Job.
func (s *Service) Name() string {
	return "libevents"
}

// Run implements scheduler.Job: one full feed sync. Overlapping runs are
// skipped, the next tick retries.
func (s *Service) Run(ctx context.Context) error {
	if err := s.guard.TryAcquire(); err != nil {
		s.logger.Warn("Sync skipped, previous run still in progress", zap.String("feed", s.Name()))
		return nil
	}
	defer s.guard.Release()

	feed, err := s.fetchFeed(ctx)
	if err != nil {
		return fmt.Errorf("fetching activities feed: %w", err)
	}
	if len(feed.Activities) == 0 {
		s.logger.Info("Activities feed is empty, nothing to sync", zap.String("feed", s.Name()))
		return nil
	}

	templateID, err := s.client.GetTemplateID(ctx, s.cfg.Template)
	if err != nil {
		return fmt.Errorf("resolving template %q: %w", s.cfg.Template, err)
	}

	screens := s.client.FetchScreens(ctx)
	titles := make([]string, 0, len(screens))
	for _, screen := range screens {
		titles = append(titles, screen.Title)
	}

	groups, notFound := mapActivities(feed, templateID, titles)
	results := s.orchestrator.Run(ctx, groups, notFound)
	s.logger.Info("Library events sync finished",
		zap.Int("screens", len(results)),
		zap.Any("results", results),
	)
	return nil
}

// fetchFeed downloads and parses the activities XML document.
func (s *Service) fetchFeed(ctx context.Context) (*ActivityFeed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.Endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return ParseActivityFeed(body)
}
