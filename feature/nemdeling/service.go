package nemdeling

import (
	"context"
	"fmt"

	"display-sync/core/displayapi"
	"display-sync/core/reconcile"

	"go.uber.org/zap"
)

// feedName is used in logs and in the titles of slides created for this
// feature.
const feedName = "NemDeling"

// Service syncs NemDeling webhook payloads into the Display API. Each
// endpoint owns its own single-flight guard, so a slow service message sync
// does not block an event sync.
type Service struct {
	client displayapi.Client
	logger *zap.Logger
	cfg    Config

	serviceMessageGuard reconcile.Guard
	eventGuard          reconcile.Guard
	eventListGuard      reconcile.Guard
	eventThemeGuard     reconcile.Guard

	serviceMessages *reconcile.Orchestrator
	events          *reconcile.Orchestrator
	eventLists      *reconcile.Orchestrator
	eventThemes     *reconcile.Orchestrator
}

// NewService creates a new NemDeling service.
func NewService(client displayapi.Client, logger *zap.Logger, cfg Config) *Service {
	return &Service{
		client:          client,
		logger:          logger,
		cfg:             cfg,
		serviceMessages: reconcile.NewOrchestrator(client, logger, feedName, "service_message"),
		events:          reconcile.NewOrchestrator(client, logger, feedName, "event"),
		eventLists:      reconcile.NewOrchestrator(client, logger, feedName, "event_list"),
		eventThemes:     reconcile.NewOrchestrator(client, logger, feedName, "event_theme"),
	}
}

// SyncServiceMessages reconciles the service message playlists from a feed
// payload.
func (s *Service) SyncServiceMessages(ctx context.Context, feed *ServiceMessageFeed) ([]reconcile.Result, error) {
	if err := s.serviceMessageGuard.TryAcquire(); err != nil {
		return nil, err
	}
	defer s.serviceMessageGuard.Release()

	templateID, err := s.client.GetTemplateID(ctx, s.cfg.ServiceMessageTemplate)
	if err != nil {
		return nil, fmt.Errorf("resolving template %q: %w", s.cfg.ServiceMessageTemplate, err)
	}

	groups, notFound := mapServiceMessages(feed, templateID, s.screenTitles(ctx))
	results := s.serviceMessages.Run(ctx, groups, notFound)
	s.logResults("service messages", results)
	return results, nil
}

// SyncEvents reconciles the event playlists from a feed payload.
func (s *Service) SyncEvents(ctx context.Context, feed *EventFeed) ([]reconcile.Result, error) {
	if err := s.eventGuard.TryAcquire(); err != nil {
		return nil, err
	}
	defer s.eventGuard.Release()

	templateID, err := s.client.GetTemplateID(ctx, s.cfg.EventTemplate)
	if err != nil {
		return nil, fmt.Errorf("resolving template %q: %w", s.cfg.EventTemplate, err)
	}

	groups, notFound := mapEvents(feed, templateID, s.screenTitles(ctx))
	results := s.events.Run(ctx, groups, notFound)
	s.logResults("events", results)
	return results, nil
}

// SyncEventLists reconciles the event list playlists: each screen gets a
// single slide holding the screen's full event list as JSON.
func (s *Service) SyncEventLists(ctx context.Context, feed *EventFeed) ([]reconcile.Result, error) {
	if err := s.eventListGuard.TryAcquire(); err != nil {
		return nil, err
	}
	defer s.eventListGuard.Release()

	eventTemplateID, err := s.client.GetTemplateID(ctx, s.cfg.EventTemplate)
	if err != nil {
		return nil, fmt.Errorf("resolving template %q: %w", s.cfg.EventTemplate, err)
	}
	listTemplateID, err := s.client.GetTemplateID(ctx, s.cfg.EventListTemplate)
	if err != nil {
		return nil, fmt.Errorf("resolving template %q: %w", s.cfg.EventListTemplate, err)
	}

	groups, notFound := mapEvents(feed, eventTemplateID, s.screenTitles(ctx))
	collapsed, err := eventListGroups(groups, listTemplateID)
	if err != nil {
		return nil, fmt.Errorf("encoding event lists: %w", err)
	}

	results := s.eventLists.Run(ctx, collapsed, notFound)
	s.logResults("event lists", results)
	return results, nil
}

// SyncEventTheme reconciles the event theme playlists: event slides with the
// clock time stripped from their dates.
func (s *Service) SyncEventTheme(ctx context.Context, feed *EventFeed) ([]reconcile.Result, error) {
	if err := s.eventThemeGuard.TryAcquire(); err != nil {
		return nil, err
	}
	defer s.eventThemeGuard.Release()

	eventTemplateID, err := s.client.GetTemplateID(ctx, s.cfg.EventTemplate)
	if err != nil {
		return nil, fmt.Errorf("resolving template %q: %w", s.cfg.EventTemplate, err)
	}
	themeTemplateID, err := s.client.GetTemplateID(ctx, s.cfg.EventThemeTemplate)
	if err != nil {
		return nil, fmt.Errorf("resolving template %q: %w", s.cfg.EventThemeTemplate, err)
	}

	groups, notFound := mapEvents(feed, eventTemplateID, s.screenTitles(ctx))
	results := s.eventThemes.Run(ctx, eventThemeGroups(groups, themeTemplateID), notFound)
	s.logResults("event themes", results)
	return results, nil
}

func (s *Service) screenTitles(ctx context.Context) []string {
	screens := s.client.FetchScreens(ctx)
	titles := make([]string, 0, len(screens))
	for _, screen := range screens {
		titles = append(titles, screen.Title)
	}
	return titles
}

func (s *Service) logResults(endpoint string, results []reconcile.Result) {
	s.logger.Info("NemDeling sync finished",
		zap.String("endpoint", endpoint),
		zap.Int("screens", len(results)),
		zap.Any("results", results),
	)
}
