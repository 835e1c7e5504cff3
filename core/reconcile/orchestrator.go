package reconcile

import (
	"context"
	"sort"

	"display-sync/core/displayapi"

	"go.uber.org/zap"
)

// Orchestrator runs one feed's sync across all screens: it resolves each
// screen's playlist by naming convention and hands the desired slide list
// to the reconciler, collecting a per-screen status report.
type Orchestrator struct {
	client     displayapi.Client
	reconciler *Reconciler
	logger     *zap.Logger
	feed       string
	prefix     string
}

// NewOrchestrator creates an orchestrator for one feed. feed is the
// human-readable feed name (used in logs and created slide titles), prefix
// the playlist naming prefix: screen "foo" maps to playlist "<prefix>_foo".
func NewOrchestrator(client displayapi.Client, logger *zap.Logger, feed, prefix string) *Orchestrator {
	return &Orchestrator{
		client:     client,
		reconciler: NewReconciler(client, logger, feed),
		logger:     logger,
		feed:       feed,
		prefix:     prefix,
	}
}

// PlaylistName returns the conventional playlist name for a screen.
func (o *Orchestrator) PlaylistName(screen string) string {
	return o.prefix + "_" + screen
}

// Run reconciles every screen in groups and reports notFound screens as
// their own status category. Screens whose playlist name resolves to
// nothing are skipped silently: the screen exists but is not configured for
// this feed. Output order is deterministic (screens sorted by name,
// not-found entries appended).
func (o *Orchestrator) Run(ctx context.Context, groups map[string][]SlideDescriptor, notFound []string) []Result {
	screens := make([]string, 0, len(groups))
	for name := range groups {
		screens = append(screens, name)
	}
	sort.Strings(screens)

	results := make([]Result, 0, len(screens)+len(notFound))
	for _, screen := range screens {
		playlist, err := o.client.GetPlaylistByName(ctx, o.PlaylistName(screen))
		if err != nil {
			// A failed lookup still produces an error result for the
			// screen; only unconfigured screens are dropped.
			o.logger.Error("Error resolving playlist",
				zap.String("feed", o.feed),
				zap.String("screen", screen),
				zap.Error(err),
			)
			results = append(results, Result{Name: screen, Status: StatusError})
			continue
		}
		if playlist == nil {
			// Screen is not configured for this feed.
			continue
		}

		status := StatusSuccess
		if err := o.reconciler.Reconcile(ctx, playlist.ID, groups[screen]); err != nil {
			o.logger.Error("Reconciliation failed",
				zap.String("feed", o.feed),
				zap.String("screen", screen),
				zap.String("playlist", playlist.ID),
				zap.Error(err),
			)
			status = StatusError
		}
		results = append(results, Result{Name: screen, Status: status})
	}

	for _, screen := range notFound {
		results = append(results, Result{Name: screen, Status: StatusNotFound})
	}

	return results
}
