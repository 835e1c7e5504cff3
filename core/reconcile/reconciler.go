package reconcile

import (
	"context"
	"fmt"

	"display-sync/core/displayapi"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Reconciler converges a playlist's slide set and order to a desired slide
// list, reusing existing slides where their content already matches.
type Reconciler struct {
	client displayapi.Client
	logger *zap.Logger
	feed   string
}

// NewReconciler creates a reconciler for one feed. The feed name is used in
// the titles of slides the reconciler creates.
func NewReconciler(client displayapi.Client, logger *zap.Logger, feed string) *Reconciler {
	return &Reconciler{
		client: client,
		logger: logger,
		feed:   feed,
	}
}

// Reconcile makes the playlist's slides match the desired list, in order.
//
// Desired entries are matched against the playlist's current slides; matched
// slides are reused (updated in place when their content differs), unmatched
// entries become new slides, and current slides matched by no entry are
// deleted. Weights are assigned by desired-list position. The final slide
// list is committed in a single playlist write once all create/update
// operations have settled.
//
// Create, update and commit failures abort the reconciliation; slides
// already created stay behind, the next run will pick them up by content.
// Deletions are best-effort cleanup and never fail the reconciliation.
func (r *Reconciler) Reconcile(ctx context.Context, playlistID string, desired []SlideDescriptor) error {
	existing, err := r.client.GetPlaylistSlides(ctx, playlistID)
	if err != nil {
		return fmt.Errorf("fetching current playlist slides: %w", err)
	}

	// Each desired entry is matched against the original slide list and
	// settles into its own slot, so the ensure operations can run
	// concurrently.
	items := make([]displayapi.PlaylistItem, len(desired))
	p := pool.New().WithErrors().WithContext(ctx)
	for i, slide := range desired {
		p.Go(func(ctx context.Context) error {
			item, err := r.ensureSlide(ctx, slide, i, existing)
			if err != nil {
				return err
			}
			items[i] = item
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return err
	}

	r.deleteOrphans(ctx, existing, items)

	if err := r.client.SavePlaylistSlides(ctx, playlistID, items); err != nil {
		return err
	}
	return nil
}

// ensureSlide resolves one desired entry to a playlist item, creating or
// updating a slide as needed.
func (r *Reconciler) ensureSlide(ctx context.Context, desired SlideDescriptor, position int, existing []displayapi.PlaylistSlide) (displayapi.PlaylistItem, error) {
	item := displayapi.PlaylistItem{Weight: position}

	if match, ok := findMatch(desired, existing); ok {
		item.SlideID = match.SlideID
		if contentEqual(desired.Content, match.Content) {
			// Reuse as-is; only the weight may change, and that is part
			// of the playlist commit.
			return item, nil
		}

		err := r.client.UpdateSlide(ctx, match.SlideID, displayapi.Slide{
			ID:         match.SlideID,
			Title:      r.slideTitle(position),
			TemplateID: desired.TemplateID,
			Content:    desired.Content,
		})
		if err != nil {
			return item, err
		}
		return item, nil
	}

	created, err := r.client.CreateSlide(ctx, displayapi.CreateSlideInput{
		Title:      r.slideTitle(position),
		TemplateID: desired.TemplateID,
		Content:    desired.Content,
	})
	if err != nil {
		return item, err
	}

	item.SlideID = created.ID
	return item, nil
}

// findMatch locates the existing slide a desired entry corresponds to.
// Entries carrying an external id match on that id; everything else matches
// on full content equality.
func findMatch(desired SlideDescriptor, existing []displayapi.PlaylistSlide) (displayapi.PlaylistSlide, bool) {
	if id, ok := externalID(desired.Content); ok {
		for _, slide := range existing {
			if existingID, ok := externalID(slide.Content); ok && existingID == id {
				return slide, true
			}
		}
		return displayapi.PlaylistSlide{}, false
	}

	for _, slide := range existing {
		if contentEqual(desired.Content, slide.Content) {
			return slide, true
		}
	}
	return displayapi.PlaylistSlide{}, false
}

// deleteOrphans removes existing slides no desired entry claimed. Deletes
// are fired without waiting for completion: the playlist commit is the
// authoritative state change, a slide that survives cleanup is invisible
// once detached.
func (r *Reconciler) deleteOrphans(ctx context.Context, existing []displayapi.PlaylistSlide, kept []displayapi.PlaylistItem) {
	keep := make(map[string]struct{}, len(kept))
	for _, item := range kept {
		keep[item.SlideID] = struct{}{}
	}

	// The deletes outlive the reconciliation on purpose, so they get a
	// context that survives the caller's cancellation.
	cleanupCtx := context.WithoutCancel(ctx)
	for _, slide := range existing {
		if _, ok := keep[slide.SlideID]; ok {
			continue
		}
		go func(id string) {
			if err := r.client.DeleteSlide(cleanupCtx, id); err != nil {
				r.logger.Warn("Orphan slide cleanup failed",
					zap.String("feed", r.feed),
					zap.String("slide", id),
					zap.Error(err),
				)
			}
		}(slide.SlideID)
	}
}

func (r *Reconciler) slideTitle(position int) string {
	return fmt.Sprintf("%s slide - %d", r.feed, position+1)
}
