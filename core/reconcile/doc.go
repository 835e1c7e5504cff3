// Package reconcile converges Display API playlists to the slide lists the
// feed providers want shown.
//
// # Model
//
// A feed produces, per screen, an ordered list of SlideDescriptors (template
// plus content payload). The Reconciler diffs that list against the slides
// currently attached to the screen's playlist and issues the minimal set of
// create/update/delete operations, then commits the final ordered slide list
// in a single playlist write. Slide weight always equals the desired-list
// position, so the input order is authoritative end-to-end.
//
// # Matching
//
// Descriptors carrying an externalId content field are matched against
// existing slides by that id; all others match by structural content
// equality. Matched slides are reused (updated in place when their content
// changed) instead of being recreated, which avoids flicker on the screens
// and keeps slide ids stable.
//
// # Failure semantics
//
// Create, update and commit failures fail the whole reconciliation for that
// screen. Orphan deletions are best-effort and fire-and-forget: the playlist
// commit is the authoritative state change, a stray undeleted slide is
// invisible once detached. There are no retries; the next scheduled run is
// the retry.
//
// # Coordination
//
// Each feed owns a single-flight Guard preventing two concurrent syncs of
// the same feed. The Orchestrator maps per-screen desired lists to
// playlists via the "<prefix>_<screen>" naming convention and aggregates
// per-screen results.
package reconcile
