// Package libevents implements the library activities feed.
//
// On a fixed schedule the feed's XML document is fetched, activities with
// screen names are mapped to event slides and the per-screen "event_<name>"
// playlists are reconciled. Dates are rendered as Danish long dates; events
// spanning more than 24 hours also show their end date.
//
// The service implements scheduler.Job and is run by a supervised periodic
// runner. A run that overlaps a previous one is skipped.
package libevents
