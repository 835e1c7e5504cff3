// Package nemdeling implements the NemDeling webhook feature.
//
// NemDeling pushes XML feeds of service messages and events. Each webhook
// maps its payload into per-screen slide lists and reconciles the matching
// playlists in the Display API (playlists are resolved by naming
// convention, e.g. screen "foo" and the events endpoint map to playlist
// "event_foo").
//
// # Endpoints
//
//   - POST /nemdeling/service-messages : service message slides.
//   - POST /nemdeling/events           : one slide per event.
//   - POST /nemdeling/event-lists     : one slide per screen, carrying the
//     screen's full event list as JSON.
//   - POST /nemdeling/event-theme     : event slides with the clock time
//     stripped from their dates.
//
// # Concurrency
//
// Each endpoint owns a single-flight guard: overlapping deliveries of the
// same feed are answered with 503 while a sync runs. Different endpoints
// sync independently.
//
// # Components
//
//   - Service: guards, maps and reconciles each feed.
//   - Handler: exposes the webhook endpoints.
//   - Feature: registers the feature with the application.
package nemdeling
