// Package bookings implements the booking feed.
//
// Booking slides are created by operators in the Display API and carry a
// feedId (plus optional facilityId/areaId filters) in their content. On a
// fixed schedule the service fetches the matching booking list, drops
// deleted bookings, applies the slide's filters and writes the result back
// into the slide's jsonData field.
//
// Unlike the playlist feeds this is pure enrichment: slides are never
// created, deleted or moved between playlists.
package bookings
