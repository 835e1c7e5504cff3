// Package displayapi provides the REST client for the Display API, the
// digital-signage backend holding screens, playlists, slides and templates.
//
// # Client Interface
//
// The Client interface abstracts the remote API, making it easy to mock the
// Display API in unit tests (as seen in core/displayapi/mocks).
//
// # Collections
//
// Collection endpoints are paginated hydra-style: members live under
// "hydra:member" and resources are identified by "@id" IRIs. The client
// walks all pages and exposes plain structs with the IRI tails as ids.
//
// # Degraded reads
//
// FetchSlides and FetchScreens swallow fetch errors and return empty
// results so that one failing read does not abort a whole sync run. All
// mutating operations return their errors to the caller.
//
// # Authentication
//
// A single admin JWT is cached and reused until it is within 60 seconds of
// its exp claim, then refreshed via the authenticate endpoint. All requests
// pass through a shared rate limiter.
package displayapi
