// Package scheduler runs the pull feeds on their intervals.
//
// Each pull feed implements the Job interface and is wrapped into a Runner,
// a suture.Service executing the job immediately on start and then on every
// tick. The HTTP server is adapted into the same supervision tree via
// HTTPService, so one supervisor owns the whole process lifecycle.
//
// Job errors never propagate to the supervisor: a feed whose remote
// endpoint is down should simply try again on its next tick, not trigger
// restart backoff for the service.
package scheduler
