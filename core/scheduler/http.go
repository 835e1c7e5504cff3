package scheduler

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// HTTPService adapts a Fiber app to suture's Serve pattern so the HTTP
// server lives in the same supervision tree as the feed runners.
type HTTPService struct {
	app  *fiber.App
	addr string
}

// NewHTTPService wraps the app for supervision.
func NewHTTPService(app *fiber.App, addr string) *HTTPService {
	return &HTTPService{app: app, addr: addr}
}

// Serve implements suture.Service.
func (s *HTTPService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(s.addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		_ = s.app.Shutdown()
		return ctx.Err()
	}
}

// String implements fmt.Stringer for supervisor logs.
func (s *HTTPService) String() string {
	return "http-server"
}
