package nemdeling

import (
	"errors"

	"display-sync/core/logger"
	"display-sync/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles the NemDeling webhook requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the NemDeling webhook routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/nemdeling")
	group.Post("/service-messages", h.HandleServiceMessages)
	group.Post("/events", h.HandleEvents)
	group.Post("/event-lists", h.HandleEventLists)
	group.Post("/event-theme", h.HandleEventTheme)
}

// HandleServiceMessages syncs service message playlists from a feed payload.
// @Summary Sync service messages
// @Description Reconciles the service message playlists from an XML feed payload.
// @Tags nemdeling
// @Accept xml
// @Produce json
// @Success 200 {array} reconcile.Result "Per-screen sync results"
// @Failure 400 {object} map[string]string "Malformed feed payload"
// @Failure 503 {object} map[string]string "A sync is already in progress"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /nemdeling/service-messages [post]
func (h *Handler) HandleServiceMessages(c *fiber.Ctx) error {
	feed, err := ParseServiceMessageFeed(c.Body())
	if err != nil {
		return badFeed(c, err)
	}

	return h.respond(c, "service messages", func() ([]reconcile.Result, error) {
		return h.service.SyncServiceMessages(c.Context(), feed)
	})
}

// HandleEvents syncs event playlists from a feed payload.
// @Summary Sync events
// @Description Reconciles the event playlists from an XML feed payload.
// @Tags nemdeling
// @Accept xml
// @Produce json
// @Success 200 {array} reconcile.Result "Per-screen sync results"
// @Failure 400 {object} map[string]string "Malformed feed payload"
// @Failure 503 {object} map[string]string "A sync is already in progress"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /nemdeling/events [post]
func (h *Handler) HandleEvents(c *fiber.Ctx) error {
	feed, err := ParseEventFeed(c.Body())
	if err != nil {
		return badFeed(c, err)
	}

	return h.respond(c, "events", func() ([]reconcile.Result, error) {
		return h.service.SyncEvents(c.Context(), feed)
	})
}

// HandleEventLists syncs event list playlists from a feed payload.
// @Summary Sync event lists
// @Description Reconciles the event list playlists from an XML feed payload.
// @Tags nemdeling
// @Accept xml
// @Produce json
// @Success 200 {array} reconcile.Result "Per-screen sync results"
// @Failure 400 {object} map[string]string "Malformed feed payload"
// @Failure 503 {object} map[string]string "A sync is already in progress"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /nemdeling/event-lists [post]
func (h *Handler) HandleEventLists(c *fiber.Ctx) error {
	feed, err := ParseEventFeed(c.Body())
	if err != nil {
		return badFeed(c, err)
	}

	return h.respond(c, "event lists", func() ([]reconcile.Result, error) {
		return h.service.SyncEventLists(c.Context(), feed)
	})
}

// HandleEventTheme syncs event theme playlists from a feed payload.
// @Summary Sync event themes
// @Description Reconciles the event theme playlists from an XML feed payload.
// @Tags nemdeling
// @Accept xml
// @Produce json
// @Success 200 {array} reconcile.Result "Per-screen sync results"
// @Failure 400 {object} map[string]string "Malformed feed payload"
// @Failure 503 {object} map[string]string "A sync is already in progress"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /nemdeling/event-theme [post]
func (h *Handler) HandleEventTheme(c *fiber.Ctx) error {
	feed, err := ParseEventFeed(c.Body())
	if err != nil {
		return badFeed(c, err)
	}

	return h.respond(c, "event themes", func() ([]reconcile.Result, error) {
		return h.service.SyncEventTheme(c.Context(), feed)
	})
}

// respond runs a sync and maps its outcome to an HTTP response: a busy
// guard is 503, any other failure 500, success a 200 with per-screen
// results.
func (h *Handler) respond(c *fiber.Ctx, endpoint string, sync func() ([]reconcile.Result, error)) error {
	l := logger.WithRayID(h.service.logger, c)

	results, err := sync()
	if err != nil {
		if errors.Is(err, reconcile.ErrSyncInProgress) {
			l.Warn("Sync skipped, previous run still in progress", zap.String("endpoint", endpoint))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": endpoint + " are already being synced",
			})
		}

		l.Error("Sync failed", zap.String("endpoint", endpoint), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(results)
}

func badFeed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "malformed feed payload: " + err.Error(),
	})
}
