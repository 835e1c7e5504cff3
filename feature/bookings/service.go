package bookings

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"display-sync/core/displayapi"
	"display-sync/core/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Service enriches booking slides with live data from the bookings API.
// Booking slides are operator-managed: the service never creates or deletes
// them, it only refreshes their jsonData payload. Implements scheduler.Job.
type Service struct {
	client displayapi.Client
	http   *http.Client
	logger *zap.Logger
	cfg    Config
}

// NewService creates a new bookings service.
func NewService(client displayapi.Client, logger *zap.Logger, cfg Config) *Service {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &Service{
		client: client,
		http:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger: logger,
		cfg:    cfg,
	}
}

// Name implements scheduler.Job.
func (s *Service) Name() string {
	return "bookings"
}

// Run implements scheduler.Job: refreshes every booking slide. A failing
// slide is logged and skipped so the remaining slides still update.
func (s *Service) Run(ctx context.Context) error {
	templateID, err := s.client.GetTemplateID(ctx, s.cfg.Template)
	if err != nil {
		return fmt.Errorf("resolving template %q: %w", s.cfg.Template, err)
	}

	for _, slide := range s.client.FetchSlides(ctx, templateID) {
		if err := s.syncSlide(ctx, slide); err != nil {
			s.logger.Error("Booking slide sync failed",
				zap.String("slide", slide.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}

// syncSlide refreshes one slide's jsonData from the bookings API, applying
// the slide's own facility and area filters.
func (s *Service) syncSlide(ctx context.Context, slide displayapi.Slide) error {
	val, ok := slide.Content["feedId"]
	if !ok || val == nil {
		return fmt.Errorf("slide has no feedId")
	}
	feedID := utils.ToString(val)

	bookings, err := s.fetchBookings(ctx, feedID)
	if err != nil {
		return fmt.Errorf("fetching bookings for feed %s: %w", feedID, err)
	}

	filtered := filterBookings(bookings,
		utils.ToInt(slide.Content["facilityId"]),
		utils.ToInt(slide.Content["areaId"]),
	)

	raw, err := json.Marshal(filtered)
	if err != nil {
		return err
	}

	slide.Content["jsonData"] = string(raw)
	return s.client.UpdateSlide(ctx, slide.ID, slide)
}

// fetchBookings downloads the booking list for one location.
func (s *Service) fetchBookings(ctx context.Context, feedID string) ([]map[string]any, error) {
	endpoint, err := url.Parse(s.cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	query := endpoint.Query()
	query.Set("locationId", feedID)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("bookings API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var bookings []map[string]any
	if err := json.Unmarshal(body, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// filterBookings drops deleted bookings and, when the slide pins a facility
// or area, bookings outside them. Zero ids mean "no filter".
func filterBookings(bookings []map[string]any, facilityID, areaID int) []map[string]any {
	filtered := make([]map[string]any, 0, len(bookings))
	for _, booking := range bookings {
		if deleted, _ := booking["isDeleted"].(bool); deleted {
			continue
		}

		facility, _ := booking["facility"].(map[string]any)
		if facilityID != 0 {
			if facility == nil || utils.ToInt(facility["id"]) != facilityID {
				continue
			}
		}
		if areaID != 0 {
			area, _ := facility["area"].(map[string]any)
			if area == nil || utils.ToInt(area["id"]) != areaID {
				continue
			}
		}

		filtered = append(filtered, booking)
	}
	return filtered
}
