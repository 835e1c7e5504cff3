package video

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

// Service enriches video slides with the current photo list from the video
// platform. Like the booking feed it is pure enrichment: slides are
// operator-managed and only their jsonData is refreshed. Implements
// scheduler.Job.
type Service struct {
	client displayapi.Client
	http   *http.Client
	logger *zap.Logger
	cfg    Config
}

// photoList is the video platform's list response.
type photoList struct {
	Status string           `json:"status"`
	Photos []map[string]any `json:"photos"`
}

// NewService creates a new video service.
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
	return "video"
}

// Run implements scheduler.Job: refreshes every video slide. A failing
// slide is logged and skipped so the remaining slides still update.
func (s *Service) Run(ctx context.Context) error {
	templateID, err := s.client.GetTemplateID(ctx, s.cfg.Template)
	if err != nil {
		return fmt.Errorf("resolving template %q: %w", s.cfg.Template, err)
	}

	for _, slide := range s.client.FetchSlides(ctx, templateID) {
		if err := s.syncSlide(ctx, slide); err != nil {
			s.logger.Error("Video slide sync failed",
				zap.String("slide", slide.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}

// syncSlide refreshes one slide's jsonData with the photo ids matching the
// slide's tag and album filters.
func (s *Service) syncSlide(ctx context.Context, slide displayapi.Slide) error {
	photoIDs, err := s.fetchPhotoIDs(ctx, slide.Content)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(photoIDs)
	if err != nil {
		return err
	}

	slide.Content["jsonData"] = string(raw)
	return s.client.UpdateSlide(ctx, slide.ID, slide)
}

// fetchPhotoIDs queries the photo list API and collects the ids of all
// photos in the response.
func (s *Service) fetchPhotoIDs(ctx context.Context, content map[string]any) ([]any, error) {
	endpoint, err := url.Parse(s.cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	query := endpoint.Query()
	query.Set("format", "json")
	query.Set("raw", "true")
	if tags := utils.ToString(content["tags"]); content["tags"] != nil && tags != "" {
		query.Set("tags", tags)
	}
	if album := utils.ToString(content["album_id"]); content["album_id"] != nil && album != "" {
		query.Set("album_id", album)
	}
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
		return nil, fmt.Errorf("photo list API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var list photoList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, err
	}
	if list.Status != "ok" {
		return nil, fmt.Errorf("photo list API returned status %q", list.Status)
	}

	photoIDs := make([]any, 0, len(list.Photos))
	for _, photo := range list.Photos {
		if id, ok := photo["photo_id"]; ok && id != nil && utils.ToString(id) != "" {
			photoIDs = append(photoIDs, id)
		}
	}
	return photoIDs, nil
}
