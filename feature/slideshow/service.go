package slideshow

import (
	"context"
	"fmt"

	"display-sync/core/displayapi"
	"display-sync/core/storage"
	"display-sync/core/utils"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service enriches slideshow slides with the image URLs currently present
// in their bucket folder. Implements scheduler.Job.
type Service struct {
	client displayapi.Client
	store  storage.Client
	logger *zap.Logger
	cfg    Config
}

// NewService creates a new slideshow service.
func NewService(client displayapi.Client, store storage.Client, logger *zap.Logger, cfg Config) *Service {
	return &Service{
		client: client,
		store:  store,
		logger: logger,
		cfg:    cfg,
	}
}

// Name implements scheduler.Job.
func (s *Service) Name() string {
	return "slideshow"
}

// Run implements scheduler.Job: refreshes every slideshow slide. A failing
// slide is logged and skipped so the remaining slides still update.
func (s *Service) Run(ctx context.Context) error {
	templateID, err := s.client.GetTemplateID(ctx, s.cfg.Template)
	if err != nil {
		return fmt.Errorf("resolving template %q: %w", s.cfg.Template, err)
	}

	for _, slide := range s.client.FetchSlides(ctx, templateID) {
		if err := s.syncSlide(ctx, slide); err != nil {
			s.logger.Error("Slideshow slide sync failed",
				zap.String("slide", slide.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}

// syncSlide writes the slide folder's current image URLs into its jsonData.
// An emptied folder still updates the slide, so removed images disappear
// from the screen.
func (s *Service) syncSlide(ctx context.Context, slide displayapi.Slide) error {
	val, ok := slide.Content["imageFolder"]
	if !ok || val == nil {
		return nil
	}
	folder := utils.ToString(val)
	if folder == "" {
		return nil
	}

	urls, err := s.listImageURLs(ctx, folder)
	if err != nil {
		return fmt.Errorf("listing images in folder %q: %w", folder, err)
	}

	raw, err := json.Marshal(urls)
	if err != nil {
		return err
	}

	slide.Content["jsonData"] = string(raw)
	return s.client.UpdateSlide(ctx, slide.ID, slide)
}

// listImageURLs lists all objects under the folder prefix and builds their
// public URLs.
func (s *Service) listImageURLs(ctx context.Context, folder string) ([]string, error) {
	objects := s.store.ListObjects(ctx, s.cfg.Storage.Bucket, minio.ListObjectsOptions{
		Prefix:    folder,
		Recursive: true,
	})

	urls := []string{}
	for object := range objects {
		if object.Err != nil {
			return nil, object.Err
		}
		urls = append(urls, s.cfg.PublicBaseURL+object.Key+s.cfg.AccessToken)
	}
	return urls, nil
}
