package slideshow

import "display-sync/core/storage"

// Config holds configuration for the slideshow feed.
type Config struct {
	// Storage configures the object store holding the slideshow images.
	Storage storage.Config `mapstructure:"storage"`
	// PublicBaseURL is the public URL prefix images are served from.
	PublicBaseURL string `mapstructure:"public_base_url" default:""`
	// AccessToken is appended to every image URL. May be empty for public
	// buckets; otherwise typically a query string like "?sig=...".
	AccessToken string `mapstructure:"access_token" default:""`
	// Template is the template title identifying slideshow slides.
	Template string `mapstructure:"template" default:"KK Slideshow"`
	// IntervalSeconds is the sync interval.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"900"`
}

// Enabled reports whether the feed is configured.
func (c Config) Enabled() bool {
	return c.Storage.Endpoint != "" && c.PublicBaseURL != ""
}
