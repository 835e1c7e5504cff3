package libevents

// Config holds configuration for the library events feed.
type Config struct {
	// Endpoint is the URL of the activities XML feed. The feed is disabled
	// when empty.
	Endpoint string `mapstructure:"endpoint" default:""`
	// Template is the template title for event slides.
	Template string `mapstructure:"template" default:"event"`
	// IntervalSeconds is the sync interval.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"300"`
	// TimeoutSeconds is the feed request timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Enabled reports whether the feed is configured.
func (c Config) Enabled() bool {
	return c.Endpoint != ""
}
