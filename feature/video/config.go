package video

// Config holds configuration for the video platform feed.
type Config struct {
	// Enabled toggles the feed.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the URL of the video platform's photo list API.
	Endpoint string `mapstructure:"endpoint" default:"https://video.kk.dk/api/photo/list"`
	// Template is the template title identifying video slides.
	Template string `mapstructure:"template" default:"TwentyThreeVideo"`
	// IntervalSeconds is the sync interval.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"300"`
	// TimeoutSeconds is the feed request timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
