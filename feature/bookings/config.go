package bookings

// Config holds configuration for the booking feed.
type Config struct {
	// Enabled toggles the feed.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the URL of the bookings API.
	Endpoint string `mapstructure:"endpoint" default:"https://api.bookbyen.dk/api/Bookings/Infoscreen"`
	// Template is the template title identifying booking slides.
	Template string `mapstructure:"template" default:"book-byen"`
	// IntervalSeconds is the sync interval.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"300"`
	// TimeoutSeconds is the feed request timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
