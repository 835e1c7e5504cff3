package nemdeling

// Config holds configuration for the NemDeling webhook feature.
type Config struct {
	// Enabled toggles the webhook endpoints.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// ServiceMessageTemplate is the template title for service message slides.
	ServiceMessageTemplate string `mapstructure:"service_message_template" default:"Servicemeddelelse"`
	// EventTemplate is the template title for event slides.
	EventTemplate string `mapstructure:"event_template" default:"event"`
	// EventListTemplate is the template title for event list slides.
	EventListTemplate string `mapstructure:"event_list_template" default:"Event List"`
	// EventThemeTemplate is the template title for event theme slides.
	EventThemeTemplate string `mapstructure:"event_theme_template" default:"Event Theme"`
}
