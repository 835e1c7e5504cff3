package config

import (
	"fmt"
	"reflect"
	"strings"

	"display-sync/core/displayapi"
	"display-sync/core/logger"
	"display-sync/core/server"
	"display-sync/feature/bookings"
	"display-sync/feature/libevents"
	"display-sync/feature/nemdeling"
	"display-sync/feature/slideshow"
	"display-sync/feature/video"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// DisplayAPI holds the Display API connection settings.
	DisplayAPI displayapi.Config `mapstructure:"display_api"`
	// NemDeling holds configuration for the NemDeling webhooks.
	NemDeling nemdeling.Config `mapstructure:"nemdeling"`
	// LibEvents holds configuration for the library events feed.
	LibEvents libevents.Config `mapstructure:"libevents"`
	// Bookings holds configuration for the booking feed.
	Bookings bookings.Config `mapstructure:"bookings"`
	// Video holds configuration for the video platform feed.
	Video video.Config `mapstructure:"video"`
	// Slideshow holds configuration for the slideshow feed.
	Slideshow slideshow.Config `mapstructure:"slideshow"`
}

// Validate checks settings the application cannot start without.
func (c *Config) Validate() error {
	if err := c.DisplayAPI.Validate(); err != nil {
		return fmt.Errorf("display_api: %w", err)
	}
	return nil
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
