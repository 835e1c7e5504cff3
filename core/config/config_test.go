package config_test

import (
	"testing"

	"display-sync/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 30, cfg.DisplayAPI.TimeoutSeconds)
	assert.Equal(t, float64(10), cfg.DisplayAPI.RequestsPerSecond)
	assert.True(t, cfg.NemDeling.Enabled)
	assert.Equal(t, "Servicemeddelelse", cfg.NemDeling.ServiceMessageTemplate)
	assert.Equal(t, "event", cfg.LibEvents.Template)
	assert.Equal(t, 300, cfg.LibEvents.IntervalSeconds)
	assert.Equal(t, "book-byen", cfg.Bookings.Template)
	assert.Equal(t, "TwentyThreeVideo", cfg.Video.Template)
	assert.Equal(t, "KK Slideshow", cfg.Slideshow.Template)
	assert.Equal(t, "slideshows", cfg.Slideshow.Storage.Bucket)

	// Feeds without endpoints are disabled by default.
	assert.False(t, cfg.LibEvents.Enabled())
	assert.False(t, cfg.Slideshow.Enabled())
	assert.False(t, cfg.Bookings.Enabled)
	assert.False(t, cfg.Video.Enabled)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DISPLAY_API_ENDPOINT", "https://display.example.com")
	t.Setenv("DISPLAY_API_EMAIL", "sync@example.com")
	t.Setenv("DISPLAY_API_PASSWORD", "secret")
	t.Setenv("LIBEVENTS_ENDPOINT", "https://example.com/activities")
	t.Setenv("LIBEVENTS_INTERVAL_SECONDS", "60")
	t.Setenv("SLIDESHOW_STORAGE_ENDPOINT", "localhost:9000")
	t.Setenv("SLIDESHOW_PUBLIC_BASE_URL", "https://images.example.com/")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://display.example.com", cfg.DisplayAPI.Endpoint)
	assert.Equal(t, 60, cfg.LibEvents.IntervalSeconds)
	assert.True(t, cfg.LibEvents.Enabled())
	assert.True(t, cfg.Slideshow.Enabled())
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	// The Display API connection is mandatory.
	assert.Error(t, cfg.Validate())

	cfg.DisplayAPI.Endpoint = "https://display.example.com"
	assert.Error(t, cfg.Validate())

	cfg.DisplayAPI.Email = "sync@example.com"
	cfg.DisplayAPI.Password = "secret"
	assert.NoError(t, cfg.Validate())
}
