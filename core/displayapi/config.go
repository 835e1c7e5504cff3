package displayapi

import "errors"

// Config holds configuration for the Display API connection.
type Config struct {
	// Endpoint is the base URL of the Display API, e.g. https://display.example.com.
	Endpoint string `mapstructure:"endpoint" default:""`
	// Email is the admin account used to authenticate.
	Email string `mapstructure:"email" default:""`
	// Password is the admin account password.
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RequestsPerSecond caps the request rate against the Display API.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"10"`
	// InsecureSkipVerify disables TLS certificate verification. Needed for
	// local setups running on self-signed certificates.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify" default:"false"`
}

// Validate checks that the required connection settings are present.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("display api endpoint is required")
	}
	if c.Email == "" || c.Password == "" {
		return errors.New("display api credentials are required")
	}
	return nil
}
