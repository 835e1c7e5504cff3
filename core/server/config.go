package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"3000"`
	// BasicAuthUser is the basic auth username guarding the webhook
	// endpoints. Leaving both credentials empty disables the guard.
	BasicAuthUser string `mapstructure:"basic_auth_user" default:""`
	// BasicAuthPass is the basic auth password guarding the webhook
	// endpoints.
	BasicAuthPass string `mapstructure:"basic_auth_pass" default:""`
}

// AuthEnabled reports whether the webhook endpoints require basic auth.
func (c Config) AuthEnabled() bool {
	return c.BasicAuthUser != "" || c.BasicAuthPass != ""
}
