package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is an optional secret required to access the API. Empty means
	// the wiki is public, which is the default.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// IsProtected reports whether API key auth is enabled.
func (c Config) IsProtected() bool {
	return c.ApiKey != ""
}
