package proxy

// Config holds configuration for the development /api proxy.
type Config struct {
	// Enabled turns the proxy on.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Prefix is the path prefix that is forwarded.
	Prefix string `mapstructure:"prefix" default:"/api"`
	// Target is the backend origin requests are forwarded to.
	Target string `mapstructure:"target" default:"http://localhost:5000"`
	// TimeoutSeconds bounds each forwarded request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
