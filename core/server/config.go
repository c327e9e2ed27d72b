package server

import (
	"fmt"
	"strings"
)

// Config holds configuration for the frontend HTTP server.
type Config struct {
	// Port is the port where the app server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BaseURL is the path prefix every page route is mounted under.
	BaseURL string `mapstructure:"base_url" default:"/"`
	// Locale is the UI locale registered at bootstrap (e.g. zh-CN, en).
	Locale string `mapstructure:"locale" default:"zh-CN"`
	// Anchor is the id of the host element the application is mounted on.
	Anchor string `mapstructure:"anchor" default:"#app"`
}

// APIConfig holds configuration for the backend API server.
type APIConfig struct {
	// Port is the port where the API server will listen.
	Port string `mapstructure:"port" default:"5000"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// MaxUploadMB caps the size of uploaded datasets.
	MaxUploadMB int `mapstructure:"max_upload_mb" default:"64"`
}

// Base returns the normalized base path: always a leading slash, no trailing one
// except for the root itself.
func (c Config) Base() string {
	base := strings.TrimSpace(c.BaseURL)
	if base == "" || base == "/" {
		return "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return strings.TrimRight(base, "/")
}

// AnchorID returns the anchor without its selector prefix.
func (c Config) AnchorID() string {
	return strings.TrimPrefix(strings.TrimSpace(c.Anchor), "#")
}

// Validate checks the server settings.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("server port is required")
	}
	if c.AnchorID() == "" {
		return fmt.Errorf("server anchor is required")
	}
	if strings.ContainsAny(c.BaseURL, "?#:") {
		return fmt.Errorf("invalid base url %q", c.BaseURL)
	}
	return nil
}

// BodyLimit returns the upload limit in bytes.
func (c APIConfig) BodyLimit() int {
	mb := c.MaxUploadMB
	if mb <= 0 {
		mb = 64
	}
	return mb * 1024 * 1024
}
