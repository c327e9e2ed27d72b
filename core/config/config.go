package config

import (
	"fmt"
	"reflect"
	"strings"

	"data-studio/core/database"
	"data-studio/core/logger"
	"data-studio/core/proxy"
	"data-studio/core/server"
	"data-studio/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the frontend app server.
	Server server.Config `mapstructure:"server"`
	// API holds configuration for the backend API server.
	API server.APIConfig `mapstructure:"api"`
	// Proxy holds configuration for the development /api proxy.
	Proxy proxy.Config `mapstructure:"proxy"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
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

// ValidateFrontend checks the settings the start command depends on.
func (c *Config) ValidateFrontend() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if !c.Proxy.Enabled {
		return nil
	}
	if strings.Trim(c.Proxy.Prefix, "/") == "" {
		return fmt.Errorf("proxy prefix must not be the root")
	}
	if _, err := proxy.ParseTarget(c.Proxy.Target); err != nil {
		return err
	}
	return nil
}

// ValidateBackend checks the settings the backend command depends on.
func (c *Config) ValidateBackend() error {
	if strings.TrimSpace(c.API.Port) == "" {
		return fmt.Errorf("api port is required")
	}
	if strings.TrimSpace(c.Storage.Bucket) == "" {
		return fmt.Errorf("storage bucket is required")
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
