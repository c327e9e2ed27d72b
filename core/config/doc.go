// Package config provides configuration management for data-studio.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults are declared next to each field through the
// `default` struct tag and registered recursively, so every key can be
// overridden by its environment variable (server.port -> SERVER_PORT).
//
// # Configuration Structure
//
//   - Server: frontend app server (port, base url, locale, anchor)
//   - API: backend API server (port, API key, upload limit)
//   - Proxy: development /api proxy (prefix, target, timeout)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
