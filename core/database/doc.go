// Package database handles database connections.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections based
// on the application's configuration. The API server stores dataset metadata in it;
// when the connection fails the server keeps running on storage listings alone.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
