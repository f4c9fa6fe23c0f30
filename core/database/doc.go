// Package database handles the optional MySQL connection backing the
// operation journal.
//
// It provides a wrapper around GORM to configure MySQL connections based on the
// application's configuration. Connect encodes credentials into the DSN, applies
// connection pool limits and verifies the connection with a bounded ping.
//
// # Usage
//
//	if cfg.Database.Enabled {
//	    db, err := database.Connect(cfg.Database)
//	    if err != nil {
//	        log.Warn("journal disabled", zap.Error(err))
//	    }
//	}
package database
