// Package config provides configuration management for the storage facade.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags of
// each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Storage: provider, endpoint, region and credentials (STORAGE_* or AWS_*)
//   - Facade: presigned URL validity
//   - Tour: bucket and file names for the tour command
//   - Log: Logging level and format
//   - Database: MySQL connection for the operation journal
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Region)
package config
