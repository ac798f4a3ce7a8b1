// Package config provides configuration management for the gallery manager.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file, with defaults declared as struct tags on each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, webhook secret)
//   - Database: sqlite/MySQL connection details
//   - Storage: object store credentials, bucket, public domain, gallery prefix
//   - Log: logging level and format
//   - Exif: local EXIF tool output path and rebuild command
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
