// Package config provides configuration management for the directory service.
//
// It utilizes Viper for loading configuration from environment variables and
// a local .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, body limit)
//   - Database: MySQL connection details
//   - Storage: S3/MinIO credentials and bucket settings for server icons
//   - Auth: access token secret and lifetime
//   - Log: logging level and format
//
// Defaults come from the `default` struct tags, resolved reflectively so each
// key is also registered for AutomaticEnv.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
