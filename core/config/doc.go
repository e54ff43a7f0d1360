// Package config provides configuration management for the invite tracker.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP inspection API settings (port, API key)
//   - Discord: bot token and per-event timeout
//   - Tracker: pre-fetch delay and reconciliation policies
//   - Database: join log connection details
//   - Storage: S3/MinIO credentials and bucket for snapshot exports
//   - Log: Logging level and format
//
// Defaults come from the `default` struct tags; every key can be overridden by an
// environment variable named after its path (tracker.prefetch_delay -> TRACKER_PREFETCH_DELAY).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Tracker.PrefetchDelay)
package config
