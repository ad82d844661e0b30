// Package config provides configuration management for file-agent.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live next to each field in `default:"..."` struct tags.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP server settings (port)
//   - Storage: S3/MinIO endpoint, credentials, bucket, size and URL lifetime limits
//   - Log: Logging level and format
//   - Database: optional activity database (sqlite or mysql)
//   - Agent: LLM endpoint, key, model and turn limit
//
// Environment variables map to nested keys by replacing dots with underscores, so
// STORAGE_BUCKET sets storage.bucket.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
