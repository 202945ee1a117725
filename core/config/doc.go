// Package config provides configuration management for filestorage.
//
// It uses Viper to read environment variables (optionally seeded from a .env
// file) and fills defaults from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: bind address and request body limit (SERVER_ADDRESS, SERVER_BODY_LIMIT)
//   - Storage: object store root directory (STORAGE_ROOT)
//   - Log: logging level and format (LOG_LEVEL, LOG_FORMAT)
//   - Remote: S3/MinIO credentials and bucket for backups (REMOTE_*)
//   - Backup: key prefix, upload concurrency and rate (BACKUP_*)
//
// FILESTORAGE_ADDR and FILESTORAGE_DATA_DIR are accepted as fallbacks for the
// bind address and storage root.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Address)
package config
