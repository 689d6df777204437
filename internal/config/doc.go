// Package config provides configuration management for photo-organizer.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - PHOTO_ORGANIZER_* environment overrides
//   - Conversion to model.RunConfig for the pipeline
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// mode daily, limit 25, action move, no rename, no dry run
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.yaml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Precedence
//
// Callers layer sources from weakest to strongest: defaults, the settings
// file, the environment (ApplyEnv), then explicit command-line flags.
//
// # Environment Variables
//
//	PHOTO_ORGANIZER_SOURCE    PHOTO_ORGANIZER_LIBRARY
//	PHOTO_ORGANIZER_MODE      PHOTO_ORGANIZER_LIMIT
//	PHOTO_ORGANIZER_RENAME    PHOTO_ORGANIZER_ACTION
//	PHOTO_ORGANIZER_DRY_RUN   PHOTO_ORGANIZER_LOG_FILE
//	PHOTO_ORGANIZER_VERBOSE
package config
