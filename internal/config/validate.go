// internal/config/validate.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// Import validation
	if c.Import.LibraryRoot == "" {
		errs = append(errs, "import.library_root: required")
	} else if !filepath.IsAbs(c.Import.LibraryRoot) {
		errs = append(errs, fmt.Sprintf("import.library_root: must be an absolute path, got %q", c.Import.LibraryRoot))
	}
	if c.Import.SourceRoot != "" && !filepath.IsAbs(c.Import.SourceRoot) {
		errs = append(errs, fmt.Sprintf("import.source_root: must be an absolute path, got %q", c.Import.SourceRoot))
	}
	if c.Import.Workers < 0 {
		errs = append(errs, fmt.Sprintf("import.workers: must not be negative, got %d", c.Import.Workers))
	}
	if c.Import.MinFileSize < 0 {
		errs = append(errs, fmt.Sprintf("import.min_file_size: must not be negative, got %d", c.Import.MinFileSize))
	}

	// Path warnings (non-fatal in spirit but reported the same way)
	if c.Import.LibraryRoot != "" && filepath.IsAbs(c.Import.LibraryRoot) {
		if _, err := os.Stat(c.Import.LibraryRoot); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("import.library_root: warning: directory %q does not exist", c.Import.LibraryRoot))
		}
	}

	return errs
}
