package config

import (
	"path/filepath"

	"github.com/rshade/carboncalc/internal/logging"
)

const defaultLogFile = "carboncalc.log"

// ToLoggingConfig converts the file section into the logger's config. File
// output with no path logs to logs/carboncalc.log under the config directory.
func (l LoggingConfig) ToLoggingConfig() logging.Config {
	cfg := logging.Config{
		Level:  l.Level,
		Format: l.Format,
		Output: l.Output,
		File:   l.File,
		Caller: l.Caller,
	}
	if cfg.Output == logging.OutputFile && cfg.File == "" {
		if dir, err := GetConfigDir(); err == nil {
			cfg.File = filepath.Join(dir, "logs", defaultLogFile)
		}
	}
	return cfg
}
