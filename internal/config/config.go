// Package config resolves the application configuration from defaults,
// an optional config.ini in the application directory, and flag
// overrides applied by the command layer.
package config

import (
	"os"
	"path/filepath"

	"github.com/inovacc/entrycard/internal/application"
	"gopkg.in/ini.v1"
)

// FileName is the optional INI file looked up in the application directory.
const FileName = "config.ini"

// Config holds the ambient application settings. None of these are part
// of the data contract; they only locate the store and the log sink.
type Config struct {
	// DBPath is the SQLite database file
	DBPath string

	// LogPath is the append-only log file
	LogPath string

	// LogLevel is one of debug, info, warn, error, critical
	LogLevel string
}

// Default returns the configuration rooted in the application directory.
func Default() Config {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		dir = "."
	}

	return Config{
		DBPath:   filepath.Join(dir, "entries.db"),
		LogPath:  filepath.Join(dir, "entrycard.log"),
		LogLevel: "debug",
	}
}

// Load resolves the configuration: defaults, then the INI file in the
// application directory when present. A missing file is not an error.
func Load() (Config, error) {
	cfg := Default()

	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return cfg, nil
	}

	return loadFile(cfg, filepath.Join(dir, FileName))
}

// LoadFrom resolves the configuration from an explicit INI file path,
// used by tests.
func LoadFrom(path string) (Config, error) {
	return loadFile(Default(), path)
}

func loadFile(cfg Config, path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return cfg, err
	}

	storage := f.Section("storage")
	if v := storage.Key("path").String(); v != "" {
		cfg.DBPath = v
	}

	logging := f.Section("logging")
	if v := logging.Key("path").String(); v != "" {
		cfg.LogPath = v
	}

	if v := logging.Key("level").String(); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}
