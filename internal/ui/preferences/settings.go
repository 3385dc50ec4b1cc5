package preferences

import (
	"os"
	"path/filepath"
	"time"

	"timeclock/internal/core/clock"
	"timeclock/internal/platform"
)

const appDirName = "Timeclock"

// Settings defines editable user preferences.
type Settings struct {
	NoticeDuration time.Duration
	ClockInterval  time.Duration
	ExportDir      string
	DirectoryFile  string
}

// DefaultSettings returns default settings for Timeclock.
func DefaultSettings() Settings {
	return Settings{
		NoticeDuration: 3 * time.Second,
		ClockInterval:  time.Second,
		ExportDir:      DefaultExportDir(),
	}
}

// DefaultExportDir places exports next to the settings file, or under the
// temp directory when neither a config nor a home directory exists.
func DefaultExportDir() string {
	if configDir, err := platform.ConfigDir(); err == nil {
		return filepath.Join(configDir, appDirName, "exports")
	}
	return filepath.Join(os.TempDir(), appDirName, "exports")
}

// ClockConfig converts settings to the wall clock ticker config.
func (settings Settings) ClockConfig() clock.Config {
	return clock.Config{Interval: settings.ClockInterval}
}
