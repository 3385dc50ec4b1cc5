package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"timeclock/internal/platform"
	"timeclock/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	NoticeSeconds      int    `yaml:"notice_seconds"`
	ClockIntervalMilli int    `yaml:"clock_interval_ms"`
	ExportDir          string `yaml:"export_dir"`
	DirectoryFile      string `yaml:"directory_file"`
}

// SettingsPath returns where settings are stored for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from the YAML file at path.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to the YAML file at path.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		NoticeSeconds:      int(settings.NoticeDuration / time.Second),
		ClockIntervalMilli: int(settings.ClockInterval / time.Millisecond),
		ExportDir:          settings.ExportDir,
		DirectoryFile:      settings.DirectoryFile,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.NoticeSeconds > 0 {
		settings.NoticeDuration = time.Duration(fileData.NoticeSeconds) * time.Second
	}
	// Anything faster than 100ms only burns CPU redrawing the same second.
	if fileData.ClockIntervalMilli >= 100 {
		settings.ClockInterval = time.Duration(fileData.ClockIntervalMilli) * time.Millisecond
	}
	if fileData.ExportDir != "" {
		settings.ExportDir = fileData.ExportDir
	}
	settings.DirectoryFile = fileData.DirectoryFile
}
