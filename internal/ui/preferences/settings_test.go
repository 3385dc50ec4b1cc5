package preferences

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultExportDirIsAbsolute(t *testing.T) {
	settings := DefaultSettings()
	assert.True(t, filepath.IsAbs(settings.ExportDir), "export dir %q", settings.ExportDir)
	assert.Equal(t, "exports", filepath.Base(settings.ExportDir))
	assert.Equal(t, appDirName, filepath.Base(filepath.Dir(settings.ExportDir)))
}

func TestClockConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.ClockInterval = 250 * time.Millisecond
	assert.Equal(t, 250*time.Millisecond, settings.ClockConfig().Interval)
}
