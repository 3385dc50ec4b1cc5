package storage

import (
	"os"
	"path/filepath"
	"testing"

	"timeclock/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `employees:
  - id: 7
    name: Maria Garcia
    email: maria@example.com
  - id: 9
    name: Li Wei
    email: li@example.com
activity:
  - type: clock-in
    time: "07:45:00"
  - type: break-start
    time: "09:00:00"
    description: Coffee
`

func TestLoadDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	directory, found, err := LoadDirectory(path)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, []model.Employee{
		{ID: 7, Name: "Maria Garcia", Email: "maria@example.com"},
		{ID: 9, Name: "Li Wei", Email: "li@example.com"},
	}, directory.Employees)
	require.Len(t, directory.Activity, 2)
	assert.Equal(t, "Clocked in", directory.Activity[0].Description)
	assert.Equal(t, "Coffee", directory.Activity[1].Description)
}

func TestLoadDirectoryMissing(t *testing.T) {
	_, found, err := LoadDirectory("")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = LoadDirectory(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLoadDirectoryRejectsBadFixtures(t *testing.T) {
	dir := t.TempDir()

	unknownAction := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknownAction, []byte("activity:\n  - type: lunch\n    time: \"12:00:00\"\n"), 0o644))
	_, _, err := LoadDirectory(unknownAction)
	assert.Error(t, err)

	duplicate := filepath.Join(dir, "duplicate.yaml")
	require.NoError(t, os.WriteFile(duplicate, []byte("employees:\n  - id: 1\n    name: A\n  - id: 1\n    name: B\n"), 0o644))
	_, _, err = LoadDirectory(duplicate)
	assert.ErrorIs(t, err, ErrDuplicateEmployeeID)
}

func TestDirectoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures", "employees.yaml")
	saved := Directory{
		Employees: []model.Employee{{ID: 1, Name: "John Doe", Email: "john.doe@example.com"}},
		Activity: []model.ActivityEntry{
			{Type: model.ActionClockIn, Time: "08:00:00", Description: "Clocked in"},
		},
	}

	require.NoError(t, SaveDirectory(path, saved))
	loaded, found, err := LoadDirectory(path)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, saved, loaded)
}
