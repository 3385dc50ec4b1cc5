package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"timeclock/internal/core/model"

	"gopkg.in/yaml.v3"
)

// Directory is the employee fixture that seeds the mock backend.
type Directory struct {
	Employees []model.Employee      `yaml:"employees"`
	Activity  []model.ActivityEntry `yaml:"activity"`
}

// ErrDuplicateEmployeeID indicates two fixture employees share an id.
var ErrDuplicateEmployeeID = errors.New("duplicate employee id")

// LoadDirectory reads an employee fixture. It reports false when path is
// empty or the file does not exist.
func LoadDirectory(path string) (Directory, bool, error) {
	if path == "" {
		return Directory{}, false, nil
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Directory{}, false, nil
		}
		return Directory{}, false, fmt.Errorf("read directory file: %w", err)
	}

	var directory Directory
	if err := yaml.Unmarshal(rawData, &directory); err != nil {
		return Directory{}, false, fmt.Errorf("parse directory yaml: %w", err)
	}

	seen := make(map[int]bool, len(directory.Employees))
	for _, employee := range directory.Employees {
		if seen[employee.ID] {
			return Directory{}, false, fmt.Errorf("%w: %d", ErrDuplicateEmployeeID, employee.ID)
		}
		seen[employee.ID] = true
	}
	for i := range directory.Activity {
		if directory.Activity[i].Description == "" {
			directory.Activity[i].Description = directory.Activity[i].Type.Description()
		}
	}

	return directory, true, nil
}

// SaveDirectory writes an employee fixture, creating its folder if needed.
func SaveDirectory(path string, directory Directory) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory folder: %w", err)
	}

	serialized, err := yaml.Marshal(directory)
	if err != nil {
		return fmt.Errorf("marshal directory yaml: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write directory file: %w", err)
	}
	return nil
}
