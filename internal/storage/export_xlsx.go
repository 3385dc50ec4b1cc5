package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"timeclock/internal/core/model"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"employee", "type", "time", "description"}

// ExportFileName names the workbook for an employee's activity on a day.
func ExportFileName(employee model.Employee, day time.Time) string {
	name := strings.ToLower(strings.Join(strings.Fields(employee.Name), "_"))
	return fmt.Sprintf("activity_%d_%s_%s.xlsx", employee.ID, name, day.Format("2006-01-02"))
}

// ExportActivity writes the activity log to an XLSX workbook, one row per entry.
func ExportActivity(path string, employee model.Employee, entries []model.ActivityEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set header: %w", err)
		}
	}

	for row, entry := range entries {
		values := []string{employee.Name, string(entry.Type), entry.Time, entry.Description}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("entry cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set cell value: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
