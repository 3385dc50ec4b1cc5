package timecard

import (
	"fmt"
	"image/color"

	"timeclock/internal/core/controller"
	"timeclock/internal/core/status"
)

const noActivityText = "No activity recorded today"

// activityRows renders the log lines for a snapshot, newest first as stored.
func activityRows(snapshot controller.Snapshot) []string {
	if snapshot.Selected == nil {
		return nil
	}
	if len(snapshot.Activity) == 0 {
		return []string{noActivityText}
	}
	rows := make([]string, 0, len(snapshot.Activity))
	for _, entry := range snapshot.Activity {
		rows = append(rows, entry.Time+" - "+entry.Description)
	}
	return rows
}

// pickerOptions returns the picker labels and the employee id behind each one.
// Names shared by several employees get the id appended so every label is unique.
func pickerOptions(snapshot controller.Snapshot) ([]string, map[string]int) {
	counts := make(map[string]int, len(snapshot.Employees))
	for _, employee := range snapshot.Employees {
		counts[employee.Name]++
	}

	labels := make([]string, 0, len(snapshot.Employees))
	ids := make(map[string]int, len(snapshot.Employees))
	for _, employee := range snapshot.Employees {
		label := employee.Name
		if counts[label] > 1 {
			label = fmt.Sprintf("%s (#%d)", employee.Name, employee.ID)
		}
		labels = append(labels, label)
		ids[label] = employee.ID
	}
	return labels, ids
}

func styleColor(style status.Style) color.Color {
	switch style {
	case status.StyleWorking:
		return color.NRGBA{R: 25, G: 135, B: 84, A: 255}
	case status.StyleBreak:
		return color.NRGBA{R: 255, G: 193, B: 7, A: 255}
	case status.StyleOff:
		return color.NRGBA{R: 108, G: 117, B: 125, A: 255}
	default:
		return color.NRGBA{R: 13, G: 202, B: 240, A: 255}
	}
}
