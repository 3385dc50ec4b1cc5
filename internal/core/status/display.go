package status

import "timeclock/internal/core/model"

// Style selects how the status panel is drawn.
type Style string

const (
	StyleInfo    Style = "info"
	StyleOff     Style = "off"
	StyleWorking Style = "working"
	StyleBreak   Style = "break"
)

// Display is the status panel text and style.
type Display struct {
	Message string
	Style   Style
}

// Describe maps the selection, status and last accepted action to the status panel.
func Describe(selected bool, current Status, last model.Action) Display {
	if !selected {
		return Display{Message: "Please select an employee to begin", Style: StyleInfo}
	}
	switch current {
	case Working:
		return Display{Message: "Currently working", Style: StyleWorking}
	case Break:
		return Display{Message: "On break", Style: StyleBreak}
	default:
		if last == model.ActionClockOut {
			return Display{Message: "Clocked out", Style: StyleOff}
		}
		return Display{Message: "Not clocked in", Style: StyleOff}
	}
}
