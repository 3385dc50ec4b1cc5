package model

import "fmt"

// Action is a clock action an employee can take.
type Action string

const (
	ActionClockIn    Action = "clock-in"
	ActionBreakStart Action = "break-start"
	ActionBreakEnd   Action = "break-end"
	ActionClockOut   Action = "clock-out"
)

// Actions lists every action in display order.
var Actions = []Action{ActionClockIn, ActionBreakStart, ActionBreakEnd, ActionClockOut}

// Valid reports whether the action is one of the four known actions.
func (action Action) Valid() bool {
	switch action {
	case ActionClockIn, ActionBreakStart, ActionBreakEnd, ActionClockOut:
		return true
	default:
		return false
	}
}

// Label returns the button caption.
func (action Action) Label() string {
	switch action {
	case ActionClockIn:
		return "Clock In"
	case ActionBreakStart:
		return "Start Break"
	case ActionBreakEnd:
		return "End Break"
	case ActionClockOut:
		return "Clock Out"
	default:
		return string(action)
	}
}

// Description returns the text written to the activity log.
func (action Action) Description() string {
	switch action {
	case ActionClockIn:
		return "Clocked in"
	case ActionBreakStart:
		return "Started break"
	case ActionBreakEnd:
		return "Ended break"
	case ActionClockOut:
		return "Clocked out"
	default:
		return ""
	}
}

// Notice returns the success message shown after the action is accepted.
func (action Action) Notice() string {
	switch action {
	case ActionClockIn:
		return "Successfully clocked in!"
	case ActionBreakStart:
		return "Break started!"
	case ActionBreakEnd:
		return "Break ended!"
	case ActionClockOut:
		return "Successfully clocked out!"
	default:
		return ""
	}
}

// ParseAction converts a stored action name.
func ParseAction(value string) (Action, error) {
	action := Action(value)
	if !action.Valid() {
		return "", fmt.Errorf("unknown action %q", value)
	}
	return action, nil
}

// UnmarshalText rejects unknown action names when decoding fixtures.
func (action *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*action = parsed
	return nil
}
