package status

import (
	"errors"
	"fmt"

	"timeclock/internal/core/model"
)

// Status is the clock status of the selected employee.
type Status string

const (
	Off     Status = "off"
	Working Status = "working"
	Break   Status = "break"
)

var (
	// ErrTransitionNotAllowed indicates the action is not permitted from the current status.
	ErrTransitionNotAllowed = errors.New("transition not allowed")
	// ErrUnknownStatus indicates a status outside Off, Working and Break.
	ErrUnknownStatus = errors.New("unknown status")
	// ErrUnknownAction indicates an action outside the four clock actions.
	ErrUnknownAction = errors.New("unknown action")
)

var transitions = map[Status]map[model.Action]Status{
	Off: {
		model.ActionClockIn: Working,
	},
	Working: {
		model.ActionBreakStart: Break,
		model.ActionClockOut:   Off,
	},
	Break: {
		model.ActionBreakEnd: Working,
		model.ActionClockOut: Off,
	},
}

// Valid reports whether the status is one of the three known values.
func (current Status) Valid() bool {
	_, ok := transitions[current]
	return ok
}

// Transition returns the status reached by applying action to current.
func Transition(current Status, action model.Action) (Status, error) {
	if !current.Valid() {
		return current, fmt.Errorf("%w: %q", ErrUnknownStatus, current)
	}
	if !action.Valid() {
		return current, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	next, ok := transitions[current][action]
	if !ok {
		return current, fmt.Errorf("%w: %s while %s", ErrTransitionNotAllowed, action, current)
	}
	return next, nil
}

// Controls holds the enabled state of each action button.
type Controls map[model.Action]bool

// Enabled reports whether the action is enabled.
func (controls Controls) Enabled(action model.Action) bool {
	return controls[action]
}

// EnabledControls returns the controls enabled while in the given status.
// An unknown status enables nothing.
func EnabledControls(current Status) Controls {
	controls := NoControls()
	for action := range transitions[current] {
		controls[action] = true
	}
	return controls
}

// NoControls returns every action disabled.
func NoControls() Controls {
	controls := make(Controls, len(model.Actions))
	for _, action := range model.Actions {
		controls[action] = false
	}
	return controls
}
