package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"timeclock/internal/core/clock"
	"timeclock/internal/core/model"
	"timeclock/internal/core/status"

	"github.com/google/uuid"
)

var (
	// ErrNoEmployeeSelected indicates an action was attempted with no employee selected.
	ErrNoEmployeeSelected = errors.New("no employee selected")
	// ErrUnknownEmployee indicates the id is not in the loaded directory.
	ErrUnknownEmployee = errors.New("unknown employee")
	// ErrMissingFields indicates the new employee form is incomplete.
	ErrMissingFields = errors.New("name and email are required")
)

// Options contains runtime options for Controller.
type Options struct {
	Now func() time.Time
}

// Snapshot is a copy of the state the timecard view renders.
type Snapshot struct {
	Employees []model.Employee
	Selected  *model.Employee
	Status    status.Status
	Controls  status.Controls
	Display   status.Display
	Activity  []model.ActivityEntry
	Highlight bool
}

// Controller owns the selected employee, its clock status and activity log.
type Controller struct {
	mu         sync.Mutex
	backend    Backend
	now        func() time.Time
	employees  []model.Employee
	selected   *model.Employee
	status     status.Status
	lastAction model.Action
	activity   []model.ActivityEntry
	highlight  bool
	events     []chan Event
}

// New creates a Controller with no employee selected.
func New(backend Backend, options Options) *Controller {
	if options.Now == nil {
		options.Now = time.Now
	}
	return &Controller{
		backend: backend,
		now:     options.Now,
		status:  status.Off,
	}
}

// Subscribe registers a new observer channel.
func (ctrl *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	ctrl.mu.Lock()
	ctrl.events = append(ctrl.events, ch)
	ctrl.mu.Unlock()
	return ch
}

// Close detaches and closes every observer.
func (ctrl *Controller) Close() {
	ctrl.mu.Lock()
	events := ctrl.events
	ctrl.events = nil
	ctrl.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// LoadEmployees refreshes the directory from the backend.
func (ctrl *Controller) LoadEmployees(ctx context.Context) ([]model.Employee, error) {
	employees, err := ctrl.backend.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	ctrl.employees = append([]model.Employee(nil), employees...)
	ctrl.emitLocked(Event{Type: EventDirectory, At: ctrl.now()})
	return append([]model.Employee(nil), employees...), nil
}

// SelectEmployee makes the employee current. The status always starts at Off
// and the activity log is replaced with what the backend has for today.
func (ctrl *Controller) SelectEmployee(ctx context.Context, employeeID int) error {
	ctrl.mu.Lock()
	employee, ok := ctrl.findLocked(employeeID)
	ctrl.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownEmployee, employeeID)
	}

	activity, err := ctrl.backend.ActivityForToday(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("load activity for %d: %w", employeeID, err)
	}

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	ctrl.selected = &employee
	ctrl.status = status.Off
	ctrl.lastAction = ""
	ctrl.highlight = false
	ctrl.activity = append([]model.ActivityEntry(nil), activity...)
	ctrl.emitSelectionLocked()
	return nil
}

// ClearSelection deselects the employee, disabling every action.
func (ctrl *Controller) ClearSelection() {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	ctrl.selected = nil
	ctrl.status = status.Off
	ctrl.lastAction = ""
	ctrl.highlight = false
	ctrl.activity = nil
	ctrl.emitSelectionLocked()
}

// Perform applies a clock action to the selected employee. Nothing changes
// unless the transition is allowed and the backend records it. The state lock
// is held across the backend call so the selection cannot move between
// recording the action and appending it to the log.
func (ctrl *Controller) Perform(ctx context.Context, action model.Action) (model.ActivityEntry, error) {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	if ctrl.selected == nil {
		return model.ActivityEntry{}, ErrNoEmployeeSelected
	}
	next, err := status.Transition(ctrl.status, action)
	if err != nil {
		return model.ActivityEntry{}, err
	}
	if err := ctrl.backend.RecordAction(ctx, ctrl.selected.ID, action); err != nil {
		return model.ActivityEntry{}, fmt.Errorf("record %s: %w", action, err)
	}

	at := ctrl.now()
	entry := model.ActivityEntry{
		ID:          uuid.NewString(),
		Type:        action,
		Time:        clock.FormatTime(at),
		Description: action.Description(),
	}
	ctrl.activity = append([]model.ActivityEntry{entry}, ctrl.activity...)
	ctrl.status = next
	ctrl.lastAction = action
	ctrl.highlight = true

	employee := *ctrl.selected
	recorded := entry
	ctrl.emitLocked(Event{
		Type:     EventTransition,
		Employee: &employee,
		Status:   next,
		Display:  status.Describe(true, next, action),
		Entry:    &recorded,
		At:       at,
	})
	return entry, nil
}

// AddEmployee validates the new employee form and creates the employee.
func (ctrl *Controller) AddEmployee(ctx context.Context, name, email string) (model.Employee, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return model.Employee{}, ErrMissingFields
	}

	employee, err := ctrl.backend.Create(ctx, name, email)
	if err != nil {
		return model.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	if _, err := ctrl.LoadEmployees(ctx); err != nil {
		return employee, err
	}
	return employee, nil
}

// Snapshot returns a copy of the current view state.
func (ctrl *Controller) Snapshot() Snapshot {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	snapshot := Snapshot{
		Employees: append([]model.Employee(nil), ctrl.employees...),
		Status:    ctrl.status,
		Controls:  status.NoControls(),
		Display:   status.Describe(ctrl.selected != nil, ctrl.status, ctrl.lastAction),
		Activity:  append([]model.ActivityEntry(nil), ctrl.activity...),
		Highlight: ctrl.highlight,
	}
	if ctrl.selected != nil {
		employee := *ctrl.selected
		snapshot.Selected = &employee
		snapshot.Controls = status.EnabledControls(ctrl.status)
	}
	return snapshot
}

func (ctrl *Controller) findLocked(employeeID int) (model.Employee, bool) {
	for _, employee := range ctrl.employees {
		if employee.ID == employeeID {
			return employee, true
		}
	}
	return model.Employee{}, false
}

func (ctrl *Controller) emitSelectionLocked() {
	event := Event{
		Type:    EventSelection,
		Status:  ctrl.status,
		Display: status.Describe(ctrl.selected != nil, ctrl.status, ctrl.lastAction),
		At:      ctrl.now(),
	}
	if ctrl.selected != nil {
		employee := *ctrl.selected
		event.Employee = &employee
	}
	ctrl.emitLocked(event)
}

func (ctrl *Controller) emitLocked(event Event) {
	for _, ch := range ctrl.events {
		select {
		case ch <- event:
		default:
		}
	}
}
