// Package mock is an in-memory stand-in for the timeclock backend.
package mock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"timeclock/internal/core/model"
)

var (
	// ErrEmployeeNotFound indicates the employee id is not in the directory.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrDuplicateEmail indicates another employee already uses the email.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Record is one action accepted by RecordAction.
type Record struct {
	EmployeeID int
	Action     model.Action
}

// Backend keeps the directory and recorded actions in memory.
type Backend struct {
	mu        sync.Mutex
	employees []model.Employee
	seeded    map[int]bool
	activity  []model.ActivityEntry
	records   []Record
	nextID    int
}

// DefaultEmployees returns the built-in directory.
func DefaultEmployees() []model.Employee {
	return []model.Employee{
		{ID: 1, Name: "John Doe", Email: "john.doe@example.com"},
		{ID: 2, Name: "Jane Smith", Email: "jane.smith@example.com"},
		{ID: 3, Name: "Bob Johnson", Email: "bob.johnson@example.com"},
	}
}

// DefaultActivity returns the built-in activity reported for seeded employees.
func DefaultActivity() []model.ActivityEntry {
	return []model.ActivityEntry{
		{Type: model.ActionClockIn, Time: "08:00:00", Description: model.ActionClockIn.Description()},
		{Type: model.ActionBreakStart, Time: "10:15:00", Description: model.ActionBreakStart.Description()},
		{Type: model.ActionBreakEnd, Time: "10:30:00", Description: model.ActionBreakEnd.Description()},
	}
}

// New seeds a Backend. Seeded employees report activity as today's log;
// employees created later start with none.
func New(employees []model.Employee, activity []model.ActivityEntry) *Backend {
	backend := &Backend{
		employees: append([]model.Employee(nil), employees...),
		seeded:    make(map[int]bool, len(employees)),
		activity:  append([]model.ActivityEntry(nil), activity...),
	}
	for _, employee := range employees {
		backend.seeded[employee.ID] = true
		if employee.ID > backend.nextID {
			backend.nextID = employee.ID
		}
	}
	return backend
}

// NewDefault seeds a Backend with the built-in directory and activity.
func NewDefault() *Backend {
	return New(DefaultEmployees(), DefaultActivity())
}

// List returns the directory.
func (backend *Backend) List(ctx context.Context) ([]model.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	backend.mu.Lock()
	defer backend.mu.Unlock()
	return append([]model.Employee(nil), backend.employees...), nil
}

// ActivityForToday returns the seeded activity for the employee.
func (backend *Backend) ActivityForToday(ctx context.Context, employeeID int) ([]model.ActivityEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	backend.mu.Lock()
	defer backend.mu.Unlock()
	if !backend.existsLocked(employeeID) {
		return nil, fmt.Errorf("%w: %d", ErrEmployeeNotFound, employeeID)
	}
	if !backend.seeded[employeeID] {
		return nil, nil
	}
	return append([]model.ActivityEntry(nil), backend.activity...), nil
}

// RecordAction remembers the action.
func (backend *Backend) RecordAction(ctx context.Context, employeeID int, action model.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	backend.mu.Lock()
	defer backend.mu.Unlock()
	if !backend.existsLocked(employeeID) {
		return fmt.Errorf("%w: %d", ErrEmployeeNotFound, employeeID)
	}
	backend.records = append(backend.records, Record{EmployeeID: employeeID, Action: action})
	return nil
}

// Create appends an employee with the next free id.
func (backend *Backend) Create(ctx context.Context, name, email string) (model.Employee, error) {
	if err := ctx.Err(); err != nil {
		return model.Employee{}, err
	}
	backend.mu.Lock()
	defer backend.mu.Unlock()
	for _, existing := range backend.employees {
		if strings.EqualFold(existing.Email, email) {
			return model.Employee{}, fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
		}
	}
	backend.nextID++
	employee := model.Employee{ID: backend.nextID, Name: name, Email: email}
	backend.employees = append(backend.employees, employee)
	return employee, nil
}

// Records returns the actions recorded so far, oldest first.
func (backend *Backend) Records() []Record {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	return append([]Record(nil), backend.records...)
}

func (backend *Backend) existsLocked(employeeID int) bool {
	for _, employee := range backend.employees {
		if employee.ID == employeeID {
			return true
		}
	}
	return false
}
