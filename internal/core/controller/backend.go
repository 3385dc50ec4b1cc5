package controller

import (
	"context"

	"timeclock/internal/core/model"
)

// Directory lists the employees that can be selected.
type Directory interface {
	List(ctx context.Context) ([]model.Employee, error)
}

// ActivitySource loads the activity already recorded today for an employee.
type ActivitySource interface {
	ActivityForToday(ctx context.Context, employeeID int) ([]model.ActivityEntry, error)
}

// ActionRecorder stores an accepted clock action.
type ActionRecorder interface {
	RecordAction(ctx context.Context, employeeID int, action model.Action) error
}

// EmployeeCreator adds an employee to the directory.
type EmployeeCreator interface {
	Create(ctx context.Context, name, email string) (model.Employee, error)
}

// Backend groups every collaborator the controller depends on.
type Backend interface {
	Directory
	ActivitySource
	ActionRecorder
	EmployeeCreator
}
