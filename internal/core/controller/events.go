package controller

import (
	"time"

	"timeclock/internal/core/model"
	"timeclock/internal/core/status"
)

// EventType defines the type of controller event.
type EventType string

const (
	EventSelection  EventType = "selection"
	EventTransition EventType = "transition"
	EventDirectory  EventType = "directory"
)

// Event describes a change observers may want to mirror.
type Event struct {
	Type     EventType
	Employee *model.Employee
	Status   status.Status
	Display  status.Display
	Entry    *model.ActivityEntry
	At       time.Time
}
