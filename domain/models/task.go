package models

import (
	"time"

	"github.com/google/uuid"
)

// Priority is the client-settable urgency of a task.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Priorities lists the valid values in severity order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Rank is the severity rank used for sorting: Low=1 up to Critical=4.
// Unknown values sort after Critical.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityCritical:
		return 4
	default:
		return 5
	}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Status is derived from the deadline and the user completion flag; it is
// never accepted from clients.
type Status string

const (
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
	StatusOverdue   Status = "Overdue"
	StatusLate      Status = "Late"
)

// DeriveStatus computes the task status from its deadline, the user
// completion flag and the calendar date of the write. The comparison is
// strictly "today after deadline": the deadline day itself is not overdue.
func DeriveStatus(deadline *time.Time, completedByUser bool, today time.Time) Status {
	pastDeadline := deadline != nil && today.After(*deadline)

	if completedByUser {
		if pastDeadline {
			return StatusLate
		}
		return StatusCompleted
	}
	if pastDeadline {
		return StatusOverdue
	}
	return StatusActive
}

// Task is the single managed entity. All date fields are calendar dates
// (midnight UTC); Status always reflects DeriveStatus as of the last write.
type Task struct {
	ID                uuid.UUID `gorm:"primaryKey;type:uuid"`
	Title             string    `gorm:"not null"`
	Description       string
	Deadline          *time.Time `gorm:"type:date"`
	Priority          Priority   `gorm:"type:varchar(10);not null"`
	Status            Status     `gorm:"type:varchar(10);not null"`
	IsCompletedByUser bool       `gorm:"not null;default:false"`
	CreatedAt         time.Time  `gorm:"type:date;autoCreateTime:false"`
	UpdatedAt         *time.Time `gorm:"type:date;autoUpdateTime:false"`
}

func (Task) TableName() string {
	return "tasks"
}
