package services

import (
	"time"

	"farmstead/internal/models"
)

// DateAtLocation truncates a moment to midnight of its calendar day in the
// given location. All "is this due today" decisions go through here so the
// reference timezone is a single explicit input.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// TaskStatusAt derives a task's display status from its completion flag and
// due date, evaluated against the calendar day containing now. Completion
// takes precedence over any date comparison.
func TaskStatusAt(dueDate time.Time, completed bool, now time.Time, location *time.Location) string {
	if completed {
		return models.TaskStatusCompleted
	}

	due := DateAtLocation(dueDate, location)
	today := DateAtLocation(now, location)
	switch {
	case due.Before(today):
		return models.TaskStatusOverdue
	case due.Equal(today):
		return models.TaskStatusToday
	default:
		return models.TaskStatusUpcoming
	}
}

// InventoryStatus classifies an item as low stock on a strict comparison:
// quantity equal to the threshold is still good.
func InventoryStatus(quantity float64, threshold float64) string {
	if quantity < threshold {
		return models.InventoryStatusLow
	}
	return models.InventoryStatusGood
}
