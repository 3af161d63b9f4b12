package models

import "time"

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

const (
	TaskStatusUpcoming  = "upcoming"
	TaskStatusToday     = "today"
	TaskStatusOverdue   = "overdue"
	TaskStatusCompleted = "completed"
)

const (
	RecurrenceNone    = ""
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)

// Task is a scheduled piece of farm work. Status is always derived from
// Completed and DueDate, never set directly by callers.
type Task struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"-"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `gorm:"type:date;not null" json:"due_date"`
	Priority    string    `gorm:"not null;default:medium" json:"priority"`
	Status      string    `gorm:"not null;default:upcoming" json:"status"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	Assignee    string    `json:"assignee,omitempty"`
	Recurrence  string    `json:"recurrence,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
