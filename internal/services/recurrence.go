package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"farmstead/internal/models"
)

// NextDueDate computes the follow-up due date for a recurring task. The
// second return is false for non-recurring tasks.
func NextDueDate(dueDate time.Time, recurrence string) (time.Time, bool) {
	switch recurrence {
	case models.RecurrenceDaily:
		return dueDate.AddDate(0, 0, 1), true
	case models.RecurrenceWeekly:
		return dueDate.AddDate(0, 0, 7), true
	case models.RecurrenceMonthly:
		return dueDate.AddDate(0, 1, 0), true
	default:
		return dueDate, false
	}
}

// RecurringTaskStore is the slice of the storage facade the recurrence
// roller needs.
type RecurringTaskStore interface {
	ListCompletedRecurringTasks() ([]models.Task, error)
	RescheduleTask(ownerID uint, taskID uint, nextDue time.Time) error
}

// RecurrenceService rolls completed recurring tasks forward to their next
// occurrence shortly after local midnight.
type RecurrenceService struct {
	tasks    RecurringTaskStore
	location *time.Location
	cron     *cron.Cron
}

func NewRecurrenceService(tasks RecurringTaskStore, location *time.Location) *RecurrenceService {
	if location == nil {
		location = time.UTC
	}
	return &RecurrenceService{
		tasks:    tasks,
		location: location,
		cron:     cron.New(cron.WithLocation(location)),
	}
}

// Start schedules the nightly roll and runs one pass immediately so tasks
// completed before a restart are not skipped. Returns after scheduling.
func (service *RecurrenceService) Start(ctx context.Context) error {
	if _, err := service.cron.AddFunc("5 0 * * *", func() {
		service.RollCompleted()
	}); err != nil {
		return err
	}
	service.cron.Start()
	service.RollCompleted()

	go func() {
		<-ctx.Done()
		stopCtx := service.cron.Stop()
		<-stopCtx.Done()
	}()
	return nil
}

// RollCompleted advances every completed recurring task to its next due date
// and reopens it. Individual failures are logged and skipped so one bad row
// cannot stall the rest.
func (service *RecurrenceService) RollCompleted() {
	tasks, err := service.tasks.ListCompletedRecurringTasks()
	if err != nil {
		log.Printf("recurrence roll: list tasks: %v", err)
		return
	}

	for _, task := range tasks {
		nextDue, ok := NextDueDate(task.DueDate, task.Recurrence)
		if !ok {
			continue
		}
		if err := service.tasks.RescheduleTask(task.UserID, task.ID, nextDue); err != nil {
			log.Printf("recurrence roll: reschedule task %d: %v", task.ID, err)
		}
	}
}
