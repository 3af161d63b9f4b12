package api

import (
	"errors"
	"math"
	"net/mail"
	"strings"
	"time"

	"farmstead/internal/models"
)

const dateLayout = "2006-01-02"

var (
	errInvalidDate       = errors.New("invalid date")
	errInvalidPriority   = errors.New("invalid priority")
	errInvalidRecurrence = errors.New("invalid recurrence")
	errInvalidStatus     = errors.New("invalid status")
	errInvalidUnits      = errors.New("invalid units")
	errNegativeQuantity  = errors.New("quantity must be non-negative")
	errNegativeThreshold = errors.New("threshold must be non-negative")
	errTitleRequired     = errors.New("title is required")
	errNameRequired      = errors.New("name is required")
)

// parseDateParam reads a YYYY-MM-DD value as midnight in the reference
// timezone; due dates carry no time component.
func parseDateParam(raw string, location *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, errInvalidDate
	}
	parsed, err := time.ParseInLocation(dateLayout, trimmed, location)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return parsed, nil
}

func validPriority(priority string) bool {
	switch priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityCritical:
		return true
	default:
		return false
	}
}

func validRecurrence(recurrence string) bool {
	switch recurrence {
	case models.RecurrenceNone, models.RecurrenceDaily, models.RecurrenceWeekly, models.RecurrenceMonthly:
		return true
	default:
		return false
	}
}

func validEquipmentStatus(status string) bool {
	switch status {
	case models.EquipmentStatusAvailable, models.EquipmentStatusInUse,
		models.EquipmentStatusMaintenanceDue, models.EquipmentStatusOutOfService:
		return true
	default:
		return false
	}
}

func validUnits(units string) bool {
	return units == models.UnitsMetric || units == models.UnitsImperial
}

// roundQuantity normalizes quantities and thresholds to two decimal places
// at the boundary so stored values compare cleanly.
func roundQuantity(value float64) float64 {
	return math.Round(value*100) / 100
}

func normalizeEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func (handler *Handler) validateTaskCreate(payload *taskCreatePayload) (time.Time, error) {
	if strings.TrimSpace(payload.Title) == "" {
		return time.Time{}, errTitleRequired
	}
	if payload.Priority == "" {
		payload.Priority = models.PriorityMedium
	}
	if !validPriority(payload.Priority) {
		return time.Time{}, errInvalidPriority
	}
	if !validRecurrence(payload.Recurrence) {
		return time.Time{}, errInvalidRecurrence
	}
	return parseDateParam(payload.DueDate, handler.location)
}

func validateInventoryCreate(payload *inventoryCreatePayload) error {
	if strings.TrimSpace(payload.Name) == "" {
		return errNameRequired
	}
	if payload.Quantity < 0 {
		return errNegativeQuantity
	}
	if payload.Threshold < 0 {
		return errNegativeThreshold
	}
	payload.Quantity = roundQuantity(payload.Quantity)
	payload.Threshold = roundQuantity(payload.Threshold)
	return nil
}

func validateInventoryPatch(payload *inventoryPatchPayload) error {
	if payload.Name != nil && strings.TrimSpace(*payload.Name) == "" {
		return errNameRequired
	}
	if payload.Quantity != nil {
		if *payload.Quantity < 0 {
			return errNegativeQuantity
		}
		rounded := roundQuantity(*payload.Quantity)
		payload.Quantity = &rounded
	}
	if payload.Threshold != nil {
		if *payload.Threshold < 0 {
			return errNegativeThreshold
		}
		rounded := roundQuantity(*payload.Threshold)
		payload.Threshold = &rounded
	}
	return nil
}
