package models

import "time"

const (
	EquipmentStatusAvailable      = "available"
	EquipmentStatusInUse          = "in-use"
	EquipmentStatusMaintenanceDue = "maintenance-due"
	EquipmentStatusOutOfService   = "out-of-service"
)

// EquipmentItem is a machine or tool. Unlike tasks and inventory its status
// is set by the user, not derived.
type EquipmentItem struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"-"`
	Name        string     `gorm:"not null" json:"name"`
	Status      string     `gorm:"not null;default:available" json:"status"`
	LastUsed    *time.Time `gorm:"type:date" json:"last_used,omitempty"`
	Assignee    string     `json:"assignee,omitempty"`
	NextService *time.Time `gorm:"type:date" json:"next_service,omitempty"`
}
