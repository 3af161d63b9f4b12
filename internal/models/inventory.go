package models

import "time"

const (
	InventoryStatusLow  = "low"
	InventoryStatusGood = "good"
)

// InventoryItem tracks a quantity-based supply (feed, seed, fuel). Status is
// derived from Quantity vs Threshold; LastUpdated is refreshed on every
// mutation.
type InventoryItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `json:"category,omitempty"`
	Quantity    float64   `gorm:"not null;default:0" json:"quantity"`
	Unit        string    `json:"unit,omitempty"`
	Threshold   float64   `gorm:"not null;default:0" json:"threshold"`
	Status      string    `gorm:"not null;default:good" json:"status"`
	LastUpdated time.Time `json:"last_updated"`
}
