package models

// Contact is a CRM entry: a vet, supplier, buyer or contractor.
type Contact struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"-"`
	Name    string `gorm:"not null" json:"name"`
	Type    string `json:"type,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}
