// Package store defines the owner-scoped storage facade shared by the
// in-memory and database backends. Callers resolve the owning user before
// every call; the facade only scopes queries, it never decides access.
package store

import (
	"errors"
	"time"

	"farmstead/internal/models"
)

// ErrNotFound is returned by patch operations referencing an absent record.
// Reads signal absence with a boolean instead; deletes report it as false.
var ErrNotFound = errors.New("record not found")

// Patch structs carry sparse updates: nil means "leave untouched". Optional
// model fields (equipment dates) can be set but not cleared through a patch.

type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Priority    *string
	Completed   *bool
	Assignee    *string
	Recurrence  *string
}

type InventoryPatch struct {
	Name      *string
	Category  *string
	Quantity  *float64
	Unit      *string
	Threshold *float64
}

type EquipmentPatch struct {
	Name        *string
	Status      *string
	LastUsed    *time.Time
	Assignee    *string
	NextService *time.Time
}

type ContactPatch struct {
	Name    *string
	Type    *string
	Email   *string
	Phone   *string
	Address *string
	Notes   *string
}

type TaskStore interface {
	CreateTask(task *models.Task) error
	GetTask(ownerID uint, taskID uint) (models.Task, bool, error)
	ListTasks(ownerID uint) ([]models.Task, error)
	PatchTask(ownerID uint, taskID uint, patch TaskPatch) (models.Task, error)
	DeleteTask(ownerID uint, taskID uint) (bool, error)

	// Recurrence roller support; these cross owner boundaries deliberately.
	ListCompletedRecurringTasks() ([]models.Task, error)
	RescheduleTask(ownerID uint, taskID uint, nextDue time.Time) error
}

type InventoryStore interface {
	CreateInventoryItem(item *models.InventoryItem) error
	GetInventoryItem(ownerID uint, itemID uint) (models.InventoryItem, bool, error)
	ListInventoryItems(ownerID uint) ([]models.InventoryItem, error)
	ListLowStockItems(ownerID uint) ([]models.InventoryItem, error)
	PatchInventoryItem(ownerID uint, itemID uint, patch InventoryPatch) (models.InventoryItem, error)
	DeleteInventoryItem(ownerID uint, itemID uint) (bool, error)
}

type EquipmentStore interface {
	CreateEquipmentItem(item *models.EquipmentItem) error
	GetEquipmentItem(ownerID uint, itemID uint) (models.EquipmentItem, bool, error)
	ListEquipmentItems(ownerID uint) ([]models.EquipmentItem, error)
	PatchEquipmentItem(ownerID uint, itemID uint, patch EquipmentPatch) (models.EquipmentItem, error)
	DeleteEquipmentItem(ownerID uint, itemID uint) (bool, error)
}

type ContactStore interface {
	CreateContact(contact *models.Contact) error
	GetContact(ownerID uint, contactID uint) (models.Contact, bool, error)
	ListContacts(ownerID uint) ([]models.Contact, error)
	PatchContact(ownerID uint, contactID uint, patch ContactPatch) (models.Contact, error)
	DeleteContact(ownerID uint, contactID uint) (bool, error)
}

type WeatherPreferenceStore interface {
	// GetWeatherPreference returns the saved preference or the default one
	// when the user never saved any.
	GetWeatherPreference(ownerID uint) (models.WeatherPreference, error)
	SaveWeatherPreference(preference *models.WeatherPreference) error
}

type UserStore interface {
	CreateUser(user *models.User) error
	FindUserByID(userID uint) (models.User, bool, error)
	FindUserByEmail(email string) (models.User, bool, error)
	UserEmailExists(email string) (bool, error)
	UpdateUserPassword(userID uint, passwordHash string) error
}

// Store is the full facade the route layer is wired against.
type Store interface {
	TaskStore
	InventoryStore
	EquipmentStore
	ContactStore
	WeatherPreferenceStore
	UserStore
}
