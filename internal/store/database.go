package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"farmstead/internal/models"
	"farmstead/internal/services"
)

// DatabaseStore is the persistent backend over GORM. Each operation touches
// exactly one record, so no transactions are needed; concurrent patches to
// the same record are last-write-wins.
type DatabaseStore struct {
	database *gorm.DB
	location *time.Location
	now      func() time.Time
}

func NewDatabaseStore(database *gorm.DB, location *time.Location) *DatabaseStore {
	if location == nil {
		location = time.UTC
	}
	return &DatabaseStore{
		database: database,
		location: location,
		now:      time.Now,
	}
}

func (store *DatabaseStore) CreateTask(task *models.Task) error {
	now := store.now()
	task.CreatedAt = now
	task.Status = services.TaskStatusAt(task.DueDate, task.Completed, now, store.location)
	return store.database.Create(task).Error
}

func (store *DatabaseStore) GetTask(ownerID uint, taskID uint) (models.Task, bool, error) {
	var task models.Task
	err := store.database.Where("id = ? AND user_id = ?", taskID, ownerID).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Task{}, false, nil
	}
	if err != nil {
		return models.Task{}, false, err
	}
	return task, true, nil
}

func (store *DatabaseStore) ListTasks(ownerID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := store.database.
		Where("user_id = ?", ownerID).
		Order("due_date ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (store *DatabaseStore) PatchTask(ownerID uint, taskID uint, patch TaskPatch) (models.Task, error) {
	task, found, err := store.GetTask(ownerID, taskID)
	if err != nil {
		return models.Task{}, err
	}
	if !found {
		return models.Task{}, ErrNotFound
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.DueDate != nil {
		task.DueDate = *patch.DueDate
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	if patch.Assignee != nil {
		task.Assignee = *patch.Assignee
	}
	if patch.Recurrence != nil {
		task.Recurrence = *patch.Recurrence
	}

	if patch.Completed != nil || patch.DueDate != nil {
		task.Status = services.TaskStatusAt(task.DueDate, task.Completed, store.now(), store.location)
	}

	if err := store.database.Save(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (store *DatabaseStore) DeleteTask(ownerID uint, taskID uint) (bool, error) {
	result := store.database.Where("id = ? AND user_id = ?", taskID, ownerID).Delete(&models.Task{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (store *DatabaseStore) ListCompletedRecurringTasks() ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := store.database.
		Where("completed = ? AND recurrence <> ''", true).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (store *DatabaseStore) RescheduleTask(ownerID uint, taskID uint, nextDue time.Time) error {
	completed := false
	_, err := store.PatchTask(ownerID, taskID, TaskPatch{DueDate: &nextDue, Completed: &completed})
	return err
}

func (store *DatabaseStore) CreateInventoryItem(item *models.InventoryItem) error {
	item.LastUpdated = store.now()
	item.Status = services.InventoryStatus(item.Quantity, item.Threshold)
	return store.database.Create(item).Error
}

func (store *DatabaseStore) GetInventoryItem(ownerID uint, itemID uint) (models.InventoryItem, bool, error) {
	var item models.InventoryItem
	err := store.database.Where("id = ? AND user_id = ?", itemID, ownerID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.InventoryItem{}, false, nil
	}
	if err != nil {
		return models.InventoryItem{}, false, err
	}
	return item, true, nil
}

func (store *DatabaseStore) ListInventoryItems(ownerID uint) ([]models.InventoryItem, error) {
	items := make([]models.InventoryItem, 0)
	if err := store.database.
		Where("user_id = ?", ownerID).
		Order("name ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (store *DatabaseStore) ListLowStockItems(ownerID uint) ([]models.InventoryItem, error) {
	items := make([]models.InventoryItem, 0)
	if err := store.database.
		Where("user_id = ? AND status = ?", ownerID, models.InventoryStatusLow).
		Order("name ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (store *DatabaseStore) PatchInventoryItem(ownerID uint, itemID uint, patch InventoryPatch) (models.InventoryItem, error) {
	item, found, err := store.GetInventoryItem(ownerID, itemID)
	if err != nil {
		return models.InventoryItem{}, err
	}
	if !found {
		return models.InventoryItem{}, ErrNotFound
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.Threshold != nil {
		item.Threshold = *patch.Threshold
	}

	if patch.Quantity != nil || patch.Threshold != nil {
		item.Status = services.InventoryStatus(item.Quantity, item.Threshold)
	}
	item.LastUpdated = store.now()

	if err := store.database.Save(&item).Error; err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}

func (store *DatabaseStore) DeleteInventoryItem(ownerID uint, itemID uint) (bool, error) {
	result := store.database.Where("id = ? AND user_id = ?", itemID, ownerID).Delete(&models.InventoryItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (store *DatabaseStore) CreateEquipmentItem(item *models.EquipmentItem) error {
	if item.Status == "" {
		item.Status = models.EquipmentStatusAvailable
	}
	return store.database.Create(item).Error
}

func (store *DatabaseStore) GetEquipmentItem(ownerID uint, itemID uint) (models.EquipmentItem, bool, error) {
	var item models.EquipmentItem
	err := store.database.Where("id = ? AND user_id = ?", itemID, ownerID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.EquipmentItem{}, false, nil
	}
	if err != nil {
		return models.EquipmentItem{}, false, err
	}
	return item, true, nil
}

func (store *DatabaseStore) ListEquipmentItems(ownerID uint) ([]models.EquipmentItem, error) {
	items := make([]models.EquipmentItem, 0)
	if err := store.database.
		Where("user_id = ?", ownerID).
		Order("name ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (store *DatabaseStore) PatchEquipmentItem(ownerID uint, itemID uint, patch EquipmentPatch) (models.EquipmentItem, error) {
	item, found, err := store.GetEquipmentItem(ownerID, itemID)
	if err != nil {
		return models.EquipmentItem{}, err
	}
	if !found {
		return models.EquipmentItem{}, ErrNotFound
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Status != nil {
		item.Status = *patch.Status
	}
	if patch.LastUsed != nil {
		lastUsed := *patch.LastUsed
		item.LastUsed = &lastUsed
	}
	if patch.Assignee != nil {
		item.Assignee = *patch.Assignee
	}
	if patch.NextService != nil {
		nextService := *patch.NextService
		item.NextService = &nextService
	}

	if err := store.database.Save(&item).Error; err != nil {
		return models.EquipmentItem{}, err
	}
	return item, nil
}

func (store *DatabaseStore) DeleteEquipmentItem(ownerID uint, itemID uint) (bool, error) {
	result := store.database.Where("id = ? AND user_id = ?", itemID, ownerID).Delete(&models.EquipmentItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (store *DatabaseStore) CreateContact(contact *models.Contact) error {
	return store.database.Create(contact).Error
}

func (store *DatabaseStore) GetContact(ownerID uint, contactID uint) (models.Contact, bool, error) {
	var contact models.Contact
	err := store.database.Where("id = ? AND user_id = ?", contactID, ownerID).First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Contact{}, false, nil
	}
	if err != nil {
		return models.Contact{}, false, err
	}
	return contact, true, nil
}

func (store *DatabaseStore) ListContacts(ownerID uint) ([]models.Contact, error) {
	contacts := make([]models.Contact, 0)
	if err := store.database.
		Where("user_id = ?", ownerID).
		Order("name ASC, id ASC").
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (store *DatabaseStore) PatchContact(ownerID uint, contactID uint, patch ContactPatch) (models.Contact, error) {
	contact, found, err := store.GetContact(ownerID, contactID)
	if err != nil {
		return models.Contact{}, err
	}
	if !found {
		return models.Contact{}, ErrNotFound
	}

	if patch.Name != nil {
		contact.Name = *patch.Name
	}
	if patch.Type != nil {
		contact.Type = *patch.Type
	}
	if patch.Email != nil {
		contact.Email = *patch.Email
	}
	if patch.Phone != nil {
		contact.Phone = *patch.Phone
	}
	if patch.Address != nil {
		contact.Address = *patch.Address
	}
	if patch.Notes != nil {
		contact.Notes = *patch.Notes
	}

	if err := store.database.Save(&contact).Error; err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

func (store *DatabaseStore) DeleteContact(ownerID uint, contactID uint) (bool, error) {
	result := store.database.Where("id = ? AND user_id = ?", contactID, ownerID).Delete(&models.Contact{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (store *DatabaseStore) GetWeatherPreference(ownerID uint) (models.WeatherPreference, error) {
	var preference models.WeatherPreference
	err := store.database.Where("user_id = ?", ownerID).First(&preference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultWeatherPreference(ownerID), nil
	}
	if err != nil {
		return models.WeatherPreference{}, err
	}
	return preference, nil
}

func (store *DatabaseStore) SaveWeatherPreference(preference *models.WeatherPreference) error {
	var existing models.WeatherPreference
	err := store.database.Where("user_id = ?", preference.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.database.Create(preference).Error
	}
	if err != nil {
		return err
	}
	preference.ID = existing.ID
	return store.database.Save(preference).Error
}

func (store *DatabaseStore) CreateUser(user *models.User) error {
	user.CreatedAt = store.now()
	return store.database.Create(user).Error
}

func (store *DatabaseStore) FindUserByID(userID uint) (models.User, bool, error) {
	var user models.User
	err := store.database.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}

func (store *DatabaseStore) FindUserByEmail(email string) (models.User, bool, error) {
	var user models.User
	err := store.database.Where("lower(trim(email)) = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}

func (store *DatabaseStore) UserEmailExists(email string) (bool, error) {
	var matched int64
	if err := store.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (store *DatabaseStore) UpdateUserPassword(userID uint, passwordHash string) error {
	result := store.database.Model(&models.User{}).Where("id = ?", userID).Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
