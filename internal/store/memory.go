package store

import (
	"sort"
	"sync"
	"time"

	"farmstead/internal/models"
	"farmstead/internal/services"
)

// MemoryStore keeps every record in process-local maps. It backs tests and
// the STORE=memory configuration; records are gone when the process exits.
type MemoryStore struct {
	mu       sync.Mutex
	location *time.Location
	now      func() time.Time

	nextTaskID      uint
	nextItemID      uint
	nextEquipmentID uint
	nextContactID   uint
	nextPrefID      uint
	nextUserID      uint

	tasks     map[uint]models.Task
	inventory map[uint]models.InventoryItem
	equipment map[uint]models.EquipmentItem
	contacts  map[uint]models.Contact
	prefs     map[uint]models.WeatherPreference // keyed by owning user
	users     map[uint]models.User
}

func NewMemoryStore(location *time.Location) *MemoryStore {
	if location == nil {
		location = time.UTC
	}
	return &MemoryStore{
		location:  location,
		now:       time.Now,
		tasks:     make(map[uint]models.Task),
		inventory: make(map[uint]models.InventoryItem),
		equipment: make(map[uint]models.EquipmentItem),
		contacts:  make(map[uint]models.Contact),
		prefs:     make(map[uint]models.WeatherPreference),
		users:     make(map[uint]models.User),
	}
}

func (store *MemoryStore) CreateTask(task *models.Task) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := store.now()
	store.nextTaskID++
	task.ID = store.nextTaskID
	task.CreatedAt = now
	task.Status = services.TaskStatusAt(task.DueDate, task.Completed, now, store.location)
	store.tasks[task.ID] = *task
	return nil
}

func (store *MemoryStore) GetTask(ownerID uint, taskID uint) (models.Task, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	task, ok := store.tasks[taskID]
	if !ok || task.UserID != ownerID {
		return models.Task{}, false, nil
	}
	return task, true, nil
}

func (store *MemoryStore) ListTasks(ownerID uint) ([]models.Task, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	tasks := make([]models.Task, 0)
	for _, task := range store.tasks {
		if task.UserID == ownerID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].DueDate.Equal(tasks[j].DueDate) {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

func (store *MemoryStore) PatchTask(ownerID uint, taskID uint, patch TaskPatch) (models.Task, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	task, ok := store.tasks[taskID]
	if !ok || task.UserID != ownerID {
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

	store.tasks[taskID] = task
	return task, nil
}

func (store *MemoryStore) DeleteTask(ownerID uint, taskID uint) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	task, ok := store.tasks[taskID]
	if !ok || task.UserID != ownerID {
		return false, nil
	}
	delete(store.tasks, taskID)
	return true, nil
}

func (store *MemoryStore) ListCompletedRecurringTasks() ([]models.Task, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	tasks := make([]models.Task, 0)
	for _, task := range store.tasks {
		if task.Completed && task.Recurrence != models.RecurrenceNone {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (store *MemoryStore) RescheduleTask(ownerID uint, taskID uint, nextDue time.Time) error {
	completed := false
	_, err := store.PatchTask(ownerID, taskID, TaskPatch{DueDate: &nextDue, Completed: &completed})
	return err
}

func (store *MemoryStore) CreateInventoryItem(item *models.InventoryItem) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.nextItemID++
	item.ID = store.nextItemID
	item.LastUpdated = store.now()
	item.Status = services.InventoryStatus(item.Quantity, item.Threshold)
	store.inventory[item.ID] = *item
	return nil
}

func (store *MemoryStore) GetInventoryItem(ownerID uint, itemID uint) (models.InventoryItem, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	item, ok := store.inventory[itemID]
	if !ok || item.UserID != ownerID {
		return models.InventoryItem{}, false, nil
	}
	return item, true, nil
}

func (store *MemoryStore) ListInventoryItems(ownerID uint) ([]models.InventoryItem, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	items := make([]models.InventoryItem, 0)
	for _, item := range store.inventory {
		if item.UserID == ownerID {
			items = append(items, item)
		}
	}
	sortInventoryItems(items)
	return items, nil
}

func (store *MemoryStore) ListLowStockItems(ownerID uint) ([]models.InventoryItem, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	items := make([]models.InventoryItem, 0)
	for _, item := range store.inventory {
		if item.UserID == ownerID && item.Status == models.InventoryStatusLow {
			items = append(items, item)
		}
	}
	sortInventoryItems(items)
	return items, nil
}

func (store *MemoryStore) PatchInventoryItem(ownerID uint, itemID uint, patch InventoryPatch) (models.InventoryItem, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	item, ok := store.inventory[itemID]
	if !ok || item.UserID != ownerID {
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

	store.inventory[itemID] = item
	return item, nil
}

func (store *MemoryStore) DeleteInventoryItem(ownerID uint, itemID uint) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	item, ok := store.inventory[itemID]
	if !ok || item.UserID != ownerID {
		return false, nil
	}
	delete(store.inventory, itemID)
	return true, nil
}

func (store *MemoryStore) CreateEquipmentItem(item *models.EquipmentItem) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.nextEquipmentID++
	item.ID = store.nextEquipmentID
	if item.Status == "" {
		item.Status = models.EquipmentStatusAvailable
	}
	store.equipment[item.ID] = *item
	return nil
}

func (store *MemoryStore) GetEquipmentItem(ownerID uint, itemID uint) (models.EquipmentItem, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	item, ok := store.equipment[itemID]
	if !ok || item.UserID != ownerID {
		return models.EquipmentItem{}, false, nil
	}
	return item, true, nil
}

func (store *MemoryStore) ListEquipmentItems(ownerID uint) ([]models.EquipmentItem, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	items := make([]models.EquipmentItem, 0)
	for _, item := range store.equipment {
		if item.UserID == ownerID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (store *MemoryStore) PatchEquipmentItem(ownerID uint, itemID uint, patch EquipmentPatch) (models.EquipmentItem, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	item, ok := store.equipment[itemID]
	if !ok || item.UserID != ownerID {
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

	store.equipment[itemID] = item
	return item, nil
}

func (store *MemoryStore) DeleteEquipmentItem(ownerID uint, itemID uint) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	item, ok := store.equipment[itemID]
	if !ok || item.UserID != ownerID {
		return false, nil
	}
	delete(store.equipment, itemID)
	return true, nil
}

func (store *MemoryStore) CreateContact(contact *models.Contact) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.nextContactID++
	contact.ID = store.nextContactID
	store.contacts[contact.ID] = *contact
	return nil
}

func (store *MemoryStore) GetContact(ownerID uint, contactID uint) (models.Contact, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	contact, ok := store.contacts[contactID]
	if !ok || contact.UserID != ownerID {
		return models.Contact{}, false, nil
	}
	return contact, true, nil
}

func (store *MemoryStore) ListContacts(ownerID uint) ([]models.Contact, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	contacts := make([]models.Contact, 0)
	for _, contact := range store.contacts {
		if contact.UserID == ownerID {
			contacts = append(contacts, contact)
		}
	}
	sort.Slice(contacts, func(i, j int) bool {
		if contacts[i].Name != contacts[j].Name {
			return contacts[i].Name < contacts[j].Name
		}
		return contacts[i].ID < contacts[j].ID
	})
	return contacts, nil
}

func (store *MemoryStore) PatchContact(ownerID uint, contactID uint, patch ContactPatch) (models.Contact, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	contact, ok := store.contacts[contactID]
	if !ok || contact.UserID != ownerID {
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

	store.contacts[contactID] = contact
	return contact, nil
}

func (store *MemoryStore) DeleteContact(ownerID uint, contactID uint) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	contact, ok := store.contacts[contactID]
	if !ok || contact.UserID != ownerID {
		return false, nil
	}
	delete(store.contacts, contactID)
	return true, nil
}

func (store *MemoryStore) GetWeatherPreference(ownerID uint) (models.WeatherPreference, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	preference, ok := store.prefs[ownerID]
	if !ok {
		return models.DefaultWeatherPreference(ownerID), nil
	}
	return preference, nil
}

func (store *MemoryStore) SaveWeatherPreference(preference *models.WeatherPreference) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	existing, ok := store.prefs[preference.UserID]
	if ok {
		preference.ID = existing.ID
	} else {
		store.nextPrefID++
		preference.ID = store.nextPrefID
	}
	store.prefs[preference.UserID] = *preference
	return nil
}

func (store *MemoryStore) CreateUser(user *models.User) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.nextUserID++
	user.ID = store.nextUserID
	user.CreatedAt = store.now()
	store.users[user.ID] = *user
	return nil
}

func (store *MemoryStore) FindUserByID(userID uint) (models.User, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	user, ok := store.users[userID]
	if !ok {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (store *MemoryStore) FindUserByEmail(email string) (models.User, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, user := range store.users {
		if user.Email == email {
			return user, true, nil
		}
	}
	return models.User{}, false, nil
}

func (store *MemoryStore) UserEmailExists(email string) (bool, error) {
	_, found, err := store.FindUserByEmail(email)
	return found, err
}

func (store *MemoryStore) UpdateUserPassword(userID uint, passwordHash string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	user, ok := store.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.PasswordHash = passwordHash
	store.users[userID] = user
	return nil
}

func sortInventoryItems(items []models.InventoryItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
}
