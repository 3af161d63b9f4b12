package store

import (
	"errors"
	"testing"
	"time"

	"farmstead/internal/models"
)

// The same behavioral suite runs against both backends; each *_test.go file
// supplies a factory. The returned setNow hook pins the clock used for
// status derivation and timestamps.
type storeFactory func(t *testing.T) (Store, func(func() time.Time))

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func runStoreSuite(t *testing.T, newStore storeFactory) {
	t.Run("task lifecycle", func(t *testing.T) { testTaskLifecycle(t, newStore) })
	t.Run("task patch idempotence", func(t *testing.T) { testTaskPatchIdempotence(t, newStore) })
	t.Run("task owner scoping", func(t *testing.T) { testTaskOwnerScoping(t, newStore) })
	t.Run("task list order", func(t *testing.T) { testTaskListOrder(t, newStore) })
	t.Run("inventory status", func(t *testing.T) { testInventoryStatus(t, newStore) })
	t.Run("inventory timestamps", func(t *testing.T) { testInventoryTimestamps(t, newStore) })
	t.Run("patch not found", func(t *testing.T) { testPatchNotFound(t, newStore) })
	t.Run("equipment", func(t *testing.T) { testEquipment(t, newStore) })
	t.Run("contacts", func(t *testing.T) { testContacts(t, newStore) })
	t.Run("recurring tasks", func(t *testing.T) { testRecurringTasks(t, newStore) })
	t.Run("weather preference", func(t *testing.T) { testWeatherPreference(t, newStore) })
	t.Run("users", func(t *testing.T) { testUsers(t, newStore) })
}

func testTaskLifecycle(t *testing.T, newStore storeFactory) {
	storage, setNow := newStore(t)
	setNow(func() time.Time { return testNow })

	task := models.Task{
		UserID:   1,
		Title:    "Fix fence",
		DueDate:  testNow.AddDate(0, 0, -1),
		Priority: models.PriorityHigh,
	}
	if err := storage.CreateTask(&task); err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.ID == 0 {
		t.Fatal("expected generated task id")
	}
	if task.Status != models.TaskStatusOverdue {
		t.Fatalf("expected overdue on create, got %q", task.Status)
	}
	if task.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be stamped")
	}

	completed := true
	updated, err := storage.PatchTask(1, task.ID, TaskPatch{Completed: &completed})
	if err != nil {
		t.Fatalf("patch task: %v", err)
	}
	if updated.Status != models.TaskStatusCompleted {
		t.Fatalf("expected completed after patch, got %q", updated.Status)
	}
	if !updated.CreatedAt.Equal(task.CreatedAt) {
		t.Fatal("created_at must be immutable across patches")
	}

	// Un-completing re-derives from the date rule; no transition is forbidden.
	uncompleted := false
	updated, err = storage.PatchTask(1, task.ID, TaskPatch{Completed: &uncompleted})
	if err != nil {
		t.Fatalf("patch task: %v", err)
	}
	if updated.Status != models.TaskStatusOverdue {
		t.Fatalf("expected overdue after un-completing, got %q", updated.Status)
	}

	existed, err := storage.DeleteTask(1, task.ID)
	if err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if !existed {
		t.Fatal("expected delete to report an existing record")
	}

	_, found, err := storage.GetTask(1, task.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if found {
		t.Fatal("expected task to be absent after delete")
	}

	existed, err = storage.DeleteTask(1, task.ID)
	if err != nil {
		t.Fatalf("second delete must not error: %v", err)
	}
	if existed {
		t.Fatal("expected second delete to report false")
	}
}

func testTaskPatchIdempotence(t *testing.T, newStore storeFactory) {
	storage, setNow := newStore(t)
	setNow(func() time.Time { return testNow })

	task := models.Task{UserID: 1, Title: "Water seedlings", DueDate: testNow, Priority: models.PriorityLow}
	if err := storage.CreateTask(&task); err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.Status != models.TaskStatusToday {
		t.Fatalf("expected today, got %q", task.Status)
	}

	sameDue := task.DueDate
	sameCompleted := task.Completed
	updated, err := storage.PatchTask(1, task.ID, TaskPatch{DueDate: &sameDue, Completed: &sameCompleted})
	if err != nil {
		t.Fatalf("patch task: %v", err)
	}
	if updated.Status != task.Status {
		t.Fatalf("patching with current values must keep status %q, got %q", task.Status, updated.Status)
	}
}

func testTaskOwnerScoping(t *testing.T, newStore storeFactory) {
	storage, setNow := newStore(t)
	setNow(func() time.Time { return testNow })

	task := models.Task{UserID: 1, Title: "Move cattle", DueDate: testNow, Priority: models.PriorityMedium}
	if err := storage.CreateTask(&task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	if _, found, _ := storage.GetTask(2, task.ID); found {
		t.Fatal("expected task to be invisible to another owner")
	}
	if _, err := storage.PatchTask(2, task.ID, TaskPatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-owner patch, got %v", err)
	}
	if existed, _ := storage.DeleteTask(2, task.ID); existed {
		t.Fatal("expected cross-owner delete to report false")
	}

	tasks, err := storage.ListTasks(2)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty list for other owner, got %d", len(tasks))
	}
}

func testTaskListOrder(t *testing.T, newStore storeFactory) {
	storage, setNow := newStore(t)
	setNow(func() time.Time { return testNow })

	later := models.Task{UserID: 1, Title: "Later", DueDate: testNow.AddDate(0, 0, 5), Priority: models.PriorityLow}
	sooner := models.Task{UserID: 1, Title: "Sooner", DueDate: testNow.AddDate(0, 0, 1), Priority: models.PriorityLow}
	if err := storage.CreateTask(&later); err != nil {
		t.Fatalf("create task: %v", err)
	}
	if err := storage.CreateTask(&sooner); err != nil {
		t.Fatalf("create task: %v", err)
	}

	tasks, err := storage.ListTasks(1)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "Sooner" {
		t.Fatalf("expected due-date ordering, got %q first", tasks[0].Title)
	}
}

func testInventoryStatus(t *testing.T, newStore storeFactory) {
	storage, setNow := newStore(t)
	setNow(func() time.Time { return testNow })

	item := models.InventoryItem{UserID: 1, Name: "Chicken feed", Quantity: 5, Unit: "kg", Threshold: 10}
	if err := storage.CreateInventoryItem(&item); err != nil {
		t.Fatalf("create item: %v", err)
	}
	if item.Status != models.InventoryStatusLow {
		t.Fatalf("expected low on create, got %q", item.Status)
	}

	quantity := 12.0
	updated, err := storage.PatchInventoryItem(1, item.ID, InventoryPatch{Quantity: &quantity})
	if err != nil {
		t.Fatalf("patch item: %v", err)
	}
	if updated.Status != models.InventoryStatusGood {
		t.Fatalf("expected good after restock, got %q", updated.Status)
	}

	boundary := models.InventoryItem{UserID: 1, Name: "Diesel", Quantity: 10, Unit: "l", Threshold: 10}
	if err := storage.CreateInventoryItem(&boundary); err != nil {
		t.Fatalf("create item: %v", err)
	}
	if boundary.Status != models.InventoryStatusGood {
		t.Fatalf("quantity == threshold must be good, got %q", boundary.Status)
	}

	// Raising the threshold above the quantity re-derives too.
	threshold := 20.0
	updated, err = storage.PatchInventoryItem(1, boundary.ID, InventoryPatch{Threshold: &threshold})
	if err != nil {
		t.Fatalf("patch item: %v", err)
	}
	if updated.Status != models.InventoryStatusLow {
		t.Fatalf("expected low after raising threshold, got %q", updated.Status)
	}

	low, err := storage.ListLowStockItems(1)
	if err != nil {
		t.Fatalf("list low stock: %v", err)
	}
	if len(low) != 1 || low[0].Name != "Diesel" {
		t.Fatalf("unexpected low stock list: %+v", low)
	}
}

func testInventoryTimestamps(t *testing.T, newStore storeFactory) {
	storage, setNow := newStore(t)
	setNow(func() time.Time { return testNow })

	item := models.InventoryItem{UserID: 1, Name: "Straw", Quantity: 40, Threshold: 10}
	if err := storage.CreateInventoryItem(&item); err != nil {
		t.Fatalf("create item: %v", err)
	}
	if !item.LastUpdated.Equal(testNow) {
		t.Fatalf("expected last_updated stamped at create, got %s", item.LastUpdated)
	}

	later := testNow.Add(2 * time.Hour)
	setNow(func() time.Time { return later })

	// A patch touching neither quantity nor threshold still refreshes the
	// timestamp but leaves status alone.
	category := "bedding"
	updated, err := storage.PatchInventoryItem(1, item.ID, InventoryPatch{Category: &category})
	if err != nil {
		t.Fatalf("patch item: %v", err)
	}
	if !updated.LastUpdated.Equal(later) {
		t.Fatalf("expected last_updated refreshed, got %s", updated.LastUpdated)
	}
	if updated.Status != models.InventoryStatusGood {
		t.Fatalf("expected status untouched, got %q", updated.Status)
	}
}

func testPatchNotFound(t *testing.T, newStore storeFactory) {
	storage, setNow := newStore(t)
	setNow(func() time.Time { return testNow })

	if _, err := storage.PatchTask(1, 999, TaskPatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("task: expected ErrNotFound, got %v", err)
	}
	if _, err := storage.PatchInventoryItem(1, 999, InventoryPatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("inventory: expected ErrNotFound, got %v", err)
	}
	if _, err := storage.PatchEquipmentItem(1, 999, EquipmentPatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("equipment: expected ErrNotFound, got %v", err)
	}
	if _, err := storage.PatchContact(1, 999, ContactPatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("contact: expected ErrNotFound, got %v", err)
	}
}

func testEquipment(t *testing.T, newStore storeFactory) {
	storage, setNow := newStore(t)
	setNow(func() time.Time { return testNow })

	item := models.EquipmentItem{UserID: 1, Name: "Tractor"}
	if err := storage.CreateEquipmentItem(&item); err != nil {
		t.Fatalf("create equipment: %v", err)
	}
	if item.Status != models.EquipmentStatusAvailable {
		t.Fatalf("expected default available status, got %q", item.Status)
	}

	status := models.EquipmentStatusMaintenanceDue
	nextService := testNow.AddDate(0, 1, 0)
	updated, err := storage.PatchEquipmentItem(1, item.ID, EquipmentPatch{Status: &status, NextService: &nextService})
	if err != nil {
		t.Fatalf("patch equipment: %v", err)
	}
	if updated.Status != status {
		t.Fatalf("expected user-set status %q, got %q", status, updated.Status)
	}
	if updated.NextService == nil || !updated.NextService.Equal(nextService) {
		t.Fatalf("expected next service date set, got %v", updated.NextService)
	}

	existed, err := storage.DeleteEquipmentItem(1, item.ID)
	if err != nil || !existed {
		t.Fatalf("delete equipment: existed=%v err=%v", existed, err)
	}
}

func testContacts(t *testing.T, newStore storeFactory) {
	storage, setNow := newStore(t)
	setNow(func() time.Time { return testNow })

	contact := models.Contact{UserID: 1, Name: "Valley Vets", Type: "vet", Phone: "555-0101"}
	if err := storage.CreateContact(&contact); err != nil {
		t.Fatalf("create contact: %v", err)
	}

	email := "office@valleyvets.example"
	updated, err := storage.PatchContact(1, contact.ID, ContactPatch{Email: &email})
	if err != nil {
		t.Fatalf("patch contact: %v", err)
	}
	if updated.Email != email || updated.Phone != "555-0101" {
		t.Fatalf("patch must merge, got %+v", updated)
	}

	contacts, err := storage.ListContacts(1)
	if err != nil || len(contacts) != 1 {
		t.Fatalf("list contacts: %v (%d)", err, len(contacts))
	}
}

func testRecurringTasks(t *testing.T, newStore storeFactory) {
	storage, setNow := newStore(t)
	setNow(func() time.Time { return testNow })

	completed := true
	weekly := models.Task{UserID: 1, Title: "Clean coop", DueDate: testNow, Priority: models.PriorityLow, Recurrence: models.RecurrenceWeekly}
	oneOff := models.Task{UserID: 1, Title: "Buy twine", DueDate: testNow, Priority: models.PriorityLow}
	if err := storage.CreateTask(&weekly); err != nil {
		t.Fatalf("create task: %v", err)
	}
	if err := storage.CreateTask(&oneOff); err != nil {
		t.Fatalf("create task: %v", err)
	}
	for _, id := range []uint{weekly.ID, oneOff.ID} {
		if _, err := storage.PatchTask(1, id, TaskPatch{Completed: &completed}); err != nil {
			t.Fatalf("complete task %d: %v", id, err)
		}
	}

	recurring, err := storage.ListCompletedRecurringTasks()
	if err != nil {
		t.Fatalf("list recurring: %v", err)
	}
	if len(recurring) != 1 || recurring[0].ID != weekly.ID {
		t.Fatalf("expected only the weekly task, got %+v", recurring)
	}

	nextDue := testNow.AddDate(0, 0, 7)
	if err := storage.RescheduleTask(1, weekly.ID, nextDue); err != nil {
		t.Fatalf("reschedule: %v", err)
	}

	rolled, found, err := storage.GetTask(1, weekly.ID)
	if err != nil || !found {
		t.Fatalf("get rolled task: found=%v err=%v", found, err)
	}
	if rolled.Completed {
		t.Fatal("expected task reopened after reschedule")
	}
	if rolled.Status != models.TaskStatusUpcoming {
		t.Fatalf("expected upcoming after roll, got %q", rolled.Status)
	}
}

func testWeatherPreference(t *testing.T, newStore storeFactory) {
	storage, setNow := newStore(t)
	setNow(func() time.Time { return testNow })

	preference, err := storage.GetWeatherPreference(1)
	if err != nil {
		t.Fatalf("get default preference: %v", err)
	}
	if preference.Units != models.UnitsMetric || preference.Location != "" {
		t.Fatalf("unexpected default preference: %+v", preference)
	}

	preference.Location = "Ballarat"
	preference.Units = models.UnitsImperial
	if err := storage.SaveWeatherPreference(&preference); err != nil {
		t.Fatalf("save preference: %v", err)
	}

	// Saving again must update in place, not create a second row.
	preference.Location = "Bendigo"
	if err := storage.SaveWeatherPreference(&preference); err != nil {
		t.Fatalf("resave preference: %v", err)
	}

	stored, err := storage.GetWeatherPreference(1)
	if err != nil {
		t.Fatalf("get preference: %v", err)
	}
	if stored.Location != "Bendigo" || stored.Units != models.UnitsImperial {
		t.Fatalf("unexpected stored preference: %+v", stored)
	}
}

func testUsers(t *testing.T, newStore storeFactory) {
	storage, setNow := newStore(t)
	setNow(func() time.Time { return testNow })

	user := models.User{Email: "farmer@example.com", PasswordHash: "hash", DisplayName: "Sam"}
	if err := storage.CreateUser(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected generated user id")
	}

	exists, err := storage.UserEmailExists("farmer@example.com")
	if err != nil || !exists {
		t.Fatalf("email exists: exists=%v err=%v", exists, err)
	}

	found, ok, err := storage.FindUserByEmail("farmer@example.com")
	if err != nil || !ok {
		t.Fatalf("find by email: ok=%v err=%v", ok, err)
	}
	if found.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, found.ID)
	}

	if err := storage.UpdateUserPassword(user.ID, "newhash"); err != nil {
		t.Fatalf("update password: %v", err)
	}
	found, _, _ = storage.FindUserByID(user.ID)
	if found.PasswordHash != "newhash" {
		t.Fatal("expected password hash updated")
	}

	if err := storage.UpdateUserPassword(999, "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent user, got %v", err)
	}
}
