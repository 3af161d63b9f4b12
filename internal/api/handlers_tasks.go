package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"farmstead/internal/models"
	"farmstead/internal/store"
)

func (handler *Handler) ListTasks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	tasks, err := handler.store.ListTasks(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch tasks")
	}

	if statusFilter := c.Query("status"); statusFilter != "" {
		filtered := make([]models.Task, 0, len(tasks))
		for _, task := range tasks {
			if task.Status == statusFilter {
				filtered = append(filtered, task)
			}
		}
		tasks = filtered
	}
	return c.JSON(tasks)
}

func (handler *Handler) GetTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	task, found, err := handler.store.GetTask(user.ID, taskID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch task")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "task not found")
	}
	return c.JSON(task)
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload taskCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	dueDate, err := handler.validateTaskCreate(&payload)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	task := models.Task{
		UserID:      user.ID,
		Title:       payload.Title,
		Description: payload.Description,
		DueDate:     dueDate,
		Priority:    payload.Priority,
		Completed:   payload.Completed,
		Assignee:    payload.Assignee,
		Recurrence:  payload.Recurrence,
	}
	if err := handler.store.CreateTask(&task); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create task")
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (handler *Handler) PatchTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload taskPatchPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	patch := store.TaskPatch{
		Title:       payload.Title,
		Description: payload.Description,
		Priority:    payload.Priority,
		Completed:   payload.Completed,
		Assignee:    payload.Assignee,
		Recurrence:  payload.Recurrence,
	}
	if payload.Title != nil && *payload.Title == "" {
		return apiError(c, fiber.StatusBadRequest, errTitleRequired.Error())
	}
	if payload.Priority != nil && !validPriority(*payload.Priority) {
		return apiError(c, fiber.StatusBadRequest, errInvalidPriority.Error())
	}
	if payload.Recurrence != nil && !validRecurrence(*payload.Recurrence) {
		return apiError(c, fiber.StatusBadRequest, errInvalidRecurrence.Error())
	}
	if payload.DueDate != nil {
		dueDate, err := parseDateParam(*payload.DueDate, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, errInvalidDate.Error())
		}
		patch.DueDate = &dueDate
	}

	task, err := handler.store.PatchTask(user.ID, taskID, patch)
	if errors.Is(err, store.ErrNotFound) {
		return apiError(c, fiber.StatusNotFound, "task not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update task")
	}
	return c.JSON(task)
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	existed, err := handler.store.DeleteTask(user.ID, taskID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete task")
	}
	if !existed {
		return apiError(c, fiber.StatusNotFound, "task not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
