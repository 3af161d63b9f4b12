package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"farmstead/internal/models"
	"farmstead/internal/store"
)

func (handler *Handler) ListEquipment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := handler.store.ListEquipmentItems(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch equipment")
	}
	return c.JSON(items)
}

func (handler *Handler) GetEquipmentItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	item, found, err := handler.store.GetEquipmentItem(user.ID, itemID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch equipment")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "equipment not found")
	}
	return c.JSON(item)
}

func (handler *Handler) CreateEquipmentItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload equipmentCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(payload.Name) == "" {
		return apiError(c, fiber.StatusBadRequest, errNameRequired.Error())
	}
	if payload.Status == "" {
		payload.Status = models.EquipmentStatusAvailable
	}
	if !validEquipmentStatus(payload.Status) {
		return apiError(c, fiber.StatusBadRequest, errInvalidStatus.Error())
	}

	item := models.EquipmentItem{
		UserID:   user.ID,
		Name:     payload.Name,
		Status:   payload.Status,
		Assignee: payload.Assignee,
	}
	if payload.LastUsed != "" {
		lastUsed, err := parseDateParam(payload.LastUsed, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, errInvalidDate.Error())
		}
		item.LastUsed = &lastUsed
	}
	if payload.NextService != "" {
		nextService, err := parseDateParam(payload.NextService, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, errInvalidDate.Error())
		}
		item.NextService = &nextService
	}

	if err := handler.store.CreateEquipmentItem(&item); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create equipment")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (handler *Handler) PatchEquipmentItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload equipmentPatchPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	patch := store.EquipmentPatch{
		Name:     payload.Name,
		Status:   payload.Status,
		Assignee: payload.Assignee,
	}
	if payload.Name != nil && strings.TrimSpace(*payload.Name) == "" {
		return apiError(c, fiber.StatusBadRequest, errNameRequired.Error())
	}
	if payload.Status != nil && !validEquipmentStatus(*payload.Status) {
		return apiError(c, fiber.StatusBadRequest, errInvalidStatus.Error())
	}
	if patch.LastUsed, err = parseOptionalDate(payload.LastUsed, handler.location); err != nil {
		return apiError(c, fiber.StatusBadRequest, errInvalidDate.Error())
	}
	if patch.NextService, err = parseOptionalDate(payload.NextService, handler.location); err != nil {
		return apiError(c, fiber.StatusBadRequest, errInvalidDate.Error())
	}

	item, err := handler.store.PatchEquipmentItem(user.ID, itemID, patch)
	if errors.Is(err, store.ErrNotFound) {
		return apiError(c, fiber.StatusNotFound, "equipment not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update equipment")
	}
	return c.JSON(item)
}

func (handler *Handler) DeleteEquipmentItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	existed, err := handler.store.DeleteEquipmentItem(user.ID, itemID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete equipment")
	}
	if !existed {
		return apiError(c, fiber.StatusNotFound, "equipment not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseOptionalDate(raw *string, location *time.Location) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := parseDateParam(*raw, location)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
