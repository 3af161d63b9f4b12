package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"farmstead/internal/models"
	"farmstead/internal/store"
)

func (handler *Handler) ListInventory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := handler.store.ListInventoryItems(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch inventory")
	}
	return c.JSON(items)
}

func (handler *Handler) ListLowStock(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := handler.store.ListLowStockItems(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch inventory")
	}
	return c.JSON(items)
}

func (handler *Handler) GetInventoryItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	item, found, err := handler.store.GetInventoryItem(user.ID, itemID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch item")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "item not found")
	}
	return c.JSON(item)
}

func (handler *Handler) CreateInventoryItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload inventoryCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validateInventoryCreate(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	item := models.InventoryItem{
		UserID:    user.ID,
		Name:      payload.Name,
		Category:  payload.Category,
		Quantity:  payload.Quantity,
		Unit:      payload.Unit,
		Threshold: payload.Threshold,
	}
	if err := handler.store.CreateInventoryItem(&item); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create item")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (handler *Handler) PatchInventoryItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload inventoryPatchPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := validateInventoryPatch(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	item, err := handler.store.PatchInventoryItem(user.ID, itemID, store.InventoryPatch{
		Name:      payload.Name,
		Category:  payload.Category,
		Quantity:  payload.Quantity,
		Unit:      payload.Unit,
		Threshold: payload.Threshold,
	})
	if errors.Is(err, store.ErrNotFound) {
		return apiError(c, fiber.StatusNotFound, "item not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update item")
	}
	return c.JSON(item)
}

func (handler *Handler) DeleteInventoryItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	existed, err := handler.store.DeleteInventoryItem(user.ID, itemID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete item")
	}
	if !existed {
		return apiError(c, fiber.StatusNotFound, "item not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
