package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"farmstead/internal/models"
	"farmstead/internal/store"
)

func (handler *Handler) ListContacts(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	contacts, err := handler.store.ListContacts(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch contacts")
	}
	return c.JSON(contacts)
}

func (handler *Handler) GetContact(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	contactID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	contact, found, err := handler.store.GetContact(user.ID, contactID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch contact")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "contact not found")
	}
	return c.JSON(contact)
}

func (handler *Handler) CreateContact(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload contactCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(payload.Name) == "" {
		return apiError(c, fiber.StatusBadRequest, errNameRequired.Error())
	}

	contact := models.Contact{
		UserID:  user.ID,
		Name:    payload.Name,
		Type:    payload.Type,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Address: payload.Address,
		Notes:   payload.Notes,
	}
	if err := handler.store.CreateContact(&contact); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create contact")
	}
	return c.Status(fiber.StatusCreated).JSON(contact)
}

func (handler *Handler) PatchContact(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	contactID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	var payload contactPatchPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.Name != nil && strings.TrimSpace(*payload.Name) == "" {
		return apiError(c, fiber.StatusBadRequest, errNameRequired.Error())
	}

	contact, err := handler.store.PatchContact(user.ID, contactID, store.ContactPatch{
		Name:    payload.Name,
		Type:    payload.Type,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Address: payload.Address,
		Notes:   payload.Notes,
	})
	if errors.Is(err, store.ErrNotFound) {
		return apiError(c, fiber.StatusNotFound, "contact not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update contact")
	}
	return c.JSON(contact)
}

func (handler *Handler) DeleteContact(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	contactID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	existed, err := handler.store.DeleteContact(user.ID, contactID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete contact")
	}
	if !existed {
		return apiError(c, fiber.StatusNotFound, "contact not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
