package api

import (
	"github.com/gofiber/fiber/v2"

	"farmstead/internal/services"
)

func (handler *Handler) ReportSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	tasks, err := handler.store.ListTasks(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch tasks")
	}
	items, err := handler.store.ListInventoryItems(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch inventory")
	}
	equipment, err := handler.store.ListEquipmentItems(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch equipment")
	}

	return c.JSON(services.BuildReportSummary(tasks, items, equipment))
}
