package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	tasks := api.Group("/tasks", handler.AuthRequired)
	tasks.Get("", handler.ListTasks)
	tasks.Post("", handler.CreateTask)
	tasks.Get("/:id", handler.GetTask)
	tasks.Patch("/:id", handler.PatchTask)
	tasks.Delete("/:id", handler.DeleteTask)

	inventory := api.Group("/inventory", handler.AuthRequired)
	inventory.Get("", handler.ListInventory)
	inventory.Get("/low", handler.ListLowStock)
	inventory.Post("", handler.CreateInventoryItem)
	inventory.Get("/:id", handler.GetInventoryItem)
	inventory.Patch("/:id", handler.PatchInventoryItem)
	inventory.Delete("/:id", handler.DeleteInventoryItem)

	equipment := api.Group("/equipment", handler.AuthRequired)
	equipment.Get("", handler.ListEquipment)
	equipment.Post("", handler.CreateEquipmentItem)
	equipment.Get("/:id", handler.GetEquipmentItem)
	equipment.Patch("/:id", handler.PatchEquipmentItem)
	equipment.Delete("/:id", handler.DeleteEquipmentItem)

	contacts := api.Group("/contacts", handler.AuthRequired)
	contacts.Get("", handler.ListContacts)
	contacts.Post("", handler.CreateContact)
	contacts.Get("/:id", handler.GetContact)
	contacts.Patch("/:id", handler.PatchContact)
	contacts.Delete("/:id", handler.DeleteContact)

	weather := api.Group("/weather", handler.AuthRequired)
	weather.Get("", handler.CurrentWeather)
	weather.Get("/preference", handler.GetWeatherPreference)
	weather.Put("/preference", handler.SaveWeatherPreference)

	reports := api.Group("/reports", handler.AuthRequired)
	reports.Get("/summary", handler.ReportSummary)
}
