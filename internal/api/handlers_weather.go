package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"farmstead/internal/models"
	"farmstead/internal/weather"
)

func (handler *Handler) GetWeatherPreference(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	preference, err := handler.store.GetWeatherPreference(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch weather preference")
	}
	return c.JSON(preference)
}

func (handler *Handler) SaveWeatherPreference(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var payload weatherPreferencePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	units := payload.Units
	if units == "" {
		units = models.UnitsMetric
	}
	if !validUnits(units) {
		return apiError(c, fiber.StatusBadRequest, errInvalidUnits.Error())
	}

	preference := models.WeatherPreference{
		UserID:   user.ID,
		Location: strings.TrimSpace(payload.Location),
		Units:    units,
	}
	if err := handler.store.SaveWeatherPreference(&preference); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save weather preference")
	}
	return c.JSON(preference)
}

// CurrentWeather fetches live conditions for the caller's saved location.
// A user who never set a location gets a 400 telling them to set one first.
func (handler *Handler) CurrentWeather(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	preference, err := handler.store.GetWeatherPreference(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch weather preference")
	}
	if preference.Location == "" {
		return apiError(c, fiber.StatusBadRequest, "weather location is not set")
	}

	conditions, err := handler.weather.CurrentConditions(c.Context(), preference.Location, preference.Units)
	if errors.Is(err, weather.ErrLocationNotFound) {
		return apiError(c, fiber.StatusNotFound, "weather location not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "weather provider unavailable")
	}
	return c.JSON(conditions)
}
