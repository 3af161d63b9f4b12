package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"farmstead/internal/models"
	"farmstead/internal/store"
	"farmstead/internal/weather"
)

const (
	authCookieName = "farmstead_auth"
	contextUserKey = "current_user"

	defaultAuthTokenTTL = 7 * 24 * time.Hour

	loginAttemptLimit  = 10
	loginAttemptWindow = 15 * time.Minute
)

// Handler carries the route layer's dependencies: the storage facade, the
// session signing key, the reference timezone and the weather provider.
type Handler struct {
	store        store.Store
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	weather      *weather.Client
	loginLimiter *attemptLimiter
}

func NewHandler(storage store.Store, secretKey string, location *time.Location, weatherClient *weather.Client, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		store:        storage,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		weather:      weatherClient,
		loginLimiter: newAttemptLimiter(),
	}
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
