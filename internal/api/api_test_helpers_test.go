package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"farmstead/internal/store"
	"farmstead/internal/weather"
)

const testPassword = "StrongPass1"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return newTestAppWithWeather(t, nil)
}

func newTestAppWithWeather(t *testing.T, weatherClient *weather.Client) *fiber.App {
	t.Helper()

	storage := store.NewMemoryStore(time.UTC)
	handler := NewHandler(storage, "test-secret-key", time.UTC, weatherClient, false)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

// registerTestUser creates an account through the public endpoint and returns
// the session cookie value.
func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":%q,"display_name":"Test Farmer"}`, email, testPassword)
	response := performRequest(t, app, http.MethodPost, "/api/auth/register", body, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected status 201, got %d", response.StatusCode)
	}
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Value
		}
	}
	t.Fatalf("register: auth cookie missing in response")
	return ""
}

func performRequest(t *testing.T, app *fiber.App, method string, target string, body string, authCookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookieName+"="+authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

// dateOffset formats today plus the given day offset in the app's reference
// timezone, which tests pin to UTC.
func dateOffset(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}
