package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmstead/internal/models"
)

func newProviderStub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") == "Nowhere" {
			w.Write([]byte(`{"results":[]}`))
			return
		}
		w.Write([]byte(`{"results":[{"name":"Ballarat","latitude":-37.56,"longitude":143.85,"country":"Australia"}]}`))
	})
	mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("current_weather") != "true" {
			http.Error(w, "missing current_weather", http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("temperature_unit") == "fahrenheit" {
			w.Write([]byte(`{"current_weather":{"temperature":55.4,"windspeed":8.1,"weathercode":2,"time":"2025-06-15T12:00"}}`))
			return
		}
		w.Write([]byte(`{"current_weather":{"temperature":13.0,"windspeed":13.1,"weathercode":2,"time":"2025-06-15T12:00"}}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestCurrentConditionsMetric(t *testing.T) {
	t.Parallel()

	server := newProviderStub(t)
	client := NewClient(server.URL, server.URL)

	conditions, err := client.CurrentConditions(context.Background(), "Ballarat", models.UnitsMetric)
	if err != nil {
		t.Fatalf("current conditions: %v", err)
	}
	if conditions.Location != "Ballarat" || conditions.Country != "Australia" {
		t.Fatalf("unexpected place: %+v", conditions)
	}
	if conditions.Temperature != 13.0 || conditions.Units != models.UnitsMetric {
		t.Fatalf("unexpected metric conditions: %+v", conditions)
	}
}

func TestCurrentConditionsImperialUnits(t *testing.T) {
	t.Parallel()

	server := newProviderStub(t)
	client := NewClient(server.URL, server.URL)

	conditions, err := client.CurrentConditions(context.Background(), "Ballarat", models.UnitsImperial)
	if err != nil {
		t.Fatalf("current conditions: %v", err)
	}
	if conditions.Temperature != 55.4 {
		t.Fatalf("expected fahrenheit reading, got %v", conditions.Temperature)
	}
}

func TestCurrentConditionsUnknownLocation(t *testing.T) {
	t.Parallel()

	server := newProviderStub(t)
	client := NewClient(server.URL, server.URL)

	_, err := client.CurrentConditions(context.Background(), "Nowhere", models.UnitsMetric)
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestCurrentConditionsProviderFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, server.URL)
	if _, err := client.CurrentConditions(context.Background(), "Ballarat", models.UnitsMetric); err == nil {
		t.Fatal("expected error from failing provider")
	}
}
