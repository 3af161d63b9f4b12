// Package weather queries an Open-Meteo style provider for current
// conditions using the caller's stored location and unit preference.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"farmstead/internal/models"
)

var ErrLocationNotFound = errors.New("weather location not found")

// Conditions is the provider-agnostic shape handed back to the route layer.
type Conditions struct {
	Location    string  `json:"location"`
	Country     string  `json:"country,omitempty"`
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"wind_speed"`
	WeatherCode int     `json:"weather_code"`
	Units       string  `json:"units"`
	ObservedAt  string  `json:"observed_at"`
}

type Client struct {
	httpClient  *http.Client
	geocodeURL  string
	forecastURL string
}

// NewClient builds a provider client. Both base URLs are configurable so
// tests can point at a local server.
func NewClient(geocodeURL string, forecastURL string) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: 8 * time.Second},
		geocodeURL:  geocodeURL,
		forecastURL: forecastURL,
	}
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
	} `json:"results"`
}

type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
		Time        string  `json:"time"`
	} `json:"current_weather"`
}

// CurrentConditions resolves the location name and fetches the current
// weather in the preferred units. No retries: a failed provider call
// propagates straight to the caller.
func (client *Client) CurrentConditions(ctx context.Context, location string, units string) (Conditions, error) {
	place, err := client.geocode(ctx, location)
	if err != nil {
		return Conditions{}, err
	}

	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%.4f", place.Latitude))
	query.Set("longitude", fmt.Sprintf("%.4f", place.Longitude))
	query.Set("current_weather", "true")
	if units == models.UnitsImperial {
		query.Set("temperature_unit", "fahrenheit")
		query.Set("windspeed_unit", "mph")
	}

	var forecast forecastResponse
	if err := client.getJSON(ctx, client.forecastURL+"/v1/forecast?"+query.Encode(), &forecast); err != nil {
		return Conditions{}, fmt.Errorf("fetch forecast: %w", err)
	}

	return Conditions{
		Location:    place.Name,
		Country:     place.Country,
		Temperature: forecast.CurrentWeather.Temperature,
		WindSpeed:   forecast.CurrentWeather.WindSpeed,
		WeatherCode: forecast.CurrentWeather.WeatherCode,
		Units:       units,
		ObservedAt:  forecast.CurrentWeather.Time,
	}, nil
}

type geocodedPlace struct {
	Name      string
	Latitude  float64
	Longitude float64
	Country   string
}

func (client *Client) geocode(ctx context.Context, location string) (geocodedPlace, error) {
	query := url.Values{}
	query.Set("name", location)
	query.Set("count", "1")

	var decoded geocodeResponse
	if err := client.getJSON(ctx, client.geocodeURL+"/v1/search?"+query.Encode(), &decoded); err != nil {
		return geocodedPlace{}, fmt.Errorf("geocode %q: %w", location, err)
	}
	if len(decoded.Results) == 0 {
		return geocodedPlace{}, ErrLocationNotFound
	}

	result := decoded.Results[0]
	return geocodedPlace{
		Name:      result.Name,
		Latitude:  result.Latitude,
		Longitude: result.Longitude,
		Country:   result.Country,
	}, nil
}

func (client *Client) getJSON(ctx context.Context, rawURL string, target any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", response.StatusCode)
	}
	return json.NewDecoder(response.Body).Decode(target)
}
