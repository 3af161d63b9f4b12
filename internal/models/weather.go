package models

const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

// WeatherPreference holds the single per-user location and unit choice used
// when querying the external weather provider.
type WeatherPreference struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	UserID   uint   `gorm:"not null;uniqueIndex" json:"-"`
	Location string `json:"location"`
	Units    string `gorm:"not null;default:metric" json:"units"`
}

// DefaultWeatherPreference is returned when a user has never saved one.
func DefaultWeatherPreference(userID uint) WeatherPreference {
	return WeatherPreference{UserID: userID, Units: UnitsMetric}
}
