package domain

import "time"

// Weather — текущая погода для локации (показывается на экране планирования доставки).
type Weather struct {
	Location     string    `json:"location"`
	TemperatureC float64   `json:"temperature_c"`
	FeelsLikeC   float64   `json:"feels_like_c"`
	Humidity     int       `json:"humidity"`
	WindSpeed    float64   `json:"wind_speed"`
	Conditions   string    `json:"conditions"`
	Description  string    `json:"description"`
	FetchedAt    time.Time `json:"fetched_at"`
}
