package ports

import (
	"context"

	"github.com/Gunvolt24/cleanpos/internal/domain"
)

// WeatherProvider — внешний погодный API.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, location string) (*domain.Weather, error)
}
