package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/cleanpos/internal/domain"
	"github.com/Gunvolt24/cleanpos/internal/ports"
)

var _ ports.WeatherReader = (*WeatherService)(nil)

// WeatherService — текущая погода через TTL-кэш.
type WeatherService struct {
	provider     ports.WeatherProvider
	cache        ports.WeatherCache
	log          ports.Logger
	fetchTimeout time.Duration
}

// NewWeatherService — DI-конструктор.
func NewWeatherService(provider ports.WeatherProvider, cache ports.WeatherCache, log ports.Logger, fetchTimeout time.Duration) *WeatherService {
	return &WeatherService{provider: provider, cache: cache, log: log, fetchTimeout: fetchTimeout}
}

// Current — погода для локации; ключ кэша нормализуется (регистр, пробелы).
func (s *WeatherService) Current(ctx context.Context, location string) (*domain.Weather, error) {
	key := strings.ToLower(strings.TrimSpace(location))
	if key == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrInvalidInput)
	}

	w, err := s.cache.Get(ctx, key, func(fetchCtx context.Context) (domain.Weather, error) {
		return s.fetch(fetchCtx, key)
	})
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *WeatherService) fetch(ctx context.Context, key string) (domain.Weather, error) {
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}
	w, err := s.provider.CurrentWeather(ctx, key)
	if err == nil && w == nil {
		err = errors.New("empty response")
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Weather{}, err
		}
		s.log.Errorf(ctx, "weather provider failed location=%s err=%v", key, err)
		return domain.Weather{}, fmt.Errorf("%w: weather %s: %w", domain.ErrUpstream, key, err)
	}
	return *w, nil
}
