// Пакет weather — клиент погодного API в формате OpenWeather (/data/2.5/weather).
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Gunvolt24/cleanpos/internal/domain"
	"github.com/Gunvolt24/cleanpos/internal/ports"
)

var (
	_ ports.WeatherProvider = (*Client)(nil)
	_ ports.WeatherProvider = Unconfigured{}
)

const (
	DefaultBaseURL = "https://api.openweathermap.org"
	defaultTimeout = 5 * time.Second
	maxBodySize    = 1 << 20
)

// Client — реализация ports.WeatherProvider.
type Client struct {
	http    *http.Client
	baseURL *url.URL
	apiKey  string
	now     func() time.Time
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithBaseURL(raw string) Option {
	return func(c *Client) {
		if u, err := url.Parse(raw); err == nil && raw != "" {
			c.baseURL = u
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New — клиент с таймаутом и трассировкой исходящих запросов (otelhttp).
func New(apiKey string, timeout time.Duration, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("weather: api key required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	u, _ := url.Parse(DefaultBaseURL)
	c := &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: u,
		apiKey:  apiKey,
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// apiResponse — нужные поля ответа /data/2.5/weather (units=metric).
type apiResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// CurrentWeather — текущая погода по названию населённого пункта.
// 404 апстрима —> domain.ErrNotFound, 401 —> domain.ErrUnauthorized.
func (c *Client) CurrentWeather(ctx context.Context, location string) (*domain.Weather, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("%w: location required", domain.ErrInvalidInput)
	}

	u := *c.baseURL
	u.Path = path.Join(u.Path, "/data/2.5/weather")
	q := u.Query()
	q.Set("q", location)
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: location %q", domain.ErrNotFound, location)
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: weather api key rejected", domain.ErrUnauthorized)
	default:
		return nil, fmt.Errorf("weather api status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	w := &domain.Weather{
		Location:     body.Name,
		TemperatureC: body.Main.Temp,
		FeelsLikeC:   body.Main.FeelsLike,
		Humidity:     body.Main.Humidity,
		WindSpeed:    body.Wind.Speed,
		FetchedAt:    c.now().UTC(),
	}
	if w.Location == "" {
		w.Location = location
	}
	if len(body.Weather) > 0 {
		w.Conditions = body.Weather[0].Main
		w.Description = body.Weather[0].Description
	}
	return w, nil
}

// Unconfigured — провайдер на случай отсутствующего ключа API: каждый вызов —> domain.ErrUnauthorized.
type Unconfigured struct{}

func (Unconfigured) CurrentWeather(context.Context, string) (*domain.Weather, error) {
	return nil, fmt.Errorf("%w: weather api key not configured", domain.ErrUnauthorized)
}
