package repositories

import (
	"context"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"shoresquad/config"
	"shoresquad/internal/models"
	"shoresquad/pkg/logger"
)

const (
	NEAName  = "nea"
	MockName = "mock"
)

type WeatherRepository interface {
	Name() string
	FetchForecast(ctx context.Context) (models.ForecastResponse, error)
}

// HTTPClient is the subset of *http.Client the remote repositories use.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Repositories pairs the remote forecast provider with the local fallback.
type Repositories struct {
	Primary  WeatherRepository
	Fallback WeatherRepository
}

// InitWeatherRepositories builds the providers listed in the config. The mock
// generator is always available as the fallback and also serves as primary
// when no remote provider is configured.
func InitWeatherRepositories(cfg *config.Config, l *logger.Logger, clock clockwork.Clock) Repositories {
	repos := Repositories{
		Fallback: NewMockRepository(clock, nil),
	}

	if api, ok := cfg.GetWeatherAPIByName(NEAName); ok {
		client := &http.Client{Timeout: time.Duration(api.Timeout) * time.Second}
		nea := NewNEARepository(api.BaseURL, api.APIKey, client, l)
		repos.Primary = NewRateLimitedRepository(nea, cfg.Weather.RateLimit, cfg.Weather.RateBurst)
	}

	for _, api := range cfg.GetWeatherAPIs() {
		if api.Name != NEAName && api.Name != MockName {
			l.Warning("unknown weather provider in config, skipping", map[string]any{"name": api.Name})
		}
	}

	if repos.Primary == nil {
		repos.Primary = repos.Fallback
	}

	return repos
}
