package weather

import (
	"context"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"shoresquad/internal/models"
	"shoresquad/internal/repositories"
	"shoresquad/pkg/logger"
	"shoresquad/pkg/observe"
)

// SearchHistory records the locations visitors looked up.
type SearchHistory interface {
	AddSearchLocation(ctx context.Context, location string) error
	SearchHistory(ctx context.Context) ([]string, error)
}

// Result is the outcome of one forecast fetch. Err is set when the payload
// could not be obtained; Source names the repository that produced it.
type Result struct {
	Payload models.ForecastResponse
	Err     error
	Source  string
}

// WeatherService represents the weather service.
type WeatherService struct {
	repos   repositories.Repositories
	history SearchHistory
	clock   clockwork.Clock
	metrics *observe.Metrics
	l       *logger.Logger
}

// NewWeatherService dates undated forecast records with clock; nil means the
// real clock.
func NewWeatherService(repos repositories.Repositories, history SearchHistory, clock clockwork.Clock, metrics *observe.Metrics, l *logger.Logger) *WeatherService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &WeatherService{
		repos:   repos,
		history: history,
		clock:   clock,
		metrics: metrics,
		l:       l,
	}
}

// Fetch calls the primary repository once, without retries.
func (s *WeatherService) Fetch(ctx context.Context) Result {
	start := time.Now()
	payload, err := s.repos.Primary.FetchForecast(ctx)
	s.metrics.FetchDuration.Observe(time.Since(start).Seconds())

	return Result{
		Payload: payload,
		Err:     err,
		Source:  s.repos.Primary.Name(),
	}
}

// Resolve returns r unchanged when it succeeded and otherwise replaces it
// with the fallback repository's forecast.
func (s *WeatherService) Resolve(ctx context.Context, r Result) Result {
	if r.Err == nil {
		return r
	}

	s.l.Warning("forecast fetch failed, using fallback", map[string]any{
		"repo":     r.Source,
		"fallback": s.repos.Fallback.Name(),
		"err":      r.Err.Error(),
	})
	s.metrics.ForecastFallbacks.Inc()

	payload, err := s.repos.Fallback.FetchForecast(ctx)
	if err != nil {
		s.l.Error(err, map[string]any{"repo": s.repos.Fallback.Name()})
	}

	return Result{
		Payload: payload,
		Err:     err,
		Source:  s.repos.Fallback.Name(),
	}
}

// Forecast fetches, resolves and renders the forecast for location. The
// location is added to the search history once a forecast was rendered.
func (s *WeatherService) Forecast(ctx context.Context, location string) (models.ForecastView, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return models.ForecastView{}, ErrLocationRequired
	}

	s.l.Info("starting forecast fetch", map[string]any{"location": location})

	result := s.Resolve(ctx, s.Fetch(ctx))
	view := s.render(result, location)

	if view.Error == "" {
		s.remember(ctx, location)
	}

	return view, nil
}

// DefaultForecast renders the generated forecast shown when the page loads.
func (s *WeatherService) DefaultForecast(ctx context.Context, location string) models.ForecastView {
	payload, err := s.repos.Fallback.FetchForecast(ctx)
	return s.render(Result{Payload: payload, Err: err, Source: s.repos.Fallback.Name()}, location)
}

func (s *WeatherService) SearchHistory(ctx context.Context) ([]string, error) {
	return s.history.SearchHistory(ctx)
}

func (s *WeatherService) render(r Result, location string) models.ForecastView {
	view := Render(r.Payload, location, s.clock.Now())
	view.Source = r.Source

	outcome := "ok"
	switch view.Error {
	case MessageNoData:
		outcome = "no_data"
	case MessageMalformed:
		outcome = "malformed"
	}
	s.metrics.ForecastRequests.WithLabelValues(r.Source, outcome).Inc()

	if view.Error != "" {
		s.l.Warning("forecast not renderable", map[string]any{
			"location": location,
			"source":   r.Source,
			"message":  view.Error,
		})
	}

	return view
}

func (s *WeatherService) remember(ctx context.Context, location string) {
	if err := s.history.AddSearchLocation(ctx, location); err != nil {
		s.metrics.StorageErrors.Inc()
		s.l.Error(err, map[string]any{"location": location})
		return
	}
	s.metrics.SearchHistory.Inc()
}
