package repositories

import (
	"context"
	"errors"

	"golang.org/x/time/rate"

	"shoresquad/internal/models"
)

var ErrRateLimited = errors.New("forecast provider rate limit exceeded")

// RateLimitedRepository wraps a WeatherRepository with a token bucket. Calls
// over the limit fail with ErrRateLimited without waiting.
type RateLimitedRepository struct {
	repo    WeatherRepository
	limiter *rate.Limiter
}

// NewRateLimitedRepository allows rps requests per second with the given
// burst. rps can be fractional.
func NewRateLimitedRepository(repo WeatherRepository, rps float64, burst int) *RateLimitedRepository {
	return &RateLimitedRepository{
		repo:    repo,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedRepository) Name() string {
	return r.repo.Name()
}

func (r *RateLimitedRepository) FetchForecast(ctx context.Context) (models.ForecastResponse, error) {
	if !r.limiter.Allow() {
		return models.ForecastResponse{}, ErrRateLimited
	}

	return r.repo.FetchForecast(ctx)
}
