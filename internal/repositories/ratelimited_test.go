package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoresquad/internal/models"
)

type countingRepository struct {
	calls int
}

func (c *countingRepository) Name() string { return "counting" }

func (c *countingRepository) FetchForecast(context.Context) (models.ForecastResponse, error) {
	c.calls++
	return models.ForecastResponse{}, nil
}

func TestRateLimitedRepository_RejectsOverBurst(t *testing.T) {
	inner := &countingRepository{}
	// One token per hour: only the burst is available during the test.
	repo := NewRateLimitedRepository(inner, 1.0/3600, 2)

	assert.Equal(t, "counting", repo.Name())

	_, err := repo.FetchForecast(context.Background())
	require.NoError(t, err)
	_, err = repo.FetchForecast(context.Background())
	require.NoError(t, err)

	_, err = repo.FetchForecast(context.Background())
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 2, inner.calls)
}
