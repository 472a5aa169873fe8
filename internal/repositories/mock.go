package repositories

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"shoresquad/internal/models"
)

// MockForecastDays is the length of every generated forecast.
const MockForecastDays = 7

// Humidity is drawn from [70, 89] and wind speed from [10, 21].
const (
	mockHumidityBase = 70
	mockHumiditySpan = 20
	mockWindBase     = 10
	mockWindSpan     = 12
)

type mockCondition struct {
	text     string
	tempHigh float64
	tempLow  float64
}

var mockConditions = []mockCondition{
	{text: "Sunny", tempHigh: 28, tempLow: 24},
	{text: "Partly Cloudy", tempHigh: 27, tempLow: 23},
	{text: "Thundery Showers", tempHigh: 26, tempLow: 22},
	{text: "Cloudy", tempHigh: 25, tempLow: 21},
	{text: "Sunny", tempHigh: 28, tempLow: 24},
	{text: "Partly Cloudy", tempHigh: 27, tempLow: 23},
	{text: "Thundery Showers", tempHigh: 26, tempLow: 22},
}

// MockRepository generates a realistic 7-day forecast starting today. It is
// the offline fallback for the remote provider and never fails.
type MockRepository struct {
	clock clockwork.Clock

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMockRepository uses the real clock and a randomly seeded source when
// either argument is nil.
func NewMockRepository(clock clockwork.Clock, rnd *rand.Rand) *MockRepository {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &MockRepository{
		clock: clock,
		rnd:   rnd,
	}
}

func (m *MockRepository) Name() string {
	return MockName
}

func (m *MockRepository) FetchForecast(_ context.Context) (models.ForecastResponse, error) {
	now := m.clock.Now().In(models.Singapore)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, models.Singapore)

	m.mu.Lock()
	defer m.mu.Unlock()

	days := make([]models.DailyForecast, 0, MockForecastDays)
	for i := 0; i < MockForecastDays; i++ {
		condition := mockConditions[i%len(mockConditions)]
		date := today.AddDate(0, 0, i).Format("2006-01-02")

		days = append(days, models.DailyForecast{
			Date:      &date,
			Forecast:  &condition.text,
			TempHigh:  &condition.tempHigh,
			TempLow:   &condition.tempLow,
			Humidity:  float64Ptr(float64(mockHumidityBase + m.rnd.IntN(mockHumiditySpan))),
			WindSpeed: float64Ptr(float64(mockWindBase + m.rnd.IntN(mockWindSpan))),
		})
	}

	return models.ForecastResponse{
		Items: []models.ForecastItem{{Forecasts: days}},
	}, nil
}

func float64Ptr(v float64) *float64 {
	return &v
}
