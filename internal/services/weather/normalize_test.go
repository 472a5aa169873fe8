package weather

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoresquad/internal/models"
)

// 10:00 on Saturday 18 Oct 2025 in Singapore.
var fixedNow = time.Date(2025, 10, 18, 2, 0, 0, 0, time.UTC)

func decode(t *testing.T, payload string) models.ForecastResponse {
	t.Helper()

	var resp models.ForecastResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	return resp
}

func TestNormalize_FullRecords(t *testing.T) {
	resp := decode(t, `{"items": [{"forecasts": [
		{"date": "2025-10-18", "forecast": "Sunny", "tempHigh": 28, "tempLow": 24, "humidity": 75, "windSpeed": 14},
		{"date": "2025-10-19", "forecast": "Thundery Showers", "tempHigh": 26, "tempLow": 22, "humidity": 88, "windSpeed": 20}
	]}]}`)

	days, err := Normalize(resp, fixedNow)
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, models.DayView{
		Date:            "2025-10-18",
		DayOfWeek:       "Sat",
		DateLabel:       "18 Oct",
		Condition:       "Sunny",
		Icon:            "☀️",
		TemperatureHigh: 28,
		TemperatureLow:  24,
		HumidityPercent: 75,
		WindSpeedKmh:    14,
	}, days[0])

	assert.Equal(t, "Sun", days[1].DayOfWeek)
	assert.Equal(t, "19 Oct", days[1].DateLabel)
	assert.Equal(t, "⛈️", days[1].Icon)
}

func TestNormalize_DefaultsAndSynthesizedDates(t *testing.T) {
	resp := decode(t, `{"items": [{"forecasts": [
		{"forecast": "Fair"},
		{"forecast": "Cloudy", "date": "not a date"},
		{"forecast": "Windy", "tempHigh": 0, "humidity": 0}
	]}]}`)

	days, err := Normalize(resp, fixedNow)
	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.Equal(t, "2025-10-18", days[0].Date)
	assert.Equal(t, "2025-10-19", days[1].Date)
	assert.Equal(t, "2025-10-20", days[2].Date)
	assert.Equal(t, "Mon", days[2].DayOfWeek)

	assert.Equal(t, float64(DefaultTempHigh), days[0].TemperatureHigh)
	assert.Equal(t, float64(DefaultTempLow), days[0].TemperatureLow)
	assert.Equal(t, float64(DefaultHumidity), days[0].HumidityPercent)
	assert.Equal(t, float64(DefaultWindSpeed), days[0].WindSpeedKmh)
	assert.Equal(t, DefaultIcon, days[0].Icon)

	// Explicit zeros are data, not absence.
	assert.Equal(t, 0.0, days[2].TemperatureHigh)
	assert.Equal(t, 0.0, days[2].HumidityPercent)
	assert.Equal(t, float64(DefaultTempLow), days[2].TemperatureLow)
}

func TestNormalize_EveryFieldPopulated(t *testing.T) {
	resp := decode(t, `{"items": [{"forecasts": [
		{"forecast": "Partly Cloudy"}, {"forecast": "Rain"}, {"forecast": "Haze"},
		{"forecast": "Sunny"}, {"forecast": "Cloudy"}, {"forecast": "Windy"}, {"forecast": "Mist"}
	]}]}`)

	days, err := Normalize(resp, fixedNow)
	require.NoError(t, err)
	require.Len(t, days, 7)

	for _, day := range days {
		assert.NotEmpty(t, day.Date)
		assert.NotEmpty(t, day.DayOfWeek)
		assert.NotEmpty(t, day.DateLabel)
		assert.NotEmpty(t, day.Condition)
		assert.NotEmpty(t, day.Icon)
		assert.NotZero(t, day.TemperatureHigh)
		assert.NotZero(t, day.TemperatureLow)
		assert.NotZero(t, day.HumidityPercent)
		assert.NotZero(t, day.WindSpeedKmh)
	}
}

func TestNormalize_RFC3339AndLateUTCDates(t *testing.T) {
	resp := decode(t, `{"items": [{"forecasts": [
		{"date": "2025-10-18T20:00:00Z", "forecast": "Sunny"}
	]}]}`)

	days, err := Normalize(resp, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-19", days[0].Date)

	// 17:00 UTC is already the next calendar day in Singapore.
	late := time.Date(2025, 10, 18, 17, 0, 0, 0, time.UTC)
	days, err = Normalize(decode(t, `{"items": [{"forecasts": [{"forecast": "Sunny"}]}]}`), late)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-19", days[0].Date)
}

func TestNormalize_NoData(t *testing.T) {
	for name, payload := range map[string]string{
		"absent items":     `{}`,
		"empty items":      `{"items": []}`,
		"absent forecasts": `{"items": [{}]}`,
		"empty forecasts":  `{"items": [{"forecasts": []}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			days, err := Normalize(decode(t, payload), fixedNow)
			assert.ErrorIs(t, err, ErrNoData)
			assert.Nil(t, days)
		})
	}
}

func TestNormalize_Malformed(t *testing.T) {
	resp := decode(t, `{"items": [{"forecasts": [{"forecast": "Sunny"}, {"date": "2025-10-19"}]}]}`)

	days, err := Normalize(resp, fixedNow)
	assert.ErrorIs(t, err, ErrMalformedPayload)
	assert.Nil(t, days)
}

func TestRender(t *testing.T) {
	view := Render(decode(t, `{"items": [{"forecasts": [{"forecast": "Sunny"}]}]}`), "Pasir Ris", fixedNow)
	assert.Equal(t, "Pasir Ris", view.Location)
	assert.Equal(t, "7-Day Weather Forecast for Pasir Ris", view.Title)
	assert.Equal(t, Subtitle, view.Subtitle)
	assert.Empty(t, view.Error)
	assert.Len(t, view.Days, 1)

	view = Render(models.ForecastResponse{}, "Changi", fixedNow)
	assert.Equal(t, MessageNoData, view.Error)
	assert.NotNil(t, view.Days)
	assert.Empty(t, view.Days)

	view = Render(decode(t, `{"items": [{"forecasts": [{}]}]}`), "Changi", fixedNow)
	assert.Equal(t, MessageMalformed, view.Error)
}

func TestDisplayMessage(t *testing.T) {
	assert.Equal(t, "", DisplayMessage(nil))
	assert.Equal(t, MessageNoData, DisplayMessage(ErrNoData))
	assert.Equal(t, MessageMalformed, DisplayMessage(ErrMalformedPayload))
	assert.Equal(t, MessageLocationRequired, DisplayMessage(ErrLocationRequired))
	assert.Equal(t, MessageMalformed, DisplayMessage(errors.New("anything else")))
}
