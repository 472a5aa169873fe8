package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyForecast_UnmarshalNEA(t *testing.T) {
	payload := `{
		"items": [{
			"update_timestamp": "2025-01-15T05:49:00+08:00",
			"forecasts": [{
				"temperature": {"low": 24, "high": 31},
				"date": "2025-01-16",
				"forecast": "Afternoon thundery showers",
				"relative_humidity": {"low": 65, "high": 95},
				"wind": {"speed": {"low": 10, "high": 20}, "direction": "NNE"},
				"timestamp": "2025-01-16T00:00:00+08:00"
			}]
		}]
	}`

	var resp ForecastResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))

	days := resp.Days()
	require.Len(t, days, 1)
	day := days[0]
	require.NotNil(t, day.Date)
	assert.Equal(t, "2025-01-16", *day.Date)
	assert.Equal(t, "Afternoon thundery showers", *day.Forecast)
	assert.Equal(t, 31.0, *day.TempHigh)
	assert.Equal(t, 24.0, *day.TempLow)
	assert.Equal(t, 95.0, *day.Humidity)
	assert.Equal(t, 20.0, *day.WindSpeed)
}

func TestDailyForecast_UnmarshalFlatWinsAndAbsentStaysNil(t *testing.T) {
	payload := `{"forecast": "Sunny", "tempHigh": 0, "temperature": {"low": 24, "high": 31}}`

	var day DailyForecast
	require.NoError(t, json.Unmarshal([]byte(payload), &day))

	require.NotNil(t, day.TempHigh)
	assert.Equal(t, 0.0, *day.TempHigh)
	assert.Equal(t, 24.0, *day.TempLow)
	assert.Nil(t, day.Date)
	assert.Nil(t, day.Humidity)
	assert.Nil(t, day.WindSpeed)
}

func TestForecastResponse_Days(t *testing.T) {
	for name, payload := range map[string]string{
		"no items key":  `{}`,
		"empty items":   `{"items": []}`,
		"no forecasts":  `{"items": [{}]}`,
		"empty records": `{"items": [{"forecasts": []}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			var resp ForecastResponse
			require.NoError(t, json.Unmarshal([]byte(payload), &resp))
			assert.Empty(t, resp.Days())
		})
	}
}
