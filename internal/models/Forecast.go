package models

import "encoding/json"

// ForecastResponse is the vendor envelope. Only Items[0].Forecasts is read.
type ForecastResponse struct {
	Items []ForecastItem `json:"items"`
}

type ForecastItem struct {
	Forecasts []DailyForecast `json:"forecasts"`
}

// Days returns the daily records of the first item, or nil when the envelope
// carries none.
func (r ForecastResponse) Days() []DailyForecast {
	if len(r.Items) == 0 {
		return nil
	}
	return r.Items[0].Forecasts
}

// DailyForecast is one day of a forecast. Nil fields were absent in the payload.
type DailyForecast struct {
	Date      *string  `json:"date,omitempty" example:"2025-01-15"`
	Forecast  *string  `json:"forecast,omitempty" example:"Thundery Showers"`
	TempHigh  *float64 `json:"tempHigh,omitempty" example:"28"`
	TempLow   *float64 `json:"tempLow,omitempty" example:"24"`
	Humidity  *float64 `json:"humidity,omitempty" example:"80"`
	WindSpeed *float64 `json:"windSpeed,omitempty" example:"15"`
}

type valueRange struct {
	Low  *float64 `json:"low"`
	High *float64 `json:"high"`
}

// UnmarshalJSON accepts both the flat record and the NEA record, where
// temperature, relative_humidity and wind.speed are low/high ranges.
// Flat fields take precedence; ranges contribute their upper bound.
func (d *DailyForecast) UnmarshalJSON(data []byte) error {
	var raw struct {
		Date      *string  `json:"date"`
		Forecast  *string  `json:"forecast"`
		TempHigh  *float64 `json:"tempHigh"`
		TempLow   *float64 `json:"tempLow"`
		Humidity  *float64 `json:"humidity"`
		WindSpeed *float64 `json:"windSpeed"`

		Temperature      *valueRange `json:"temperature"`
		RelativeHumidity *valueRange `json:"relative_humidity"`
		Wind             *struct {
			Speed     *valueRange `json:"speed"`
			Direction string      `json:"direction"`
		} `json:"wind"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = DailyForecast{
		Date:      raw.Date,
		Forecast:  raw.Forecast,
		TempHigh:  raw.TempHigh,
		TempLow:   raw.TempLow,
		Humidity:  raw.Humidity,
		WindSpeed: raw.WindSpeed,
	}

	if raw.Temperature != nil {
		d.TempHigh = firstSet(d.TempHigh, raw.Temperature.High)
		d.TempLow = firstSet(d.TempLow, raw.Temperature.Low)
	}
	if raw.RelativeHumidity != nil {
		d.Humidity = firstSet(d.Humidity, raw.RelativeHumidity.High)
	}
	if raw.Wind != nil && raw.Wind.Speed != nil {
		d.WindSpeed = firstSet(d.WindSpeed, raw.Wind.Speed.High)
	}

	return nil
}

func firstSet(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
