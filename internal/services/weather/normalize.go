package weather

import (
	"errors"
	"fmt"
	"time"

	"shoresquad/internal/models"
)

var (
	ErrNoData           = errors.New("no forecast data available")
	ErrMalformedPayload = errors.New("malformed forecast payload")
	ErrLocationRequired = errors.New("location is required")
)

// Messages shown to visitors in place of the forecast grid.
const (
	MessageNoData           = "No forecast data available"
	MessageMalformed        = "Error processing weather data"
	MessageLocationRequired = "Please enter a beach location"
)

const Subtitle = "Singapore - National Environment Agency (NEA)"

// Fallbacks for numeric fields absent from a record.
const (
	DefaultTempHigh  = 27
	DefaultTempLow   = 22
	DefaultHumidity  = 70
	DefaultWindSpeed = 12
)

const (
	dateLayout      = "2006-01-02"
	weekdayLayout   = "Mon"
	dateLabelLayout = "2 Jan"
)

// DisplayMessage maps a forecast error to the text shown to visitors.
func DisplayMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoData):
		return MessageNoData
	case errors.Is(err, ErrLocationRequired):
		return MessageLocationRequired
	default:
		return MessageMalformed
	}
}

// Normalize turns a forecast envelope into one DayView per daily record, in
// input order. Records without a date are dated now+index days.
func Normalize(resp models.ForecastResponse, now time.Time) ([]models.DayView, error) {
	records := resp.Days()
	if len(records) == 0 {
		return nil, ErrNoData
	}

	today := startOfDay(now)
	days := make([]models.DayView, 0, len(records))

	for i, rec := range records {
		if rec.Forecast == nil {
			return nil, fmt.Errorf("%w: record %d has no forecast text", ErrMalformedPayload, i)
		}

		date := resolveDate(rec.Date, today, i)
		condition := *rec.Forecast

		days = append(days, models.DayView{
			Date:            date.Format(dateLayout),
			DayOfWeek:       date.Format(weekdayLayout),
			DateLabel:       date.Format(dateLabelLayout),
			Condition:       condition,
			Icon:            IconFor(condition),
			TemperatureHigh: valueOr(rec.TempHigh, DefaultTempHigh),
			TemperatureLow:  valueOr(rec.TempLow, DefaultTempLow),
			HumidityPercent: valueOr(rec.Humidity, DefaultHumidity),
			WindSpeedKmh:    valueOr(rec.WindSpeed, DefaultWindSpeed),
		})
	}

	return days, nil
}

// Render builds the forecast view for a location. Normalization failures end
// up in the view's Error message rather than being returned.
func Render(resp models.ForecastResponse, location string, now time.Time) models.ForecastView {
	view := models.ForecastView{
		Location: location,
		Title:    fmt.Sprintf("7-Day Weather Forecast for %s", location),
		Subtitle: Subtitle,
		Days:     []models.DayView{},
	}

	days, err := Normalize(resp, now)
	if err != nil {
		view.Error = DisplayMessage(err)
		return view
	}

	view.Days = days
	return view
}

func resolveDate(raw *string, today time.Time, index int) time.Time {
	if raw != nil {
		if d, err := time.ParseInLocation(dateLayout, *raw, models.Singapore); err == nil {
			return d
		}
		if d, err := time.Parse(time.RFC3339, *raw); err == nil {
			return d.In(models.Singapore)
		}
	}
	return today.AddDate(0, 0, index)
}

func startOfDay(t time.Time) time.Time {
	t = t.In(models.Singapore)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, models.Singapore)
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
