package models

// DayView is one fully resolved forecast card.
type DayView struct {
	Date            string  `json:"date" example:"2025-01-15"`
	DayOfWeek       string  `json:"dayOfWeek" example:"Wed"`
	DateLabel       string  `json:"dateLabel" example:"15 Jan"`
	Condition       string  `json:"condition" example:"Thundery Showers"`
	Icon            string  `json:"icon" example:"⛈️"`
	TemperatureHigh float64 `json:"temperatureHigh" example:"27"`
	TemperatureLow  float64 `json:"temperatureLow" example:"22"`
	HumidityPercent float64 `json:"humidityPercent" example:"70"`
	WindSpeedKmh    float64 `json:"windSpeedKmh" example:"12"`
}

// ForecastView is a rendered forecast for one location. Error holds the
// display message when the payload had no usable data; Days is then empty.
type ForecastView struct {
	Location string    `json:"location" example:"Pasir Ris"`
	Title    string    `json:"title" example:"7-Day Weather Forecast for Pasir Ris"`
	Subtitle string    `json:"subtitle" example:"Singapore - National Environment Agency (NEA)"`
	Source   string    `json:"source" example:"nea"`
	Days     []DayView `json:"days"`
	Error    string    `json:"error,omitempty" example:"No forecast data available"`
}
