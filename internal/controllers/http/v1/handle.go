package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"shoresquad/internal/services/weather"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Please enter a beach location"`
}

// SearchHistoryResponse lists recent locations, most recent first
type SearchHistoryResponse struct {
	Locations []string `json:"locations" example:"Pasir Ris,Changi"`
}

// GetWeatherForecast godoc
// @Summary Get weather forecast
// @Description Renders the NEA forecast for a beach location. When the NEA API is unavailable a generated 7-day forecast is returned instead (source "mock"). An empty or malformed payload is reported in the error field with status 200.
// @Tags Weather
// @Produce json
// @Param location query string true "Beach location label" example(Pasir Ris)
// @Success 200 {object} models.ForecastView "Rendered forecast"
// @Failure 400 {object} ErrorResponse "Missing location"
// @Router /api/weather [get]
//
//	curl -X GET "http://localhost:8080/api/weather?location=Pasir%20Ris"
func (r *routes) handleWeatherCall(c *fiber.Ctx) error {
	location := c.Query("location")

	view, err := r.weather.Forecast(c.UserContext(), location)
	if errors.Is(err, weather.ErrLocationRequired) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: weather.MessageLocationRequired,
		})
	}
	if err != nil {
		r.l.Error(err, map[string]any{"location": location})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: weather.MessageMalformed,
		})
	}

	return c.JSON(view)
}

// GetDefaultForecast godoc
// @Summary Get default forecast
// @Description Generated forecast for the default location, as shown on page load.
// @Tags Weather
// @Produce json
// @Success 200 {object} models.ForecastView
// @Router /api/weather/default [get]
func (r *routes) handleDefaultWeather(c *fiber.Ctx) error {
	return c.JSON(r.weather.DefaultForecast(c.UserContext(), r.defaultLocation))
}

// GetSearchHistory godoc
// @Summary Get search history
// @Tags Weather
// @Produce json
// @Success 200 {object} SearchHistoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/search-history [get]
func (r *routes) handleSearchHistory(c *fiber.Ctx) error {
	history, err := r.weather.SearchHistory(c.UserContext())
	if err != nil {
		r.l.Error(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to read search history",
		})
	}

	if history == nil {
		history = []string{}
	}

	return c.JSON(SearchHistoryResponse{Locations: history})
}
