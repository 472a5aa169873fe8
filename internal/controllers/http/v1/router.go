package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "shoresquad/docs"
	"shoresquad/internal/services/community"
	"shoresquad/internal/services/weather"
	"shoresquad/pkg/logger"
)

type routes struct {
	weather         *weather.WeatherService
	community       *community.Service
	defaultLocation string
	l               *logger.Logger
}

// Services are the domain services behind the HTTP surface.
type Services struct {
	Weather   *weather.WeatherService
	Community *community.Service
}

func NewRouter(
	app *fiber.App,
	services Services,
	gatherer prometheus.Gatherer,
	defaultLocation string,
	l *logger.Logger,
) {
	r := &routes{
		weather:         services.Weather,
		community:       services.Community,
		defaultLocation: defaultLocation,
		l:               l,
	}

	app.Get("/swagger/*", swagger.New(swagger.Config{
		DeepLinking: true,
	}))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	app.Get("/", r.handleIndex)

	api := app.Group("/api")

	api.Get("/weather", r.handleWeatherCall)
	api.Get("/weather/default", r.handleDefaultWeather)
	api.Get("/search-history", r.handleSearchHistory)

	api.Get("/events", r.handleListEvents)
	api.Post("/events/:id/join", r.handleJoinEvent)

	api.Get("/crews", r.handleListCrews)
	api.Get("/crews/:id", r.handleViewCrew)
	api.Post("/crews/:id/join", r.handleJoinCrew)

	api.Get("/stats", r.handleStats)
	api.Post("/signups", r.handleSignup)
}
