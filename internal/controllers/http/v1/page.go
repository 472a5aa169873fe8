package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"shoresquad/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"round": func(v float64) string { return fmt.Sprintf("%.0f", v) },
}).ParseFS(templatesFS, "templates/index.html"))

type pageData struct {
	Events   []models.Event
	Crews    []models.Crew
	Stats    models.Stats
	Forecast models.ForecastView
	History  []string
}

func (r *routes) handleIndex(c *fiber.Ctx) error {
	ctx := c.UserContext()

	history, err := r.weather.SearchHistory(ctx)
	if err != nil {
		r.l.Warning("search history unavailable", map[string]any{"err": err.Error()})
	}

	data := pageData{
		Events:   r.community.Events(),
		Crews:    r.community.Crews(),
		Stats:    r.community.Stats(),
		Forecast: r.weather.DefaultForecast(ctx, r.defaultLocation),
		History:  history,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		r.l.Error(err)
		return fiber.ErrInternalServerError
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
