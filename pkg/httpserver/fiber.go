package httpserver

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"shoresquad/config"
)

const (
	LivenessPath  = "/manage/health"
	ReadinessPath = "/manage/ready"
)

// InitFiberServer builds the app with the shared middleware stack. ready is
// consulted by the readiness probe; nil means always ready.
func InitFiberServer(cfg *config.Config, ready func() bool) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.IsProduction(),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		BodyLimit:             1 * 1024 * 1024,
		ReadTimeout:           seconds(cfg.Server.ReadTimeout),
		WriteTimeout:          seconds(cfg.Server.WriteTimeout),
		IdleTimeout:           seconds(cfg.Server.IdleTimeout),
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.IsDevelopment(),
	}))
	s.Use(cors.New())

	hc := healthcheck.Config{
		LivenessEndpoint:  LivenessPath,
		ReadinessEndpoint: ReadinessPath,
	}
	if ready != nil {
		hc.ReadinessProbe = func(*fiber.Ctx) bool { return ready() }
	}
	s.Use(healthcheck.New(hc))

	return s
}

// PingProbe adapts a dependency ping into a readiness check. Each check gets
// its own timeout.
func PingProbe(ping func(ctx context.Context) error, timeout time.Duration) func() bool {
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return ping(ctx) == nil
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
