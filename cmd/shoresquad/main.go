package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"shoresquad/config"
	v1 "shoresquad/internal/controllers/http/v1"
	"shoresquad/internal/repositories"
	"shoresquad/internal/services/community"
	"shoresquad/internal/services/weather"
	"shoresquad/pkg/httpserver"
	"shoresquad/pkg/logger"
	"shoresquad/pkg/observe"
)

// @title ShoreSquad API
// @version 1.0.0
// @description Beach cleanup coordination: NEA weather forecasts, cleanup events, crews and volunteer signups.
// @termsOfService http://swagger.io/terms/

// @contact.name ShoreSquad Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Beach weather forecast operations
// @tag.name Community
// @tag.description Events, crews and volunteer signups
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load config: %v\n", err)
		os.Exit(1)
	}

	writers := []io.Writer{os.Stdout}
	format := cnf.Log.Format

	var hook *observe.SentryHook
	if cnf.Observe.SentryDSN != "" {
		hook, err = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.IsDevelopment(), cnf.Observe.SentryDSN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot init sentry: %v\n", err)
			os.Exit(1)
		}
		writers = append(writers, hook)
		// the hook decodes JSON entries
		format = logger.FormatJSON
	}

	l := logger.NewZapLoggerWithFormat(cnf.App.Name, cnf.App.Env, cnf.Log.Level, format, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}

	shutdownTracing, err := observe.SetTracing(cnf.App.Name, cnf.Observe.ZipkinURL)
	if err != nil {
		l.Fatal("cannot set up tracing", map[string]any{"err": err.Error()})
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observe.NewMetrics(reg)

	kv, ready, closeKV := newKVStore(ctx, cnf, l)
	store := repositories.NewLocalStore(kv)

	clock := clockwork.NewRealClock()
	repos := repositories.InitWeatherRepositories(cnf, l, clock)

	weatherService := weather.NewWeatherService(repos, store, clock, metrics, l)
	communityService := community.NewService(community.DefaultState(), store, clock, metrics, l)

	app := httpserver.InitFiberServer(cnf, ready)

	v1.NewRouter(
		app,
		v1.Services{
			Weather:   weatherService,
			Community: communityService,
		},
		reg,
		cnf.Weather.DefaultLocation,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err.Error()})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Server.Port,
		"primary":  repos.Primary.Name(),
		"storage":  cnf.Storage.Driver,
		"location": cnf.Weather.DefaultLocation,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cnf.Server.ShutdownTimeout)*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if err := shutdownTracing(shutdownCtx); err != nil {
			l.Error(err)
		}
		if err := closeKV(); err != nil {
			l.Error(err)
		}
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}

// newKVStore returns the configured store, its readiness check (nil when the
// store is in-process) and its closer.
func newKVStore(ctx context.Context, cnf *config.Config, l *logger.Logger) (repositories.KVStore, func() bool, func() error) {
	if cnf.Storage.Driver != config.StorageRedis {
		return repositories.NewMemoryStore(), nil, func() error { return nil }
	}

	rs := repositories.NewRedisStore(cnf.Storage.RedisAddr, cnf.Storage.RedisDB)

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := rs.Ping(pingCtx); err != nil {
		l.Fatal("cannot reach redis", map[string]any{"addr": cnf.Storage.RedisAddr, "err": err.Error()})
	}

	return rs, httpserver.PingProbe(rs.Ping, 2*time.Second), rs.Close
}
