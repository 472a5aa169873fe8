package observe

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "shoresquad"

// Metrics holds the Prometheus collectors for the site.
type Metrics struct {
	ForecastRequests  *prometheus.CounterVec // labels: source={nea,mock}, outcome={ok,no_data,malformed}
	ForecastFallbacks prometheus.Counter
	FetchDuration     prometheus.Histogram

	Joins         *prometheus.CounterVec // labels: kind={event,crew}
	Signups       *prometheus.CounterVec // labels: outcome={accepted,ignored}
	SearchHistory prometheus.Counter
	StorageErrors prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		ForecastRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forecast_requests_total",
			Help:      "Forecasts rendered by payload source and outcome.",
		}, []string{"source", "outcome"}),
		ForecastFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forecast_fallbacks_total",
			Help:      "Remote forecast failures answered with the mock forecast.",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "forecast_fetch_duration_seconds",
			Help:      "Duration of the primary forecast fetch.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		Joins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "joins_total",
			Help:      "Successful join operations by kind.",
		}, []string{"kind"}),
		Signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signups_total",
			Help:      "Signup submissions by outcome.",
		}, []string{"outcome"}),
		SearchHistory: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_history_writes_total",
			Help:      "Locations written to the search history.",
		}),
		StorageErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_errors_total",
			Help:      "Failed reads or writes against the key-value store.",
		}),
	}
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()

	reg.MustRegister(
		m.ForecastRequests,
		m.ForecastFallbacks,
		m.FetchDuration,
		m.Joins,
		m.Signups,
		m.SearchHistory,
		m.StorageErrors,
	)

	return m
}

// NewMetricsForTesting creates unregistered collectors so tests can build
// as many as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
