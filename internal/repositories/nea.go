package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"shoresquad/internal/models"
	"shoresquad/pkg/logger"
)

const (
	NEABaseURL = "https://api.data.gov.sg/v1/environment/4-day-weather-forecast"

	// NEAAPIKeyHeader carries the optional data.gov.sg key that lifts the
	// anonymous rate limit.
	NEAAPIKeyHeader = "X-Api-Key"
)

// ErrEmptyPayload is returned for a well-formed response without any daily
// records, so callers can treat it like any other failed fetch.
var ErrEmptyPayload = errors.New("forecast response has no daily records")

// NEARepository reads the data.gov.sg 4-day forecast. The endpoint takes no
// parameters; the API key is optional.
type NEARepository struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewNEARepository(baseURL, apiKey string, httpClient HTTPClient, l *logger.Logger) *NEARepository {
	if baseURL == "" {
		baseURL = NEABaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &NEARepository{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}
}

func (n *NEARepository) Name() string {
	return NEAName
}

func (n *NEARepository) FetchForecast(ctx context.Context) (models.ForecastResponse, error) {
	var forecast models.ForecastResponse

	ctx, span := otel.Tracer("shoresquad").Start(ctx, "nea.fetch")
	defer span.End()
	span.SetAttributes(attribute.String("http.url", n.baseURL))

	n.l.Info("making nea API request", map[string]any{
		"url": n.baseURL,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL, nil)
	if err != nil {
		return forecast, n.fail(span, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if n.apiKey != "" {
		req.Header.Set(NEAAPIKeyHeader, n.apiKey)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return forecast, n.fail(span, fmt.Errorf("failed to do request: %w", err))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	n.l.Info("received nea API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return forecast, n.fail(span, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return forecast, n.fail(span, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status))
	}

	if err = json.Unmarshal(body, &forecast); err != nil {
		return models.ForecastResponse{}, n.fail(span, fmt.Errorf("failed to parse JSON response: %w", err))
	}

	days := len(forecast.Days())
	if days == 0 {
		return models.ForecastResponse{}, n.fail(span, ErrEmptyPayload)
	}

	n.l.Info("parsed nea API response", map[string]any{
		"days": days,
	})

	return forecast, nil
}

func (n *NEARepository) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
