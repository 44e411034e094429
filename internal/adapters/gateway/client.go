// Package gateway provides the HTTP adapter for the remote weather/preferences
// API. It owns transport concerns only: request configuration, error
// classification, optional rate limiting and circuit breaking. It never retries.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	DefaultBaseURL = "https://liveweathertrack.onrender.com/api"
	DefaultTimeout = 40 * time.Second
)

// Request outcomes recorded by GatewayMetrics
const (
	OutcomeSuccess     = "success"
	OutcomeTimeout     = "timeout"
	OutcomeNotFound    = "not_found"
	OutcomeServerError = "server_error"
	OutcomeError       = "error"
)

// HTTPDoer executes HTTP requests (for testing)
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientParams holds parameters for creating the remote API client
type ClientParams struct {
	BaseURL    string
	Timeout    time.Duration
	// HTTPClient overrides the default client built from Timeout
	HTTPClient HTTPDoer
	Metrics    ports.GatewayMetrics
	// Limiter throttles outbound requests when set
	Limiter    *rate.Limiter
	// Breaker short-circuits requests while the remote API is failing when set
	Breaker    *gobreaker.CircuitBreaker
}

// Client implements ports.WeatherGateway over HTTP/JSON
type Client struct {
	baseURL string
	client  HTTPDoer
	metrics ports.GatewayMetrics
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

// NewClient creates a new remote API client
func NewClient(params ClientParams) (*Client, error) {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, errors.NewConfigurationError("invalid remote API base URL", err)
	}
	if params.Metrics == nil {
		return nil, errors.NewValidationError("gateway metrics is required")
	}

	client := params.HTTPClient
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: baseURL,
		client:  client,
		metrics: params.Metrics,
		limiter: params.Limiter,
		breaker: params.Breaker,
	}, nil
}

// NewBreaker creates a circuit breaker that opens after maxFailures consecutive
// failed requests and stays open for openTimeout
func NewBreaker(maxFailures uint32, openTimeout time.Duration, logger ports.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "remote-api",
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				ports.F("breaker", name),
				ports.F("from", from.String()),
				ports.F("to", to.String()))
		},
	})
}

type favoriteCityRequest struct {
	CityID int64 `json:"city_id"`
}

// ListCities returns every watched city
func (c *Client) ListCities(ctx context.Context) ([]weather.City, error) {
	var cities []weather.City
	if err := c.do(ctx, "list_cities", http.MethodGet, "/cities/", nil, &cities); err != nil {
		return nil, err
	}
	if cities == nil {
		cities = []weather.City{}
	}
	return cities, nil
}

// AddCity creates a city from a name and country code
func (c *Client) AddCity(ctx context.Context, params weather.NewCityParams) (*weather.City, error) {
	var city weather.City
	if err := c.do(ctx, "add_city", http.MethodPost, "/cities/", params, &city); err != nil {
		return nil, err
	}
	return &city, nil
}

// RemoveCity deletes a city
func (c *Client) RemoveCity(ctx context.Context, cityID int64) error {
	return c.do(ctx, "remove_city", http.MethodDelete, fmt.Sprintf("/cities/%d/", cityID), nil, nil)
}

// GetCurrentWeather returns the latest conditions of a city
func (c *Client) GetCurrentWeather(ctx context.Context, cityID int64) (*weather.CurrentWeather, error) {
	var current weather.CurrentWeather
	if err := c.do(ctx, "current_weather", http.MethodGet, fmt.Sprintf("/cities/%d/weather/", cityID), nil, &current); err != nil {
		return nil, err
	}
	return &current, nil
}

// GetForecast returns the daily forecast of a city
func (c *Client) GetForecast(ctx context.Context, cityID int64) ([]weather.ForecastDay, error) {
	var days []weather.ForecastDay
	if err := c.do(ctx, "forecast", http.MethodGet, fmt.Sprintf("/cities/%d/forecast/", cityID), nil, &days); err != nil {
		return nil, err
	}
	if days == nil {
		days = []weather.ForecastDay{}
	}
	return days, nil
}

// GetPreferences returns the preferences records; the first one is active
func (c *Client) GetPreferences(ctx context.Context) ([]weather.Preferences, error) {
	var preferences []weather.Preferences
	if err := c.do(ctx, "get_preferences", http.MethodGet, "/preferences/", nil, &preferences); err != nil {
		return nil, err
	}
	return preferences, nil
}

// UpdatePreferences stores preference settings
func (c *Client) UpdatePreferences(ctx context.Context, update weather.PreferencesUpdate) error {
	return c.do(ctx, "update_preferences", http.MethodPost, "/preferences/", update, nil)
}

// AddFavoriteCity adds a city to the favorite set
func (c *Client) AddFavoriteCity(ctx context.Context, cityID int64) error {
	return c.do(ctx, "add_favorite", http.MethodPost, "/preferences/add_favorite_city/", favoriteCityRequest{CityID: cityID}, nil)
}

// RemoveFavoriteCity removes a city from the favorite set
func (c *Client) RemoveFavoriteCity(ctx context.Context, cityID int64) error {
	return c.do(ctx, "remove_favorite", http.MethodPost, "/preferences/remove_favorite_city/", favoriteCityRequest{CityID: cityID}, nil)
}

type response struct {
	status int
	body   []byte
}

var errServerStatus = stderrors.New("server error status")

func (c *Client) do(ctx context.Context, operation, method, path string, in, out interface{}) error {
	start := time.Now()
	err := c.exchange(ctx, method, path, in, out)
	c.metrics.RecordRequest(operation, outcomeOf(err), time.Since(start))
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) exchange(ctx context.Context, method, path string, in, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if stderrors.Is(err, context.DeadlineExceeded) {
				return errors.NewTimeoutError("rate limit wait timed out", err)
			}
			return errors.NewExternalAPIError("rate limit wait canceled", err)
		}
	}

	req, err := c.newRequest(ctx, method, path, in)
	if err != nil {
		return err
	}

	resp, err := c.send(req)
	if err != nil {
		return classifyTransportError(err)
	}

	if resp.status < 200 || resp.status >= 300 {
		return statusError(resp)
	}

	if out == nil || resp.status == http.StatusNoContent || len(bytes.TrimSpace(resp.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return errors.NewExternalAPIError("failed to decode remote API response", err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, in interface{}) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, errors.NewValidationError("failed to encode request body: " + err.Error())
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// send executes the request, through the breaker when configured. Server
// errors count as breaker failures; client errors do not.
func (c *Client) send(req *http.Request) (*response, error) {
	if c.breaker == nil {
		return c.roundTrip(req)
	}

	var resp *response
	_, err := c.breaker.Execute(func() (interface{}, error) {
		r, err := c.roundTrip(req)
		if err != nil {
			return nil, err
		}
		resp = r
		if r.status >= http.StatusInternalServerError {
			return nil, errServerStatus
		}
		return nil, nil
	})

	switch {
	case stderrors.Is(err, errServerStatus):
		return resp, nil
	case stderrors.Is(err, gobreaker.ErrOpenState), stderrors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, errors.NewExternalAPIError("remote API circuit breaker open", err)
	case err != nil:
		return nil, err
	}
	return resp, nil
}

func (c *Client) roundTrip(req *http.Request) (*response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &response{status: resp.StatusCode, body: body}, nil
}

func classifyTransportError(err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return err
	}

	var urlErr *url.Error
	if stderrors.As(err, &urlErr) && urlErr.Timeout() {
		return errors.NewTimeoutError("request to remote API timed out", err)
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewTimeoutError("request to remote API timed out", err)
	}
	return errors.NewExternalAPIError("request to remote API failed", err)
}

func statusError(resp *response) error {
	message := fmt.Sprintf("remote API returned status %d", resp.status)

	var appErr *errors.AppError
	switch {
	case resp.status == http.StatusNotFound:
		appErr = errors.NewNotFoundError(message)
	case resp.status >= http.StatusInternalServerError:
		appErr = errors.NewServerError(message, nil)
	default:
		appErr = errors.NewExternalAPIError(message, nil)
	}

	if detail := detailOf(resp.body); detail != "" {
		appErr = appErr.WithDetail(detail)
	}
	return appErr
}

// detailOf extracts the "detail" message of an error body, if it is a string
func detailOf(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err != nil {
		return ""
	}
	return strings.TrimSpace(detail)
}

func outcomeOf(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	switch errors.TypeOf(err) {
	case errors.TimeoutError:
		return OutcomeTimeout
	case errors.NotFoundError:
		return OutcomeNotFound
	case errors.ServerError:
		return OutcomeServerError
	default:
		return OutcomeError
	}
}

var _ ports.WeatherGateway = (*Client)(nil)
