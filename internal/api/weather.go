package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-service/internal/models"
)

// DefaultBaseURL is the OpenWeatherMap current-conditions endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

const apiKeyParam = "appid"

// HTTPClient lets tests swap the transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// OpenWeatherClient calls the provider and hands back the raw response body.
type OpenWeatherClient struct {
	client  HTTPClient
	baseURL string
	apiKey  string
	log     *slog.Logger
}

func NewOpenWeatherClient(cfg Config, log *slog.Logger) (*OpenWeatherClient, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return NewOpenWeatherClientWithClient(&http.Client{Timeout: timeout}, cfg, log)
}

// NewOpenWeatherClientWithClient allows injecting a custom HTTP client.
func NewOpenWeatherClientWithClient(client HTTPClient, cfg Config, log *slog.Logger) (*OpenWeatherClient, error) {
	if cfg.APIKey == "" {
		return nil, &models.ConfigError{Key: "WEATHER_API_KEY", Reason: "not set"}
	}
	if cfg.BaseURL == "" {
		return nil, &models.ConfigError{Key: "WEATHER_API_URL", Reason: "not set"}
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, &models.ConfigError{Key: "WEATHER_API_URL", Reason: err.Error()}
	}

	return &OpenWeatherClient{
		client:  client,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		log:     log,
	}, nil
}

// CurrentWeather fetches current conditions for q. Any 2xx is a success and
// the body is returned untouched, decoding is left to the caller.
func (c *OpenWeatherClient) CurrentWeather(ctx context.Context, q models.WeatherQuery) ([]byte, error) {
	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("lat", strconv.FormatFloat(q.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(q.Longitude, 'f', -1, 64))
	query.Set("units", string(q.Units))
	query.Set(apiKeyParam, c.apiKey)
	reqURL.RawQuery = query.Encode()

	logURL := RedactURL(reqURL)
	c.log.DebugContext(ctx, "OpenWeather request", "url", logURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &models.TransportError{Op: http.MethodGet, Target: logURL, Err: scrub(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.TransportError{Op: "read body", Target: logURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &errResp)
		c.log.WarnContext(ctx, "OpenWeather API error", "status", resp.StatusCode, "message", errResp.Message)
		return nil, &models.UpstreamError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Message:    errResp.Message,
		}
	}

	return body, nil
}

func statusText(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
