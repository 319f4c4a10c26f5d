package api_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"weather-service/internal/api"
	"weather-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "secret-key-123"

// mockHTTPClient is a mock implementation of HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func newClient(t *testing.T, client api.HTTPClient, baseURL string, log *slog.Logger) *api.OpenWeatherClient {
	t.Helper()
	c, err := api.NewOpenWeatherClientWithClient(client, api.Config{BaseURL: baseURL, APIKey: testAPIKey}, log)
	require.NoError(t, err)
	return c
}

func TestOpenWeatherClient_CurrentWeather(t *testing.T) {
	ctx := t.Context()
	query := models.WeatherQuery{Latitude: 40.7, Longitude: -74.0, Units: models.UnitsMetric}

	t.Run("successful request", func(t *testing.T) {
		responseBody := `{"weather":[{"main":"Clear"}],"main":{"temp":18.5}}`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "40.7", r.URL.Query().Get("lat"))
			assert.Equal(t, "-74", r.URL.Query().Get("lon"))
			assert.Equal(t, "metric", r.URL.Query().Get("units"))
			assert.Equal(t, testAPIKey, r.URL.Query().Get("appid"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			_, _ = w.Write([]byte(responseBody))
		}))
		defer srv.Close()

		body, err := newClient(t, srv.Client(), srv.URL, slog.Default()).CurrentWeather(ctx, query)

		require.NoError(t, err)
		assert.JSONEq(t, responseBody, string(body))
	})

	t.Run("any 2xx is success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte(`{"weather":[],"main":{"temp":1}}`))
		}))
		defer srv.Close()

		body, err := newClient(t, srv.Client(), srv.URL, slog.Default()).CurrentWeather(ctx, query)

		require.NoError(t, err)
		assert.NotEmpty(t, body)
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		body, err := newClient(t, srv.Client(), srv.URL, slog.Default()).CurrentWeather(ctx, query)

		require.Error(t, err)
		assert.Nil(t, body)
		var upstream *models.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, http.StatusInternalServerError, upstream.StatusCode)
		assert.Equal(t, "500 Internal Server Error", upstream.Status)
	})

	t.Run("unauthorized carries provider message", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusUnauthorized,
					Body:       io.NopCloser(bytes.NewBufferString(`{"cod":401,"message":"Invalid API key."}`)),
				}, nil
			},
		}

		_, err := newClient(t, mockClient, api.DefaultBaseURL, slog.Default()).CurrentWeather(ctx, query)

		var upstream *models.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
		assert.Equal(t, "401 Unauthorized", upstream.Status)
		assert.Equal(t, "Invalid API key.", upstream.Message)
	})

	t.Run("transport failure does not leak the key", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				return nil, &url.Error{Op: "Get", URL: req.URL.String(), Err: errors.New("dial tcp: connection refused")}
			},
		}

		_, err := newClient(t, mockClient, api.DefaultBaseURL, slog.Default()).CurrentWeather(ctx, query)

		var transport *models.TransportError
		require.ErrorAs(t, err, &transport)
		assert.NotContains(t, err.Error(), testAPIKey)
		assert.Contains(t, err.Error(), "appid=REDACTED")
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("request log redacts the key", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(`{}`)),
				}, nil
			},
		}

		_, err := newClient(t, mockClient, api.DefaultBaseURL, logger).CurrentWeather(ctx, query)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "appid=REDACTED")
		assert.NotContains(t, buf.String(), testAPIKey)
	})

	t.Run("out of range coordinates are passed through", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "123.45", req.URL.Query().Get("lat"))
				assert.Equal(t, "-999", req.URL.Query().Get("lon"))
				return &http.Response{
					StatusCode: http.StatusBadRequest,
					Body:       io.NopCloser(bytes.NewBufferString(`{"cod":"400","message":"wrong latitude"}`)),
				}, nil
			},
		}
		bad := models.WeatherQuery{Latitude: 123.45, Longitude: -999, Units: models.UnitsStandard}

		_, err := newClient(t, mockClient, api.DefaultBaseURL, slog.Default()).CurrentWeather(ctx, bad)

		var upstream *models.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, "wrong latitude", upstream.Message)
	})
}

func TestNewOpenWeatherClient(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		c, err := api.NewOpenWeatherClient(api.Config{BaseURL: api.DefaultBaseURL}, slog.Default())

		require.Nil(t, c)
		var cfgErr *models.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "WEATHER_API_KEY", cfgErr.Key)
	})

	t.Run("missing base url", func(t *testing.T) {
		_, err := api.NewOpenWeatherClient(api.Config{APIKey: testAPIKey}, slog.Default())

		var cfgErr *models.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "WEATHER_API_URL", cfgErr.Key)
	})

	t.Run("valid config", func(t *testing.T) {
		c, err := api.NewOpenWeatherClient(api.Config{BaseURL: api.DefaultBaseURL, APIKey: testAPIKey}, slog.Default())

		require.NoError(t, err)
		assert.NotNil(t, c)
	})
}

func TestRedactURL(t *testing.T) {
	u, err := url.Parse("https://api.openweathermap.org/data/2.5/weather?lat=1&lon=2&appid=" + testAPIKey)
	require.NoError(t, err)

	got := api.RedactURL(u)

	assert.Equal(t, "https://api.openweathermap.org/data/2.5/weather?appid=REDACTED&lat=1&lon=2", got)
	assert.Contains(t, u.String(), testAPIKey, "original URL must not be modified")

	plain, _ := url.Parse("https://example.com/path?q=1")
	assert.Equal(t, "https://example.com/path?q=1", api.RedactURL(plain))
	assert.Empty(t, api.RedactURL(nil))
}
