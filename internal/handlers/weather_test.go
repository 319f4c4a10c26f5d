package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-service/internal/handlers"
	"weather-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWeather struct {
	got    models.WeatherQuery
	calls  int
	result *models.WeatherResult
	err    error
}

func (s *stubWeather) Get(_ context.Context, q models.WeatherQuery) (*models.WeatherResult, error) {
	s.calls++
	s.got = q
	return s.result, s.err
}

func clearSky(t *testing.T) *models.WeatherResult {
	t.Helper()
	w, err := models.ParseWeatherResult([]byte(`{"weather":[{"main":"Clear"}],"main":{"temp":18.5},"name":"New York"}`))
	require.NoError(t, err)
	return w
}

func serve(h *handlers.WeatherHandler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.GetWeather(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestWeatherHandler_GetWeather(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stub := &stubWeather{result: clearSky(t)}
		h := handlers.NewWeatherHandler(stub, slog.Default())

		rec := serve(h, "/weather?lat=40.7&lon=-74.0&units=metric")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, models.WeatherQuery{Latitude: 40.7, Longitude: -74, Units: models.UnitsMetric}, stub.got)

		var body struct {
			Name string `json:"name"`
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "New York", body.Name)
		assert.Equal(t, 18.5, body.Main.Temp)
	})

	t.Run("units default to standard", func(t *testing.T) {
		stub := &stubWeather{result: clearSky(t)}
		h := handlers.NewWeatherHandler(stub, slog.Default())

		rec := serve(h, "/weather?lat=1&lon=2")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, models.UnitsStandard, stub.got.Units)
	})

	badRequests := map[string]string{
		"missing lat":     "/weather?lon=2",
		"missing lon":     "/weather?lat=1",
		"non numeric lat": "/weather?lat=north&lon=2",
		"unknown units":   "/weather?lat=1&lon=2&units=kelvin",
	}
	for name, target := range badRequests {
		t.Run(name, func(t *testing.T) {
			stub := &stubWeather{}
			h := handlers.NewWeatherHandler(stub, slog.Default())

			rec := serve(h, target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
			assert.Zero(t, stub.calls)
		})
	}

	errorStatuses := []struct {
		name string
		err  error
		want int
	}{
		{"upstream", &models.UpstreamError{StatusCode: 401, Status: "401 Unauthorized"}, http.StatusBadGateway},
		{"decode", &models.DecodeError{Source: models.SourceUpstream, Err: errors.New("eof")}, http.StatusBadGateway},
		{"transport", &models.TransportError{Op: "GET", Target: "x", Err: errors.New("timeout")}, http.StatusGatewayTimeout},
		{"config", &models.ConfigError{Key: "WEATHER_API_KEY", Reason: "not set"}, http.StatusInternalServerError},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range errorStatuses {
		t.Run(tt.name+" error", func(t *testing.T) {
			h := handlers.NewWeatherHandler(&stubWeather{err: tt.err}, slog.Default())

			rec := serve(h, "/weather?lat=1&lon=2&units=metric")

			assert.Equal(t, tt.want, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, http.StatusText(tt.want), body["error"])
		})
	}
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.NewHealthHandler(stubPinger{}, slog.Default()).Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	handlers.NewHealthHandler(stubPinger{err: errors.New("down")}, slog.Default()).Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
