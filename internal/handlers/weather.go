package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"weather-service/internal/models"

	"github.com/go-playground/validator/v10"
)

type WeatherGetter interface {
	Get(ctx context.Context, q models.WeatherQuery) (*models.WeatherResult, error)
}

type weatherParams struct {
	Lat   string `validate:"required,numeric"`
	Lon   string `validate:"required,numeric"`
	Units string `validate:"omitempty,oneof=standard metric imperial"`
}

type WeatherHandler struct {
	weatherService WeatherGetter
	validate       *validator.Validate
	log            *slog.Logger
}

func NewWeatherHandler(weatherService WeatherGetter, log *slog.Logger) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		validate:       validator.New(),
		log:            log,
	}
}

// GetWeather serves GET /weather?lat=&lon=&units=. Units default to standard.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	params := weatherParams{
		Lat:   r.URL.Query().Get("lat"),
		Lon:   r.URL.Query().Get("lon"),
		Units: r.URL.Query().Get("units"),
	}
	if err := h.validate.Struct(params); err != nil {
		writeError(w, http.StatusBadRequest, "lat and lon must be numbers, units one of standard, metric, imperial")
		return
	}
	if params.Units == "" {
		params.Units = string(models.UnitsStandard)
	}

	lat, errLat := strconv.ParseFloat(params.Lat, 64)
	lon, errLon := strconv.ParseFloat(params.Lon, 64)
	if errLat != nil || errLon != nil {
		writeError(w, http.StatusBadRequest, "lat and lon must be numbers")
		return
	}
	q, err := models.NewWeatherQuery(lat, lon, params.Units)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	weather, err := h.weatherService.Get(r.Context(), q)
	if err != nil {
		status := statusFor(err)
		h.log.ErrorContext(r.Context(), "Weather lookup failed",
			"lat", q.Latitude, "lon", q.Longitude, "units", q.Units, "status", status, "error", err)
		writeError(w, status, http.StatusText(status))
		return
	}

	writeJSON(w, http.StatusOK, weather)
}

func statusFor(err error) int {
	var (
		upstream  *models.UpstreamError
		transport *models.TransportError
		decode    *models.DecodeError
	)
	switch {
	case errors.As(err, &upstream), errors.As(err, &decode):
		return http.StatusBadGateway
	case errors.As(err, &transport):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
