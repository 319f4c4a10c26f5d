package models

import (
	"errors"
	"fmt"
)

// Units selects the measurement system the provider reports in.
type Units string

const (
	UnitsStandard Units = "standard"
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

var ErrInvalidUnits = errors.New("units must be one of standard, metric, imperial")

// ParseUnits accepts only the three provider unit systems.
func ParseUnits(s string) (Units, error) {
	switch u := Units(s); u {
	case UnitsStandard, UnitsMetric, UnitsImperial:
		return u, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidUnits, s)
	}
}

// WeatherQuery is one current-weather lookup. Coordinates are passed to the
// provider as-is, no range checks are done here.
type WeatherQuery struct {
	Latitude  float64
	Longitude float64
	Units     Units
}

func NewWeatherQuery(lat, lon float64, units string) (WeatherQuery, error) {
	u, err := ParseUnits(units)
	if err != nil {
		return WeatherQuery{}, err
	}
	return WeatherQuery{Latitude: lat, Longitude: lon, Units: u}, nil
}
