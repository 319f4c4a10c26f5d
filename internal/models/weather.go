package models

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// WeatherResult is the provider's current-conditions document.
// Only weather and main.temp are required, the rest is optional and
// unknown fields are ignored.
type WeatherResult struct {
	Coord      *Coord         `json:"coord,omitempty"`
	Weather    []Condition    `json:"weather" validate:"required"`
	Base       string         `json:"base,omitempty"`
	Main       *Readings      `json:"main" validate:"required"`
	Visibility *int           `json:"visibility,omitempty"`
	Wind       *Wind          `json:"wind,omitempty"`
	Clouds     *Clouds        `json:"clouds,omitempty"`
	Rain       *Precipitation `json:"rain,omitempty"`
	Snow       *Precipitation `json:"snow,omitempty"`
	Dt         int64          `json:"dt,omitempty"`
	Sys        *Sys           `json:"sys,omitempty"`
	Timezone   int            `json:"timezone,omitempty"`
	ID         int64          `json:"id,omitempty"`
	Name       string         `json:"name,omitempty"`
	Cod        json.Number    `json:"cod,omitempty"`
}

type Coord struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type Condition struct {
	ID          int    `json:"id,omitempty"`
	Main        string `json:"main"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// Readings holds the "main" block. Temp is a pointer so that a missing
// value can be told apart from 0°.
type Readings struct {
	Temp      *float64 `json:"temp" validate:"required"`
	FeelsLike float64  `json:"feels_like,omitempty"`
	TempMin   float64  `json:"temp_min,omitempty"`
	TempMax   float64  `json:"temp_max,omitempty"`
	Pressure  int      `json:"pressure,omitempty"`
	Humidity  int      `json:"humidity,omitempty"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg,omitempty"`
	Gust  float64 `json:"gust,omitempty"`
}

type Clouds struct {
	All int `json:"all"`
}

type Precipitation struct {
	OneHour   float64 `json:"1h,omitempty"`
	ThreeHour float64 `json:"3h,omitempty"`
}

type Sys struct {
	Country string `json:"country,omitempty"`
	Sunrise int64  `json:"sunrise,omitempty"`
	Sunset  int64  `json:"sunset,omitempty"`
}

// Temperature returns main.temp in the units the query asked for.
func (w *WeatherResult) Temperature() float64 {
	if w == nil || w.Main == nil || w.Main.Temp == nil {
		return 0
	}
	return *w.Main.Temp
}

// ParseWeatherResult decodes a provider body and checks required fields.
func ParseWeatherResult(data []byte) (*WeatherResult, error) {
	var result WeatherResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("invalid JSON format: %w", err)
	}
	if err := validate.Struct(&result); err != nil {
		return nil, fmt.Errorf("missing required fields: %w", err)
	}
	return &result, nil
}
