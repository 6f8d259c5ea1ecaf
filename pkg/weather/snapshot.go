// Package weather defines the weather snapshot consumed by the render
// dispatcher and the Provider interface that produces it. The OpenWeatherMap
// One Call client lives in client.go; a deterministic mock for the simulator
// and tests lives in mock.go.
package weather

import (
	"time"
	"unicode"
)

// Hourly is one hour of forecast.
type Hourly struct {
	Temp float64
	Code int
	Hour int // local hour of day, 0-23
}

// Daily is one day of forecast.
type Daily struct {
	TempMin float64
	TempMax float64
	Code    int
	Day     string // short weekday name, "Today" substitution happens at render
	POP     int    // probability of precipitation, 0-100
}

// Snapshot is one complete fetch result. The core only ever reads it; a new
// fetch replaces the whole value.
type Snapshot struct {
	Valid bool

	// Current conditions
	Temp      float64
	FeelsLike float64
	Humidity  int
	WindSpeed float64
	WindDeg   int
	WindDir   string
	Code      int
	Condition string

	// Extended current conditions
	UVI        float64
	Visibility int // meters
	Pressure   int // hPa
	DewPoint   float64
	Clouds     int // percent

	// Minutely precipitation for the next hour, mm.
	MinutelyRain [60]float64
	HasMinutely  bool

	Hourly []Hourly
	Daily  []Daily

	Sunrise time.Time
	Sunset  time.Time

	Moonrise  time.Time
	Moonset   time.Time
	MoonPhase float64 // 0-1

	FetchedAt time.Time
}

// IsDaytime reports whether now falls between sunrise and sunset. Before the
// first valid fetch (or time sync) it defaults to day.
func (s *Snapshot) IsDaytime(now time.Time) bool {
	if s == nil || !s.Valid || s.Sunrise.IsZero() || s.Sunset.IsZero() {
		return true
	}
	return !now.Before(s.Sunrise) && now.Before(s.Sunset)
}

// HourIsDaytime reports whether a forecast hour-of-day falls within the
// sunrise..sunset hours of the snapshot's day.
func (s *Snapshot) HourIsDaytime(hour int) bool {
	if s == nil || !s.Valid || s.Sunrise.IsZero() || s.Sunset.IsZero() {
		return true
	}
	return hour >= s.Sunrise.Local().Hour() && hour <= s.Sunset.Local().Hour()
}

var compassPoints = [...]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// DegToCompass converts a wind bearing to a 16-point compass label.
func DegToCompass(deg int) string {
	idx := ((deg + 11) / 22) % 16
	if idx < 0 {
		idx += 16
	}
	return compassPoints[idx]
}

// capitalize upper-cases the first rune of a condition description.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// shortDay returns the three-letter weekday name.
func shortDay(t time.Time) string {
	return t.Weekday().String()[:3]
}
