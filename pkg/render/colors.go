package render

import (
	"fmt"

	"gitlab.com/tinyland/lab/weather-reporter/pkg/theme"
)

// TempColor maps a temperature in Celsius onto the cold-to-hot gradient:
// solid blue at or below 15, blending to white through the 24-26 neutral
// band, then to the accent orange at 40 and above.
func (d *Dispatcher) TempColor(t float64) theme.Color {
	switch {
	case t <= 15:
		return d.pal.Cold
	case t >= 40:
		return d.pal.Accent
	case t >= 24 && t <= 26:
		return d.pal.Text
	case t < 24:
		ratio := (t - 15) / 9
		v := uint8(ratio * 255)
		return theme.Color{R: v, G: v, B: 255}
	default:
		ratio := (t - 26) / 14
		return theme.Color{
			R: 255,
			G: uint8(255 - ratio*155),
			B: uint8(255 - ratio*255),
		}
	}
}

// uvLabel describes a UV index reading.
func uvLabel(uvi float64) string {
	switch {
	case uvi < 3:
		return "Low"
	case uvi < 6:
		return "Moderate"
	case uvi < 8:
		return "High"
	case uvi < 11:
		return "Very High"
	}
	return "Extreme"
}

// uvColor maps a UV index reading to its severity color.
func (d *Dispatcher) uvColor(uvi float64) theme.Color {
	switch {
	case uvi < 3:
		return d.pal.Success
	case uvi < 6:
		return d.pal.Sun
	case uvi < 8:
		return d.pal.Accent
	case uvi < 11:
		return d.pal.Error
	}
	return d.pal.Extreme
}

// hourLabel formats an hour of day as "2am" or "12pm".
func hourLabel(h int) string {
	ampm := "am"
	if h >= 12 {
		ampm = "pm"
	}
	display := h
	if display == 0 {
		display = 12
	} else if display > 12 {
		display -= 12
	}
	return fmt.Sprintf("%d%s", display, ampm)
}
