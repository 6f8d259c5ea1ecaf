package config

import (
	"fmt"
	"time"
)

// Config is the root configuration tree.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Location LocationConfig `toml:"location"`
	Weather  WeatherConfig  `toml:"weather"`
	Input    InputConfig    `toml:"input"`
	Display  DisplayConfig  `toml:"display"`
}

// GeneralConfig covers logging and the control loop.
type GeneralConfig struct {
	LogLevel     string   `toml:"log_level"`
	TickInterval Duration `toml:"tick_interval"`
}

// LocationConfig identifies the place whose weather is shown.
type LocationConfig struct {
	Label     string  `toml:"label"`
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
}

// WeatherConfig configures the OpenWeatherMap provider.
type WeatherConfig struct {
	APIKey          string   `toml:"api_key"`
	BaseURL         string   `toml:"base_url"`
	RefreshInterval Duration `toml:"refresh_interval"`
	RequestTimeout  Duration `toml:"request_timeout"`
}

// InputConfig tunes the three-button front panel.
type InputConfig struct {
	Debounce  Duration `toml:"debounce"`
	LongPress Duration `toml:"long_press"`
}

// DisplayConfig tunes rendering and screen cycling.
type DisplayConfig struct {
	Theme           string   `toml:"theme"`
	ThemeDir        string   `toml:"theme_dir"`
	AutoAdvance     bool     `toml:"auto_advance"`
	AdvanceInterval Duration `toml:"advance_interval"`
	BlinkInterval   Duration `toml:"blink_interval"`
	SPIDevice       string   `toml:"spi_device"`
	DCPin           string   `toml:"dc_pin"`
	ResetPin        string   `toml:"reset_pin"`
	BacklightPin    string   `toml:"backlight_pin"`
	LeftPin         string   `toml:"left_pin"`
	RightPin        string   `toml:"right_pin"`
	SelectPin       string   `toml:"select_pin"`
}

// Validate rejects configurations the control loop cannot run with.
func (c *Config) Validate() error {
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range", c.Location.Latitude)
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range", c.Location.Longitude)
	}
	if c.Weather.RefreshInterval.Duration < time.Minute {
		return fmt.Errorf("refresh_interval %s too short; minimum 1m", c.Weather.RefreshInterval)
	}
	if c.Input.Debounce.Duration <= 0 {
		return fmt.Errorf("debounce must be positive")
	}
	if c.Input.LongPress.Duration <= c.Input.Debounce.Duration {
		return fmt.Errorf("long_press %s must exceed debounce %s", c.Input.LongPress, c.Input.Debounce)
	}
	if c.Display.BlinkInterval.Duration <= 0 {
		return fmt.Errorf("blink_interval must be positive")
	}
	if c.Display.AdvanceInterval.Duration <= 0 {
		return fmt.Errorf("advance_interval must be positive")
	}
	if c.General.TickInterval.Duration <= 0 {
		return fmt.Errorf("tick_interval must be positive")
	}
	return nil
}
