package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	if cfg.Weather.RefreshInterval.Duration != 5*time.Minute {
		t.Errorf("refresh interval = %v", cfg.Weather.RefreshInterval)
	}
	if cfg.Input.Debounce.Duration != 200*time.Millisecond {
		t.Errorf("debounce = %v", cfg.Input.Debounce)
	}
	if cfg.Input.LongPress.Duration != 800*time.Millisecond {
		t.Errorf("long press = %v", cfg.Input.LongPress)
	}
	if cfg.Display.BlinkInterval.Duration != 500*time.Millisecond {
		t.Errorf("blink = %v", cfg.Display.BlinkInterval)
	}
	if cfg.Display.AdvanceInterval.Duration != 3*time.Second {
		t.Errorf("advance = %v", cfg.Display.AdvanceInterval)
	}
	if cfg.Display.AutoAdvance {
		t.Error("auto-advance should default off")
	}
	if cfg.General.TickInterval.Duration != 50*time.Millisecond {
		t.Errorf("tick = %v", cfg.General.TickInterval)
	}
}

func TestLoadFromReaderOverlaysDefaults(t *testing.T) {
	toml := `
[location]
label = "Hobart"
latitude = -42.8821
longitude = 147.3272

[weather]
api_key = "abc123"
refresh_interval = "10m"

[display]
auto_advance = true
advance_interval = "5s"
`
	cfg, err := LoadFromReader(strings.NewReader(toml))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Location.Label != "Hobart" {
		t.Errorf("label = %q", cfg.Location.Label)
	}
	if cfg.Weather.RefreshInterval.Duration != 10*time.Minute {
		t.Errorf("refresh = %v", cfg.Weather.RefreshInterval)
	}
	if !cfg.Display.AutoAdvance || cfg.Display.AdvanceInterval.Duration != 5*time.Second {
		t.Error("display overrides not applied")
	}
	// Untouched sections keep defaults.
	if cfg.Input.Debounce.Duration != 200*time.Millisecond {
		t.Errorf("debounce lost default: %v", cfg.Input.Debounce)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "env-key")
	t.Setenv("WEATHER_LOCATION", "Perth")

	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Weather.APIKey != "env-key" {
		t.Errorf("api key = %q", cfg.Weather.APIKey)
	}
	if cfg.Location.Label != "Perth" {
		t.Errorf("label = %q", cfg.Location.Label)
	}
}

func TestDurationParsing(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("90s")); err != nil {
		t.Fatal(err)
	}
	if d.Duration != 90*time.Second {
		t.Errorf("parsed %v", d.Duration)
	}

	if err := d.UnmarshalText([]byte("-3s")); err == nil {
		t.Error("negative duration accepted")
	}
	if err := d.UnmarshalText([]byte("soon")); err == nil {
		t.Error("junk duration accepted")
	}

	text, err := Duration{3 * time.Second}.MarshalText()
	if err != nil || string(text) != "3s" {
		t.Errorf("MarshalText = %q, %v", text, err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"latitude", func(c *Config) { c.Location.Latitude = 91 }},
		{"longitude", func(c *Config) { c.Location.Longitude = -181 }},
		{"refresh too short", func(c *Config) { c.Weather.RefreshInterval = Duration{30 * time.Second} }},
		{"zero debounce", func(c *Config) { c.Input.Debounce = Duration{0} }},
		{"long press under debounce", func(c *Config) { c.Input.LongPress = Duration{100 * time.Millisecond} }},
		{"zero blink", func(c *Config) { c.Display.BlinkInterval = Duration{0} }},
		{"zero advance", func(c *Config) { c.Display.AdvanceInterval = Duration{0} }},
		{"zero tick", func(c *Config) { c.General.TickInterval = Duration{0} }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: invalid config accepted", tc.name)
		}
	}
}
