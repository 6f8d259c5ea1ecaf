package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/weather-reporter/config.toml
//  2. ~/.config/weather-reporter/config.toml
//
// If no file exists, returns DefaultConfig() with environment overrides.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if err := applyEnvOverrides(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration. The timings mirror the
// original device firmware: five-minute refresh, three-second auto-advance
// (disabled until toggled), half-second colon blink.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel:     "info",
			TickInterval: Duration{50 * time.Millisecond},
		},
		Location: LocationConfig{
			Label:     "Melbourne",
			Latitude:  -37.8136,
			Longitude: 144.9631,
		},
		Weather: WeatherConfig{
			RefreshInterval: Duration{5 * time.Minute},
			RequestTimeout:  Duration{10 * time.Second},
		},
		Input: InputConfig{
			Debounce:  Duration{200 * time.Millisecond},
			LongPress: Duration{800 * time.Millisecond},
		},
		Display: DisplayConfig{
			Theme:           "default",
			AutoAdvance:     false,
			AdvanceInterval: Duration{3 * time.Second},
			BlinkInterval:   Duration{500 * time.Millisecond},
			SPIDevice:       "",
			DCPin:           "GPIO25",
			ResetPin:        "GPIO24",
			BacklightPin:    "GPIO18",
			LeftPin:         "GPIO5",
			RightPin:        "GPIO6",
			SelectPin:       "GPIO13",
		},
	}
}

// envOverrides is the flat set of environment knobs, mostly for secrets and
// deployments where editing the TOML file is inconvenient. A .env file in
// the working directory is honored first.
type envOverrides struct {
	APIKey    string  `envconfig:"API_KEY"`
	Label     string  `envconfig:"LOCATION"`
	Latitude  float64 `envconfig:"LATITUDE"`
	Longitude float64 `envconfig:"LONGITUDE"`
	LogLevel  string  `envconfig:"LOG_LEVEL"`
}

func applyEnvOverrides(cfg *Config) error {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	var ov envOverrides
	if err := envconfig.Process("weather", &ov); err != nil {
		return err
	}
	if ov.APIKey != "" {
		cfg.Weather.APIKey = ov.APIKey
	}
	if ov.Label != "" {
		cfg.Location.Label = ov.Label
	}
	if ov.Latitude != 0 {
		cfg.Location.Latitude = ov.Latitude
	}
	if ov.Longitude != 0 {
		cfg.Location.Longitude = ov.Longitude
	}
	if ov.LogLevel != "" {
		cfg.General.LogLevel = ov.LogLevel
	}
	return nil
}

func configSearchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "weather-reporter", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "weather-reporter", "config.toml"))
	}
	return paths
}
