// weather-reporter drives a 320x240 TFT weather display with three-button
// navigation, either on real Raspberry Pi hardware or in a terminal
// simulator.
//
// Usage:
//
//	weather-reporter [flags]
//
// Flags:
//
//	-config string  Path to configuration file (default: ~/.config/weather-reporter/config.toml)
//	-sim            Run the terminal simulator instead of the hardware backend
//	-use-mocks      Use generated weather data instead of the OpenWeatherMap API
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/weather-reporter/pkg/app"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/clock"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/config"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/fb"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/hw"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/input"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/render"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/sched"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/sim"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/sysinfo"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/theme"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/weather"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		runSim      = flag.Bool("sim", false, "Run the terminal simulator instead of the hardware backend")
		useMocks    = flag.Bool("use-mocks", false, "Use generated weather data instead of the OpenWeatherMap API")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("weather-reporter %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg.General.LogLevel, *verbose, *runSim)
	slog.SetDefault(log)

	if err := run(cfg, log, *runSim, *useMocks); err != nil && err != context.Canceled {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the process logger. The simulator owns the terminal, so
// its logs go to a file instead of stderr.
func newLogger(level string, verbose, simMode bool) *slog.Logger {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	if verbose {
		lvl = slog.LevelDebug
	}

	out := os.Stderr
	if simMode {
		if f, err := os.OpenFile("weather-reporter.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			out = f
		}
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl}))
}

func run(cfg *config.Config, log *slog.Logger, simMode, useMocks bool) error {
	if err := theme.LoadDir(cfg.Display.ThemeDir); err != nil {
		return fmt.Errorf("themes: %w", err)
	}
	pal := theme.Get(cfg.Display.Theme)

	var provider weather.Provider
	if useMocks {
		provider = weather.NewMock()
	} else {
		if cfg.Weather.APIKey == "" {
			return fmt.Errorf("no API key configured; set WEATHER_API_KEY or weather.api_key, or pass -use-mocks")
		}
		provider = weather.NewClient(weather.ClientConfig{
			APIKey:  cfg.Weather.APIKey,
			Lat:     cfg.Location.Latitude,
			Lon:     cfg.Location.Longitude,
			BaseURL: cfg.Weather.BaseURL,
			Timeout: cfg.Weather.RequestTimeout.Duration,
		})
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	clk := clock.NewSystem()

	var (
		dev  fb.Device
		pins input.PinSampler
		ui   func(context.CancelFunc) error
	)
	if simMode {
		disp := sim.NewDisplay(render.Width, render.Height)
		simPins := sim.NewPins()
		dev, pins = disp, simPins
		ui = func(cancel context.CancelFunc) error {
			p := tea.NewProgram(sim.NewModel(disp, simPins, cancel), tea.WithAltScreen())
			disp.OnFrame(func() { p.Send(sim.FrameMsg{}) })
			_, err := p.Run()
			return err
		}
	} else {
		backend, err := hw.Open(cfg.Display.SPIDevice, hw.Pins{
			DC:        cfg.Display.DCPin,
			Reset:     cfg.Display.ResetPin,
			Backlight: cfg.Display.BacklightPin,
			Left:      cfg.Display.LeftPin,
			Right:     cfg.Display.RightPin,
			Select:    cfg.Display.SelectPin,
		})
		if err != nil {
			return err
		}
		defer backend.Close()
		dev, pins = backend.Panel, backend.Buttons
	}

	surf, err := fb.New(render.Width, render.Height, dev)
	if err != nil {
		return err
	}

	disp := render.NewDispatcher(render.Config{
		Surface: surf,
		Theme:   pal,
		Wall:    clk,
		Location: render.Location{
			Label: cfg.Location.Label,
			Lat:   cfg.Location.Latitude,
			Lon:   cfg.Location.Longitude,
		},
		Host:          sysinfo.Host{},
		Version:       version,
		RefreshPeriod: cfg.Weather.RefreshInterval.Duration,
		Logger:        log,
	})

	loop := app.New(app.Config{
		Clock:      clk,
		Pins:       pins,
		Provider:   provider,
		Dispatcher: disp,
		Tracker: input.TrackerConfig{
			DebounceMs:  cfg.Input.Debounce.Milliseconds(),
			LongPressMs: cfg.Input.LongPress.Milliseconds(),
		},
		Timers: sched.Config{
			RefreshMs: cfg.Weather.RefreshInterval.Milliseconds(),
			AdvanceMs: cfg.Display.AdvanceInterval.Milliseconds(),
			BlinkMs:   cfg.Display.BlinkInterval.Milliseconds(),
		},
		TickInterval: cfg.General.TickInterval.Duration,
		AutoAdvance:  cfg.Display.AutoAdvance,
		Logger:       log,
	})

	log.Info("starting",
		"version", version,
		"location", cfg.Location.Label,
		"provider", provider.Name(),
		"simulator", simMode)

	if ui != nil {
		// The control loop runs beside the simulator UI; quitting the UI
		// cancels the loop and vice versa.
		errCh := make(chan error, 1)
		go func() { errCh <- loop.Run(ctx) }()
		if err := ui(cancel); err != nil {
			return err
		}
		cancel()
		return <-errCh
	}
	return loop.Run(ctx)
}
