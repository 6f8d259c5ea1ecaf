package render

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/weather-reporter/pkg/clock"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/icons"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/nav"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/theme"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/weather"
)

// Location describes the configured observation point, shown in the header
// and on the settings screen.
type Location struct {
	Label string
	Lat   float64
	Lon   float64
}

// HostInfo supplies the settings screen's network and uptime lines. It is an
// interface so the simulator and tests can stub it.
type HostInfo interface {
	LocalIP() string
	Uptime() (time.Duration, bool)
}

// Dispatcher turns (state, invalidation, snapshot) into draw calls and
// flushes. It owns the offscreen buffer through the Surface and is the only
// writer to it.
type Dispatcher struct {
	surf Surface
	pal  theme.Theme
	wall clock.WallClock
	loc  Location
	host HostInfo
	log  *slog.Logger

	version       string
	refreshPeriod time.Duration
	lastUpdate    string // wall-clock HH:MM of the last successful fetch
}

// Config bundles the dispatcher's collaborators.
type Config struct {
	Surface       Surface
	Theme         theme.Theme
	Wall          clock.WallClock
	Location      Location
	Host          HostInfo
	Version       string
	RefreshPeriod time.Duration
	Logger        *slog.Logger
}

// NewDispatcher returns a dispatcher drawing with the given palette onto
// surf.
func NewDispatcher(cfg Config) *Dispatcher {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Dispatcher{
		surf:          cfg.Surface,
		pal:           cfg.Theme,
		wall:          cfg.Wall,
		loc:           cfg.Location,
		host:          cfg.Host,
		version:       cfg.Version,
		refreshPeriod: cfg.RefreshPeriod,
		log:           cfg.Logger,
	}
}

// NoteRefreshed records the wall-clock time of a successful fetch for the
// settings screen.
func (d *Dispatcher) NoteRefreshed() {
	if now, ok := d.wall.Wall(); ok {
		d.lastUpdate = now.Format("15:04")
	}
}

// Render performs the redraw demanded by inv, plus any display power command
// that accompanied the transition. The power command is issued regardless of
// the redraw scope: turning the panel off redraws nothing.
func (d *Dispatcher) Render(st nav.State, inv nav.Invalidation, power nav.Power, snap *weather.Snapshot) error {
	switch power {
	case nav.PowerOn:
		if err := d.surf.Power(true); err != nil {
			d.log.Warn("display wake failed", "err", err)
		}
	case nav.PowerOff:
		if err := d.surf.Power(false); err != nil {
			d.log.Warn("display sleep failed", "err", err)
		}
	}

	switch inv {
	case nav.InvalidateNone:
		return nil

	case nav.InvalidateHeader:
		d.drawHeader(st, snap)
		return d.surf.Flush(HeaderRect)

	case nav.InvalidateFull:
		d.drawScreen(st, snap)
		return d.surf.Flush(image.Rect(0, 0, Width, Height))
	}
	return nil
}

// drawScreen clears the buffer and draws the complete layout for the current
// screen.
func (d *Dispatcher) drawScreen(st nav.State, snap *weather.Snapshot) {
	d.surf.Clear(d.pal.Background)

	switch st.Screen {
	case nav.ScreenHourly:
		d.drawHourly(st, snap)
	case nav.ScreenHourly2:
		d.drawHourly2(st, snap)
	case nav.ScreenConditions:
		d.drawConditions(st, snap)
	case nav.ScreenDaily:
		d.drawDaily(st, snap)
	case nav.ScreenSettings:
		d.drawSettings(st)
	case nav.ScreenAbout:
		d.drawAbout(st)
	case nav.ScreenDemo:
		d.drawDemo(st)
	case nav.ScreenDemo2:
		d.drawDemo2(st)
	case nav.ScreenDemo3:
		d.drawDemo3(st)
	}
}

// Splash draws the boot screen shown before the first fetch completes.
func (d *Dispatcher) Splash(status string) error {
	d.surf.Clear(d.pal.Background)
	d.surf.Text("Weather Reporter", 10, 35, FontTitle, AnchorTL, d.pal.Subtle)
	d.surf.Text(d.loc.Label, 10, 70, FontBody, AnchorTL, d.pal.Text)
	if status != "" {
		d.surf.Text(status, 10, 175, FontBody, AnchorTL, d.pal.Subtle)
	}
	return d.surf.Flush(image.Rect(0, 0, Width, Height))
}

// drawPlaceholder renders the fixed "no data" layout used whenever a weather
// screen lacks valid data. Nothing partially populated is ever shown.
func (d *Dispatcher) drawPlaceholder(msg string) {
	d.surf.Text(msg, Width/2, 120, FontTitle, AnchorMC, d.pal.Error)
}

// drawIcon replays an icon command list onto the surface.
func (d *Dispatcher) drawIcon(cmds []icons.Command) {
	for _, c := range cmds {
		switch c.Op {
		case icons.OpFillCircle:
			d.surf.FillCircle(c.X1, c.Y1, c.R, c.Color)
		case icons.OpStrokeCircle:
			d.surf.StrokeCircle(c.X1, c.Y1, c.R, c.Color)
		case icons.OpFillTriangle:
			d.surf.FillTriangle(c.X1, c.Y1, c.X2, c.Y2, c.X3, c.Y3, c.Color)
		case icons.OpLine:
			d.surf.Line(c.X1, c.Y1, c.X2, c.Y2, c.Color)
		}
	}
}

// fmtTemp renders a temperature with no decimals, as the original device
// fonts did.
func fmtTemp(t float64) string {
	return fmt.Sprintf("%.0f", t)
}
