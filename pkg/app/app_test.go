package app

import (
	"context"
	"errors"
	"image"
	"sync/atomic"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/weather-reporter/pkg/clock"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/input"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/nav"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/render"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/sched"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/theme"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/weather"
)

// nullSurface satisfies render.Surface and counts flushes.
type nullSurface struct {
	flushes atomic.Int64
}

func (s *nullSurface) Clear(theme.Color)                                        {}
func (s *nullSurface) FillRect(_, _, _, _ int, _ theme.Color)                   {}
func (s *nullSurface) StrokeRect(_, _, _, _ int, _ theme.Color)                 {}
func (s *nullSurface) FillCircle(_, _, _ int, _ theme.Color)                    {}
func (s *nullSurface) StrokeCircle(_, _, _ int, _ theme.Color)                  {}
func (s *nullSurface) FillTriangle(_, _, _, _, _, _ int, _ theme.Color)         {}
func (s *nullSurface) Line(_, _, _, _ int, _ theme.Color)                       {}
func (s *nullSurface) Text(_ string, _, _ int, _ render.Font, _ render.Anchor, _ theme.Color) {
}
func (s *nullSurface) TextWidth(string, render.Font) int { return 0 }
func (s *nullSurface) Flush(image.Rectangle) error {
	s.flushes.Add(1)
	return nil
}
func (s *nullSurface) Power(bool) error { return nil }

// windowPins reports the left button held during [from, to) after start.
type windowPins struct {
	start    time.Time
	from, to time.Duration
}

func (p *windowPins) Sample() (bool, bool, bool) {
	el := time.Since(p.start)
	return el >= p.from && el < p.to, false, false
}

type idlePins struct{}

func (idlePins) Sample() (bool, bool, bool) { return false, false, false }

func newTestApp(pins input.PinSampler, prov weather.Provider, timers sched.Config, autoAdvance bool) (*App, *nullSurface) {
	surf := &nullSurface{}
	clk := clock.NewSystem()
	disp := render.NewDispatcher(render.Config{
		Surface:       surf,
		Theme:         theme.Default(),
		Wall:          clk,
		Location:      render.Location{Label: "Testville"},
		Version:       "test",
		RefreshPeriod: time.Minute,
	})
	a := New(Config{
		Clock:        clk,
		Pins:         pins,
		Provider:     prov,
		Dispatcher:   disp,
		Tracker:      input.TrackerConfig{DebounceMs: 10, LongPressMs: 50},
		Timers:       timers,
		TickInterval: 2 * time.Millisecond,
		AutoAdvance:  autoAdvance,
	})
	return a, surf
}

func runFor(t *testing.T, a *App, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	time.Sleep(d)
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v", err)
	}
}

func TestBootFetchAndInitialRender(t *testing.T) {
	prov := weather.NewMock()
	a, surf := newTestApp(idlePins{}, prov, sched.Config{RefreshMs: 60_000, AdvanceMs: 60_000, BlinkMs: 60_000}, false)

	runFor(t, a, 30*time.Millisecond)

	if prov.Calls() != 1 {
		t.Errorf("boot fetch calls = %d, want 1", prov.Calls())
	}
	if a.Snapshot() == nil {
		t.Error("snapshot nil after boot fetch")
	}
	// Splash plus the initial full render.
	if surf.flushes.Load() < 2 {
		t.Errorf("flushes = %d, want at least 2", surf.flushes.Load())
	}
	if a.State().Screen != nav.ScreenHourly {
		t.Errorf("idle loop navigated to %v", a.State().Screen)
	}
}

func TestButtonPressNavigates(t *testing.T) {
	pins := &windowPins{start: time.Now(), from: 30 * time.Millisecond, to: 60 * time.Millisecond}
	a, _ := newTestApp(pins, weather.NewMock(), sched.Config{RefreshMs: 60_000, AdvanceMs: 60_000, BlinkMs: 60_000}, false)

	runFor(t, a, 120*time.Millisecond)

	if a.State().Screen != nav.ScreenHourly2 {
		t.Errorf("screen = %v after left press, want hourly2", a.State().Screen)
	}
}

func TestAutoAdvanceCycles(t *testing.T) {
	a, _ := newTestApp(idlePins{}, weather.NewMock(), sched.Config{RefreshMs: 60_000, AdvanceMs: 30, BlinkMs: 60_000}, true)

	runFor(t, a, 120*time.Millisecond)

	st := a.State()
	if st.Screen == nav.ScreenHourly {
		t.Error("auto-advance never fired")
	}
	if st.Mode != nav.ModeWeather {
		t.Errorf("auto-advance left weather mode: %v", st.Mode)
	}
}

func TestFailedRefreshKeepsOldSnapshot(t *testing.T) {
	var calls atomic.Int64
	prov := weather.NewMock()
	boot := weather.SampleSnapshot(time.Now())
	prov.RefreshFunc = func(context.Context) (*weather.Snapshot, error) {
		if calls.Add(1) == 1 {
			return boot, nil
		}
		return nil, errors.New("network down")
	}

	a, _ := newTestApp(idlePins{}, prov, sched.Config{RefreshMs: 30, AdvanceMs: 60_000, BlinkMs: 60_000}, false)
	runFor(t, a, 150*time.Millisecond)

	if calls.Load() < 2 {
		t.Fatalf("refresh calls = %d, want boot plus at least one retry", calls.Load())
	}
	if a.Snapshot() != boot {
		t.Error("failed refresh replaced the snapshot")
	}
}
