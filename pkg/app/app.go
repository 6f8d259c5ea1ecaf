// Package app runs the device control loop: one goroutine sampling buttons,
// evaluating timers, stepping navigation, and dispatching redraws, roughly
// every 50ms.
//
// The loop is deliberately single-threaded and cooperative. A weather fetch
// blocks the whole loop, exactly as it did on the original device; button
// presses during a fetch are picked up on the next tick from the latched pin
// levels.
package app

import (
	"context"
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/weather-reporter/pkg/clock"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/input"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/nav"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/render"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/sched"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/weather"
)

// Config bundles the loop's collaborators.
type Config struct {
	Clock        clock.Clock
	Pins         input.PinSampler
	Provider     weather.Provider
	Dispatcher   *render.Dispatcher
	Tracker      input.TrackerConfig
	Timers       sched.Config
	TickInterval time.Duration
	AutoAdvance  bool
	Logger       *slog.Logger
}

// App owns the control loop state.
type App struct {
	clk     clock.Clock
	tracker *input.Tracker
	timers  *sched.Scheduler
	machine *nav.Machine
	disp    *render.Dispatcher
	prov    weather.Provider
	log     *slog.Logger

	tick time.Duration
	snap *weather.Snapshot
}

// New wires the control loop. The scheduler seeds its timers at the current
// tick so the first refresh comes from the explicit boot fetch, not a due
// timer.
func New(cfg Config) *App {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 50 * time.Millisecond
	}
	cfg.Timers.AdvanceEnabled = cfg.AutoAdvance

	return &App{
		clk:     cfg.Clock,
		tracker: input.NewTracker(cfg.Pins, cfg.Tracker),
		timers:  sched.New(cfg.Timers, cfg.Clock.NowMillis()),
		machine: nav.NewMachine(nav.NewState(cfg.AutoAdvance)),
		disp:    cfg.Dispatcher,
		prov:    cfg.Provider,
		log:     cfg.Logger,
		tick:    cfg.TickInterval,
	}
}

// Snapshot returns the current weather snapshot, which may be nil before the
// first successful fetch.
func (a *App) Snapshot() *weather.Snapshot { return a.snap }

// State returns the current navigation state.
func (a *App) State() nav.State { return a.machine.State() }

// Run executes the boot sequence and then ticks until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	if err := a.disp.Splash("Fetching weather..."); err != nil {
		a.log.Warn("splash render failed", "err", err)
	}

	// Boot fetch. Failure is not fatal; the screens render their
	// placeholder until a later refresh succeeds.
	a.refresh(ctx)

	st := a.machine.State()
	if err := a.disp.Render(st, nav.InvalidateFull, nav.PowerNone, a.snap); err != nil {
		a.log.Warn("initial render failed", "err", err)
	}

	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.log.Info("control loop stopping")
			return ctx.Err()
		case <-ticker.C:
			a.step(ctx)
		}
	}
}

// step is one iteration of the control loop.
func (a *App) step(ctx context.Context) {
	now := a.clk.NowMillis()

	ev := a.tracker.Sample(now)
	if ev.Any() {
		a.log.Debug("button event",
			"left", ev.Left.Kind.String(),
			"right", ev.Right.Kind.String(),
			"select", ev.Select.Kind.String())
	}

	due := a.timers.Tick(now)

	// The fetch blocks the loop; the refresh timer is marked fired on the
	// attempt, not the outcome, so a failing provider is retried one full
	// period later rather than every tick.
	refreshed := false
	if due.Refresh {
		refreshed = a.refresh(ctx)
		a.timers.MarkFired(sched.Refresh, a.clk.NowMillis())
	}

	res := a.machine.Step(nav.TickInput{
		Events:     ev,
		AdvanceDue: due.Advance,
		BlinkDue:   due.Blink,
		Refreshed:  refreshed,
	})
	if res.AdvanceConsumed {
		a.timers.MarkFired(sched.Advance, now)
	}
	if res.BlinkConsumed {
		a.timers.MarkFired(sched.Blink, now)
	}

	st := a.machine.State()
	if res.Invalidation != nav.InvalidateNone {
		a.log.Debug("redraw", "scope", res.Invalidation.String(), "screen", st.Screen.String())
	}
	if err := a.disp.Render(st, res.Invalidation, res.Power, a.snap); err != nil {
		a.log.Warn("render failed", "screen", st.Screen.String(), "err", err)
	}
}

// refresh performs one blocking provider fetch and swaps the snapshot on
// success. The old snapshot is kept on failure so the display never goes
// backwards from data to placeholder.
func (a *App) refresh(ctx context.Context) bool {
	started := time.Now()
	snap, err := a.prov.Refresh(ctx)
	if err != nil {
		a.log.Warn("weather refresh failed",
			"provider", a.prov.Name(),
			"elapsed", time.Since(started).Round(time.Millisecond),
			"err", err)
		return false
	}

	a.snap = snap
	a.disp.NoteRefreshed()
	a.log.Info("weather refreshed",
		"provider", a.prov.Name(),
		"elapsed", time.Since(started).Round(time.Millisecond),
		"hourly", len(snap.Hourly),
		"daily", len(snap.Daily))
	return true
}
