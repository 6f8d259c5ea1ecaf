package nav

import "gitlab.com/tinyland/lab/weather-reporter/pkg/input"

// Invalidation is the minimum redraw scope required after a tick.
type Invalidation int

const (
	InvalidateNone Invalidation = iota
	InvalidateHeader
	InvalidateFull
)

// String returns the invalidation name for logs.
func (i Invalidation) String() string {
	switch i {
	case InvalidateHeader:
		return "header"
	case InvalidateFull:
		return "full"
	}
	return "none"
}

// Power signals a display-controller power command alongside a transition.
type Power int

const (
	PowerNone Power = iota
	PowerOn
	PowerOff
)

// State is the application state. It is created once at startup and mutated
// only by the Machine.
type State struct {
	Screen       Screen
	Mode         Mode
	DisplayOn    bool
	AutoAdvance  bool
	ColonVisible bool
}

// NewState returns the boot state: hourly screen, weather mode, display on.
func NewState(autoAdvance bool) State {
	return State{
		Screen:       ScreenHourly,
		Mode:         ModeWeather,
		DisplayOn:    true,
		AutoAdvance:  autoAdvance,
		ColonVisible: true,
	}
}

// TickInput is everything the machine consumes in one tick: the classified
// button events and the elapsed timer domains. Refreshed is set by the loop
// after it has completed the blocking weather fetch for this tick.
type TickInput struct {
	Events     input.Events
	AdvanceDue bool
	BlinkDue   bool
	Refreshed  bool
}

// Result is the transient outcome of one tick, consumed immediately by the
// render dispatcher and the scheduler.
type Result struct {
	Invalidation Invalidation
	Power        Power

	// AdvanceConsumed and BlinkConsumed tell the loop which timer domains
	// to mark fired this tick.
	AdvanceConsumed bool
	BlinkConsumed   bool
}

// Machine evaluates navigation transitions in a fixed priority order, so at
// most one state-changing transition occurs per tick.
type Machine struct {
	state State
}

// NewMachine returns a machine starting from st.
func NewMachine(st State) *Machine {
	return &Machine{state: st}
}

// State returns a copy of the current application state.
func (m *Machine) State() State {
	return m.state
}

// Step consumes one tick's input. Transitions are evaluated highest priority
// first and the first match wins: select long-press, select short-press,
// directional press, auto-advance, blink. A completed refresh then widens
// the redraw to the full screen whatever won the tick.
func (m *Machine) Step(in TickInput) Result {
	// A due blink toggles the colon regardless of which transition wins,
	// as long as the display is lit. The header redraw itself only happens
	// when no higher-priority transition claimed the tick.
	var res Result
	if in.BlinkDue && m.state.DisplayOn {
		m.state.ColonVisible = !m.state.ColonVisible
		res.BlinkConsumed = true
	}

	switch {
	case in.Events.Select.Kind == input.KindLongPress:
		m.toggleMode(&res)

	case in.Events.Select.Kind == input.KindShortPress:
		m.togglePower(&res)

	case in.Events.Left.Kind != input.KindNone || in.Events.Right.Kind != input.KindNone:
		m.directional(in.Events, &res)

	case in.AdvanceDue && m.state.AutoAdvance && m.state.DisplayOn:
		m.state.Screen = Next(m.state.Mode, m.state.Screen, Forward)
		res.Invalidation = InvalidateFull
		res.AdvanceConsumed = true

	case in.BlinkDue && m.state.DisplayOn && HasHeader(m.state.Screen):
		res.Invalidation = InvalidateHeader
	}

	// Fresh data must reach the screen this tick; a header-only blink redraw
	// on the same tick would otherwise leave the stale body up for a whole
	// refresh period.
	if in.Refreshed && m.state.DisplayOn {
		res.Invalidation = InvalidateFull
	}
	return res
}

// toggleMode flips between the weather and settings rings, landing on the
// target ring's home screen.
func (m *Machine) toggleMode(res *Result) {
	if m.state.Mode == ModeWeather {
		m.state.Mode = ModeSettings
	} else {
		m.state.Mode = ModeWeather
	}
	m.state.Screen = HomeScreen(m.state.Mode)
	res.Invalidation = InvalidateFull
}

// togglePower turns the display off, or on again. Turning on always returns
// to the weather home screen.
func (m *Machine) togglePower(res *Result) {
	if m.state.DisplayOn {
		m.state.DisplayOn = false
		res.Power = PowerOff
		res.Invalidation = InvalidateNone
		return
	}
	m.wake(res)
}

// directional handles Left/Right presses. With the display off any
// directional press only wakes the device; it does not also navigate.
func (m *Machine) directional(ev input.Events, res *Result) {
	if !m.state.DisplayOn {
		m.wake(res)
		return
	}

	dir := Forward
	if ev.Left.Kind == input.KindNone {
		dir = Backward
	}
	m.state.Screen = Next(m.state.Mode, m.state.Screen, dir)
	res.Invalidation = InvalidateFull
	// Manual navigation restarts the auto-advance countdown.
	res.AdvanceConsumed = true
}

func (m *Machine) wake(res *Result) {
	m.state.DisplayOn = true
	m.state.Mode = ModeWeather
	m.state.Screen = ScreenHourly
	res.Power = PowerOn
	res.Invalidation = InvalidateFull
	// The auto-advance countdown restarts from the wake moment; a timer
	// that came due during sleep must not page away immediately.
	res.AdvanceConsumed = true
}

// SetAutoAdvance flips the auto-advance flag in state.
func (m *Machine) SetAutoAdvance(on bool) {
	m.state.AutoAdvance = on
}
