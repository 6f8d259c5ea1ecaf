// Package nav owns the application state machine: current screen, navigation
// mode, and display power. It consumes classified button events and elapsed
// timer signals, and produces the next state plus the minimum redraw scope
// (none, header-only, or full).
package nav

// Mode partitions the screens into two navigation rings.
type Mode int

const (
	ModeWeather Mode = iota
	ModeSettings
)

// String returns the mode name for logs.
func (m Mode) String() string {
	if m == ModeSettings {
		return "settings"
	}
	return "weather"
}

// Screen enumerates the nine fixed screens.
type Screen int

const (
	ScreenHourly Screen = iota
	ScreenHourly2
	ScreenConditions
	ScreenDaily
	ScreenSettings
	ScreenAbout
	ScreenDemo
	ScreenDemo2
	ScreenDemo3
)

var screenNames = [...]string{
	"hourly", "hourly2", "conditions", "daily",
	"settings", "about", "demo", "demo2", "demo3",
}

// String returns the screen name for logs.
func (s Screen) String() string {
	if int(s) < len(screenNames) {
		return screenNames[s]
	}
	return "unknown"
}

// Direction is a navigation step within a mode's ring. On the device the
// Left button moves forward and Right moves backward.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// screenOrder is the fixed cyclic ordering per mode.
var screenOrder = map[Mode][]Screen{
	ModeWeather:  {ScreenHourly, ScreenHourly2, ScreenConditions, ScreenDaily},
	ModeSettings: {ScreenSettings, ScreenAbout, ScreenDemo, ScreenDemo2, ScreenDemo3},
}

// headerScreens are the screens that draw the location/time header and
// therefore take part in the colon blink.
var headerScreens = map[Screen]bool{
	ScreenHourly:     true,
	ScreenHourly2:    true,
	ScreenConditions: true,
	ScreenDaily:      true,
}

type navKey struct {
	mode Mode
	from Screen
	dir  Direction
}

// transitions maps (mode, screen, direction) to the next screen. Building
// the table up front keeps Step free of branching and lets tests walk every
// pair exhaustively.
var transitions = buildTransitions()

func buildTransitions() map[navKey]Screen {
	t := make(map[navKey]Screen)
	for mode, ring := range screenOrder {
		n := len(ring)
		for i, s := range ring {
			t[navKey{mode, s, Forward}] = ring[(i+1)%n]
			t[navKey{mode, s, Backward}] = ring[(i-1+n)%n]
		}
	}
	return t
}

// HomeScreen returns the first screen of a mode's ring.
func HomeScreen(m Mode) Screen {
	return screenOrder[m][0]
}

// Next returns the screen one step in dir from s within mode m. If s is not
// a member of m's ring it falls back to the ring's home screen, mirroring the
// firmware's default cases.
func Next(m Mode, s Screen, dir Direction) Screen {
	if n, ok := transitions[navKey{m, s, dir}]; ok {
		return n
	}
	return HomeScreen(m)
}

// ModeOf returns the mode whose ring contains s.
func ModeOf(s Screen) Mode {
	for _, sc := range screenOrder[ModeWeather] {
		if sc == s {
			return ModeWeather
		}
	}
	return ModeSettings
}

// InMode reports whether s is a member of m's ring.
func InMode(s Screen, m Mode) bool {
	return ModeOf(s) == m
}

// HasHeader reports whether s draws the location/time header.
func HasHeader(s Screen) bool {
	return headerScreens[s]
}

// Index returns the position of s within m's ring and the ring length, for
// the screen indicator dots.
func Index(s Screen, m Mode) (pos, count int) {
	ring := screenOrder[m]
	for i, sc := range ring {
		if sc == s {
			return i, len(ring)
		}
	}
	return 0, len(ring)
}
