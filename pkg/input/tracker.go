package input

// TrackerConfig holds the timing thresholds for event classification.
type TrackerConfig struct {
	DebounceMs  int64 // minimum gap between accepted events
	LongPressMs int64 // hold time before Select fires a long press
}

// DefaultTrackerConfig matches the device firmware defaults.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{DebounceMs: 200, LongPressMs: 800}
}

// Tracker owns all per-button state and turns raw pin levels into Events.
// It is not safe for concurrent use; the control loop is its only caller.
type Tracker struct {
	pins PinSampler
	cfg  TrackerConfig

	lastAccepted int64 // timestamp of the last accepted event, shared across controls
	prevLeft     bool
	prevRight    bool

	selectHeld     bool
	selectStart    int64
	longPressFired bool
}

// NewTracker returns a tracker reading from pins with the given thresholds.
// The debounce window starts open so a press right after boot is accepted.
func NewTracker(pins PinSampler, cfg TrackerConfig) *Tracker {
	return &Tracker{pins: pins, cfg: cfg, lastAccepted: -cfg.DebounceMs}
}

// Sample reads the pins once and returns at most one event per control.
// now must come from the loop's monotonic clock; all ticks in one loop
// iteration share the same sample.
func (t *Tracker) Sample(now int64) Events {
	left, right, sel := t.pins.Sample()

	var ev Events
	ev.Select = t.classifySelect(sel, now)

	if t.edge(left, &t.prevLeft) && t.debounced(now) {
		ev.Left = Event{Button: ButtonLeft, Kind: KindShortPress}
		t.lastAccepted = now
	}
	if t.edge(right, &t.prevRight) && t.debounced(now) {
		ev.Right = Event{Button: ButtonRight, Kind: KindShortPress}
		t.lastAccepted = now
	}
	return ev
}

// edge updates the stored level and reports a released-to-pressed transition.
func (t *Tracker) edge(raw bool, prev *bool) bool {
	fell := raw && !*prev
	*prev = raw
	return fell
}

func (t *Tracker) debounced(now int64) bool {
	return now-t.lastAccepted >= t.cfg.DebounceMs
}

// classifySelect implements the dual short/long classification. Exactly one
// of short or long press fires per physical press-and-release cycle; a long
// press suppresses the eventual release.
func (t *Tracker) classifySelect(raw bool, now int64) Event {
	if raw {
		if !t.selectHeld && !t.longPressFired {
			t.selectHeld = true
			t.selectStart = now
		} else if t.selectHeld && now-t.selectStart >= t.cfg.LongPressMs {
			t.selectHeld = false
			t.longPressFired = true
			t.lastAccepted = now
			return Event{Button: ButtonSelect, Kind: KindLongPress}
		}
		return Event{}
	}

	// Released.
	if t.selectHeld && now-t.selectStart < t.cfg.LongPressMs {
		t.selectHeld = false
		t.lastAccepted = now
		return Event{Button: ButtonSelect, Kind: KindShortPress}
	}
	t.selectHeld = false
	t.longPressFired = false
	return Event{}
}
