package input

import "testing"

// fakePins is a scriptable pin sampler.
type fakePins struct {
	left, right, sel bool
}

func (f *fakePins) Sample() (bool, bool, bool) { return f.left, f.right, f.sel }

func newTestTracker() (*Tracker, *fakePins) {
	pins := &fakePins{}
	return NewTracker(pins, DefaultTrackerConfig()), pins
}

func TestLeftPressFiresOnEdge(t *testing.T) {
	tr, pins := newTestTracker()

	// Start from a long-idle baseline so the debounce window has passed.
	tr.Sample(1000)

	pins.left = true
	ev := tr.Sample(2000)
	if ev.Left.Kind != KindShortPress {
		t.Fatalf("expected left short press, got %v", ev.Left.Kind)
	}

	// Held level must not refire.
	ev = tr.Sample(2050)
	if ev.Left.Kind != KindNone {
		t.Errorf("held level refired: %v", ev.Left.Kind)
	}

	// Release and press again after the debounce window.
	pins.left = false
	tr.Sample(2100)
	pins.left = true
	ev = tr.Sample(2500)
	if ev.Left.Kind != KindShortPress {
		t.Errorf("second press after release did not fire: %v", ev.Left.Kind)
	}
}

func TestPressRightAfterBootFires(t *testing.T) {
	tr, pins := newTestTracker()

	// The very first sample sees the button already down; the debounce
	// window must not swallow it.
	pins.left = true
	if ev := tr.Sample(0); ev.Left.Kind != KindShortPress {
		t.Errorf("press at boot did not fire: %v", ev.Left.Kind)
	}
}

func TestDebounceSuppressesRapidPresses(t *testing.T) {
	tr, pins := newTestTracker()
	tr.Sample(1000)

	pins.left = true
	if ev := tr.Sample(2000); ev.Left.Kind != KindShortPress {
		t.Fatalf("first press did not fire")
	}
	pins.left = false
	tr.Sample(2020)

	// New edge only 80ms after the accepted press: inside the 200ms window.
	pins.left = true
	if ev := tr.Sample(2080); ev.Left.Kind != KindNone {
		t.Errorf("press inside debounce window fired: %v", ev.Left.Kind)
	}
}

func TestDebounceIsSharedAcrossButtons(t *testing.T) {
	tr, pins := newTestTracker()
	tr.Sample(1000)

	pins.left = true
	if ev := tr.Sample(2000); ev.Left.Kind != KindShortPress {
		t.Fatalf("left press did not fire")
	}

	// A right edge 100ms after the accepted left press is rejected by the
	// shared window.
	pins.right = true
	if ev := tr.Sample(2100); ev.Right.Kind != KindNone {
		t.Errorf("right press inside shared debounce window fired: %v", ev.Right.Kind)
	}
}

func TestSelectShortPressFiresOnRelease(t *testing.T) {
	tr, pins := newTestTracker()
	tr.Sample(1000)

	pins.sel = true
	if ev := tr.Sample(2000); ev.Select.Kind != KindNone {
		t.Fatalf("select fired before release: %v", ev.Select.Kind)
	}
	if ev := tr.Sample(2400); ev.Select.Kind != KindNone {
		t.Fatalf("select fired while held under threshold: %v", ev.Select.Kind)
	}

	pins.sel = false
	ev := tr.Sample(2500)
	if ev.Select.Kind != KindShortPress {
		t.Errorf("expected short press on release, got %v", ev.Select.Kind)
	}
}

func TestSelectLongPressFiresWhileHeld(t *testing.T) {
	tr, pins := newTestTracker()
	tr.Sample(1000)

	pins.sel = true
	tr.Sample(2000)
	if ev := tr.Sample(2799); ev.Select.Kind != KindNone {
		t.Fatalf("long press fired early: %v", ev.Select.Kind)
	}
	ev := tr.Sample(2800)
	if ev.Select.Kind != KindLongPress {
		t.Fatalf("expected long press at threshold, got %v", ev.Select.Kind)
	}

	// Continuing to hold must not refire.
	if ev := tr.Sample(3500); ev.Select.Kind != KindNone {
		t.Errorf("held long press refired: %v", ev.Select.Kind)
	}

	// The eventual release fires nothing: one event per press cycle.
	pins.sel = false
	if ev := tr.Sample(4000); ev.Select.Kind != KindNone {
		t.Errorf("release after long press fired: %v", ev.Select.Kind)
	}
}

func TestSelectCycleAfterLongPress(t *testing.T) {
	tr, pins := newTestTracker()
	tr.Sample(1000)

	pins.sel = true
	tr.Sample(2000)
	if ev := tr.Sample(2900); ev.Select.Kind != KindLongPress {
		t.Fatalf("long press did not fire")
	}
	pins.sel = false
	tr.Sample(3000)

	// A fresh press-and-release classifies independently.
	pins.sel = true
	tr.Sample(4000)
	pins.sel = false
	ev := tr.Sample(4300)
	if ev.Select.Kind != KindShortPress {
		t.Errorf("press cycle after long press did not classify: %v", ev.Select.Kind)
	}
}

func TestEventsAny(t *testing.T) {
	var ev Events
	if ev.Any() {
		t.Error("empty events reported Any")
	}
	ev.Right = Event{Button: ButtonRight, Kind: KindShortPress}
	if !ev.Any() {
		t.Error("non-empty events reported none")
	}
}
