// Package input samples the three device buttons and classifies raw level
// changes into debounced, press-length-aware events.
//
// Left and Right are edge triggered: a falling edge (the lines are active
// low) produces a short press if it clears the debounce window, otherwise it
// is swallowed. Select is level triggered with dual classification: holding
// it past the long-press threshold fires a long press exactly once, and a
// release before the threshold fires a short press.
package input

// Button identifies one of the three physical controls.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonSelect
)

// String returns the button name for logs.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonSelect:
		return "select"
	}
	return "unknown"
}

// Kind classifies a press. KindNone is the zero value and means no event
// fired for that control this tick.
type Kind int

const (
	KindNone Kind = iota
	KindShortPress
	KindLongPress
)

// String returns the kind name for logs.
func (k Kind) String() string {
	switch k {
	case KindShortPress:
		return "short"
	case KindLongPress:
		return "long"
	}
	return "none"
}

// Event is one classified input event. Events are transient: they are
// produced by Sample and consumed by the navigation machine within the same
// tick.
type Event struct {
	Button Button
	Kind   Kind
}

// Events holds at most one event per control for a single tick.
type Events struct {
	Left   Event
	Right  Event
	Select Event
}

// Any reports whether any control fired this tick.
func (e Events) Any() bool {
	return e.Left.Kind != KindNone || e.Right.Kind != KindNone || e.Select.Kind != KindNone
}

// PinSampler reads the instantaneous logical state of the three buttons.
// Implementations invert the active-low electrical level: true means the
// button is held down.
type PinSampler interface {
	Sample() (left, right, sel bool)
}
