// Package sim is the desktop simulator: a terminal stand-in for the TFT
// panel and the three front buttons, so the full control loop can be
// exercised without hardware.
package sim

import (
	"image"
	"image/draw"
	"sync"
	"time"
)

// Display implements the framebuffer's device interface by keeping the most
// recently pushed frame in memory. The terminal UI reads it back for
// preview.
type Display struct {
	mu     sync.Mutex
	frame  *image.RGBA
	on     bool
	notify func()
}

// NewDisplay returns a powered-on w x h display.
func NewDisplay(w, h int) *Display {
	return &Display{
		frame: image.NewRGBA(image.Rect(0, 0, w, h)),
		on:    true,
	}
}

// OnFrame registers a callback invoked after every push or power change.
// The callback must not call back into the display.
func (d *Display) OnFrame(fn func()) {
	d.mu.Lock()
	d.notify = fn
	d.mu.Unlock()
}

// Push copies the given region of frame into the retained image.
func (d *Display) Push(r image.Rectangle, frame *image.RGBA) error {
	d.mu.Lock()
	draw.Draw(d.frame, r, frame, r.Min, draw.Src)
	fn := d.notify
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
	return nil
}

// Power records the panel power state.
func (d *Display) Power(on bool) error {
	d.mu.Lock()
	d.on = on
	fn := d.notify
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
	return nil
}

// Frame returns a copy of the retained frame and the power state.
func (d *Display) Frame() (*image.RGBA, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	cp := image.NewRGBA(d.frame.Bounds())
	copy(cp.Pix, d.frame.Pix)
	return cp, d.on
}

// Press durations chosen against the 200ms debounce and 800ms long-press
// thresholds of the tracker.
const (
	tapHold = 120 * time.Millisecond
	selTap  = 300 * time.Millisecond
	selLong = 900 * time.Millisecond
)

// Pins implements the button pin sampler. Terminal key events are
// press-only, so each keypress latches its pin as held for a fixed window;
// the tracker sees the press edge and, for Select, the timed release.
type Pins struct {
	mu         sync.Mutex
	leftUntil  time.Time
	rightUntil time.Time
	selUntil   time.Time
}

// NewPins returns an idle pin set.
func NewPins() *Pins { return &Pins{} }

// Sample reports the current latched levels.
func (p *Pins) Sample() (left, right, sel bool) {
	now := time.Now()
	p.mu.Lock()
	defer p.mu.Unlock()
	return now.Before(p.leftUntil), now.Before(p.rightUntil), now.Before(p.selUntil)
}

// TapLeft latches the left button for one tap.
func (p *Pins) TapLeft() {
	p.mu.Lock()
	p.leftUntil = time.Now().Add(tapHold)
	p.mu.Unlock()
}

// TapRight latches the right button for one tap.
func (p *Pins) TapRight() {
	p.mu.Lock()
	p.rightUntil = time.Now().Add(tapHold)
	p.mu.Unlock()
}

// TapSelect latches select briefly, releasing before the long-press
// threshold, so the tracker classifies a short press.
func (p *Pins) TapSelect() {
	p.mu.Lock()
	p.selUntil = time.Now().Add(selTap)
	p.mu.Unlock()
}

// HoldSelect latches select past the long-press threshold.
func (p *Pins) HoldSelect() {
	p.mu.Lock()
	p.selUntil = time.Now().Add(selLong)
	p.mu.Unlock()
}
