package hw

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Buttons samples the three front-panel buttons. The buttons are wired
// active-low with internal pull-ups: a pressed button reads low.
type Buttons struct {
	left, right, sel gpio.PinIO
}

// NewButtons claims the three pins as pulled-up inputs.
func NewButtons(left, right, sel string) (*Buttons, error) {
	pins := make([]gpio.PinIO, 3)
	for i, name := range []string{left, right, sel} {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("hw: no gpio pin %q", name)
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("hw: pin %s: %w", name, err)
		}
		pins[i] = p
	}
	return &Buttons{left: pins[0], right: pins[1], sel: pins[2]}, nil
}

// Sample reads the instantaneous pin levels, true meaning pressed.
func (b *Buttons) Sample() (left, right, sel bool) {
	return b.left.Read() == gpio.Low,
		b.right.Read() == gpio.Low,
		b.sel.Read() == gpio.Low
}
