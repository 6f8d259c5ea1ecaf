// Package hw is the Raspberry Pi backend: the ILI9341 TFT panel over SPI
// and the three front buttons on GPIO.
package hw

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// Pins names the GPIO wiring. Pin names are periph.io names ("GPIO25").
type Pins struct {
	DC        string
	Reset     string
	Backlight string
	Left      string
	Right     string
	Select    string
}

// Backend owns the opened hardware resources.
type Backend struct {
	Panel   *Panel
	Buttons *Buttons

	port spi.PortCloser
}

// Open initializes the host, opens the SPI port (empty spiDev selects the
// first registered port), and claims the GPIO pins.
func Open(spiDev string, pins Pins) (*Backend, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("hw: host init: %w", err)
	}

	port, err := spireg.Open(spiDev)
	if err != nil {
		return nil, fmt.Errorf("hw: open spi %q: %w", spiDev, err)
	}
	conn, err := port.Connect(40*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("hw: spi connect: %w", err)
	}

	dc, err := claimOut(pins.DC)
	if err != nil {
		port.Close()
		return nil, err
	}
	rst, err := claimOut(pins.Reset)
	if err != nil {
		port.Close()
		return nil, err
	}
	bl, err := claimOut(pins.Backlight)
	if err != nil {
		port.Close()
		return nil, err
	}

	panel, err := NewPanel(conn, dc, rst, bl)
	if err != nil {
		port.Close()
		return nil, err
	}

	buttons, err := NewButtons(pins.Left, pins.Right, pins.Select)
	if err != nil {
		port.Close()
		return nil, err
	}

	return &Backend{Panel: panel, Buttons: buttons, port: port}, nil
}

// Close releases the SPI port.
func (b *Backend) Close() error {
	return b.port.Close()
}

func claimOut(name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("hw: no gpio pin %q", name)
	}
	if err := p.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("hw: pin %s: %w", name, err)
	}
	return p, nil
}
