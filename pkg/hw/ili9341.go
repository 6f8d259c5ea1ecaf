package hw

import (
	"fmt"
	"image"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// ILI9341 command bytes.
const (
	cmdSWReset  = 0x01
	cmdSleepIn  = 0x10
	cmdSleepOut = 0x11
	cmdDispOff  = 0x28
	cmdDispOn   = 0x29
	cmdCASet    = 0x2A
	cmdPASet    = 0x2B
	cmdRAMWr    = 0x2C
	cmdMADCTL   = 0x36
	cmdPixFmt   = 0x3A
)

// madctlLandscape sets row/column exchange plus BGR order, putting the panel
// in 320x240 landscape.
const madctlLandscape = 0x28

// spiChunk keeps writes under the common spidev buffer limit.
const spiChunk = 4096

// Panel drives an ILI9341 TFT over SPI with a data/command pin, a reset
// pin, and a backlight pin.
type Panel struct {
	conn spi.Conn
	dc   gpio.PinIO
	rst  gpio.PinIO
	bl   gpio.PinIO
}

// NewPanel resets and initializes the controller, leaving the display on
// with the backlight lit.
func NewPanel(conn spi.Conn, dc, rst, bl gpio.PinIO) (*Panel, error) {
	p := &Panel{conn: conn, dc: dc, rst: rst, bl: bl}

	// Hardware reset pulse.
	if err := rst.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("hw: reset pin: %w", err)
	}
	time.Sleep(5 * time.Millisecond)
	rst.Out(gpio.Low)
	time.Sleep(20 * time.Millisecond)
	rst.Out(gpio.High)
	time.Sleep(150 * time.Millisecond)

	init := []struct {
		cmd  byte
		data []byte
		wait time.Duration
	}{
		{cmd: cmdSWReset, wait: 150 * time.Millisecond},
		{cmd: cmdMADCTL, data: []byte{madctlLandscape}},
		{cmd: cmdPixFmt, data: []byte{0x55}}, // 16 bits per pixel
		{cmd: cmdSleepOut, wait: 120 * time.Millisecond},
		{cmd: cmdDispOn, wait: 20 * time.Millisecond},
	}
	for _, step := range init {
		if err := p.command(step.cmd, step.data...); err != nil {
			return nil, err
		}
		if step.wait > 0 {
			time.Sleep(step.wait)
		}
	}

	if err := bl.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("hw: backlight pin: %w", err)
	}
	return p, nil
}

// Push writes the given region of frame to panel RAM as RGB565.
func (p *Panel) Push(r image.Rectangle, frame *image.RGBA) error {
	r = r.Intersect(frame.Bounds())
	if r.Empty() {
		return nil
	}

	if err := p.setWindow(r); err != nil {
		return err
	}

	buf := make([]byte, 0, r.Dx()*r.Dy()*2)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := frame.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			px := rgb565(frame.Pix[i], frame.Pix[i+1], frame.Pix[i+2])
			buf = append(buf, byte(px>>8), byte(px))
			i += 4
		}
	}
	return p.data(buf)
}

// Power drives the controller in and out of sleep, with the backlight
// following.
func (p *Panel) Power(on bool) error {
	if on {
		if err := p.command(cmdSleepOut); err != nil {
			return err
		}
		time.Sleep(120 * time.Millisecond)
		if err := p.command(cmdDispOn); err != nil {
			return err
		}
		return p.bl.Out(gpio.High)
	}

	if err := p.bl.Out(gpio.Low); err != nil {
		return err
	}
	if err := p.command(cmdDispOff); err != nil {
		return err
	}
	return p.command(cmdSleepIn)
}

// setWindow sets the column and page address ranges for the next RAM write.
func (p *Panel) setWindow(r image.Rectangle) error {
	x1, x2 := r.Min.X, r.Max.X-1
	y1, y2 := r.Min.Y, r.Max.Y-1
	if err := p.command(cmdCASet, byte(x1>>8), byte(x1), byte(x2>>8), byte(x2)); err != nil {
		return err
	}
	if err := p.command(cmdPASet, byte(y1>>8), byte(y1), byte(y2>>8), byte(y2)); err != nil {
		return err
	}
	return p.command(cmdRAMWr)
}

func (p *Panel) command(cmd byte, data ...byte) error {
	if err := p.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := p.conn.Tx([]byte{cmd}, nil); err != nil {
		return fmt.Errorf("hw: command %#02x: %w", cmd, err)
	}
	if len(data) == 0 {
		return nil
	}
	return p.data(data)
}

func (p *Panel) data(buf []byte) error {
	if err := p.dc.Out(gpio.High); err != nil {
		return err
	}
	for len(buf) > 0 {
		n := len(buf)
		if n > spiChunk {
			n = spiChunk
		}
		if err := p.conn.Tx(buf[:n], nil); err != nil {
			return fmt.Errorf("hw: data write: %w", err)
		}
		buf = buf[n:]
	}
	return nil
}

// rgb565 packs 8-bit RGB into the panel's 16-bit format.
func rgb565(r, g, b byte) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3
}
