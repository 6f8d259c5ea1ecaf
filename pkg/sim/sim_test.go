package sim

import (
	"image"
	"image/color"
	"testing"
	"time"
)

func TestDisplayPushRetainsRegion(t *testing.T) {
	d := NewDisplay(320, 240)

	src := image.NewRGBA(image.Rect(0, 0, 320, 240))
	red := color.RGBA{R: 255, A: 255}
	for y := 0; y < 32; y++ {
		for x := 0; x < 320; x++ {
			src.SetRGBA(x, y, red)
		}
	}

	if err := d.Push(image.Rect(0, 0, 320, 32), src); err != nil {
		t.Fatal(err)
	}

	frame, on := d.Frame()
	if !on {
		t.Error("display should start powered on")
	}
	if frame.RGBAAt(10, 10) != red {
		t.Error("pushed region not retained")
	}
	if frame.RGBAAt(10, 100) == red {
		t.Error("pixels outside the pushed region changed")
	}
}

func TestDisplayPowerAndNotify(t *testing.T) {
	d := NewDisplay(8, 8)
	notified := 0
	d.OnFrame(func() { notified++ })

	d.Power(false)
	if _, on := d.Frame(); on {
		t.Error("power off not recorded")
	}
	d.Push(image.Rect(0, 0, 8, 8), image.NewRGBA(image.Rect(0, 0, 8, 8)))
	if notified != 2 {
		t.Errorf("notify count = %d, want 2", notified)
	}
}

func TestFrameReturnsCopy(t *testing.T) {
	d := NewDisplay(8, 8)
	frame, _ := d.Frame()
	frame.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	fresh, _ := d.Frame()
	if fresh.RGBAAt(0, 0).R != 0 {
		t.Error("Frame exposed internal buffer")
	}
}

func TestPinTapsLatchAndExpire(t *testing.T) {
	p := NewPins()

	if l, r, s := p.Sample(); l || r || s {
		t.Fatal("pins not idle initially")
	}

	p.TapLeft()
	if l, _, _ := p.Sample(); !l {
		t.Error("left tap not latched")
	}

	p.TapSelect()
	if _, _, s := p.Sample(); !s {
		t.Error("select tap not latched")
	}

	time.Sleep(tapHold + 10*time.Millisecond)
	if l, _, _ := p.Sample(); l {
		t.Error("left latch did not expire")
	}
}

func TestHoldSelectOutlastsTap(t *testing.T) {
	p := NewPins()
	p.HoldSelect()

	time.Sleep(selTap + 20*time.Millisecond)
	if _, _, s := p.Sample(); !s {
		t.Error("held select released before the long-press threshold")
	}
}

func TestViewRendersHints(t *testing.T) {
	d := NewDisplay(32, 24)
	m := NewModel(d, NewPins(), nil)

	out := m.View()
	if out == "" {
		t.Fatal("empty view")
	}

	d.Power(false)
	if m.View() == out {
		t.Error("view unchanged after power off")
	}
}
