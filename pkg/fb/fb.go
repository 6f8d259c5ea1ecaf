// Package fb implements the offscreen framebuffer behind the render
// dispatcher: an in-memory RGBA surface with the primitive set the screens
// draw with, flushed region-by-region to a physical display device.
//
// Text uses the embedded Go fonts at four fixed sizes, standing in for the
// built-in bitmap fonts of the original TFT firmware.
package fb

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"gitlab.com/tinyland/lab/weather-reporter/pkg/render"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/theme"
)

// Device is the physical display behind the framebuffer. Push copies a
// buffer region out to the panel; Power issues the controller's sleep and
// wake commands.
type Device interface {
	Push(r image.Rectangle, frame *image.RGBA) error
	Power(on bool) error
}

// Framebuffer implements render.Surface. It is owned by the render
// dispatcher and must not be shared across goroutines.
type Framebuffer struct {
	img   *image.RGBA
	dev   Device
	faces map[render.Font]font.Face
}

// New allocates a w x h framebuffer flushing to dev.
func New(w, h int, dev Device) (*Framebuffer, error) {
	faces, err := loadFaces()
	if err != nil {
		return nil, fmt.Errorf("fb: %w", err)
	}
	return &Framebuffer{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		dev:   dev,
		faces: faces,
	}, nil
}

// loadFaces builds the four fixed text faces from the embedded Go fonts.
func loadFaces() (map[render.Font]font.Face, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}

	mk := func(src *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(src, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	faces := map[render.Font]font.Face{}
	specs := []struct {
		f    render.Font
		src  *opentype.Font
		size float64
	}{
		{render.FontSmall, regular, 10},
		{render.FontBody, regular, 14},
		{render.FontTitle, regular, 21},
		{render.FontNumeric, bold, 44},
	}
	for _, s := range specs {
		face, err := mk(s.src, s.size)
		if err != nil {
			return nil, err
		}
		faces[s.f] = face
	}
	return faces, nil
}

// Image exposes the backing image for tests and the simulator preview.
func (f *Framebuffer) Image() *image.RGBA { return f.img }

// Clear fills the whole buffer with c.
func (f *Framebuffer) Clear(c theme.Color) {
	draw.Draw(f.img, f.img.Bounds(), image.NewUniform(c.RGBA()), image.Point{}, draw.Src)
}

// FillRect fills an axis-aligned rectangle.
func (f *Framebuffer) FillRect(x, y, w, h int, c theme.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(f.img.Bounds())
	draw.Draw(f.img, r, image.NewUniform(c.RGBA()), image.Point{}, draw.Src)
}

// StrokeRect outlines an axis-aligned rectangle one pixel wide.
func (f *Framebuffer) StrokeRect(x, y, w, h int, c theme.Color) {
	f.hline(x, x+w-1, y, c)
	f.hline(x, x+w-1, y+h-1, c)
	f.vline(x, y, y+h-1, c)
	f.vline(x+w-1, y, y+h-1, c)
}

// FillCircle fills a disc by horizontal spans.
func (f *Framebuffer) FillCircle(x, y, r int, c theme.Color) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		dx := isqrt(r*r - dy*dy)
		f.hline(x-dx, x+dx, y+dy, c)
	}
}

// StrokeCircle draws a one-pixel circle outline with the midpoint algorithm.
func (f *Framebuffer) StrokeCircle(x, y, r int, c theme.Color) {
	if r < 0 {
		return
	}
	px, py := r, 0
	err := 1 - r
	for px >= py {
		f.set(x+px, y+py, c)
		f.set(x-px, y+py, c)
		f.set(x+px, y-py, c)
		f.set(x-px, y-py, c)
		f.set(x+py, y+px, c)
		f.set(x-py, y+px, c)
		f.set(x+py, y-px, c)
		f.set(x-py, y-px, c)
		py++
		if err < 0 {
			err += 2*py + 1
		} else {
			px--
			err += 2*(py-px) + 1
		}
	}
}

// FillTriangle fills a triangle using edge-function tests over its bounding
// box. The triangles drawn here are at most icon sized, so the simple scan
// is plenty.
func (f *Framebuffer) FillTriangle(x1, y1, x2, y2, x3, y3 int, c theme.Color) {
	minX := min3(x1, x2, x3)
	maxX := max3(x1, x2, x3)
	minY := min3(y1, y2, y3)
	maxY := max3(y1, y2, y3)

	edge := func(ax, ay, bx, by, px, py int) int {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			w1 := edge(x1, y1, x2, y2, px, py)
			w2 := edge(x2, y2, x3, y3, px, py)
			w3 := edge(x3, y3, x1, y1, px, py)
			if (w1 >= 0 && w2 >= 0 && w3 >= 0) || (w1 <= 0 && w2 <= 0 && w3 <= 0) {
				f.set(px, py, c)
			}
		}
	}
}

// Line draws a one-pixel line with Bresenham's algorithm.
func (f *Framebuffer) Line(x1, y1, x2, y2 int, c theme.Color) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		f.set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// Text draws s anchored at (x, y).
func (f *Framebuffer) Text(s string, x, y int, ft render.Font, a render.Anchor, c theme.Color) {
	face := f.faces[ft]
	d := &font.Drawer{
		Dst:  f.img,
		Src:  image.NewUniform(c.RGBA()),
		Face: face,
	}

	w := d.MeasureString(s)
	m := face.Metrics()

	dotX := fixed.I(x)
	switch a {
	case render.AnchorTC, render.AnchorMC:
		dotX -= w / 2
	case render.AnchorMR:
		dotX -= w
	}

	dotY := fixed.I(y)
	switch a {
	case render.AnchorTL, render.AnchorTC:
		dotY += m.Ascent
	case render.AnchorML, render.AnchorMC, render.AnchorMR:
		dotY += (m.Ascent - m.Descent) / 2
	case render.AnchorBL:
		dotY -= m.Descent
	}

	d.Dot = fixed.Point26_6{X: dotX, Y: dotY}
	d.DrawString(s)
}

// TextWidth returns the advance width of s in pixels.
func (f *Framebuffer) TextWidth(s string, ft render.Font) int {
	d := &font.Drawer{Face: f.faces[ft]}
	return d.MeasureString(s).Ceil()
}

// Flush copies the given buffer region to the device.
func (f *Framebuffer) Flush(r image.Rectangle) error {
	return f.dev.Push(r.Intersect(f.img.Bounds()), f.img)
}

// Power forwards the display-controller wake/sleep command.
func (f *Framebuffer) Power(on bool) error {
	return f.dev.Power(on)
}

func (f *Framebuffer) set(x, y int, c theme.Color) {
	if !(image.Point{X: x, Y: y}).In(f.img.Bounds()) {
		return
	}
	f.img.SetRGBA(x, y, c.RGBA())
}

func (f *Framebuffer) hline(x1, x2, y int, c theme.Color) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	rgba := c.RGBA()
	for x := x1; x <= x2; x++ {
		if (image.Point{X: x, Y: y}).In(f.img.Bounds()) {
			f.img.SetRGBA(x, y, rgba)
		}
	}
}

func (f *Framebuffer) vline(x, y1, y2 int, c theme.Color) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	rgba := c.RGBA()
	for y := y1; y <= y2; y++ {
		if (image.Point{X: x, Y: y}).In(f.img.Bounds()) {
			f.img.SetRGBA(x, y, rgba)
		}
	}
}

// isqrt returns the integer square root of n.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
