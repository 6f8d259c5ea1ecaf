// Package render maps (screen, invalidation kind) to draw calls against a
// graphics backend. It owns the complete layout of all nine screens, the
// shared header/footer/indicator chrome, and the decision of how much of the
// offscreen buffer to flush after a tick.
package render

import (
	"image"

	"gitlab.com/tinyland/lab/weather-reporter/pkg/theme"
)

// Display dimensions, landscape. All layout coordinates in this package
// assume this frame.
const (
	Width  = 320
	Height = 240
)

// HeaderRect is the region redrawn and flushed for a header-only partial
// repaint (location label, clock digits, blink-gated colon).
var HeaderRect = image.Rect(0, 0, Width, 32)

// Font selects one of the fixed text faces.
type Font int

const (
	FontSmall   Font = iota // 8px labels (demo pages, hour ticks)
	FontBody                // 16px body text
	FontTitle               // 26px headings, header clock
	FontNumeric             // large numerals for the current temperature
)

// Anchor positions a text string relative to its (x, y) point, mirroring the
// datum concept of embedded TFT libraries.
type Anchor int

const (
	AnchorTL Anchor = iota // top-left
	AnchorTC               // top-center
	AnchorML               // middle-left
	AnchorMC               // middle-center
	AnchorMR               // middle-right
	AnchorBL               // bottom-left
)

// Canvas is the drawing surface contract. Implementations draw into an
// offscreen buffer; nothing becomes visible until Flush.
type Canvas interface {
	Clear(c theme.Color)
	FillRect(x, y, w, h int, c theme.Color)
	StrokeRect(x, y, w, h int, c theme.Color)
	FillCircle(x, y, r int, c theme.Color)
	StrokeCircle(x, y, r int, c theme.Color)
	FillTriangle(x1, y1, x2, y2, x3, y3 int, c theme.Color)
	Line(x1, y1, x2, y2 int, c theme.Color)
	Text(s string, x, y int, f Font, a Anchor, c theme.Color)
	TextWidth(s string, f Font) int
}

// Surface is a Canvas bound to a physical display: it can copy buffer
// regions out and issue power commands to the display controller.
type Surface interface {
	Canvas
	Flush(r image.Rectangle) error
	Power(on bool) error
}
