// Package icons emits the draw commands for the weather glyphs. Commands is a
// pure function of (condition code, day/night, position, size): it has no
// state and no side effects, which keeps the geometry testable without a
// framebuffer.
//
// Condition codes follow the OpenWeatherMap bands: 800 clear, 801 partial
// cloud, 802-803 cloudy, 804 overcast, 5xx rain, 2xx storm, 6xx snow,
// 7xx atmospheric haze. Everything else falls back to a generic cloud.
// Each band layers two to four circles at decreasing brightness (shadow,
// mid-tone, highlight) for depth, plus a band-specific overlay. The
// day/night flag only matters for 800 and 801, where it swaps the sun for a
// moon with craters.
package icons

import (
	"math"

	"gitlab.com/tinyland/lab/weather-reporter/pkg/theme"
)

// Op selects the primitive a Command encodes.
type Op int

const (
	OpFillCircle Op = iota
	OpStrokeCircle
	OpFillTriangle
	OpLine
)

// Command is one primitive draw. Interpretation of the coordinate fields
// depends on Op: circles use (X1,Y1,R), triangles all three points, lines
// the first two points.
type Command struct {
	Op     Op
	X1, Y1 int
	X2, Y2 int
	X3, Y3 int
	R      int
	Color  theme.Color
}

type list struct {
	cmds []Command
}

func (l *list) fillCircle(x, y int, r float64, c theme.Color) {
	l.cmds = append(l.cmds, Command{Op: OpFillCircle, X1: x, Y1: y, R: int(r), Color: c})
}

func (l *list) strokeCircle(x, y, r int, c theme.Color) {
	l.cmds = append(l.cmds, Command{Op: OpStrokeCircle, X1: x, Y1: y, R: r, Color: c})
}

func (l *list) fillTriangle(x1, y1, x2, y2, x3, y3 int, c theme.Color) {
	l.cmds = append(l.cmds, Command{Op: OpFillTriangle, X1: x1, Y1: y1, X2: x2, Y2: y2, X3: x3, Y3: y3, Color: c})
}

func (l *list) line(x1, y1, x2, y2 int, c theme.Color) {
	l.cmds = append(l.cmds, Command{Op: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c})
}

// Commands returns the draw list for the icon of the given condition code,
// centered at (x, y) with the given overall pixel size.
func Commands(code int, night bool, x, y, size int, pal theme.Theme) []Command {
	r := float64(size) / 2
	l := &list{}

	switch {
	case code == 800:
		if night {
			moon(l, x, y, r*0.5, pal)
		} else {
			sun(l, x, y, r*0.75, r*0.55, pal)
		}

	case code == 801:
		// Sun or moon peeking out behind the cloud.
		px := x - int(r*0.3)
		py := y - int(r*0.2)
		if night {
			moon(l, px, py, r*0.3, pal)
		} else {
			sun(l, px, py, r*0.48, r*0.35, pal)
		}
		l.fillCircle(x+int(r*0.15), y+int(r*0.35), r*0.3, pal.CloudDark)
		l.fillCircle(x+int(r*0.1), y+int(r*0.2), r*0.35, pal.CloudMid)
		l.fillCircle(x+int(r*0.4), y+int(r*0.3), r*0.3, pal.CloudMid)
		l.fillCircle(x-int(r*0.2), y+int(r*0.3), r*0.25, pal.CloudMid)
		l.fillCircle(x+int(r*0.05), y+int(r*0.15), r*0.2, pal.Cloud)

	case code >= 802 && code <= 803:
		l.fillCircle(x-int(r*0.25), y+int(r*0.3), r*0.4, pal.CloudDark)
		l.fillCircle(x+int(r*0.25), y+int(r*0.25), r*0.35, pal.CloudDark)
		l.fillCircle(x-int(r*0.3), y-int(r*0.1), r*0.45, pal.CloudMid)
		l.fillCircle(x+int(r*0.2), y-int(r*0.05), r*0.5, pal.CloudMid)
		l.fillCircle(x-int(r*0.1), y+int(r*0.2), r*0.4, pal.CloudMid)
		l.fillCircle(x+int(r*0.35), y+int(r*0.15), r*0.35, pal.CloudMid)
		l.fillCircle(x-int(r*0.35), y-int(r*0.2), r*0.25, pal.Cloud)
		l.fillCircle(x+int(r*0.1), y-int(r*0.15), r*0.3, pal.Cloud)

	case code == 804:
		// Overcast keeps the same shape but drops the highlights.
		l.fillCircle(x-int(r*0.25), y+int(r*0.3), r*0.4, pal.Overcast)
		l.fillCircle(x+int(r*0.25), y+int(r*0.25), r*0.35, pal.Overcast)
		l.fillCircle(x-int(r*0.3), y-int(r*0.1), r*0.45, pal.CloudDark)
		l.fillCircle(x+int(r*0.2), y-int(r*0.05), r*0.5, pal.CloudDark)
		l.fillCircle(x-int(r*0.1), y+int(r*0.2), r*0.4, pal.CloudDark)
		l.fillCircle(x+int(r*0.35), y+int(r*0.15), r*0.35, pal.CloudDark)
		l.fillCircle(x-int(r*0.35), y-int(r*0.2), r*0.2, pal.CloudMid)
		l.fillCircle(x+int(r*0.1), y-int(r*0.15), r*0.25, pal.CloudMid)

	case code >= 500 && code <= 531:
		rainCloud(l, x, y, r, pal)
		for i := 0; i < 5; i++ {
			dx := x - int(r*0.35) + i*int(r*0.18)
			dy1 := y + int(r*0.15)
			dy2 := y + int(r*0.5) + (i%2)*int(r*0.15) // staggered lengths
			l.line(dx, dy1, dx, dy2, pal.Rain)
		}

	case code >= 200 && code <= 232:
		l.fillCircle(x-int(r*0.1), y+int(r*0.05), r*0.35, pal.CloudDark)
		l.fillCircle(x-int(r*0.25), y-int(r*0.3), r*0.35, pal.CloudDark)
		l.fillCircle(x+int(r*0.15), y-int(r*0.25), r*0.4, pal.CloudMid)
		l.fillCircle(x-int(r*0.05), y-int(r*0.1), r*0.35, pal.CloudMid)
		l.fillCircle(x+int(r*0.1), y-int(r*0.3), r*0.18, pal.Cloud)
		// Two-triangle lightning bolt.
		bx, by := x, y+int(r*0.1)
		l.fillTriangle(bx, by, bx+int(r*0.25), by+int(r*0.3), bx-int(r*0.1), by+int(r*0.35), pal.Bolt)
		l.fillTriangle(bx-int(r*0.05), by+int(r*0.3), bx+int(r*0.15), by+int(r*0.35), bx-int(r*0.15), by+int(r*0.7), pal.Bolt)

	case code >= 600 && code <= 622:
		rainCloud(l, x, y, r, pal)
		l.fillCircle(x-int(r*0.3), y+int(r*0.35), 3, pal.Snow)
		l.fillCircle(x, y+int(r*0.45), 3, pal.Snow)
		l.fillCircle(x+int(r*0.3), y+int(r*0.35), 3, pal.Snow)

	case code >= 701 && code <= 781:
		mistDark := theme.Color{R: 70, G: 70, B: 70}
		mistMid := theme.Color{R: 100, G: 100, B: 100}
		mistLight := theme.Color{R: 140, G: 140, B: 140}
		l.fillCircle(x-int(r*0.1), y+int(r*0.1), r*0.3, mistDark)
		l.fillCircle(x-int(r*0.3), y-int(r*0.2), r*0.3, mistMid)
		l.fillCircle(x+int(r*0.1), y-int(r*0.15), r*0.35, mistMid)
		l.fillCircle(x-int(r*0.35), y-int(r*0.25), r*0.18, mistLight)
		for i := 0; i < 3; i++ {
			ly := y + int(r*0.3) + i*8
			c := mistDark
			if i == 1 {
				c = mistMid
			}
			l.line(x-int(r*0.5), ly, x+int(r*0.5), ly, c)
		}

	default:
		l.fillCircle(x, y+int(r*0.1), r*0.35, pal.CloudDark)
		l.fillCircle(x-int(r*0.2), y, r*0.4, pal.CloudMid)
		l.fillCircle(x+int(r*0.2), y-int(r*0.05), r*0.45, pal.CloudMid)
		l.fillCircle(x-int(r*0.25), y-int(r*0.1), r*0.2, pal.Cloud)
	}

	return l.cmds
}

// sun draws twelve short pointed rays around an orange center disc. The
// center is drawn last and slightly larger than the ray bases so it covers
// them.
func sun(l *list, x, y int, outerR, innerR float64, pal theme.Theme) {
	const numRays = 12
	for i := 0; i < numRays; i++ {
		angle := float64(i) * (360.0 / numRays) * math.Pi / 180
		next := float64(i+1) * (360.0 / numRays) * math.Pi / 180
		mid := (angle + next) / 2
		tipX := x + int(math.Cos(mid)*outerR)
		tipY := y + int(math.Sin(mid)*outerR)
		b1x := x + int(math.Cos(angle)*innerR)
		b1y := y + int(math.Sin(angle)*innerR)
		b2x := x + int(math.Cos(next)*innerR)
		b2y := y + int(math.Sin(next)*innerR)
		l.fillTriangle(tipX, tipY, b1x, b1y, b2x, b2y, pal.Sun)
	}
	l.fillCircle(x, y, innerR*1.03, pal.Accent)
}

// moon draws a disc with three offset craters.
func moon(l *list, x, y int, r float64, pal theme.Theme) {
	l.fillCircle(x, y, r, pal.Moon)
	l.fillCircle(x-int(r*0.3), y-int(r*0.2), r*0.24, pal.Crater)
	l.fillCircle(x+int(r*0.4), y+int(r*0.3), r*0.16, pal.Crater)
	l.fillCircle(x-int(r*0.1), y+int(r*0.5), r*0.12, pal.Crater)
}

// rainCloud is the shared cloud-with-depth used by the rain and snow bands.
func rainCloud(l *list, x, y int, r float64, pal theme.Theme) {
	l.fillCircle(x-int(r*0.1), y+int(r*0.05), r*0.35, pal.CloudDark)
	l.fillCircle(x-int(r*0.25), y-int(r*0.3), r*0.35, pal.CloudMid)
	l.fillCircle(x+int(r*0.15), y-int(r*0.25), r*0.4, pal.CloudMid)
	l.fillCircle(x-int(r*0.05), y-int(r*0.1), r*0.35, pal.CloudMid)
	l.fillCircle(x-int(r*0.3), y-int(r*0.35), r*0.2, pal.Cloud)
	l.fillCircle(x+int(r*0.1), y-int(r*0.3), r*0.22, pal.Cloud)
}

// WindArrow returns the draw list for a compass arrow at (x, y). deg is the
// meteorological wind direction (where the wind comes from), so the arrow
// points the opposite way.
func WindArrow(x, y, deg, size int, pal theme.Theme) []Command {
	l := &list{}
	rad := float64(deg+180) * math.Pi / 180

	tipX := x + int(math.Sin(rad)*float64(size))
	tipY := y - int(math.Cos(rad)*float64(size))

	base := float64(size) * 0.3
	b1x := x + int(math.Sin(rad+0.5)*base)
	b1y := y - int(math.Cos(rad+0.5)*base)
	b2x := x + int(math.Sin(rad-0.5)*base)
	b2y := y - int(math.Cos(rad-0.5)*base)

	// Offset copies thicken the arrow.
	l.fillTriangle(tipX, tipY, b1x, b1y, b2x, b2y, pal.Accent)
	l.fillTriangle(tipX+1, tipY, b1x+1, b1y, b2x+1, b2y, pal.Accent)
	l.fillTriangle(tipX, tipY+1, b1x, b1y+1, b2x, b2y+1, pal.Accent)

	l.fillCircle(x, y, 4, pal.Subtle)
	l.strokeCircle(x, y, 6, pal.Accent)
	return l.cmds
}
