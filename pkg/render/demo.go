package render

import (
	"gitlab.com/tinyland/lab/weather-reporter/pkg/icons"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/nav"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/theme"
)

// drawDemo is the icon gallery: every weather band plus the day/night
// variants, wind arrows, and the temperature/time color samples.
func (d *Dispatcher) drawDemo(st nav.State) {
	d.surf.Text("Weather Icons", 160, 12, FontBody, AnchorMC, d.pal.Text)

	gallery := func(code int, night bool, x, y int, label string) {
		d.drawIcon(icons.Commands(code, night, x, y, 40, d.pal))
		d.surf.Text(label, x, y+26, FontSmall, AnchorMC, d.pal.Subtle)
	}

	// Row 1: day icons.
	gallery(800, false, 40, 50, "Clear")
	gallery(801, false, 120, 50, "Few Cld")
	gallery(802, false, 200, 50, "Cloudy")
	gallery(804, false, 280, 50, "Overcast")

	// Row 2: night variants and wet weather.
	gallery(800, true, 40, 105, "Night")
	gallery(801, true, 120, 105, "Night Cld")
	gallery(500, false, 200, 105, "Rain")
	gallery(200, false, 280, 105, "Storm")

	// Row 3: snow, mist, and wind arrows.
	gallery(600, false, 40, 160, "Snow")
	gallery(701, false, 120, 160, "Mist")

	d.surf.Text("Wind:", 185, 150, FontBody, AnchorMC, d.pal.Subtle)
	d.drawIcon(icons.WindArrow(230, 160, 0, 15, d.pal))
	d.drawIcon(icons.WindArrow(260, 160, 90, 15, d.pal))
	d.drawIcon(icons.WindArrow(290, 160, 180, 15, d.pal))

	// Row 4: color samples.
	y := 210
	d.surf.Text("Temp:", 40, y, FontSmall, AnchorMC, d.pal.Subtle)
	d.surf.Text("15", 90, y, FontSmall, AnchorMC, d.TempColor(15))
	d.surf.Text("25", 120, y, FontSmall, AnchorMC, d.TempColor(25))
	d.surf.Text("38", 150, y, FontSmall, AnchorMC, d.TempColor(38))

	d.surf.Text("Time:", 190, y, FontSmall, AnchorMC, d.pal.Subtle)
	d.surf.Text("Day", 240, y, FontSmall, AnchorMC, d.pal.Daytime)
	d.surf.Text("Night", 280, y, FontSmall, AnchorMC, d.pal.Subtle)

	d.drawIndicator(st)
}

// drawDemo2 showcases the drawing primitives: shapes, line weights,
// gradients, progress bars, a gauge arc, and the palette swatches.
func (d *Dispatcher) drawDemo2(st nav.State) {
	d.surf.Text("Shapes", 10, 5, FontSmall, AnchorTL, d.pal.Subtle)
	d.surf.StrokeRect(10, 18, 30, 20, d.pal.Accent)
	d.surf.FillRect(45, 18, 30, 20, d.pal.Accent)
	d.surf.StrokeCircle(160, 28, 10, d.pal.Rain)
	d.surf.FillCircle(185, 28, 10, d.pal.Rain)
	d.surf.FillTriangle(240, 38, 250, 18, 260, 38, d.pal.Sun)

	d.surf.Text("Lines", 10, 48, FontSmall, AnchorTL, d.pal.Subtle)
	for i := 1; i <= 5; i++ {
		x := 10 + (i-1)*30
		for t := 0; t < i; t++ {
			d.surf.Line(x, 60+t, x+20, 70+t, d.pal.Text)
		}
	}
	for x := 170; x < 250; x += 6 {
		d.surf.Line(x, 65, x+3, 65, d.pal.Subtle)
	}

	// Temperature gradient strip, 10C to 40C.
	d.surf.Text("Gradients", 10, 82, FontSmall, AnchorTL, d.pal.Subtle)
	for i := 0; i < 140; i++ {
		t := 10 + float64(i)*30.0/140
		d.surf.Line(10+i, 95, 10+i, 110, d.TempColor(t))
	}
	d.surf.Text("10C", 10, 113, FontSmall, AnchorTL, d.pal.Subtle)
	d.surf.Text("40C", 130, 113, FontSmall, AnchorTL, d.pal.Subtle)

	d.surf.Text("Progress", 10, 128, FontSmall, AnchorTL, d.pal.Subtle)
	d.surf.StrokeRect(10, 140, 100, 12, d.pal.Subtle)
	d.surf.FillRect(11, 141, 68, 10, d.pal.Success)
	for i := 0; i < 10; i++ {
		c := d.pal.CloudDark
		if i < 7 {
			c = d.pal.Accent
		}
		d.surf.FillRect(120+i*12, 140, 10, 12, c)
	}

	d.surf.Text("Palette", 160, 160, FontSmall, AnchorTL, d.pal.Subtle)
	swatches := []theme.Color{
		d.pal.Text, d.pal.Subtle, d.pal.Accent, d.pal.Sun,
		d.pal.Success, d.pal.Rain, d.pal.Moon, d.pal.Cloud,
	}
	for i, c := range swatches {
		d.surf.FillRect(160+(i%4)*20, 175+(i/4)*20, 18, 18, c)
	}

	d.drawIndicator(st)
}

// drawDemo3 is the typography page: the four faces, numeric sizing, and the
// six text anchors against a reference line.
func (d *Dispatcher) drawDemo3(st nav.State) {
	y := 5
	d.surf.Text("Small: the quick brown fox", 5, y, FontSmall, AnchorTL, d.pal.Text)
	y += 14
	d.surf.Text("Body: quick brown fox", 5, y, FontBody, AnchorTL, d.pal.Text)
	y += 22
	d.surf.Text("Title: brown fox", 5, y, FontTitle, AnchorTL, d.pal.Text)
	y += 34

	d.surf.Text("Numeric:", 5, y, FontSmall, AnchorTL, d.pal.Subtle)
	y += 14
	d.surf.Text("123", 5, y, FontNumeric, AnchorTL, d.pal.Text)
	y += 58

	d.surf.Text("Anchors:", 5, y, FontSmall, AnchorTL, d.pal.Subtle)
	y += 16
	lineY := y + 10
	d.surf.Line(5, lineY, 315, lineY, d.pal.CloudDark)

	type anchor struct {
		label string
		a     Anchor
		x     int
	}
	for _, p := range []anchor{
		{"TL", AnchorTL, 10},
		{"TC", AnchorTC, 80},
		{"ML", AnchorML, 140},
		{"MC", AnchorMC, 200},
		{"MR", AnchorMR, 260},
		{"BL", AnchorBL, 300},
	} {
		d.surf.Text(p.label, p.x, lineY, FontBody, p.a, d.pal.Accent)
		d.surf.FillCircle(p.x, lineY, 2, d.pal.Success)
	}

	d.drawIndicator(st)
}
