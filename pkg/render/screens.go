package render

import (
	"fmt"

	"gitlab.com/tinyland/lab/weather-reporter/pkg/icons"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/nav"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/theme"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/weather"
)

// hourlyColumns draws a row of seven forecast columns (hour label, small
// icon, temperature) starting at the given hourly index.
func (d *Dispatcher) hourlyColumns(snap *weather.Snapshot, first int) {
	count := len(snap.Hourly) - first
	if count > 7 {
		count = 7
	}
	if count <= 0 {
		return
	}

	const margin = 8
	spacing := (Width - margin*2) / count
	startY := 130

	for i := 0; i < count; i++ {
		h := snap.Hourly[first+i]
		x := margin + spacing/2 + i*spacing

		labelColor := d.pal.Subtle
		day := snap.HourIsDaytime(h.Hour)
		if day {
			labelColor = d.pal.Daytime
		}
		d.surf.Text(hourLabel(h.Hour), x, startY, FontBody, AnchorMC, labelColor)

		d.drawIcon(icons.Commands(h.Code, !day, x, startY+27, 35, d.pal))

		d.surf.Text(fmtTemp(h.Temp), x, startY+55, FontBody, AnchorMC, d.TempColor(h.Temp))
	}
}

// drawHourly is the default screen: current conditions in a large now-row,
// then the next seven hours.
func (d *Dispatcher) drawHourly(st nav.State, snap *weather.Snapshot) {
	if snap == nil || !snap.Valid || len(snap.Hourly) == 0 {
		d.drawPlaceholder("No Hourly Data")
		return
	}

	d.drawHeader(st, snap)

	now, _ := d.wall.Wall()
	d.drawIcon(icons.Commands(snap.Code, !snap.IsDaytime(now), 45, 70, 55, d.pal))

	d.surf.Text(fmtTemp(snap.Temp), 85, 70, FontNumeric, AnchorML, d.TempColor(snap.Temp))

	// Long condition descriptions drop to the body font.
	condFont := FontTitle
	if len(snap.Condition) > 12 {
		condFont = FontBody
	}
	d.surf.Text(snap.Condition, 160, 55, condFont, AnchorML, d.pal.Subtle)
	d.surf.Text("Feels "+fmtTemp(snap.FeelsLike), 160, 85, FontTitle, AnchorML, d.pal.Subtle)

	// Hour 0 is now; the columns start at hour 1.
	d.hourlyColumns(snap, 1)

	d.drawFooter()
	d.drawIndicator(st)
}

// drawHourly2 shows today's rain chance and forecast hours 8 through 14. It
// needs at least 14 hourly points; anything less renders the placeholder.
func (d *Dispatcher) drawHourly2(st nav.State, snap *weather.Snapshot) {
	if snap == nil || !snap.Valid || len(snap.Hourly) < 14 || len(snap.Daily) == 0 {
		d.drawPlaceholder("No Hourly Data")
		return
	}

	d.drawHeader(st, snap)

	d.surf.Text("Rain Today", 10, 55, FontTitle, AnchorML, d.pal.Subtle)

	// Droplet glyph: a circle with a triangular cap.
	const rainX, rainY = 200, 65
	d.surf.FillCircle(rainX, rainY+5, 12, d.pal.Rain)
	d.surf.FillTriangle(rainX-12, rainY+5, rainX+12, rainY+5, rainX, rainY-15, d.pal.Rain)

	pop := snap.Daily[0].POP
	popColor := d.pal.Text
	if pop > 50 {
		popColor = d.pal.Rain
	}
	d.surf.Text(fmt.Sprintf("%d%%", pop), rainX+25, 70, FontNumeric, AnchorML, popColor)

	d.hourlyColumns(snap, 8)

	d.drawFooter()
	d.drawIndicator(st)
}

// drawConditions lists the extended current readings in labeled rows.
func (d *Dispatcher) drawConditions(st nav.State, snap *weather.Snapshot) {
	if snap == nil || !snap.Valid {
		d.drawPlaceholder("No Data")
		return
	}

	d.drawHeader(st, snap)

	y := 50
	const lineHeight = 32
	const labelX = 20

	row := func(label, value string, valueColor theme.Color) {
		d.surf.Text(label, labelX, y, FontTitle, AnchorML, d.pal.Subtle)
		d.surf.Text(value, 310, y, FontTitle, AnchorMR, valueColor)
		y += lineHeight
	}

	row("UV Index", fmt.Sprintf("%.1f %s", snap.UVI, uvLabel(snap.UVI)), d.uvColor(snap.UVI))
	row("Visibility", fmt.Sprintf("%.1f km", float64(snap.Visibility)/1000), d.pal.Text)
	row("Pressure", fmt.Sprintf("%d hPa", snap.Pressure), d.pal.Text)
	row("Dew Point", fmtTemp(snap.DewPoint)+"°", d.TempColor(snap.DewPoint))
	row("Cloud Cover", fmt.Sprintf("%d%%", snap.Clouds), d.pal.Text)

	d.drawFooter()
	d.drawIndicator(st)
}

// drawDaily lays out the next four days in a 2x2 grid.
func (d *Dispatcher) drawDaily(st nav.State, snap *weather.Snapshot) {
	if snap == nil || !snap.Valid || len(snap.Daily) == 0 {
		d.drawPlaceholder("No Daily Data")
		return
	}

	d.drawHeader(st, snap)

	count := len(snap.Daily)
	if count > 4 {
		count = 4
	}
	const cellW, cellH, startY = 160, 80, 38

	for i := 0; i < count; i++ {
		day := snap.Daily[i]
		cellX := (i%2)*cellW + cellW/2
		cellY := startY + (i/2)*cellH

		label := day.Day
		if i == 0 {
			label = "Today"
		}
		d.surf.Text(label, cellX, cellY, FontBody, AnchorMC, d.pal.Subtle)

		d.drawIcon(icons.Commands(day.Code, false, cellX, cellY+30, 35, d.pal))

		temps := fmt.Sprintf("%d / %d", int(day.TempMax), int(day.TempMin))
		d.surf.Text(temps, cellX, cellY+58, FontBody, AnchorMC, d.TempColor(day.TempMax))
	}

	d.drawFooter()
	d.drawIndicator(st)
}
