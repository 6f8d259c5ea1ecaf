package render

import (
	"fmt"

	"gitlab.com/tinyland/lab/weather-reporter/pkg/nav"
	"gitlab.com/tinyland/lab/weather-reporter/pkg/weather"
)

// drawHeader draws the location label on the left and the clock on the
// right. The colon between hours and minutes is gated on the blink flag, and
// the digits take the daytime color between sunrise and sunset. If the wall
// clock has not synced yet the header is left blank for this frame.
func (d *Dispatcher) drawHeader(st nav.State, snap *weather.Snapshot) {
	now, ok := d.wall.Wall()
	if !ok {
		return
	}

	d.surf.Text(d.loc.Label, 10, 15, FontTitle, AnchorML, d.pal.Subtle)

	// Clear the time area first so width changes do not leave droppings.
	d.surf.FillRect(200, 0, 120, 30, d.pal.Background)

	hour := now.Hour()
	ampm := "am"
	if hour >= 12 {
		ampm = "pm"
	}
	if hour == 0 {
		hour = 12
	} else if hour > 12 {
		hour -= 12
	}

	timeColor := d.pal.Subtle
	if snap.IsDaytime(now) {
		timeColor = d.pal.Daytime
	}

	hourStr := fmt.Sprintf("%d", hour)
	minStr := fmt.Sprintf("%02d%s", now.Minute(), ampm)
	hourW := d.surf.TextWidth(hourStr, FontTitle)
	colonW := d.surf.TextWidth(":", FontTitle)
	minW := d.surf.TextWidth(minStr, FontTitle)

	startX := 310 - (hourW + colonW + minW)
	d.surf.Text(hourStr, startX, 15, FontTitle, AnchorML, timeColor)
	if st.ColonVisible {
		// The colon stays dimmed even during daylight.
		d.surf.Text(":", startX+hourW, 15, FontTitle, AnchorML, d.pal.Subtle)
	}
	d.surf.Text(minStr, startX+hourW+colonW, 15, FontTitle, AnchorML, timeColor)
}

// ordinalSuffix returns the English suffix for a day of the month.
func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// drawFooter draws "Wednesday, 12th Mar" bottom left. Like the header it
// no-ops until the wall clock syncs.
func (d *Dispatcher) drawFooter() {
	now, ok := d.wall.Wall()
	if !ok {
		return
	}
	dateStr := fmt.Sprintf("%s, %d%s %s",
		now.Weekday().String(), now.Day(), ordinalSuffix(now.Day()), now.Month().String()[:3])
	d.surf.Text(dateStr, 10, 222, FontTitle, AnchorML, d.pal.Subtle)
}

// drawIndicator draws the screen-position dots bottom right: one dot per
// screen in the current mode's ring, the current screen filled with the
// accent color.
func (d *Dispatcher) drawIndicator(st nav.State) {
	pos, count := nav.Index(st.Screen, st.Mode)
	const spacing = 15
	startX := 310 - (count-1)*spacing
	y := 222
	for i := 0; i < count; i++ {
		x := startX + i*spacing
		if i == pos {
			d.surf.FillCircle(x, y, 4, d.pal.Accent)
		} else {
			d.surf.StrokeCircle(x, y, 4, d.pal.Subtle)
		}
	}
}
