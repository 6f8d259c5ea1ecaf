package render

import (
	"fmt"
	"time"

	"gitlab.com/tinyland/lab/weather-reporter/pkg/nav"
)

// drawSettings lists the device configuration and runtime status. Unlike the
// weather screens it never needs the snapshot, so it has no placeholder path.
func (d *Dispatcher) drawSettings(st nav.State) {
	d.surf.Text("Settings", 10, 25, FontTitle, AnchorML, d.pal.Text)

	y := 70
	const lineHeight = 28
	row := func(label, value string) {
		d.surf.Text(label, 20, y, FontBody, AnchorML, d.pal.Subtle)
		d.surf.Text(value, 120, y, FontBody, AnchorML, d.pal.Text)
		y += lineHeight
	}

	row("Location:", d.loc.Label)
	row("Lat/Lon:", fmt.Sprintf("%.4f, %.4f", d.loc.Lat, d.loc.Lon))
	row("Update:", "Every "+formatPeriod(d.refreshPeriod))

	ip := "unavailable"
	if d.host != nil {
		if v := d.host.LocalIP(); v != "" {
			ip = v
		}
	}
	row("Network:", ip)

	if d.host != nil {
		if up, ok := d.host.Uptime(); ok {
			row("Uptime:", formatPeriod(up))
		}
	}

	if d.lastUpdate != "" {
		row("Updated:", d.lastUpdate)
	}

	d.drawIndicator(st)
}

// formatPeriod renders a duration in the largest sensible unit.
func formatPeriod(p time.Duration) string {
	switch {
	case p >= 24*time.Hour:
		return fmt.Sprintf("%dd %dh", int(p.Hours())/24, int(p.Hours())%24)
	case p >= time.Hour:
		return fmt.Sprintf("%dh %dm", int(p.Hours()), int(p.Minutes())%60)
	case p >= time.Minute:
		return fmt.Sprintf("%d minutes", int(p.Minutes()))
	}
	return fmt.Sprintf("%d seconds", int(p.Seconds()))
}

// drawAbout shows the product identity.
func (d *Dispatcher) drawAbout(st nav.State) {
	d.surf.Text("About", 10, 18, FontTitle, AnchorML, d.pal.Subtle)

	y := 55
	d.surf.Text("Weather Reporter", 10, y, FontTitle, AnchorML, d.pal.Text)

	y += 37
	d.surf.Text("Version", 10, y, FontBody, AnchorML, d.pal.Subtle)
	d.surf.Text(d.version, 140, y, FontBody, AnchorML, d.pal.Text)

	y += 27
	d.surf.Text("Data", 10, y, FontBody, AnchorML, d.pal.Subtle)
	d.surf.Text("OpenWeatherMap", 140, y, FontBody, AnchorML, d.pal.Text)

	y += 37
	d.surf.Text("Powered by One Call API 3.0", 10, y, FontBody, AnchorML, d.pal.Subtle)

	d.drawIndicator(st)
}
