// Package theme defines the color palettes for the display. A theme is a
// complete set of pixel colors; the built-in default reproduces the original
// device palette (converted from RGB565), and additional themes can be loaded
// from TOML files.
package theme

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
	"sync"
)

// Theme is the complete color palette for every screen element.
type Theme struct {
	Name string

	// Base colors
	Background Color // screen background
	Text       Color // primary text
	Subtle     Color // secondary text, labels
	Accent     Color // highlights, indicator dot, hot temperatures

	// Weather element colors
	Sun       Color // sun rays
	Moon      Color // night-time moon
	Crater    Color // moon craters
	Cloud     Color // cloud highlight layer
	CloudMid  Color // cloud mid layer
	CloudDark Color // cloud shadow layer
	Overcast  Color // overcast cloud base
	Rain      Color // rain strokes, humidity
	Bolt      Color // lightning
	Snow      Color // snowflakes

	// Status colors
	Success Color // healthy/low readings
	Error   Color // error text, very high UV
	Extreme Color // extreme UV

	// Time-of-day colors
	Daytime Color // daylight hour labels and clock digits
	Cold    Color // cold end of the temperature gradient
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	Register(Default())
}

// Register adds or replaces a theme in the registry, keyed by lowercase name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}

// Get returns a named theme, falling back to the default if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Names returns all registered theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Color is an opaque RGB color with TOML-friendly "#rrggbb" parsing.
type Color struct {
	R, G, B uint8
}

// RGBA returns the color as a stdlib color.RGBA with full alpha.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// UnmarshalText parses "#rrggbb" or "rrggbb".
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(string(text), "#")
	if len(s) != 6 {
		return fmt.Errorf("invalid color %q: want #rrggbb", string(text))
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return fmt.Errorf("invalid color %q: %w", string(text), err)
	}
	c.R, c.G, c.B = r, g, b
	return nil
}

// MarshalText renders the color as "#rrggbb".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), nil
}

func rgb(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }
