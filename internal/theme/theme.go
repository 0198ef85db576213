package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/OogleOG/MEUI/pkg/errors"
)

// RGB is a color with each channel in [0, 1].
type RGB struct {
	R, G, B float64
}

// ToLipgloss converts the color to a truecolor lipgloss value.
func (c RGB) ToLipgloss() lipgloss.Color {
	clamp := func(v float64) int {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 255
		}
		return int(v * 255)
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", clamp(c.R), clamp(c.G), clamp(c.B)))
}

// Palette is an immutable five-tone color ramp. A Window owns one palette;
// sharing a palette between windows is safe because it is never mutated.
type Palette struct {
	Dark   RGB
	Medium RGB
	Light  RGB
	Bright RGB
	Glow   RGB
}

// builtins maps theme names to their palettes. Treated as process-wide
// constant data; never written after init.
var builtins = map[string]Palette{
	"purple": {
		Dark:   RGB{0.12, 0.05, 0.18},
		Medium: RGB{0.30, 0.15, 0.45},
		Light:  RGB{0.55, 0.35, 0.75},
		Bright: RGB{0.75, 0.55, 0.95},
		Glow:   RGB{0.90, 0.75, 1.00},
	},
	"blue": {
		Dark:   RGB{0.04, 0.09, 0.18},
		Medium: RGB{0.10, 0.25, 0.45},
		Light:  RGB{0.25, 0.45, 0.70},
		Bright: RGB{0.40, 0.65, 0.90},
		Glow:   RGB{0.65, 0.85, 1.00},
	},
	"green": {
		Dark:   RGB{0.04, 0.14, 0.06},
		Medium: RGB{0.10, 0.32, 0.15},
		Light:  RGB{0.22, 0.52, 0.28},
		Bright: RGB{0.35, 0.75, 0.42},
		Glow:   RGB{0.60, 0.95, 0.65},
	},
	"red": {
		Dark:   RGB{0.16, 0.04, 0.04},
		Medium: RGB{0.40, 0.10, 0.10},
		Light:  RGB{0.65, 0.22, 0.22},
		Bright: RGB{0.88, 0.35, 0.35},
		Glow:   RGB{1.00, 0.60, 0.60},
	},
	"orange": {
		Dark:   RGB{0.16, 0.09, 0.02},
		Medium: RGB{0.42, 0.24, 0.06},
		Light:  RGB{0.68, 0.42, 0.14},
		Bright: RGB{0.92, 0.60, 0.22},
		Glow:   RGB{1.00, 0.80, 0.45},
	},
	"grey": {
		Dark:   RGB{0.08, 0.08, 0.08},
		Medium: RGB{0.25, 0.25, 0.25},
		Light:  RGB{0.45, 0.45, 0.45},
		Bright: RGB{0.65, 0.65, 0.65},
		Glow:   RGB{0.85, 0.85, 0.85},
	},
}

// Named returns the built-in palette for name. Unknown names are a
// programmer error and fail fast.
func Named(name string) (Palette, error) {
	p, ok := builtins[name]
	if !ok {
		return Palette{}, errors.NewThemeError(name)
	}
	return p, nil
}

// Names returns the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
