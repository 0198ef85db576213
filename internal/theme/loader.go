package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OogleOG/MEUI/pkg/errors"
)

// paletteFile is the on-disk YAML shape for a custom palette. Each tone is
// a three-element [r, g, b] list with channels in [0, 1].
type paletteFile struct {
	Dark   []float64 `yaml:"dark"`
	Medium []float64 `yaml:"medium"`
	Light  []float64 `yaml:"light"`
	Bright []float64 `yaml:"bright"`
	Glow   []float64 `yaml:"glow"`
}

// LoadPalette reads a custom palette from a YAML file. Unlike config
// persistence this is caller input, so problems are surfaced as errors.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, errors.NewValidationError("palette", fmt.Sprintf("cannot read %s", path), err)
	}

	var file paletteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Palette{}, errors.NewValidationError("palette", fmt.Sprintf("cannot parse %s", path), err)
	}

	tones := map[string][]float64{
		"dark":   file.Dark,
		"medium": file.Medium,
		"light":  file.Light,
		"bright": file.Bright,
		"glow":   file.Glow,
	}

	parsed := make(map[string]RGB, len(tones))
	for name, channels := range tones {
		color, err := parseTone(name, channels)
		if err != nil {
			return Palette{}, err
		}
		parsed[name] = color
	}

	return Palette{
		Dark:   parsed["dark"],
		Medium: parsed["medium"],
		Light:  parsed["light"],
		Bright: parsed["bright"],
		Glow:   parsed["glow"],
	}, nil
}

func parseTone(name string, channels []float64) (RGB, error) {
	if len(channels) != 3 {
		return RGB{}, errors.NewValidationError(name, fmt.Sprintf("expected 3 channels, got %d", len(channels)), nil)
	}
	for i, v := range channels {
		if v < 0 || v > 1 {
			return RGB{}, errors.NewValidationError(name, fmt.Sprintf("channel %d out of range: %v", i, v), nil)
		}
	}
	return RGB{channels[0], channels[1], channels[2]}, nil
}
