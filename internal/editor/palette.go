package editor

import (
	"image/color"

	"github.com/example/posterlayer/internal/layer"
	"github.com/example/posterlayer/internal/theme"
)

// PaletteColor is a named tint choice.
type PaletteColor struct {
	Name  string
	Color color.RGBA
}

// Palette is bound to the number keys 1 to 8.
var Palette = []PaletteColor{
	{"White", color.RGBA{255, 255, 255, 255}},
	{"Black", color.RGBA{0, 0, 0, 255}},
	{"Red", color.RGBA{220, 40, 40, 255}},
	{"Orange", color.RGBA{255, 140, 0, 255}},
	{"Yellow", color.RGBA{255, 215, 0, 255}},
	{"Green", color.RGBA{40, 170, 80, 255}},
	{"Blue", color.RGBA{30, 110, 230, 255}},
	{"Purple", color.RGBA{140, 60, 200, 255}},
}

// IntensityStep is how far one +/- key press moves the tint intensity.
const IntensityStep = 10

// ColorName returns the palette name of c, or its hex form.
func ColorName(c color.RGBA) string {
	for _, p := range Palette {
		if p.Color == c {
			return p.Name
		}
	}
	return theme.FormatColor(c)
}

// stepIntensity moves t's intensity by steps of IntensityStep, clamped to
// the valid range.
func stepIntensity(t layer.Tint, steps int) layer.Tint {
	return layer.NewTint(t.Color, t.Intensity+float64(steps*IntensityStep))
}
