package layer

import (
	"image/color"
	"math"
)

// MaxIntensity is the intensity at which a tinted layer is fully opaque.
const MaxIntensity = 100

// Tint is a mask colour and an intensity percentage. The layer's rendered
// opacity is always Intensity/100.
type Tint struct {
	Color     color.RGBA
	Intensity float64
}

// NewTint returns a Tint for c, clamping intensity to [0, 100]. The colour is
// stored opaque; transparency comes only from the intensity.
func NewTint(c color.Color, intensity float64) Tint {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if rgba.A != 0 && rgba.A != 0xff {
		// un-premultiply so the stored hue matches what the caller picked
		rgba.R = uint8(uint32(rgba.R) * 0xff / uint32(rgba.A))
		rgba.G = uint8(uint32(rgba.G) * 0xff / uint32(rgba.A))
		rgba.B = uint8(uint32(rgba.B) * 0xff / uint32(rgba.A))
	}
	rgba.A = 0xff
	return Tint{Color: rgba, Intensity: clampIntensity(intensity)}
}

// DefaultTint is white at full intensity.
func DefaultTint() Tint {
	return NewTint(color.White, MaxIntensity)
}

// Opacity returns the rendered alpha for this tint in [0, 1].
func (t Tint) Opacity() float64 {
	return t.Intensity / MaxIntensity
}

func clampIntensity(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > MaxIntensity {
		return MaxIntensity
	}
	return v
}
