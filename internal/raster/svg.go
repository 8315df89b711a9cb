// Package raster renders SVG assets into bitmaps for layers.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/example/posterlayer/assets"
	"github.com/example/posterlayer/internal/geom"
	"github.com/example/posterlayer/internal/layer"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// MaxPixels bounds either output dimension.
const MaxPixels = 8192

var (
	// ErrInvalidScale is returned for non-positive or non-finite scales.
	ErrInvalidScale = errors.New("raster: invalid scale")
	// ErrTooLarge is returned when the output would exceed MaxPixels.
	ErrTooLarge = errors.New("raster: output too large")
)

// Source supplies SVG bytes by asset id.
type Source interface {
	Lookup(id string) ([]byte, error)
}

// SVG rasterizes SVG assets with oksvg and rasterx. Output is deterministic
// for identical inputs.
type SVG struct {
	Source Source
}

// NewSVG returns a rasterizer over src, or the embedded catalog when src is nil.
func NewSVG(src Source) *SVG {
	if src == nil {
		src = assets.Default()
	}
	return &SVG{Source: src}
}

var _ layer.Rasterizer = (*SVG)(nil)

// Rasterize draws assetID into a transparent bitmap of size*scale pixels.
func (s *SVG) Rasterize(assetID string, size geom.Size, scale float64) (*image.RGBA, error) {
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	px := geom.Sz(size.W*scale, size.H*scale).Pixels()
	if px.X > MaxPixels || px.Y > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, px.X, px.Y)
	}
	data, err := s.Source.Lookup(assetID)
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", assetID, err)
	}
	img := image.NewRGBA(image.Rectangle{Max: px})
	icon.SetTarget(0, 0, float64(px.X), float64(px.Y))
	scanner := rasterx.NewScannerGV(px.X, px.Y, img, img.Bounds())
	dasher := rasterx.NewDasher(px.X, px.Y, scanner)
	icon.Draw(dasher, 1.0)
	return img, nil
}
