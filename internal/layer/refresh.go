package layer

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// RasterScale returns the scale RefreshImage rasterizes at: the layer's
// current on-screen scale, capped by the largest scale the viewport could
// ever show. Without a viewport provider only the on-screen scale applies.
func (l *Layer) RasterScale() float64 {
	current := l.view.Frame().Size().ScaleTo(ImageBaseSize)
	if l.viewport == nil {
		return current
	}
	maxScale := l.viewport.ViewportSize().ScaleTo(ImageBaseSize)
	if maxScale <= 0 {
		return current
	}
	return math.Min(maxScale, current)
}

// RefreshImage re-rasterizes the asset for the layer's current on-screen
// size and re-applies the tint, which rasterization resets. On error the
// bitmap and tint are left as they were.
func (l *Layer) RefreshImage() error {
	scale := l.RasterScale()
	saved := l.tint
	bmp, err := l.rasterizer.Rasterize(l.assetID, ImageBaseSize, scale)
	if err != nil {
		return fmt.Errorf("layer %d: refresh %s: %w", l.tag, l.assetID, err)
	}
	l.view.Bitmap = bmp
	l.view.Mode = RenderOriginal
	l.applyTint(saved)
	l.log.Debug("refreshed", zap.Float64("scale", scale))
	return nil
}
