package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow cast by a placed layer.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// ShadowResult captures the output of ApplyShadow.
type ShadowResult struct {
	// Image is the layer bitmap composited over its blurred shadow.
	Image *image.RGBA
	// Offset is where the bitmap's top-left corner ended up inside Image.
	// Placement uses it to keep the layer's center where it was.
	Offset image.Point
}

// DefaultShadowOptions returns a soft shadow sized for sticker-scale layers.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  6,
		Offset:  image.Pt(4, 4),
		Opacity: 0.4,
	}
}

// ApplyShadow composites img over a blurred copy of its alpha channel. The
// result has a zero origin.
func ApplyShadow(img *image.RGBA, opts ShadowOptions) ShadowResult {
	if img == nil {
		return ShadowResult{}
	}
	if img.Bounds().Empty() || opts.Opacity <= 0 {
		return ShadowResult{Image: img}
	}
	opacity := opts.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := opts.Radius
	if radius < 0 {
		radius = 0
	}

	srcBounds := img.Bounds()
	paddedBounds := srcBounds.Inset(-radius)
	shadowBounds := paddedBounds.Add(opts.Offset)
	compositeBounds := srcBounds.Union(shadowBounds)
	dstRect := compositeBounds.Sub(compositeBounds.Min)
	if dstRect.Empty() {
		return ShadowResult{Image: img}
	}

	shift := srcBounds.Min.Sub(compositeBounds.Min)
	shadowOrigin := shadowBounds.Min.Sub(compositeBounds.Min)

	mask := image.NewAlpha(paddedBounds.Sub(paddedBounds.Min))
	for y := srcBounds.Min.Y; y < srcBounds.Max.Y; y++ {
		for x := srcBounds.Min.X; x < srcBounds.Max.X; x++ {
			a := img.RGBAAt(x, y).A
			if a == 0 {
				continue
			}
			mask.SetAlpha(x-paddedBounds.Min.X, y-paddedBounds.Min.Y, color.Alpha{A: a})
		}
	}
	blurred := boxBlur(mask, radius)

	dst := image.NewRGBA(dstRect)
	shadowAlpha := uint8(opacity*255 + 0.5)
	if shadowAlpha > 0 {
		draw.DrawMask(dst, blurred.Bounds().Add(shadowOrigin), image.NewUniform(color.RGBA{A: shadowAlpha}), image.Point{}, blurred, blurred.Bounds().Min, draw.Over)
	}
	draw.Draw(dst, srcBounds.Sub(compositeBounds.Min), img, srcBounds.Min, draw.Over)
	return ShadowResult{Image: dst, Offset: shift}
}

// boxBlur runs a separable box blur of the given radius over src.
func boxBlur(src *image.Alpha, radius int) *image.Alpha {
	dst := image.NewAlpha(src.Bounds())
	if radius <= 0 {
		copy(dst.Pix, src.Pix)
		return dst
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	tmp := image.NewAlpha(src.Bounds())
	blurLine(w, h, radius, func(line, i int) int { return int(src.Pix[line*src.Stride+i]) },
		func(line, i int, v uint8) { tmp.Pix[line*tmp.Stride+i] = v })
	blurLine(h, w, radius, func(line, i int) int { return int(tmp.Pix[i*tmp.Stride+line]) },
		func(line, i int, v uint8) { dst.Pix[i*dst.Stride+line] = v })
	return dst
}

// blurLine averages each of n entries over a window of 2*radius+1 along
// every one of lines lines, using a prefix sum per line.
func blurLine(n, lines, radius int, get func(line, i int) int, set func(line, i int, v uint8)) {
	prefix := make([]int, n+1)
	for line := 0; line < lines; line++ {
		for i := 0; i < n; i++ {
			prefix[i+1] = prefix[i] + get(line, i)
		}
		for i := 0; i < n; i++ {
			lo := max(i-radius, 0)
			hi := min(i+radius, n-1)
			set(line, i, uint8((prefix[hi+1]-prefix[lo])/(hi-lo+1)))
		}
	}
}
