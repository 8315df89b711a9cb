// Package render draws layers the way the editor's host surface shows them.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/example/posterlayer/internal/geom"
	"github.com/example/posterlayer/internal/layer"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Tinted returns the bitmap of v with its render mode, tint colour and alpha
// applied. In template mode the bitmap only contributes its alpha channel.
func Tinted(v layer.View) *image.RGBA {
	if v.Bitmap == nil {
		return nil
	}
	src := v.Bitmap
	out := image.NewRGBA(src.Bounds())
	alpha := math.Max(0, math.Min(1, v.Alpha))
	tc := v.TintColor
	for i := 0; i+3 < len(src.Pix); i += 4 {
		if v.Mode == layer.RenderTemplate {
			a := float64(src.Pix[i+3]) * alpha
			out.Pix[i+0] = uint8(float64(tc.R)*a/255 + 0.5)
			out.Pix[i+1] = uint8(float64(tc.G)*a/255 + 0.5)
			out.Pix[i+2] = uint8(float64(tc.B)*a/255 + 0.5)
			out.Pix[i+3] = uint8(a + 0.5)
			continue
		}
		for k := 0; k < 4; k++ {
			out.Pix[i+k] = uint8(float64(src.Pix[i+k])*alpha + 0.5)
		}
	}
	return out
}

// LayerMatrix maps bitmap pixel coordinates to container coordinates. The
// bitmap is fitted into the view bounds keeping its aspect ratio, centered,
// transformed by the view matrix and moved to the view center. anchor is the
// bitmap point that lands on the center.
func LayerMatrix(v layer.View, bitmap image.Point, anchor geom.Point) f64.Aff3 {
	fit := 1.0
	if bitmap.X > 0 && bitmap.Y > 0 && !v.Bounds.Empty() {
		fit = math.Min(v.Bounds.W/float64(bitmap.X), v.Bounds.H/float64(bitmap.Y))
	}
	m := layer.Translation(geom.Pt(-anchor.X, -anchor.Y))
	m = layer.Mul(layer.Scaling(fit), m)
	m = layer.Mul(v.Matrix, m)
	return layer.Mul(layer.Translation(v.Center), m)
}

// Place draws v onto dst. origin is the container's top-left corner in dst
// coordinates. A non-nil shadow draws a drop shadow under the layer.
func Place(dst draw.Image, origin image.Point, v layer.View, shadow *ShadowOptions) {
	img := Tinted(v)
	if img == nil || img.Bounds().Empty() {
		return
	}
	size := img.Bounds().Size()
	anchor := geom.Pt(float64(size.X)/2, float64(size.Y)/2)
	if shadow != nil {
		res := ApplyShadow(img, *shadow)
		img = res.Image
		anchor.X += float64(res.Offset.X)
		anchor.Y += float64(res.Offset.Y)
	}
	m := layer.Mul(layer.Translation(geom.FromImage(origin)), LayerMatrix(v, size, anchor))
	xdraw.CatmullRom.Transform(dst, m, img, img.Bounds(), xdraw.Over, nil)
}

// Checkerboard fills rect of dst with squares of the given size.
func Checkerboard(dst *image.RGBA, rect image.Rectangle, size int, light, dark color.RGBA) {
	rect = rect.Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := dark
			if ((x/size)+(y/size))%2 == 0 {
				c = light
			}
			dst.SetRGBA(x, y, c)
		}
	}
}

// DashedRect outlines rect with alternating dashes of c1 and c2.
func DashedRect(dst *image.RGBA, rect image.Rectangle, dash int, c1, c2 color.RGBA) {
	if dash < 1 {
		dash = 1
	}
	plot := func(x, y, i int) {
		if (i/dash)%2 == 0 {
			dst.SetRGBA(x, y, c1)
		} else {
			dst.SetRGBA(x, y, c2)
		}
	}
	i := 0
	for x := rect.Min.X; x < rect.Max.X; x++ {
		plot(x, rect.Min.Y, i)
		i++
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		plot(rect.Max.X-1, y, i)
		i++
	}
	for x := rect.Max.X - 1; x >= rect.Min.X; x-- {
		plot(x, rect.Max.Y-1, i)
		i++
	}
	for y := rect.Max.Y - 1; y >= rect.Min.Y; y-- {
		plot(rect.Min.X, y, i)
		i++
	}
}
