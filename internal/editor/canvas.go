// Package editor hosts image layers on a poster canvas: it routes gestures
// and key commands to them and draws the result in a shiny window.
package editor

import (
	"image"
	"image/draw"

	"github.com/example/posterlayer/internal/geom"
	"github.com/example/posterlayer/internal/layer"
	"github.com/example/posterlayer/internal/render"
	"github.com/example/posterlayer/internal/theme"
)

const checkerSize = 8

// Canvas is the poster surface: an ordered stack of layers, bottom first.
// It is the container layers remove themselves from on Undo.
type Canvas struct {
	Size   geom.Size
	layers []*layer.Layer
}

// NewCanvas returns an empty canvas of the given size.
func NewCanvas(size geom.Size) *Canvas {
	return &Canvas{Size: size}
}

// Add places l on top of the stack and makes the canvas its container.
func (c *Canvas) Add(l *layer.Layer) {
	l.SetContainer(c)
	c.layers = append(c.layers, l)
}

// RemoveLayer drops l from the stack. Unknown layers are ignored.
func (c *Canvas) RemoveLayer(l *layer.Layer) {
	for i, x := range c.layers {
		if x == l {
			c.layers = append(c.layers[:i], c.layers[i+1:]...)
			return
		}
	}
}

// Layers returns the stack, bottom first.
func (c *Canvas) Layers() []*layer.Layer {
	out := make([]*layer.Layer, len(c.layers))
	copy(out, c.layers)
	return out
}

// Len returns the number of layers.
func (c *Canvas) Len() int { return len(c.layers) }

// LayerAt returns the topmost layer whose frame contains p.
func (c *Canvas) LayerAt(p geom.Point) *layer.Layer {
	for i := len(c.layers) - 1; i >= 0; i-- {
		if c.layers[i].View().Frame().Contains(p) {
			return c.layers[i]
		}
	}
	return nil
}

// Active returns the topmost active layer.
func (c *Canvas) Active() *layer.Layer {
	for i := len(c.layers) - 1; i >= 0; i-- {
		if c.layers[i].Active() {
			return c.layers[i]
		}
	}
	return nil
}

// Activate makes l the only active layer. A nil l deactivates every layer.
func (c *Canvas) Activate(l *layer.Layer) {
	for _, x := range c.layers {
		x.SetActive(x == l)
	}
}

// Raise moves l to the top of the stack.
func (c *Canvas) Raise(l *layer.Layer) {
	for i, x := range c.layers {
		if x == l {
			c.layers = append(append(c.layers[:i:i], c.layers[i+1:]...), l)
			return
		}
	}
}

// Index returns l's position in the stack, or -1.
func (c *Canvas) Index(l *layer.Layer) int {
	for i, x := range c.layers {
		if x == l {
			return i
		}
	}
	return -1
}

// Style controls how the canvas is drawn.
type Style struct {
	Theme *theme.Theme
	// Shadow, when set, draws a drop shadow under every layer.
	Shadow *render.ShadowOptions
	// Editing adds the checkerboard backdrop and layer outlines.
	Editing bool
}

// Draw renders the canvas into dst with its top-left corner at origin.
func (c *Canvas) Draw(dst *image.RGBA, origin image.Point, st Style) {
	th := st.Theme
	if th == nil {
		th = theme.Default()
	}
	bounds := image.Rectangle{Max: c.Size.Pixels()}.Add(origin)
	if st.Editing {
		render.Checkerboard(dst, bounds, checkerSize, th.CheckerLight, th.CheckerDark)
	}
	for _, l := range c.layers {
		render.Place(dst, origin, l.View(), st.Shadow)
	}
	if !st.Editing {
		return
	}
	for _, l := range c.layers {
		r := l.View().Frame().Image().Add(origin)
		if l.Active() {
			render.DashedRect(dst, r, 4, th.SelectionA, th.SelectionB)
		} else {
			render.DashedRect(dst, r, 2, th.Inactive, th.Inactive)
		}
	}
}

// Image renders the poster alone on a transparent background.
func (c *Canvas) Image(shadow *render.ShadowOptions) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: c.Size.Pixels()})
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	c.Draw(img, image.Point{}, Style{Shadow: shadow})
	return img
}

var _ layer.Container = (*Canvas)(nil)
