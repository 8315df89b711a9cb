// Package layer implements a single placed image element of a poster: its
// transform and tint state, its reaction to tap and pan gestures, and its
// commit/undo history.
//
// A Layer is driven from one goroutine, normally the editor's event loop.
// It holds no locks; every method completes its state change and any
// delegate notification before returning.
package layer

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/example/posterlayer/internal/geom"
	"go.uber.org/zap"
	"golang.org/x/image/math/f64"
)

// Factory defaults.
var (
	DefaultSize   = geom.Sz(78, 100)
	DefaultCenter = geom.Pt(59, 154)
	DefaultScale  = 1.0
	// ImageBaseSize is the size assets are rasterized at before scaling.
	ImageBaseSize = geom.Sz(50, 50)
)

// assetSuffix is appended to an image name to form its asset id.
const assetSuffix = ".svg"

// ErrInvalidTransform is returned when a transform has a non-positive scale.
var ErrInvalidTransform = errors.New("layer: transform scale must be positive")

// AssetID returns the asset identifier for an image name.
func AssetID(name string) string {
	return name + assetSuffix
}

// Rasterizer renders a vector asset into a bitmap of size*scale pixels.
type Rasterizer interface {
	Rasterize(assetID string, size geom.Size, scale float64) (*image.RGBA, error)
}

// RasterizerFunc adapts a function to Rasterizer.
type RasterizerFunc func(assetID string, size geom.Size, scale float64) (*image.RGBA, error)

// Rasterize calls f.
func (f RasterizerFunc) Rasterize(assetID string, size geom.Size, scale float64) (*image.RGBA, error) {
	return f(assetID, size, scale)
}

// ViewportProvider reports the size of the host display.
type ViewportProvider interface {
	ViewportSize() geom.Size
}

// ViewportFunc adapts a function to ViewportProvider.
type ViewportFunc func() geom.Size

// ViewportSize calls f.
func (f ViewportFunc) ViewportSize() geom.Size { return f() }

// Delegate is notified of gestures on a layer. The layer does not own its
// delegate.
type Delegate interface {
	LayerTouched(l *Layer)
	LayerDragStarted(l *Layer)
	LayerDragEnded(l *Layer, at geom.Point)
}

// Container holds layers and can remove one.
type Container interface {
	RemoveLayer(l *Layer)
}

// RenderMode tells the host how to draw a layer's bitmap.
type RenderMode int

const (
	// RenderOriginal draws the bitmap's own colours.
	RenderOriginal RenderMode = iota
	// RenderTemplate uses the bitmap as an alpha mask filled with the tint colour.
	RenderTemplate
)

// View is what the host draws for a layer.
type View struct {
	Bitmap    *image.RGBA
	Mode      RenderMode
	TintColor color.RGBA
	Alpha     float64
	Matrix    f64.Aff3
	Center    geom.Point
	// Bounds is the untransformed display size.
	Bounds geom.Size
}

// Frame returns the axis-aligned box the transformed layer occupies in its
// container.
func (v View) Frame() geom.Rect {
	return geom.RectAround(v.Center, geom.BoundingSize(v.Matrix, v.Bounds))
}

// Layer is one placed, tintable image element.
type Layer struct {
	tag     int
	name    string
	assetID string
	kind    Kind

	transform Transform
	tint      Tint
	active    bool
	dragging  bool
	committed *Snapshot

	view View

	rasterizer Rasterizer
	viewport   ViewportProvider
	delegate   Delegate
	container  Container
	removed    bool
	log        *zap.Logger
}

type settings struct {
	size      geom.Size
	center    geom.Point
	scale     float64
	rotation  float64
	tint      Tint
	viewport  ViewportProvider
	delegate  Delegate
	container Container
	logger    *zap.Logger
}

// Option configures a Layer at creation.
type Option func(*settings)

// WithSize sets the display size.
func WithSize(s geom.Size) Option { return func(o *settings) { o.size = s } }

// WithCenter sets the initial center.
func WithCenter(p geom.Point) Option { return func(o *settings) { o.center = p } }

// WithScale sets the initial scale.
func WithScale(s float64) Option { return func(o *settings) { o.scale = s } }

// WithRotation sets the initial rotation in radians.
func WithRotation(r float64) Option { return func(o *settings) { o.rotation = r } }

// WithColor sets the initial tint colour at full intensity.
func WithColor(c color.Color) Option {
	return func(o *settings) { o.tint = NewTint(c, MaxIntensity) }
}

// WithTint sets the initial tint.
func WithTint(t Tint) Option { return func(o *settings) { o.tint = t } }

// WithViewport sets the display size source used by RefreshImage.
func WithViewport(v ViewportProvider) Option { return func(o *settings) { o.viewport = v } }

// WithDelegate sets the gesture delegate.
func WithDelegate(d Delegate) Option { return func(o *settings) { o.delegate = d } }

// WithContainer sets the container the layer removes itself from on discard.
func WithContainer(c Container) Option { return func(o *settings) { o.container = c } }

// WithLogger sets the logger. Layers log at debug level only.
func WithLogger(l *zap.Logger) Option { return func(o *settings) { o.logger = l } }

// New creates a layer showing the named image. The asset is rasterized once
// at the display size; rasterizer errors are returned unchanged in meaning
// (errors.Is matches them). The new layer is active and has no committed
// snapshot.
func New(name string, kind Kind, tag int, r Rasterizer, opts ...Option) (*Layer, error) {
	s := settings{
		size:   DefaultSize,
		center: DefaultCenter,
		scale:  DefaultScale,
		tint:   DefaultTint(),
	}
	for _, o := range opts {
		o(&s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if r == nil {
		return nil, fmt.Errorf("layer %q: nil rasterizer", name)
	}
	if s.size.Empty() {
		return nil, fmt.Errorf("layer %q: empty display size %vx%v", name, s.size.W, s.size.H)
	}
	t := NewTransform(s.center, s.scale, s.rotation)
	if !t.Valid() {
		return nil, fmt.Errorf("layer %q: %w", name, ErrInvalidTransform)
	}

	l := &Layer{
		tag:        tag,
		name:       name,
		assetID:    AssetID(name),
		kind:       kind,
		active:     true,
		rasterizer: r,
		viewport:   s.viewport,
		delegate:   s.delegate,
		container:  s.container,
		log:        s.logger.With(zap.Int("layer", tag), zap.String("asset", AssetID(name))),
	}
	bmp, err := r.Rasterize(l.assetID, ImageBaseSize, s.size.ScaleTo(ImageBaseSize))
	if err != nil {
		return nil, fmt.Errorf("layer %q: rasterize: %w", name, err)
	}
	l.view.Bitmap = bmp
	l.view.Bounds = s.size
	l.view.Center = s.center
	l.applyTint(s.tint)
	l.applyTransform(t)
	return l, nil
}

// Tag returns the layer's identity.
func (l *Layer) Tag() int { return l.tag }

// Name returns the image name the layer was created from.
func (l *Layer) Name() string { return l.name }

// AssetID returns the rasterized asset's identifier.
func (l *Layer) AssetID() string { return l.assetID }

// Kind returns the layer kind.
func (l *Layer) Kind() Kind { return l.kind }

// Settings returns the adjustment panel for the layer's kind.
func (l *Layer) Settings() SettingsKind { return l.kind.Settings() }

// Transform returns the current transform.
func (l *Layer) Transform() Transform { return l.transform }

// Tint returns the current tint.
func (l *Layer) Tint() Tint { return l.tint }

// View returns a copy of the render state.
func (l *Layer) View() View { return l.view }

// Active reports whether the layer accepts pan gestures.
func (l *Layer) Active() bool { return l.active }

// Dragging reports whether a pan is in progress.
func (l *Layer) Dragging() bool { return l.dragging }

// Removed reports whether the layer discarded itself through Undo.
func (l *Layer) Removed() bool { return l.removed }

// SetActive enables or disables pan handling. Deactivating mid-drag drops
// the drag without notifying the delegate.
func (l *Layer) SetActive(active bool) {
	l.active = active
	if !active {
		l.dragging = false
	}
}

// SetDelegate replaces the delegate; nil disables notifications.
func (l *Layer) SetDelegate(d Delegate) { l.delegate = d }

// SetContainer records the container that holds the layer.
func (l *Layer) SetContainer(c Container) { l.container = c }

// SetViewport replaces the display size source.
func (l *Layer) SetViewport(v ViewportProvider) { l.viewport = v }

// SetTransform replaces the transform and recomputes the displayed matrix.
// The placement point is not moved; drags and Undo move it.
func (l *Layer) SetTransform(t Transform) error {
	if !t.Valid() {
		return ErrInvalidTransform
	}
	l.applyTransform(t)
	return nil
}

// SetTint replaces the tint. The bitmap switches to template rendering, the
// tint colour and the opacity are updated together.
func (l *Layer) SetTint(t Tint) {
	l.applyTint(t)
}

// ChangeColor is SetTint under the name palette widgets use.
func (l *Layer) ChangeColor(t Tint) {
	l.applyTint(t)
}

func (l *Layer) applyTransform(t Transform) {
	l.transform = t
	l.view.Matrix = t.Apply()
}

func (l *Layer) applyTint(t Tint) {
	t.Intensity = clampIntensity(t.Intensity)
	l.tint = t
	l.view.Mode = RenderTemplate
	l.view.TintColor = t.Color
	l.view.Alpha = t.Opacity()
}
