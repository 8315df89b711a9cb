package editor

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/example/posterlayer/assets"
	"github.com/example/posterlayer/internal/clipboard"
	"github.com/example/posterlayer/internal/geom"
	"github.com/example/posterlayer/internal/layer"
	"github.com/example/posterlayer/internal/notify"
	"go.uber.org/zap"
)

// ErrNoActiveLayer is returned by commands that act on the active layer
// when there is none.
var ErrNoActiveLayer = errors.New("no active layer")

const (
	rotateStep = math.Pi / 12
	scaleStep  = 1.1
	messageTTL = 2 * time.Second
)

// Session is the editor state behind the window: the canvas, the layer
// factory settings and the commands bound to keys.
type Session struct {
	Canvas *Canvas
	Style  Style
	Output string

	raster    layer.Rasterizer
	catalog   *assets.Catalog
	layerOpts []layer.Option
	delegate  *Delegate
	notifier  *notify.Notifier
	copyImage func(image.Image) error
	log       *zap.Logger
	now       func() time.Time

	nextTag   int
	nextAsset int

	message      string
	messageUntil time.Time
	changed      func()
}

// Option configures a Session.
type Option func(*Session)

// WithOutput sets the PNG path Save writes to.
func WithOutput(path string) Option { return func(s *Session) { s.Output = path } }

// WithStyle sets how the canvas is drawn.
func WithStyle(st Style) Option { return func(s *Session) { s.Style = st } }

// WithLayerOptions sets the factory options applied to every new layer.
func WithLayerOptions(opts ...layer.Option) Option {
	return func(s *Session) { s.layerOpts = append(s.layerOpts, opts...) }
}

// WithCatalog sets the catalog new layers are picked from.
func WithCatalog(c *assets.Catalog) Option { return func(s *Session) { s.catalog = c } }

// WithNotifier sets the desktop notifier used by Save and Copy.
func WithNotifier(n *notify.Notifier) Option { return func(s *Session) { s.notifier = n } }

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(image.Image) error) Option {
	return func(s *Session) { s.copyImage = fn }
}

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option { return func(s *Session) { s.log = l } }

// WithOnChange registers a callback run whenever the drawn state changes.
func WithOnChange(fn func()) Option { return func(s *Session) { s.changed = fn } }

// NewSession returns a session with an empty canvas of the given size.
func NewSession(size geom.Size, r layer.Rasterizer, opts ...Option) *Session {
	s := &Session{
		Canvas:    NewCanvas(size),
		Style:     Style{Editing: true},
		Output:    "poster.png",
		raster:    r,
		catalog:   assets.Default(),
		copyImage: clipboard.WriteImage,
		log:       zap.NewNop(),
		now:       time.Now,
		nextTag:   1,
	}
	for _, o := range opts {
		o(s)
	}
	s.delegate = NewDelegate(s.Canvas, s.log, s.notifyChange)
	return s
}

// Delegate returns the delegate attached to the session's layers.
func (s *Session) Delegate() *Delegate { return s.delegate }

// AddLayer creates a layer for the named asset, puts it on top of the canvas
// and makes it the active one.
func (s *Session) AddLayer(name string, kind layer.Kind) (*layer.Layer, error) {
	opts := append([]layer.Option{}, s.layerOpts...)
	opts = append(opts,
		layer.WithDelegate(s.delegate),
		layer.WithContainer(s.Canvas),
		layer.WithLogger(s.log))
	l, err := layer.New(name, kind, s.nextTag, s.raster, opts...)
	if err != nil {
		return nil, err
	}
	s.nextTag++
	s.Canvas.Add(l)
	s.Canvas.Activate(l)
	s.log.Info("layer added", zap.Int("layer", l.Tag()), zap.String("asset", l.AssetID()), zap.Stringer("kind", l.Kind()))
	s.notifyChange()
	return l, nil
}

// AddNext adds a layer for the next catalog entry, cycling through the
// catalog.
func (s *Session) AddNext() (*layer.Layer, error) {
	entries, err := s.catalog.Entries()
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("list assets: %w", assets.ErrUnknownAsset)
	}
	e := entries[s.nextAsset%len(entries)]
	s.nextAsset++
	kind, err := layer.ParseKind(e.Group)
	if err != nil {
		kind = layer.KindIcon
	}
	return s.AddLayer(e.Name, kind)
}

func (s *Session) active() (*layer.Layer, error) {
	l := s.Canvas.Active()
	if l == nil {
		return nil, ErrNoActiveLayer
	}
	return l, nil
}

// Commit saves the active layer's state as its undo baseline.
func (s *Session) Commit() error {
	l, err := s.active()
	if err != nil {
		return err
	}
	l.Commit()
	s.flash("committed layer %d", l.Tag())
	return nil
}

// Undo reverts the active layer to its last commit. A layer that was never
// committed is removed from the canvas.
func (s *Session) Undo() error {
	l, err := s.active()
	if err != nil {
		return err
	}
	discarded, err := l.Undo()
	if discarded {
		s.flash("removed layer %d", l.Tag())
		return nil
	}
	if err != nil {
		return err
	}
	s.flash("reverted layer %d", l.Tag())
	return nil
}

// SetColor tints the active layer with palette entry idx, keeping its
// intensity.
func (s *Session) SetColor(idx int) error {
	if idx < 0 || idx >= len(Palette) {
		return fmt.Errorf("palette index %d out of range", idx)
	}
	l, err := s.active()
	if err != nil {
		return err
	}
	l.ChangeColor(layer.NewTint(Palette[idx].Color, l.Tint().Intensity))
	s.notifyChange()
	return nil
}

// AdjustIntensity moves the active layer's tint intensity by steps.
func (s *Session) AdjustIntensity(steps int) error {
	l, err := s.active()
	if err != nil {
		return err
	}
	l.SetTint(stepIntensity(l.Tint(), steps))
	s.notifyChange()
	return nil
}

// Rotate turns the active layer by steps of 15 degrees and re-rasterizes it.
func (s *Session) Rotate(steps int) error {
	return s.retransform(func(t *layer.Transform) {
		t.Rotation = math.Remainder(t.Rotation+float64(steps)*rotateStep, 2*math.Pi)
	})
}

// Zoom scales the active layer by steps of 10% and re-rasterizes it.
func (s *Session) Zoom(steps int) error {
	return s.retransform(func(t *layer.Transform) {
		t.Scale *= math.Pow(scaleStep, float64(steps))
	})
}

func (s *Session) retransform(fn func(*layer.Transform)) error {
	l, err := s.active()
	if err != nil {
		return err
	}
	t := l.Transform()
	fn(&t)
	if err := l.SetTransform(t); err != nil {
		return err
	}
	return s.refresh(l)
}

// Refresh re-rasterizes the active layer at its current size.
func (s *Session) Refresh() error {
	l, err := s.active()
	if err != nil {
		return err
	}
	return s.refresh(l)
}

func (s *Session) refresh(l *layer.Layer) error {
	if err := l.RefreshImage(); err != nil {
		return err
	}
	s.notifyChange()
	return nil
}

// Poster renders the canvas without editing decorations.
func (s *Session) Poster() *image.RGBA {
	return s.Canvas.Image(s.Style.Shadow)
}

// Copy publishes the poster to the clipboard.
func (s *Session) Copy() error {
	img := s.Poster()
	if err := s.copyImage(img); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	s.notifier.Copy("poster", img)
	s.flash("poster copied to clipboard")
	return nil
}

// Save writes the poster to Output as PNG.
func (s *Session) Save() error {
	if err := WritePNG(s.Output, s.Poster()); err != nil {
		return err
	}
	s.notifier.Save(s.Output)
	s.flash("saved %s", s.Output)
	return nil
}

// WritePNG encodes img to path, creating parent directories.
func WritePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := png.Encode(out, img); err != nil {
		_ = out.Close()
		return fmt.Errorf("save: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("save: closing file: %w", err)
	}
	return nil
}

// Message returns the current status message, if it has not expired.
func (s *Session) Message() string {
	if s.message == "" || !s.now().Before(s.messageUntil) {
		return ""
	}
	return s.message
}

// Status describes the active layer for the status bar.
func (s *Session) Status() string {
	l := s.Canvas.Active()
	if l == nil {
		return fmt.Sprintf("%d layers, none active", s.Canvas.Len())
	}
	t := l.Tint()
	state := "uncommitted"
	if _, ok := l.Committed(); ok {
		state = "committed"
	}
	tr := l.Transform()
	return fmt.Sprintf("layer %d/%d %s (%s, %s) | %s %.0f%% | x%.2f %.0f° | %s",
		s.Canvas.Index(l)+1, s.Canvas.Len(), l.Name(), l.Kind(), l.Settings(),
		ColorName(t.Color), t.Intensity, tr.Scale, tr.Rotation*180/math.Pi, state)
}

func (s *Session) flash(format string, args ...any) {
	s.message = fmt.Sprintf(format, args...)
	s.messageUntil = s.now().Add(messageTTL)
	s.log.Info(s.message)
	s.notifyChange()
}

func (s *Session) notifyChange() {
	if s.changed != nil {
		s.changed()
	}
}
