package editor

import (
	"github.com/example/posterlayer/internal/geom"
	"github.com/example/posterlayer/internal/layer"
	"go.uber.org/zap"
)

// Delegate reacts to layer gestures on behalf of a canvas: a touched layer
// becomes the single active layer and moves to the top of the stack.
type Delegate struct {
	canvas   *Canvas
	log      *zap.Logger
	onChange func()
}

// NewDelegate returns a delegate for c. onChange, if set, runs after any
// notification that alters what is drawn.
func NewDelegate(c *Canvas, logger *zap.Logger, onChange func()) *Delegate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Delegate{canvas: c, log: logger, onChange: onChange}
}

// LayerTouched activates l.
func (d *Delegate) LayerTouched(l *layer.Layer) {
	d.canvas.Activate(l)
	d.canvas.Raise(l)
	d.log.Debug("layer touched", zap.Int("layer", l.Tag()))
	d.changed()
}

// LayerDragStarted records the start of a drag.
func (d *Delegate) LayerDragStarted(l *layer.Layer) {
	d.log.Debug("drag started", zap.Int("layer", l.Tag()), zap.Stringer("center", pointer(l.Transform().Center)))
}

// LayerDragEnded records where a drag finished.
func (d *Delegate) LayerDragEnded(l *layer.Layer, at geom.Point) {
	d.log.Info("layer moved",
		zap.Int("layer", l.Tag()),
		zap.Float64("x", at.X),
		zap.Float64("y", at.Y))
	d.changed()
}

func (d *Delegate) changed() {
	if d.onChange != nil {
		d.onChange()
	}
}

type pointer geom.Point

func (p pointer) String() string {
	return geom.Point(p).Image().String()
}

var _ layer.Delegate = (*Delegate)(nil)
