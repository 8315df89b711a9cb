package layer

import (
	"github.com/example/posterlayer/internal/gesture"
	"github.com/example/posterlayer/internal/geom"
)

// HandleTap notifies the delegate that the layer was touched. Taps are
// delivered whether or not the layer is active.
func (l *Layer) HandleTap(geom.Point) {
	if l.delegate != nil {
		l.delegate.LayerTouched(l)
	}
}

// HandlePan advances the drag state machine. Inactive layers ignore pans.
//
// Began starts a drag and notifies the delegate. Changed moves the center to
// the pointer location. Ended finishes the drag and reports the final
// location without moving the layer. Any other phase drops the drag
// silently and leaves the center where the last Changed put it.
func (l *Layer) HandlePan(p gesture.Pan) {
	if !l.active {
		return
	}
	switch p.Phase {
	case gesture.PhaseBegan:
		if l.dragging {
			return
		}
		l.dragging = true
		if l.delegate != nil {
			l.delegate.LayerDragStarted(l)
		}
	case gesture.PhaseChanged:
		if !l.dragging {
			return
		}
		l.transform.Center = p.Location
		l.view.Center = p.Location
	case gesture.PhaseEnded:
		if !l.dragging {
			return
		}
		l.dragging = false
		if l.delegate != nil {
			l.delegate.LayerDragEnded(l, p.Location)
		}
	default:
		l.dragging = false
	}
}

var _ gesture.Target = (*Layer)(nil)
