package gesture

import (
	"github.com/example/posterlayer/internal/geom"
	"golang.org/x/mobile/event/mouse"
)

// DefaultDeadZone is the distance in pixels the pointer must travel after a
// press before the press is treated as a pan instead of a tap.
const DefaultDeadZone = 4

// HitFunc returns the target under p, or nil.
type HitFunc func(p geom.Point) Target

// Recognizer converts left-button mouse events into taps and pans. It is
// driven from the window's event loop and is not safe for concurrent use.
type Recognizer struct {
	// Origin is the container origin in window coordinates.
	Origin geom.Point
	// DeadZone overrides DefaultDeadZone when positive.
	DeadZone float64
	Hit      HitFunc

	down     bool
	dragging bool
	start    geom.Point
	last     geom.Point
	target   Target
}

// NewRecognizer returns a recognizer that resolves targets with hit.
func NewRecognizer(hit HitFunc) *Recognizer {
	return &Recognizer{Hit: hit}
}

// Dragging reports whether a pan is in progress.
func (r *Recognizer) Dragging() bool {
	return r.dragging
}

// Handle feeds one mouse event. It reports whether the event was consumed.
func (r *Recognizer) Handle(e mouse.Event) bool {
	p := geom.Pt(float64(e.X), float64(e.Y)).Sub(r.Origin)
	switch {
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
		return r.press(p)
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
		return r.release(p)
	case e.Direction == mouse.DirNone:
		return r.move(p)
	}
	return false
}

// Cancel aborts an in-progress pan with PhaseCancelled. A pending press
// that never became a pan is dropped without a tap.
func (r *Recognizer) Cancel() {
	if r.dragging && r.target != nil {
		r.target.HandlePan(Pan{Phase: PhaseCancelled, Location: r.last})
	}
	r.reset()
}

func (r *Recognizer) press(p geom.Point) bool {
	r.reset()
	if r.Hit != nil {
		r.target = r.Hit(p)
	}
	if r.target == nil {
		return false
	}
	r.down = true
	r.start = p
	r.last = p
	return true
}

func (r *Recognizer) move(p geom.Point) bool {
	if !r.down {
		return false
	}
	if p == r.last {
		return true
	}
	r.last = p
	if !r.dragging {
		if p.Distance(r.start) <= r.deadZone() {
			return true
		}
		r.dragging = true
		r.target.HandlePan(Pan{Phase: PhaseBegan, Location: p})
		return true
	}
	r.target.HandlePan(Pan{Phase: PhaseChanged, Location: p})
	return true
}

func (r *Recognizer) release(p geom.Point) bool {
	if !r.down {
		return false
	}
	target := r.target
	dragging := r.dragging
	r.reset()
	if dragging {
		target.HandlePan(Pan{Phase: PhaseEnded, Location: p})
		return true
	}
	if r.Hit == nil || r.Hit(p) == target {
		target.HandleTap(p)
	}
	return true
}

func (r *Recognizer) deadZone() float64 {
	if r.DeadZone > 0 {
		return r.DeadZone
	}
	return DefaultDeadZone
}

func (r *Recognizer) reset() {
	r.down = false
	r.dragging = false
	r.target = nil
}
