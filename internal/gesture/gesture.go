// Package gesture turns raw pointer input into the tap and pan events that
// layers react to.
package gesture

import (
	"fmt"

	"github.com/example/posterlayer/internal/geom"
)

// Phase identifies the stage of a pan gesture.
type Phase int

const (
	PhaseBegan Phase = iota + 1
	PhaseChanged
	PhaseEnded
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Pan is a single pan update. Location is in the coordinate space of the
// container that holds the target.
type Pan struct {
	Phase    Phase
	Location geom.Point
}

// Target receives recognized gestures.
type Target interface {
	HandleTap(at geom.Point)
	HandlePan(p Pan)
}
