package gesture

import (
	"testing"

	"github.com/example/posterlayer/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/mouse"
)

type recorder struct {
	taps []geom.Point
	pans []Pan
}

func (r *recorder) HandleTap(at geom.Point) { r.taps = append(r.taps, at) }
func (r *recorder) HandlePan(p Pan)         { r.pans = append(r.pans, p) }

func press(x, y float32) mouse.Event {
	return mouse.Event{X: x, Y: y, Button: mouse.ButtonLeft, Direction: mouse.DirPress}
}

func moveTo(x, y float32) mouse.Event {
	return mouse.Event{X: x, Y: y, Direction: mouse.DirNone}
}

func release(x, y float32) mouse.Event {
	return mouse.Event{X: x, Y: y, Button: mouse.ButtonLeft, Direction: mouse.DirRelease}
}

func always(t Target) HitFunc {
	return func(geom.Point) Target { return t }
}

func TestTapWithinDeadZone(t *testing.T) {
	rec := &recorder{}
	r := NewRecognizer(always(rec))

	assert.True(t, r.Handle(press(10, 10)))
	r.Handle(moveTo(12, 11))
	r.Handle(release(12, 11))

	require.Len(t, rec.taps, 1)
	assert.Equal(t, geom.Pt(12, 11), rec.taps[0])
	assert.Empty(t, rec.pans)
}

func TestPanSequence(t *testing.T) {
	rec := &recorder{}
	r := NewRecognizer(always(rec))
	r.Origin = geom.Pt(0, 24)

	r.Handle(press(10, 34))
	r.Handle(moveTo(30, 34))
	assert.True(t, r.Dragging())
	r.Handle(moveTo(40, 44))
	r.Handle(moveTo(40, 44))
	r.Handle(release(41, 45))

	assert.Empty(t, rec.taps)
	assert.Equal(t, []Pan{
		{Phase: PhaseBegan, Location: geom.Pt(30, 10)},
		{Phase: PhaseChanged, Location: geom.Pt(40, 20)},
		{Phase: PhaseEnded, Location: geom.Pt(41, 21)},
	}, rec.pans)
	assert.False(t, r.Dragging())
}

func TestPressOutsideTargetsIgnored(t *testing.T) {
	r := NewRecognizer(func(geom.Point) Target { return nil })
	assert.False(t, r.Handle(press(1, 1)))
	assert.False(t, r.Handle(moveTo(50, 50)))
	assert.False(t, r.Handle(release(50, 50)))
}

func TestCancelDuringPan(t *testing.T) {
	rec := &recorder{}
	r := NewRecognizer(always(rec))
	r.Handle(press(0, 0))
	r.Handle(moveTo(20, 0))
	r.Cancel()
	r.Handle(release(25, 0))

	require.Len(t, rec.pans, 2)
	assert.Equal(t, PhaseCancelled, rec.pans[1].Phase)
	assert.Equal(t, geom.Pt(20, 0), rec.pans[1].Location)
	assert.Empty(t, rec.taps)
}

func TestReleaseOverOtherTargetIsNotTap(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	r := NewRecognizer(func(p geom.Point) Target {
		if p.X < 100 {
			return a
		}
		return b
	})
	r.DeadZone = 1000
	r.Handle(press(10, 10))
	r.Handle(release(150, 10))
	assert.Empty(t, a.taps)
	assert.Empty(t, b.taps)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "began", PhaseBegan.String())
	assert.Equal(t, "Phase(9)", Phase(9).String())
}
