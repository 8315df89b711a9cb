package layer

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/example/posterlayer/internal/geom"
	"github.com/example/posterlayer/internal/gesture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rasterCall struct {
	assetID string
	size    geom.Size
	scale   float64
}

type fakeRasterizer struct {
	calls []rasterCall
	err   error
}

func (f *fakeRasterizer) Rasterize(assetID string, size geom.Size, scale float64) (*image.RGBA, error) {
	f.calls = append(f.calls, rasterCall{assetID, size, scale})
	if f.err != nil {
		return nil, f.err
	}
	px := geom.Sz(size.W*scale, size.H*scale).Pixels()
	return image.NewRGBA(image.Rectangle{Max: px}), nil
}

func (f *fakeRasterizer) last() rasterCall { return f.calls[len(f.calls)-1] }

type delegateEvent struct {
	kind string
	at   geom.Point
}

type fakeDelegate struct {
	events []delegateEvent
}

func (d *fakeDelegate) LayerTouched(*Layer)     { d.events = append(d.events, delegateEvent{kind: "touched"}) }
func (d *fakeDelegate) LayerDragStarted(*Layer) { d.events = append(d.events, delegateEvent{kind: "started"}) }
func (d *fakeDelegate) LayerDragEnded(_ *Layer, at geom.Point) {
	d.events = append(d.events, delegateEvent{kind: "ended", at: at})
}

func (d *fakeDelegate) count(kind string) int {
	n := 0
	for _, e := range d.events {
		if e.kind == kind {
			n++
		}
	}
	return n
}

type fakeContainer struct {
	removed []*Layer
}

func (c *fakeContainer) RemoveLayer(l *Layer) { c.removed = append(c.removed, l) }

func newTestLayer(t *testing.T, opts ...Option) (*Layer, *fakeRasterizer, *fakeDelegate, *fakeContainer) {
	t.Helper()
	r := &fakeRasterizer{}
	d := &fakeDelegate{}
	c := &fakeContainer{}
	opts = append([]Option{WithDelegate(d), WithContainer(c)}, opts...)
	l, err := New("star", KindIcon, 7, r, opts...)
	require.NoError(t, err)
	return l, r, d, c
}

func pan(phase gesture.Phase, x, y float64) gesture.Pan {
	return gesture.Pan{Phase: phase, Location: geom.Pt(x, y)}
}

func TestNewDefaults(t *testing.T) {
	l, r, _, _ := newTestLayer(t)

	assert.Equal(t, 7, l.Tag())
	assert.Equal(t, "star.svg", l.AssetID())
	assert.Equal(t, KindIcon, l.Kind())
	assert.Equal(t, SettingsIconsAdjustment, l.Settings())
	assert.Equal(t, NewTransform(geom.Pt(59, 154), 1, 0), l.Transform())
	assert.Equal(t, DefaultTint(), l.Tint())
	assert.True(t, l.Active())
	_, ok := l.Committed()
	assert.False(t, ok)

	require.Len(t, r.calls, 1)
	assert.Equal(t, rasterCall{"star.svg", ImageBaseSize, 2}, r.calls[0])

	v := l.View()
	assert.Equal(t, RenderTemplate, v.Mode)
	assert.Equal(t, 1.0, v.Alpha)
	assert.Equal(t, geom.Pt(59, 154), v.Center)
	assert.Equal(t, Identity, v.Matrix)
	assert.Equal(t, image.Pt(100, 100), v.Bitmap.Bounds().Size())
}

func TestNewPropagatesRasterizerError(t *testing.T) {
	missing := errors.New("no such asset")
	_, err := New("ghost", KindShape, 1, &fakeRasterizer{err: missing})
	require.Error(t, err)
	assert.ErrorIs(t, err, missing)
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New("star", KindIcon, 1, nil)
	assert.Error(t, err)
	_, err = New("star", KindIcon, 1, &fakeRasterizer{}, WithScale(0))
	assert.ErrorIs(t, err, ErrInvalidTransform)
	_, err = New("star", KindIcon, 1, &fakeRasterizer{}, WithSize(geom.Size{}))
	assert.Error(t, err)
}

func TestSetTransformRecomputesMatrix(t *testing.T) {
	l, _, _, _ := newTestLayer(t)
	tr := NewTransform(geom.Pt(1, 2), 2, math.Pi/2)
	require.NoError(t, l.SetTransform(tr))
	assert.Equal(t, tr, l.Transform())
	assert.Equal(t, tr.Apply(), l.View().Matrix)
	assert.Equal(t, geom.Pt(59, 154), l.View().Center)

	assert.ErrorIs(t, l.SetTransform(NewTransform(geom.Point{}, -1, 0)), ErrInvalidTransform)
	assert.Equal(t, tr, l.Transform())
}

func TestSetTintUpdatesRenderStateTogether(t *testing.T) {
	l, _, _, _ := newTestLayer(t)
	for i := 0; i <= 100; i += 5 {
		tint := NewTint(color.RGBA{R: uint8(i), G: 40, B: 90, A: 255}, float64(i))
		l.SetTint(tint)
		v := l.View()
		assert.Equal(t, RenderTemplate, v.Mode)
		assert.Equal(t, tint.Color, v.TintColor)
		assert.Equal(t, float64(i)/100, v.Alpha)
	}
}

func TestRefreshKeepsTint(t *testing.T) {
	l, r, _, _ := newTestLayer(t)
	tint := NewTint(color.RGBA{R: 255, A: 255}, 35)
	l.ChangeColor(tint)

	require.NoError(t, l.RefreshImage())
	assert.Len(t, r.calls, 2)
	assert.Equal(t, tint, l.Tint())
	v := l.View()
	assert.Equal(t, RenderTemplate, v.Mode)
	assert.Equal(t, tint.Color, v.TintColor)
	assert.Equal(t, 0.35, v.Alpha)
}

func TestRefreshScaleIsCappedByViewport(t *testing.T) {
	viewport := geom.Sz(200, 100)
	l, r, _, _ := newTestLayer(t, WithViewport(ViewportFunc(func() geom.Size { return viewport })))

	require.NoError(t, l.RefreshImage())
	assert.InDelta(t, 2.0, r.last().scale, 1e-9)

	require.NoError(t, l.SetTransform(NewTransform(l.Transform().Center, 3, 0)))
	require.NoError(t, l.RefreshImage())
	assert.InDelta(t, 4.0, r.last().scale, 1e-9)
	assert.Equal(t, ImageBaseSize, r.last().size)

	viewport = geom.Sz(1000, 1000)
	require.NoError(t, l.RefreshImage())
	assert.InDelta(t, 6.0, r.last().scale, 1e-9)
}

func TestRefreshUsesRotatedFrame(t *testing.T) {
	l, r, _, _ := newTestLayer(t, WithSize(geom.Sz(50, 50)))
	require.NoError(t, l.SetTransform(NewTransform(l.Transform().Center, 1, math.Pi/4)))
	require.NoError(t, l.RefreshImage())
	assert.InDelta(t, math.Sqrt2, r.last().scale, 1e-9)
}

func TestRefreshErrorLeavesState(t *testing.T) {
	l, r, _, _ := newTestLayer(t)
	before := l.View()
	r.err = errors.New("rasterizer down")

	err := l.RefreshImage()
	assert.ErrorIs(t, err, r.err)
	assert.Same(t, before.Bitmap, l.View().Bitmap)
	assert.Equal(t, before.Alpha, l.View().Alpha)
}

func TestDragSequence(t *testing.T) {
	l, _, d, _ := newTestLayer(t)

	l.HandlePan(pan(gesture.PhaseBegan, 60, 150))
	assert.True(t, l.Dragging())
	l.HandlePan(pan(gesture.PhaseChanged, 10, 20))
	l.HandlePan(pan(gesture.PhaseChanged, 30, 40))
	assert.Equal(t, geom.Pt(30, 40), l.Transform().Center)
	assert.Equal(t, geom.Pt(30, 40), l.View().Center)
	l.HandlePan(pan(gesture.PhaseEnded, 31, 42))

	assert.Equal(t, geom.Pt(30, 40), l.Transform().Center)
	assert.Equal(t, 1.0, l.Transform().Scale)
	assert.False(t, l.Dragging())
	assert.Equal(t, []delegateEvent{
		{kind: "started"},
		{kind: "ended", at: geom.Pt(31, 42)},
	}, d.events)
}

func TestInactiveIgnoresPansButNotTaps(t *testing.T) {
	l, _, d, _ := newTestLayer(t)
	l.SetActive(false)
	before := l.Transform()

	l.HandlePan(pan(gesture.PhaseBegan, 0, 0))
	l.HandlePan(pan(gesture.PhaseChanged, 10, 20))
	l.HandlePan(pan(gesture.PhaseChanged, 30, 40))
	l.HandlePan(pan(gesture.PhaseEnded, 30, 40))

	assert.Equal(t, before, l.Transform())
	assert.Zero(t, d.count("started"))
	assert.Zero(t, d.count("ended"))

	l.HandleTap(geom.Pt(59, 154))
	assert.Equal(t, 1, d.count("touched"))
}

func TestCancelledPanKeepsLastCenter(t *testing.T) {
	l, _, d, _ := newTestLayer(t)
	l.HandlePan(pan(gesture.PhaseBegan, 0, 0))
	l.HandlePan(pan(gesture.PhaseChanged, 80, 90))
	l.HandlePan(pan(gesture.PhaseCancelled, 100, 100))

	assert.False(t, l.Dragging())
	assert.Equal(t, geom.Pt(80, 90), l.Transform().Center)
	assert.Zero(t, d.count("ended"))

	l.HandlePan(pan(gesture.PhaseChanged, 5, 5))
	l.HandlePan(pan(gesture.PhaseEnded, 5, 5))
	assert.Equal(t, geom.Pt(80, 90), l.Transform().Center)
	assert.Zero(t, d.count("ended"))
}

func TestDeactivateMidDrag(t *testing.T) {
	l, _, d, _ := newTestLayer(t)
	l.HandlePan(pan(gesture.PhaseBegan, 0, 0))
	l.SetActive(false)
	l.SetActive(true)
	l.HandlePan(pan(gesture.PhaseChanged, 5, 5))
	l.HandlePan(pan(gesture.PhaseEnded, 5, 5))
	assert.Equal(t, DefaultCenter, l.Transform().Center)
	assert.Equal(t, 1, d.count("started"))
	assert.Zero(t, d.count("ended"))
}

func TestCommitThenUndoRestores(t *testing.T) {
	l, r, _, c := newTestLayer(t)
	committedTint := NewTint(color.RGBA{G: 200, A: 255}, 60)
	l.SetTint(committedTint)
	l.Commit()
	committed := l.Transform()

	l.HandlePan(pan(gesture.PhaseBegan, 0, 0))
	l.HandlePan(pan(gesture.PhaseChanged, 300, 10))
	l.HandlePan(pan(gesture.PhaseEnded, 300, 10))
	require.NoError(t, l.SetTransform(NewTransform(geom.Pt(1, 1), 4, 1.2)))
	l.SetTint(NewTint(color.Black, 5))
	calls := len(r.calls)

	discarded, err := l.Undo()
	require.NoError(t, err)
	assert.False(t, discarded)
	assert.Equal(t, committed, l.Transform())
	assert.Equal(t, committedTint, l.Tint())
	assert.Equal(t, committed.Center, l.View().Center)
	assert.Equal(t, committed.Apply(), l.View().Matrix)
	assert.Equal(t, 0.6, l.View().Alpha)
	assert.Len(t, r.calls, calls+1)
	assert.Empty(t, c.removed)

	_, err = l.Undo()
	require.NoError(t, err)
	assert.Equal(t, committed, l.Transform())
	assert.Equal(t, committedTint, l.Tint())
	_, ok := l.Committed()
	assert.True(t, ok)
}

func TestUndoWithoutCommitDiscards(t *testing.T) {
	l, r, d, c := newTestLayer(t)
	l.HandlePan(pan(gesture.PhaseBegan, 0, 0))
	l.HandlePan(pan(gesture.PhaseChanged, 10, 10))
	tr, tint := l.Transform(), l.Tint()
	calls := len(r.calls)

	discarded, err := l.Undo()
	require.NoError(t, err)
	assert.True(t, discarded)
	assert.True(t, l.Removed())
	require.Len(t, c.removed, 1)
	assert.Same(t, l, c.removed[0])
	assert.Equal(t, tr, l.Transform())
	assert.Equal(t, tint, l.Tint())
	assert.Len(t, r.calls, calls)

	l.HandleTap(geom.Point{})
	assert.Zero(t, d.count("touched"))
}

func TestUndoPropagatesRefreshError(t *testing.T) {
	l, r, _, _ := newTestLayer(t)
	l.Commit()
	l.HandlePan(pan(gesture.PhaseBegan, 0, 0))
	l.HandlePan(pan(gesture.PhaseChanged, 10, 10))
	r.err = errors.New("gone")

	_, err := l.Undo()
	assert.ErrorIs(t, err, r.err)
	assert.Equal(t, DefaultCenter, l.Transform().Center)
}

func TestDefaultScenario(t *testing.T) {
	l, _, _, _ := newTestLayer(t)
	l.Commit()
	l.HandlePan(pan(gesture.PhaseBegan, 59, 154))
	l.HandlePan(pan(gesture.PhaseChanged, 100, 100))
	l.HandlePan(pan(gesture.PhaseEnded, 100, 100))
	require.Equal(t, geom.Pt(100, 100), l.Transform().Center)

	_, err := l.Undo()
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(59, 154), l.Transform().Center)
}
