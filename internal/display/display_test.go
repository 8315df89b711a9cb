package display

import (
	"errors"
	"image"
	"testing"

	"github.com/example/posterlayer/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var layout = []Monitor{
	{Index: 0, Name: "HDMI-1", Rect: image.Rect(0, 0, 1920, 1080)},
	{Index: 1, Name: "eDP-1", Rect: image.Rect(1920, 0, 3200, 800), Primary: true},
}

func TestFindMonitor(t *testing.T) {
	m, err := FindMonitor(layout, "")
	require.NoError(t, err)
	assert.Equal(t, "eDP-1", m.Name)

	m, err = FindMonitor(layout, "#0")
	require.NoError(t, err)
	assert.Equal(t, "HDMI-1", m.Name)

	m, err = FindMonitor(layout, "hdmi")
	require.NoError(t, err)
	assert.Equal(t, geom.Sz(1920, 1080), m.Size())

	_, err = FindMonitor(layout, "7")
	assert.Error(t, err)
	_, err = FindMonitor(layout, "dp-9")
	assert.Error(t, err)
	_, err = FindMonitor(nil, "")
	assert.ErrorIs(t, err, errNoMonitors)
}

func TestDesktopQueriesOnce(t *testing.T) {
	calls := 0
	d := &Desktop{Fallback: geom.Sz(375, 667), List: func() ([]Monitor, error) {
		calls++
		return layout, nil
	}}
	assert.Equal(t, geom.Sz(1280, 800), d.ViewportSize())
	assert.Equal(t, geom.Sz(1280, 800), d.ViewportSize())
	assert.Equal(t, 1, calls)
}

func TestDesktopFallback(t *testing.T) {
	d := &Desktop{Fallback: geom.Sz(375, 667), List: func() ([]Monitor, error) {
		return nil, errors.New("no X server")
	}}
	assert.Equal(t, geom.Sz(375, 667), d.ViewportSize())

	d = &Desktop{Selector: "VGA", Fallback: geom.Sz(10, 10), List: func() ([]Monitor, error) { return layout, nil }}
	assert.Equal(t, geom.Sz(10, 10), d.ViewportSize())
}

func TestStatic(t *testing.T) {
	assert.Equal(t, geom.Sz(3, 4), Static(geom.Sz(3, 4)).ViewportSize())
}
