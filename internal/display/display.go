// Package display reports host display bounds for layer rasterization.
package display

import (
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
	"sync"

	"github.com/example/posterlayer/internal/geom"
	"github.com/example/posterlayer/internal/layer"
	"go.uber.org/zap"
)

// Monitor describes one output in the desktop layout.
type Monitor struct {
	Index   int
	Name    string
	Rect    image.Rectangle
	Primary bool
}

// Size returns the monitor's dimensions.
func (m Monitor) Size() geom.Size {
	return geom.Sz(float64(m.Rect.Dx()), float64(m.Rect.Dy()))
}

var errNoMonitors = errors.New("no monitors available")

// FindMonitor resolves a selector against monitors. An empty selector or
// "primary" picks the primary monitor, falling back to the first; digits
// (optionally prefixed with #) select by index; anything else matches a
// name substring.
func FindMonitor(monitors []Monitor, selector string) (Monitor, error) {
	if len(monitors) == 0 {
		return Monitor{}, errNoMonitors
	}
	lower := strings.ToLower(strings.TrimSpace(selector))
	if lower == "" || lower == "primary" {
		for _, mon := range monitors {
			if mon.Primary {
				return mon, nil
			}
		}
		return monitors[0], nil
	}
	lower = strings.TrimPrefix(lower, "#")
	if idx, err := strconv.Atoi(lower); err == nil {
		if idx < 0 || idx >= len(monitors) {
			return Monitor{}, fmt.Errorf("monitor index %d out of range", idx)
		}
		return monitors[idx], nil
	}
	for _, mon := range monitors {
		if strings.Contains(strings.ToLower(mon.Name), lower) {
			return mon, nil
		}
	}
	return Monitor{}, fmt.Errorf("monitor %q not found", selector)
}

// Static is a fixed viewport size.
type Static geom.Size

// ViewportSize returns s.
func (s Static) ViewportSize() geom.Size { return geom.Size(s) }

// Lister enumerates monitors.
type Lister func() ([]Monitor, error)

// Desktop is a viewport provider backed by the desktop's monitor layout. The
// layout is queried once, on first use; if that fails Fallback is used.
type Desktop struct {
	Selector string
	Fallback geom.Size
	List     Lister
	Logger   *zap.Logger

	once sync.Once
	size geom.Size
}

// NewDesktop returns a provider that queries the X server.
func NewDesktop(selector string, fallback geom.Size, logger *zap.Logger) *Desktop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Desktop{Selector: selector, Fallback: fallback, List: ListMonitors, Logger: logger}
}

// ViewportSize returns the selected monitor's size.
func (d *Desktop) ViewportSize() geom.Size {
	d.once.Do(func() {
		d.size = d.Fallback
		if d.List == nil {
			return
		}
		monitors, err := d.List()
		if err == nil {
			var mon Monitor
			if mon, err = FindMonitor(monitors, d.Selector); err == nil {
				d.size = mon.Size()
				return
			}
		}
		if d.Logger != nil {
			d.Logger.Warn("display size unavailable, using fallback",
				zap.Error(err), zap.Float64("width", d.Fallback.W), zap.Float64("height", d.Fallback.H))
		}
	})
	return d.size
}

var (
	_ layer.ViewportProvider = Static{}
	_ layer.ViewportProvider = (*Desktop)(nil)
)
