package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/example/posterlayer/internal/display"
	"github.com/example/posterlayer/internal/editor"
	"github.com/example/posterlayer/internal/geom"
	"github.com/example/posterlayer/internal/layer"
	"github.com/example/posterlayer/internal/render"
	"github.com/example/posterlayer/internal/theme"
	"golang.org/x/image/colornames"
)

// layerFlags are the factory settings shared by edit and render. Defaults
// come from the [layer] and [display] config sections.
type layerFlags struct {
	width, height float64
	x, y          float64
	scale         float64
	angle         float64
	colorSpec     string
	intensity     float64
	shadow        bool
	monitor       string
	viewport      string
	canvas        string
}

func (f *layerFlags) register(fs *flag.FlagSet, r *root) {
	cfg := r.config.Layer
	fs.Float64Var(&f.width, "width", cfg.Width, "layer display width")
	fs.Float64Var(&f.height, "height", cfg.Height, "layer display height")
	fs.Float64Var(&f.x, "x", cfg.CenterX, "layer center x")
	fs.Float64Var(&f.y, "y", cfg.CenterY, "layer center y")
	fs.Float64Var(&f.scale, "scale", cfg.Scale, "layer scale")
	fs.Float64Var(&f.angle, "angle", 0, "layer rotation in degrees")
	fs.StringVar(&f.colorSpec, "color", theme.FormatColor(cfg.Color), "tint color: name, palette name or #RRGGBB")
	fs.Float64Var(&f.intensity, "intensity", cfg.Intensity, "tint intensity 0-100")
	fs.BoolVar(&f.shadow, "shadow", cfg.Shadow, "draw a drop shadow under layers")
	fs.StringVar(&f.monitor, "monitor", r.config.Display.Monitor, "monitor whose size caps rasterization (primary, #index or name)")
	fs.StringVar(&f.viewport, "viewport", "", "fixed viewport size WxH instead of querying the display")
	fs.StringVar(&f.canvas, "canvas", "240x320", "poster size WxH")
}

// options converts the flags into layer factory options.
func (f *layerFlags) options(r *root) ([]layer.Option, error) {
	col, err := parseColor(f.colorSpec)
	if err != nil {
		return nil, err
	}
	if f.intensity < 0 || f.intensity > layer.MaxIntensity {
		return nil, fmt.Errorf("intensity %v out of range 0-%d", f.intensity, layer.MaxIntensity)
	}
	if f.scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %v", f.scale)
	}
	vp, err := f.viewportProvider(r)
	if err != nil {
		return nil, err
	}
	return []layer.Option{
		layer.WithSize(geom.Sz(f.width, f.height)),
		layer.WithCenter(geom.Pt(f.x, f.y)),
		layer.WithScale(f.scale),
		layer.WithRotation(f.angle * math.Pi / 180),
		layer.WithTint(layer.NewTint(col, f.intensity)),
		layer.WithViewport(vp),
	}, nil
}

func (f *layerFlags) viewportProvider(r *root) (layer.ViewportProvider, error) {
	if f.viewport != "" {
		s, err := parseSize(f.viewport)
		if err != nil {
			return nil, fmt.Errorf("viewport: %w", err)
		}
		return display.Static(s), nil
	}
	return display.NewDesktop(f.monitor, r.config.Display.Fallback(), r.log()), nil
}

func (f *layerFlags) canvasSize() (geom.Size, error) {
	s, err := parseSize(f.canvas)
	if err != nil {
		return geom.Size{}, fmt.Errorf("canvas: %w", err)
	}
	return s, nil
}

func (f *layerFlags) style(r *root) editor.Style {
	st := editor.Style{Theme: r.activeTheme}
	if f.shadow {
		opts := render.DefaultShadowOptions()
		st.Shadow = &opts
	}
	return st
}

func parseSize(s string) (geom.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return geom.Size{}, fmt.Errorf("size %q must look like WxH", s)
	}
	wf, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return geom.Size{}, fmt.Errorf("size %q: %w", s, err)
	}
	hf, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return geom.Size{}, fmt.Errorf("size %q: %w", s, err)
	}
	size := geom.Sz(wf, hf)
	if size.Empty() {
		return geom.Size{}, fmt.Errorf("size %q must be positive", s)
	}
	return size, nil
}

func parseColor(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	for _, entry := range editor.Palette {
		if strings.EqualFold(entry.Name, spec) {
			return entry.Color, nil
		}
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	if strings.HasPrefix(spec, "#") {
		c, err := theme.ParseColor(spec)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q", s)
}
