package main

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/example/posterlayer/assets"
	"github.com/example/posterlayer/internal/editor"
	"github.com/example/posterlayer/internal/layer"
	"github.com/example/posterlayer/internal/raster"
	"go.uber.org/zap"
)

var newRasterizer = func() layer.Rasterizer { return raster.NewSVG(nil) }

// renderCmd places a single layer and writes the poster without a window.
type renderCmd struct {
	*root
	fs          *flag.FlagSet
	layer       layerFlags
	asset       string
	kind        string
	output      string
	toClipboard bool
}

func (c *renderCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	c := &renderCmd{root: r, fs: fs}
	c.layer.register(fs, r)
	fs.StringVar(&c.asset, "asset", "", "asset name, e.g. star")
	fs.StringVar(&c.kind, "kind", "", "layer kind (icon, shape, text, background, sticker); derived from the asset when empty")
	fs.StringVar(&c.output, "output", defaultOutput(r), "output PNG path")
	fs.BoolVar(&c.toClipboard, "clipboard", false, "copy the poster to the clipboard instead of saving it")
	if err := parseFlags(fs, args, c); err != nil {
		return nil, err
	}
	if c.asset == "" {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *renderCmd) Run() error {
	kind, err := c.resolveKind()
	if err != nil {
		return err
	}
	opts, err := c.layer.options(c.root)
	if err != nil {
		return err
	}
	size, err := c.layer.canvasSize()
	if err != nil {
		return err
	}
	s := editor.NewSession(size, newRasterizer(),
		editor.WithLayerOptions(opts...),
		editor.WithOutput(c.output),
		editor.WithStyle(c.layer.style(c.root)),
		editor.WithNotifier(c.notifier),
		editor.WithLogger(c.log()))
	l, err := s.AddLayer(c.asset, kind)
	if err != nil {
		return fmt.Errorf("failed to create layer: %w", err)
	}
	// The factory rasterizes at the unscaled size; re-rasterize for the
	// transformed one.
	if err := l.RefreshImage(); err != nil {
		return err
	}
	l.Commit()

	if c.toClipboard {
		if err := s.Copy(); err != nil {
			return err
		}
		fmt.Fprintln(c.out(), "poster copied to clipboard")
		return nil
	}
	if err := s.Save(); err != nil {
		return err
	}
	c.log().Info("rendered", zap.String("asset", l.AssetID()), zap.String("output", c.output),
		zap.Stringer("kind", kind), zap.Float64("raster_scale", l.RasterScale()))
	fmt.Fprintln(c.out(), c.output)
	return nil
}

func (c *renderCmd) resolveKind() (layer.Kind, error) {
	if c.kind != "" {
		return layer.ParseKind(c.kind)
	}
	k, err := kindOf(assets.Default(), c.asset)
	if errors.Is(err, assets.ErrUnknownAsset) {
		return 0, fmt.Errorf("asset %q: %w (see '%s assets')", c.asset, err, c.program)
	}
	return k, err
}

func defaultOutput(r *root) string {
	if r.config != nil && r.config.SaveDir != "" {
		return filepath.Join(r.config.SaveDir, "poster.png")
	}
	return "poster.png"
}
