package main

import (
	"flag"
	"fmt"

	"github.com/example/posterlayer/assets"
	"github.com/example/posterlayer/internal/editor"
	"github.com/example/posterlayer/internal/layer"
	"go.uber.org/zap"
)

// editCmd opens the interactive editor.
type editCmd struct {
	*root
	fs     *flag.FlagSet
	layer  layerFlags
	output string
	names  []string
}

func (e *editCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	e := &editCmd{root: r, fs: fs}
	e.layer.register(fs, r)
	fs.StringVar(&e.output, "output", defaultOutput(r), "PNG file Ctrl+S writes")
	if err := parseFlags(fs, args, e); err != nil {
		return nil, err
	}
	e.names = fs.Args()
	return e, nil
}

func (e *editCmd) session() (*editor.Session, error) {
	opts, err := e.layer.options(e.root)
	if err != nil {
		return nil, err
	}
	size, err := e.layer.canvasSize()
	if err != nil {
		return nil, err
	}
	style := e.layer.style(e.root)
	style.Editing = true
	s := editor.NewSession(size, newRasterizer(),
		editor.WithLayerOptions(opts...),
		editor.WithOutput(e.output),
		editor.WithStyle(style),
		editor.WithNotifier(e.notifier),
		editor.WithLogger(e.log()))
	for _, name := range e.names {
		kind, err := kindOf(assets.Default(), name)
		if err != nil {
			return nil, err
		}
		if _, err := s.AddLayer(name, kind); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (e *editCmd) Run() error {
	s, err := e.session()
	if err != nil {
		return err
	}
	e.log().Info("editor starting", zap.Int("layers", s.Canvas.Len()), zap.String("output", e.output))
	s.Run()
	return nil
}

// kindOf derives a layer kind from the catalog group an asset lives in.
func kindOf(c *assets.Catalog, name string) (layer.Kind, error) {
	entries, err := c.Entries()
	if err != nil {
		return 0, err
	}
	for _, en := range entries {
		if en.Name == name {
			return layer.ParseKind(en.Group)
		}
	}
	return 0, fmt.Errorf("%w: %s", assets.ErrUnknownAsset, name)
}
