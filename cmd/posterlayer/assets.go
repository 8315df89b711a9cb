package main

import (
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/example/posterlayer/assets"
	"github.com/example/posterlayer/internal/layer"
)

type assetsCmd struct {
	*root
	fs *flag.FlagSet
}

func (a *assetsCmd) FlagSet() *flag.FlagSet {
	return a.fs
}

func parseAssetsCmd(args []string, r *root) (*assetsCmd, error) {
	fs := flag.NewFlagSet("assets", flag.ContinueOnError)
	a := &assetsCmd{root: r, fs: fs}
	if err := parseFlags(fs, args, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *assetsCmd) Run() error {
	entries, err := assets.Default().Entries()
	if err != nil {
		return fmt.Errorf("failed to list assets: %w", err)
	}
	tw := tabwriter.NewWriter(a.out(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tID\tKIND\tSETTINGS")
	for _, e := range entries {
		kind, err := layer.ParseKind(e.Group)
		if err != nil {
			fmt.Fprintf(tw, "%s\t%s\t%s\t-\n", e.Name, e.ID, e.Group)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.ID, kind, kind.Settings())
	}
	return tw.Flush()
}
