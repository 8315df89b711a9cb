package main

import (
	"bytes"
	"embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sync"
	"text/template"
)

//go:embed templates/*.txt
var helpFS embed.FS

var (
	helpOnce sync.Once
	helpTmpl *template.Template
)

func parseHelpTemplates() {
	helpTmpl = template.Must(template.New("").Funcs(map[string]any{
		"flags": func(fs *flag.FlagSet) []flagInfo {
			result := []flagInfo{}
			if fs == nil {
				return result
			}
			fs.VisitAll(func(f *flag.Flag) {
				result = append(result, flagInfo{f.Name, f.DefValue, f.Usage})
			})
			return result
		},
	}).ParseFS(helpFS, "templates/*.txt"))
}

type flagInfo struct {
	Name     string
	DefValue string
	Usage    string
}

// HelpData is what a help template renders.
type HelpData interface {
	Program() string
	Template() string
	FlagSet() *flag.FlagSet
}

// UsageError reports a command line mistake; its message is the command's help.
type UsageError struct {
	of  HelpData
	err error
}

func (e *UsageError) Error() string {
	help, err := e.renderHelp()
	if err != nil {
		return err.Error()
	}
	if e.err != nil {
		return e.err.Error() + "\n\n" + help
	}
	return help
}

func (e *UsageError) Unwrap() error { return e.err }

func (e *UsageError) renderHelp() (string, error) {
	helpOnce.Do(parseHelpTemplates)
	var buf bytes.Buffer
	if err := helpTmpl.ExecuteTemplate(&buf, e.of.Template(), e.of); err != nil {
		return "", fmt.Errorf("render help %s: %w", e.of.Template(), err)
	}
	return buf.String(), nil
}

// parseFlags parses a subcommand's flags, reporting any problem as a
// UsageError so the help is printed once.
func parseFlags(fs *flag.FlagSet, args []string, of HelpData) error {
	fs.SetOutput(io.Discard)
	err := fs.Parse(args)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, flag.ErrHelp):
		return &UsageError{of: of}
	default:
		return &UsageError{of: of, err: err}
	}
}

func usageFunc(h HelpData) func() {
	return func() {
		fmt.Fprint(os.Stderr, (&UsageError{of: h}).Error())
	}
}

func (r *root) Template() string { return "root.txt" }

func (e *editCmd) Program() string { return e.subcommand("edit") }

func (c *renderCmd) Program() string { return c.subcommand("render") }

func (a *assetsCmd) Program() string { return a.subcommand("assets") }

func (c *configCmd) Program() string { return c.subcommand("config") }

func (v *versionCmd) Program() string { return v.subcommand("version") }

func (e *editCmd) Template() string { return "edit.txt" }

func (c *renderCmd) Template() string { return "render.txt" }

func (a *assetsCmd) Template() string { return "assets.txt" }

func (c *configCmd) Template() string { return "config.txt" }

func (v *versionCmd) Template() string { return "version.txt" }
