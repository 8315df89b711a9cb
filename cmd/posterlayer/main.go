package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/posterlayer/internal/config"
	"github.com/example/posterlayer/internal/notify"
	"github.com/example/posterlayer/internal/theme"
	"go.uber.org/zap"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	notifier    *notify.Notifier
	config      *config.Config
	saveAlerts  bool
	copyAlerts  bool
	themeName   string
	debug       bool
	activeTheme *theme.Theme
	logger      *zap.Logger
	stdout      io.Writer
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:      flag.NewFlagSet("posterlayer", flag.ExitOnError),
		program: "posterlayer",
		config:  cfg,
		stdout:  os.Stdout,
	}
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving a poster")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying a poster to the clipboard")
	r.fs.BoolVar(&r.debug, "debug", false, "verbose development logging")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "editor color theme (default, dark, high_contrast)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) initLogger() error {
	var (
		l   *zap.Logger
		err error
	)
	if r.debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	zap.ReplaceGlobals(l)
	r.logger = l
	return nil
}

func (r *root) log() *zap.Logger {
	if r.logger == nil {
		return zap.NewNop()
	}
	return r.logger
}

func (r *root) out() io.Writer {
	if r.stdout == nil {
		return os.Stdout
	}
	return r.stdout
}

// resolveTheme picks the theme named on the command line, in the
// environment or in the config, falling back to the default palette.
func (r *root) resolveTheme() *theme.Theme {
	themeName := r.themeName
	if themeName == "" {
		themeName = os.Getenv("POSTERLAYER_THEME")
	}
	if themeName == "" && r.config != nil {
		themeName = r.config.Theme
	}
	if r.config != nil {
		if t, ok := r.config.Themes[themeName]; ok {
			return t
		}
	}
	t, err := theme.NewLoader().Load(themeName)
	if err != nil {
		if themeName != "default" {
			r.log().Warn("failed to load theme, using default", zap.String("theme", themeName), zap.Error(err))
		}
		return theme.Default()
	}
	return t
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if err := r.initLogger(); err != nil {
		return err
	}
	defer r.logger.Sync() //nolint:errcheck

	r.notifier = notify.New(notify.LoadPreferences(), notify.WithLogger(r.logger))
	r.notifier.Enable(notify.EventSave, r.saveAlerts)
	r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	r.activeTheme = r.resolveTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "edit":
		cmd, err = parseEditCmd(subArgs, r)
	case "render":
		cmd, err = parseRenderCmd(subArgs, r)
	case "assets":
		cmd, err = parseAssetsCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{root: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func (r *root) subcommand(name string) string {
	return strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
