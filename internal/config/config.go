package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/posterlayer/internal/geom"
	"github.com/example/posterlayer/internal/layer"
	"github.com/example/posterlayer/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Layer holds the factory defaults applied to newly created layers.
type Layer struct {
	Width     float64
	Height    float64
	CenterX   float64
	CenterY   float64
	Scale     float64
	Color     color.RGBA
	Intensity float64
	Shadow    bool
}

// Display selects the monitor whose size caps layer rasterization.
type Display struct {
	Monitor        string
	FallbackWidth  float64
	FallbackHeight float64
}

// Config holds the application configuration.
type Config struct {
	Theme   string
	SaveDir string
	Notify  Notify
	Layer   Layer
	Display Display
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	tint := layer.DefaultTint()
	return &Config{
		Theme: "", // Default to empty to allow fallback to Env/Default
		Layer: Layer{
			Width:     layer.DefaultSize.W,
			Height:    layer.DefaultSize.H,
			CenterX:   layer.DefaultCenter.X,
			CenterY:   layer.DefaultCenter.Y,
			Scale:     layer.DefaultScale,
			Color:     tint.Color,
			Intensity: tint.Intensity,
		},
		Display: Display{
			FallbackWidth:  1920,
			FallbackHeight: 1080,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// Options converts the layer section into factory options.
func (l Layer) Options() []layer.Option {
	return []layer.Option{
		layer.WithSize(geom.Sz(l.Width, l.Height)),
		layer.WithCenter(geom.Pt(l.CenterX, l.CenterY)),
		layer.WithScale(l.Scale),
		layer.WithTint(layer.NewTint(l.Color, l.Intensity)),
	}
}

// Fallback is the viewport used when no monitor can be queried.
func (d Display) Fallback() geom.Size {
	return geom.Sz(d.FallbackWidth, d.FallbackHeight)
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	sb.WriteString("[layer]\n")
	fmt.Fprintf(&sb, "width = %g\n", c.Layer.Width)
	fmt.Fprintf(&sb, "height = %g\n", c.Layer.Height)
	fmt.Fprintf(&sb, "center_x = %g\n", c.Layer.CenterX)
	fmt.Fprintf(&sb, "center_y = %g\n", c.Layer.CenterY)
	fmt.Fprintf(&sb, "scale = %g\n", c.Layer.Scale)
	fmt.Fprintf(&sb, "color = %s\n", theme.FormatColor(c.Layer.Color))
	fmt.Fprintf(&sb, "intensity = %g\n", c.Layer.Intensity)
	fmt.Fprintf(&sb, "shadow = %v\n", c.Layer.Shadow)
	sb.WriteString("\n")

	sb.WriteString("[display]\n")
	if c.Display.Monitor != "" {
		fmt.Fprintf(&sb, "monitor = %s\n", c.Display.Monitor)
	}
	fmt.Fprintf(&sb, "fallback_width = %g\n", c.Display.FallbackWidth)
	fmt.Fprintf(&sb, "fallback_height = %g\n", c.Display.FallbackHeight)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range theme.Fields(t) {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.FormatColor(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
