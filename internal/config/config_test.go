package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/posterlayer/internal/layer"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
save_dir = /tmp/posters

[notify]
save = false
copy = true

[layer]
width = 120
height = 80
center_x = 10
center_y = 20.5
scale = 1.5
color = #FF0000
intensity = 40
shadow = true

[display]
monitor = "HDMI-1"
fallback_width = 800

[theme.my_custom_theme]
Background = #111111
Foreground = #FFFFFF
`
	r := strings.NewReader(input)
	cfg, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.SaveDir != "/tmp/posters" {
		t.Errorf("Expected save_dir '/tmp/posters', got '%s'", cfg.SaveDir)
	}
	if cfg.Notify.Save {
		t.Error("Expected notify.save to be false")
	}
	if !cfg.Notify.Copy {
		t.Error("Expected notify.copy to be true")
	}

	want := Layer{
		Width: 120, Height: 80, CenterX: 10, CenterY: 20.5, Scale: 1.5,
		Color: color.RGBA{255, 0, 0, 255}, Intensity: 40, Shadow: true,
	}
	if cfg.Layer != want {
		t.Errorf("Layer = %+v, want %+v", cfg.Layer, want)
	}

	if cfg.Display.Monitor != "HDMI-1" {
		t.Errorf("Expected monitor HDMI-1, got %q", cfg.Display.Monitor)
	}
	if got := cfg.Display.Fallback(); got.W != 800 || got.H != 1080 {
		t.Errorf("Unexpected fallback %+v", got)
	}

	theme, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if theme.Background.R != 0x11 || theme.Background.G != 0x11 || theme.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", theme.Background)
	}
}

func TestDefaultsMatchLayerFactory(t *testing.T) {
	cfg := New()
	if cfg.Layer.Width != layer.DefaultSize.W || cfg.Layer.Height != layer.DefaultSize.H {
		t.Errorf("Unexpected default size %+v", cfg.Layer)
	}
	if cfg.Layer.CenterX != layer.DefaultCenter.X || cfg.Layer.CenterY != layer.DefaultCenter.Y {
		t.Errorf("Unexpected default center %+v", cfg.Layer)
	}
	if cfg.Layer.Intensity != layer.MaxIntensity || cfg.Layer.Color != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Unexpected default tint %+v", cfg.Layer)
	}
	if n := len(cfg.Layer.Options()); n != 4 {
		t.Errorf("Expected 4 layer options, got %d", n)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"bad bool":      "[notify]\nsave = maybe\n",
		"bad number":    "[layer]\nwidth = wide\n",
		"bad scale":     "[layer]\nscale = 0\n",
		"bad color":     "[layer]\ncolor = red\n",
		"bad fallback":  "[display]\nfallback_height = tall\n",
		"bad theme key": "[theme.x]\nBackground = #12\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(input)); err == nil {
				t.Errorf("Expected error for %q", input)
			}
		})
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
save_dir = /home/user/posters

[notify]
save = true
copy = false

[layer]
scale = 2
color = #00FF0080
intensity = 25

[display]
monitor = #1

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	// 4. Compare relevant fields
	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.SaveDir != cfg2.SaveDir {
		t.Errorf("SaveDir mismatch: %q vs %q", cfg.SaveDir, cfg2.SaveDir)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}
	if cfg.Layer != cfg2.Layer {
		t.Errorf("Layer mismatch: %+v vs %+v", cfg.Layer, cfg2.Layer)
	}
	if cfg.Display != cfg2.Display {
		t.Errorf("Display mismatch: %+v vs %+v", cfg.Display, cfg2.Display)
	}

	// Check theme persistence
	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if t1.Background != t2.Background {
		t.Errorf("Theme background mismatch: %v vs %v", t1.Background, t2.Background)
	}
}

func TestLoaderPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "posterlayer.rc")

	l := NewLoader("1.0.0", path)
	if got := l.DefaultSavePath(); got != path {
		t.Errorf("DefaultSavePath = %q, want %q", got, path)
	}

	cfg := New()
	cfg.SaveDir = dir
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got := l.GetConfigPath(); got != path {
		t.Errorf("GetConfigPath = %q, want %q", got, path)
	}
	loaded, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.SaveDir != dir {
		t.Errorf("SaveDir = %q, want %q", loaded.SaveDir, dir)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}
