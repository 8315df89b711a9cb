// Package theme defines the poster editor's colour palette.
package theme

import (
	"embed"
	"image/color"
)

// EmbeddedThemes holds the themes shipped with the binary.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// Theme defines the colour palette for the editor UI.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background around the poster
	Foreground color.RGBA // Status text

	// Status bar
	StatusBackground color.RGBA
	StatusText       color.RGBA

	// Poster canvas
	CheckerLight color.RGBA
	CheckerDark  color.RGBA

	// Layer frames
	SelectionA color.RGBA // Active layer outline, first dash colour
	SelectionB color.RGBA // Active layer outline, second dash colour
	Inactive   color.RGBA // Outline of inactive layers
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:             "Default",
		Background:       color.RGBA{220, 220, 220, 255},
		Foreground:       color.RGBA{0, 0, 0, 255},
		StatusBackground: color.RGBA{200, 200, 200, 255},
		StatusText:       color.RGBA{0, 0, 0, 255},
		CheckerLight:     color.RGBA{220, 220, 220, 255},
		CheckerDark:      color.RGBA{192, 192, 192, 255},
		SelectionA:       color.RGBA{0, 120, 215, 255},
		SelectionB:       color.RGBA{255, 255, 255, 255},
		Inactive:         color.RGBA{128, 128, 128, 255},
	}
}
