// Package clipboard publishes rendered posters to the system clipboard.
package clipboard

import (
	"errors"
	"os"
)

// ErrNoDisplay is returned when no X11 or Wayland display is available.
var ErrNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
