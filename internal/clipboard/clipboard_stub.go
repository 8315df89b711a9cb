//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import (
	"errors"
	"image"
)

var errUnsupported = errors.New("clipboard image operations are not supported on this platform")

// WriteImage always fails on platforms without a clipboard backend.
func WriteImage(image.Image) error {
	if !hasDisplay() {
		return ErrNoDisplay
	}
	return errUnsupported
}
