//go:build !linux && !darwin

package terminal

import (
	"fmt"
	"runtime"
)

// disabledChar is unused where termios is unavailable.
const disabledChar = 0

// Supported reports whether the terminal can be driven on this platform.
func Supported() error {
	return fmt.Errorf("terminal control on %s: %w", runtime.GOOS, ErrUnsupportedPlatform)
}

func setCbreak(int) error {
	return Supported()
}

func setSuspendChar(int, uint8) (uint8, error) {
	return 0, Supported()
}

func flushInput(int) error {
	return Supported()
}
