//go:build linux || darwin

package terminal

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Supported reports whether the terminal can be driven on this platform.
func Supported() error {
	return nil
}

// setCbreak turns off echo and canonical input but keeps ISIG, so the
// interrupt and suspend keys still raise signals.
func setCbreak(fd int) error {
	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	t.Lflag &^= unix.ECHO | unix.ICANON
	t.Lflag |= unix.ISIG
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, t)
}

// setSuspendChar sets VSUSP to c and returns the previous character.
func setSuspendChar(fd int, c uint8) (uint8, error) {
	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return 0, fmt.Errorf("failed to read terminal state: %w", err)
	}
	previous := t.Cc[unix.VSUSP]
	t.Cc[unix.VSUSP] = c
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, t); err != nil {
		return 0, fmt.Errorf("failed to set suspend character: %w", err)
	}
	return previous, nil
}
