//go:build darwin

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETA

	// disabledChar is _POSIX_VDISABLE.
	disabledChar = 0xff

	// fread selects the input queue for TIOCFLUSH.
	fread = 0x1
)

func flushInput(fd int) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCFLUSH, fread)
}
