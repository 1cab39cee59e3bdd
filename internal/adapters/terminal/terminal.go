// Package terminal drives the controlling terminal: mode changes, the
// alternate screen, full-screen frames and key input.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/charmbracelet/x/term"
)

// DevicePath is the controlling terminal of the process.
const DevicePath = "/dev/tty"

const (
	enterAltScreen = "\x1b[?1049h"
	exitAltScreen  = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	cursorHome     = "\x1b[H"
)

var (
	// ErrNotTerminal is returned by Open when the device is not a terminal.
	ErrNotTerminal = errors.New("not a terminal")

	// ErrUnsupportedPlatform is returned by Supported where terminal modes
	// cannot be changed.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// Controller owns the controlling terminal. Everything rendered goes to
// the terminal device, never to standard output.
type Controller struct {
	tty *os.File
	fd  uintptr
	log *slog.Logger

	keysOnce sync.Once
	keys     chan byte
}

// Open opens the terminal device at path.
func Open(path string, log *slog.Logger) (*Controller, error) {
	tty, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if !term.IsTerminal(tty.Fd()) {
		_ = tty.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrNotTerminal)
	}
	return &Controller{
		tty:  tty,
		fd:   tty.Fd(),
		log:  log,
		keys: make(chan byte, 64),
	}, nil
}

// Writer returns the terminal device for styling decisions.
func (c *Controller) Writer() io.Writer {
	return c.tty
}

// Size returns the current terminal width and height.
func (c *Controller) Size() (cols, rows int, err error) {
	return term.GetSize(c.fd)
}

// EnterFullScreen snapshots the terminal mode, turns off echo and line
// buffering, switches to the alternate screen and hides the cursor.
// Signal keys keep working. The returned restore puts everything back to
// the snapshot; it is safe to call more than once.
func (c *Controller) EnterFullScreen() (restore func() error, err error) {
	saved, err := term.GetState(c.fd)
	if err != nil {
		return nil, fmt.Errorf("failed to read terminal state: %w", err)
	}
	if err := setCbreak(int(c.fd)); err != nil {
		return nil, fmt.Errorf("failed to set terminal mode: %w", err)
	}
	if _, err := io.WriteString(c.tty, enterAltScreen+hideCursor); err != nil {
		_ = term.Restore(c.fd, saved)
		return nil, fmt.Errorf("failed to enter alternate screen: %w", err)
	}

	var once sync.Once
	var restoreErr error
	return func() error {
		once.Do(func() {
			_, werr := io.WriteString(c.tty, showCursor+exitAltScreen)
			rerr := term.Restore(c.fd, saved)
			restoreErr = errors.Join(werr, rerr)
			c.log.Debug("terminal restored", "error", restoreErr)
		})
		return restoreErr
	}, nil
}

// DisableSuspend turns the suspend character off until restore is called.
func (c *Controller) DisableSuspend() (restore func() error, err error) {
	previous, err := setSuspendChar(int(c.fd), disabledChar)
	if err != nil {
		return nil, err
	}
	return func() error {
		_, err := setSuspendChar(int(c.fd), previous)
		return err
	}, nil
}

// Render draws frame over the whole screen without clearing it first.
func (c *Controller) Render(frame string) error {
	cols, rows, err := c.Size()
	if err != nil {
		return fmt.Errorf("failed to get terminal size: %w", err)
	}
	_, err = io.WriteString(c.tty, cursorHome+Pad(frame, cols, rows))
	return err
}

// Keys returns the bytes typed on the terminal. The reader starts on the
// first call and stops when the controller is closed.
func (c *Controller) Keys() <-chan byte {
	c.keysOnce.Do(func() {
		go c.readKeys()
	})
	return c.keys
}

func (c *Controller) readKeys() {
	buf := make([]byte, 16)
	for {
		n, err := c.tty.Read(buf)
		for _, b := range buf[:n] {
			select {
			case c.keys <- b:
			default:
			}
		}
		if err != nil {
			c.log.Debug("key reader stopped", "error", err)
			return
		}
	}
}

// Discard drops keystrokes typed ahead, both the ones already read and
// the ones still queued in the terminal driver.
func (c *Controller) Discard() {
	if err := flushInput(int(c.fd)); err != nil {
		c.log.Debug("flush terminal input", "error", err)
	}
	for {
		select {
		case <-c.keys:
		default:
			return
		}
	}
}

// Close closes the terminal device.
func (c *Controller) Close() error {
	return c.tty.Close()
}
