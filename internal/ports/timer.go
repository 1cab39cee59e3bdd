package ports

import (
	"os"
	"time"
)

// Screen is the full-screen render surface.
// This is a driven port (called by the application layer).
type Screen interface {
	// Render overwrites the whole screen with frame.
	Render(frame string) error

	// DisableSuspend turns off the terminal's suspend character until the
	// returned restore function is called.
	DisableSuspend() (restore func() error, err error)
}

// Keyboard delivers single key presses.
type Keyboard interface {
	// Keys returns the channel of bytes typed by the user.
	Keys() <-chan byte

	// Discard drops any keystrokes typed ahead.
	Discard()
}

// Process is the slice of process control the state machine needs.
type Process interface {
	// Signals returns the channel control signals are delivered on.
	Signals() <-chan os.Signal

	// ContinueGroup sends SIGCONT to the whole process group.
	ContinueGroup() error
}

// Clock abstracts wall-clock time so waits can be driven in tests.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// SystemClock is the real clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// After waits for d on the real clock.
func (SystemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
