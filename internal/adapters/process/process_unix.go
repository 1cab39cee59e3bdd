//go:build linux || darwin

package process

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// ControlSignals are the signals routed to the interrupt state machine.
var ControlSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTSTP,
	syscall.SIGTERM,
	syscall.SIGHUP,
}

// ContinueGroup sends SIGCONT to every process in our process group.
func (p *Process) ContinueGroup() error {
	return unix.Kill(0, unix.SIGCONT)
}

// Reraise terminates the process with sig under its default disposition,
// so the parent sees a death by signal. It falls back to the shell
// convention exit status if the signal does not end the process.
func Reraise(sig os.Signal) {
	signal.Reset(sig)
	if s, ok := sig.(syscall.Signal); ok {
		_ = unix.Kill(os.Getpid(), s)
		time.Sleep(100 * time.Millisecond)
		os.Exit(128 + int(s))
	}
	os.Exit(1)
}
