//go:build !linux && !darwin

package process

import (
	"errors"
	"os"
	"syscall"
)

// ControlSignals are the signals routed to the interrupt state machine.
var ControlSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
}

// ContinueGroup is unsupported without job control.
func (p *Process) ContinueGroup() error {
	return errors.ErrUnsupported
}

// Reraise exits with the shell convention status for sig.
func Reraise(sig os.Signal) {
	if s, ok := sig.(syscall.Signal); ok {
		os.Exit(128 + int(s))
	}
	os.Exit(1)
}
