// Package process connects the application to OS signals and process
// group control.
package process

import (
	"os"
	"os/signal"
)

// Process delivers control signals as messages and talks to the
// process group.
type Process struct {
	signals chan os.Signal
}

// Listen starts routing ControlSignals to the returned Process. Caught
// SIGTSTP no longer stops the process.
func Listen() *Process {
	p := &Process{signals: make(chan os.Signal, 8)}
	signal.Notify(p.signals, ControlSignals...)
	return p
}

// Signals returns the channel control signals are delivered on.
func (p *Process) Signals() <-chan os.Signal {
	return p.signals
}

// Stop stops signal delivery and restores default handling.
func (p *Process) Stop() {
	signal.Stop(p.signals)
}
