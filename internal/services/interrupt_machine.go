package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
)

// DefaultSuspendPause is how long the suspend prompt stays on screen.
const DefaultSuspendPause = 2 * time.Second

// ErrAbandoned is returned by a wait that a user interrupt cut short while
// a countdown was active.
var ErrAbandoned = errors.New("interval abandoned")

// TerminatedError reports that a signal asked the process to terminate.
// The caller unwinds its cleanup and then re-raises Signal.
type TerminatedError struct {
	Signal os.Signal
}

func (e *TerminatedError) Error() string {
	return fmt.Sprintf("terminated by %s", e.Signal)
}

// Machine is the interrupt state machine. Its state changes only through
// the transition methods, and signals are only dispatched from inside its
// wait primitives, so every transition is ordered with the main loop.
type Machine struct {
	state  atomic.Int32
	proc   ports.Process
	screen ports.Screen
	clock  ports.Clock
	prompt func() string
	pause  time.Duration
	log    *slog.Logger
}

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithSuspendPause sets how long the suspend prompt is held.
func WithSuspendPause(d time.Duration) MachineOption {
	return func(m *Machine) { m.pause = d }
}

// WithClock replaces the wall clock.
func WithClock(c ports.Clock) MachineOption {
	return func(m *Machine) { m.clock = c }
}

// NewMachine creates a machine in the idle state. prompt builds the frame
// shown while a suspend request is being refused.
func NewMachine(proc ports.Process, screen ports.Screen, prompt func() string, log *slog.Logger, opts ...MachineOption) *Machine {
	m := &Machine{
		proc:   proc,
		screen: screen,
		clock:  ports.SystemClock{},
		prompt: prompt,
		pause:  DefaultSuspendPause,
		log:    log,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current state.
func (m *Machine) State() domain.InterruptState {
	return domain.InterruptState(m.state.Load())
}

// Clock returns the clock the machine waits on.
func (m *Machine) Clock() ports.Clock {
	return m.clock
}

// Activate enters the active state at the start of a countdown.
func (m *Machine) Activate() {
	m.transition(domain.StateIdle, domain.StateActive)
}

// Deactivate returns to idle after a countdown completed.
func (m *Machine) Deactivate() {
	m.transition(domain.StateActive, domain.StateIdle)
}

func (m *Machine) transition(from, to domain.InterruptState) bool {
	if !m.state.CompareAndSwap(int32(from), int32(to)) {
		m.log.Debug("transition skipped", "from", from, "to", to, "state", m.State())
		return false
	}
	m.log.Debug("transition", "from", from, "to", to)
	return true
}

// Sleep waits for d. Signals pending or arriving during the wait are
// handled first: an interrupt while active returns ErrAbandoned, and a
// terminating signal returns a *TerminatedError.
func (m *Machine) Sleep(ctx context.Context, d time.Duration) error {
	if err := m.drain(ctx); err != nil {
		return err
	}

	timer := m.clock.After(d)
	for {
		sig, ok, err := m.next(ctx, timer)
		if err != nil || !ok {
			return err
		}
		if err := m.dispatch(ctx, sig); err != nil {
			return err
		}
	}
}

// next blocks until a signal arrives or done fires. Queued signals win
// over a done channel that is ready at the same time, and a cancelled
// ctx wins over both.
func (m *Machine) next(ctx context.Context, done <-chan time.Time) (sig os.Signal, ok bool, err error) {
	select {
	case sig := <-m.proc.Signals():
		return sig, true, nil
	default:
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case sig := <-m.proc.Signals():
		return sig, true, nil
	case <-done:
		return nil, false, nil
	}
}

// WaitKey waits for a key press on keys. A non-positive timeout waits
// forever. pressed is false when the timeout elapsed first.
func (m *Machine) WaitKey(ctx context.Context, keys <-chan byte, timeout time.Duration) (pressed bool, err error) {
	if pressed, err := m.pendingKey(ctx, keys); pressed || err != nil {
		return pressed, err
	}

	var timer <-chan time.Time
	if timeout > 0 {
		timer = m.clock.After(timeout)
	}
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case sig := <-m.proc.Signals():
			if err := m.dispatch(ctx, sig); err != nil {
				return false, err
			}
		case <-keys:
			return true, nil
		case <-timer:
			return false, nil
		}

		if pressed, err := m.pendingKey(ctx, keys); pressed || err != nil {
			return pressed, err
		}
	}
}

// pendingKey dispatches queued signals, then consumes a queued key.
func (m *Machine) pendingKey(ctx context.Context, keys <-chan byte) (bool, error) {
	if err := m.drain(ctx); err != nil {
		return false, err
	}
	select {
	case <-keys:
		return true, nil
	default:
		return false, nil
	}
}

// drain dispatches every signal already queued.
func (m *Machine) drain(ctx context.Context) error {
	for {
		select {
		case sig := <-m.proc.Signals():
			if err := m.dispatch(ctx, sig); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (m *Machine) dispatch(ctx context.Context, sig os.Signal) error {
	m.log.Debug("signal", "signal", sig, "state", m.State())

	switch sig {
	case suspendSignal:
		m.continueGroup()
		if m.transition(domain.StateActive, domain.StateSuspended) {
			return m.refuseSuspend(ctx)
		}
		return nil
	case os.Interrupt:
		switch m.State() {
		case domain.StateActive:
			if m.transition(domain.StateActive, domain.StateIdle) {
				return ErrAbandoned
			}
			return nil
		case domain.StateSuspended:
			return nil
		default:
			return &TerminatedError{Signal: sig}
		}
	default:
		return &TerminatedError{Signal: sig}
	}
}

// refuseSuspend shows the suspend prompt and holds it for the pause.
// While held, interrupts are ignored and further suspends only continue
// the process group again. Cancelling ctx ends the hold early.
func (m *Machine) refuseSuspend(ctx context.Context) error {
	defer m.transition(domain.StateSuspended, domain.StateActive)

	if err := m.screen.Render(m.prompt()); err != nil {
		m.log.Warn("render suspend prompt", "error", err)
	}

	hold := m.clock.After(m.pause)
	for {
		sig, ok, err := m.next(ctx, hold)
		if err != nil || !ok {
			return err
		}
		if err := m.dispatchSuspended(sig); err != nil {
			return err
		}
	}
}

func (m *Machine) dispatchSuspended(sig os.Signal) error {
	m.log.Debug("signal while suspended", "signal", sig)

	switch sig {
	case suspendSignal:
		m.continueGroup()
		return nil
	case os.Interrupt:
		return nil
	default:
		return &TerminatedError{Signal: sig}
	}
}

func (m *Machine) continueGroup() {
	if err := m.proc.ContinueGroup(); err != nil {
		m.log.Warn("continue process group", "error", err)
	}
}
