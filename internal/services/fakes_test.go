package services

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/xvierd/pomo/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeClock fires every timer immediately and moves time forward by the
// timer's duration when the timer is armed.
type fakeClock struct {
	now   time.Time
	waits []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.now = c.now.Add(d)
	c.waits = append(c.waits, d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

type fakeProcess struct {
	signals   chan os.Signal
	continued int
}

func newFakeProcess() *fakeProcess {
	return &fakeProcess{signals: make(chan os.Signal, 16)}
}

func (p *fakeProcess) Signals() <-chan os.Signal { return p.signals }

func (p *fakeProcess) ContinueGroup() error {
	p.continued++
	return nil
}

func (p *fakeProcess) send(sigs ...os.Signal) {
	for _, sig := range sigs {
		p.signals <- sig
	}
}

type fakeScreen struct {
	frames     []string
	onRender   func(frame string)
	disabled   int
	restored   int
	disableErr error
}

func (s *fakeScreen) Render(frame string) error {
	s.frames = append(s.frames, frame)
	if s.onRender != nil {
		s.onRender(frame)
	}
	return nil
}

func (s *fakeScreen) DisableSuspend() (func() error, error) {
	if s.disableErr != nil {
		return nil, s.disableErr
	}
	s.disabled++
	return func() error {
		s.restored++
		return nil
	}, nil
}

func (s *fakeScreen) count(substr string) int {
	n := 0
	for _, f := range s.frames {
		if strings.Contains(f, substr) {
			n++
		}
	}
	return n
}

type fakeKeyboard struct {
	keys     chan byte
	discards int
}

func newFakeKeyboard() *fakeKeyboard {
	return &fakeKeyboard{keys: make(chan byte, 16)}
}

func (k *fakeKeyboard) Keys() <-chan byte { return k.keys }

func (k *fakeKeyboard) Discard() {
	k.discards++
	for {
		select {
		case <-k.keys:
		default:
			return
		}
	}
}

func (k *fakeKeyboard) press() { k.keys <- ' ' }

type fakePresenter struct{}

func (fakePresenter) Countdown(remaining, total time.Duration) string {
	return fmt.Sprintf("countdown %s/%s", domain.FormatClock(remaining), domain.FormatClock(total))
}

func (fakePresenter) Say(message string) string { return "say: " + message }

func (fakePresenter) Celebrate(message string) string { return "celebrate: " + message }

type fakeNotifier struct {
	calls []string
	err   error
}

func (n *fakeNotifier) Notify(title, _ string) error {
	n.calls = append(n.calls, "notify: "+title)
	return n.err
}

func (n *fakeNotifier) Alert(title, _ string) error {
	n.calls = append(n.calls, "alert: "+title)
	return n.err
}

func (n *fakeNotifier) Beep() error {
	n.calls = append(n.calls, "beep")
	return n.err
}

func (n *fakeNotifier) count(call string) int {
	c := 0
	for _, got := range n.calls {
		if got == call {
			c++
		}
	}
	return c
}

const suspendFrame = "pomodoros can't be paused"

// harness wires a machine, countdown and orchestrator to fakes.
type harness struct {
	clock    *fakeClock
	proc     *fakeProcess
	screen   *fakeScreen
	keyboard *fakeKeyboard
	notifier *fakeNotifier

	machine      *Machine
	countdown    *Countdown
	orchestrator *Orchestrator
}

func newHarness() *harness {
	h := &harness{
		clock:    newFakeClock(),
		proc:     newFakeProcess(),
		screen:   &fakeScreen{},
		keyboard: newFakeKeyboard(),
		notifier: &fakeNotifier{},
	}
	log := discardLogger()
	h.machine = NewMachine(h.proc, h.screen, func() string { return suspendFrame }, log, WithClock(h.clock))
	h.countdown = NewCountdown(h.machine, h.screen, fakePresenter{}, log)
	h.orchestrator = NewOrchestrator(h.machine, h.countdown, h.screen, h.keyboard, fakePresenter{}, h.notifier, log)
	return h
}

var errBoom = errors.New("boom")
