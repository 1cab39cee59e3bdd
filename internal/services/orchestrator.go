package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
)

// Break reminder timeouts.
const (
	DefaultFirstBreakReminder  = 3 * time.Minute
	DefaultSecondBreakReminder = 2 * time.Minute
)

// Prompts shown between intervals.
const (
	retryPrompt        = "Pomodoro abandoned. Press any key to start it over."
	breakPrompt        = "Take a short break! Press any key when you are back."
	breakOverPrompt    = "Your break is over. Press any key to get back to work."
	breakOverdueFormat = "Pomodoro %d is waiting for you. Press any key to start it."
)

// Orchestrator runs the intervals of a session in order, with breaks in
// between and a retry for every abandoned interval.
type Orchestrator struct {
	machine   *Machine
	countdown *Countdown
	screen    ports.Screen
	keyboard  ports.Keyboard
	presenter ports.Presenter
	notifier  ports.Notifier
	log       *slog.Logger

	firstReminder  time.Duration
	secondReminder time.Duration
}

// NewOrchestrator creates a session orchestrator.
func NewOrchestrator(machine *Machine, countdown *Countdown, screen ports.Screen, keyboard ports.Keyboard, presenter ports.Presenter, notifier ports.Notifier, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		machine:        machine,
		countdown:      countdown,
		screen:         screen,
		keyboard:       keyboard,
		presenter:      presenter,
		notifier:       notifier,
		log:            log,
		firstReminder:  DefaultFirstBreakReminder,
		secondReminder: DefaultSecondBreakReminder,
	}
}

// Run runs every interval of s, appending to its summary as it goes.
// Returned errors are fatal for the session; a *TerminatedError means the
// user asked the process to stop.
func (o *Orchestrator) Run(ctx context.Context, s *domain.Session) error {
	clock := o.machine.Clock()
	log := o.log.With("session", s.ID)

	for n := 1; n <= s.TotalIntervals; n++ {
		start := clock.Now()
		outcome, err := o.countdown.Run(ctx, s.NewInterval(n, start))
		if err != nil {
			return fmt.Errorf("pomodoro %d: %w", n, err)
		}

		if outcome == domain.OutcomeAbandoned {
			s.RecordAbandoned(start, clock.Now())
			o.keyboard.Discard()
			if err := o.prompt(ctx, o.presenter.Say(retryPrompt), 0); err != nil {
				return err
			}
			log.Info("retrying interval", "interval", n)
			n--
			continue
		}

		o.machine.Deactivate()
		s.RecordPomodoro(n, start, clock.Now())

		if !s.IsLast(n) {
			if err := o.takeBreak(ctx, s, n); err != nil {
				return err
			}
		}
	}

	o.notify(o.notifier.Notify, "All pomodoros completed", fmt.Sprintf("You finished %d pomodoros. Well done!", s.TotalIntervals))
	log.Info("session completed", "intervals", s.TotalIntervals)
	return nil
}

// takeBreak runs the break after interval n. The user ends it with a key
// press; unanswered reminders escalate up to an urgent notification.
func (o *Orchestrator) takeBreak(ctx context.Context, s *domain.Session, n int) error {
	clock := o.machine.Clock()
	start := clock.Now()

	if err := o.notifier.Beep(); err != nil {
		o.log.Warn("play notification sound", "error", err)
	}
	o.notify(o.notifier.Notify, fmt.Sprintf("Pomodoro %d completed", n), "Time for a short break.")

	frame := o.presenter.Celebrate(fmt.Sprintf("Pomodoro %d completed!", n)) + "\n\n" + o.presenter.Say(breakPrompt)
	o.keyboard.Discard()

	pressed, err := o.wait(ctx, frame, o.firstReminder)
	if err != nil {
		return err
	}
	if !pressed {
		pressed, err = o.wait(ctx, o.presenter.Say(breakOverPrompt), o.secondReminder)
		if err != nil {
			return err
		}
	}
	if !pressed {
		message := fmt.Sprintf(breakOverdueFormat, n+1)
		o.notify(o.notifier.Alert, "Break is over", message)
		if err := o.prompt(ctx, o.presenter.Say(message), 0); err != nil {
			return err
		}
	}

	elapsed := clock.Now().Sub(start)
	s.RecordBreak(elapsed)
	o.log.Info("break finished", "interval", n, "elapsed", elapsed)
	return nil
}

// prompt renders frame and blocks for a key press.
func (o *Orchestrator) prompt(ctx context.Context, frame string, timeout time.Duration) error {
	_, err := o.wait(ctx, frame, timeout)
	return err
}

func (o *Orchestrator) wait(ctx context.Context, frame string, timeout time.Duration) (bool, error) {
	if err := o.screen.Render(frame); err != nil {
		return false, fmt.Errorf("failed to render prompt: %w", err)
	}
	return o.machine.WaitKey(ctx, o.keyboard.Keys(), timeout)
}

func (o *Orchestrator) notify(send func(title, message string) error, title, message string) {
	if err := send(title, message); err != nil {
		o.log.Warn("send notification", "title", title, "error", err)
	}
}
