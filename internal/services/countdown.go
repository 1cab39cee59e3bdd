package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
)

// tick is the countdown resolution.
const tick = time.Second

// Countdown runs a single interval, rendering the remaining time once per
// tick until it completes or is abandoned.
type Countdown struct {
	machine   *Machine
	screen    ports.Screen
	presenter ports.Presenter
	log       *slog.Logger
}

// NewCountdown creates a countdown timer.
func NewCountdown(machine *Machine, screen ports.Screen, presenter ports.Presenter, log *slog.Logger) *Countdown {
	return &Countdown{
		machine:   machine,
		screen:    screen,
		presenter: presenter,
		log:       log,
	}
}

// Run counts iv down to zero. It returns OutcomeCompleted with the machine
// still active, or OutcomeAbandoned with the machine idle.
func (c *Countdown) Run(ctx context.Context, iv *domain.Interval) (domain.Outcome, error) {
	restore, err := c.screen.DisableSuspend()
	if err != nil {
		return "", fmt.Errorf("failed to disable suspend key: %w", err)
	}
	c.machine.Activate()
	defer func() {
		if err := restore(); err != nil {
			c.log.Warn("restore suspend key", "error", err)
		}
	}()

	c.log.Info("interval started", "interval", iv.Index, "duration", iv.Duration)

	for !iv.Done() {
		if err := c.screen.Render(c.presenter.Countdown(iv.Remaining, iv.Duration)); err != nil {
			return "", fmt.Errorf("failed to render countdown: %w", err)
		}

		err := c.machine.Sleep(ctx, tick)
		if errors.Is(err, ErrAbandoned) {
			c.log.Info("interval abandoned", "interval", iv.Index, "remaining", iv.Remaining)
			iv.Outcome = domain.OutcomeAbandoned
			return iv.Outcome, nil
		}
		if err != nil {
			return "", err
		}

		iv.Tick()
	}

	c.log.Info("interval completed", "interval", iv.Index)
	iv.Outcome = domain.OutcomeCompleted
	return iv.Outcome, nil
}
