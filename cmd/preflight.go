package cmd

import (
	"fmt"

	"github.com/xvierd/pomo/internal/adapters/notification"
	"github.com/xvierd/pomo/internal/adapters/terminal"
	"github.com/xvierd/pomo/internal/config"
)

// ExitMissingCapability is the exit status when a required capability is
// missing at startup.
const ExitMissingCapability = 127

// MissingCapabilityError reports a capability pomo cannot run without.
type MissingCapabilityError struct {
	Capability string
	Err        error
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("missing %s: %v", e.Capability, e.Err)
}

func (e *MissingCapabilityError) Unwrap() error {
	return e.Err
}

// capability is a startup check.
type capability struct {
	name  string
	check func() error
}

// probeCapabilities checks everything the session needs before the
// terminal is touched.
func probeCapabilities(cfg *config.Config) error {
	checks := []capability{
		{name: "terminal support", check: terminal.Supported},
		{name: "controlling terminal", check: checkTerminal},
	}
	if cfg.Notifications.Enabled {
		checks = append(checks, capability{
			name:  "desktop notifications (set notifications.enabled = false to run without)",
			check: notification.Available,
		})
	}

	for _, c := range checks {
		if err := c.check(); err != nil {
			return &MissingCapabilityError{Capability: c.name, Err: err}
		}
	}
	return nil
}

func checkTerminal() error {
	tty, err := openTerminal(app.log)
	if err != nil {
		return err
	}
	defer tty.Close()

	if _, _, err := tty.Size(); err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	return nil
}
