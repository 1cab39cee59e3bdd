// Package notification provides desktop notification utilities.
package notification

import (
	"errors"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/pomo/internal/config"
)

// ErrUnavailable is returned by Available when no notification service
// can be reached.
var ErrUnavailable = errors.New("no desktop notification service")

// Notifier handles desktop notifications and the notification sound.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// Alert displays an urgent desktop notification if enabled.
func (n *Notifier) Alert(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return beeep.Alert(title, message, "")
}

// Beep plays the notification sound if enabled.
func (n *Notifier) Beep() error {
	if !n.IsEnabled() || !n.cfg.Sound {
		return nil
	}
	return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
