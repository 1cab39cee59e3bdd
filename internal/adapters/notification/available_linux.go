//go:build linux

package notification

import (
	"os"
	"os/exec"
)

// Available reports whether desktop notifications can be delivered: a
// session bus, or notify-send as the fallback.
func Available() error {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") != "" {
		return nil
	}
	if _, err := exec.LookPath("notify-send"); err == nil {
		return nil
	}
	return ErrUnavailable
}
