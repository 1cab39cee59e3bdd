package ports

import "time"

// Presenter builds the text frames shown on the screen.
type Presenter interface {
	// Countdown renders the remaining time of an interval.
	Countdown(remaining, total time.Duration) string

	// Say wraps message in a decorated speech bubble.
	Say(message string) string

	// Celebrate renders message with the celebratory colors, or plain
	// when the terminal cannot show them.
	Celebrate(message string) string
}

// Notifier delivers fire-and-forget notifications outside the terminal.
type Notifier interface {
	// Notify sends a normal priority desktop notification.
	Notify(title, message string) error

	// Alert sends an urgent desktop notification.
	Alert(title, message string) error

	// Beep plays the notification sound.
	Beep() error
}
