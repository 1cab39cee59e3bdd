package domain

// InterruptState is the process-wide interruption state.
type InterruptState int32

const (
	// StateIdle means no wait is in progress that an interrupt could
	// abandon. An interrupt here terminates the process.
	StateIdle InterruptState = iota

	// StateActive means a countdown is running and an interrupt abandons it.
	StateActive

	// StateSuspended means a suspend request was refused and its prompt
	// is on screen.
	StateSuspended
)

// String returns a human-readable label for the state.
func (s InterruptState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateSuspended:
		return "suspended"
	default:
		return "unknown"
	}
}
