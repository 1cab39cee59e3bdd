//go:build !linux && !darwin

package services

import "os"

// suspendSignal is nil where the platform has no job control, so no
// delivered signal matches it.
var suspendSignal os.Signal
