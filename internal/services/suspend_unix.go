//go:build linux || darwin

package services

import (
	"os"
	"syscall"
)

// suspendSignal is the job-control stop request from the terminal.
var suspendSignal os.Signal = syscall.SIGTSTP
