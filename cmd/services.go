package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/xvierd/pomo/internal/adapters/notification"
	"github.com/xvierd/pomo/internal/adapters/process"
	"github.com/xvierd/pomo/internal/adapters/render"
	"github.com/xvierd/pomo/internal/adapters/terminal"
	"github.com/xvierd/pomo/internal/config"
	"github.com/xvierd/pomo/internal/services"
)

// appDeps groups the dependencies initialized at startup.
type appDeps struct {
	config   *config.Config
	log      *slog.Logger
	logFile  io.Closer
	notifier *notification.Notifier
}

// app holds all initialized dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices loads the configuration and sets up logging and
// notifications.
func initializeServices() error {
	if configPath == "" {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		configPath = path
	}

	var err error
	app.config, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if logFile != "" {
		app.config.Log.File = logFile
	}

	app.log, app.logFile, err = newLogger(app.config.Log)
	if err != nil {
		return err
	}
	app.notifier = notification.New(&app.config.Notifications)
	return nil
}

// cleanupServices closes all resources. It is safe to call more than once.
func cleanupServices() error {
	if app.logFile == nil {
		return nil
	}
	err := app.logFile.Close()
	app.logFile = nil
	return err
}

// newLogger builds the debug logger. Logs never go to the terminal, which
// belongs to the countdown; without a file they are discarded.
func newLogger(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), nil, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), f, nil
}

func openTerminal(log *slog.Logger) (*terminal.Controller, error) {
	return terminal.Open(terminal.DevicePath, log.With("component", "terminal"))
}

// newOrchestrator wires the state machine, countdown and orchestrator to
// the terminal and the process.
func newOrchestrator(tty *terminal.Controller, proc *process.Process, log *slog.Logger) *services.Orchestrator {
	theme := app.config.Theme
	presenter := render.NewPresenter(tty.Writer(), render.Theme{
		Work:          theme.ColorWork,
		Alert:         theme.ColorAlert,
		GradientStart: theme.GradientStart,
		GradientEnd:   theme.GradientEnd,
	}, app.config.Pomodoro.Whimsy+whimsy, uint64(time.Now().UnixNano()))

	machine := services.NewMachine(proc, tty, presenter.SuspendPrompt, log.With("component", "interrupt"))
	countdown := services.NewCountdown(machine, tty, presenter, log.With("component", "countdown"))
	return services.NewOrchestrator(machine, countdown, tty, tty, presenter, app.notifier, log.With("component", "orchestrator"))
}
