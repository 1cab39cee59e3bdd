// Package cmd provides the CLI commands for pomo.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomo/internal/adapters/process"
	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	configPath string
	logFile    string
	whimsy     int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pomo [minutes]",
	Short: "pomo - a pomodoro timer that won't let you pause",
	Long: `pomo runs four pomodoros with short breaks in between and prints a
summary of the session when it exits.

Ctrl-C during a pomodoro abandons it and starts it over. Ctrl-C anywhere
else quits. Ctrl-Z is refused: pomodoros can't be paused.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runSession,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		_ = cleanupServices()
	}

	var terminated *services.TerminatedError
	var missing *MissingCapabilityError
	switch {
	case err == nil:
	case errors.As(err, &terminated):
		process.Reraise(terminated.Signal)
	case errors.As(err, &missing):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitMissingCapability)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.pomo/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write a debug log to this file")
	rootCmd.Flags().CountVarP(&whimsy, "whimsy", "w", "More whimsical figures (repeat for more)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("pomo\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(configCmd)
}

// intervalDuration resolves the pomodoro length: the positional minutes
// argument wins over the config file.
func intervalDuration(args []string, fallback time.Duration) (time.Duration, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	minutes, err := strconv.Atoi(args[0])
	if err != nil || minutes <= 0 {
		return 0, fmt.Errorf("invalid duration %q: minutes must be a positive integer", args[0])
	}
	return time.Duration(minutes) * time.Minute, nil
}

// runSession runs a full pomodoro session on the controlling terminal.
func runSession(cmd *cobra.Command, args []string) error {
	duration, err := intervalDuration(args, time.Duration(app.config.Pomodoro.WorkDuration))
	if err != nil {
		return err
	}
	if err := probeCapabilities(app.config); err != nil {
		return err
	}

	session := domain.NewSession(domain.DefaultTotalIntervals, duration)
	log := app.log.With("session", session.ID)

	// Signals are queued from here on and handled by the first wait.
	proc := process.Listen()
	defer proc.Stop()

	// Deferred in this order so the terminal is back on the primary
	// screen before the summary is printed.
	defer func() {
		fmt.Fprint(cmd.OutOrStdout(), session.SummaryText())
	}()

	tty, err := openTerminal(log)
	if err != nil {
		return err
	}
	defer tty.Close()

	restore, err := tty.EnterFullScreen()
	if err != nil {
		return err
	}
	defer func() {
		if err := restore(); err != nil {
			log.Error("restore terminal", "error", err)
		}
	}()

	ctx := cmd.Context()
	orchestrator := newOrchestrator(tty, proc, log)
	log.Info("session started", "intervals", session.TotalIntervals, "duration", duration)
	return orchestrator.Run(ctx, session)
}
