package cmd

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/pomo/internal/config"
)

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// resetFlags puts every flag of cmd and its subcommands back to its
// default. Cobra keeps parsed values on the package-level commands
// between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCmd is a helper to execute a cobra command in tests
func executeCmd(cmd *cobra.Command, args ...string) (stdout string, stderr string, err error) {
	resetFlags(cmd.Root())

	bufOut := new(bytes.Buffer)
	bufErr := new(bytes.Buffer)

	cmd.SetOut(bufOut)
	cmd.SetErr(bufErr)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return bufOut.String(), bufErr.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "pomo [minutes]", rootCmd.Use)
}

func TestRootCmd_Help(t *testing.T) {
	stdout, _, err := executeCmd(rootCmd, "--help")
	require.NoError(t, err)

	assert.Contains(t, stdout, "pomo")
	assert.Contains(t, stdout, "--whimsy")
}

func TestRootCmd_Flags(t *testing.T) {
	for _, name := range []string{"config", "log-file"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "--%s should be registered", name)
	}

	w := rootCmd.Flags().Lookup("whimsy")
	require.NotNil(t, w)
	assert.Equal(t, "w", w.Shorthand)
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	_, _, err := executeCmd(rootCmd, "25", "5")
	require.Error(t, err)
}

func TestRootCmd_HelpDoesNotLeakIntoNextRun(t *testing.T) {
	_, _, err := executeCmd(rootCmd, "--help")
	require.NoError(t, err)

	_, _, err = executeCmd(rootCmd, "25", "5")
	require.Error(t, err, "args must be validated once --help is no longer given")

	_, _, err = executeCmd(rootCmd, "config", "path", "--help")
	require.NoError(t, err)

	stdout, _, err := executeCmd(rootCmd, "config", "path", "--config", "/tmp/pomo.toml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pomo.toml", strings.TrimSpace(stdout))
}

func TestIntervalDuration(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    time.Duration
		wantErr bool
	}{
		{name: "default", args: nil, want: 25 * time.Minute},
		{name: "minutes", args: []string{"50"}, want: 50 * time.Minute},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "negative", args: []string{"-3"}, wantErr: true},
		{name: "not a number", args: []string{"ten"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := intervalDuration(tt.args, 25*time.Minute)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigCmd_InitPathShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pomo", "config.toml")

	stdout, _, err := executeCmd(rootCmd, "config", "init", "--config", path, "--force=false")
	require.NoError(t, err)
	assert.Contains(t, stdout, path)

	_, err = os.Stat(path)
	require.NoError(t, err)

	_, _, err = executeCmd(rootCmd, "config", "init", "--config", path, "--force=false")
	require.Error(t, err, "init must not overwrite without --force")

	stdout, _, err = executeCmd(rootCmd, "config", "path", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, path, strings.TrimSpace(stdout))

	stdout, _, err = executeCmd(rootCmd, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "25 minutes")
	assert.Contains(t, stdout, "on (with sound)")
}

func TestNewLogger(t *testing.T) {
	t.Run("discard by default", func(t *testing.T) {
		log, closer, err := newLogger(config.LogConfig{Level: "info"})
		require.NoError(t, err)
		assert.Nil(t, closer)
		log.Info("nothing to see")
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pomo.log")
		log, closer, err := newLogger(config.LogConfig{File: path, Level: "debug"})
		require.NoError(t, err)
		log.Debug("transition", "from", "idle", "to", "active")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "from=idle")
	})

	t.Run("bad level", func(t *testing.T) {
		_, _, err := newLogger(config.LogConfig{Level: "chatty"})
		require.Error(t, err)
	})
}

func TestMissingCapabilityError(t *testing.T) {
	cause := errors.New("no such device")
	err := error(&MissingCapabilityError{Capability: "controlling terminal", Err: cause})

	assert.Equal(t, "missing controlling terminal: no such device", err.Error())
	assert.ErrorIs(t, err, cause)

	var missing *MissingCapabilityError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 127, ExitMissingCapability)
}

func TestProbeCapabilities_OnlyReportsMissingCapabilities(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Notifications.Enabled = false
	app.log = discardLog()

	err := probeCapabilities(cfg)
	if err == nil {
		return
	}
	var missing *MissingCapabilityError
	assert.ErrorAs(t, err, &missing)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "1 minute", formatMinutes(time.Minute))
	assert.Equal(t, "25 minutes", formatMinutes(25*time.Minute))
}
