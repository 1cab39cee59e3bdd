package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xvierd/pomo/internal/config"
)

func TestNotifier_DisabledIsNoop(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.NotificationConfig
	}{
		{name: "nil config", cfg: nil},
		{name: "disabled", cfg: &config.NotificationConfig{Enabled: false, Sound: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(tt.cfg)

			assert.False(t, n.IsEnabled())
			assert.NoError(t, n.Notify("title", "message"))
			assert.NoError(t, n.Alert("title", "message"))
			assert.NoError(t, n.Beep())
		})
	}
}

func TestNotifier_SoundOff(t *testing.T) {
	n := New(&config.NotificationConfig{Enabled: true, Sound: false})

	assert.True(t, n.IsEnabled())
	assert.NoError(t, n.Beep())
}
