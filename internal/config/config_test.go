package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if time.Duration(cfg.Pomodoro.WorkDuration) != 25*time.Minute {
		t.Errorf("WorkDuration = %v, want 25m", cfg.Pomodoro.WorkDuration)
	}
	if !cfg.Notifications.Enabled || !cfg.Notifications.Sound {
		t.Errorf("Notifications = %+v, want enabled with sound", cfg.Notifications)
	}
	if cfg.Theme != DefaultThemeConfig() {
		t.Errorf("Theme = %+v, want defaults", cfg.Theme)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[pomodoro]
work_duration = "50m"
whimsy = 2

[notifications]
sound = false
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if time.Duration(cfg.Pomodoro.WorkDuration) != 50*time.Minute {
		t.Errorf("WorkDuration = %v, want 50m", cfg.Pomodoro.WorkDuration)
	}
	if cfg.Pomodoro.Whimsy != 2 {
		t.Errorf("Whimsy = %d, want 2", cfg.Pomodoro.Whimsy)
	}
	if !cfg.Notifications.Enabled {
		t.Error("Notifications.Enabled = false, want default true")
	}
	if cfg.Notifications.Sound {
		t.Error("Notifications.Sound = true, want false")
	}
}

func TestLoad_RejectsBadDuration(t *testing.T) {
	tests := map[string]string{
		"unparsable": `[pomodoro]
work_duration = "soon"
`,
		"zero": `[pomodoro]
work_duration = "0s"
`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatal(err)
			}

			if _, err := Load(path); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := DefaultConfig()
	want.Pomodoro.WorkDuration = Duration(45 * time.Minute)
	want.Pomodoro.Whimsy = 1
	want.Log.File = "/tmp/pomo.log"

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *got != *want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1h30m")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if time.Duration(d) != 90*time.Minute {
		t.Errorf("Duration = %v, want 1h30m", d)
	}

	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "1h30m0s" {
		t.Errorf("MarshalText() = %q, want %q", text, "1h30m0s")
	}
}
