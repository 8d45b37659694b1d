package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AlarmSound != DefaultAlarmSound || cfg.RingIntervalSeconds != 2 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.BasePath == "" {
		t.Fatal("base path should default to the executable directory")
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "base_path: /srv/standby\nring_interval_seconds: 5\nlog_file: /tmp/standby.log\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BasePath != "/srv/standby" || cfg.LogFile != "/tmp/standby.log" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.RingInterval() != 5*time.Second {
		t.Fatalf("ring interval %v", cfg.RingInterval())
	}
	if cfg.AlarmSound != DefaultAlarmSound {
		t.Fatal("missing keys should keep defaults")
	}
	if cfg.SoundPath() != filepath.Join("/srv/standby", DefaultAlarmSound) {
		t.Fatalf("sound path %q", cfg.SoundPath())
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("base_path: [unterminated"), 0o644)
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := Config{BasePath: "/opt/standby", AlarmSound: "chime.wav", SoundCommand: "paplay", RingIntervalSeconds: 3, DBPath: "/var/lib/standby.db"}
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSoundPathAbsolute(t *testing.T) {
	cfg := Config{BasePath: "/base", AlarmSound: "/elsewhere/ding.wav"}
	if cfg.SoundPath() != "/elsewhere/ding.wav" {
		t.Fatalf("sound path %q", cfg.SoundPath())
	}
}
