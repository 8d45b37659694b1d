// Package config loads the deployment configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	appName        = "standby"
	configFileName = "config.yaml"

	// DefaultAlarmSound is the bundled alarm asset, relative to BasePath.
	DefaultAlarmSound = "sounds/alarm.wav"
)

// Config is the deployment configuration. Zero fields fall back to defaults.
type Config struct {
	BasePath            string `yaml:"base_path"`
	AlarmSound          string `yaml:"alarm_sound"`
	SoundCommand        string `yaml:"sound_command"`
	RingIntervalSeconds int    `yaml:"ring_interval_seconds"`
	DBPath              string `yaml:"db_path"`
	LogFile             string `yaml:"log_file"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		BasePath:            executableDir(),
		AlarmSound:          DefaultAlarmSound,
		RingIntervalSeconds: 2,
	}
}

// Load reads the YAML file at path. An empty path means the default location.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	var fileData Config
	if err := yaml.Unmarshal(raw, &fileData); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}
	apply(&cfg, fileData)
	return cfg, nil
}

// Save writes cfg as YAML, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// DefaultPath returns ~/.config/standby/config.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, appName, configFileName), nil
}

// SoundPath resolves the alarm asset against the base path.
func (c Config) SoundPath() string {
	if filepath.IsAbs(c.AlarmSound) {
		return c.AlarmSound
	}
	return filepath.Join(c.BasePath, c.AlarmSound)
}

func (c Config) RingInterval() time.Duration {
	return time.Duration(c.RingIntervalSeconds) * time.Second
}

func apply(cfg *Config, fileData Config) {
	if fileData.BasePath != "" {
		cfg.BasePath = fileData.BasePath
	}
	if fileData.AlarmSound != "" {
		cfg.AlarmSound = fileData.AlarmSound
	}
	if fileData.RingIntervalSeconds > 0 {
		cfg.RingIntervalSeconds = fileData.RingIntervalSeconds
	}
	cfg.SoundCommand = fileData.SoundCommand
	cfg.DBPath = fileData.DBPath
	cfg.LogFile = fileData.LogFile
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
