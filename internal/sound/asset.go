package sound

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed alarm.wav
var alarmWAV []byte

// EnsureAsset makes sure an alarm sound exists at path, writing the bundled
// one when nothing is there yet. An existing file is left alone.
func EnsureAsset(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("alarm sound: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create sound dir: %w", err)
	}
	if err := os.WriteFile(path, alarmWAV, 0o644); err != nil {
		return fmt.Errorf("write alarm sound: %w", err)
	}
	return nil
}
