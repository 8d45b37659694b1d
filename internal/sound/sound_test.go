package sound

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBell(t *testing.T) {
	var buf bytes.Buffer
	if err := (Bell{W: &buf}).Play(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\a" {
		t.Fatalf("wrote %q", buf.String())
	}
	if err := (Bell{}).Play(); err == nil {
		t.Fatal("bell without output should fail")
	}
}

func TestNewCommandMissingAsset(t *testing.T) {
	if _, err := NewCommand("", filepath.Join(t.TempDir(), "alarm.wav")); err == nil {
		t.Fatal("missing asset should fail")
	}
}

func TestEnsureAssetWritesBundledSound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sounds", "alarm.wav")
	if err := EnsureAsset(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WAVE")) {
		t.Fatal("bundled asset is not a WAV file")
	}
	// Without a player on PATH the only acceptable failure is the player.
	if _, err := NewCommand("", path); err != nil && !strings.Contains(err.Error(), "alarm player") {
		t.Fatalf("asset should be found, got %v", err)
	}
}

func TestEnsureAssetKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alarm.wav")
	os.WriteFile(path, []byte("custom"), 0o644)
	if err := EnsureAsset(path); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "custom" {
		t.Fatalf("existing sound overwritten: %q", data)
	}
}
