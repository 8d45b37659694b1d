package tui

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sadopc/standby/internal/countdown"
	"github.com/sadopc/standby/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewStage viewState = iota
	viewSlides
	viewSettings
)

var viewNames = []string{"Stage", "Slides", "Settings"}

// --- Messages ---

// taskMsg delivers a scheduled countdown task back to the session.
type taskMsg struct {
	task countdown.Task
}

type statusMsg struct {
	text    string
	isError bool
}

type slideLoadedMsg struct {
	name string
	data []byte
	err  error
}

type soundErrMsg struct {
	err error
}

type settingsSavedMsg struct {
	prefs store.Preferences
}

// --- Helpers ---

// capitalize upper-cases the first letter, as the bottom bar shows the event.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func truncate(s string, w int) string {
	if w <= 0 || utf8.RuneCountInString(s) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:w-1])) + "…"
}

// expandHome resolves a leading ~ against the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
