// Package sound plays the alarm signal.
package sound

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Player plays one beat of the alarm.
type Player interface {
	Play() error
}

// candidates are tried in order when no command is configured.
var candidates = []string{"paplay", "aplay", "afplay"}

// Command plays an audio file with an external program.
type Command struct {
	Program string
	Path    string
}

// NewCommand resolves the program to use for path. An empty program picks
// the first known player found on PATH.
func NewCommand(program, path string) (*Command, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("alarm sound: %w", err)
	}
	if program != "" {
		if _, err := exec.LookPath(program); err != nil {
			return nil, fmt.Errorf("alarm player %q: %w", program, err)
		}
		return &Command{Program: program, Path: path}, nil
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c); err == nil {
			return &Command{Program: c, Path: path}, nil
		}
	}
	return nil, errors.New("alarm player: none of paplay, aplay, afplay found")
}

// Play starts the program without waiting for it; the alarm repeats on its
// own schedule.
func (c *Command) Play() error {
	cmd := exec.Command(c.Program, c.Path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("play %s: %w", c.Path, err)
	}
	go cmd.Wait()
	return nil
}

// Bell rings the terminal bell.
type Bell struct {
	W io.Writer
}

func (b Bell) Play() error {
	if b.W == nil {
		return errors.New("bell: no output")
	}
	_, err := io.WriteString(b.W, "\a")
	return err
}
