// Package cli wires the standby command line.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/standby/internal/config"
	"github.com/sadopc/standby/internal/sound"
	"github.com/sadopc/standby/internal/store"
	"github.com/sadopc/standby/internal/tui"
	"github.com/spf13/cobra"
)

// App holds the values shared by every subcommand.
type App struct {
	ConfigPath string
	DBPath     string
	LogFile    string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "standby",
		Short:        "Countdown overlay for the minutes before a meeting",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the stage
  standby

  # Manage the recent slides from scripts
  standby slides add ~/decks/intro.png
  standby slides list
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		log.SetOutput(cmd.ErrOrStderr())
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("STANDBY_CONFIG", ""), "Path to config.yaml (default: user config dir)")
	cmd.PersistentFlags().StringVar(&app.DBPath, "db", envOr("STANDBY_DB", ""), "Path to the SQLite database")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log", envOr("STANDBY_LOG", ""), "Write TUI logs to this file")

	cmd.AddCommand(newSlidesCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// loadConfig reads the deployment config and applies flag overrides.
func loadConfig(app *App) (config.Config, error) {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if app.DBPath != "" {
		cfg.DBPath = app.DBPath
	}
	if app.LogFile != "" {
		cfg.LogFile = app.LogFile
	}
	return cfg, nil
}

func openStore(cfg config.Config) (*store.Store, error) {
	path := cfg.DBPath
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	s, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

func runTUI(app *App) error {
	cfg, err := loadConfig(app)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI while it runs.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "standby")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	m := tui.NewApp(s, tui.Options{
		Player:       newPlayer(cfg),
		Bell:         os.Stdout,
		RingInterval: cfg.RingInterval(),
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// newPlayer returns the external sound player, or nil when none can run.
// The TUI rings the terminal bell itself when this is nil or fails.
func newPlayer(cfg config.Config) sound.Player {
	c, err := sound.NewCommand(cfg.SoundCommand, alarmSoundPath(cfg))
	if err != nil {
		log.Printf("alarm sound unavailable, using terminal bell: %v", err)
		return nil
	}
	return c
}

// alarmSoundPath resolves the alarm asset, installing the bundled sound when
// the default asset is missing. An unwritable base path falls back to the
// user cache dir.
func alarmSoundPath(cfg config.Config) string {
	path := cfg.SoundPath()
	if cfg.AlarmSound != config.DefaultAlarmSound {
		return path
	}
	err := sound.EnsureAsset(path)
	if err == nil {
		return path
	}
	log.Printf("install alarm sound at %s: %v", path, err)

	dir, cerr := os.UserCacheDir()
	if cerr != nil {
		return path
	}
	cached := filepath.Join(dir, "standby", config.DefaultAlarmSound)
	if err := sound.EnsureAsset(cached); err != nil {
		log.Printf("install alarm sound at %s: %v", cached, err)
		return path
	}
	return cached
}
