package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/standby/internal/countdown"
	"github.com/sadopc/standby/internal/store"
)

var accentColors = []string{"#60A5FA", "#34A853", "#F9AB00", "#EA4335", "#A78BFA", "#F97316"}

type settingsModel struct {
	width  int
	height int

	prefs      store.Preferences
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	eventName *string
	minutes   *string
	seconds   *string
	delay     *string
	accent    *string
	scale     *string
}

func newSettingsModel(p store.Preferences) settingsModel {
	en, m, sec, d, a, sc := "", "", "", "", "", ""
	return settingsModel{
		prefs:     p,
		eventName: &en,
		minutes:   &m,
		seconds:   &sec,
		delay:     &d,
		accent:    &a,
		scale:     &sc,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Enter) {
		return s.showForm()
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.eventName = s.prefs.EventName
	*s.minutes = strconv.Itoa(s.prefs.Minutes)
	*s.seconds = strconv.Itoa(s.prefs.Seconds)
	*s.delay = countdown.ParseDelay(s.prefs.AlarmDelay).String()
	*s.accent = s.prefs.Accent
	*s.scale = strconv.Itoa(clampScale(s.prefs.Scale))

	var delayOpts []huh.Option[string]
	for _, d := range countdown.Delays() {
		delayOpts = append(delayOpts, huh.NewOption(d.Label(), d.String()))
	}

	var accentOpts []huh.Option[string]
	known := false
	for _, c := range accentColors {
		accentOpts = append(accentOpts, huh.NewOption(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("● "+c), c))
		known = known || strings.EqualFold(c, s.prefs.Accent)
	}
	if !known && s.prefs.Accent != "" {
		accentOpts = append(accentOpts, huh.NewOption(s.prefs.Accent, s.prefs.Accent))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Event name").Value(s.eventName).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("event name is required")
					}
					return nil
				}),
			huh.NewInput().Title("Minutes").Value(s.minutes),
			huh.NewInput().Title("Seconds").Description("0-59").Value(s.seconds),
			huh.NewSelect[string]().Title("Alarm after start").
				Options(delayOpts...).
				Value(s.delay),
		).Title("Countdown"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Accent color").
				Options(accentOpts...).
				Value(s.accent),
			huh.NewSelect[string]().Title("Digit scale").
				Options(
					huh.NewOption("1x", "1"),
					huh.NewOption("2x", "2"),
					huh.NewOption("3x", "3"),
				).Value(s.scale),
		).Title("Display"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keys.Back) {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	switch s.form.State {
	case huh.StateCompleted:
		s.formActive = false
		s.form = nil
		p := s.collect()
		return s, func() tea.Msg { return settingsSavedMsg{prefs: p} }
	case huh.StateAborted:
		s.formActive = false
		s.form = nil
		return s, nil
	}
	return s, cmd
}

// collect turns the form strings into preferences. Bad numbers become zero,
// the same as the countdown inputs on the stage.
func (s settingsModel) collect() store.Preferences {
	m, sec := countdown.ParseDuration(*s.minutes, *s.seconds)
	if sec > 59 {
		sec = 59
	}
	scale, err := strconv.Atoi(*s.scale)
	if err != nil {
		scale = 1
	}
	return store.Preferences{
		EventName:  strings.TrimSpace(*s.eventName),
		Minutes:    m,
		Seconds:    sec,
		AlarmDelay: countdown.ParseDelay(*s.delay).String(),
		Accent:     *s.accent,
		Scale:      clampScale(scale),
	}
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	rows := []string{titleStyle.Render("Settings"), ""}
	for _, kv := range [][2]string{
		{"Event name", s.prefs.EventName},
		{"Duration", countdown.FormatClock(s.prefs.Minutes*60 + s.prefs.Seconds)},
		{"Alarm", countdown.ParseDelay(s.prefs.AlarmDelay).Label()},
		{"Accent color", accentStyle(s.prefs.Accent).Render("● " + s.prefs.Accent)},
		{"Digit scale", fmt.Sprintf("%dx", clampScale(s.prefs.Scale))},
	} {
		label := lipgloss.NewStyle().Width(16).Render(kv[0])
		rows = append(rows, fmt.Sprintf("  %s %s", label, kv[1]))
	}
	rows = append(rows, "", mutedStyle.Render("Press enter to edit settings"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
