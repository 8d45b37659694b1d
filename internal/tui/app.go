package tui

import (
	"io"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/standby/internal/countdown"
	"github.com/sadopc/standby/internal/slides"
	"github.com/sadopc/standby/internal/sound"
	"github.com/sadopc/standby/internal/store"
)

// Options tunes an App beyond what the store provides. Bell receives the
// terminal bell when Player is nil or fails; it is only written from Update.
type Options struct {
	Player       sound.Player
	Bell         io.Writer
	RingInterval time.Duration
	Now          func() time.Time
}

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	width  int
	height int

	session *countdown.Session
	cache   *slides.Cache
	player  sound.Player
	bell    sound.Bell
	now     func() time.Time
	prefs   store.Preferences

	activeView viewState
	showHelp   bool

	stage    stageModel
	slides   slidesModel
	settings settingsModel

	help        help.Model
	status      string
	statusError bool
}

// NewApp restores the presenter's last inputs and recent slides from s.
func NewApp(s *store.Store, opts Options) App {
	h := help.New()
	h.ShowAll = false

	if opts.Now == nil {
		opts.Now = time.Now
	}

	prefs := s.LoadPreferences()
	session := countdown.NewSession(countdown.Options{
		Minutes:      prefs.Minutes,
		Seconds:      prefs.Seconds,
		Delay:        countdown.ParseDelay(prefs.AlarmDelay),
		RingInterval: opts.RingInterval,
	})

	cache := slides.New(s)
	cache.LoadPersisted()

	return App{
		store:      s,
		session:    session,
		cache:      cache,
		player:     opts.Player,
		bell:       sound.Bell{W: opts.Bell},
		now:        opts.Now,
		prefs:      prefs,
		activeView: viewStage,
		stage:      newStageModel(),
		slides:     newSlidesModel(cache),
		settings:   newSettingsModel(prefs),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return a.apply(a.session.Open(a.now()))
}

// apply schedules the tasks of a session result and turns its events into
// commands.
func (a *App) apply(r countdown.Result) tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range r.Tasks {
		cmds = append(cmds, scheduleTask(t))
	}
	for _, e := range r.Events {
		switch e.Type {
		case countdown.EventRing:
			if a.player == nil {
				a.ringBell()
			} else {
				cmds = append(cmds, a.playCmd())
			}
		case countdown.EventAlarmFired:
			log.Printf("alarm fired with %s left", countdown.FormatClock(e.Remaining))
			a.setStatus("Alarm! Press d to dismiss", true)
		case countdown.EventExpired:
			log.Printf("countdown expired")
			a.setStatus("The "+a.prefs.EventName+" is starting", false)
		case countdown.EventStarted:
			a.setStatus("Countdown started", false)
		case countdown.EventPaused:
			a.setStatus("Countdown paused", false)
		case countdown.EventReset:
			a.setStatus("Countdown reset", false)
		case countdown.EventDismissed:
			a.setStatus("Alarm dismissed", false)
		}
	}
	return tea.Batch(cmds...)
}

// scheduleTask delivers t back to Update once its delay has passed.
func scheduleTask(t countdown.Task) tea.Cmd {
	if t.After <= 0 {
		return func() tea.Msg { return taskMsg{task: t} }
	}
	return tea.Tick(t.After, func(time.Time) tea.Msg {
		return taskMsg{task: t}
	})
}

func (a App) playCmd() tea.Cmd {
	p := a.player
	return func() tea.Msg {
		if err := p.Play(); err != nil {
			return soundErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) ringBell() {
	if a.bell.W == nil {
		return
	}
	if err := a.bell.Play(); err != nil {
		log.Printf("bell: %v", err)
	}
}

func (a *App) setStatus(text string, isError bool) {
	a.status = text
	a.statusError = isError
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.stage.setSize(a.width, contentHeight)
		a.slides.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case taskMsg:
		return a, a.apply(a.session.Due(msg.task, a.now()))

	case tea.KeyMsg:
		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			a.session.Close()
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewStage
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewSlides
			a.slides.sync()
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewSettings
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			return a, nil
		case key.Matches(msg, keys.Toggle):
			return a, a.apply(a.session.Toggle(a.now()))
		case key.Matches(msg, keys.Reset):
			return a, a.apply(a.session.Reset(a.now()))
		case key.Matches(msg, keys.Dismiss):
			return a, a.apply(a.session.Dismiss(a.now()))
		case key.Matches(msg, keys.Upload):
			a.activeView = viewSlides
			var cmd tea.Cmd
			a.slides, cmd = a.slides.showForm()
			return a, cmd
		case key.Matches(msg, keys.Unshare):
			if _, ok := a.cache.Current(); ok {
				a.cache.Clear()
				a.setStatus("Stopped sharing", false)
			}
			return a, nil
		case key.Matches(msg, keys.Controls) && a.activeView == viewStage:
			a.stage.showControls = !a.stage.showControls
			return a, nil
		}

	case slideLoadedMsg:
		if msg.err != nil {
			log.Printf("upload: %v", msg.err)
			a.setStatus("Upload failed: "+msg.err.Error(), true)
			return a, nil
		}
		a.cache.Add(msg.name, msg.data)
		a.cache.Select(msg.data)
		a.slides.cursor = 0
		a.slides.sync()
		a.setStatus("Sharing "+msg.name, false)
		return a, nil

	case settingsSavedMsg:
		return a, a.applyPreferences(msg.prefs)

	case soundErrMsg:
		log.Printf("alarm sound: %v", msg.err)
		a.ringBell()
		return a, nil

	case statusMsg:
		a.setStatus(msg.text, msg.isError)
		return a, nil
	}

	return a.updateActiveView(msg)
}

// applyPreferences applies edited settings and persists them for the next
// launch. Only a duration change touches the countdown; the delay applies to
// the next start and the rest is cosmetic.
func (a *App) applyPreferences(p store.Preferences) tea.Cmd {
	var cmd tea.Cmd
	if p.Minutes != a.prefs.Minutes || p.Seconds != a.prefs.Seconds {
		cmd = a.apply(a.session.Configure(p.Minutes, p.Seconds, a.now()))
	}
	a.session.SetDelay(countdown.ParseDelay(p.AlarmDelay))
	a.prefs = p
	a.settings.prefs = p

	if err := a.store.SavePreferences(p); err != nil {
		log.Printf("save preferences: %v", err)
		a.setStatus("Settings applied but not saved: "+err.Error(), true)
		return cmd
	}
	a.setStatus("Settings saved", false)
	return cmd
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewSlides:
		a.slides, cmd = a.slides.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewSlides:
		return a.slides.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewStage:
		content = a.stage.view(stageData{
			session: a.session,
			cache:   a.cache,
			prefs: presenterView{
				eventName: a.prefs.EventName,
				accent:    a.prefs.Accent,
				scale:     a.prefs.Scale,
			},
		})
	case viewSlides:
		content = a.slides.view()
	case viewSettings:
		content = a.settings.view()
	}

	contentHeight := a.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 1 {
		contentHeight = 1
	}
	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := accentStyle(a.prefs.Accent).Render("standby")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	left := footerStyle.Render(a.help.View(keys))

	timer := a.session.Timer()
	timerInfo := ""
	switch {
	case a.session.Alarm().Ringing():
		timerInfo = ringingStyle.Render("ALARM")
	case timer.Running():
		timerInfo = successStyle.Render(" ● " + countdown.FormatClock(timer.Remaining()))
	case timer.Remaining() < timer.Total():
		timerInfo = warningStyle.Render(" ⏸ " + countdown.FormatClock(timer.Remaining()))
	}

	status := ""
	if a.status != "" {
		style := mutedStyle
		if a.statusError {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	right := timerInfo + status
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}
