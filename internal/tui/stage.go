package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/standby/internal/countdown"
	"github.com/sadopc/standby/internal/slides"
)

// stageModel renders the mock meeting surface. It only reads session and
// cache state; every transition goes through App.
type stageModel struct {
	width  int
	height int

	showControls bool
	bar          progress.Model
}

func newStageModel() stageModel {
	return stageModel{
		showControls: true,
		bar: progress.New(
			progress.WithSolidFill(string(colorPrimary)),
			progress.WithoutPercentage(),
		),
	}
}

func (s *stageModel) setSize(w, h int) {
	s.width = w
	s.height = h
	s.bar.Width = max(10, min(60, w/2))
}

// stageData is the read-only snapshot the stage renders from.
type stageData struct {
	session *countdown.Session
	cache   *slides.Cache
	prefs   presenterView
}

// presenterView holds the cosmetic inputs the stage needs.
type presenterView struct {
	eventName string
	accent    string
	scale     int
}

func (s stageModel) view(d stageData) string {
	w := s.width - 2
	if w < 20 {
		w = 20
	}

	bottom := s.renderBottomBar(d, w)
	if !s.showControls {
		return lipgloss.JoinVertical(lipgloss.Left, s.renderSurface(d, w), bottom)
	}

	controls := s.renderControls(d)
	var surface string
	if surfaceW := w - lipgloss.Width(controls) - 1; surfaceW >= 30 {
		surface = lipgloss.JoinHorizontal(lipgloss.Top, s.renderSurface(d, surfaceW), " ", controls)
	} else {
		surface = lipgloss.JoinVertical(lipgloss.Left, s.renderSurface(d, w), controls)
	}
	return lipgloss.JoinVertical(lipgloss.Left, surface, bottom)
}

func (s stageModel) renderSurface(d stageData, w int) string {
	var rows []string
	rows = append(rows, s.renderSlide(d, w-4))
	rows = append(rows, "")
	rows = append(rows, s.renderOverlay(d, w-4))

	body := lipgloss.JoinVertical(lipgloss.Center, rows...)
	style := stageStyle.Width(w - 2)
	// Fill the remaining height above the bottom bar when the body fits.
	if h := s.height - 5; h > lipgloss.Height(body) {
		style = style.Height(h)
	}
	return style.Render(body)
}

func (s stageModel) renderSlide(d stageData, w int) string {
	data, ok := d.cache.Current()
	if !ok {
		return lipgloss.JoinVertical(lipgloss.Center,
			mutedStyle.Render("▣"),
			titleStyle.Render("No presentation shared"),
			mutedStyle.Render("Upload a slide using the presenter controls"),
		)
	}

	name := d.cache.CurrentName()
	if name == "" {
		name = "slide"
	}
	detail := slides.FormatBytes(len(data))
	if info, err := slides.Describe(data); err == nil {
		detail = info.String() + " · " + detail
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("▣ "+truncate(name, w-2)),
		mutedStyle.Render(detail),
	)
}

func (s stageModel) renderOverlay(d stageData, w int) string {
	timer := d.session.Timer()
	event := d.prefs.eventName

	heading := fmt.Sprintf("The %s starts in", accentStyle(d.prefs.accent).Render(event))
	digits := timerStyle.Render(bigDigits(countdown.FormatClock(timer.Remaining()), d.prefs.scale))

	var state string
	switch {
	case timer.Running():
		state = successStyle.Render("● running")
	case timer.Remaining() == 0:
		state = mutedStyle.Render("■ finished")
	case timer.Remaining() < timer.Total():
		state = warningStyle.Render("⏸ paused")
	default:
		state = mutedStyle.Render("○ ready")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(heading),
		"",
		digits,
		"",
		titleStyle.Render("minutes."),
		"",
		s.bar.ViewAs(timer.Progress()),
		state,
		s.renderAlarm(d),
	)
	return overlayStyle.MaxWidth(w).Render(content)
}

func (s stageModel) renderAlarm(d stageData) string {
	alarm := d.session.Alarm()
	switch alarm.State() {
	case countdown.AlarmRinging:
		return ringingStyle.Render("ALARM · press d to dismiss")
	case countdown.AlarmArmed:
		left := alarm.Due().Sub(d.session.Clock().Now()).Round(time.Second)
		if left < 0 {
			left = 0
		}
		return warningStyle.Render(fmt.Sprintf("alarm in %s", left))
	}
	if alarm.Delay() == countdown.DelayNone {
		return mutedStyle.Render("no alarm")
	}
	return mutedStyle.Render(fmt.Sprintf("alarm %s after start", alarm.Delay().Label()))
}

func (s stageModel) renderControls(d stageData) string {
	timer := d.session.Timer()
	alarm := d.session.Alarm()

	toggle := "space  start"
	if timer.Running() {
		toggle = "space  pause"
	}

	rows := []string{
		titleStyle.Render("Presenter Controls"),
		"",
		mutedStyle.Render("Event     ") + truncate(d.prefs.eventName, 18),
		mutedStyle.Render("Duration  ") + countdown.FormatClock(timer.Total()),
		mutedStyle.Render("Alarm     ") + alarm.Delay().Label(),
		mutedStyle.Render("Slides    ") + fmt.Sprintf("%d/%d", d.cache.Len(), slides.MaxRecent),
		"",
		toggle,
		"r      reset",
		"d      dismiss alarm",
		"u      upload slide",
		"s      stop sharing",
		"3      edit settings",
		"c      hide controls",
	}
	return controlsStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderBottomBar is the meeting toolbar. None of the icons do anything.
func (s stageModel) renderBottomBar(d stageData, w int) string {
	left := d.session.Clock().Format() + mutedStyle.Render(" | ") + truncate(capitalize(d.prefs.eventName), 20)

	center := lipgloss.JoinHorizontal(lipgloss.Center,
		mutedIconStyle.Render("⊘mic"),
		mutedIconStyle.Render("⊘cam"),
		iconStyle.Render("CC"),
		iconStyle.Render("☺"),
		iconStyle.Render("⇪"),
		iconStyle.Render("✋"),
		iconStyle.Render("⋮"),
		leaveStyle.Render("☎"),
	)
	right := lipgloss.JoinHorizontal(lipgloss.Center,
		iconStyle.Render("ⓘ"),
		iconStyle.Render("👥"),
		iconStyle.Render("💬"),
		iconStyle.Render("◇"),
		iconStyle.Render("🔒"),
	)

	gap := w - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right) - 2
	if gap < 2 {
		return bottomBarStyle.Width(w).Render(left + "  " + center)
	}
	half := gap / 2
	bar := left + strings.Repeat(" ", half) + center + strings.Repeat(" ", gap-half) + right
	return bottomBarStyle.Width(w).Render(bar)
}
