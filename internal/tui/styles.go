package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary = lipgloss.Color("#60A5FA")
	colorMuted   = lipgloss.Color("#9AA0A6")
	colorDim     = lipgloss.Color("#5F6368")
	colorSuccess = lipgloss.Color("#34A853")
	colorWarning = lipgloss.Color("#F9AB00")
	colorError   = lipgloss.Color("#EA4335")
	colorStage   = lipgloss.Color("#3C4043")
	colorBar     = lipgloss.Color("#202124")
	colorFg      = lipgloss.Color("#E8EAED")
	colorSubtle  = lipgloss.Color("#5F6368")
)

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	stageStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorStage).
			Align(lipgloss.Center, lipgloss.Center)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorDim).
			Padding(1, 4).
			Align(lipgloss.Center)

	controlsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Timer
	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg).
			Align(lipgloss.Center)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	ringingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg).
			Background(colorError).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	bottomBarStyle = lipgloss.NewStyle().
			Background(colorBar).
			Foreground(colorFg).
			Padding(0, 1)

	iconStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Padding(0, 1)

	mutedIconStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Padding(0, 1)

	leaveStyle = lipgloss.NewStyle().
			Foreground(colorFg).
			Background(colorError).
			Padding(0, 2)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)
)

// accentStyle renders text in the presenter's accent color, falling back to
// the primary color for an empty value.
func accentStyle(accent string) lipgloss.Style {
	c := colorPrimary
	if accent != "" {
		c = lipgloss.Color(accent)
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
