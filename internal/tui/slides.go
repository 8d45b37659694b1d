package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/standby/internal/slides"
)

var chartColors = []string{"#60A5FA", "#34A853", "#F9AB00", "#EA4335", "#A78BFA"}

type slidesModel struct {
	cache  *slides.Cache
	width  int
	height int

	cursor int

	formActive bool
	form       *huh.Form
	uploadPath *string

	chart barchart.Model
}

func newSlidesModel(c *slides.Cache) slidesModel {
	path := ""
	return slidesModel{
		cache:      c,
		uploadPath: &path,
		chart:      barchart.New(40, 8),
	}
}

func (s *slidesModel) setSize(w, h int) {
	s.width = w
	s.height = h
	s.buildChart()
}

// sync clamps the cursor and redraws the chart after the cache changed.
func (s *slidesModel) sync() {
	if s.cursor >= s.cache.Len() {
		s.cursor = max(0, s.cache.Len()-1)
	}
	s.buildChart()
}

func (s slidesModel) update(msg tea.Msg) (slidesModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(km, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(km, keys.Down):
		if s.cursor < s.cache.Len()-1 {
			s.cursor++
		}
	case key.Matches(km, keys.Enter):
		if s.cache.SelectIndex(s.cursor) {
			name := s.cache.List()[s.cursor].Name
			return s, statusCmd("Sharing "+name, false)
		}
	case key.Matches(km, keys.Delete):
		list := s.cache.List()
		if s.cursor >= len(list) {
			return s, nil
		}
		name := list[s.cursor].Name
		if s.cache.Remove(s.cursor) {
			s.sync()
			return s, statusCmd("Removed "+name, false)
		}
	}
	return s, nil
}

func (s slidesModel) showForm() (slidesModel, tea.Cmd) {
	*s.uploadPath = ""
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Slide image").
				Description("Path to a png, jpeg, gif, bmp, tiff or webp file").
				Placeholder("~/slides/intro.png").
				Value(s.uploadPath),
		),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s slidesModel) updateForm(msg tea.Msg) (slidesModel, tea.Cmd) {
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
		return s, loadSlide(*s.uploadPath)
	case huh.StateAborted:
		s.formActive = false
		s.form = nil
		return s, nil
	}
	return s, cmd
}

// loadSlide reads the file off the event loop.
func loadSlide(path string) tea.Cmd {
	path = expandHome(strings.TrimSpace(path))
	return func() tea.Msg {
		if path == "" {
			return slideLoadedMsg{err: errors.New("no file given")}
		}
		name, data, err := slides.ReadFile(path)
		return slideLoadedMsg{name: name, data: data, err: err}
	}
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: isError} }
}

func (s *slidesModel) buildChart() {
	w := s.width - 8
	if w < 20 {
		w = 20
	}
	s.chart = barchart.New(w, 8)

	var bars []barchart.BarData
	for i, img := range s.cache.List() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(chartColors[i%len(chartColors)]))
		bars = append(bars, barchart.BarData{
			Label: fmt.Sprintf("#%d", i+1),
			Values: []barchart.BarValue{{
				Name:  img.Name,
				Value: float64(len(img.Data)) / 1024,
				Style: style,
			}},
		})
	}
	if len(bars) == 0 {
		return
	}
	s.chart.PushAll(bars)
	s.chart.Draw()
}

func (s slidesModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Upload Slide"), "", s.form.View()),
		)
	}

	list := s.cache.List()
	header := titleStyle.Render(fmt.Sprintf("Recent Slides (%d/%d)", len(list), slides.MaxRecent))

	var rows []string
	rows = append(rows, header, "")

	if len(list) == 0 {
		rows = append(rows, mutedStyle.Render("  No slides yet. Press u to upload one."))
	} else {
		current, _ := s.cache.Current()
		total := 0
		for i, img := range list {
			total += len(img.Data)

			cursor := "  "
			style := normalItemStyle
			if i == s.cursor {
				cursor = "> "
				style = selectedItemStyle
			}
			marker := " "
			if current != nil && string(current) == string(img.Data) {
				marker = successStyle.Render("●")
			}
			line := fmt.Sprintf("%s%s %d. %-28s %10s", cursor, marker, i+1, truncate(img.Name, 28), slides.FormatBytes(len(img.Data)))
			rows = append(rows, style.Render(line))
		}
		rows = append(rows, "", mutedStyle.Render("  Cache footprint (KiB per slide), total "+slides.FormatBytes(total)))
		rows = append(rows, s.chart.View())
	}

	rows = append(rows, "", mutedStyle.Render("  enter: share  x: remove  u: upload  ↑/↓: move"))
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
