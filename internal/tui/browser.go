package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zakriahayder/airfoil-selection-tool/internal/render"
	"github.com/zakriahayder/airfoil-selection-tool/internal/report"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	subtle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	cursorMark = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	selected   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	unselected = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	summary    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaa00"))
)

const (
	stateList = iota
	statePage
)

// pageChrome is the number of lines around the scrolling plot area.
const pageChrome = 7

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Back key.Binding
	Prev key.Binding
	Next key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Up:   key.NewBinding(key.WithKeys("up", "k")),
	Down: key.NewBinding(key.WithKeys("down", "j")),
	Open: key.NewBinding(key.WithKeys("enter", " ")),
	Back: key.NewBinding(key.WithKeys("esc", "backspace")),
	Prev: key.NewBinding(key.WithKeys("left", "h")),
	Next: key.NewBinding(key.WithKeys("right", "l")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

type model struct {
	state  int
	cursor int
	title  string
	// entries come from the contents page; plots[i] is entries[i]'s page.
	entries []report.Entry
	plots   []report.Page
	width   int
	height  int
	vp      viewport.Model
}

// NewBrowser builds the browser model from a page sequence as produced by
// report.Builder.Pages.
func NewBrowser(pages []report.Page) model {
	m := model{width: 80, height: 24}
	for _, p := range pages {
		switch p.Kind {
		case report.TitlePage:
			m.title = p.Heading
		case report.ContentsPage:
			m.entries = p.Entries
		case report.PlotPage:
			m.plots = append(m.plots, p)
		}
	}
	m.vp = viewport.New(m.width, max(m.height-pageChrome, 1))
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == statePage {
			return m.pageKey(msg)
		}
		return m.listKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-pageChrome, 1)
		if m.state == statePage {
			m.vp.SetContent(m.pageBody())
		}
	}
	return m, nil
}

func (m model) listKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.plots)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Open):
		if len(m.plots) > 0 {
			m.state = statePage
			m.showPage()
		}
	}
	return m, nil
}

func (m model) pageKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Back):
		m.state = stateList
	case key.Matches(msg, keys.Prev):
		if m.cursor > 0 {
			m.cursor--
			m.showPage()
		}
	case key.Matches(msg, keys.Next):
		if m.cursor < len(m.plots)-1 {
			m.cursor++
			m.showPage()
		}
	default:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) showPage() {
	m.vp.SetContent(m.pageBody())
	m.vp.GotoTop()
}

// pageBody is the scrolling part of a plot page: panels and summary.
func (m model) pageBody() string {
	p := m.plots[m.cursor]
	var b strings.Builder
	for _, panel := range p.Panels {
		b.WriteString(render.PlotPanel(panel, m.width-4) + "\n\n")
	}
	b.WriteString("  " + summary.Render(p.Summary))
	return b.String()
}

func (m model) View() string {
	if m.state == statePage {
		return m.viewPage()
	}
	return m.viewList()
}

func (m model) viewList() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render(m.title) + "\n  " + subtle.Render("sorted by CL at max CL/CD") + "\n\n")
	for i, e := range m.entries {
		line := fmt.Sprintf("%-56s page %d", e.Label, e.Page)
		if i == m.cursor {
			b.WriteString("  " + cursorMark.Render("▸") + " " + selected.Render(line) + "\n")
		} else {
			b.WriteString("    " + unselected.Render(line) + "\n")
		}
	}
	b.WriteString("\n  " + hints("j/k", "navigate", "enter", "plots", "q", "quit") + "\n")
	return b.String()
}

func (m model) viewPage() string {
	p := m.plots[m.cursor]
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render(p.Heading) + "\n\n")
	b.WriteString(m.vp.View() + "\n")
	status := fmt.Sprintf("%s of %d  %3.f%%", p.Footer(), len(m.plots)+report.FirstRecordPage-1, m.vp.ScrollPercent()*100)
	b.WriteString("  " + subtle.Render(status) + "\n")
	b.WriteString("  " + hints("h/l", "prev/next", "j/k", "scroll", "esc", "list", "q", "quit") + "\n")
	return b.String()
}

// hints renders key/description pairs.
func hints(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, keyStyle.Render(pairs[i])+subtle.Render(" "+pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}

// Run opens the browser on the terminal and blocks until the user quits.
func Run(pages []report.Page) error {
	_, err := tea.NewProgram(NewBrowser(pages), tea.WithAltScreen()).Run()
	return err
}
