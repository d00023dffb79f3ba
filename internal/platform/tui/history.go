package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/magnet-maze/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80
	sidebarWidth       = 22
	maxHistoryRuns     = 100
)

// HistoryView selects which runs the history table lists.
type HistoryView int

const (
	ViewRecent HistoryView = iota
	ViewBest
)

// String returns the tab title.
func (v HistoryView) String() string {
	if v == ViewBest {
		return "Best"
	}
	return "Recent"
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextProfile key.Binding
	PrevProfile key.Binding
	ToggleView  key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextProfile, k.ToggleView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextProfile, k.PrevProfile, k.ToggleView},
		{k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextProfile: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next profile"),
		),
		PrevProfile: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev profile"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "recent/best"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing run history.
type HistoryModel struct {
	store    *storage.Store
	profiles []string
	cursor   int
	view     HistoryView
	runs     []storage.Run
	stats    *storage.Stats
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history browser starting at profile.
func NewHistoryModel(store *storage.Store, profile string, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	if store != nil {
		if profiles, err := store.Profiles(); err == nil {
			m.profiles = profiles
		}
	}
	if profile == "" {
		profile = storage.DefaultProfile
	}
	if i := slices.Index(m.profiles, profile); i >= 0 {
		m.cursor = i
	} else {
		m.profiles = append([]string{profile}, m.profiles...)
	}

	m.table = m.createTable()
	m.load()
	return m
}

// Profile returns the selected profile.
func (m HistoryModel) Profile() string {
	return m.profiles[m.cursor]
}

// Runs returns the rows currently listed.
func (m HistoryModel) Runs() []storage.Run {
	return m.runs
}

// Tab returns the active tab.
func (m HistoryModel) Tab() HistoryView {
	return m.view
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Result", Width: 10},
		{Title: "Time", Width: 7},
		{Title: "Magnets", Width: 8},
		{Title: "Seed", Width: 8},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the runs and stats of the selected profile.
func (m *HistoryModel) load() {
	m.runs = nil
	m.stats = nil
	if m.store != nil {
		var err error
		if m.view == ViewBest {
			m.runs, err = m.store.BestRuns(m.Profile(), maxHistoryRuns)
		} else {
			m.runs, err = m.store.RecentRuns(m.Profile(), maxHistoryRuns)
		}
		if err != nil {
			m.runs = nil
		}
		if st, err := m.store.Stats(m.Profile()); err == nil {
			m.stats = st
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		result := "lost"
		if r.Outcome == "win" {
			result = "won"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Level),
			result,
			fmt.Sprintf("%.1fs", r.TimeLeft),
			fmt.Sprintf("%d", r.MagnetsUsed),
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextProfile):
			m.cursor = (m.cursor + 1) % len(m.profiles)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevProfile):
			m.cursor = (m.cursor + len(m.profiles) - 1) % len(m.profiles)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.ToggleView):
			m.view = 1 - m.view
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := fmt.Sprintf("RUNS - %s (%s)", m.Profile(), m.view)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableView := m.table.View()
	if len(m.runs) == 0 {
		tableView = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("No runs yet")
	}

	if m.width >= minWidthForSidebar {
		side := panel.Width(sidebarWidth).Render(m.renderSidebar())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", panel.Render(tableView)))
	} else {
		b.WriteString(panel.Render(tableView))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar lists profiles and the selected profile's stats.
func (m HistoryModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString("Profiles\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, p := range m.profiles {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := p
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sb.WriteString(style.Render(cursor + name))
		sb.WriteString("\n")
	}

	if m.stats != nil {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "Runs:  %d\n", m.stats.Runs)
		fmt.Fprintf(&sb, "Wins:  %d\n", m.stats.Wins)
		fmt.Fprintf(&sb, "Best:  level %d\n", m.stats.BestLevel)
		fmt.Fprintf(&sb, "Avg:   %.1fs left", m.stats.AvgTimeLeft)
	}
	return sb.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunHistory starts the history browser.
func RunHistory(store *storage.Store, profile string, width, height int) error {
	p := tea.NewProgram(NewHistoryModel(store, profile, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
