package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/daedalus-crawl/daedalus/internal/dungeon"
	"github.com/daedalus-crawl/daedalus/internal/storage"
)

// Runboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show method list sidebar
	sidebarWidth       = 20  // Width of method list sidebar
	maxRuns            = 100 // Max runs to load
)

// RunboardKeyMap defines the key bindings for the run history screen.
type RunboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Back       key.Binding
	Quit       key.Binding
	NextMethod key.Binding
	PrevMethod key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMethod, k.PrevMethod, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMethod, k.PrevMethod},
		{k.Back, k.Quit},
	}
}

// DefaultRunboardKeyMap returns default key bindings.
func DefaultRunboardKeyMap() RunboardKeyMap {
	return RunboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev method"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next method"),
		),
		NextMethod: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next method"),
		),
		PrevMethod: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev method"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunboardModel is the Bubble Tea model for the run history screen.
type RunboardModel struct {
	methods      []dungeon.GeneratorInfo // Registered generation methods
	methodCursor int                     // Currently selected method index
	store        *storage.Store
	runs         []storage.RunRecord
	table        table.Model
	help         help.Model
	keys         RunboardKeyMap
	width        int
	height       int
	quitting     bool
	goingBack    bool // True if user pressed back (not quit)
	showSidebar  bool // Whether to show method list sidebar
}

// NewRunboardModel creates a new run history model.
func NewRunboardModel(store *storage.Store, width, height int) RunboardModel {
	keys := DefaultRunboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := RunboardModel{
		methods:     dungeon.Generators(),
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()

	if len(m.methods) > 0 {
		m.loadRuns(m.methods[0].Method)
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *RunboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Map", Width: 6},
		{Title: "Steps", Width: 7},
		{Title: "Best", Width: 6},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
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

// loadRuns loads runs for the given generation method.
func (m *RunboardModel) loadRuns(method dungeon.Method) {
	if m.store == nil {
		m.runs = nil
		m.updateTableRows()
		return
	}

	runs, err := m.store.RunsByMethod(method.String(), maxRuns)
	if err != nil {
		m.runs = nil
	} else {
		m.runs = runs
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *RunboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		steps := fmt.Sprintf("%d", r.Steps)
		if !r.Completed {
			steps += "*" // Abandoned run
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.DungeonID),
			steps,
			fmt.Sprintf("%d", r.PathLen),
			fmt.Sprintf("%ds", r.Duration),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the run history model.
func (m RunboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run history screen.
func (m RunboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMethod), key.Matches(msg, m.keys.Right):
			if len(m.methods) > 0 {
				m.methodCursor = (m.methodCursor + 1) % len(m.methods)
				m.loadRuns(m.methods[m.methodCursor].Method)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevMethod), key.Matches(msg, m.keys.Left):
			if len(m.methods) > 0 {
				m.methodCursor--
				if m.methodCursor < 0 {
					m.methodCursor = len(m.methods) - 1
				}
				m.loadRuns(m.methods[m.methodCursor].Method)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run history screen.
func (m RunboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RUN HISTORY"
	if len(m.methods) > 0 {
		title = fmt.Sprintf("RUN HISTORY - %s", m.methods[m.methodCursor].Title)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the run history with a method sidebar.
func (m RunboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Methods\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.methods {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.methodCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := g.Title
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	sidebarRendered := sidebarStyle.Render(sidebar.String())

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := tableStyle.Render(m.renderTableContent())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the run history with method tabs above the table.
func (m RunboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.methods))
	for i, g := range m.methods {
		shortName := g.Method.String()
		if i == m.methodCursor {
			tabs[i] = activeTabStyle.Render(shortName)
		} else {
			tabs[i] = tabStyle.Render(" " + shortName + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if len(tabLine) > m.width-4 {
		// Just show current method with arrows
		current := m.methods[m.methodCursor].Title
		tabLine = fmt.Sprintf("< %s >", current)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m RunboardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nEscape a dungeon to get on the board!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RunboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RunboardModel) IsQuitting() bool {
	return m.quitting
}

// RunRunboard runs the run history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunRunboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewRunboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RunboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
