package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// History layout constants
const (
	maxHistoryRows = 100 // Max results to load per filter
	tableMinHeight = 5
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFilter, k.PrevFilter},
		{k.Back, k.Quit},
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
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next difficulty"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev difficulty"),
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

// HistoryModel is the Bubble Tea model for the game history screen.
type HistoryModel struct {
	filters   []string // "" = all difficulties, then each difficulty
	filterIdx int
	store     *storage.Store
	results   []storage.ResultEntry
	tally     game.Tally
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	loadErr   error
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	filters := []string{""}
	for _, d := range game.Difficulties() {
		filters = append(filters, string(d))
	}

	m := HistoryModel{
		filters: filters,
		store:   store,
		help:    help.New(),
		keys:    DefaultHistoryKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.buildTable()
	m.loadResults()
	return m
}

// buildTable creates the results table sized for the current screen.
func (m HistoryModel) buildTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Difficulty", Width: 10},
		{Title: "Word", Width: 14},
		{Title: "Result", Width: 6},
		{Title: "Attempts", Width: 8},
	}

	height := m.height - 9
	if height < tableMinHeight {
		height = tableMinHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("12")).Bold(true)
	t.SetStyles(s)

	return t
}

// loadResults fetches results for the current filter from the store.
func (m *HistoryModel) loadResults() {
	m.results = nil
	m.tally = game.Tally{}
	m.loadErr = nil

	if m.store == nil {
		return
	}

	filter := m.filters[m.filterIdx]

	results, err := m.store.RecentResults(filter, maxHistoryRows)
	if err != nil {
		m.loadErr = err
		return
	}
	m.results = results

	tally, err := m.store.Tally(filter)
	if err != nil {
		m.loadErr = err
		return
	}
	m.tally = tally

	rows := make([]table.Row, 0, len(results))
	for _, r := range results {
		outcome := "Loss"
		if r.Won {
			outcome = "Win"
		}
		rows = append(rows, table.Row{
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Difficulty,
			r.Word,
			outcome,
			fmt.Sprintf("%d/%d", r.AttemptsUsed, r.MaxAttempts),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// Init initializes the model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.filterIdx = (m.filterIdx + 1) % len(m.filters)
			m.loadResults()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filterIdx = (m.filterIdx - 1 + len(m.filters)) % len(m.filters)
			m.loadResults()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.buildTable()
		m.loadResults()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	filterName := "All difficulties"
	if f := m.filters[m.filterIdx]; f != "" {
		filterName = game.Difficulty(f).Title()
	}

	b.WriteString("\n")
	b.WriteString(centerText(styleTitle.Render("Game History — "+filterName), m.width))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(centerText(styleWrong.Render("Could not load history: "+m.loadErr.Error()), m.width))
		b.WriteString("\n")
	case m.store == nil:
		b.WriteString(centerText(styleSubtle.Render("History is unavailable without a database."), m.width))
		b.WriteString("\n")
	case len(m.results) == 0:
		b.WriteString(centerText(styleSubtle.Render("No games recorded yet. Go play one!"), m.width))
		b.WriteString("\n")
	default:
		totals := fmt.Sprintf("%d games  |  %d won  |  %d lost", m.tally.Total(), m.tally.Wins, m.tally.Losses)
		b.WriteString(centerText(styleSubtle.Render(totals), m.width))
		b.WriteString("\n\n")
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// GoingBack returns true if user wants to return to the menu.
func (m HistoryModel) GoingBack() bool {
	return m.goingBack
}
