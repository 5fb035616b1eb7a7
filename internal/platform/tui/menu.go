package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items       []game.Difficulty
	cursor      int
	width       int
	height      int
	store       *storage.Store
	tally       *game.Tally
	allTime     game.Tally
	hasAllTime  bool
	keyMapper   *KeyMapper
	quitting    bool
	selected    *game.Difficulty // Set when user picks a difficulty
	openHistory bool             // True if user pressed Tab for history
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, tally *game.Tally, width, height int) MenuModel {
	m := MenuModel{
		items:     game.Difficulties(),
		cursor:    0,
		width:     width,
		height:    height,
		store:     store,
		tally:     tally,
		keyMapper: NewKeyMapper(),
	}

	if store != nil {
		if allTime, err := store.Tally(""); err == nil && allTime.Total() > 0 {
			m.allTime = allTime
			m.hasAllTime = true
		}
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit // Exit menu to start game

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit // Exit menu to show history
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(styleTitle.Render("H A N G M A N"), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(styleSubtle.Render("Select a difficulty"), m.width))
	b.WriteString("\n\n")

	for i, d := range m.items {
		cursor := "  "
		label := d.Title()
		if d == game.DifficultyImpossible {
			label += " (1 attempt)"
		}
		line := cursor + label
		if i == m.cursor {
			line = styleSelected.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.tally.Total() > 0 {
		score := fmt.Sprintf("Session: %d won / %d lost", m.tally.Wins, m.tally.Losses)
		b.WriteString(centerText(styleSubtle.Render(score), m.width))
		b.WriteString("\n")
	}
	if m.hasAllTime {
		score := fmt.Sprintf("All time: %d won / %d lost", m.allTime.Wins, m.allTime.Losses)
		b.WriteString(centerText(styleSubtle.Render(score), m.width))
		b.WriteString("\n")
	}
	if m.tally.Total() > 0 || m.hasAllTime {
		b.WriteString("\n")
	}

	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(styleSubtle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the picked difficulty, or nil if none selected.
func (m MenuModel) Selected() *game.Difficulty {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the history screen.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// centerText centers text within the given width. Styled text is
// measured with lipgloss so ANSI sequences don't skew the padding.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
