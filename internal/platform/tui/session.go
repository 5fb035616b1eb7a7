package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/storage"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

// screen identifies which sub-model is active in a SessionModel.
type screen int

const (
	screenMenu screen = iota
	screenGame
	screenHistory
)

// SessionModel manages the full flow: menu -> game -> menu, with the
// history screen reachable from the menu. It is the top-level model for
// both the local menu command and SSH sessions. The tally lives here
// for the lifetime of the model, outliving individual rounds.
type SessionModel struct {
	store  *storage.Store
	source *words.Source
	cfg    config.Config
	tally  *game.Tally

	width  int
	height int

	active   screen
	menu     MenuModel
	gameM    *GameModel
	history  *HistoryModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, source *words.Source, cfg config.Config, width, height int) SessionModel {
	tally := &game.Tally{}
	return SessionModel{
		store:  store,
		source: source,
		cfg:    cfg,
		tally:  tally,
		width:  width,
		height: height,
		menu:   NewMenuModel(store, tally, width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.active {
	case screenGame:
		return m.updateGame(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when the menu is active.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		history := NewHistoryModel(m.store, m.width, m.height)
		m.history = &history
		m.active = screenHistory
		return m, m.history.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		gameModel, err := NewGameModel(*selected, m.source, m.cfg, m.store, m.tally, m.width, m.height)
		if err != nil {
			// Config and word list are validated at startup; treat a
			// failed round start as fatal rather than looping silently.
			m.quitting = true
			return m, tea.Quit
		}
		m.gameM = &gameModel
		m.active = screenGame
		return m, m.gameM.Init()
	}

	return m, cmd
}

// updateGame handles updates when a round is active.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameM.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameM = &gameModel
	}

	if m.gameM.BackToMenu() {
		m.active = screenMenu
		m.gameM = nil
		m.menu = NewMenuModel(m.store, m.tally, m.width, m.height)
		return m, m.menu.Init()
	}

	if m.gameM.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateHistory handles updates when the history screen is active.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = &historyModel
	}

	if m.history.GoingBack() {
		m.active = screenMenu
		m.history = nil
		m.menu = NewMenuModel(m.store, m.tally, m.width, m.height)
		return m, m.menu.Init()
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.active {
	case screenGame:
		return m.gameM.View()
	case screenHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the full menu/game flow in the local terminal.
func RunSession(store *storage.Store, source *words.Source, cfg config.Config, width, height int) error {
	model := NewSessionModel(store, source, cfg, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
