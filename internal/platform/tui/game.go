// Package tui provides the Bubble Tea integration for the hangman
// platform. It handles the terminal UI loop, input mapping, and the
// menu/game/history flow; game rules stay in internal/game.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/storage"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

// GameModel is the Bubble Tea model for a single hangman round.
// It drives the core session one guess at a time: read a letter, submit
// it, re-render, and stop at the first IsOver. The win/loss tally and
// the result history row are written exactly once per round.
type GameModel struct {
	session    *game.Session
	difficulty game.Difficulty
	source     *words.Source
	cfg        config.Config
	store      *storage.Store
	tally      *game.Tally
	keyMapper  *KeyMapper

	width  int
	height int

	lastLetter  string
	lastResult  game.GuessResult
	hasGuessed  bool
	resultSaved bool
	quitting    bool
	backToMenu  bool
}

// NewGameModel starts a round at the given difficulty: one word drawn
// from the source, one attempt budget from the config.
func NewGameModel(difficulty game.Difficulty, source *words.Source, cfg config.Config, store *storage.Store, tally *game.Tally, width, height int) (GameModel, error) {
	m := GameModel{
		difficulty: difficulty,
		source:     source,
		cfg:        cfg,
		store:      store,
		tally:      tally,
		keyMapper:  NewKeyMapper(),
		width:      width,
		height:     height,
	}

	if err := m.newRound(); err != nil {
		return m, err
	}
	return m, nil
}

// newRound replaces the session with a fresh word and budget.
func (m *GameModel) newRound() error {
	session, err := game.NewSession(m.source.Pick(m.difficulty), m.cfg.AttemptsFor(m.difficulty))
	if err != nil {
		return fmt.Errorf("cannot start round: %w", err)
	}
	m.session = session
	m.hasGuessed = false
	m.resultSaved = false
	return nil
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.backToMenu = true
		return m, nil
	}

	if m.session.IsOver() {
		// enter, space or r starts the next round at the same difficulty
		switch msg.String() {
		case "enter", " ", "r":
			//nolint:errcheck // Round creation only fails on invalid config, validated at startup
			m.newRound()
		}
		return m, nil
	}

	if letter, ok := m.keyMapper.LetterFromKey(msg); ok {
		m.lastLetter = letter
		m.lastResult = m.session.Guess(letter)
		m.hasGuessed = true

		if m.session.IsOver() {
			m.finishRound()
		}
	}

	return m, nil
}

// finishRound updates the tally and persists the result, once.
func (m *GameModel) finishRound() {
	if m.resultSaved {
		return
	}
	m.resultSaved = true

	won := m.session.IsWin()
	m.tally.Record(won)

	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveResult(storage.ResultEntry{
			Difficulty:   string(m.difficulty),
			Word:         m.session.Reveal(),
			Won:          won,
			AttemptsUsed: m.session.MaxAttempts() - m.session.Remaining(),
			MaxAttempts:  m.session.MaxAttempts(),
		})
	}
}

// View renders the round.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	title := fmt.Sprintf("H A N G M A N  —  %s", m.difficulty.Title())
	b.WriteString(centerText(styleTitle.Render(title), m.width))
	b.WriteString("\n")

	for _, line := range strings.Split(gallowsArt(m.session.MaxAttempts(), m.session.Remaining()), "\n") {
		b.WriteString(centerText(styleGallows.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(centerText(styleWord.Render(spacedProgress(m.session.Progress())), m.width))
	b.WriteString("\n\n")

	attempts := fmt.Sprintf("Attempts left: %d/%d", m.session.Remaining(), m.session.MaxAttempts())
	b.WriteString(centerText(styleSubtle.Render(attempts), m.width))
	b.WriteString("\n")

	if guessed := m.session.Guessed(); len(guessed) > 0 {
		line := "Guessed: " + spacedLetters(guessed)
		b.WriteString(centerText(styleSubtle.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.session.IsOver() {
		m.renderGameOver(&b)
	} else {
		m.renderFeedback(&b)
		controls := "Type a letter to guess  |  Esc: Menu  |  Ctrl+C: Quit"
		b.WriteString("\n")
		b.WriteString(centerText(styleSubtle.Render(controls), m.width))
		b.WriteString("\n")
	}

	return b.String()
}

// renderFeedback shows the outcome of the most recent guess.
func (m GameModel) renderFeedback(b *strings.Builder) {
	if !m.hasGuessed {
		b.WriteString(centerText(styleSubtle.Render("Guess a letter!"), m.width))
		b.WriteString("\n")
		return
	}

	var line string
	switch m.lastResult {
	case game.GuessCorrect:
		line = styleCorrect.Render(fmt.Sprintf("%q is in the word!", m.lastLetter))
	case game.GuessIncorrect:
		line = styleWrong.Render(fmt.Sprintf("%q is not in the word.", m.lastLetter))
	case game.GuessRepeated:
		line = styleRepeat.Render(fmt.Sprintf("You already tried %q.", m.lastLetter))
	case game.GuessInvalid:
		line = styleRepeat.Render("Please enter a single letter.")
	}
	b.WriteString(centerText(line, m.width))
	b.WriteString("\n")
}

// renderGameOver shows the win/loss banner and the revealed word.
func (m GameModel) renderGameOver(b *strings.Builder) {
	if m.session.IsWin() {
		b.WriteString(centerText(styleWin.Render("Y O U   W I N !"), m.width))
	} else {
		b.WriteString(centerText(styleLoss.Render("G A M E   O V E R"), m.width))
	}
	b.WriteString("\n")

	reveal := fmt.Sprintf("The word was: %s", m.session.Reveal())
	b.WriteString(centerText(styleWord.Render(reveal), m.width))
	b.WriteString("\n")

	score := fmt.Sprintf("Session: %d won / %d lost", m.tally.Wins, m.tally.Losses)
	b.WriteString(centerText(styleSubtle.Render(score), m.width))
	b.WriteString("\n\n")

	controls := "Enter/R: Play again  |  Esc: Menu  |  Ctrl+C: Quit"
	b.WriteString(centerText(styleSubtle.Render(controls), m.width))
	b.WriteString("\n")
}

// BackToMenu returns true if the user asked to leave the round.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// spacedProgress renders the progress runes space-joined, the classic
// hangman "c _ t" form.
func spacedProgress(progress []rune) string {
	parts := make([]string, len(progress))
	for i, r := range progress {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// spacedLetters renders guessed letters space-joined.
func spacedLetters(letters []rune) string {
	return spacedProgress(letters)
}

// RunGame runs a single-round program (used by the play command).
func RunGame(difficulty game.Difficulty, source *words.Source, cfg config.Config, store *storage.Store, tally *game.Tally, width, height int) error {
	model, err := NewGameModel(difficulty, source, cfg, store, tally, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		gameOnlyModel{model},
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}

// gameOnlyModel wraps GameModel so that "back to menu" quits the
// program when there is no surrounding menu flow.
type gameOnlyModel struct {
	game GameModel
}

func (m gameOnlyModel) Init() tea.Cmd {
	return m.game.Init()
}

func (m gameOnlyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.game.Update(msg)
	if gm, ok := updated.(GameModel); ok {
		m.game = gm
	}
	if m.game.BackToMenu() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m gameOnlyModel) View() string {
	return m.game.View()
}
