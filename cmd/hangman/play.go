package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/storage"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

var playCmd = &cobra.Command{
	Use:   "play <difficulty>",
	Short: "Play a round at the given difficulty",
	Long: `Start a hangman round immediately at the chosen difficulty.

Controls:
  a-z        - Guess a letter
  Enter/R    - Play again (after game over)
  Esc        - Leave the round
  Ctrl+C     - Quit

Examples:
  hangman play easy
  hangman play hard --seed 42
  hangman play impossible --words ./my-words.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	difficulty, err := game.ParseDifficulty(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source, cfg := loadGameSetup()

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	width, height := terminalSize()

	var tally game.Tally
	runErr := tui.RunGame(difficulty, source, cfg, store, &tally, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if tally.Total() > 0 {
		fmt.Printf("Session result: %d won, %d lost\n", tally.Wins, tally.Losses)
	}
}

// loadGameSetup loads the word list and game config, exiting on
// configuration errors. These are fail-fast: a broken word list or a
// non-positive attempt budget should never reach a session.
func loadGameSetup() (*words.Source, config.Config) {
	list, err := words.Load(flagWordsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word list: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return words.NewSource(list, seed), cfg
}

// terminalSize returns the terminal dimensions, with defaults when the
// size cannot be determined.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
