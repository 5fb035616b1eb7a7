package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start hangman with a difficulty picker menu",
	Long: `Start hangman in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a difficulty.
After a round ends you return to the menu; the session win/loss
tally is shown there.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Pick difficulty
  Tab          - Game history
  Q            - Quit

Examples:
  hangman menu
  hangman menu --db ./results.db
  hangman menu --words ./my-words.yaml`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	source, cfg := loadGameSetup()

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	width, height := terminalSize()

	runErr := tui.RunSession(store, source, cfg, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
