package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show the word pools",
	Long: `Shows the number of words available per difficulty.

Impossible draws from the hard pool, so the two report the same size.`,
	Run: runWords,
}

func runWords(cmd *cobra.Command, args []string) {
	list, err := words.Load(flagWordsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading word list: %v\n", err)
		os.Exit(1)
	}

	source := words.NewSource(list, 1)

	fmt.Println("Word pools:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-12s  %s\n", "Difficulty", "Words")
	fmt.Printf("  %-12s  %s\n", "----------", "-----")

	for _, d := range game.Difficulties() {
		note := ""
		if d == game.DifficultyImpossible {
			note = "  (hard pool)"
		}
		fmt.Printf("  %-12s  %d%s\n", d.Title(), source.PoolSize(d), note)
	}

	fmt.Println()
	fmt.Println("Run 'hangman play <difficulty>' to play.")
}
