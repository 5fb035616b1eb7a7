// hangman is a TUI word-guessing game for the terminal.
//
// Usage:
//
//	hangman play <difficulty>  - Play a round at the given difficulty
//	hangman menu               - Interactive difficulty picker
//	hangman words              - Show word pool sizes
//	hangman stats              - Show win/loss statistics
//	hangman serve              - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.hangman/results.db)
//	--seed <value>   - Set RNG seed for reproducible word draws
//	--words <path>   - Set custom word list YAML
//	--config <path>  - Set custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath     string
	flagSeed       int64
	flagWordsPath  string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - Guess the word in your terminal",
	Long: `Hangman is a terminal word-guessing game. Pick a difficulty, then
guess the secret word one letter at a time before the gallows fill up.

Difficulties:
  easy        - Short everyday words, 6 attempts
  medium      - Longer words, 6 attempts
  hard        - Tricky vocabulary, 6 attempts
  impossible  - Hard vocabulary with a single attempt

Examples:
  hangman menu
  hangman play easy
  hangman play impossible
  hangman stats
  hangman serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hangman/results.db", "Path to results database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for word draws (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagWordsPath, "words", "", "Path to custom word list YAML")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
