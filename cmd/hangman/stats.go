package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

var (
	flagStatsLimit int
	flagStatsClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [difficulty]",
	Short: "Show win/loss statistics",
	Long: `Display stored game statistics, optionally for one difficulty.

Examples:
  hangman stats
  hangman stats hard
  hangman stats --limit 5
  hangman stats easy --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of recent games to show")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete stored results (for the given difficulty, or all)")
}

func runStats(cmd *cobra.Command, args []string) {
	difficulty := ""
	if len(args) == 1 {
		d, err := game.ParseDifficulty(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = string(d)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsClear {
		if err := store.ClearResults(difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		if difficulty == "" {
			fmt.Println("All results cleared.")
		} else {
			fmt.Printf("Results for %s cleared.\n", difficulty)
		}
		return
	}

	tally, err := store.Tally(difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving tally: %v\n", err)
		os.Exit(1)
	}

	if tally.Total() == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hangman menu' to record the first one!")
		return
	}

	scope := "All difficulties"
	if difficulty != "" {
		scope = game.Difficulty(difficulty).Title()
	}
	fmt.Printf("Statistics - %s\n", scope)
	fmt.Println()
	fmt.Printf("  Games: %d  Won: %d  Lost: %d\n", tally.Total(), tally.Wins, tally.Losses)
	fmt.Println()

	// Per-difficulty breakdown (only when not filtered)
	if difficulty == "" {
		stats, err := store.StatsByDifficulty()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("  %-12s  %-6s  %-5s  %-5s  %s\n", "Difficulty", "Games", "Won", "Lost", "Win rate")
		fmt.Printf("  %-12s  %-6s  %-5s  %-5s  %s\n", "----------", "-----", "---", "----", "--------")
		for _, d := range game.Difficulties() {
			st, ok := stats[string(d)]
			if !ok {
				continue
			}
			fmt.Printf("  %-12s  %-6d  %-5d  %-5d  %.0f%%\n",
				d.Title(), st.Games, st.Wins, st.Losses, st.WinRate()*100)
		}
		fmt.Println()
	}

	// Recent games
	results, err := store.RecentResults(difficulty, flagStatsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent games:")
	fmt.Printf("  %-16s  %-12s  %-14s  %-6s  %s\n", "Date", "Difficulty", "Word", "Result", "Attempts")
	fmt.Printf("  %-16s  %-12s  %-14s  %-6s  %s\n", "----", "----------", "----", "------", "--------")
	for _, r := range results {
		outcome := "Loss"
		if r.Won {
			outcome = "Win"
		}
		fmt.Printf("  %-16s  %-12s  %-14s  %-6s  %d/%d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Difficulty, r.Word, outcome, r.AttemptsUsed, r.MaxAttempts)
	}
}
