// Package config provides YAML-based configuration for the hangman
// platform: per-difficulty attempt budgets and display options.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-hangman/internal/game"
)

// Config contains all tunable settings for the game.
type Config struct {
	Attempts AttemptsConfig `yaml:"attempts"`
}

// AttemptsConfig defines the incorrect-guess budget per difficulty.
type AttemptsConfig struct {
	Easy       int `yaml:"easy"`
	Medium     int `yaml:"medium"`
	Hard       int `yaml:"hard"`
	Impossible int `yaml:"impossible"`
}

// AttemptsFor returns the attempt budget for the given difficulty.
// Unknown difficulties get the easy budget, matching the word pool
// fallback.
func (c Config) AttemptsFor(d game.Difficulty) int {
	switch d {
	case game.DifficultyMedium:
		return c.Attempts.Medium
	case game.DifficultyHard:
		return c.Attempts.Hard
	case game.DifficultyImpossible:
		return c.Attempts.Impossible
	case game.DifficultyEasy:
		return c.Attempts.Easy
	default:
		return c.Attempts.Easy
	}
}

// Validate checks that every budget allows at least one incorrect guess.
func (c Config) Validate() error {
	budgets := []struct {
		name   string
		budget int
	}{
		{"easy", c.Attempts.Easy},
		{"medium", c.Attempts.Medium},
		{"hard", c.Attempts.Hard},
		{"impossible", c.Attempts.Impossible},
	}
	for _, b := range budgets {
		if b.budget < 1 {
			return fmt.Errorf("config: attempt budget for %s must be at least 1, got %d", b.name, b.budget)
		}
	}
	return nil
}
