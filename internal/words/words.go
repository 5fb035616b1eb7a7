// Package words provides the word pools and the random word source for
// hangman sessions.
package words

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-hangman/internal/game"
)

// List holds one word pool per difficulty tier. Impossible has no pool
// of its own: it draws from the hard pool with a smaller attempt budget.
type List struct {
	Easy   []string `yaml:"easy"`
	Medium []string `yaml:"medium"`
	Hard   []string `yaml:"hard"`
}

// Normalize lowercases every word and validates the list: each pool
// must be non-empty and contain letter-only words.
func (l *List) Normalize() error {
	pools := []struct {
		name  string
		words []string
	}{
		{"easy", l.Easy},
		{"medium", l.Medium},
		{"hard", l.Hard},
	}

	for _, pool := range pools {
		if len(pool.words) == 0 {
			return fmt.Errorf("words: %s pool is empty", pool.name)
		}
		for i, w := range pool.words {
			lower := strings.ToLower(strings.TrimSpace(w))
			if lower == "" {
				return fmt.Errorf("words: %s pool contains an empty word", pool.name)
			}
			for _, r := range lower {
				if !unicode.IsLetter(r) {
					return fmt.Errorf("words: %s pool word %q contains non-letter %q", pool.name, w, r)
				}
			}
			pool.words[i] = lower
		}
	}
	return nil
}

// Source draws secret words from a List. The RNG is injected explicitly
// so draws are reproducible under a fixed seed; there is no package
// level randomness.
type Source struct {
	list List
	rng  *rand.Rand
}

// NewSource creates a word source over the given list. A seed of 0 is
// replaced by the caller before construction; Source uses it as-is.
func NewSource(list List, seed int64) *Source {
	return &Source{
		list: list,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Pick returns one word drawn uniformly from the pool for the given
// difficulty. Impossible reuses the hard pool; anything outside the
// known set falls back to easy.
func (s *Source) Pick(d game.Difficulty) string {
	pool := s.pool(d)
	return pool[s.rng.Intn(len(pool))]
}

// PoolSize returns the number of words available for the difficulty.
func (s *Source) PoolSize(d game.Difficulty) int {
	return len(s.pool(d))
}

func (s *Source) pool(d game.Difficulty) []string {
	switch d {
	case game.DifficultyMedium:
		return s.list.Medium
	case game.DifficultyHard, game.DifficultyImpossible:
		return s.list.Hard
	case game.DifficultyEasy:
		return s.list.Easy
	default:
		return s.list.Easy
	}
}
