// Package game contains the hangman session state machine.
// It has no external dependencies (especially no Bubble Tea) so the
// rules stay pure and testable; input mapping and rendering live in
// the platform layer.
package game

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Placeholder marks an unrevealed letter position in Progress output.
const Placeholder = '_'

// GuessResult is the outcome of submitting a single guess.
type GuessResult int

const (
	// GuessCorrect means the letter occurs in the secret word.
	GuessCorrect GuessResult = iota
	// GuessIncorrect means the letter does not occur; one attempt is spent.
	GuessIncorrect
	// GuessRepeated means the letter was already guessed; no state change.
	GuessRepeated
	// GuessInvalid means the input was not a single letter; no state change.
	GuessInvalid
)

// String returns a human-readable name for the result.
func (r GuessResult) String() string {
	switch r {
	case GuessCorrect:
		return "Correct"
	case GuessIncorrect:
		return "Incorrect"
	case GuessRepeated:
		return "AlreadyGuessed"
	case GuessInvalid:
		return "InvalidInput"
	default:
		return "Unknown"
	}
}

// Session is a single hangman round: one secret word, one attempt budget.
// There is no stored "state" field; whether the round is in progress, won
// or lost is derived from remaining attempts and word coverage.
//
// Session performs no terminal-state guard: calling Guess after IsOver
// keeps mutating guessed letters and may spend further attempts (floored
// at zero). Drivers are expected to stop guessing once IsOver is true.
type Session struct {
	word        string
	guessed     map[rune]bool
	remaining   int
	maxAttempts int
}

// NewSession creates a session for the given secret word and attempt
// budget. The word is lowercased once here; that normalized form is the
// only form ever compared against. Construction fails fast on an empty
// or non-letter word and on a non-positive budget.
func NewSession(word string, maxAttempts int) (*Session, error) {
	if word == "" {
		return nil, fmt.Errorf("game: empty secret word")
	}
	if maxAttempts < 1 {
		return nil, fmt.Errorf("game: max attempts must be at least 1, got %d", maxAttempts)
	}

	normalized := strings.ToLower(word)
	for _, r := range normalized {
		if !unicode.IsLetter(r) {
			return nil, fmt.Errorf("game: secret word %q contains non-letter %q", word, r)
		}
	}

	return &Session{
		word:        normalized,
		guessed:     make(map[rune]bool),
		remaining:   maxAttempts,
		maxAttempts: maxAttempts,
	}, nil
}

// Guess submits one letter and resolves it against the secret word.
// Input is lowercased first; anything that is not exactly one letter is
// GuessInvalid and changes nothing. A repeated letter is GuessRepeated
// and changes nothing, regardless of whether it was correct the first
// time. Only a confirmed-incorrect new letter spends an attempt.
func (s *Session) Guess(input string) GuessResult {
	runes := []rune(strings.ToLower(input))
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		return GuessInvalid
	}
	letter := runes[0]

	if s.guessed[letter] {
		return GuessRepeated
	}
	s.guessed[letter] = true

	if !strings.ContainsRune(s.word, letter) {
		if s.remaining > 0 {
			s.remaining--
		}
		return GuessIncorrect
	}
	return GuessCorrect
}

// Progress returns the word position by position, with guessed letters
// revealed and Placeholder standing in for the rest. Joining with
// spaces or styling is the caller's concern.
func (s *Session) Progress() []rune {
	out := make([]rune, 0, len(s.word))
	for _, r := range s.word {
		if s.guessed[r] {
			out = append(out, r)
		} else {
			out = append(out, Placeholder)
		}
	}
	return out
}

// IsWin reports whether every distinct letter of the word has been guessed.
func (s *Session) IsWin() bool {
	for _, r := range s.word {
		if !s.guessed[r] {
			return false
		}
	}
	return true
}

// IsOver reports whether the round has ended, by win or by running out
// of attempts. This is the sole termination predicate a driver loop
// needs to check after each guess.
func (s *Session) IsOver() bool {
	return s.IsWin() || s.remaining <= 0
}

// Reveal returns the secret word. Meaningful for display once IsOver is
// true, but callable at any time.
func (s *Session) Reveal() string {
	return s.word
}

// Remaining returns how many incorrect guesses are still allowed.
func (s *Session) Remaining() int {
	return s.remaining
}

// MaxAttempts returns the attempt budget fixed at construction.
func (s *Session) MaxAttempts() int {
	return s.maxAttempts
}

// Guessed returns the letters guessed so far, sorted for stable display.
func (s *Session) Guessed() []rune {
	out := make([]rune, 0, len(s.guessed))
	for r := range s.guessed {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
