package game

import "fmt"

// Difficulty selects the word pool and the attempt budget for a session.
type Difficulty string

const (
	DifficultyEasy       Difficulty = "easy"
	DifficultyMedium     Difficulty = "medium"
	DifficultyHard       Difficulty = "hard"
	DifficultyImpossible Difficulty = "impossible"
)

// Difficulties lists all difficulties in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{
		DifficultyEasy,
		DifficultyMedium,
		DifficultyHard,
		DifficultyImpossible,
	}
}

// ParseDifficulty converts a CLI argument to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyImpossible:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium, hard or impossible)", s)
}

// Title returns a display name for the difficulty.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyImpossible:
		return "Impossible"
	default:
		return string(d)
	}
}
