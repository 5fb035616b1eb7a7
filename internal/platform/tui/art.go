package tui

// gallowsStages holds the hangman drawing from empty gallows to the
// complete figure. Index 0 is no mistakes, the last index is the lost
// game.
var gallowsStages = []string{
	`
  +---+
  |   |
      |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
}

// gallowsArt returns the drawing for the given attempt state. Budgets
// other than six are scaled onto the stages so one-attempt impossible
// games jump straight from empty gallows to the full figure.
func gallowsArt(maxAttempts, remaining int) string {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	wrong := maxAttempts - remaining
	if wrong < 0 {
		wrong = 0
	}
	if wrong > maxAttempts {
		wrong = maxAttempts
	}

	last := len(gallowsStages) - 1
	stage := wrong * last / maxAttempts
	return gallowsStages[stage]
}
