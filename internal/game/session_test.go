package game

import "testing"

func TestNewSessionValidation(t *testing.T) {
	tests := []struct {
		name        string
		word        string
		maxAttempts int
		wantErr     bool
	}{
		{"valid word", "cat", 6, false},
		{"single attempt", "dog", 1, false},
		{"uppercase word accepted", "CAT", 6, false},
		{"empty word", "", 6, true},
		{"zero attempts", "cat", 0, true},
		{"negative attempts", "cat", -3, true},
		{"word with digit", "c4t", 6, true},
		{"word with space", "big cat", 6, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSession(tc.word, tc.maxAttempts)
			if (err != nil) != tc.wantErr {
				t.Errorf("NewSession(%q, %d) error = %v, wantErr %v", tc.word, tc.maxAttempts, err, tc.wantErr)
			}
		})
	}
}

func TestFreshSessionState(t *testing.T) {
	s, err := NewSession("castle", 6)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	if s.Remaining() != 6 {
		t.Errorf("Remaining() = %d, expected 6", s.Remaining())
	}
	if s.MaxAttempts() != 6 {
		t.Errorf("MaxAttempts() = %d, expected 6", s.MaxAttempts())
	}
	if s.IsOver() {
		t.Error("fresh session should not be over")
	}
	if s.IsWin() {
		t.Error("fresh session should not be a win")
	}
	for i, r := range s.Progress() {
		if r != Placeholder {
			t.Errorf("Progress()[%d] = %q, expected placeholder", i, r)
		}
	}
	if len(s.Guessed()) != 0 {
		t.Errorf("Guessed() = %v, expected empty", s.Guessed())
	}
}

func TestGuessAllLettersWins(t *testing.T) {
	// Win must not depend on guess order.
	orders := [][]string{
		{"c", "a", "t"},
		{"t", "c", "a"},
		{"a", "t", "c"},
	}

	for _, order := range orders {
		s, _ := NewSession("cat", 6)
		for _, letter := range order {
			if got := s.Guess(letter); got != GuessCorrect {
				t.Errorf("Guess(%q) = %v, expected Correct", letter, got)
			}
		}
		if !s.IsWin() {
			t.Errorf("order %v: expected win", order)
		}
		if !s.IsOver() {
			t.Errorf("order %v: expected session over", order)
		}
		if s.Remaining() != 6 {
			t.Errorf("order %v: Remaining() = %d, correct guesses must not spend attempts", order, s.Remaining())
		}
	}
}

func TestAttemptDepletionLoses(t *testing.T) {
	s, _ := NewSession("dog", 3)

	for _, letter := range []string{"x", "y", "z"} {
		if got := s.Guess(letter); got != GuessIncorrect {
			t.Errorf("Guess(%q) = %v, expected Incorrect", letter, got)
		}
	}

	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d, expected 0", s.Remaining())
	}
	if !s.IsOver() {
		t.Error("expected session over after depleting attempts")
	}
	if s.IsWin() {
		t.Error("depleted session must not be a win")
	}
	if s.Reveal() != "dog" {
		t.Errorf("Reveal() = %q, expected %q", s.Reveal(), "dog")
	}
}

func TestRepeatedGuessIsIdempotent(t *testing.T) {
	tests := []struct {
		name   string
		letter string
		first  GuessResult
	}{
		{"repeat correct", "s", GuessCorrect},
		{"repeat incorrect", "z", GuessIncorrect},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := NewSession("sky", 6)

			if got := s.Guess(tc.letter); got != tc.first {
				t.Fatalf("first Guess(%q) = %v, expected %v", tc.letter, got, tc.first)
			}
			before := s.Remaining()

			if got := s.Guess(tc.letter); got != GuessRepeated {
				t.Errorf("second Guess(%q) = %v, expected AlreadyGuessed", tc.letter, got)
			}
			if s.Remaining() != before {
				t.Errorf("Remaining() changed on repeat: %d -> %d", before, s.Remaining())
			}
		})
	}
}

func TestInvalidInputDoesNotMutate(t *testing.T) {
	inputs := []string{"3", "!", " ", "", "ab", "c3", "?"}

	s, _ := NewSession("cat", 6)
	s.Guess("c")

	for _, in := range inputs {
		if got := s.Guess(in); got != GuessInvalid {
			t.Errorf("Guess(%q) = %v, expected InvalidInput", in, got)
		}
		if s.Remaining() != 6 {
			t.Errorf("Guess(%q) changed Remaining() to %d", in, s.Remaining())
		}
		if len(s.Guessed()) != 1 {
			t.Errorf("Guess(%q) changed guessed set: %v", in, s.Guessed())
		}
	}
}

func TestCaseInsensitivity(t *testing.T) {
	s, _ := NewSession("Cat", 6)

	if got := s.Guess("C"); got != GuessCorrect {
		t.Errorf("Guess(\"C\") = %v, expected Correct", got)
	}
	if got := s.Guess("c"); got != GuessRepeated {
		t.Errorf("Guess(\"c\") after \"C\" = %v, expected AlreadyGuessed", got)
	}
	if s.Remaining() != 6 {
		t.Errorf("Remaining() = %d, expected 6", s.Remaining())
	}
}

func TestProgressRevealsInOrder(t *testing.T) {
	s, _ := NewSession("cat", 6)

	steps := []struct {
		letter string
		want   string
	}{
		{"c", "c__"},
		{"a", "ca_"},
		{"t", "cat"},
	}

	for _, step := range steps {
		if got := s.Guess(step.letter); got != GuessCorrect {
			t.Fatalf("Guess(%q) = %v, expected Correct", step.letter, got)
		}
		if got := string(s.Progress()); got != step.want {
			t.Errorf("Progress() after %q = %q, expected %q", step.letter, got, step.want)
		}
	}

	if !s.IsWin() || !s.IsOver() {
		t.Error("expected win and over after revealing the full word")
	}
}

func TestLastAttemptLoss(t *testing.T) {
	s, _ := NewSession("dog", 1)

	if got := s.Guess("x"); got != GuessIncorrect {
		t.Fatalf("Guess(\"x\") = %v, expected Incorrect", got)
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d, expected 0", s.Remaining())
	}
	if !s.IsOver() || s.IsWin() {
		t.Error("expected loss after spending the only attempt")
	}
}

func TestWinningGuessOnLastAttempt(t *testing.T) {
	// A correct final guess never touches the attempt counter, so a
	// session with one attempt left still reports a win.
	s, _ := NewSession("ox", 2)
	s.Guess("z") // 1 attempt left
	s.Guess("o")

	if got := s.Guess("x"); got != GuessCorrect {
		t.Fatalf("Guess(\"x\") = %v, expected Correct", got)
	}
	if !s.IsWin() {
		t.Error("expected win on final correct guess")
	}
	if s.Remaining() != 1 {
		t.Errorf("Remaining() = %d, expected 1", s.Remaining())
	}
}

func TestRepeatedLetterInWord(t *testing.T) {
	// One guess reveals every occurrence of the letter.
	s, _ := NewSession("tattoo", 6)

	s.Guess("t")
	if got := string(s.Progress()); got != "t_tt__" {
		t.Errorf("Progress() = %q, expected %q", got, "t_tt__")
	}

	s.Guess("a")
	s.Guess("o")
	if !s.IsWin() {
		t.Error("expected win after guessing all distinct letters")
	}
}

func TestGuessedSorted(t *testing.T) {
	s, _ := NewSession("cab", 6)
	for _, l := range []string{"c", "a", "x", "b"} {
		s.Guess(l)
	}

	got := string(s.Guessed())
	if got != "abcx" {
		t.Errorf("Guessed() = %q, expected %q", got, "abcx")
	}
}

func TestTally(t *testing.T) {
	var tally Tally

	tally.Record(true)
	tally.Record(false)
	tally.Record(true)

	if tally.Wins != 2 {
		t.Errorf("Wins = %d, expected 2", tally.Wins)
	}
	if tally.Losses != 1 {
		t.Errorf("Losses = %d, expected 1", tally.Losses)
	}
	if tally.Total() != 3 {
		t.Errorf("Total() = %d, expected 3", tally.Total())
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"medium", DifficultyMedium, false},
		{"hard", DifficultyHard, false},
		{"impossible", DifficultyImpossible, false},
		{"nightmare", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
