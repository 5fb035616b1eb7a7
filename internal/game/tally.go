package game

// Tally counts wins and losses across sessions for the lifetime of the
// running process. The driver records exactly one outcome per finished
// session; counters never decrease.
type Tally struct {
	Wins   int
	Losses int
}

// Record adds one finished session to the tally.
func (t *Tally) Record(won bool) {
	if won {
		t.Wins++
	} else {
		t.Losses++
	}
}

// Total returns the number of recorded sessions.
func (t *Tally) Total() int {
	return t.Wins + t.Losses
}
