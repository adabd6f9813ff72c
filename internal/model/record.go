package model

import "time"

// RoundRecord is the immutable summary of a completed round
type RoundRecord struct {
	Word         string
	Difficulty   Difficulty
	Solved       bool
	WrongGuesses int
	TotalGuesses int // Distinct letters attempted, correct and incorrect
	HintUsed     bool
	CompletedAt  time.Time
}

// Outcome returns "solved" or "lost"
func (r RoundRecord) Outcome() string {
	if r.Solved {
		return string(RoundStateSolved)
	}
	return string(RoundStateLost)
}
