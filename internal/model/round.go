package model

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// Placeholder marks a position of the secret word that is still hidden
const Placeholder = '_'

// RoundState represents the phase of a round
type RoundState string

const (
	RoundStateInProgress RoundState = "in_progress"
	RoundStateSolved     RoundState = "solved"
	RoundStateLost       RoundState = "lost"
)

// Round holds the state of a single secret word being guessed
type Round struct {
	Secret     string
	Difficulty Difficulty

	Revealed     []rune        // One entry per rune of Secret, Placeholder while hidden
	Budget       int           // Wrong guesses allowed, equal to the secret's length
	WrongGuesses int           // Incorrect guesses made so far
	Guessed      map[rune]bool // Distinct letters attempted this round
	HintUsed     bool

	StartedAt time.Time
}

// NewRound creates a round with every position hidden
func NewRound(secret string, difficulty Difficulty, startedAt time.Time) *Round {
	n := utf8.RuneCountInString(secret)
	revealed := make([]rune, n)
	for i := range revealed {
		revealed[i] = Placeholder
	}
	return &Round{
		Secret:     secret,
		Difficulty: difficulty,
		Revealed:   revealed,
		Budget:     n,
		Guessed:    make(map[rune]bool),
		StartedAt:  startedAt,
	}
}

// State derives the round's phase from its reveal state and wrong guesses
func (r *Round) State() RoundState {
	if r.HiddenCount() == 0 {
		return RoundStateSolved
	}
	if r.WrongGuesses >= r.Budget {
		return RoundStateLost
	}
	return RoundStateInProgress
}

// IsComplete returns true once the round is solved or lost
func (r *Round) IsComplete() bool {
	return r.State() != RoundStateInProgress
}

// HiddenCount returns the number of positions not yet revealed
func (r *Round) HiddenCount() int {
	count := 0
	for _, c := range r.Revealed {
		if c == Placeholder {
			count++
		}
	}
	return count
}

// HiddenPositions returns the indices still showing the placeholder
func (r *Round) HiddenPositions() []int {
	var hidden []int
	for i, c := range r.Revealed {
		if c == Placeholder {
			hidden = append(hidden, i)
		}
	}
	return hidden
}

// GuessesRemaining returns how many more wrong guesses the player can make
func (r *Round) GuessesRemaining() int {
	return r.Budget - r.WrongGuesses
}

// HintOffered reports whether the player should be offered a hint now:
// exactly one wrong guess left and no hint taken yet
func (r *Round) HintOffered() bool {
	return !r.IsComplete() && !r.HintUsed && r.GuessesRemaining() == 1
}

// GuessedLetters returns the attempted letters in sorted order
func (r *Round) GuessedLetters() []rune {
	letters := make([]rune, 0, len(r.Guessed))
	for l := range r.Guessed {
		letters = append(letters, l)
	}
	slices.Sort(letters)
	return letters
}

// Display renders the reveal state with letters separated by spaces, e.g. "c a _"
func (r *Round) Display() string {
	return spaced(r.Revealed)
}

// Record summarises the round for the session history
func (r *Round) Record(completedAt time.Time) RoundRecord {
	return RoundRecord{
		Word:         r.Secret,
		Difficulty:   r.Difficulty,
		Solved:       r.State() == RoundStateSolved,
		WrongGuesses: r.WrongGuesses,
		TotalGuesses: len(r.Guessed),
		HintUsed:     r.HintUsed,
		CompletedAt:  completedAt,
	}
}

// SpacedLetters joins letters with single spaces, e.g. "a c t"
func SpacedLetters(letters []rune) string {
	return spaced(letters)
}

func spaced(letters []rune) string {
	parts := make([]string, len(letters))
	for i, l := range letters {
		parts[i] = string(l)
	}
	return strings.Join(parts, " ")
}
