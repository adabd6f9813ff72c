package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestNewRoundHidesEveryPosition(t *testing.T) {
	r := NewRound("cat", DifficultyEasy, testStart)

	assert.Equal(t, []rune{'_', '_', '_'}, r.Revealed)
	assert.Equal(t, 3, r.Budget)
	assert.Equal(t, 0, r.WrongGuesses)
	assert.Equal(t, 3, r.HiddenCount())
	assert.Equal(t, RoundStateInProgress, r.State())
	assert.Equal(t, "_ _ _", r.Display())
}

func TestNewRoundCountsRunes(t *testing.T) {
	r := NewRound("café", DifficultyEasy, testStart)
	assert.Equal(t, 4, r.Budget)
	assert.Len(t, r.Revealed, 4)
}

func TestRoundState(t *testing.T) {
	r := NewRound("ab", DifficultyEasy, testStart)

	r.Revealed = []rune{'a', 'b'}
	assert.Equal(t, RoundStateSolved, r.State())
	assert.True(t, r.IsComplete())

	r.Revealed = []rune{'a', '_'}
	r.WrongGuesses = 2
	assert.Equal(t, RoundStateLost, r.State())
	assert.True(t, r.IsComplete())

	r.WrongGuesses = 1
	assert.Equal(t, RoundStateInProgress, r.State())
	assert.False(t, r.IsComplete())
}

func TestHintOffered(t *testing.T) {
	r := NewRound("cat", DifficultyEasy, testStart)
	assert.False(t, r.HintOffered())

	r.WrongGuesses = 2
	assert.True(t, r.HintOffered())

	r.HintUsed = true
	assert.False(t, r.HintOffered())
}

func TestHintOfferedImmediatelyForSingleLetterWord(t *testing.T) {
	r := NewRound("a", DifficultyEasy, testStart)
	assert.True(t, r.HintOffered())
}

func TestHiddenPositions(t *testing.T) {
	r := NewRound("hello", DifficultyEasy, testStart)
	r.Revealed = []rune{'_', 'e', '_', '_', 'o'}
	assert.Equal(t, []int{0, 2, 3}, r.HiddenPositions())
}

func TestGuessedLettersSorted(t *testing.T) {
	r := NewRound("cat", DifficultyEasy, testStart)
	r.Guessed['t'] = true
	r.Guessed['c'] = true
	r.Guessed['a'] = true

	assert.Equal(t, []rune{'a', 'c', 't'}, r.GuessedLetters())
	assert.Equal(t, "a c t", SpacedLetters(r.GuessedLetters()))
}

func TestRecord(t *testing.T) {
	r := NewRound("cat", DifficultyEasy, testStart)
	r.Revealed = []rune{'c', 'a', 't'}
	r.Guessed['c'] = true
	r.Guessed['a'] = true
	r.Guessed['t'] = true
	r.Guessed['x'] = true
	r.WrongGuesses = 1

	done := testStart.Add(time.Minute)
	rec := r.Record(done)

	assert.Equal(t, "cat", rec.Word)
	assert.True(t, rec.Solved)
	assert.Equal(t, "solved", rec.Outcome())
	assert.Equal(t, 1, rec.WrongGuesses)
	assert.Equal(t, 4, rec.TotalGuesses)
	assert.Equal(t, DifficultyEasy, rec.Difficulty)
	assert.Equal(t, done, rec.CompletedAt)
}

func TestNeighbors(t *testing.T) {
	tests := []struct {
		letter rune
		before rune
		after  rune
	}{
		{'m', 'l', 'n'},
		{'a', 'a', 'b'},
		{'z', 'y', 'z'},
		{'b', 'a', 'c'},
	}
	for _, tt := range tests {
		before, after := Neighbors(tt.letter)
		assert.Equal(t, tt.before, before, "before %q", tt.letter)
		assert.Equal(t, tt.after, after, "after %q", tt.letter)
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("1")
	require.NoError(t, err)
	assert.Equal(t, DifficultyEasy, d)

	d, err = ParseDifficulty(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, d)

	for _, bad := range []string{"", "0", "4", "easy", "12"} {
		_, err := ParseDifficulty(bad)
		assert.ErrorIs(t, err, ErrInvalidDifficulty, "input %q", bad)
	}
}

func TestDifficultyMatches(t *testing.T) {
	assert.True(t, DifficultyEasy.Matches("cat"))
	assert.True(t, DifficultyEasy.Matches("fives"))
	assert.False(t, DifficultyEasy.Matches("sixsix"))

	assert.True(t, DifficultyMedium.Matches("sixsix"))
	assert.True(t, DifficultyMedium.Matches("alphabet"))
	assert.False(t, DifficultyMedium.Matches("fives"))
	assert.False(t, DifficultyMedium.Matches("ninenines"))

	assert.True(t, DifficultyHard.Matches("ninenines"))
	assert.True(t, DifficultyHard.Matches("extraordinary"))
	assert.False(t, DifficultyHard.Matches("alphabet"))
}
