package model

// Hint discloses the alphabetic neighbourhood of one hidden letter
type Hint struct {
	Position int  // 0-indexed position in the secret word
	Before   rune // Letter preceding the secret letter, clamped at 'a'
	After    rune // Letter following the secret letter, clamped at 'z'
}

// Neighbors returns the letters immediately before and after letter.
// There is no wraparound: 'a' is its own predecessor and 'z' its own successor.
func Neighbors(letter rune) (before, after rune) {
	before, after = letter, letter
	if letter > 'a' {
		before = letter - 1
	}
	if letter < 'z' {
		after = letter + 1
	}
	return before, after
}
