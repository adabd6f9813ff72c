package model

import (
	"strings"
	"unicode/utf8"
)

// Difficulty selects which word lengths are eligible for a round
type Difficulty int

const (
	DifficultyEasy   Difficulty = iota + 1 // length <= 5
	DifficultyMedium                       // length 6-8
	DifficultyHard                         // length >= 9
)

// Difficulties lists every tier in menu order
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty maps a menu token ("1", "2" or "3") to a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return DifficultyEasy, nil
	case "2":
		return DifficultyMedium, nil
	case "3":
		return DifficultyHard, nil
	}
	return 0, ErrInvalidDifficulty
}

// Matches reports whether a word's length falls within the tier
func (d Difficulty) Matches(word string) bool {
	n := utf8.RuneCountInString(word)
	switch d {
	case DifficultyEasy:
		return n <= 5
	case DifficultyMedium:
		return n >= 6 && n <= 8
	case DifficultyHard:
		return n >= 9
	}
	return false
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	}
	return "unknown"
}

// Description is the menu line shown for the tier
func (d Difficulty) Description() string {
	switch d {
	case DifficultyEasy:
		return "Easy   = words of 5 letters or fewer"
	case DifficultyMedium:
		return "Medium = words of 6-8 letters"
	case DifficultyHard:
		return "Hard   = words of 9 letters or more"
	}
	return ""
}
