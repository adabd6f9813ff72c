package model

import "errors"

// Common errors used across the application
var (
	// Word source errors
	ErrWordSourceUnavailable = errors.New("word source unavailable")
	ErrDictionaryEmpty       = errors.New("word source contains no words")
	ErrDictionaryNotLoaded   = errors.New("dictionary not loaded")

	// Input errors
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidGuess      = errors.New("guess must be a single letter")
	ErrAlreadyGuessed    = errors.New("letter has already been guessed")
	ErrInputClosed       = errors.New("input closed")

	// Round errors
	ErrRoundComplete   = errors.New("round is already complete")
	ErrRoundInProgress = errors.New("round is still in progress")
)
