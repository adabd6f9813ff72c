package cli

import (
	"fmt"
	"io"

	"github.com/mcoot/wordguess/internal/model"
	"github.com/mcoot/wordguess/internal/services/game"
)

// Output formats game text for the terminal
type Output struct {
	w io.Writer
}

// NewOutput creates a new Output writing to w
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	fmt.Fprintln(o.w, msg)
}

func (o *Output) printWelcome() {
	fmt.Fprintln(o.w, "\nWelcome to the Insanity Word Guessing Game!")
	fmt.Fprintln(o.w)
	fmt.Fprintln(o.w, "Choose your difficulty level:")
	fmt.Fprintln(o.w)
	for i, d := range model.Difficulties {
		fmt.Fprintf(o.w, "  %d. %s\n", i+1, d.Description())
	}
}

func (o *Output) printRoundStart(r *model.Round) {
	fmt.Fprintf(o.w, "\nToday's word has %d letters.\n", r.Budget)
	fmt.Fprintf(o.w, "Word to guess: %s\n\n", r.Display())
}

func (o *Output) printHint(h model.Hint) {
	fmt.Fprintf(o.w, "\nHint: the letter at position %d is between '%c' and '%c'.\n",
		h.Position+1, h.Before, h.After)
}

func (o *Output) printCurrentWord(r *model.Round) {
	fmt.Fprintf(o.w, "\nCurrent word: %s\n\n", r.Display())
}

func (o *Output) printGuessResult(r *model.Round, res *game.GuessResult) {
	if res.Correct {
		fmt.Fprintln(o.w, "Good guess!")
		fmt.Fprintf(o.w, "Letters remaining: %d\n", res.HiddenRemaining)
	} else {
		fmt.Fprintf(o.w, "Sorry, '%c' is not in the word. %d wrong guesses left.\n",
			res.Letter, res.GuessesRemaining)
	}
	fmt.Fprintf(o.w, "Current word: %s\n", r.Display())
	fmt.Fprintf(o.w, "Guessed letters: %s\n\n", model.SpacedLetters(r.GuessedLetters()))
}

func (o *Output) printOutcome(r *model.Round) {
	if r.State() == model.RoundStateSolved {
		fmt.Fprintf(o.w, "Congratulations! You guessed the word: %s\n", r.Secret)
		return
	}
	fmt.Fprintf(o.w, "Oh no! Game over! The word was: %s\n", r.Secret)
}
