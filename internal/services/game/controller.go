package game

import (
	"context"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mcoot/wordguess/internal/dependencies/clock"
	"github.com/mcoot/wordguess/internal/dependencies/random"
	"github.com/mcoot/wordguess/internal/model"
	"github.com/mcoot/wordguess/internal/services/dictionary"
	"github.com/mcoot/wordguess/internal/services/history"
)

// Controller runs the round state machine: secret selection, guesses and hints
type Controller struct {
	dictionary dictionary.ServiceInterface
	history    *history.Service
	clock      clock.Clock
	random     random.Random
	logger     *slog.Logger
	fold       cases.Caser
}

// NewController creates a new GameController
func NewController(
	dictionary dictionary.ServiceInterface,
	history *history.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		dictionary: dictionary,
		history:    history,
		clock:      clock,
		random:     random,
		logger:     logger,
		fold:       cases.Lower(language.Und),
	}
}

// GuessResult describes the effect of one accepted guess
type GuessResult struct {
	Letter           rune
	Correct          bool
	Revealed         int // Positions uncovered by this guess
	HiddenRemaining  int
	GuessesRemaining int // Wrong guesses still allowed
	State            model.RoundState
}

// StartRound picks a secret word for the difficulty and returns a fresh round.
// Every candidate is equally likely and earlier secrets are not excluded.
func (c *Controller) StartRound(ctx context.Context, difficulty model.Difficulty) (*model.Round, error) {
	candidates, fallback, err := c.dictionary.Candidates(difficulty)
	if err != nil {
		return nil, err
	}

	secret := candidates[c.random.Intn(len(candidates))]
	round := model.NewRound(secret, difficulty, c.clock.Now())

	c.logger.Debug("round started",
		slog.String("difficulty", difficulty.String()),
		slog.Int("candidate_count", len(candidates)),
		slog.Bool("fallback", fallback),
		slog.Int("length", round.Budget),
	)

	return round, nil
}

// Guess applies a single-letter guess to the round.
// Invalid and repeated guesses return an error and leave the round untouched.
func (c *Controller) Guess(ctx context.Context, round *model.Round, input string) (*GuessResult, error) {
	if round.IsComplete() {
		return nil, model.ErrRoundComplete
	}

	letter, err := c.parseLetter(input)
	if err != nil {
		return nil, err
	}
	if round.Guessed[letter] {
		return nil, model.ErrAlreadyGuessed
	}

	round.Guessed[letter] = true

	revealed := 0
	for i, ch := range []rune(round.Secret) {
		if ch == letter {
			round.Revealed[i] = letter
			revealed++
		}
	}
	if revealed == 0 {
		round.WrongGuesses++
	}

	return &GuessResult{
		Letter:           letter,
		Correct:          revealed > 0,
		Revealed:         revealed,
		HiddenRemaining:  round.HiddenCount(),
		GuessesRemaining: round.GuessesRemaining(),
		State:            round.State(),
	}, nil
}

func (c *Controller) parseLetter(input string) (rune, error) {
	s := c.fold.String(strings.TrimSpace(input))
	if utf8.RuneCountInString(s) != 1 {
		return 0, model.ErrInvalidGuess
	}
	letter, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(letter) {
		return 0, model.ErrInvalidGuess
	}
	return letter, nil
}

// Hint describes the alphabetic neighbours of one randomly chosen hidden letter
// and marks the round's hint as used. ok is false when there is nothing left
// to hint at or the hint was already taken.
func (c *Controller) Hint(round *model.Round) (hint model.Hint, ok bool) {
	if round.HintUsed {
		return model.Hint{}, false
	}
	hidden := round.HiddenPositions()
	if len(hidden) == 0 {
		return model.Hint{}, false
	}

	pos := hidden[c.random.Intn(len(hidden))]
	before, after := model.Neighbors([]rune(round.Secret)[pos])
	round.HintUsed = true

	c.logger.Debug("hint given", slog.Int("position", pos))

	return model.Hint{Position: pos, Before: before, After: after}, true
}

// FinishRound records a solved or lost round in the session history
func (c *Controller) FinishRound(ctx context.Context, round *model.Round) (model.RoundRecord, error) {
	if !round.IsComplete() {
		return model.RoundRecord{}, model.ErrRoundInProgress
	}

	record := round.Record(c.clock.Now())
	if err := c.history.Append(ctx, record); err != nil {
		return model.RoundRecord{}, err
	}

	c.logger.Info("round finished",
		slog.String("difficulty", round.Difficulty.String()),
		slog.String("outcome", record.Outcome()),
		slog.Int("wrong_guesses", record.WrongGuesses),
		slog.Int("total_guesses", record.TotalGuesses),
		slog.Bool("hint_used", record.HintUsed),
		slog.Duration("duration", c.clock.Since(round.StartedAt)),
	)

	return record, nil
}
