package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mcoot/wordguess/internal/factory"
	"github.com/mcoot/wordguess/internal/model"
	"github.com/mcoot/wordguess/internal/services/game"
	"github.com/mcoot/wordguess/internal/services/history"
)

// Session plays rounds on a terminal until the player stops
type Session struct {
	controller *game.Controller
	history    *history.Service
	prompter   *Prompter
	output     *Output
	out        io.Writer
	logger     *slog.Logger
}

// NewSession creates a Session reading answers from in and writing to out
func NewSession(app *factory.App, in io.Reader, out io.Writer, logger *slog.Logger) *Session {
	return &Session{
		controller: app.GameController,
		history:    app.HistoryService,
		prompter:   NewPrompter(in, out),
		output:     NewOutput(out),
		out:        out,
		logger:     logger,
	}
}

// Run plays rounds, printing the full history after each, until the player
// declines another round. It returns model.ErrInputClosed if input ends first.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.playRound(ctx); err != nil {
			return err
		}
		if err := s.history.WriteReport(ctx, s.out); err != nil {
			return err
		}

		again, err := s.prompter.Confirm("\nPlay another round? (yes/no): ")
		if err != nil {
			return err
		}
		if !again {
			s.output.PrintMessage("\nThank you for playing the Insanity Word Guesser!")
			return nil
		}
	}
}

func (s *Session) playRound(ctx context.Context) error {
	difficulty, err := s.chooseDifficulty()
	if err != nil {
		return err
	}

	round, err := s.controller.StartRound(ctx, difficulty)
	if err != nil {
		return err
	}
	s.output.printRoundStart(round)

	for !round.IsComplete() {
		if round.HintOffered() {
			// Declining leaves the offer open for the next guess
			yes, err := s.prompter.Confirm(fmt.Sprintf(
				"You have %d wrong guess left. Would you like a hint?\n(yes/no) ",
				round.GuessesRemaining()))
			if err != nil {
				return err
			}
			if yes {
				if hint, ok := s.controller.Hint(round); ok {
					s.output.printHint(hint)
				}
			}
			s.output.printCurrentWord(round)
		}

		input, err := s.prompter.Ask("Guess a letter: ")
		if err != nil {
			return err
		}

		result, err := s.controller.Guess(ctx, round, input)
		switch {
		case errors.Is(err, model.ErrInvalidGuess):
			s.output.PrintMessage("Please enter a single letter (A-Z).\n")
			continue
		case errors.Is(err, model.ErrAlreadyGuessed):
			s.output.PrintMessage(fmt.Sprintf("Oops! You already guessed '%s'.\n", strings.ToLower(input)))
			continue
		case err != nil:
			return err
		}

		s.output.printGuessResult(round, result)
	}

	s.output.printOutcome(round)

	_, err = s.controller.FinishRound(ctx, round)
	return err
}

func (s *Session) chooseDifficulty() (model.Difficulty, error) {
	s.output.printWelcome()
	for {
		choice, err := s.prompter.Ask("\nChoose wisely... [1/2/3]: ")
		if err != nil {
			return 0, err
		}
		difficulty, err := model.ParseDifficulty(choice)
		if err == nil {
			return difficulty, nil
		}
		s.logger.Debug("rejected difficulty", slog.String("input", choice))
		s.output.PrintMessage("Oh! Invalid choice. Choose 1, 2 or 3.")
	}
}
