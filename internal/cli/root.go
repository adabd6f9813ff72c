package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordguess/internal/factory"
	"github.com/mcoot/wordguess/internal/model"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg, cfgErr := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wordguess",
		Short: "Terminal word-guessing game",
		Long: `wordguess picks a secret word from a word list and lets you guess it
one letter at a time. You may make as many wrong guesses as the word has
letters. Results of every round are shown after each game.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVar(&cfg.WordsPath, "words", cfg.WordsPath, "Word list file, one word per line (env: WORDGUESS_WORDS)")
	rootCmd.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for reproducible games, 0 for a random seed (env: WORDGUESS_SEED)")
	rootCmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level written to stderr: debug, info, warn, error (env: WORDGUESS_LOG_LEVEL)")

	return rootCmd
}

func run(ctx context.Context, cfg *Config, in io.Reader, out, errOut io.Writer) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(errOut, &slog.HandlerOptions{
		Level: level,
	}))

	app := factory.New(factory.Config{
		Logger: logger,
		Seed:   cfg.Seed,
	})

	// The word list is read once, before any prompt
	if err := app.DictionaryService.LoadFromFile(ctx, cfg.WordsPath); err != nil {
		return err
	}

	return NewSession(app, in, out, logger).Run(ctx)
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		return 1
	}
	return 0
}

func describeError(err error) string {
	switch {
	case errors.Is(err, model.ErrWordSourceUnavailable):
		return fmt.Sprintf("Error: %s\nPlace the word list in the working directory or pass --words.", err)
	case errors.Is(err, model.ErrInputClosed):
		return "Error: input closed before the session ended"
	}
	return fmt.Sprintf("Error: %s", err)
}
