package history

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/wordguess/internal/model"
	"github.com/mcoot/wordguess/internal/storage"
)

// Service records completed rounds and reports the session history
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new HistoryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Append adds a completed round to the history
func (s *Service) Append(ctx context.Context, record model.RoundRecord) error {
	if err := s.storage.AppendRoundRecord(ctx, record); err != nil {
		s.logger.Error("failed to record round",
			slog.String("word", record.Word),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// Records returns every completed round in play order
func (s *Service) Records(ctx context.Context) ([]model.RoundRecord, error) {
	return s.storage.ListRoundRecords(ctx)
}

// WriteReport prints the full history, one entry per round numbered from 1
func (s *Service) WriteReport(ctx context.Context, w io.Writer) error {
	records, err := s.storage.ListRoundRecords(ctx)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "\nGame History:"); err != nil {
		return err
	}
	for i, r := range records {
		if _, err := fmt.Fprintf(w, "\nGame %d: '%s' was %s, %d wrong guesses out of %d total guesses.\n",
			i+1, r.Word, r.Outcome(), r.WrongGuesses, r.TotalGuesses); err != nil {
			return err
		}
	}
	return nil
}
