package storage

import (
	"context"

	"github.com/mcoot/wordguess/internal/model"
)

// Storage holds the round history for the lifetime of a session
type Storage interface {
	// AppendRoundRecord adds a completed round to the end of the history
	AppendRoundRecord(ctx context.Context, record model.RoundRecord) error
	// ListRoundRecords returns every record in play order
	ListRoundRecords(ctx context.Context) ([]model.RoundRecord, error)
	// CountRoundRecords returns the number of completed rounds
	CountRoundRecords(ctx context.Context) (int, error)
}
