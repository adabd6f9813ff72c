package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/wordguess/internal/dependencies/clock"
	"github.com/mcoot/wordguess/internal/dependencies/random"
	"github.com/mcoot/wordguess/internal/services/dictionary"
	"github.com/mcoot/wordguess/internal/services/game"
	"github.com/mcoot/wordguess/internal/services/history"
	"github.com/mcoot/wordguess/internal/storage"
	"github.com/mcoot/wordguess/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage holds the session history
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	HistoryService    *history.Service
	GameController    *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Seed makes secret and hint selection reproducible (optional)
	// If zero, a crypto/rand source is used
	Seed uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	return newWithDependencies(memory.New(), clock.New(), rnd, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	dictService := dictionary.New(logger)
	historyService := history.New(store, logger)
	gameController := game.NewController(dictService, historyService, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		HistoryService:    historyService,
		GameController:    gameController,
	}
}
