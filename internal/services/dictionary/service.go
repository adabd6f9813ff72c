package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mcoot/wordguess/internal/model"
)

// Service owns the word list and filters it by difficulty
type Service struct {
	logger *slog.Logger
	fold   cases.Caser

	mu     sync.RWMutex
	words  []string
	loaded bool
}

// New creates a new DictionaryService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
		fold:   cases.Lower(language.Und),
	}
}

// LoadFromFile loads the word list from a file (one word per line).
// The file is read fully and closed before returning.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", model.ErrWordSourceUnavailable, path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", model.ErrWordSourceUnavailable, path, err)
	}

	if err := s.loadWords(words); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	s.logger.Info("word list loaded",
		slog.String("path", path),
		slog.Int("word_count", s.WordCount()),
	)
	return nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(raw []string) error {
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		words = append(words, s.fold.String(w))
	}
	if len(words) == 0 {
		return model.ErrDictionaryEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = words
	s.loaded = true
	return nil
}

// IsLoaded returns whether the word list has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the list
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Words returns a copy of the full word list in file order
func (s *Service) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.words)
}

// Candidates returns the words whose length matches the difficulty.
// If none match, the full list is returned and fallback is true so a
// round can always be played.
func (s *Service) Candidates(d model.Difficulty) (candidates []string, fallback bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, false, model.ErrDictionaryNotLoaded
	}

	for _, w := range s.words {
		if d.Matches(w) {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		s.logger.Debug("no words match difficulty, using full list",
			slog.String("difficulty", d.String()),
		)
		return slices.Clone(s.words), true, nil
	}
	return candidates, false, nil
}

// ServiceInterface is the behaviour the game controller relies on
type ServiceInterface interface {
	IsLoaded() bool
	WordCount() int
	Words() []string
	Candidates(d model.Difficulty) ([]string, bool, error)
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)
