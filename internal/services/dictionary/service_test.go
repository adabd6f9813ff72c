package dictionary

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordguess/internal/model"
	"github.com/mcoot/wordguess/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded())
	s.Equal(0, s.service.WordCount())

	_, _, err := s.service.Candidates(model.DifficultyEasy)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *ServiceSuite) TestLoadWordsNormalizes() {
	err := s.service.LoadWords([]string{"  Apple ", "", "BANANA", "   ", "\tcherry\t"})
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Equal([]string{"apple", "banana", "cherry"}, s.service.Words())
}

func (s *ServiceSuite) TestLoadWordsRejectsEmptyList() {
	err := s.service.LoadWords([]string{"", "  "})
	s.ErrorIs(err, model.ErrDictionaryEmpty)
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestLoadFromFile() {
	path := testutil.WriteWordFile(s.T(), "Cat", "  alphabet  ", "", "EXTRAORDINARY")

	err := s.service.LoadFromFile(s.ctx, path)
	s.Require().NoError(err)

	s.Equal([]string{"cat", "alphabet", "extraordinary"}, s.service.Words())
}

func (s *ServiceSuite) TestLoadFromFileMissing() {
	path := filepath.Join(s.T().TempDir(), "words.txt")

	err := s.service.LoadFromFile(s.ctx, path)
	s.ErrorIs(err, model.ErrWordSourceUnavailable)
	s.ErrorIs(err, fs.ErrNotExist)
	s.Contains(err.Error(), path)
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestLoadFromFileBlank() {
	path := testutil.WriteWordFile(s.T(), "", "   ")

	err := s.service.LoadFromFile(s.ctx, path)
	s.ErrorIs(err, model.ErrDictionaryEmpty)
}

func (s *ServiceSuite) TestWordsReturnsCopy() {
	s.Require().NoError(s.service.LoadWords([]string{"cat"}))
	words := s.service.Words()
	words[0] = "dog"
	s.Equal([]string{"cat"}, s.service.Words())
}

func (s *ServiceSuite) TestCandidatesMatchTier() {
	words := []string{"a", "cat", "fives", "sixsix", "alphabet", "ninenines", "extraordinary"}
	s.Require().NoError(s.service.LoadWords(words))

	for _, d := range model.Difficulties {
		candidates, fallback, err := s.service.Candidates(d)
		s.Require().NoError(err)
		s.False(fallback, d.String())
		s.NotEmpty(candidates, d.String())
		for _, w := range candidates {
			s.True(d.Matches(w), "%s should match %s", w, d)
		}
	}

	easy, _, _ := s.service.Candidates(model.DifficultyEasy)
	s.Equal([]string{"a", "cat", "fives"}, easy)
	medium, _, _ := s.service.Candidates(model.DifficultyMedium)
	s.Equal([]string{"sixsix", "alphabet"}, medium)
	hard, _, _ := s.service.Candidates(model.DifficultyHard)
	s.Equal([]string{"ninenines", "extraordinary"}, hard)
}

func (s *ServiceSuite) TestCandidatesFallBackToFullList() {
	words := []string{"cat", "dog"}
	s.Require().NoError(s.service.LoadWords(words))

	candidates, fallback, err := s.service.Candidates(model.DifficultyHard)
	s.Require().NoError(err)
	s.True(fallback)
	s.Equal(words, candidates)
}

func (s *ServiceSuite) TestCandidatesCountRunes() {
	// "crème" is five runes but six bytes
	s.Require().NoError(s.service.LoadWords([]string{"crème", "alphabet"}))

	easy, fallback, err := s.service.Candidates(model.DifficultyEasy)
	s.Require().NoError(err)
	s.False(fallback)
	s.Equal([]string{"crème"}, easy)
}
