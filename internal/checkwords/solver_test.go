package checkwords

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/bip39dice/internal/mnemonic"
	"github.com/KirkDiggler/bip39dice/internal/wordlist"
	"github.com/KirkDiggler/bip39dice/internal/wordlist/mocks"
)

type SolverTestSuite struct {
	suite.Suite
	solver *Solver
}

func (s *SolverTestSuite) SetupTest() {
	solver, err := New(&Config{Wordlist: wordlist.English()})
	s.Require().NoError(err)
	s.solver = solver
}

func TestSolverTestSuite(t *testing.T) {
	suite.Run(t, new(SolverTestSuite))
}

func repeat(word string, n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = word
	}
	return words
}

// basePhrase returns a deterministic set of words for a mnemonic of length l
func basePhrase(l mnemonic.Length) []string {
	wl := wordlist.English()
	words := make([]string, l.WordCount()-1)
	for i := range words {
		words[i] = wl.WordAt((i*389 + 7) % wordlist.Size)
	}
	return words
}

func (s *SolverTestSuite) TestTwelveWordCardinality() {
	candidates, err := s.solver.Candidates(repeat("abandon", 11), mnemonic.Words12)
	s.Require().NoError(err)
	s.Require().Len(candidates, 128)

	seen := make(map[string]bool)
	for i, c := range candidates {
		s.Equal(i, c.Nonce)
		s.Equal(c.Nonce<<4|c.Checksum, c.Index)
		if i > 0 {
			s.Greater(c.Index, candidates[i-1].Index)
		}
		s.False(seen[c.Word], "duplicate candidate %s", c.Word)
		seen[c.Word] = true
	}
	s.True(seen["about"])
}

func (s *SolverTestSuite) TestTwentyFourWordKnownVector() {
	words, err := s.solver.Solve(repeat("abandon", 23), mnemonic.Words24)
	s.Require().NoError(err)
	s.Len(words, 8)
	s.Contains(words, "art")
}

func (s *SolverTestSuite) TestCandidateCountPerLength() {
	expected := map[mnemonic.Length]int{
		mnemonic.Words12: 128,
		mnemonic.Words15: 64,
		mnemonic.Words18: 32,
		mnemonic.Words21: 16,
		mnemonic.Words24: 8,
	}
	for _, l := range mnemonic.Lengths {
		words, err := s.solver.Solve(basePhrase(l), l)
		s.Require().NoError(err)
		s.Len(words, expected[l], "length %d", l)
	}
}

func (s *SolverTestSuite) TestSoundAndExhaustive() {
	wl := wordlist.English()
	for _, l := range mnemonic.Lengths {
		base := basePhrase(l)
		words, err := s.solver.Solve(base, l)
		s.Require().NoError(err)

		solved := make(map[string]bool, len(words))
		for _, w := range words {
			solved[w] = true
		}

		prefix := strings.Join(base, " ")
		for i := 0; i < wl.Len(); i++ {
			w := wl.WordAt(i)
			valid := mnemonic.Validate(prefix + " " + w)
			s.Equal(valid, solved[w], "length %d word %s", l, w)
		}
	}
}

func (s *SolverTestSuite) TestDeterministic() {
	base := basePhrase(mnemonic.Words18)
	first, err := s.solver.Solve(base, mnemonic.Words18)
	s.Require().NoError(err)
	second, err := s.solver.Solve(base, mnemonic.Words18)
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *SolverTestSuite) TestLengthMismatch() {
	_, err := s.solver.Solve(repeat("abandon", 12), mnemonic.Words12)
	s.True(errors.Is(err, ErrLengthMismatch))

	_, err = s.solver.Solve(repeat("abandon", 11), mnemonic.Words24)
	s.True(errors.Is(err, ErrLengthMismatch))
}

func (s *SolverTestSuite) TestUnsupportedLength() {
	for _, n := range []int{13, 11, 0, 33} {
		out, err := s.solver.Solve(repeat("abandon", 12), mnemonic.Length(n))
		s.True(errors.Is(err, mnemonic.ErrInvalidWordCount), "length %d", n)
		s.Nil(out)
	}
}

func (s *SolverTestSuite) TestInvalidWord() {
	words := repeat("abandon", 11)
	words[5] = "bitcoin"

	out, err := s.solver.Solve(words, mnemonic.Words12)
	s.True(errors.Is(err, ErrInvalidWord))
	s.Contains(err.Error(), "bitcoin")
	s.Nil(out)
}

func (s *SolverTestSuite) TestInvalidWordFailsBeforePacking() {
	ctrl := gomock.NewController(s.T())
	wl := mocks.NewMockWordlist(ctrl)

	wl.EXPECT().IndexOf("abandon").Return(0, nil)
	wl.EXPECT().IndexOf("nope").Return(0, wordlist.ErrWordNotFound)

	solver, err := New(&Config{Wordlist: wl})
	s.Require().NoError(err)

	words := repeat("abandon", 11)
	words[1] = "nope"
	_, err = solver.Solve(words, mnemonic.Words12)
	s.True(errors.Is(err, ErrInvalidWord))
}

func (s *SolverTestSuite) TestNewRequiresWordlist() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilWordlist, err)
}

func TestSolveCheckwordsUsesEnglish(t *testing.T) {
	words, err := SolveCheckwords(repeat("abandon", 11), mnemonic.Words12)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if len(words) != 128 {
		t.Fatalf("expected 128 candidates, got %d", len(words))
	}
}
