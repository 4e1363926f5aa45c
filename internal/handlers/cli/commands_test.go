package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/bip39dice/internal/dice"
	"github.com/KirkDiggler/bip39dice/internal/wordlist"
)

type CommandsTestSuite struct {
	suite.Suite
	out *bytes.Buffer
}

func (s *CommandsTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
}

func TestCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func (s *CommandsTestSuite) run(args ...string) error {
	seed := [32]byte{42}
	root := NewRootCommand(&Config{
		Version:    "test",
		DiceRoller: dice.New(&dice.Config{Seed: &seed}),
	})
	root.SetOut(s.out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	return root.Execute()
}

func (s *CommandsTestSuite) lines() []string {
	return strings.Split(strings.TrimRight(s.out.String(), "\n"), "\n")
}

func (s *CommandsTestSuite) TestConvertDice() {
	s.Require().NoError(s.run("convert-dice", "11114"))
	s.Equal("about\n", s.out.String())
}

func (s *CommandsTestSuite) TestConvertDiceOutOfBounds() {
	s.Require().NoError(s.run("convert-dice", "66666"))
	s.Equal("Roll out of bounds! Re-roll and try again\n", s.out.String())
}

func (s *CommandsTestSuite) TestConvertDiceInvalid() {
	err := s.run("convert-dice", "12347")
	s.True(errors.Is(err, dice.ErrInvalidDiceCharacter))
}

func (s *CommandsTestSuite) TestDiceWordlist() {
	s.Require().NoError(s.run("dice-wordlist"))
	lines := s.lines()
	s.Require().Len(lines, 6144)
	s.Equal("11111  abandon", lines[0])
	s.True(strings.HasSuffix(lines[6143], "  zoo"))
}

func (s *CommandsTestSuite) TestSolveCheckword() {
	args := []string{"solve-checkword"}
	for i := 0; i < 11; i++ {
		args = append(args, "abandon")
	}
	s.Require().NoError(s.run(args...))

	lines := s.lines()
	s.Require().Len(lines, 128)
	s.Equal("true   abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about", lines[0])
	for _, line := range lines {
		s.True(strings.HasPrefix(line, "true "), line)
	}
}

func (s *CommandsTestSuite) TestSolveCheckwordRandom() {
	s.Require().NoError(s.run("solve-checkword", "--random", "--length", "24"))

	lines := s.lines()
	s.Require().Len(lines, 8)
	for _, line := range lines {
		s.True(strings.HasPrefix(line, "true "), line)
		s.Len(strings.Fields(line), 25)
	}
}

func (s *CommandsTestSuite) TestSolveCheckwordRequiresWords() {
	s.Error(s.run("solve-checkword"))
	s.Error(s.run("solve-checkword", "--length", "13", "abandon"))
}

func (s *CommandsTestSuite) TestUnsupportedLanguage() {
	err := s.run("--language", "french", "convert-dice", "11111")
	s.True(errors.Is(err, wordlist.ErrUnsupportedLanguage))
}
