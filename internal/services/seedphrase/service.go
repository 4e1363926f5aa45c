package seedphrase

import (
	"context"

	"github.com/KirkDiggler/bip39dice/internal/checkwords"
	"github.com/KirkDiggler/bip39dice/internal/dice"
	"github.com/KirkDiggler/bip39dice/internal/mnemonic"
	"github.com/KirkDiggler/bip39dice/internal/models"
	"github.com/KirkDiggler/bip39dice/internal/wordlist"
)

// service implements the Service interface
type service struct {
	wordlist   wordlist.Wordlist
	diceRoller dice.Roller
	solver     *checkwords.Solver
}

// New creates a new seed phrase service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Wordlist == nil {
		return nil, ErrNilWordlist
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	solver, err := checkwords.New(&checkwords.Config{
		Wordlist: cfg.Wordlist,
	})
	if err != nil {
		return nil, err
	}

	return &service{
		wordlist:   cfg.Wordlist,
		diceRoller: cfg.DiceRoller,
		solver:     solver,
	}, nil
}

// ConvertDice maps a five-die roll to a word
func (s *service) ConvertDice(ctx context.Context, input *ConvertDiceInput) (*ConvertDiceOutput, error) {
	roll := dice.Normalize(input.Roll)
	index, err := dice.DiceToIndex(roll)
	if err != nil {
		return nil, err
	}

	diceRoll := s.diceRoll(roll, index)
	if !diceRoll.InBounds {
		return nil, ErrRollOutOfBounds
	}

	return &ConvertDiceOutput{DiceRoll: diceRoll}, nil
}

// DiceWordlist lists every usable roll with its word
func (s *service) DiceWordlist(ctx context.Context, input *DiceWordlistInput) (*DiceWordlistOutput, error) {
	usable := dice.UsableMax(s.wordlist.Len())
	rolls := make([]*models.DiceRoll, 0, usable)
	for i := 0; i < usable; i++ {
		roll, err := dice.IndexToDice(i)
		if err != nil {
			return nil, err
		}
		rolls = append(rolls, s.diceRoll(roll, i))
	}

	return &DiceWordlistOutput{Rolls: rolls}, nil
}

// LookupWord finds the rolls that select a word
func (s *service) LookupWord(ctx context.Context, input *LookupWordInput) (*LookupWordOutput, error) {
	index, err := s.wordlist.IndexOf(input.Word)
	if err != nil {
		return nil, err
	}

	size := s.wordlist.Len()
	var rolls []string
	for i := index; dice.InBounds(i, size); i += size {
		roll, err := dice.IndexToDice(i)
		if err != nil {
			return nil, err
		}
		rolls = append(rolls, roll)
	}

	return &LookupWordOutput{
		WordIndex: index,
		Rolls:     rolls,
	}, nil
}

// SolveCheckwords finds every valid final word for a seed phrase base
func (s *service) SolveCheckwords(ctx context.Context, input *SolveCheckwordsInput) (*SolveCheckwordsOutput, error) {
	wordCount := input.WordCount
	if wordCount == 0 {
		wordCount = mnemonic.Default.WordCount()
	}
	length, err := mnemonic.ForWordCount(wordCount)
	if err != nil {
		return nil, err
	}

	base := input.Words
	if input.Random {
		base = s.randomBase(length)
	} else if len(base) == 0 {
		return nil, ErrNoWords
	}

	found, err := s.solver.Candidates(base, length)
	if err != nil {
		return nil, err
	}

	candidates := make([]*models.Candidate, len(found))
	for i, c := range found {
		phrase := mnemonic.Join(append(append([]string{}, base...), c.Word)...)
		candidates[i] = &models.Candidate{
			Word:      c.Word,
			WordIndex: c.Index,
			Nonce:     c.Nonce,
			Phrase:    phrase,
			Valid:     mnemonic.Validate(phrase),
		}
	}

	return &SolveCheckwordsOutput{
		Base:       base,
		Candidates: candidates,
	}, nil
}

func (s *service) randomBase(length mnemonic.Length) []string {
	words := make([]string, length.WordCount()-1)
	for i := range words {
		words[i] = s.wordlist.WordAt(s.diceRoller.Index(s.wordlist.Len()))
	}
	return words
}

func (s *service) diceRoll(roll string, index int) *models.DiceRoll {
	size := s.wordlist.Len()
	diceRoll := &models.DiceRoll{
		Roll:      roll,
		Index:     index,
		WordIndex: index % size,
		InBounds:  dice.InBounds(index, size),
	}
	if diceRoll.InBounds {
		diceRoll.Word = s.wordlist.WordAt(diceRoll.WordIndex)
	}
	return diceRoll
}
