package seedphrase

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/bip39dice/internal/services/seedphrase Service

// Service defines the interface for seed phrase operations
type Service interface {
	// ConvertDice maps a five-die roll to a word
	ConvertDice(ctx context.Context, input *ConvertDiceInput) (*ConvertDiceOutput, error)

	// DiceWordlist lists every usable roll with its word
	DiceWordlist(ctx context.Context, input *DiceWordlistInput) (*DiceWordlistOutput, error)

	// LookupWord finds the rolls that select a word
	LookupWord(ctx context.Context, input *LookupWordInput) (*LookupWordOutput, error)

	// SolveCheckwords finds every valid final word for a seed phrase base
	SolveCheckwords(ctx context.Context, input *SolveCheckwordsInput) (*SolveCheckwordsOutput, error)
}
