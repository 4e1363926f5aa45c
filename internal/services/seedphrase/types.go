package seedphrase

import (
	"github.com/KirkDiggler/bip39dice/internal/dice"
	"github.com/KirkDiggler/bip39dice/internal/models"
	"github.com/KirkDiggler/bip39dice/internal/wordlist"
)

// Config holds configuration for the seed phrase service
type Config struct {
	// Wordlist words are selected from
	Wordlist wordlist.Wordlist

	// DiceRoller draws random phrase bases
	DiceRoller dice.Roller
}

// ConvertDiceInput contains parameters for converting a roll
type ConvertDiceInput struct {
	// Roll is five characters from '1' to '6'
	Roll string
}

// ConvertDiceOutput contains the result of converting a roll
type ConvertDiceOutput struct {
	DiceRoll *models.DiceRoll
}

// DiceWordlistInput contains parameters for listing the dice wordlist
type DiceWordlistInput struct{}

// DiceWordlistOutput contains every usable roll in index order
type DiceWordlistOutput struct {
	Rolls []*models.DiceRoll
}

// LookupWordInput contains parameters for looking up a word
type LookupWordInput struct {
	Word string
}

// LookupWordOutput contains the rolls that select a word
type LookupWordOutput struct {
	// WordIndex is the word's wordlist index
	WordIndex int

	// Rolls are every in-bounds roll selecting the word, lowest first
	Rolls []string
}

// SolveCheckwordsInput contains parameters for solving checkwords
type SolveCheckwordsInput struct {
	// Words is the seed phrase base, one word short of WordCount
	Words []string

	// WordCount is the full mnemonic length; zero means 12
	WordCount int

	// Random draws the base with the dice roller instead of using Words
	Random bool
}

// SolveCheckwordsOutput contains the result of solving checkwords
type SolveCheckwordsOutput struct {
	// Base is the seed phrase base that was solved
	Base []string

	// Candidates are the completions, ordered by nonce
	Candidates []*models.Candidate
}
