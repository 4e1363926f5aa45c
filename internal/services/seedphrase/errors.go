package seedphrase

// SeedPhraseError is a custom error type for seed phrase errors
type SeedPhraseError string

// Error implements the error interface
func (e SeedPhraseError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRollOutOfBounds SeedPhraseError = "roll out of bounds! re-roll and try again"
	ErrNoWords         SeedPhraseError = "no seed phrase words given"
	ErrNilConfig       SeedPhraseError = "config cannot be nil"
	ErrNilWordlist     SeedPhraseError = "wordlist cannot be nil"
	ErrNilDiceRoller   SeedPhraseError = "dice roller cannot be nil"
)
