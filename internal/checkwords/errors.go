package checkwords

import "github.com/pkg/errors"

var (
	// ErrInvalidWord is returned when an input word is not in the wordlist
	ErrInvalidWord = errors.New("invalid word")

	// ErrLengthMismatch is returned when the word count is not one less
	// than the mnemonic length
	ErrLengthMismatch = errors.New("word count does not match mnemonic length")

	ErrNilConfig   = errors.New("config cannot be nil")
	ErrNilWordlist = errors.New("wordlist cannot be nil")
)
