package models

// Candidate is one possible completion of a seed phrase
type Candidate struct {
	// Word is the final word
	Word string

	// WordIndex is the final word's wordlist index
	WordIndex int

	// Nonce is the free part of the final word's index
	Nonce int

	// Phrase is the complete seed phrase ending in Word
	Phrase string

	// Valid reports whether Phrase passes BIP39 checksum validation
	Valid bool
}
