package models

// DiceRoll is a five-die roll and the word it selects
type DiceRoll struct {
	// Roll is the dice string, most significant die first
	Roll string

	// Index is the roll read as a base-6 number
	Index int

	// WordIndex is the wordlist index the roll selects
	WordIndex int

	// Word is the selected word, empty when the roll is out of bounds
	Word string

	// InBounds is false when the roll must be re-rolled
	InBounds bool
}
