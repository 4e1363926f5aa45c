package dice

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// Faces is the number of sides on each die
	Faces = 6

	// Digits is the number of dice in a roll
	Digits = 5

	// Combinations is the number of distinct rolls, Faces^Digits
	Combinations = 6 * 6 * 6 * 6 * 6

	// MaxRoll is the highest roll
	MaxRoll = "66666"
)

var (
	// ErrInvalidDiceCharacter is returned for characters outside '1'..'6'
	ErrInvalidDiceCharacter = errors.New("invalid dice character")

	// ErrInvalidDiceLength is returned for rolls that are not exactly Digits long
	ErrInvalidDiceLength = errors.New("dice roll must be 5 characters")

	// ErrIndexOutOfRange is returned for indices outside [0, Combinations)
	ErrIndexOutOfRange = errors.New("index out of dice range")
)

// DiceToIndex reads roll as a base-6 number where '1' is 0 and '6' is 5,
// most significant die first.
func DiceToIndex(roll string) (int, error) {
	if len(roll) != Digits {
		return 0, errors.Wrapf(ErrInvalidDiceLength, "%q", roll)
	}

	index := 0
	for _, c := range roll {
		if c < '1' || c > '6' {
			return 0, errors.Wrapf(ErrInvalidDiceCharacter, "%q", c)
		}
		index = index*Faces + int(c-'1')
	}
	return index, nil
}

// IndexToDice is the inverse of DiceToIndex. The result is always Digits
// characters long, padded with '1'.
func IndexToDice(index int) (string, error) {
	if index < 0 || index >= Combinations {
		return "", errors.Wrapf(ErrIndexOutOfRange, "%d", index)
	}

	var out [Digits]byte
	for i := Digits - 1; i >= 0; i-- {
		out[i] = byte('1' + index%Faces)
		index /= Faces
	}
	return string(out[:]), nil
}

// UsableMax is the largest multiple of wordCount not above the highest roll.
// Indices at or past it must be re-rolled.
func UsableMax(wordCount int) int {
	return ((Combinations - 1) / wordCount) * wordCount
}

// InBounds reports whether index may select a word from a list of wordCount words
func InBounds(index, wordCount int) bool {
	return index >= 0 && index < UsableMax(wordCount)
}

// Normalize strips surrounding whitespace from a typed roll
func Normalize(roll string) string {
	return strings.TrimSpace(roll)
}
