package mnemonic

import (
	"fmt"

	"github.com/pkg/errors"
)

// BitsPerWord is the number of bits a single wordlist index carries
const BitsPerWord = 11

// ErrInvalidWordCount is returned for word counts BIP39 does not define
var ErrInvalidWordCount = errors.New("invalid mnemonic word count")

// Length is the number of words in a mnemonic
type Length int

const (
	Words12 Length = 12
	Words15 Length = 15
	Words18 Length = 18
	Words21 Length = 21
	Words24 Length = 24
)

// Lengths lists every supported mnemonic length, shortest first
var Lengths = []Length{Words12, Words15, Words18, Words21, Words24}

// Default is the mnemonic length used when none is given
const Default = Words12

// ForWordCount returns the Length for a word count
func ForWordCount(n int) (Length, error) {
	for _, l := range Lengths {
		if int(l) == n {
			return l, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidWordCount, "%d", n)
}

// WordCount returns the number of words in the mnemonic
func (l Length) WordCount() int {
	return int(l)
}

// TotalBits is the size of the packed word stream, entropy plus checksum
func (l Length) TotalBits() int {
	return BitsPerWord * int(l)
}

// EntropyBits is the number of entropy bits the mnemonic encodes
func (l Length) EntropyBits() int {
	return l.TotalBits() * 32 / 33
}

// ChecksumBits is the number of checksum bits carried by the last word
func (l Length) ChecksumBits() int {
	return l.EntropyBits() / 32
}

// String implements fmt.Stringer
func (l Length) String() string {
	return fmt.Sprintf("%d words", int(l))
}
