package mnemonic

import (
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// Join builds a space separated phrase from its words
func Join(words ...string) string {
	return strings.Join(words, " ")
}

// Validate reports whether phrase is a complete BIP39 mnemonic with a
// matching checksum.
func Validate(phrase string) bool {
	return bip39.IsMnemonicValid(phrase)
}
