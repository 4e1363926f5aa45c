package checkwords

import (
	"crypto/sha256"
	"fmt"

	"github.com/pkg/errors"

	"github.com/KirkDiggler/bip39dice/internal/mnemonic"
	"github.com/KirkDiggler/bip39dice/internal/wordlist"
)

// Candidate is one possible final word of a mnemonic
type Candidate struct {
	// Nonce is the free high part of the final word's index
	Nonce int

	// Checksum is the checksum forced by the entropy for this nonce
	Checksum int

	// Index is the final word's wordlist index, nonce followed by checksum
	Index int

	// Word is the wordlist entry at Index
	Word string
}

// Config holds configuration for the solver
type Config struct {
	Wordlist wordlist.Wordlist
}

// Solver finds every final word that completes a mnemonic with a valid checksum
type Solver struct {
	wordlist wordlist.Wordlist
}

// New creates a new solver
func New(cfg *Config) (*Solver, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Wordlist == nil {
		return nil, ErrNilWordlist
	}
	return &Solver{wordlist: cfg.Wordlist}, nil
}

// SolveCheckwords solves words against the English wordlist
func SolveCheckwords(words []string, length mnemonic.Length) ([]string, error) {
	s := &Solver{wordlist: wordlist.English()}
	return s.Solve(words, length)
}

// Solve returns the candidate final words for words, ordered by nonce
func (s *Solver) Solve(words []string, length mnemonic.Length) ([]string, error) {
	candidates, err := s.Candidates(words, length)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Word
	}
	return out, nil
}

// Candidates returns every final word whose checksum matches the entropy
// formed by words and the word's own nonce bits. There are always
// 2^(11-checksum bits) of them, in ascending nonce order.
func (s *Solver) Candidates(words []string, length mnemonic.Length) ([]Candidate, error) {
	if _, err := mnemonic.ForWordCount(length.WordCount()); err != nil {
		return nil, err
	}
	if len(words) != length.WordCount()-1 {
		return nil, errors.Wrapf(ErrLengthMismatch, "got %d words for a %d word mnemonic", len(words), length.WordCount())
	}

	indices := make([]uint16, len(words))
	for i, word := range words {
		idx, err := s.wordlist.IndexOf(word)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidWord, "%q", word)
		}
		indices[i] = uint16(idx)
	}

	checkBits := uint(length.ChecksumBits())
	checkShift := 8 - checkBits
	checkMask := byte((1<<checkBits - 1) << checkShift)
	nonceBits := uint(mnemonic.BitsPerWord) - checkBits
	entropyBytes := length.EntropyBits() / 8

	maxNonce := 1 << nonceBits
	candidates := make([]Candidate, 0, maxNonce)
	for nonce := 0; nonce < maxNonce; nonce++ {
		w := newBitWriter(entropyBytes)
		for _, idx := range indices {
			w.write(mnemonic.BitsPerWord, idx)
		}
		w.write(nonceBits, uint16(nonce))
		if !w.byteAligned() {
			panic("checkwords: entropy is not byte aligned")
		}
		entropy := w.Bytes()
		if len(entropy) != entropyBytes {
			panic(fmt.Sprintf("checkwords: entropy is %d bytes, expected %d", len(entropy), entropyBytes))
		}

		hash := sha256.Sum256(entropy)
		checksum := int((hash[0] & checkMask) >> checkShift)
		index := nonce<<checkBits | checksum
		candidates = append(candidates, Candidate{
			Nonce:    nonce,
			Checksum: checksum,
			Index:    index,
			Word:     s.wordlist.WordAt(index),
		})
	}

	return candidates, nil
}
