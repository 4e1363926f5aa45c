package wordlist

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39/wordlists"
)

// Size is the number of words in a BIP39 wordlist
const Size = 2048

// ErrWordNotFound is returned when a word is not part of the wordlist
var ErrWordNotFound = errors.New("word is not in the BIP39 wordlist")

// ErrUnsupportedLanguage is returned for languages without a wordlist
var ErrUnsupportedLanguage = errors.New("unsupported wordlist language")

//go:generate mockgen -package=mocks -destination=mocks/mock_wordlist.go github.com/KirkDiggler/bip39dice/internal/wordlist Wordlist

// Wordlist maps 11-bit indices to words and back
type Wordlist interface {
	// WordAt returns the word stored at index
	WordAt(index int) string

	// IndexOf returns the index of word, or ErrWordNotFound
	IndexOf(word string) (int, error)

	// Len returns the number of words
	Len() int
}

// table is an immutable wordlist with its reverse lookup
type table struct {
	words   []string
	indices map[string]int
}

var english *table

func init() {
	english = newTable(wordlists.English)
	if english.Len() != Size || len(english.indices) != Size {
		panic("bip39 english wordlist lookup table is wrong size!")
	}
}

func newTable(words []string) *table {
	t := &table{
		words:   make([]string, len(words)),
		indices: make(map[string]int, len(words)),
	}
	copy(t.words, words)
	for idx, word := range t.words {
		t.indices[word] = idx
	}
	return t
}

// English returns the English BIP39 wordlist
func English() Wordlist {
	return english
}

// Languages lists the names accepted by ForLanguage
var Languages = []string{"english"}

// ForLanguage returns the wordlist for a language name, ignoring case
func ForLanguage(name string) (Wordlist, error) {
	switch strings.ToLower(name) {
	case "english":
		return english, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedLanguage, "%q", name)
	}
}

func (t *table) WordAt(index int) string {
	return t.words[index]
}

func (t *table) IndexOf(word string) (int, error) {
	idx, ok := t.indices[word]
	if !ok {
		return 0, errors.Wrapf(ErrWordNotFound, "%q", word)
	}
	return idx, nil
}

func (t *table) Len() int {
	return len(t.words)
}
