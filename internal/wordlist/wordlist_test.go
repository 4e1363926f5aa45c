package wordlist

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnglishBijection(t *testing.T) {
	wl := English()
	require.Equal(t, Size, wl.Len())

	for i := 0; i < wl.Len(); i++ {
		idx, err := wl.IndexOf(wl.WordAt(i))
		require.NoError(t, err)
		require.Equal(t, i, idx)
	}
}

func TestEnglishKnownWords(t *testing.T) {
	wl := English()
	assert.Equal(t, "abandon", wl.WordAt(0))
	assert.Equal(t, "zoo", wl.WordAt(Size-1))

	idx, err := wl.IndexOf("about")
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
}

func TestIndexOfUnknownWord(t *testing.T) {
	_, err := English().IndexOf("notaword")
	assert.True(t, errors.Is(err, ErrWordNotFound))
	assert.Contains(t, err.Error(), "notaword")
}

func TestForLanguage(t *testing.T) {
	wl, err := ForLanguage("English")
	require.NoError(t, err)
	assert.Equal(t, English(), wl)

	_, err = ForLanguage("klingon")
	assert.True(t, errors.Is(err, ErrUnsupportedLanguage))
}
