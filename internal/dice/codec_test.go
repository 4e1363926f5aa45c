package dice

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiceBoundaries(t *testing.T) {
	idx, err := DiceToIndex("11111")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = DiceToIndex(MaxRoll)
	require.NoError(t, err)
	assert.Equal(t, 7775, idx)

	roll, err := IndexToDice(0)
	require.NoError(t, err)
	assert.Equal(t, "11111", roll)

	roll, err = IndexToDice(7775)
	require.NoError(t, err)
	assert.Equal(t, "66666", roll)

	roll, err = IndexToDice(6)
	require.NoError(t, err)
	assert.Equal(t, "11121", roll)
}

func TestIndexRoundTrip(t *testing.T) {
	for i := 0; i < Combinations; i++ {
		roll, err := IndexToDice(i)
		require.NoError(t, err)
		require.Len(t, roll, Digits)

		got, err := DiceToIndex(roll)
		require.NoError(t, err)
		require.Equal(t, i, got)
	}
}

func TestRollRoundTrip(t *testing.T) {
	faces := "123456"
	count := 0
	for _, a := range faces {
		for _, b := range faces {
			for _, c := range faces {
				for _, d := range faces {
					for _, e := range faces {
						roll := string([]rune{a, b, c, d, e})
						idx, err := DiceToIndex(roll)
						require.NoError(t, err)
						back, err := IndexToDice(idx)
						require.NoError(t, err)
						require.Equal(t, roll, back)
						count++
					}
				}
			}
		}
	}
	assert.Equal(t, Combinations, count)
}

func TestDiceToIndexRejectsBadInput(t *testing.T) {
	tests := []struct {
		roll string
		err  error
	}{
		{"11110", ErrInvalidDiceCharacter},
		{"7aaaa", ErrInvalidDiceCharacter},
		{"1234x", ErrInvalidDiceCharacter},
		{"1234", ErrInvalidDiceLength},
		{"123456", ErrInvalidDiceLength},
		{"", ErrInvalidDiceLength},
	}

	for _, tt := range tests {
		t.Run(tt.roll, func(t *testing.T) {
			_, err := DiceToIndex(tt.roll)
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}
}

func TestIndexToDiceRejectsOutOfRange(t *testing.T) {
	_, err := IndexToDice(-1)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	_, err = IndexToDice(Combinations)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestBiasCutoff(t *testing.T) {
	assert.Equal(t, 6144, UsableMax(2048))
	assert.True(t, InBounds(0, 2048))
	assert.True(t, InBounds(6143, 2048))
	for i := 6144; i < Combinations; i++ {
		assert.False(t, InBounds(i, 2048), "index %d", i)

		// still decodes fine
		_, err := IndexToDice(i)
		assert.NoError(t, err)
	}
}
