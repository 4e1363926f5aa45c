package checkwords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitWriterPacksBigEndian(t *testing.T) {
	w := newBitWriter(3)
	w.write(11, 0x7ff)
	assert.False(t, w.byteAligned())
	w.write(11, 0)
	assert.False(t, w.byteAligned())
	w.write(2, 0x3)
	assert.True(t, w.byteAligned())

	// 11111111 111 00000 000000 11
	assert.Equal(t, []byte{0xff, 0xe0, 0x03}, w.Bytes())
}

func TestBitWriterMasksValue(t *testing.T) {
	w := newBitWriter(1)
	w.write(4, 0xfa)
	w.write(4, 0x5)
	assert.Equal(t, []byte{0xa5}, w.Bytes())
}
