package checkwords

// bitWriter packs big-endian bit fields into bytes
type bitWriter struct {
	bytes []byte
	acc   uint32
	nbits uint
}

func newBitWriter(capacity int) *bitWriter {
	return &bitWriter{bytes: make([]byte, 0, capacity)}
}

// write appends the low width bits of value, most significant bit first.
// width must not exceed 16.
func (w *bitWriter) write(width uint, value uint16) {
	w.acc = w.acc<<width | uint32(value)&(1<<width-1)
	w.nbits += width
	for w.nbits >= 8 {
		w.nbits -= 8
		w.bytes = append(w.bytes, byte(w.acc>>w.nbits))
	}
	w.acc &= 1<<w.nbits - 1
}

// byteAligned reports whether no partial byte is pending
func (w *bitWriter) byteAligned() bool {
	return w.nbits == 0
}

func (w *bitWriter) Bytes() []byte {
	return w.bytes
}
