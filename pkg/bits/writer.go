package bits

import "errors"

var (
	ErrOverflow = errors.New("bits: write out of buffer range")
	ErrWidth    = errors.New("bits: more than 8 bits per write")
)

// Buffer - fixed size, bit addressed view of a caller owned byte slice.
// Bits are numbered from the most significant bit of buf[0].
type Buffer struct {
	buf []byte // total buf, never reallocated
}

func NewBuffer(b []byte) *Buffer {
	return &Buffer{buf: b}
}

// Len - capacity in bits
func (b *Buffer) Len() int {
	return len(b.buf) * 8
}

func (b *Buffer) Bytes() []byte {
	return b.buf
}

// WriteBits8 - write n least significant bits of v at bit offset.
// Bits outside the span are kept as is.
func (b *Buffer) WriteBits8(offset int, v, n byte) error {
	if n == 0 {
		return nil
	}
	if n > 8 {
		return ErrWidth
	}
	if offset < 0 || offset+int(n) > b.Len() {
		return ErrOverflow
	}

	i := offset / 8
	mask := byte(uint16(1)<<n - 1)
	v &= mask

	shift := 8 - int(n) - offset%8
	if shift >= 0 {
		m := mask << shift
		b.buf[i] = b.buf[i]&^m | v<<shift
		return nil
	}

	// span crosses byte boundary: high part to the first byte
	rshift := -shift
	m := mask >> rshift
	b.buf[i] = b.buf[i]&^m | v>>rshift

	lshift := 8 - rshift
	m = mask << lshift
	b.buf[i+1] = b.buf[i+1]&^m | v<<lshift
	return nil
}

// Align - zero bits from offset up to the next byte boundary
func (b *Buffer) Align(offset int) error {
	if n := offset % 8; n != 0 {
		return b.WriteBits8(offset, 0, byte(8-n))
	}
	return nil
}
