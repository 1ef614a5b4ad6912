package binstr

import (
	"strconv"

	"github.com/AlexxIT/binstr/pkg/bits"
)

const (
	baseDecimal = 0
	baseBinary  = 1 // bits per digit
	baseOctal   = 3
	baseHex     = 4
)

// numeralBase returns bits per digit and the index of the first digit
func numeralBase(s string) (base int, start int) {
	if len(s) > 1 && s[0] == '0' {
		switch c := s[1]; {
		case c == 'x':
			return baseHex, 2
		case c == 'b':
			return baseBinary, 2
		case c >= '0' && c <= '7':
			return baseOctal, 1
		}
	}
	return baseDecimal, 0
}

func digitValue(c byte, base int) (byte, bool) {
	switch base {
	case baseBinary:
		if c == '0' || c == '1' {
			return c - '0', true
		}
	case baseOctal:
		if c >= '0' && c <= '7' {
			return c - '0', true
		}
	case baseHex:
		switch {
		case c >= '0' && c <= '9':
			return c - '0', true
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10, true
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10, true
		}
	}
	return 0, false
}

// writeNumeral packs numeral s at bit offset and returns the number of bits written.
// bitlen < 0 means the natural length of the numeral.
func writeNumeral(b *bits.Buffer, offset int, s string, bitlen int) (int, error) {
	base, start := numeralBase(s)
	if base == baseDecimal {
		return writeDecimal(b, offset, s, bitlen)
	}

	natural := (len(s) - start) * base
	if bitlen < 0 {
		bitlen = natural
	}

	var n int

	// prepend with zeros
	for ; bitlen-n > natural; n++ {
		if err := b.WriteBits8(offset+n, 0, 1); err != nil {
			return 0, err
		}
	}

	// bits to drop from the most significant end
	drop := natural - bitlen
	if drop < 0 {
		drop = 0
	}

	for i := start; i < len(s); i++ {
		v, ok := digitValue(s[i], base)
		if !ok {
			return 0, ErrDigit
		}

		size := base
		if drop > 0 {
			d := drop
			if d > size {
				d = size
			}
			size -= d
			drop -= d
		}

		if err := b.WriteBits8(offset+n, v, byte(size)); err != nil {
			return 0, err
		}
		n += size
	}

	return n, nil
}

func writeDecimal(b *bits.Buffer, offset int, s string, bitlen int) (int, error) {
	if bitlen < 0 || bitlen > 64 {
		return 0, ErrDecimalLength
	}

	value, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ErrDigit
	}

	var n int

	// up to 8 bits at a time, most significant first
	for i := bitlen; i > 0; i -= 8 {
		size := 8
		if i < 8 {
			size = i
		}
		v := byte(value >> (i - size))
		if err = b.WriteBits8(offset+n, v, byte(size)); err != nil {
			return 0, err
		}
		n += size
	}

	return n, nil
}
