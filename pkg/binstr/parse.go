package binstr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlexxIT/binstr/pkg/bits"
	"github.com/rs/zerolog"
)

var (
	ErrParse          = errors.New("binstr: parse error")
	ErrDigit          = fmt.Errorf("%w: invalid digit", ErrParse)
	ErrDecimalLength  = fmt.Errorf("%w: decimal needs {length} from 0 to 64", ErrParse)
	ErrOverflow       = fmt.Errorf("%w: buffer too small", ErrParse)
	ErrFormat         = errors.New("binstr: format error")
	ErrFormatOverflow = errors.New("binstr: formatted text too long")
)

// Parser - stateless between calls, safe for concurrent use with different buffers
type Parser struct {
	// FormatSize - max length of rendered text for Parsef, FormatSize if zero
	FormatSize int

	Log zerolog.Logger
}

var DefaultParser = &Parser{Log: zerolog.Nop()}

// Parse packs text into buf and returns the number of bits written.
// Returns -1 and an error wrapping ErrParse on any failure; bits written
// before the failure stay in buf.
func Parse(text string, buf []byte) (int, error) {
	return DefaultParser.Parse(text, buf)
}

func (p *Parser) Parse(text string, buf []byte) (int, error) {
	b := bits.NewBuffer(buf)

	var offset int

	for i, line := range strings.Split(text, "\n") {
		line = strings.Trim(line, " \t\r\n")
		if line == "" {
			continue
		}

		for _, s := range strings.Split(line, " ") {
			if s == "" {
				continue
			}
			// rest of the line is a comment
			if s[0] == '#' {
				break
			}

			n, err := p.writeItem(b, offset, s)
			if err != nil {
				p.Log.Debug().Err(err).Int("line", i+1).Str("item", s).Int("offset", offset).Msg("[binstr] parse")
				return -1, fmt.Errorf("binstr: line %d item %q: %w", i+1, s, err)
			}

			p.Log.Trace().Int("line", i+1).Str("item", s).Int("bits", n).Send()
			offset += n
		}
	}

	// offset always fits, so Align can't fail
	_ = b.Align(offset)

	return offset, nil
}

func (p *Parser) writeItem(b *bits.Buffer, offset int, s string) (int, error) {
	it := parseItem(s)

	var total int
	for j := 0; j < it.repeat; j++ {
		n, err := writeNumeral(b, offset+total, it.numeral, it.length)
		if err != nil {
			if errors.Is(err, bits.ErrOverflow) {
				err = ErrOverflow
			}
			return 0, err
		}
		if n == 0 {
			// all repeats will be empty
			break
		}
		total += n
	}
	return total, nil
}
