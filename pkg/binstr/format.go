package binstr

import (
	"fmt"
	"strings"
)

// FormatSize - default max length of the text rendered by Parsef
const FormatSize = 2048

// Parsef renders format with args (fmt verbs) and parses the result:
//
//	n, err := binstr.Parsef(buf, "0b1 {6}%d 0b1", 0x15) // 1 010101 1
func Parsef(buf []byte, format string, args ...any) (int, error) {
	return DefaultParser.Parsef(buf, format, args...)
}

func (p *Parser) Parsef(buf []byte, format string, args ...any) (int, error) {
	text, err := p.render(format, args...)
	if err != nil {
		p.Log.Debug().Err(err).Str("format", format).Msg("[binstr] render")
		return -1, err
	}
	return p.Parse(text, buf)
}

func (p *Parser) render(format string, args ...any) (string, error) {
	text := fmt.Sprintf(format, args...)

	// fmt reports bad verbs, missing and extra args inline, but string args
	// may carry "%!" too, so look for the markers in a render without them
	if strings.Contains(text, "%!") {
		if err := checkFormat(format, args); err != nil {
			return "", err
		}
	}

	size := p.FormatSize
	if size <= 0 {
		size = FormatSize
	}
	if len(text) > size {
		return "", fmt.Errorf("%w: %d > %d", ErrFormatOverflow, len(text), size)
	}

	return text, nil
}

func checkFormat(format string, args []any) error {
	masked := make([]any, len(args))
	for i, arg := range args {
		switch arg.(type) {
		case string, []byte:
			masked[i] = hiddenArg{arg}
		default:
			masked[i] = arg
		}
	}

	text := fmt.Sprintf(format, masked...)

	i := strings.Index(text, "%!")
	if i < 0 {
		return nil
	}
	j := strings.IndexByte(text[i:], ')')
	if j < 0 {
		j = len(text) - i - 1
	}
	return fmt.Errorf("%w: %s", ErrFormat, text[i:i+j+1])
}

// hiddenArg renders nothing for the verbs valid for strings
// and a fmt like marker for the others
type hiddenArg struct {
	v any
}

func (a hiddenArg) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'q', 'v', 'x', 'X':
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(%T)", verb, a.v)
	}
}
