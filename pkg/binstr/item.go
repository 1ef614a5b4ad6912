package binstr

import "strconv"

// scanPrefix reads an "<open><int><end>" prefix from the start of s.
// It mimics "%d" scanning: ok is true when the integer was read, size is
// non zero only when the end char follows it. Malformed prefixes are
// not errors, the caller falls back to defaults.
func scanPrefix(s string, open, end byte, signed bool) (value int, size int, ok bool) {
	if len(s) < 2 || s[0] != open {
		return
	}

	i := 1
	if signed && (s[i] == '-' || s[i] == '+') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return
	}

	v, err := strconv.Atoi(s[1:j])
	if err != nil {
		return
	}

	if j < len(s) && s[j] == end {
		return v, j + 1, true
	}
	return v, 0, true
}

// item - one space delimited token: [*repeat*][{length}]numeral
type item struct {
	repeat  int
	length  int // -1 if not set
	numeral string
}

func parseItem(s string) item {
	it := item{repeat: 1, length: -1}

	if v, n, ok := scanPrefix(s, '*', '*', true); ok {
		it.repeat = v
		s = s[n:]
	}

	if v, n, ok := scanPrefix(s, '{', '}', false); ok {
		it.length = v
		s = s[n:]
	}

	it.numeral = s
	return it
}
