package matcher

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// SplitLines decodes data as UTF-8 and splits it into lines.
//
// Invalid byte sequences are dropped rather than reported. "\r\n", "\r" and
// "\n" each end a line and are not part of the returned text; a terminator at
// the very end of data does not start an extra empty line.
func SplitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	text := string(data)
	if !utf8.Valid(data) {
		text = strings.ToValidUTF8(text, "")
	}

	lines := make([]string, 0, bytes.Count(data, newlineByte)+1)
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// newlineByte avoids allocating []byte{'\n'} on every call to bytes.Count.
var newlineByte = []byte{'\n'}
