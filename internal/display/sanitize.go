package display

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sanitize makes text read from searched files safe to print by replacing
// control characters and invalid UTF-8 bytes with visible escapes.
// Tabs and newlines are kept.
//
//	"hi\x1b[31mred" -> `hi\x1b[31mred`
//	"bad:\xff"      -> `bad:\xff`
//	"a\u2028b"    -> `a\u2028b`
func Sanitize(s string) string {
	if !needsEscape(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			fmt.Fprintf(&b, `\x%02x`, s[i])
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case isEscaped(r):
			writeEscapedRune(&b, r)
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func needsEscape(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return true
		}
		if r != '\n' && r != '\t' && isEscaped(r) {
			return true
		}
		i += size
	}
	return false
}

// isEscaped reports runes that must not reach the terminal raw: C0/C1
// controls plus the Unicode line and paragraph separators.
func isEscaped(r rune) bool {
	return unicode.IsControl(r) || r == '\u2028' || r == '\u2029'
}

func writeEscapedRune(b *strings.Builder, r rune) {
	switch {
	case r <= 0xff:
		fmt.Fprintf(b, `\x%02x`, r)
	case r <= 0xffff:
		fmt.Fprintf(b, `\u%04x`, r)
	default:
		fmt.Fprintf(b, `\U%08x`, r)
	}
}
