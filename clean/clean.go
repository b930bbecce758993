// Package clean implements a free-text sanitizer: quote normalization,
// control-character stripping, leading/trailing punctuation trimming,
// whitespace collapsing, and Unicode NFC normalization.
package clean

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// quoteLike is the set of code points mapped to a plain apostrophe.
var quoteLike = map[rune]bool{
	0x0022: true, 0x055A: true, 0x05F4: true,
	0x2018: true, 0x2019: true, 0x201A: true, 0x201B: true,
	0x201C: true, 0x201D: true, 0x201E: true, 0x201F: true,
	0x275B: true, 0x275C: true, 0x275D: true, 0x275E: true,
	0xFF07: true,
}

func isStrippedControl(r rune) bool {
	switch {
	case r >= 0x0000 && r <= 0x001F:
		return true
	case r >= 0x0080 && r <= 0x009F:
		return true
	case r == 0x2028, r == 0x2029:
		return true
	default:
		return false
	}
}

const leadingStrip = ":;/\t\n\v\f\r ?$.,]})"
const trailingStrip = ";/\t\n\v\f\r $.,[({"

// Clean strips leading/trailing punctuation and blanks, normalizes
// curly quotes and whitespace, strips control characters, and applies
// NFC normalization to s, returning "absent" if nothing survives.
func Clean(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case quoteLike[r]:
			b.WriteRune('\'')
		case isStrippedControl(r):
			// drop
		default:
			b.WriteRune(r)
		}
	}
	out := b.String()

	out = strings.TrimLeft(out, leadingStrip)
	out = strings.TrimRight(out, trailingStrip)

	out = collapseWhitespace(out)
	out = strings.TrimSpace(out)

	out = norm.NFC.String(out)

	if out == "" {
		return "absent"
	}
	return out
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
