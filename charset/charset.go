// Package charset provides the pluggable character-decoding strategy
// used by the binary codec to turn raw field bytes into text. Two variants are implemented: strict UTF-8 and a
// MARC-8 variant driven by a caller-supplied transliteration table. The
// bulk ANSEL/MARC-8 -> Unicode table itself is out of scope; only
// the strategy object and the table plug point live here.
package charset

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidEncoding is returned when a field's bytes are not valid in
// the configured decoder.
var ErrInvalidEncoding = errors.New("charset: invalid byte sequence for decoder")

// Decoder converts raw field bytes into text. Implementations must be
// safe for concurrent use, since the schema/decoder pipeline may run
// against many records concurrently as long as each owns its own Record.
type Decoder interface {
	Decode(b []byte) (string, error)
}

// UTF8Decoder is the default variant: bytes must already be well-formed
// UTF-8. golang.org/x/text/encoding/unicode provides the strict UTF-8
// validator used here instead of a hand-rolled loop over
// utf8.DecodeRune.
type UTF8Decoder struct{}

var utf8Validator = unicode.UTF8.NewDecoder()

// Decode implements Decoder.
func (UTF8Decoder) Decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", errors.WithStack(ErrInvalidEncoding)
	}
	out, err := utf8Validator.Bytes(b)
	if err != nil {
		return "", errors.Wrap(ErrInvalidEncoding, err.Error())
	}
	return string(out), nil
}

// Table maps a single MARC-8 byte to its Unicode transliteration. A byte
// b is looked up under the key string(rune(b)), the UTF-8 form of its
// Latin-1 code point; multi-byte sequences are not looked up. The full
// ANSEL/MARC-8 table is an external collaborator; callers supply
// whatever subset they need.
type Table map[string]string

// MARC8Decoder transliterates MARC-8 bytes through a caller-supplied
// Table, falling back to passing a byte through unchanged (as its
// Latin-1 code point) when no table entry matches. The decoding
// strategy is implemented here; callers supply the actual ANSEL/MARC-8
// mapping data.
type MARC8Decoder struct {
	Table Table
}

// Decode implements Decoder.
func (d MARC8Decoder) Decode(b []byte) (string, error) {
	var out []rune
	for i := 0; i < len(b); i++ {
		if repl, ok := d.Table[string(b[i])]; ok {
			out = append(out, []rune(repl)...)
			continue
		}
		out = append(out, rune(b[i]))
	}
	return string(out), nil
}
