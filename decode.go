package marc21

import (
	"bytes"
	"html"

	"github.com/victoriamorris/marc21/charset"
)

// DecodeOptions configures a single Decode call. The zero value decodes
// with a strict UTF-8 character decoder.
type DecodeOptions struct {
	// CharDecoder converts raw field bytes to text. Defaults to
	// charset.UTF8Decoder{} when nil.
	CharDecoder charset.Decoder
}

func (o DecodeOptions) decoder() charset.Decoder {
	if o.CharDecoder != nil {
		return o.CharDecoder
	}
	return charset.UTF8Decoder{}
}

// decodeDiagnostic is a non-fatal condition surfaced during Decode: a
// directory/field-body count mismatch, or a single subfield that failed
// to decode. Unlike validation Diagnostics (schema-driven), these come
// straight from the codec and are returned alongside a successfully
// decoded record rather than failing it.
type decodeDiagnostic struct {
	Tag     Tag
	Message string
}

// DecodeResult is the outcome of a single Decode call: the record, plus
// any non-fatal diagnostics encountered while building it.
type DecodeResult struct {
	Record      *Record
	Diagnostics []string
}

// Decode parses one complete record (leader + directory + field area,
// terminated by END_OF_RECORD) out of b.
func Decode(b []byte, opts DecodeOptions) (*DecodeResult, error) {
	if len(b) < 5 || !isAllDigits(b[0:5]) {
		return nil, wrapf(ErrRecordLength, "first 5 bytes %q", safeSlice(b, 0, 5))
	}
	recordLength, err := atoi(b[0:5])
	if err != nil {
		return nil, wrapf(ErrRecordLength, "parsing %q", b[0:5])
	}
	if recordLength > maxRecordLength {
		return nil, wrapf(ErrRecordLength, "declared length %d exceeds %d", recordLength, maxRecordLength)
	}

	if len(b) < LeaderSize {
		return nil, wrapf(ErrLeader, "got %d bytes", len(b))
	}
	leader := NewLeader(b[0:LeaderSize])

	baseAddress, err := leader.BaseAddress()
	if err != nil {
		return nil, wrapf(ErrBaseAddress, "parsing leader bytes 12-16 %q", b[12:17])
	}
	if baseAddress <= 0 {
		return nil, wrapf(ErrBaseAddress, "base address %d", baseAddress)
	}
	if baseAddress >= recordLength {
		return nil, wrapf(ErrBaseAddressLength, "base address %d >= record length %d", baseAddress, recordLength)
	}

	dirBytes := b[LeaderSize : baseAddress-1]
	type dirEntry struct {
		tag    Tag
		length int
		offset int
	}
	var entries []dirEntry
	for i := 0; i+12 <= len(dirBytes); i += 12 {
		entry := dirBytes[i : i+12]
		length, lerr := atoi(entry[3:7])
		offset, oerr := atoi(entry[7:12])
		if lerr != nil || oerr != nil {
			continue
		}
		entries = append(entries, dirEntry{
			tag:    Tag(entry[0:3]),
			length: length,
			offset: offset,
		})
	}

	fieldAreaEnd := recordLength - 1
	if fieldAreaEnd > len(b) {
		fieldAreaEnd = len(b)
	}
	if fieldAreaEnd < baseAddress {
		fieldAreaEnd = baseAddress
	}
	fieldArea := b[baseAddress:fieldAreaEnd]
	bodies := bytes.Split(fieldArea, []byte{endOfField})
	// A well-formed field area ends in END_OF_FIELD, so splitting on it
	// always yields one trailing empty body; drop it if present.
	if len(bodies) > 0 && len(bodies[len(bodies)-1]) == 0 {
		bodies = bodies[:len(bodies)-1]
	}

	var diags []string
	if len(bodies) != len(entries) {
		diags = append(diags, "directory entry count disagrees with field body count")
	}

	rec := NewRecord(leader)
	dec := opts.decoder()

	n := len(entries)
	if len(bodies) < n {
		n = len(bodies)
	}
	for i := 0; i < n; i++ {
		tag := entries[i].tag
		body := bodies[i]
		if tag.IsNumeric() && tag.numericLessThan10() {
			text, derr := dec.Decode(body)
			if derr != nil {
				diags = append(diags, "field "+tag.String()+": "+derr.Error())
				continue
			}
			rec.AddField(ControlField{Tag: tag, Data: text})
			continue
		}
		if tag.IsAlephLocal() && tag == "WII" {
			continue
		}
		df, fdiags := decodeDataField(tag, body, dec)
		diags = append(diags, fdiags...)
		rec.AddField(df)
	}

	if len(rec.Fields) == 0 {
		return nil, ErrNoFields
	}

	return &DecodeResult{Record: rec, Diagnostics: diags}, nil
}

func (t Tag) numericLessThan10() bool {
	n, ok := t.numericValue()
	return ok && n < 10
}

func decodeDataField(tag Tag, body []byte, dec charset.Decoder) (DataField, []string) {
	var diags []string
	df := DataField{Tag: tag, Indicator1: ' ', Indicator2: ' '}
	if len(body) >= 1 {
		df.Indicator1 = normalizeIndicatorByte(body[0])
	}
	if len(body) >= 2 {
		df.Indicator2 = normalizeIndicatorByte(body[1])
	}

	chunks := bytes.Split(body, []byte{subfieldMarker})
	// chunks[0] is the two-byte indicator prefix (plus anything stray
	// before the first delimiter); it carries no subfield.
	for _, chunk := range chunks[min(1, len(chunks)):] {
		if len(chunk) == 0 {
			continue
		}
		code := chunk[0]
		if code > 0x7f {
			diags = append(diags, "field "+tag.String()+": subfield code is not valid ASCII")
			continue
		}
		value, err := dec.Decode(chunk[1:])
		if err != nil {
			diags = append(diags, "field "+tag.String()+": subfield "+string(code)+": "+err.Error())
			continue
		}
		value = html.UnescapeString(value)
		df.SubFields = append(df.SubFields, SubField{Code: code, Value: value})
	}
	return df, diags
}

func safeSlice(b []byte, lo, hi int) []byte {
	if hi > len(b) {
		hi = len(b)
	}
	if lo > hi {
		lo = hi
	}
	return b[lo:hi]
}
