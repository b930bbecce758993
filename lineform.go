package marc21

import (
	"strings"
)

// String renders r in the standard line form: one line per field,
// `=TAG  subfields`, with blanks shown as '#'. This is a write-only
// approximation of the binary form; only FromString parses it back.
func (r *Record) String() string {
	var b strings.Builder
	b.WriteString("=LDR  ")
	b.WriteString(blankToHash(r.Leader.String()))
	b.WriteByte('\n')
	for _, f := range r.Fields {
		b.WriteString(fieldLine(f))
		b.WriteByte('\n')
	}
	return b.String()
}

func fieldLine(f Field) string {
	switch field := f.(type) {
	case ControlField:
		return "=" + field.Tag.String() + "  " + blankToHash(field.Data)
	case DataField:
		var b strings.Builder
		b.WriteByte('=')
		b.WriteString(field.Tag.String())
		b.WriteString("  ")
		b.WriteByte(hashIfBlank(field.Indicator1))
		b.WriteByte(hashIfBlank(field.Indicator2))
		for _, sf := range field.SubFields {
			b.WriteByte('$')
			b.WriteByte(sf.Code)
			b.WriteString(sf.Value)
		}
		return b.String()
	default:
		return ""
	}
}

func hashIfBlank(b byte) byte {
	if b == ' ' {
		return '#'
	}
	return b
}

// FromString parses the standard line form written by String back into
// a Record.
func FromString(s string) (*Record, error) {
	rec := &Record{}
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		line = strings.TrimPrefix(line, "=")
		if len(line) <= 3 {
			continue
		}
		tag := line[0:3]
		if tag == "LDR" {
			rest := strings.TrimSpace(line[3:])
			rec.Leader = NewLeader([]byte(hashToBlank(rest)))
			continue
		}
		if tag == "WII" {
			continue
		}
		if len(line) < 5 {
			continue
		}
		body := line[5:]
		t := NewTag(tag)
		if t.IsControl() {
			rec.AddField(ControlField{Tag: t, Data: hashToBlank(body)})
			continue
		}
		i1, i2 := byte(' '), byte(' ')
		if len(body) >= 1 {
			i1 = normalizeIndicatorByte(hashToBlankByte(body[0]))
		}
		if len(body) >= 2 {
			i2 = normalizeIndicatorByte(hashToBlankByte(body[1]))
		}
		rest := ""
		if len(body) > 2 {
			rest = body[2:]
		}
		df := DataField{Tag: t, Indicator1: i1, Indicator2: i2}
		for _, chunk := range strings.Split(rest, "$") {
			if len(chunk) == 0 {
				continue
			}
			df.SubFields = append(df.SubFields, SubField{Code: chunk[0], Value: chunk[1:]})
		}
		rec.AddField(df)
	}
	return rec, nil
}

// ToMRCString renders r in the Aleph MRC line form: fixed
// columns, double-dollar subfield delimiter, the write side of
// FromMRCString.
func (r *Record) ToMRCString() string {
	var b strings.Builder
	b.WriteString("LDR     ")
	b.WriteString(r.Leader.String())
	b.WriteByte('\n')
	for _, f := range r.Fields {
		b.WriteString(mrcFieldLine(f))
		b.WriteByte('\n')
	}
	return b.String()
}

func mrcFieldLine(f Field) string {
	switch field := f.(type) {
	case ControlField:
		return field.Tag.String() + "     " + field.Data
	case DataField:
		var b strings.Builder
		b.WriteString(field.Tag.String())
		b.WriteByte(field.Indicator1)
		b.WriteByte(field.Indicator2)
		b.WriteString("     ")
		for _, sf := range field.SubFields {
			b.WriteString("$$")
			b.WriteByte(sf.Code)
			b.WriteString(sf.Value)
		}
		return b.String()
	default:
		return ""
	}
}

func hashToBlankByte(b byte) byte {
	if b == '#' || b == '^' {
		return ' '
	}
	return b
}

// FromMRCString parses the "Aleph MRC" line form: fixed columns,
// double-dollar subfield delimiter, '^' as blank sentinel. Records
// parsed this way have OriginalFormat set to "Aleph".
func FromMRCString(s string) (*Record, error) {
	rec := &Record{OriginalFormat: "Aleph"}
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) < 3 {
			continue
		}
		tag := line[0:3]
		if tag == "LDR" {
			if len(line) <= 8 {
				continue
			}
			rec.Leader = NewLeader([]byte(hashToBlank(line[8:])))
			continue
		}
		t := NewTag(tag)
		if t.IsControl() {
			if len(line) <= 8 {
				rec.AddField(ControlField{Tag: t, Data: ""})
				continue
			}
			rec.AddField(ControlField{Tag: t, Data: hashToBlank(strings.ReplaceAll(line[8:], "^", " "))})
			continue
		}
		if len(line) < 10 {
			continue
		}
		i1, i2 := byte(' '), byte(' ')
		if len(line) >= 4 {
			i1 = normalizeIndicatorByte(hashToBlankByte(line[3]))
		}
		if len(line) >= 5 {
			i2 = normalizeIndicatorByte(hashToBlankByte(line[4]))
		}
		body := line[10:]
		df := DataField{Tag: t, Indicator1: i1, Indicator2: i2}
		for _, chunk := range strings.Split(body, "$$") {
			if len(chunk) == 0 {
				continue
			}
			df.SubFields = append(df.SubFields, SubField{Code: chunk[0], Value: chunk[1:]})
		}
		rec.AddField(df)
	}
	return rec, nil
}
