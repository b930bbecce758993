package marc21

import "bytes"

// Encode serializes r to MARC21 binary form: field bodies are
// concatenated into the field area, a directory is built alongside it,
// and the leader's length-bearing positions are rewritten.
func Encode(r *Record) ([]byte, error) {
	if r == nil {
		return nil, ErrWriteNeedsRecord
	}

	var fieldArea bytes.Buffer
	var directory bytes.Buffer

	for _, f := range r.Fields {
		offset := fieldArea.Len()
		switch field := f.(type) {
		case ControlField:
			fieldArea.WriteString(field.Data)
			fieldArea.WriteByte(endOfField)
		case DataField:
			fieldArea.WriteByte(normalizeIndicatorByte(field.Indicator1))
			fieldArea.WriteByte(normalizeIndicatorByte(field.Indicator2))
			for _, sf := range field.SubFields {
				fieldArea.WriteByte(subfieldMarker)
				fieldArea.WriteByte(sf.Code)
				fieldArea.WriteString(sf.Value)
			}
			fieldArea.WriteByte(endOfField)
		default:
			continue
		}
		length := fieldArea.Len() - offset
		directory.WriteString(directoryEntry(f.FieldTag(), length, offset))
	}
	directory.WriteByte(endOfField)
	fieldArea.WriteByte(endOfRecord)

	baseAddress := LeaderSize + directory.Len()
	recordLength := baseAddress + fieldArea.Len()

	leader := r.Leader.withEncodedLengths(recordLength, baseAddress)

	var out bytes.Buffer
	out.Write(leader.Bytes())
	out.Write(directory.Bytes())
	out.Write(fieldArea.Bytes())
	return out.Bytes(), nil
}

// directoryEntry formats one 12-byte directory entry: 3-byte tag,
// 4-byte length, 5-byte offset.
func directoryEntry(tag Tag, length, offset int) string {
	t := string(tag)
	for len(t) < 3 {
		t = " " + t
	}
	if len(t) > 3 {
		t = t[:3]
	}
	return t + pad4(length) + pad5(offset)
}

func pad4(n int) string {
	s := itoa(n)
	for len(s) < 4 {
		s = "0" + s
	}
	if len(s) > 4 {
		s = s[len(s)-4:]
	}
	return s
}
