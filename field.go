package marc21

import "strings"

const (
	subfieldMarker byte = 0x1f
	endOfField     byte = 0x1e
	endOfRecord    byte = 0x1d
)

// SubField is a (code, value) pair introduced by SUBFIELD_MARKER inside a
// data field body.
type SubField struct {
	Code  byte
	Value string
}

// Field is implemented by ControlField and DataField. A Record holds an
// ordered list of Fields; a Field never references its owning Record.
type Field interface {
	FieldTag() Tag
	// Text returns the field's text content restricted to codes (for a
	// data field) or the whole body (for a control field). An empty
	// codes string means "all subfields" for a data field.
	Text(codes string) string
}

// ControlField is a tag < 010 (plus the Aleph WII tag): raw text, no
// indicators, no subfields.
type ControlField struct {
	Tag  Tag
	Data string
}

// FieldTag implements Field.
func (f ControlField) FieldTag() Tag { return f.Tag }

// Text returns the control field's raw data with embedded spaces shown
// as '#'. codes is ignored; control fields have no subfields to filter by.
func (f ControlField) Text(string) string {
	return blankToHash(f.Data)
}

// DataField is a tag >= 010: two indicators and an ordered list of
// subfields.
type DataField struct {
	Tag        Tag
	Indicator1 byte
	Indicator2 byte
	SubFields  []SubField
}

// FieldTag implements Field.
func (f DataField) FieldTag() Tag { return f.Tag }

// GetSubFields returns subfield values in subfield order. With no codes
// given, every subfield's value is returned.
func (f DataField) GetSubFields(codes ...byte) []string {
	var out []string
	for _, sf := range f.SubFields {
		if len(codes) == 0 || containsByte(codes, sf.Code) {
			out = append(out, sf.Value)
		}
	}
	return out
}

// Text space-joins subfield values: all of them if codes is empty,
// otherwise only those whose code appears in codes.
func (f DataField) Text(codes string) string {
	var vals []string
	if codes == "" {
		vals = f.GetSubFields()
	} else {
		vals = f.GetSubFields([]byte(codes)...)
	}
	return strings.Join(vals, " ")
}

// SubFieldCodes concatenates this field's subfield codes in order, the
// string the validation engine matches against a tag's subfield regex.
func (f DataField) SubFieldCodes() string {
	var b strings.Builder
	for _, sf := range f.SubFields {
		b.WriteByte(sf.Code)
	}
	return b.String()
}

func containsByte(set []byte, b byte) bool {
	for _, c := range set {
		if c == b {
			return true
		}
	}
	return false
}
