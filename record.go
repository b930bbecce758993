package marc21

import (
	"errors"
	"reflect"
	"strings"
)

// ErrFieldNotFound is returned by RemoveField when asked to remove a
// field that is not present.
var ErrFieldNotFound = errors.New("marc21: field not found")

// Record holds a Leader and an ordered list of Fields. A Record
// exclusively owns its Fields; it never shares them with another Record.
type Record struct {
	Leader Leader
	Fields []Field

	// Diagnostics caches the result of the last call to
	// schema.Validate(r); it is nil until validation has run once.
	// Record never computes it itself, to avoid a cyclic dependency
	// between this package and the schema package.
	Diagnostics *DiagnosticSet

	// OriginalFormat records which textual dialect, if any, a record was
	// parsed from. "" for records decoded from binary or built in
	// memory; "Aleph" for records parsed via FromMRCString.
	OriginalFormat string
}

// NewRecord returns an empty record with the given leader.
func NewRecord(l Leader) *Record {
	return &Record{Leader: l}
}

// AddField inserts f using the tag-ordered insertion rule:
// a numeric-tag field is inserted before the first existing field whose
// tag is non-numeric or whose numeric tag is strictly greater; a
// non-numeric-tag field is always appended.
func (r *Record) AddField(f Field) {
	tag := f.FieldTag()
	if !tag.IsNumeric() {
		r.Fields = append(r.Fields, f)
		return
	}
	for i, existing := range r.Fields {
		et := existing.FieldTag()
		if !et.IsNumeric() || tag.Less(et) {
			r.Fields = append(r.Fields, nil)
			copy(r.Fields[i+1:], r.Fields[i:])
			r.Fields[i] = f
			return
		}
	}
	r.Fields = append(r.Fields, f)
}

// RemoveField deletes the first field deeply equal to f. DataField holds
// a slice, making it an uncomparable type, so fields are compared with
// reflect.DeepEqual rather than ==.
// It returns ErrFieldNotFound if no such field is present.
func (r *Record) RemoveField(f Field) error {
	for i, existing := range r.Fields {
		if reflect.DeepEqual(existing, f) {
			r.Fields = append(r.Fields[:i], r.Fields[i+1:]...)
			return nil
		}
	}
	return ErrFieldNotFound
}

// GetFields returns every field whose tag matches any of tags, in
// record order. With no tags given, every field is returned. Requesting
// the pseudo-tag "LDR" appends the leader's string form to the result as
// a ControlField.
func (r *Record) GetFields(tags ...string) []Field {
	if len(tags) == 0 {
		out := make([]Field, len(r.Fields))
		copy(out, r.Fields)
		return out
	}
	var out []Field
	for _, t := range tags {
		if t == "LDR" {
			out = append(out, ControlField{Tag: "LDR", Data: r.Leader.String()})
			continue
		}
		want := NewTag(t)
		for _, f := range r.Fields {
			if f.FieldTag() == want {
				out = append(out, f)
			}
		}
	}
	return out
}

// GetField returns the first field matching tag, or nil if none does.
func (r *Record) GetField(tag string) Field {
	want := NewTag(tag)
	for _, f := range r.Fields {
		if f.FieldTag() == want {
			return f
		}
	}
	return nil
}

// HasField reports whether any field matches tag.
func (r *Record) HasField(tag string) bool {
	return r.GetField(tag) != nil
}

// ControlNumber returns the trimmed value of the record's 001 field, or
// "" if absent.
func (r *Record) ControlNumber() string {
	f := r.GetField("001")
	cf, ok := f.(ControlField)
	if !ok {
		return ""
	}
	return strings.TrimSpace(cf.Data)
}
