package marc21

import "testing"

func TestControlFieldText(t *testing.T) {
	f := ControlField{Tag: "008", Data: "a b"}
	if got := f.Text(""); got != "a#b" {
		t.Errorf("Text = %q, want a#b", got)
	}
}

func TestDataFieldGetSubFields(t *testing.T) {
	f := DataField{
		Tag: "245",
		SubFields: []SubField{
			{Code: 'a', Value: "Title :"},
			{Code: 'b', Value: "subtitle /"},
			{Code: 'c', Value: "author."},
		},
	}
	if got := f.GetSubFields('a'); len(got) != 1 || got[0] != "Title :" {
		t.Errorf("GetSubFields('a') = %v", got)
	}
	if got := f.GetSubFields(); len(got) != 3 {
		t.Errorf("GetSubFields() = %v, want 3 values", got)
	}
	if got := f.SubFieldCodes(); got != "abc" {
		t.Errorf("SubFieldCodes = %q, want abc", got)
	}
}

func TestDataFieldText(t *testing.T) {
	f := DataField{
		Tag: "245",
		SubFields: []SubField{
			{Code: 'a', Value: "Title"},
			{Code: 'b', Value: "Subtitle"},
		},
	}
	if got := f.Text("ab"); got != "Title Subtitle" {
		t.Errorf("Text(ab) = %q", got)
	}
	if got := f.Text("b"); got != "Subtitle" {
		t.Errorf("Text(b) = %q", got)
	}
}
