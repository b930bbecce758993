package marc21

import (
	"strings"
	"testing"
)

func TestLineFormRoundTrip(t *testing.T) {
	rec := buildSampleRecord()
	text := rec.String()

	parsed, err := FromString(text)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	if parsed.ControlNumber() != "92005291" {
		t.Errorf("ControlNumber() = %q, want 92005291", parsed.ControlNumber())
	}
	title, ok := parsed.GetField("245").(DataField)
	if !ok {
		t.Fatalf("245 field not parsed back as a DataField")
	}
	if title.Indicator1 != '1' || title.Indicator2 != '0' {
		t.Errorf("indicators = %c%c, want 10", title.Indicator1, title.Indicator2)
	}
	if vals := title.GetSubFields('a'); len(vals) != 1 || vals[0] != "Cross-platform Go /" {
		t.Errorf("subfield a = %v", vals)
	}
}

func TestLineFormBlanksAsHash(t *testing.T) {
	rec := NewRecord(NewLeader(nil))
	rec.AddField(DataField{Tag: "650", Indicator1: ' ', Indicator2: '0', SubFields: []SubField{
		{Code: 'a', Value: "Go (Programming language)"},
	}})
	text := rec.String()
	if !strings.Contains(text, "=650  #0$aGo (Programming language)") {
		t.Errorf("line form = %q, missing expected 650 line", text)
	}
}

func TestFromMRCString(t *testing.T) {
	s := "LDR     00501nam a2200121 a 4500\n" +
		"001     92005291\n" +
		"24510     $$aCross-platform Go /$$cJane Doe.\n"
	rec, err := FromMRCString(s)
	if err != nil {
		t.Fatalf("FromMRCString: %v", err)
	}
	if rec.OriginalFormat != "Aleph" {
		t.Errorf("OriginalFormat = %q, want Aleph", rec.OriginalFormat)
	}
	if rec.ControlNumber() != "92005291" {
		t.Errorf("ControlNumber() = %q, want 92005291", rec.ControlNumber())
	}
	title, ok := rec.GetField("245").(DataField)
	if !ok {
		t.Fatalf("245 not parsed as a DataField")
	}
	if title.Indicator1 != '1' || title.Indicator2 != '0' {
		t.Errorf("indicators = %c%c, want 10", title.Indicator1, title.Indicator2)
	}
}

func TestToMRCStringRoundTrip(t *testing.T) {
	rec := buildSampleRecord()
	text := rec.ToMRCString()
	parsed, err := FromMRCString(text)
	if err != nil {
		t.Fatalf("FromMRCString: %v", err)
	}
	if parsed.ControlNumber() != "92005291" {
		t.Errorf("ControlNumber() = %q, want 92005291", parsed.ControlNumber())
	}
	title, ok := parsed.GetField("245").(DataField)
	if !ok {
		t.Fatalf("245 not parsed as a DataField")
	}
	if vals := title.GetSubFields('c'); len(vals) != 1 || vals[0] != "Jane Doe." {
		t.Errorf("subfield c = %v", vals)
	}
}
