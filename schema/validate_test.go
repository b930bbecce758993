package schema

import (
	"testing"

	marc21 "github.com/victoriamorris/marc21"
)

func wellFormedRecord() *marc21.Record {
	rec := marc21.NewRecord(marc21.NewLeader(nil))
	rec.AddField(marc21.ControlField{Tag: "001", Data: "123456789"})
	rec.AddField(marc21.ControlField{Tag: "003", Data: "Uk"})
	rec.AddField(marc21.ControlField{Tag: "005", Data: "20260101120000.0"})
	rec.AddField(marc21.ControlField{Tag: "008", Data: "910710s19uuuuuuxxu||||| |||| 00| 0 eng d"})
	rec.AddField(marc21.DataField{
		Tag: "020", Indicator1: ' ', Indicator2: ' ',
		SubFields: []marc21.SubField{{Code: 'a', Value: "9780134190440"}},
	})
	rec.AddField(marc21.DataField{
		Tag: "040", Indicator1: ' ', Indicator2: ' ',
		SubFields: []marc21.SubField{{Code: 'a', Value: "UkOxU"}, {Code: 'b', Value: "eng"}},
	})
	rec.AddField(marc21.DataField{
		Tag: "245", Indicator1: '1', Indicator2: '0',
		SubFields: []marc21.SubField{{Code: 'a', Value: "Cross-platform Go"}},
	})
	return rec
}

func TestValidateAcceptsWellFormedRecord(t *testing.T) {
	diags := Validate(wellFormedRecord())
	if !diags.Valid() {
		t.Errorf("expected a clean validation, got %v", diags.Items())
	}
}

func TestValidateFlagsMissingMandatoryControlField(t *testing.T) {
	rec := marc21.NewRecord(marc21.NewLeader(nil))
	rec.AddField(marc21.DataField{Tag: "999"}) // keep the record non-empty; 001 stays absent
	diags := Validate(rec)
	found := false
	for _, d := range diags.Items() {
		if d.Tag.String() == "001" && d.Category == marc21.CategoryStructure {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a structure diagnostic for missing 001, got %v", diags.Items())
	}
}

func TestValidateFlagsBadControlFieldContent(t *testing.T) {
	rec := wellFormedRecord()
	for i, f := range rec.Fields {
		if cf, ok := f.(marc21.ControlField); ok && cf.Tag == "001" {
			rec.Fields[i] = marc21.ControlField{Tag: "001", Data: "not-numeric"}
		}
	}
	diags := Validate(rec)
	if diags.Valid() {
		t.Fatal("expected a content diagnostic for a non-numeric 001")
	}
}

func TestValidateFlagsBadIndicator(t *testing.T) {
	rec := wellFormedRecord()
	for i, f := range rec.Fields {
		if df, ok := f.(marc21.DataField); ok && df.Tag == "245" {
			df.Indicator1 = 'x'
			rec.Fields[i] = df
		}
	}
	diags := Validate(rec)
	found := false
	for _, d := range diags.Items() {
		if d.Tag.String() == "245" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a diagnostic for the 245 field with a bad 1st indicator, got %v", diags.Items())
	}
}

func TestValidateFlagsObsoleteField(t *testing.T) {
	rec := wellFormedRecord()
	for tag := range ObsoleteFields {
		rec.AddField(marc21.DataField{Tag: marc21.Tag(tag)})
		break
	}
	diags := Validate(rec)
	found := false
	for _, d := range diags.Items() {
		if d.Category == marc21.CategoryObsoleteCoding && d.Message == "Field is obsolete" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an obsolete-coding diagnostic, got %v", diags.Items())
	}
}

func TestValidateDeduplicatesDiagnostics(t *testing.T) {
	rec := marc21.NewRecord(marc21.NewLeader(nil))
	rec.AddField(marc21.DataField{
		Tag: "245", Indicator1: 'x', Indicator2: 'x',
		SubFields: []marc21.SubField{{Code: 'a', Value: "Title"}},
	})
	rec.AddField(marc21.DataField{
		Tag: "245", Indicator1: 'x', Indicator2: 'x',
		SubFields: []marc21.SubField{{Code: 'a', Value: "Another title"}},
	})
	diags := Validate(rec)
	seen := map[marc21.Diagnostic]int{}
	for _, d := range diags.Items() {
		seen[d]++
	}
	for d, count := range seen {
		if count > 1 {
			t.Errorf("diagnostic %+v appeared %d times, DiagnosticSet should dedupe", d, count)
		}
	}
}

func TestValidateCachesOnRecord(t *testing.T) {
	rec := wellFormedRecord()
	diags := Validate(rec)
	if rec.Diagnostics != diags {
		t.Error("Validate should cache the result on rec.Diagnostics")
	}
}
