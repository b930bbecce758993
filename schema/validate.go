package schema

import (
	"sort"

	marc21 "github.com/victoriamorris/marc21"
)

// Validate checks rec's fields, indicators, and subfields against the
// schema tables and returns the resulting diagnostic set. It also
// caches the set on rec.Diagnostics, the one place a *marc21.Record's
// Diagnostics field is ever populated.
func Validate(rec *marc21.Record) *marc21.DiagnosticSet {
	diags := marc21.NewDiagnosticSet()

	checkControlFields(rec, diags)
	checkDataFields(rec, diags)
	checkObsoleteAndUndesirable(rec, diags)

	rec.Diagnostics = diags
	return diags
}

func checkControlFields(rec *marc21.Record, diags *marc21.DiagnosticSet) {
	for _, tag := range sortedKeys(ControlFields) {
		spec := ControlFields[tag]
		if ok, msg := spec.CheckCardinality(rec); !ok {
			diags.Add(marc21.Diagnostic{
				Tag:      marc21.NewTag(tag),
				Category: marc21.CategoryStructure,
				Severity: marc21.SeveritySerious,
				Message:  msg,
			})
		}
		for _, f := range rec.GetFields(tag) {
			cf, ok := f.(marc21.ControlField)
			if !ok {
				continue
			}
			if ok, msg := spec.CheckContent(cf.Data); !ok {
				diags.Add(marc21.Diagnostic{
					Tag:      cf.Tag,
					Category: marc21.CategoryStructure,
					Severity: marc21.SeveritySerious,
					Message:  msg,
				})
			}
		}
	}
}

func checkDataFields(rec *marc21.Record, diags *marc21.DiagnosticSet) {
	for _, tag := range sortedKeys(DataFields) {
		spec := DataFields[tag]
		if ok, msg := spec.CheckCardinality(rec); !ok {
			diags.Add(marc21.Diagnostic{
				Tag:      marc21.NewTag(tag),
				Category: marc21.CategoryStructure,
				Severity: marc21.SeveritySerious,
				Message:  msg,
			})
		}
		for _, f := range rec.GetFields(tag) {
			df, ok := f.(marc21.DataField)
			if !ok {
				continue
			}
			for _, msg := range spec.CheckIndicators(df) {
				diags.Add(marc21.Diagnostic{
					Tag:      df.Tag,
					Category: marc21.CategoryStructure,
					Severity: marc21.SeveritySerious,
					Message:  msg,
				})
			}
			subfieldMsgs := spec.CheckSubfields(df)
			for _, msg := range subfieldMsgs {
				diags.Add(marc21.Diagnostic{
					Tag:      df.Tag,
					Category: marc21.CategoryStructure,
					Severity: marc21.SeveritySerious,
					Message:  msg,
				})
			}
			if !matchString(spec.subfieldPattern, df.SubFieldCodes()) {
				checkSubfieldOrderAndCardinality(df, diags)
			}
		}
	}
}

func checkSubfieldOrderAndCardinality(df marc21.DataField, diags *marc21.DiagnosticSet) {
	specs, ok := SubfieldOrder[df.Tag.String()]
	if !ok {
		return
	}
	codes := make([]byte, 0, len(specs))
	for code := range specs {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	for _, code := range codes {
		sub := specs[code]
		if ok, msg := sub.CheckCardinality(df); !ok {
			diags.Add(marc21.Diagnostic{
				Tag:      df.Tag,
				Category: marc21.CategoryStructure,
				Severity: marc21.SeveritySerious,
				Message:  msg,
			})
		}
		for _, msg := range sub.CheckOrder(df) {
			diags.Add(marc21.Diagnostic{
				Tag:      df.Tag,
				Category: marc21.CategoryStructure,
				Severity: marc21.SeveritySerious,
				Message:  msg,
			})
		}
	}
}

// sortedKeys returns m's keys in ascending order, so map-driven checks
// produce the same diagnostic order on every run.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func checkObsoleteAndUndesirable(rec *marc21.Record, diags *marc21.DiagnosticSet) {
	for _, f := range rec.Fields {
		tag := f.FieldTag()
		tagStr := tag.String()
		if ObsoleteFields[tagStr] {
			diags.Add(marc21.Diagnostic{
				Tag:      tag,
				Category: marc21.CategoryObsoleteCoding,
				Severity: marc21.SeveritySerious,
				Message:  "Field is obsolete",
			})
		}
		if reason, bad := UndesirableFields[tagStr]; bad {
			diags.Add(marc21.Diagnostic{
				Tag:      tag,
				Category: marc21.CategoryObsoleteCoding,
				Severity: marc21.SeverityModerate,
				Message:  reason,
			})
		}
	}
}
