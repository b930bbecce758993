package schema

import "github.com/dlclark/regexp2"

// ControlFields, DataFields and SubfieldOrder are the exported, compiled
// registries built once from the generated rule tables. Callers look
// tags up through these maps rather than the raw generated data.
var (
	ControlFields map[string]ControlFieldSpec
	DataFields    map[string]DataFieldSpec
	SubfieldOrder map[string]map[byte]Subfield

	// ObsoleteFields, UndesirableFields, DesirableFields and Abbreviations
	// hold the cataloging-practice advisory tables: fields that should no
	// longer be used, fields with a preferred replacement, fields a
	// complete record should carry, and recognized abbreviation patterns.
	ObsoleteFields    map[string]bool
	UndesirableFields map[string]string
	DesirableFields   []string
	Abbreviations     []Abbreviation
)

// Abbreviation pairs a compiled pattern with its expansion. Loaded at
// init, not yet enforced by Validate.
type Abbreviation struct {
	pattern    *regexp2.Regexp
	Expansion  string
	PatternSrc string
}

// MatchString reports whether s contains the abbreviation's pattern.
func (a Abbreviation) MatchString(s string) bool {
	return matchString(a.pattern, s)
}

func init() {
	ControlFields = make(map[string]ControlFieldSpec, len(controlFieldData))
	for tag, d := range controlFieldData {
		ControlFields[tag] = newControlFieldSpec(tag, d.Cardinality, d.Pattern)
	}

	DataFields = make(map[string]DataFieldSpec, len(dataFieldData))
	for tag, d := range dataFieldData {
		DataFields[tag] = newDataFieldSpec(tag, d.Cardinality, d.Ind1, d.Ind2, d.Pattern)
	}

	SubfieldOrder = make(map[string]map[byte]Subfield, len(subfieldOrderData))
	for tag, codes := range subfieldOrderData {
		m := make(map[byte]Subfield, len(codes))
		for code, d := range codes {
			m[code] = newSubfield(tag, code, d.Cardinality, d.Before, d.After)
		}
		SubfieldOrder[tag] = m
	}

	ObsoleteFields = obsoleteFields
	UndesirableFields = undesirableFields
	DesirableFields = desirableFields

	Abbreviations = make([]Abbreviation, 0, len(abbreviationPatterns))
	for _, a := range abbreviationPatterns {
		Abbreviations = append(Abbreviations, Abbreviation{
			pattern:    mustCompile(a.Pattern),
			Expansion:  a.Expansion,
			PatternSrc: a.Pattern,
		})
	}
}
