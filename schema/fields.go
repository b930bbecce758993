package schema

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	marc21 "github.com/victoriamorris/marc21"
)

// ControlFieldSpec describes a control field's rules: a cardinality
// plus a content regex the field's raw data must match.
type ControlFieldSpec struct {
	Tag         string
	Cardinality Cardinality
	pattern     *regexp2.Regexp
	patternSrc  string
}

func newControlFieldSpec(tag string, cardinality byte, pattern string) ControlFieldSpec {
	return ControlFieldSpec{
		Tag:         tag,
		Cardinality: mustCardinality(cardinality),
		pattern:     mustCompile(pattern),
		patternSrc:  pattern,
	}
}

// CheckCardinality counts tag's occurrences in rec and validates against
// the declared cardinality.
func (s ControlFieldSpec) CheckCardinality(rec *marc21.Record) (bool, string) {
	count := len(rec.GetFields(s.Tag))
	ok, msg := checkCardinality(s.Cardinality, count)
	if ok {
		return true, ""
	}
	return false, "Field " + msg
}

// CheckContent validates a single control field's data against the
// tag's content regex.
func (s ControlFieldSpec) CheckContent(data string) (bool, string) {
	if matchString(s.pattern, data) {
		return true, ""
	}
	return false, fmt.Sprintf("Incorrect content: '%s' should follow pattern '%s'", data, s.patternSrc)
}

// DataFieldSpec describes a data field's rules: cardinality, a pair of
// indicator alphabets, and a subfield-code regex.
type DataFieldSpec struct {
	Tag             string
	Cardinality     Cardinality
	Indicator1Alpha string
	Indicator2Alpha string
	subfieldPattern *regexp2.Regexp
	subfieldSrc     string
}

func newDataFieldSpec(tag string, cardinality byte, ind1, ind2, subfields string) DataFieldSpec {
	return DataFieldSpec{
		Tag:             tag,
		Cardinality:     mustCardinality(cardinality),
		Indicator1Alpha: ind1,
		Indicator2Alpha: ind2,
		subfieldPattern: mustCompile(subfields),
		subfieldSrc:     subfields,
	}
}

// CheckCardinality counts tag's occurrences in rec and validates against
// the declared cardinality.
func (s DataFieldSpec) CheckCardinality(rec *marc21.Record) (bool, string) {
	count := len(rec.GetFields(s.Tag))
	ok, msg := checkCardinality(s.Cardinality, count)
	if ok {
		return true, ""
	}
	return false, "Field " + msg
}

// CheckIndicators validates both indicator bytes against their alphabets.
func (s DataFieldSpec) CheckIndicators(f marc21.DataField) []string {
	var messages []string
	if msg, bad := checkIndicator(f.Indicator1, s.Indicator1Alpha, "1st"); bad {
		messages = append(messages, msg)
	}
	if msg, bad := checkIndicator(f.Indicator2, s.Indicator2Alpha, "2nd"); bad {
		messages = append(messages, msg)
	}
	return messages
}

func checkIndicator(actual byte, alphabet string, ordinal string) (string, bool) {
	display := displayBlank(actual)
	if strings.IndexByte(alphabet, actual) >= 0 {
		return "", false
	}
	alphaDisplay := blankToHash(alphabet)
	prefix := ""
	if len(alphabet) > 1 {
		prefix = "one of: "
	}
	return fmt.Sprintf("Incorrect %s indicator: %s should be %s%s", ordinal, string(display), prefix, alphaDisplay), true
}

func displayBlank(b byte) byte {
	if b == ' ' {
		return '#'
	}
	return b
}

func blankToHash(s string) string {
	return strings.ReplaceAll(s, " ", "#")
}

// CheckSubfields validates f's subfield-code sequence against the tag's
// subfield regex, and reports any code outside the regex's declared
// alphabet.
func (s DataFieldSpec) CheckSubfields(f marc21.DataField) []string {
	codes := f.SubFieldCodes()
	if matchString(s.subfieldPattern, codes) {
		return nil
	}
	allowable := alphabetOf(s.subfieldSrc)
	seen := map[byte]bool{}
	var messages []string
	for i := 0; i < len(codes); i++ {
		c := codes[i]
		if seen[c] {
			continue
		}
		seen[c] = true
		if strings.IndexByte(allowable, c) < 0 {
			messages = append(messages, fmt.Sprintf("Subfield %c is not valid for this field", c))
		}
	}
	return messages
}

// alphabetOf extracts the [a-z0-9] characters from a regex pattern.
func alphabetOf(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Subfield describes one tag/code's ordering rules: a per-code
// cardinality plus "before"/"after" adjacency alphabets enforcing
// subfield order.
type Subfield struct {
	Tag         string
	Code        byte
	Cardinality Cardinality
	Before      string
	After       string
}

func newSubfield(tag string, code byte, cardinality byte, before, after string) Subfield {
	return Subfield{Tag: tag, Code: code, Cardinality: mustCardinality(cardinality), Before: before, After: after}
}

// CheckCardinality counts this subfield's occurrences within f.
func (s Subfield) CheckCardinality(f marc21.DataField) (bool, string) {
	count := len(f.GetSubFields(s.Code))
	ok, msg := checkCardinality(s.Cardinality, count)
	if ok {
		return true, ""
	}
	return false, fmt.Sprintf("Subfield %c %s", s.Code, msg)
}

// beforeDescription renders the human-readable "should follow..."
// phrasing that CheckOrder lower-cases into its messages.
func (s Subfield) beforeDescription() string {
	if s.Before == "^" {
		return "Should be the first subfield in the field"
	}
	if strings.ContainsRune(s.Before, '^') {
		return fmt.Sprintf("Should occur either at the start of the field, or after %s %s",
			mid(s.Before), strings.ReplaceAll(s.Before, "^", ""))
	}
	return fmt.Sprintf("Should follow %s %s", mid(s.Before), s.Before)
}

func (s Subfield) afterDescription() string {
	if s.After == "$" {
		return "Should be the last subfield in the field"
	}
	if strings.ContainsRune(s.After, '$') {
		return fmt.Sprintf("Should occur either at the end of the field, or before %s %s",
			mid(s.After), strings.ReplaceAll(s.After, "$", ""))
	}
	return fmt.Sprintf("Should occur before %s %s", mid(s.After), s.After)
}

func mid(s string) string {
	s = strings.ReplaceAll(s, "^", "")
	s = strings.ReplaceAll(s, "$", "")
	if len(s) > 1 {
		return "one of these subfields:"
	}
	return "subfield"
}

// CheckOrder walks every occurrence of this subfield's code within f's
// subfield-code sequence (virtually bracketed by '^'/'$') and verifies
// its neighbors fall within Before/After.
func (s Subfield) CheckOrder(f marc21.DataField) []string {
	codes := "^" + f.SubFieldCodes() + "$"
	var messages []string
	for i := 1; i < len(codes)-1; i++ {
		if codes[i] != s.Code {
			continue
		}
		before := codes[i-1]
		if strings.IndexByte(s.Before, before) < 0 {
			messages = append(messages, fmt.Sprintf("Subfield %c %s", s.Code, strings.ToLower(s.beforeDescription())))
		}
		after := codes[i+1]
		if strings.IndexByte(s.After, after) < 0 {
			messages = append(messages, fmt.Sprintf("Subfield %c %s", s.Code, strings.ToLower(s.afterDescription())))
		}
	}
	return messages
}
