// Package schema holds the declarative MARC21 schema tables — per-tag
// cardinality, indicator alphabets, subfield grammars, and subfield
// ordering specs — and the validation engine that applies them to a
// decoded record. The tables are process-wide immutable, compiled once
// at package init.
package schema

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"
)

// Cardinality is one of the four repeat/presence rules governing how
// many times a field or subfield may occur in a record.
type Cardinality byte

// The four cardinalities.
const (
	Optional        Cardinality = '?' // optional, not repeatable
	Mandatory       Cardinality = '1' // mandatory, not repeatable
	OptionalRepeats Cardinality = '*' // optional, repeatable
	MandatoryRepeats Cardinality = '+' // mandatory, repeatable
)

func mustCardinality(c byte) Cardinality {
	switch Cardinality(c) {
	case Optional, Mandatory, OptionalRepeats, MandatoryRepeats:
		return Cardinality(c)
	default:
		panic(fmt.Sprintf("schema: invalid cardinality %q", c))
	}
}

// checkCardinality reports whether count occurrences of a field or
// subfield satisfy c, and if not, the reason. The '*' branch is
// unconditionally true (optional, by definition, however many times it
// occurs).
func checkCardinality(c Cardinality, count int) (bool, string) {
	switch c {
	case Optional:
		if count > 1 {
			return false, fmt.Sprintf("is not repeatable, but occurs %d times", count)
		}
		return true, ""
	case Mandatory:
		if count == 0 {
			return false, "is not present, but should occur exactly once"
		}
		if count != 1 {
			return false, fmt.Sprintf("should occur exactly once, but occurs %d times", count)
		}
		return true, ""
	case OptionalRepeats:
		return true, ""
	case MandatoryRepeats:
		if count == 0 {
			return false, "is not present, but should occur at least once"
		}
		return true, ""
	default:
		panic(fmt.Sprintf("schema: invalid cardinality %q", byte(c)))
	}
}

// mustCompile compiles a regexp2 pattern without implicit anchoring, so
// a ^...$ written into the pattern carries over directly. regexp2 is
// used (rather than stdlib regexp) because several patterns (342, 343,
// 344, 345, 347, 348, 514) require lookahead or backreferences that RE2
// cannot express.
func mustCompile(pattern string) *regexp2.Regexp {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		panic(errors.Wrapf(err, "schema: compiling pattern %q", pattern))
	}
	return re
}

func matchString(re *regexp2.Regexp, s string) bool {
	m, err := re.MatchString(s)
	if err != nil {
		return false
	}
	return m
}
