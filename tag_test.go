package marc21

import "testing"

func TestTagIsNumeric(t *testing.T) {
	cases := map[Tag]bool{
		"245": true,
		"001": true,
		"WII": false,
		"ABS": false,
	}
	for tag, want := range cases {
		if got := tag.IsNumeric(); got != want {
			t.Errorf("%q.IsNumeric() = %v, want %v", tag, got, want)
		}
	}
}

func TestTagIsControl(t *testing.T) {
	cases := map[Tag]bool{
		"001": true,
		"009": true,
		"010": false,
		"245": false,
		"WII": true,
		"ABS": false,
	}
	for tag, want := range cases {
		if got := tag.IsControl(); got != want {
			t.Errorf("%q.IsControl() = %v, want %v", tag, got, want)
		}
	}
}

func TestTagLess(t *testing.T) {
	if !Tag("100").Less(Tag("245")) {
		t.Error("100 should sort before 245")
	}
	if Tag("245").Less(Tag("100")) {
		t.Error("245 should not sort before 100")
	}
	if !Tag("999").Less(Tag("ABS")) {
		t.Error("a numeric tag should always sort before a non-numeric one")
	}
	if Tag("ABS").Less(Tag("999")) {
		t.Error("a non-numeric tag should never sort before a numeric one")
	}
	if Tag("ABS").Less(Tag("CAT")) {
		t.Error("two non-numeric tags should never compare less, they keep insertion order")
	}
}

func TestNewTagPads(t *testing.T) {
	if got := NewTag("5"); got != "  5" {
		t.Errorf("NewTag(%q) = %q, want %q", "5", got, "  5")
	}
	if got := NewTag("245"); got != "245" {
		t.Errorf("NewTag(%q) = %q, want %q", "245", got, "245")
	}
}

func TestIsAlephLocal(t *testing.T) {
	if !Tag("WII").IsAlephLocal() {
		t.Error("WII should be Aleph local")
	}
	if !Tag("SID").IsAlephLocal() {
		t.Error("SID should be Aleph local")
	}
	if Tag("245").IsAlephLocal() {
		t.Error("245 should not be Aleph local")
	}
}

func TestBlankToHashRoundTrip(t *testing.T) {
	if got := blankToHash("a b"); got != "a#b" {
		t.Errorf("blankToHash = %q, want a#b", got)
	}
	if got := hashToBlank("a#b^c"); got != "a b c" {
		t.Errorf("hashToBlank = %q, want %q", got, "a b c")
	}
}
