package charset

import "testing"

func TestUTF8DecoderAcceptsValidInput(t *testing.T) {
	d := UTF8Decoder{}
	got, err := d.Decode([]byte("Göttingen"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "Göttingen" {
		t.Errorf("Decode = %q, want Göttingen", got)
	}
}

func TestUTF8DecoderRejectsInvalidInput(t *testing.T) {
	d := UTF8Decoder{}
	if _, err := d.Decode([]byte{0xff, 0xfe}); err == nil {
		t.Error("expected an error for an invalid UTF-8 byte sequence")
	}
}

func TestMARC8DecoderUsesTableThenFallsBack(t *testing.T) {
	// Table keys are matched against string(rune(b)) for a raw MARC-8
	// byte b, so 0xe2 (the ANSEL acute-accent prefix byte) is keyed as
	// the UTF-8 encoding of U+00E2.
	accent := string(rune(0xe2))
	d := MARC8Decoder{Table: Table{accent: "́"}}
	got, err := d.Decode([]byte{0xe2, 'e'})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := "́e"
	if got != want {
		t.Errorf("Decode = %q, want %q", got, want)
	}
}

func TestMARC8DecoderFallsBackToLatin1(t *testing.T) {
	d := MARC8Decoder{}
	got, err := d.Decode([]byte{'h', 'i'})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "hi" {
		t.Errorf("Decode = %q, want hi", got)
	}
}
