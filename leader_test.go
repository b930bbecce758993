package marc21

import "testing"

func TestLeaderRoundTrip(t *testing.T) {
	raw := "00501nam a2200121 a 4500"
	l := NewLeader([]byte(raw))
	rl, err := l.RecordLength()
	if err != nil {
		t.Fatalf("RecordLength: %v", err)
	}
	if rl != 501 {
		t.Errorf("RecordLength = %d, want 501", rl)
	}
	ba, err := l.BaseAddress()
	if err != nil {
		t.Fatalf("BaseAddress: %v", err)
	}
	if ba != 121 {
		t.Errorf("BaseAddress = %d, want 121", ba)
	}
	if l.String() != raw {
		t.Errorf("String() = %q, want %q", l.String(), raw)
	}
}

func TestLeaderWithEncodedLengths(t *testing.T) {
	l := NewLeader([]byte("00000nam a2200000 a 4500"))
	out := l.withEncodedLengths(305, 146)
	if got, _ := out.RecordLength(); got != 305 {
		t.Errorf("RecordLength = %d, want 305", got)
	}
	if got, _ := out.BaseAddress(); got != 146 {
		t.Errorf("BaseAddress = %d, want 146", got)
	}
	if out.String()[10:12] != "22" {
		t.Errorf("positions 10-11 = %q, want 22", out.String()[10:12])
	}
	if out.String()[20:24] != "4500" {
		t.Errorf("positions 20-23 = %q, want 4500", out.String()[20:24])
	}
	if out.String()[5:10] != "nam a" {
		t.Errorf("unrelated positions should be preserved, got %q", out.String()[5:10])
	}
}

func TestPad5Truncates(t *testing.T) {
	if got := pad5(123456); got != "23456" {
		t.Errorf("pad5(123456) = %q, want 23456", got)
	}
	if got := pad5(7); got != "00007" {
		t.Errorf("pad5(7) = %q, want 00007", got)
	}
}
