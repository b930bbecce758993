package marc21

import "testing"

func buildSampleRecord() *Record {
	rec := NewRecord(NewLeader(nil))
	rec.AddField(ControlField{Tag: "001", Data: "92005291"})
	rec.AddField(ControlField{Tag: "008", Data: "910710s19uuuuuuxxu||||| |||| 00| 0 eng d"})
	rec.AddField(DataField{
		Tag: "245", Indicator1: '1', Indicator2: '0',
		SubFields: []SubField{
			{Code: 'a', Value: "Cross-platform Go /"},
			{Code: 'c', Value: "Jane Doe."},
		},
	})
	return rec
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rec := buildSampleRecord()
	b, err := Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	result, err := Decode(b, DecodeOptions{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(result.Diagnostics) != 0 {
		t.Errorf("unexpected decode diagnostics: %v", result.Diagnostics)
	}

	got := result.Record
	if got.ControlNumber() != "92005291" {
		t.Errorf("ControlNumber() = %q, want 92005291", got.ControlNumber())
	}
	title := got.GetField("245").(DataField)
	if title.Indicator1 != '1' || title.Indicator2 != '0' {
		t.Errorf("indicators = %c%c, want 10", title.Indicator1, title.Indicator2)
	}
	if vals := title.GetSubFields('a'); len(vals) != 1 || vals[0] != "Cross-platform Go /" {
		t.Errorf("subfield a = %v", vals)
	}
}

func TestEncodeLeaderLengths(t *testing.T) {
	rec := buildSampleRecord()
	b, err := Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	l := NewLeader(b[:LeaderSize])
	rl, err := l.RecordLength()
	if err != nil {
		t.Fatalf("RecordLength: %v", err)
	}
	if rl != len(b) {
		t.Errorf("declared record length %d, actual byte length %d", rl, len(b))
	}
	if b[len(b)-1] != endOfRecord {
		t.Errorf("last byte = %x, want END_OF_RECORD", b[len(b)-1])
	}
}

func TestEncodeNilRecord(t *testing.T) {
	if _, err := Encode(nil); err != ErrWriteNeedsRecord {
		t.Errorf("Encode(nil) = %v, want ErrWriteNeedsRecord", err)
	}
}

func TestDecodeRejectsBadLengthPrefix(t *testing.T) {
	if _, err := Decode([]byte("abcde rest of junk"), DecodeOptions{}); err == nil {
		t.Error("expected an error for a non-numeric length prefix")
	}
}

func TestDecodeRejectsShortLeader(t *testing.T) {
	if _, err := Decode([]byte("00010"), DecodeOptions{}); err == nil {
		t.Error("expected an error for input shorter than the leader")
	}
}
