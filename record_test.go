package marc21

import "testing"

func tagsOf(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.FieldTag().String()
	}
	return out
}

func TestAddFieldOrdering(t *testing.T) {
	rec := NewRecord(NewLeader(nil))
	rec.AddField(DataField{Tag: "245"})
	rec.AddField(ControlField{Tag: "001", Data: "1"})
	rec.AddField(DataField{Tag: "100"})
	rec.AddField(DataField{Tag: "650"})
	rec.AddField(ControlField{Tag: "ABS", Data: "x"})
	rec.AddField(DataField{Tag: "260"})
	rec.AddField(ControlField{Tag: "CAT", Data: "y"})

	got := tagsOf(rec.Fields)
	want := []string{"001", "100", "245", "260", "650", "ABS", "CAT"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGetFieldsAndLDR(t *testing.T) {
	rec := NewRecord(NewLeader([]byte("00501nam a2200121 a 4500")))
	rec.AddField(ControlField{Tag: "001", Data: "92005291"})
	rec.AddField(DataField{Tag: "650"})
	rec.AddField(DataField{Tag: "650"})

	if n := len(rec.GetFields("650")); n != 2 {
		t.Errorf("GetFields(650) returned %d fields, want 2", n)
	}
	ldr := rec.GetFields("LDR")
	if len(ldr) != 1 {
		t.Fatalf("GetFields(LDR) returned %d fields, want 1", len(ldr))
	}
	if cf, ok := ldr[0].(ControlField); !ok || cf.Data != rec.Leader.String() {
		t.Errorf("GetFields(LDR) did not wrap the leader correctly")
	}
	if rec.ControlNumber() != "92005291" {
		t.Errorf("ControlNumber() = %q, want 92005291", rec.ControlNumber())
	}
}

func TestRemoveField(t *testing.T) {
	rec := NewRecord(NewLeader(nil))
	f := DataField{Tag: "245"}
	rec.AddField(f)
	if err := rec.RemoveField(f); err != nil {
		t.Fatalf("RemoveField: %v", err)
	}
	if rec.HasField("245") {
		t.Error("245 should have been removed")
	}
	if err := rec.RemoveField(f); err != ErrFieldNotFound {
		t.Errorf("RemoveField on an absent field = %v, want ErrFieldNotFound", err)
	}
}
