package value

import (
	"errors"
	"math"
	"testing"
)

func TestValue_Accessors(t *testing.T) {
	if s, err := String("a").AsString(); err != nil || s != "a" {
		t.Errorf("AsString = %q, %v", s, err)
	}
	if n, err := Int(-3).AsInt(); err != nil || n != -3 {
		t.Errorf("AsInt = %d, %v", n, err)
	}
	if n, err := Uint(math.MaxUint64).AsUint(); err != nil || n != math.MaxUint64 {
		t.Errorf("AsUint = %d, %v", n, err)
	}
	if _, err := Int(1).AsUint(); err == nil {
		t.Error("expected kind mismatch error for int read as uint")
	}
	var nilVal *Value
	if _, err := nilVal.AsString(); err == nil {
		t.Error("expected error for nil value")
	}
	if n := nilVal.Len(); n != 0 {
		t.Errorf("nil Len = %d, want 0", n)
	}
}

func TestBytes_NilIsEmpty(t *testing.T) {
	b, err := Bytes(nil).AsBytes()
	if err != nil || b == nil || len(b) != 0 {
		t.Errorf("AsBytes = %#v, %v, want empty non-nil slice", b, err)
	}
	if !Equal(Bytes(nil), Bytes([]byte{})) {
		t.Error("nil and empty blobs differ")
	}
	data, err := ToJSON(Map(Entry("blob", Bytes(nil))))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"blob":""}` {
		t.Errorf("JSON = %s", data)
	}
}

func TestMap_InsertionOrder(t *testing.T) {
	m := Map(Entry("b", Int(1)), Entry("a", Int(2)))
	m.Set("c", Int(3))
	m.Set("b", Int(4))

	keys := m.Keys()
	want := []string{"b", "a", "c"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
	if n, _ := m.Get("b").AsInt(); n != 4 {
		t.Errorf("b = %d, want 4", n)
	}
}

func TestMap_DuplicateConstructorKeys(t *testing.T) {
	m := Map(Entry("k", Int(1)), Entry("k", Int(2)))
	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}
	if n, _ := m.Get("k").AsInt(); n != 2 {
		t.Errorf("k = %d, want 2", n)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{"same string", String("x"), String("x"), true},
		{"int vs uint", Int(1), Uint(1), false},
		{"bytes", Bytes([]byte{1, 2}), Bytes([]byte{1, 2}), true},
		{"bytes differ", Bytes([]byte{1, 2}), Bytes([]byte{1, 3}), false},
		{"empty seq", Seq(), Seq(), true},
		{"seq order", Seq(Int(1), Int(2)), Seq(Int(2), Int(1)), false},
		{"map", Map(Entry("a", Bool(true))), Map(Entry("a", Bool(true))), true},
		{"map order", Map(Entry("a", Int(1)), Entry("b", Int(2))), Map(Entry("b", Int(2)), Entry("a", Int(1))), false},
		{"nested", Seq(Map(Entry("r", Real(1.5)))), Seq(Map(Entry("r", Real(1.5)))), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToJSON_KeepsOrder(t *testing.T) {
	v := Map(
		Entry("z", Seq(Int(1), Uint(math.MaxUint64))),
		Entry("a", Map(Entry("flag", Bool(true)))),
		Entry("r", Real(0.5)),
		Entry("b", Bytes([]byte("hi"))),
	)
	got, err := ToJSON(v)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	want := `{"z":[1,18446744073709551615],"a":{"flag":true},"r":0.5,"b":"aGk="}`
	if string(got) != want {
		t.Errorf("ToJSON = %s, want %s", got, want)
	}
}

func TestToJSON_RejectsNaN(t *testing.T) {
	if _, err := ToJSON(Seq(Real(math.NaN()))); err == nil {
		t.Error("expected error for NaN")
	}
}

func TestToAny(t *testing.T) {
	got := ToAny(Map(Entry("n", Int(7)), Entry("s", Seq(String("x")))))
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("ToAny returned %T", got)
	}
	if m["n"] != int64(7) {
		t.Errorf("n = %v", m["n"])
	}
	if s, ok := m["s"].([]any); !ok || len(s) != 1 || s[0] != "x" {
		t.Errorf("s = %v", m["s"])
	}
}

func TestApply_Record(t *testing.T) {
	src := Map(
		Entry("unicodes", Seq(Int(65))),
		Entry("width", Real(500)),
		Entry("lib", Map(Entry("k", String("v")))),
	)
	rec := NewRecord()
	if err := Apply(rec, src); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !Equal(rec.Value(), src) {
		t.Errorf("record = %v, want %v", ToAny(rec.Value()), ToAny(src))
	}
}

type failingAttrs struct {
	*Record
}

var errReadOnly = errors.New("read-only attribute")

func (failingAttrs) SetReal(key string, v float64) error { return errReadOnly }

func TestApply_StopsAtFailingSetter(t *testing.T) {
	dst := failingAttrs{NewRecord()}
	err := Apply(dst, Map(Entry("name", String("a")), Entry("width", Real(1)), Entry("note", String("n"))))
	if !errors.Is(err, errReadOnly) {
		t.Fatalf("err = %v, want errReadOnly", err)
	}
	if dst.Value().Has("note") {
		t.Error("setter after the failure was called")
	}
}

func TestApply_RequiresMap(t *testing.T) {
	if err := Apply(NewRecord(), Seq()); err == nil {
		t.Error("expected error for non-map value")
	}
}
