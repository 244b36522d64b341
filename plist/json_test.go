package plist

import (
	"math"
	"testing"
	"time"
)

func TestParseJSON_KeepsKeyOrder(t *testing.T) {
	v, err := ParseJSON([]byte(`{"z": 1, "a": 2, "m": {"y": true, "b": false}}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	d, ok := v.(*Dictionary)
	if !ok {
		t.Fatalf("got %T, want *Dictionary", v)
	}
	var keys []string
	for _, e := range d.Entries() {
		keys = append(keys, e.Key)
	}
	if len(keys) != 3 || keys[0] != "z" || keys[1] != "a" || keys[2] != "m" {
		t.Errorf("keys = %v, want [z a m]", keys)
	}
	inner, _ := d.Get("m")
	if e := inner.(*Dictionary).Entries(); e[0].Key != "y" || e[1].Key != "b" {
		t.Errorf("inner keys out of order: %v", e)
	}
}

func TestParseJSON_Numbers(t *testing.T) {
	tests := []struct {
		input   string
		integer string
		real    float64
	}{
		{"42", "42", 0},
		{"-7", "-7", 0},
		{"18446744073709551616", "18446744073709551616", 0},
		{"1.5", "", 1.5},
		{"1e3", "", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseJSON([]byte(tt.input))
			if err != nil {
				t.Fatalf("ParseJSON: %v", err)
			}
			switch n := v.(type) {
			case *Integer:
				if tt.integer == "" || n.String() != tt.integer {
					t.Errorf("got integer %s, want %q / %v", n, tt.integer, tt.real)
				}
			case Real:
				if tt.integer != "" || float64(n) != tt.real {
					t.Errorf("got real %v, want %q / %v", n, tt.integer, tt.real)
				}
			default:
				t.Errorf("got %T", v)
			}
		})
	}
}

func TestParseJSON_Markers(t *testing.T) {
	v, err := ParseJSON([]byte(`[{"$data": "aGk="}, {"$date": "2021-03-04T05:06:07Z"}, {"$data": 1}]`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	arr := v.(Array)
	if d, ok := arr[0].(Data); !ok || string(d) != "hi" {
		t.Errorf("arr[0] = %#v, want Data(hi)", arr[0])
	}
	want := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	if d, ok := arr[1].(Date); !ok || !time.Time(d).Equal(want) {
		t.Errorf("arr[1] = %#v, want Date", arr[1])
	}
	if _, ok := arr[2].(*Dictionary); !ok {
		t.Errorf("non-string marker should stay a dictionary, got %T", arr[2])
	}
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []string{
		`null`,
		`{"a": null}`,
		`{"$data": "***"}`,
		`[1, 2`,
		`1 2`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseJSON([]byte(input)); err == nil {
				t.Errorf("expected error for %s", input)
			}
		})
	}
}

func TestParseJSONDictionary(t *testing.T) {
	for _, input := range []string{"", "  ", "null", "{}"} {
		d, err := ParseJSONDictionary([]byte(input))
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		if d.Len() != 0 {
			t.Errorf("%q: Len = %d, want 0", input, d.Len())
		}
	}
	if _, err := ParseJSONDictionary([]byte(`[1]`)); err == nil {
		t.Error("expected error for array")
	}
}

func TestInteger_Ranges(t *testing.T) {
	if _, ok := Int(math.MinInt64).Int64(); !ok {
		t.Error("MinInt64 should fit int64")
	}
	if _, ok := Uint(math.MaxUint64).Int64(); ok {
		t.Error("MaxUint64 should not fit int64")
	}
	if n, ok := Uint(math.MaxUint64).Uint64(); !ok || n != math.MaxUint64 {
		t.Error("MaxUint64 should fit uint64")
	}
	if _, ok := Int(-1).Uint64(); ok {
		t.Error("-1 should not fit uint64")
	}
}

func TestDictionary_Set(t *testing.T) {
	d := NewDictionary(Entry{Key: "a", Value: String("1")}, Entry{Key: "a", Value: String("2")})
	if d.Len() != 1 {
		t.Fatalf("Len = %d, want 1", d.Len())
	}
	if v, _ := d.Get("a"); v != String("2") {
		t.Errorf("a = %v, want 2", v)
	}
	var nilDict *Dictionary
	if nilDict.Len() != 0 || nilDict.Entries() != nil {
		t.Error("nil dictionary should be empty")
	}
}
