// Package value implements the dynamic value graph produced by the glyph
// transcoder.
//
// A Value is a closed tagged union:
//
//	Scalars:    str, int, uint, real, bool, bytes
//	Containers: seq (ordered), map (ordered, unique keys)
//
// Integers carry their signedness because some unsigned magnitudes have no
// signed representation. Maps keep insertion order so that every consumer
// (JSON rendering, binary encoding, host adapters) sees the same key order.
package value

import (
	"fmt"
)

// Kind represents value types.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindUint
	KindReal
	KindBool
	KindBytes
	KindSeq
	KindMap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "str"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindReal:
		return "real"
	case KindBool:
		return "bool"
	case KindBytes:
		return "bytes"
	case KindSeq:
		return "seq"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is a node of the dynamic value graph.
type Value struct {
	kind Kind

	// Scalar values (only one valid based on kind)
	strVal   string
	intVal   int64
	uintVal  uint64
	realVal  float64
	boolVal  bool
	bytesVal []byte

	// Container values
	seqVal []*Value
	mapVal []MapEntry
}

// MapEntry represents a key-value pair in a map.
type MapEntry struct {
	Key   string
	Value *Value
}

// Entry creates a MapEntry for use in Map construction.
func Entry(key string, v *Value) MapEntry {
	return MapEntry{Key: key, Value: v}
}

// ============================================================
// Constructors
// ============================================================

// String creates a string value.
func String(v string) *Value {
	return &Value{kind: KindString, strVal: v}
}

// Int creates a signed integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// Uint creates an unsigned integer value.
func Uint(v uint64) *Value {
	return &Value{kind: KindUint, uintVal: v}
}

// Real creates a floating point value.
func Real(v float64) *Value {
	return &Value{kind: KindReal, realVal: v}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Bytes creates a byte blob value. A nil slice is stored as empty.
func Bytes(v []byte) *Value {
	if v == nil {
		v = []byte{}
	}
	return &Value{kind: KindBytes, bytesVal: v}
}

// Seq creates a sequence value.
func Seq(values ...*Value) *Value {
	if values == nil {
		values = []*Value{}
	}
	return &Value{kind: KindSeq, seqVal: values}
}

// Map creates a map value from key-value pairs. Later duplicates replace the
// value of the first occurrence and keep its position.
func Map(entries ...MapEntry) *Value {
	m := &Value{kind: KindMap, mapVal: make([]MapEntry, 0, len(entries))}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() Kind {
	return v.kind
}

// AsString returns the string value.
func (v *Value) AsString() (string, error) {
	if err := v.expect(KindString); err != nil {
		return "", err
	}
	return v.strVal, nil
}

// AsInt returns the signed integer value.
func (v *Value) AsInt() (int64, error) {
	if err := v.expect(KindInt); err != nil {
		return 0, err
	}
	return v.intVal, nil
}

// AsUint returns the unsigned integer value.
func (v *Value) AsUint() (uint64, error) {
	if err := v.expect(KindUint); err != nil {
		return 0, err
	}
	return v.uintVal, nil
}

// AsReal returns the floating point value.
func (v *Value) AsReal() (float64, error) {
	if err := v.expect(KindReal); err != nil {
		return 0, err
	}
	return v.realVal, nil
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if err := v.expect(KindBool); err != nil {
		return false, err
	}
	return v.boolVal, nil
}

// AsBytes returns the byte blob.
func (v *Value) AsBytes() ([]byte, error) {
	if err := v.expect(KindBytes); err != nil {
		return nil, err
	}
	return v.bytesVal, nil
}

// AsSeq returns the sequence elements.
func (v *Value) AsSeq() ([]*Value, error) {
	if err := v.expect(KindSeq); err != nil {
		return nil, err
	}
	return v.seqVal, nil
}

// AsMap returns the map entries in insertion order.
func (v *Value) AsMap() ([]MapEntry, error) {
	if err := v.expect(KindMap); err != nil {
		return nil, err
	}
	return v.mapVal, nil
}

func (v *Value) expect(k Kind) error {
	if v == nil {
		return fmt.Errorf("value: nil value")
	}
	if v.kind != k {
		return fmt.Errorf("value: expected %s, got %s", k, v.kind)
	}
	return nil
}

// Len returns the length of a sequence or map. A nil value has length 0.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindSeq:
		return len(v.seqVal)
	case KindMap:
		return len(v.mapVal)
	default:
		return 0
	}
}

// Get returns a value by key from a map, or nil.
func (v *Value) Get(key string) *Value {
	if v == nil || v.kind != KindMap {
		return nil
	}
	for _, e := range v.mapVal {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// Has reports whether a map holds key.
func (v *Value) Has(key string) bool {
	return v.Get(key) != nil
}

// Keys returns the map keys in insertion order.
func (v *Value) Keys() []string {
	if v == nil || v.kind != KindMap {
		return nil
	}
	keys := make([]string, len(v.mapVal))
	for i, e := range v.mapVal {
		keys[i] = e.Key
	}
	return keys
}

// Index returns the i-th element of a sequence.
func (v *Value) Index(i int) (*Value, error) {
	if v == nil || v.kind != KindSeq {
		return nil, fmt.Errorf("value: not a seq")
	}
	if i < 0 || i >= len(v.seqVal) {
		return nil, fmt.Errorf("value: index %d out of bounds (len=%d)", i, len(v.seqVal))
	}
	return v.seqVal[i], nil
}

// ============================================================
// Mutators
// ============================================================

// Set sets a key on a map, replacing an existing entry in place.
func (v *Value) Set(key string, val *Value) {
	if v == nil || v.kind != KindMap {
		panic("value: cannot set on non-map")
	}
	for i := range v.mapVal {
		if v.mapVal[i].Key == key {
			v.mapVal[i].Value = val
			return
		}
	}
	v.mapVal = append(v.mapVal, MapEntry{Key: key, Value: val})
}

// Append adds a value to a sequence.
func (v *Value) Append(val *Value) {
	if v.kind != KindSeq {
		panic("value: cannot append to non-seq")
	}
	v.seqVal = append(v.seqVal, val)
}

// ============================================================
// Structural equality
// ============================================================

// Equal reports whether a and b are structurally equal. Map entries are
// compared in order; int and uint values never compare equal to each other.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindString:
		return a.strVal == b.strVal
	case KindInt:
		return a.intVal == b.intVal
	case KindUint:
		return a.uintVal == b.uintVal
	case KindReal:
		return a.realVal == b.realVal
	case KindBool:
		return a.boolVal == b.boolVal
	case KindBytes:
		if len(a.bytesVal) != len(b.bytesVal) {
			return false
		}
		for i := range a.bytesVal {
			if a.bytesVal[i] != b.bytesVal[i] {
				return false
			}
		}
		return true
	case KindSeq:
		if len(a.seqVal) != len(b.seqVal) {
			return false
		}
		for i := range a.seqVal {
			if !Equal(a.seqVal[i], b.seqVal[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.mapVal) != len(b.mapVal) {
			return false
		}
		for i := range a.mapVal {
			if a.mapVal[i].Key != b.mapVal[i].Key || !Equal(a.mapVal[i].Value, b.mapVal[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
