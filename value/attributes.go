package value

import "fmt"

// Attributes is the capability set a host object exposes so a transcoded
// map can be assigned onto it key by key. Containers are handed over as
// values; the host decides how to represent them.
type Attributes interface {
	SetString(key, v string) error
	SetInt(key string, v int64) error
	SetUint(key string, v uint64) error
	SetReal(key string, v float64) error
	SetBool(key string, v bool) error
	SetBytes(key string, v []byte) error
	SetSequence(key string, v []*Value) error
	SetMapping(key string, v []MapEntry) error
}

// Apply assigns every top-level entry of m onto dst in insertion order and
// stops at the first failing setter.
func Apply(dst Attributes, m *Value) error {
	entries, err := m.AsMap()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := set(dst, e.Key, e.Value); err != nil {
			return fmt.Errorf("value: set %q: %w", e.Key, err)
		}
	}
	return nil
}

func set(dst Attributes, key string, v *Value) error {
	switch v.kind {
	case KindString:
		return dst.SetString(key, v.strVal)
	case KindInt:
		return dst.SetInt(key, v.intVal)
	case KindUint:
		return dst.SetUint(key, v.uintVal)
	case KindReal:
		return dst.SetReal(key, v.realVal)
	case KindBool:
		return dst.SetBool(key, v.boolVal)
	case KindBytes:
		return dst.SetBytes(key, v.bytesVal)
	case KindSeq:
		return dst.SetSequence(key, v.seqVal)
	case KindMap:
		return dst.SetMapping(key, v.mapVal)
	}
	return fmt.Errorf("unknown kind %s", v.kind)
}

// Record is an Attributes implementation backed by an ordered map value.
// It is the in-process host used by the CLI and tests.
type Record struct {
	m *Value
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{m: Map()}
}

// Value returns the record contents as a map value.
func (r *Record) Value() *Value {
	return r.m
}

func (r *Record) SetString(key, v string) error { r.m.Set(key, String(v)); return nil }
func (r *Record) SetInt(key string, v int64) error { r.m.Set(key, Int(v)); return nil }
func (r *Record) SetUint(key string, v uint64) error { r.m.Set(key, Uint(v)); return nil }
func (r *Record) SetReal(key string, v float64) error { r.m.Set(key, Real(v)); return nil }
func (r *Record) SetBool(key string, v bool) error { r.m.Set(key, Bool(v)); return nil }
func (r *Record) SetBytes(key string, v []byte) error { r.m.Set(key, Bytes(v)); return nil }
func (r *Record) SetSequence(key string, v []*Value) error { r.m.Set(key, Seq(v...)); return nil }
func (r *Record) SetMapping(key string, v []MapEntry) error {
	r.m.Set(key, Map(v...))
	return nil
}
