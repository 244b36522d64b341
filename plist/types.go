// Package plist defines the property-list values attached to glyphs and
// their sub-objects ("lib" data).
//
// The variant set is closed: String, Integer, Real, Boolean, Data, Date,
// Array and Dictionary. Integers are arbitrary precision so that a loader
// can hand over any literal it parsed; deciding what fits is left to the
// consumer.
package plist

import (
	"math/big"
	"time"
)

// Value is a property-list value. Only types in this package implement it.
type Value interface {
	plistValue()
}

// String is a plist <string>.
type String string

// Real is a plist <real>.
type Real float64

// Boolean is a plist <true/> or <false/>.
type Boolean bool

// Data is a plist <data> blob.
type Data []byte

// Date is a plist <date>.
type Date time.Time

// Array is a plist <array>.
type Array []Value

// Integer is a plist <integer> of arbitrary magnitude.
type Integer struct {
	v big.Int
}

func (String) plistValue() {}
func (Real) plistValue() {}
func (Boolean) plistValue() {}
func (Data) plistValue() {}
func (Date) plistValue() {}
func (Array) plistValue() {}
func (*Integer) plistValue() {}
func (*Dictionary) plistValue() {}

// Int creates an integer from an int64.
func Int(n int64) *Integer {
	i := &Integer{}
	i.v.SetInt64(n)
	return i
}

// Uint creates an integer from a uint64.
func Uint(n uint64) *Integer {
	i := &Integer{}
	i.v.SetUint64(n)
	return i
}

// BigInt creates an integer from a big.Int. The argument is copied.
func BigInt(n *big.Int) *Integer {
	i := &Integer{}
	i.v.Set(n)
	return i
}

// ParseInteger parses a base-10 integer literal.
func ParseInteger(s string) (*Integer, bool) {
	i := &Integer{}
	if _, ok := i.v.SetString(s, 10); !ok {
		return nil, false
	}
	return i, true
}

// Int64 returns the value if it fits a signed 64-bit integer.
func (i *Integer) Int64() (int64, bool) {
	if !i.v.IsInt64() {
		return 0, false
	}
	return i.v.Int64(), true
}

// Uint64 returns the value if it fits an unsigned 64-bit integer.
func (i *Integer) Uint64() (uint64, bool) {
	if !i.v.IsUint64() {
		return 0, false
	}
	return i.v.Uint64(), true
}

// String returns the base-10 representation.
func (i *Integer) String() string {
	return i.v.String()
}

// Entry is one key of a Dictionary.
type Entry struct {
	Key   string
	Value Value
}

// Dictionary is a plist <dict>. Keys are unique and keep insertion order.
type Dictionary struct {
	entries []Entry
	index   map[string]int
}

// NewDictionary creates a dictionary from entries; a repeated key replaces
// the earlier value in place.
func NewDictionary(entries ...Entry) *Dictionary {
	d := &Dictionary{}
	for _, e := range entries {
		d.Set(e.Key, e.Value)
	}
	return d
}

// Set inserts or replaces key.
func (d *Dictionary) Set(key string, v Value) {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if i, ok := d.index[key]; ok {
		d.entries[i].Value = v
		return
	}
	d.index[key] = len(d.entries)
	d.entries = append(d.entries, Entry{Key: key, Value: v})
}

// Get returns the value for key.
func (d *Dictionary) Get(key string) (Value, bool) {
	if d == nil {
		return nil, false
	}
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.entries[i].Value, true
}

// Len returns the number of keys. A nil dictionary is empty.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Entries returns the entries in insertion order. The slice must not be
// modified.
func (d *Dictionary) Entries() []Entry {
	if d == nil {
		return nil
	}
	return d.entries
}
