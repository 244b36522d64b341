package plist

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// ============================================================
// JSON reader
// ============================================================
//
// Reads property-list values from JSON documents, keeping object key order.
// Types JSON cannot express use single-key marker objects:
//
//	{"$data": "<base64>"}   -> Data
//	{"$date": "<RFC 3339>"} -> Date
//
// Numbers without fraction or exponent become Integer at full precision;
// all other numbers become Real.

const (
	markerData = "$data"
	markerDate = "$date"
)

// ParseJSON parses a single JSON document into a property-list value.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := ReadJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("plist: trailing data after JSON value")
	}
	return v, nil
}

// ParseJSONDictionary parses a JSON object into a Dictionary. Empty input and
// JSON null yield an empty dictionary.
func ParseJSONDictionary(data []byte) (*Dictionary, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return NewDictionary(), nil
	}
	v, err := ParseJSON(trimmed)
	if err != nil {
		return nil, err
	}
	d, ok := v.(*Dictionary)
	if !ok {
		return nil, fmt.Errorf("plist: expected JSON object, got %T", v)
	}
	return d, nil
}

// ReadJSON reads the next JSON value from dec. The decoder should have
// UseNumber enabled; plain float64 numbers are accepted as Real.
func ReadJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("plist: %w", err)
	}
	return readToken(dec, tok)
}

func readToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			return readArray(dec)
		case '{':
			return readObject(dec)
		}
		return nil, fmt.Errorf("plist: unexpected delimiter %q", t)
	case string:
		return String(t), nil
	case bool:
		return Boolean(t), nil
	case json.Number:
		return parseNumber(string(t))
	case float64:
		return Real(t), nil
	case nil:
		return nil, fmt.Errorf("plist: null has no property-list representation")
	}
	return nil, fmt.Errorf("plist: unsupported JSON token %T", tok)
}

func parseNumber(s string) (Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		if i, ok := ParseInteger(s); ok {
			return i, nil
		}
	}
	f, err := json.Number(s).Float64()
	if err != nil {
		return nil, fmt.Errorf("plist: invalid number %q: %w", s, err)
	}
	return Real(f), nil
}

func readArray(dec *json.Decoder) (Value, error) {
	arr := Array{}
	for dec.More() {
		v, err := ReadJSON(dec)
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", len(arr), err)
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("plist: %w", err)
	}
	return arr, nil
}

func readObject(dec *json.Decoder) (Value, error) {
	d := NewDictionary()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("plist: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("plist: object key is %T", tok)
		}
		v, err := ReadJSON(dec)
		if err != nil {
			return nil, fmt.Errorf("object[%q]: %w", key, err)
		}
		d.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("plist: %w", err)
	}
	if d.Len() == 1 {
		return fromMarker(d)
	}
	return d, nil
}

func fromMarker(d *Dictionary) (Value, error) {
	e := d.entries[0]
	s, ok := e.Value.(String)
	if !ok {
		return d, nil
	}
	switch e.Key {
	case markerData:
		data, err := base64.StdEncoding.DecodeString(string(s))
		if err != nil {
			return nil, fmt.Errorf("plist: invalid base64 in %s marker: %w", markerData, err)
		}
		return Data(data), nil
	case markerDate:
		t, err := time.Parse(time.RFC3339, string(s))
		if err != nil {
			return nil, fmt.Errorf("plist: invalid time in %s marker: %w", markerDate, err)
		}
		return Date(t), nil
	}
	return d, nil
}
