package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// ============================================================
// Native Go bridge
// ============================================================

// ToAny converts a Value to plain Go values: string, int64, uint64, float64,
// bool, []byte, []any and map[string]any. Map order is lost; use Keys on
// the source value when order matters.
func ToAny(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindString:
		return v.strVal
	case KindInt:
		return v.intVal
	case KindUint:
		return v.uintVal
	case KindReal:
		return v.realVal
	case KindBool:
		return v.boolVal
	case KindBytes:
		return v.bytesVal
	case KindSeq:
		out := make([]any, len(v.seqVal))
		for i, e := range v.seqVal {
			out[i] = ToAny(e)
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.mapVal))
		for _, e := range v.mapVal {
			out[e.Key] = ToAny(e.Value)
		}
		return out
	}
	return nil
}

// ============================================================
// JSON rendering
// ============================================================

// MarshalJSON renders the value as JSON, keeping map keys in insertion order.
// Bytes become base64 strings; the int/uint/real distinction is not
// preserved by JSON.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToJSON renders v as compact JSON.
func ToJSON(v *Value) ([]byte, error) {
	return v.MarshalJSON()
}

// ToJSONIndent renders v as indented JSON.
func ToJSONIndent(v *Value, indent string) ([]byte, error) {
	raw, err := v.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v *Value) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}
	switch v.kind {
	case KindReal:
		if math.IsNaN(v.realVal) || math.IsInf(v.realVal, 0) {
			return fmt.Errorf("value: %v has no JSON representation", v.realVal)
		}
	case KindSeq:
		buf.WriteByte('[')
		for i, e := range v.seqVal {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return fmt.Errorf("seq[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
		return nil
	case KindMap:
		buf.WriteByte('{')
		for i, e := range v.mapVal {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(e.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSON(buf, e.Value); err != nil {
				return fmt.Errorf("map[%q]: %w", e.Key, err)
			}
		}
		buf.WriteByte('}')
		return nil
	}
	raw, err := json.Marshal(ToAny(v))
	if err != nil {
		return err
	}
	buf.Write(raw)
	return nil
}
