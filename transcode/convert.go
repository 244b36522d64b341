package transcode

import (
	"fmt"

	"github.com/madig/readwrite-ufo-glif/plist"
	"github.com/madig/readwrite-ufo-glif/value"
)

// Convert maps a property-list value onto the dynamic value model. key is
// only used to label errors; it is the top-level lib key v was found under.
// Conversion is all-or-nothing: the first failing element aborts it.
func Convert(key string, v plist.Value) (*value.Value, error) {
	switch pv := v.(type) {
	case plist.String:
		return value.String(string(pv)), nil
	case plist.Boolean:
		return value.Bool(bool(pv)), nil
	case plist.Real:
		return value.Real(float64(pv)), nil
	case plist.Data:
		return value.Bytes([]byte(pv)), nil
	case *plist.Integer:
		if n, ok := pv.Int64(); ok {
			return value.Int(n), nil
		}
		if n, ok := pv.Uint64(); ok {
			return value.Uint(n), nil
		}
		return nil, &ConversionError{Key: key, Err: fmt.Errorf("%w: %s", ErrUnconvertibleInteger, pv)}
	case plist.Array:
		items := make([]*value.Value, 0, len(pv))
		for _, elem := range pv {
			item, err := Convert(key, elem)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return value.Seq(items...), nil
	case *plist.Dictionary:
		return ConvertDictionary(key, pv)
	}
	return nil, &ConversionError{Key: key, Err: fmt.Errorf("%w: %T", ErrUnhandledFormat, v)}
}

// ConvertDictionary converts every value of d, keeping keys and order.
func ConvertDictionary(key string, d *plist.Dictionary) (*value.Value, error) {
	entries := make([]value.MapEntry, 0, d.Len())
	for _, e := range d.Entries() {
		v, err := Convert(key, e.Value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, value.Entry(e.Key, v))
	}
	return value.Map(entries...), nil
}

// convertLib converts a lib dictionary, labelling errors with the top-level
// key each failing value belongs to.
func convertLib(d *plist.Dictionary) (*value.Value, error) {
	entries := make([]value.MapEntry, 0, d.Len())
	for _, e := range d.Entries() {
		v, err := Convert(e.Key, e.Value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, value.Entry(e.Key, v))
	}
	return value.Map(entries...), nil
}
