package transcode

import (
	"errors"
	"fmt"
)

var (
	// ErrUnconvertibleInteger is returned for a plist integer that fits
	// neither int64 nor uint64.
	ErrUnconvertibleInteger = errors.New("integer out of signed and unsigned 64-bit range")

	// ErrUnhandledFormat is returned for a plist value kind with no dynamic
	// value counterpart, such as a date.
	ErrUnhandledFormat = errors.New("unhandled property-list format")

	// ErrCorruptInput is returned when sub-object libs cannot be
	// consolidated: a lib without identifier, or a repeated identifier.
	ErrCorruptInput = errors.New("corrupt input")
)

// Section names the lib a failure originated from.
type Section uint8

const (
	SectionGlyph Section = iota
	SectionAnchor
	SectionGuideline
	SectionContour
	SectionPoint
	SectionComponent
)

// String returns the section name.
func (s Section) String() string {
	switch s {
	case SectionGlyph:
		return "glyph lib"
	case SectionAnchor:
		return "anchor lib"
	case SectionGuideline:
		return "guideline lib"
	case SectionContour:
		return "contour lib"
	case SectionPoint:
		return "point lib"
	case SectionComponent:
		return "component lib"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// ConversionError reports a plist value that could not be converted. Key is
// the top-level lib key the value was found under.
type ConversionError struct {
	Key string
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("key %q: %v", e.Key, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// CorruptInputError reports a sub-object lib that cannot be consolidated.
// Index is the position of the sub-object within its parent list.
type CorruptInputError struct {
	Identifier string
	Index      int
	Reason     string
}

func (e *CorruptInputError) Error() string {
	if e.Identifier == "" {
		return fmt.Sprintf("%v: object %d: %s", ErrCorruptInput, e.Index, e.Reason)
	}
	return fmt.Sprintf("%v: object %d (identifier %q): %s", ErrCorruptInput, e.Index, e.Identifier, e.Reason)
}

func (e *CorruptInputError) Unwrap() error {
	return ErrCorruptInput
}

// Error wraps any failure of a glyph transcode with the glyph name and the
// lib section that triggered it.
type Error struct {
	Glyph   string
	Section Section
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transcode: glyph %q: %s: %v", e.Glyph, e.Section, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
