// Package ufo holds the in-memory glyph entities read from a UFO .glif
// file: the glyph itself and its anchors, guidelines, contours, points,
// components and image.
//
// Entities are produced by a loader and treated as read-only afterwards.
// Sub-objects may carry an identifier and a lib; the loader guarantees an
// identifier whenever a lib is present.
package ufo

import (
	"fmt"

	"github.com/madig/readwrite-ufo-glif/plist"
)

// Glyph is a single glyph of a UFO layer.
type Glyph struct {
	Name       string
	Codepoints []rune
	Height     float64
	Width      float64
	Image      *Image
	Anchors    []Anchor
	Guidelines []Guideline
	Contours   []Contour
	Components []Component
	Lib        *plist.Dictionary
	Note       *string
}

// Image references an image file drawn behind the glyph.
type Image struct {
	FileName       string
	Transformation AffineTransform
	Color          *Color
}

// Anchor is a named attachment point.
type Anchor struct {
	Name       *string
	X          float64
	Y          float64
	Color      *Color
	Identifier string
	Lib        *plist.Dictionary
}

// Line describes where a guideline runs.
type Line struct {
	Kind  LineKind
	X     float64
	Y     float64
	Angle float64
}

// LineKind distinguishes guideline orientations.
type LineKind uint8

const (
	LineVertical   LineKind = iota // X only
	LineHorizontal                 // Y only
	LineAngled                     // X, Y and Angle
)

// String returns the kind name.
func (k LineKind) String() string {
	switch k {
	case LineVertical:
		return "vertical"
	case LineHorizontal:
		return "horizontal"
	case LineAngled:
		return "angled"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// VerticalLine returns a vertical line through x.
func VerticalLine(x float64) Line { return Line{Kind: LineVertical, X: x} }

// HorizontalLine returns a horizontal line through y.
func HorizontalLine(y float64) Line { return Line{Kind: LineHorizontal, Y: y} }

// AngledLine returns a line through (x, y) at angle degrees.
func AngledLine(x, y, angle float64) Line {
	return Line{Kind: LineAngled, X: x, Y: y, Angle: angle}
}

// Guideline is a reference line.
type Guideline struct {
	Line       Line
	Name       *string
	Color      *Color
	Identifier string
	Lib        *plist.Dictionary
}

// Contour is a closed or open path of points.
type Contour struct {
	Points     []ContourPoint
	Identifier string
	Lib        *plist.Dictionary
}

// PointType is the segment type of a contour point.
type PointType uint8

const (
	PointOffCurve PointType = iota
	PointMove
	PointLine
	PointCurve
	PointQCurve
)

// String returns the .glif attribute value. Off-curve points have none.
func (t PointType) String() string {
	switch t {
	case PointOffCurve:
		return "offcurve"
	case PointMove:
		return "move"
	case PointLine:
		return "line"
	case PointCurve:
		return "curve"
	case PointQCurve:
		return "qcurve"
	default:
		return fmt.Sprintf("unknown(%d)", t)
	}
}

// ParsePointType parses a .glif point type; the empty string is off-curve.
func ParsePointType(s string) (PointType, bool) {
	switch s {
	case "", "offcurve":
		return PointOffCurve, true
	case "move":
		return PointMove, true
	case "line":
		return PointLine, true
	case "curve":
		return PointCurve, true
	case "qcurve":
		return PointQCurve, true
	default:
		return 0, false
	}
}

// ContourPoint is a single point of a contour.
type ContourPoint struct {
	Name       *string
	X          float64
	Y          float64
	Type       PointType
	Smooth     bool
	Identifier string
	Lib        *plist.Dictionary
}

// Component references another glyph drawn with a transformation.
type Component struct {
	BaseGlyph      string
	Transformation AffineTransform
	Identifier     string
	Lib            *plist.Dictionary
}

// AffineTransform is a 2x3 affine matrix.
type AffineTransform struct {
	XScale  float64
	XYScale float64
	YXScale float64
	YScale  float64
	XOffset float64
	YOffset float64
}

// Identity is the identity transform.
var Identity = AffineTransform{XScale: 1, YScale: 1}

// IsIdentity reports whether t equals Identity.
func (t AffineTransform) IsIdentity() bool {
	return t == Identity
}

// Array returns the six values in .glif attribute order.
func (t AffineTransform) Array() [6]float64 {
	return [6]float64{t.XScale, t.XYScale, t.YXScale, t.YScale, t.XOffset, t.YOffset}
}

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	Red   float64
	Green float64
	Blue  float64
	Alpha float64
}
