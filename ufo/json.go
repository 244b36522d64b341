package ufo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/madig/readwrite-ufo-glif/plist"
)

// ============================================================
// JSON glyph documents
// ============================================================
//
// A JSON rendering of a .glif file, used to feed the transcoder without an
// XML loader:
//
//	{
//	  "name": "A",
//	  "unicodes": [65],
//	  "width": 600,
//	  "anchors": [{"name": "top", "x": 100, "y": 700, "identifier": "a1", "lib": {...}}],
//	  "guidelines": [{"x": 10}, {"y": 20}, {"x": 1, "y": 2, "angle": 45}],
//	  "contours": [{"points": [{"x": 0, "y": 0, "type": "line"}]}],
//	  "components": [{"base": "B", "transformation": [1, 0, 0, 1, 10, 0]}],
//	  "lib": {...},
//	  "note": "..."
//	}
//
// Lib objects are read with plist.ParseJSON, so key order is kept.

type jsonGlyph struct {
	Name       string          `json:"name"`
	Unicodes   []int64         `json:"unicodes"`
	Height     float64         `json:"height"`
	Width      float64         `json:"width"`
	Image      *jsonImage      `json:"image"`
	Anchors    []jsonAnchor    `json:"anchors"`
	Guidelines []jsonGuideline `json:"guidelines"`
	Contours   []jsonContour   `json:"contours"`
	Components []jsonComponent `json:"components"`
	Lib        json.RawMessage `json:"lib"`
	Note       *string         `json:"note"`
}

type jsonImage struct {
	FileName       string      `json:"fileName"`
	Transformation *[6]float64 `json:"transformation"`
	Color          *string     `json:"color"`
}

type jsonAnchor struct {
	Name       *string         `json:"name"`
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	Color      *string         `json:"color"`
	Identifier string          `json:"identifier"`
	Lib        json.RawMessage `json:"lib"`
}

type jsonGuideline struct {
	X          *float64        `json:"x"`
	Y          *float64        `json:"y"`
	Angle      *float64        `json:"angle"`
	Name       *string         `json:"name"`
	Color      *string         `json:"color"`
	Identifier string          `json:"identifier"`
	Lib        json.RawMessage `json:"lib"`
}

type jsonContour struct {
	Points     []jsonPoint     `json:"points"`
	Identifier string          `json:"identifier"`
	Lib        json.RawMessage `json:"lib"`
}

type jsonPoint struct {
	Name       *string         `json:"name"`
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	Type       string          `json:"type"`
	Smooth     bool            `json:"smooth"`
	Identifier string          `json:"identifier"`
	Lib        json.RawMessage `json:"lib"`
}

type jsonComponent struct {
	Base           string          `json:"base"`
	Transformation *[6]float64     `json:"transformation"`
	Identifier     string          `json:"identifier"`
	Lib            json.RawMessage `json:"lib"`
}

// LoadGlyphJSON reads a JSON glyph document from path.
func LoadGlyphJSON(path string) (*Glyph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := ReadGlyphJSON(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return g, nil
}

// ReadGlyphJSON decodes a JSON glyph document.
func ReadGlyphJSON(r io.Reader) (*Glyph, error) {
	var doc jsonGlyph
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("ufo: JSON parse error: %w", err)
	}
	return doc.glyph()
}

func (doc *jsonGlyph) glyph() (*Glyph, error) {
	if doc.Name == "" {
		return nil, fmt.Errorf("ufo: glyph has no name")
	}
	g := &Glyph{
		Name:   doc.Name,
		Height: doc.Height,
		Width:  doc.Width,
		Note:   doc.Note,
	}

	seen := make(map[rune]bool, len(doc.Unicodes))
	for _, u := range doc.Unicodes {
		if u < 0 || u > 0x10FFFF {
			return nil, fmt.Errorf("ufo: glyph %q: codepoint %d out of range", doc.Name, u)
		}
		if r := rune(u); !seen[r] {
			seen[r] = true
			g.Codepoints = append(g.Codepoints, r)
		}
	}

	lib, err := plist.ParseJSONDictionary(doc.Lib)
	if err != nil {
		return nil, fmt.Errorf("ufo: glyph %q: lib: %w", doc.Name, err)
	}
	g.Lib = lib

	if doc.Image != nil {
		img := &Image{FileName: doc.Image.FileName, Transformation: transform(doc.Image.Transformation)}
		if img.Color, err = color(doc.Image.Color); err != nil {
			return nil, fmt.Errorf("ufo: glyph %q: image: %w", doc.Name, err)
		}
		g.Image = img
	}

	for i, a := range doc.Anchors {
		anchor := Anchor{Name: a.Name, X: a.X, Y: a.Y, Identifier: a.Identifier}
		if anchor.Color, err = color(a.Color); err != nil {
			return nil, fmt.Errorf("ufo: glyph %q: anchor %d: %w", doc.Name, i, err)
		}
		if anchor.Lib, err = objectLib(a.Lib); err != nil {
			return nil, fmt.Errorf("ufo: glyph %q: anchor %d: %w", doc.Name, i, err)
		}
		g.Anchors = append(g.Anchors, anchor)
	}

	for i, gl := range doc.Guidelines {
		guide := Guideline{Name: gl.Name, Identifier: gl.Identifier}
		if guide.Line, err = line(gl); err != nil {
			return nil, fmt.Errorf("ufo: glyph %q: guideline %d: %w", doc.Name, i, err)
		}
		if guide.Color, err = color(gl.Color); err != nil {
			return nil, fmt.Errorf("ufo: glyph %q: guideline %d: %w", doc.Name, i, err)
		}
		if guide.Lib, err = objectLib(gl.Lib); err != nil {
			return nil, fmt.Errorf("ufo: glyph %q: guideline %d: %w", doc.Name, i, err)
		}
		g.Guidelines = append(g.Guidelines, guide)
	}

	for i, c := range doc.Contours {
		contour := Contour{Identifier: c.Identifier}
		if contour.Lib, err = objectLib(c.Lib); err != nil {
			return nil, fmt.Errorf("ufo: glyph %q: contour %d: %w", doc.Name, i, err)
		}
		for j, p := range c.Points {
			typ, ok := ParsePointType(p.Type)
			if !ok {
				return nil, fmt.Errorf("ufo: glyph %q: contour %d point %d: unknown type %q", doc.Name, i, j, p.Type)
			}
			pt := ContourPoint{Name: p.Name, X: p.X, Y: p.Y, Type: typ, Smooth: p.Smooth, Identifier: p.Identifier}
			if pt.Lib, err = objectLib(p.Lib); err != nil {
				return nil, fmt.Errorf("ufo: glyph %q: contour %d point %d: %w", doc.Name, i, j, err)
			}
			contour.Points = append(contour.Points, pt)
		}
		g.Contours = append(g.Contours, contour)
	}

	for i, c := range doc.Components {
		if c.Base == "" {
			return nil, fmt.Errorf("ufo: glyph %q: component %d has no base glyph", doc.Name, i)
		}
		comp := Component{BaseGlyph: c.Base, Transformation: transform(c.Transformation), Identifier: c.Identifier}
		if comp.Lib, err = objectLib(c.Lib); err != nil {
			return nil, fmt.Errorf("ufo: glyph %q: component %d: %w", doc.Name, i, err)
		}
		g.Components = append(g.Components, comp)
	}

	return g, nil
}

func transform(t *[6]float64) AffineTransform {
	if t == nil {
		return Identity
	}
	return AffineTransform{XScale: t[0], XYScale: t[1], YXScale: t[2], YScale: t[3], XOffset: t[4], YOffset: t[5]}
}

func color(s *string) (*Color, error) {
	if s == nil {
		return nil, nil
	}
	c, err := ParseColor(*s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// objectLib returns nil for an absent or empty lib so that only non-empty
// libs are attached to sub-objects.
func objectLib(raw json.RawMessage) (*plist.Dictionary, error) {
	d, err := plist.ParseJSONDictionary(raw)
	if err != nil {
		return nil, fmt.Errorf("lib: %w", err)
	}
	if d.Len() == 0 {
		return nil, nil
	}
	return d, nil
}

func line(gl jsonGuideline) (Line, error) {
	switch {
	case gl.X != nil && gl.Y != nil && gl.Angle != nil:
		return AngledLine(*gl.X, *gl.Y, *gl.Angle), nil
	case gl.X != nil && gl.Y == nil && gl.Angle == nil:
		return VerticalLine(*gl.X), nil
	case gl.Y != nil && gl.X == nil && gl.Angle == nil:
		return HorizontalLine(*gl.Y), nil
	}
	return Line{}, fmt.Errorf("guideline needs x, y, or x, y and angle")
}
