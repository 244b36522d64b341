// Package transcode converts UFO glyph entities into the dynamic value graph.
//
// The glyph dictionary follows the .glif data model with default values
// left out: a key is omitted when its value is zero, empty, absent or the
// identity transform. Contours and components are always present.
//
//	unicodes     codepoints, omitted when empty
//	height       omitted when 0
//	width        omitted when 0
//	image        omitted when absent
//	anchors      omitted when empty
//	guidelines   omitted when empty
//	lib          glyph lib plus public.objectLibs, omitted when empty
//	contours     always present
//	components   always present
//	note         omitted when absent
//
// Sub-object libs never appear inline; they are moved into the glyph lib
// under public.objectLibs, keyed by the sub-object identifier.
//
// Transcoding is a pure function of the glyph. Distinct glyphs may be
// transcoded from several goroutines at once.
package transcode

import (
	"strconv"
	"strings"

	"github.com/madig/readwrite-ufo-glif/ufo"
	"github.com/madig/readwrite-ufo-glif/value"
)

// Glyph builds the canonical dictionary for g. On failure no partial result
// is returned and the error is an *Error naming the glyph and lib section.
func Glyph(g *ufo.Glyph) (*value.Value, error) {
	objectLibs, err := collectObjectLibs(g)
	if err != nil {
		return nil, err
	}

	lib, err := glyphLib(g, objectLibs)
	if err != nil {
		return nil, err
	}

	out := value.Map()
	if len(g.Codepoints) > 0 {
		codepoints := make([]*value.Value, len(g.Codepoints))
		for i, c := range g.Codepoints {
			codepoints[i] = value.Int(int64(c))
		}
		out.Set("unicodes", value.Seq(codepoints...))
	}
	if g.Height != 0 {
		out.Set("height", value.Real(g.Height))
	}
	if g.Width != 0 {
		out.Set("width", value.Real(g.Width))
	}
	if g.Image != nil {
		out.Set("image", image(g.Image))
	}
	if len(g.Anchors) > 0 {
		anchors := make([]*value.Value, len(g.Anchors))
		for i := range g.Anchors {
			anchors[i] = anchor(&g.Anchors[i])
		}
		out.Set("anchors", value.Seq(anchors...))
	}
	if len(g.Guidelines) > 0 {
		guidelines := make([]*value.Value, len(g.Guidelines))
		for i := range g.Guidelines {
			guidelines[i] = guideline(&g.Guidelines[i])
		}
		out.Set("guidelines", value.Seq(guidelines...))
	}
	if lib.Len() > 0 {
		out.Set("lib", lib)
	}

	contours := make([]*value.Value, len(g.Contours))
	for i := range g.Contours {
		contours[i] = contour(&g.Contours[i])
	}
	out.Set("contours", value.Seq(contours...))

	components := make([]*value.Value, len(g.Components))
	for i := range g.Components {
		components[i] = component(&g.Components[i])
	}
	out.Set("components", value.Seq(components...))

	if g.Note != nil {
		out.Set("note", value.String(*g.Note))
	}
	return out, nil
}

// Attributes transcodes g and assigns the result onto dst key by key.
// Nothing is assigned when the transcode fails.
func Attributes(g *ufo.Glyph, dst value.Attributes) error {
	m, err := Glyph(g)
	if err != nil {
		return err
	}
	return value.Apply(dst, m)
}

func glyphLib(g *ufo.Glyph, objectLibs []objectLib) (*value.Value, error) {
	lib, err := convertLib(g.Lib)
	if err != nil {
		return nil, &Error{Glyph: g.Name, Section: SectionGlyph, Err: err}
	}
	if len(objectLibs) == 0 {
		return lib, nil
	}
	consolidated := value.Map()
	for _, ol := range objectLibs {
		v, err := convertLib(ol.lib)
		if err != nil {
			return nil, &Error{Glyph: g.Name, Section: ol.section, Err: err}
		}
		consolidated.Set(ol.identifier, v)
	}
	lib.Set(ObjectLibsKey, consolidated)
	return lib, nil
}

// FormatColor renders c as the .glif "r,g,b,a" string using the shortest
// decimal form of each channel.
func FormatColor(c ufo.Color) string {
	channels := [4]float64{c.Red, c.Green, c.Blue, c.Alpha}
	parts := make([]string, len(channels))
	for i, ch := range channels {
		parts[i] = strconv.FormatFloat(ch, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func setColor(m *value.Value, c *ufo.Color) {
	if c != nil {
		m.Set("color", value.String(FormatColor(*c)))
	}
}

func setString(m *value.Value, key string, s *string) {
	if s != nil {
		m.Set(key, value.String(*s))
	}
}

func setIdentifier(m *value.Value, id string) {
	if id != "" {
		m.Set("identifier", value.String(id))
	}
}

func setTransformation(m *value.Value, t ufo.AffineTransform) {
	if t.IsIdentity() {
		return
	}
	arr := t.Array()
	items := make([]*value.Value, len(arr))
	for i, f := range arr {
		items[i] = value.Real(f)
	}
	m.Set("transformation", value.Seq(items...))
}

func image(img *ufo.Image) *value.Value {
	m := value.Map(value.Entry("fileName", value.String(img.FileName)))
	setTransformation(m, img.Transformation)
	setColor(m, img.Color)
	return m
}

func anchor(a *ufo.Anchor) *value.Value {
	m := value.Map()
	setString(m, "name", a.Name)
	m.Set("x", value.Real(a.X))
	m.Set("y", value.Real(a.Y))
	setColor(m, a.Color)
	setIdentifier(m, a.Identifier)
	return m
}

func guideline(g *ufo.Guideline) *value.Value {
	m := value.Map()
	switch g.Line.Kind {
	case ufo.LineVertical:
		m.Set("x", value.Real(g.Line.X))
	case ufo.LineHorizontal:
		m.Set("y", value.Real(g.Line.Y))
	case ufo.LineAngled:
		m.Set("x", value.Real(g.Line.X))
		m.Set("y", value.Real(g.Line.Y))
		m.Set("angle", value.Real(g.Line.Angle))
	}
	setString(m, "name", g.Name)
	setColor(m, g.Color)
	setIdentifier(m, g.Identifier)
	return m
}

func contour(c *ufo.Contour) *value.Value {
	points := make([]*value.Value, len(c.Points))
	for i := range c.Points {
		points[i] = point(&c.Points[i])
	}
	m := value.Map(value.Entry("points", value.Seq(points...)))
	setIdentifier(m, c.Identifier)
	return m
}

func point(p *ufo.ContourPoint) *value.Value {
	m := value.Map()
	setString(m, "name", p.Name)
	m.Set("x", value.Real(p.X))
	m.Set("y", value.Real(p.Y))
	if p.Type != ufo.PointOffCurve {
		m.Set("type", value.String(p.Type.String()))
	}
	m.Set("smooth", value.Bool(p.Smooth))
	setIdentifier(m, p.Identifier)
	return m
}

func component(c *ufo.Component) *value.Value {
	m := value.Map(value.Entry("baseGlyph", value.String(c.BaseGlyph)))
	setTransformation(m, c.Transformation)
	setIdentifier(m, c.Identifier)
	return m
}
