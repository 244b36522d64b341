package transcode

import (
	"github.com/madig/readwrite-ufo-glif/plist"
	"github.com/madig/readwrite-ufo-glif/ufo"
)

// ObjectLibsKey is the glyph lib key the consolidated sub-object libs are
// stored under.
const ObjectLibsKey = "public.objectLibs"

type objectLib struct {
	identifier string
	section    Section
	lib        *plist.Dictionary
}

// ObjectLibs collects the libs attached to a glyph's anchors, guidelines,
// contours, points and components into one dictionary keyed by identifier.
// Visiting order is anchors, guidelines, each contour followed by its
// points, then components. The glyph is not modified.
//
// A sub-object with a lib but no identifier, or two sub-objects sharing an
// identifier, yield an *Error wrapping ErrCorruptInput.
func ObjectLibs(g *ufo.Glyph) (*plist.Dictionary, error) {
	libs, err := collectObjectLibs(g)
	if err != nil {
		return nil, err
	}
	d := plist.NewDictionary()
	for _, ol := range libs {
		d.Set(ol.identifier, ol.lib)
	}
	return d, nil
}

func collectObjectLibs(g *ufo.Glyph) ([]objectLib, error) {
	c := collector{glyph: g.Name, seen: make(map[string]bool)}
	for i := range g.Anchors {
		a := &g.Anchors[i]
		if err := c.add(SectionAnchor, i, a.Identifier, a.Lib); err != nil {
			return nil, err
		}
	}
	for i := range g.Guidelines {
		gl := &g.Guidelines[i]
		if err := c.add(SectionGuideline, i, gl.Identifier, gl.Lib); err != nil {
			return nil, err
		}
	}
	for i := range g.Contours {
		contour := &g.Contours[i]
		if err := c.add(SectionContour, i, contour.Identifier, contour.Lib); err != nil {
			return nil, err
		}
		for j := range contour.Points {
			p := &contour.Points[j]
			if err := c.add(SectionPoint, j, p.Identifier, p.Lib); err != nil {
				return nil, err
			}
		}
	}
	for i := range g.Components {
		comp := &g.Components[i]
		if err := c.add(SectionComponent, i, comp.Identifier, comp.Lib); err != nil {
			return nil, err
		}
	}
	return c.libs, nil
}

type collector struct {
	glyph string
	seen  map[string]bool
	libs  []objectLib
}

func (c *collector) add(section Section, index int, identifier string, lib *plist.Dictionary) error {
	if identifier != "" {
		if c.seen[identifier] {
			return &Error{Glyph: c.glyph, Section: section, Err: &CorruptInputError{
				Identifier: identifier,
				Index:      index,
				Reason:     "identifier already used by another object",
			}}
		}
		c.seen[identifier] = true
	}
	if lib.Len() == 0 {
		return nil
	}
	if identifier == "" {
		return &Error{Glyph: c.glyph, Section: section, Err: &CorruptInputError{
			Index:  index,
			Reason: "lib present without identifier",
		}}
	}
	c.libs = append(c.libs, objectLib{identifier: identifier, section: section, lib: lib})
	return nil
}
