package ufo

import "fmt"

// PointPen receives a glyph's outline one point at a time, following the
// point pen protocol used by UFO tooling.
type PointPen interface {
	BeginPath(identifier string) error
	AddPoint(pt ContourPoint) error
	EndPath() error
	AddComponent(baseGlyph string, t AffineTransform, identifier string) error
}

// DrawPoints replays the contours and then the components of g into pen.
func DrawPoints(g *Glyph, pen PointPen) error {
	for i, c := range g.Contours {
		if err := pen.BeginPath(c.Identifier); err != nil {
			return fmt.Errorf("ufo: glyph %q: contour %d: %w", g.Name, i, err)
		}
		for j, p := range c.Points {
			if err := pen.AddPoint(p); err != nil {
				return fmt.Errorf("ufo: glyph %q: contour %d point %d: %w", g.Name, i, j, err)
			}
		}
		if err := pen.EndPath(); err != nil {
			return fmt.Errorf("ufo: glyph %q: contour %d: %w", g.Name, i, err)
		}
	}
	for i, c := range g.Components {
		if err := pen.AddComponent(c.BaseGlyph, c.Transformation, c.Identifier); err != nil {
			return fmt.Errorf("ufo: glyph %q: component %d: %w", g.Name, i, err)
		}
	}
	return nil
}
