package ufo

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type recordingPen struct {
	calls  []string
	failAt int
}

var errPen = errors.New("pen refused")

func (p *recordingPen) record(s string) error {
	p.calls = append(p.calls, s)
	if p.failAt > 0 && len(p.calls) == p.failAt {
		return errPen
	}
	return nil
}

func (p *recordingPen) BeginPath(identifier string) error {
	return p.record("begin " + identifier)
}

func (p *recordingPen) AddPoint(pt ContourPoint) error {
	return p.record(fmt.Sprintf("point %v %v %s", pt.X, pt.Y, pt.Type))
}

func (p *recordingPen) EndPath() error {
	return p.record("end")
}

func (p *recordingPen) AddComponent(baseGlyph string, t AffineTransform, identifier string) error {
	return p.record(fmt.Sprintf("component %s %v %s", baseGlyph, t.XOffset, identifier))
}

func TestDrawPoints(t *testing.T) {
	g := &Glyph{
		Name: "A",
		Contours: []Contour{
			{Identifier: "c0", Points: []ContourPoint{{X: 0, Y: 0, Type: PointLine}, {X: 1, Y: 1}}},
		},
		Components: []Component{{BaseGlyph: "B", Transformation: AffineTransform{XScale: 1, YScale: 1, XOffset: 5}, Identifier: "k"}},
	}
	pen := &recordingPen{}
	if err := DrawPoints(g, pen); err != nil {
		t.Fatalf("DrawPoints: %v", err)
	}
	want := "begin c0|point 0 0 line|point 1 1 offcurve|end|component B 5 k"
	if got := strings.Join(pen.calls, "|"); got != want {
		t.Errorf("calls = %s, want %s", got, want)
	}
}

func TestDrawPoints_StopsOnError(t *testing.T) {
	g := &Glyph{Name: "A", Contours: []Contour{{Points: []ContourPoint{{}, {}, {}}}}}
	pen := &recordingPen{failAt: 2}
	err := DrawPoints(g, pen)
	if !errors.Is(err, errPen) {
		t.Fatalf("err = %v, want errPen", err)
	}
	if len(pen.calls) != 2 {
		t.Errorf("pen received %d calls after failure, want 2", len(pen.calls))
	}
}
