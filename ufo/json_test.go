package ufo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/madig/readwrite-ufo-glif/plist"
)

const glyphA = `{
  "name": "A",
  "unicodes": [65, 97, 65],
  "width": 600,
  "image": {"fileName": "a.png", "color": "1,0,0,0.5"},
  "anchors": [{"name": "top", "x": 100, "y": 700, "identifier": "anc1", "lib": {"flag": true}}],
  "guidelines": [{"x": 10}, {"y": 20, "name": "base"}, {"x": 1, "y": 2, "angle": 45}],
  "contours": [{"identifier": "c0", "lib": {}, "points": [
    {"x": 0, "y": 0, "type": "line"},
    {"x": 5, "y": 5},
    {"x": 10, "y": 0, "type": "curve", "smooth": true, "name": "p"}
  ]}],
  "components": [{"base": "B", "transformation": [1, 0, 0, 1, 20, 0], "identifier": "cmp"}],
  "lib": {"z": 1, "a": {"$data": "AAE="}},
  "note": "hello"
}`

func TestReadGlyphJSON(t *testing.T) {
	g, err := ReadGlyphJSON(strings.NewReader(glyphA))
	if err != nil {
		t.Fatalf("ReadGlyphJSON: %v", err)
	}
	if g.Name != "A" || g.Width != 600 || g.Height != 0 {
		t.Errorf("basic fields wrong: %+v", g)
	}
	if len(g.Codepoints) != 2 || g.Codepoints[0] != 'A' || g.Codepoints[1] != 'a' {
		t.Errorf("codepoints = %v, want [A a]", g.Codepoints)
	}
	if g.Image == nil || !g.Image.Transformation.IsIdentity() || g.Image.Color.Alpha != 0.5 {
		t.Errorf("image = %+v", g.Image)
	}
	if a := g.Anchors[0]; *a.Name != "top" || a.Identifier != "anc1" || a.Lib.Len() != 1 {
		t.Errorf("anchor = %+v", a)
	}
	kinds := []LineKind{LineVertical, LineHorizontal, LineAngled}
	for i, k := range kinds {
		if g.Guidelines[i].Line.Kind != k {
			t.Errorf("guideline %d kind = %s, want %s", i, g.Guidelines[i].Line.Kind, k)
		}
	}
	c := g.Contours[0]
	if c.Lib != nil {
		t.Error("empty contour lib should be nil")
	}
	if c.Points[1].Type != PointOffCurve || c.Points[2].Type != PointCurve || !c.Points[2].Smooth {
		t.Errorf("points = %+v", c.Points)
	}
	if comp := g.Components[0]; comp.BaseGlyph != "B" || comp.Transformation.XOffset != 20 {
		t.Errorf("component = %+v", comp)
	}
	entries := g.Lib.Entries()
	if len(entries) != 2 || entries[0].Key != "z" || entries[1].Key != "a" {
		t.Errorf("lib entries = %v", entries)
	}
	if d, ok := entries[1].Value.(plist.Data); !ok || len(d) != 2 {
		t.Errorf("lib a = %#v", entries[1].Value)
	}
	if g.Note == nil || *g.Note != "hello" {
		t.Errorf("note = %v", g.Note)
	}
}

func TestReadGlyphJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no name", `{}`},
		{"bad codepoint", `{"name": "x", "unicodes": [1114112]}`},
		{"bad color", `{"name": "x", "anchors": [{"color": "1,0,0"}]}`},
		{"bad guideline", `{"name": "x", "guidelines": [{"x": 1, "y": 2}]}`},
		{"bad point type", `{"name": "x", "contours": [{"points": [{"type": "spline"}]}]}`},
		{"no base", `{"name": "x", "components": [{}]}`},
		{"lib not object", `{"name": "x", "lib": [1]}`},
		{"not JSON", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadGlyphJSON(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadGlyphJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "A.json")
	if err := os.WriteFile(path, []byte(glyphA), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadGlyphJSON(path)
	if err != nil {
		t.Fatalf("LoadGlyphJSON: %v", err)
	}
	if g.Name != "A" {
		t.Errorf("name = %q", g.Name)
	}
	if _, err := LoadGlyphJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("0.5, 0.25,1,0")
	if err != nil {
		t.Fatal(err)
	}
	if c != (Color{Red: 0.5, Green: 0.25, Blue: 1, Alpha: 0}) {
		t.Errorf("color = %+v", c)
	}
	for _, bad := range []string{"", "1,1,1", "1,1,1,2", "a,b,c,d"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q): expected error", bad)
		}
	}
}

func TestAffineTransform_IsIdentity(t *testing.T) {
	if !Identity.IsIdentity() {
		t.Error("Identity is not identity")
	}
	if (AffineTransform{}).IsIdentity() {
		t.Error("zero transform reported as identity")
	}
}
