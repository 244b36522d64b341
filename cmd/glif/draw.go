package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/madig/readwrite-ufo-glif/ufo"
)

func newDrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draw [file]",
		Short: "Print the point pen calls that replay a glyph outline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			glyphs, err := readGlyphs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return ufo.DrawPoints(glyphs[0], &printPen{w: cmd.OutOrStdout()})
		},
	}
}

// printPen writes one line per point pen call.
type printPen struct {
	w io.Writer
}

func (p *printPen) BeginPath(identifier string) error {
	_, err := fmt.Fprintf(p.w, "beginPath(%s)\n", quoteOrNone(identifier))
	return err
}

func (p *printPen) AddPoint(pt ufo.ContourPoint) error {
	typ := "None"
	if pt.Type != ufo.PointOffCurve {
		typ = strconv.Quote(pt.Type.String())
	}
	name := "None"
	if pt.Name != nil {
		name = strconv.Quote(*pt.Name)
	}
	_, err := fmt.Fprintf(p.w, "addPoint((%s, %s), %s, %t, %s, %s)\n",
		num(pt.X), num(pt.Y), typ, pt.Smooth, name, quoteOrNone(pt.Identifier))
	return err
}

func (p *printPen) EndPath() error {
	_, err := fmt.Fprintln(p.w, "endPath()")
	return err
}

func (p *printPen) AddComponent(baseGlyph string, t ufo.AffineTransform, identifier string) error {
	arr := t.Array()
	_, err := fmt.Fprintf(p.w, "addComponent(%q, (%s, %s, %s, %s, %s, %s), %s)\n",
		baseGlyph, num(arr[0]), num(arr[1]), num(arr[2]), num(arr[3]), num(arr[4]), num(arr[5]),
		quoteOrNone(identifier))
	return err
}

func quoteOrNone(s string) string {
	if s == "" {
		return "None"
	}
	return strconv.Quote(s)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
