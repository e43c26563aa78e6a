package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"honnef.co/go/outline"
)

// shape is a group together with the path computed for it.
type shape struct {
	name   string
	points []outline.Point
	path   outline.Path
}

// bounds returns the rectangle enclosing every shape's path and points,
// inflated by margin. ok is false if there is nothing to enclose.
func bounds(shapes []shape, margin float64) (r outline.Rect, ok bool) {
	add := func(o outline.Rect) {
		if !ok {
			r, ok = o, true
		} else {
			r = r.Union(o)
		}
	}
	for _, s := range shapes {
		if len(s.path) > 0 {
			add(s.path.ControlBox())
		}
		for _, pt := range s.points {
			add(outline.Rect{X0: pt.X, Y0: pt.Y, X1: pt.X, Y1: pt.Y})
		}
	}
	return r.Inflate(margin, margin), ok
}

// writePaths writes one line per shape, its name and its path data separated
// by a tab.
func writePaths(w io.Writer, shapes []shape) error {
	for _, s := range shapes {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", s.name, s.path.SVG()); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func escape(s string) string {
	var sb strings.Builder
	xml.EscapeText(&sb, []byte(s))
	return sb.String()
}

// writeDocument writes a standalone SVG document showing every shape's path
// and its points.
func writeDocument(w io.Writer, shapes []shape) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	box, _ := bounds(shapes, 5)
	printf("<svg xmlns=%q viewBox=\"%g %g %g %g\">\n",
		"http://www.w3.org/2000/svg", box.X0, box.Y0, box.Width(), box.Height())
	for _, s := range shapes {
		printf("  <g id=\"%s\">\n", escape(s.name))
		printf("    <path d=\"%s\" fill=\"none\" stroke=\"black\"/>\n", s.path.SVG())
		for _, pt := range s.points {
			printf("    <circle cx=\"%g\" cy=\"%g\" r=\"1\"/>\n", pt.X, pt.Y)
		}
		printf("  </g>\n")
	}
	printf("</svg>\n")
	return errors.WithStack(err)
}

const pngMargin = 16

// renderPNG draws the shapes scaled to fit a size×size image and saves it to
// name.
func renderPNG(name string, shapes []shape, size int) error {
	c := gg.NewContext(size, size)
	c.SetRGB(1, 1, 1)
	c.Clear()

	box, ok := bounds(shapes, 0)
	if !ok {
		return errors.WithStack(c.SavePNG(name))
	}
	dst := outline.Rect{X0: pngMargin, Y0: pngMargin, X1: float64(size - pngMargin), Y1: float64(size - pngMargin)}
	aff := outline.Fit(box, dst)

	for i, s := range shapes {
		// Spread the groups' hues around the color wheel.
		r, g, b := hue(float64(i) / float64(len(shapes)))
		drawPath(c, s.path.Transform(aff).Cubics(0.1))
		c.SetRGBA(r, g, b, 0.25)
		c.FillPreserve()
		c.SetRGB(r, g, b)
		c.SetLineWidth(2)
		c.Stroke()

		c.SetRGB(0, 0, 0)
		for _, pt := range s.points {
			pt = pt.Transform(aff)
			c.DrawCircle(pt.X, pt.Y, 2.5)
			c.Fill()
		}
	}
	return errors.WithStack(c.SavePNG(name))
}

// drawPath appends p to the context's current path. p must only contain
// elements that gg understands, as returned by [outline.Path.Cubics].
func drawPath(c *gg.Context, p outline.Path) {
	for _, el := range p {
		switch el.Kind {
		case outline.MoveToKind:
			c.MoveTo(el.P0.X, el.P0.Y)
		case outline.LineToKind:
			c.LineTo(el.P0.X, el.P0.Y)
		case outline.CubicToKind:
			c.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case outline.ClosePathKind:
			c.ClosePath()
		}
	}
}

// hue returns a saturated color for h in [0, 1).
func hue(h float64) (r, g, b float64) {
	f := func(n float64) float64 {
		k := math.Mod(n+h*6, 6)
		return 0.8 * (1 - max(0, min(k, 4-k, 1)))
	}
	return f(5), f(3), f(1)
}
