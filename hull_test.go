package outline

import (
	"math"
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func TestRoundedHullEmpty(t *testing.T) {
	p, err := RoundedHull(nil, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 0 || p.SVG() != "" {
		t.Errorf("got %v, want an empty path", p)
	}
}

func TestRoundedHullOnePoint(t *testing.T) {
	p, err := RoundedHull([]Point{Pt(0, 0)}, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := "M0,-5 A5,5,0,0,0,0,5 A5,5,0,0,0,0,-5"
	if got := p.SVG(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	var arcEnds []Point
	for _, el := range p {
		if el.Kind == ArcToKind {
			arcEnds = append(arcEnds, el.P0)
		}
	}
	diff(t, []Point{Pt(0, 5), Pt(0, -5)}, arcEnds)
}

func TestRoundedHullTwoPoints(t *testing.T) {
	p, err := RoundedHull([]Point{Pt(0, 0), Pt(10, 0)}, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := "M0,2 L10,2 A2,2,0,0,0,10,-2 L0,-2 A2,2,0,0,0,0,2"
	if got := p.SVG(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRoundedHullSquare(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	got, err := RoundedHull(square, 1)
	if err != nil {
		t.Fatal(err)
	}
	r := Vec(1, 1)
	want := Path{
		MoveTo(Pt(11, 0)),
		ArcTo(r, 0, false, false, Pt(10, -1)),
		LineTo(Pt(0, -1)),
		ArcTo(r, 0, false, false, Pt(-1, 0)),
		LineTo(Pt(-1, 10)),
		ArcTo(r, 0, false, false, Pt(0, 11)),
		LineTo(Pt(10, 11)),
		ArcTo(r, 0, false, false, Pt(11, 10)),
		LineTo(Pt(11, 0)),
	}
	diff(t, want, got, approx)
}

func TestRoundedHullKeepsDistance(t *testing.T) {
	hull := ConvexHull([]Point{Pt(3, 1), Pt(20, 4), Pt(25, 18), Pt(9, 27), Pt(-2, 14), Pt(10, 12)})
	const padding = 4.0
	p, err := RoundedHull(hull, padding)
	if err != nil {
		t.Fatal(err)
	}
	// Every line end lies exactly padding away from the polygon, outside it.
	for _, el := range p {
		if el.Kind != LineToKind {
			continue
		}
		d := math.Inf(1)
		for _, v := range hull {
			d = min(d, el.P0.Distance(v))
		}
		if math.Abs(d-padding) > 1e-9 {
			t.Errorf("%s is %v away from the nearest vertex, want %v", el.P0, d, padding)
		}
		if insideConvex(hull, el.P0) {
			t.Errorf("%s lies inside the hull", el.P0)
		}
	}
}

// insideConvex reports whether pt lies strictly inside the convex polygon,
// whatever its orientation.
func insideConvex(polygon []Point, pt Point) bool {
	var pos, neg bool
	for i, p0 := range polygon {
		p1 := polygon[(i+1)%len(polygon)]
		c := p1.Sub(p0).Cross(pt.Sub(p0))
		pos = pos || c >= 0
		neg = neg || c <= 0
	}
	return pos != neg
}

func TestRoundedHullDegenerate(t *testing.T) {
	for _, points := range [][]Point{
		{Pt(1, 1), Pt(1, 1)},
		{Pt(0, 0), Pt(0, 0), Pt(5, 5)},
		{Pt(0, 0), Pt(5, 0), Pt(5, 5), Pt(5, 5)},
	} {
		p, err := RoundedHull(points, 3)
		var derr *DegenerateInputError
		if !errors.As(err, &derr) {
			t.Fatalf("RoundedHull(%v): got error %v, want DegenerateInputError", points, err)
		}
		if p != nil {
			t.Errorf("got partial result %v", p)
		}
	}
}

func TestRoundedHullAcceptsOddPadding(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	for _, padding := range []float64{0, -3} {
		p, err := RoundedHull(square, padding)
		if err != nil {
			t.Fatalf("padding %v: %v", padding, err)
		}
		if _, err := ParseSVG(p.SVG()); err != nil {
			t.Errorf("padding %v produced invalid path data %q: %v", padding, p.SVG(), err)
		}
	}
}

func TestPaddedHullEmpty(t *testing.T) {
	o, err := PaddedHull(nil, 5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, PaddedOutline{Kind: EmptyOutline}, o)
	if s := o.SVG(); s != "" {
		t.Errorf("got %q, want empty string", s)
	}
}

func TestPaddedHullOnePoint(t *testing.T) {
	o, err := PaddedHull([]Point{Pt(2, 3)}, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	if o.Kind != PathOutline {
		t.Fatalf("got %s, want PathOutline", o.Kind)
	}
	want := "M2,1.5 A1.5,1.5,0,0,0,2,4.5 A1.5,1.5,0,0,0,2,1.5"
	if got := o.SVG(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPaddedHullTwoPoints(t *testing.T) {
	o, err := PaddedHull([]Point{Pt(0, 0), Pt(10, 0)}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if o.Kind != PathOutline {
		t.Fatalf("got %s, want PathOutline", o.Kind)
	}
	want := "M-2,0 C-2,-2.4,12,-2.4,12,0 S-2,2.4,-2,0 Z"
	if got := o.SVG(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPaddedHullTwoCoincidentPoints(t *testing.T) {
	_, err := PaddedHull([]Point{Pt(4, 4), Pt(4, 4)}, 2)
	var derr *DegenerateInputError
	if !errors.As(err, &derr) {
		t.Fatalf("got error %v, want DegenerateInputError", err)
	}
}

func TestPaddedHullSquare(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	o, err := PaddedHull(square, 1)
	if err != nil {
		t.Fatal(err)
	}
	if o.Kind != PointsOutline {
		t.Fatalf("got %s, want PointsOutline", o.Kind)
	}
	// Each corner moves by the padding along its bisector, so both
	// coordinates change by 1/√2.
	s := 1 / math.Sqrt2
	want := []Point{Pt(-s, -s), Pt(1+s, -s), Pt(1+s, 1+s), Pt(-s, 1+s)}
	diff(t, want, o.Points, approx)
	for i, pt := range o.Points {
		if d := pt.Distance(square[i]); math.Abs(d-1) > 1e-12 {
			t.Errorf("point %d moved by %v, want 1", i, d)
		}
	}
	if o.SVG() != "" {
		t.Errorf("points outline has path data %q", o.SVG())
	}
}

func TestPaddedHullOrientation(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	ccw, err := PaddedHull(square, 2)
	if err != nil {
		t.Fatal(err)
	}
	rev := slices.Clone(square)
	slices.Reverse(rev)
	cw, err := PaddedHull(rev, 2)
	if err != nil {
		t.Fatal(err)
	}
	slices.Reverse(cw.Points)
	diff(t, ccw.Points, cw.Points, approx)
}

func TestPaddedHullStraightVertex(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(5, 0), Pt(10, 0), Pt(5, 5)}
	o, err := PaddedHull(points, 1)
	if err != nil {
		t.Fatal(err)
	}
	if o.Points[1] != points[1] {
		t.Errorf("vertex on a straight edge moved to %s", o.Points[1])
	}
}

func TestPaddedHullZeroLengthEdge(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(5, 0), Pt(5, 0), Pt(5, 5)}
	o, err := PaddedHull(points, 1)
	if err != nil {
		t.Fatal(err)
	}
	if o.Kind != PointsOutline {
		t.Fatalf("got %s, want PointsOutline", o.Kind)
	}
	// The vertices around the zero-length edge are pushed along their other
	// edge, not left in place.
	assertNear(t, o.Points[1], Pt(6, 0), 1e-9)
	assertNear(t, o.Points[2], Pt(5, -1), 1e-9)
	for _, i := range []int{0, 3} {
		if d := o.Points[i].Distance(points[i]); math.Abs(d-1) > 1e-9 {
			t.Errorf("vertex %d moved by %g, want 1", i, d)
		}
	}
}

func TestPaddedHullDoesNotModifyInput(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	orig := slices.Clone(points)
	if _, err := PaddedHull(points, 3); err != nil {
		t.Fatal(err)
	}
	diff(t, orig, points)
}

func TestPaddedOutlineSmooth(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	o, err := PaddedHull(square, 1)
	if err != nil {
		t.Fatal(err)
	}
	p, err := o.Smooth()
	if err != nil {
		t.Fatal(err)
	}
	want, err := ClosedSpline(o.Points)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, p)

	circle, err := PaddedHull([]Point{Pt(0, 0)}, 1)
	if err != nil {
		t.Fatal(err)
	}
	p, err = circle.Smooth()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, circle.Path, p)

	var empty PaddedOutline
	if p, err := empty.Smooth(); p != nil || err != nil {
		t.Errorf("got %v, %v for an empty outline", p, err)
	}
}
