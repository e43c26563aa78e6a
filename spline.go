package outline

import (
	"github.com/pkg/errors"
)

// catmullRomSegment returns the cubic Bézier equivalent of the uniform
// Catmull-Rom segment from p1 to p2, with neighbours p0 and p3.
func catmullRomSegment(p0, p1, p2, p3 Point) Element {
	c1 := p1.Translate(p2.Sub(p0).Div(6))
	c2 := p2.Translate(p3.Sub(p1).Div(6).Negate())
	return CubicTo(c1, c2, p2)
}

// ClosedSpline returns a smooth closed curve through the ring of points.
//
// The path starts with a move to the last point, followed by one cubic Bézier
// per point: segment k runs from points[k-1] to points[k], wrapping around, so
// the last segment ends back at the last point. Tangents are those of a
// uniform Catmull-Rom spline, except at the end of the final segment, where
// the tangent is flattened because there is no point after it.
//
// points is not modified. ClosedSpline returns an *[InvalidInputError] if
// fewer than two points are given.
func ClosedSpline(points []Point) (Path, error) {
	n := len(points)
	if n < 2 {
		return nil, errors.WithStack(&InvalidInputError{Op: "ClosedSpline", Got: n, Min: 2})
	}
	at := func(i int) Point {
		return points[((i%n)+n)%n]
	}

	p := make(Path, 0, n+1)
	p.MoveTo(points[n-1])
	for k := range n {
		prev, from, to := at(k-2), at(k-1), at(k)
		next := at(k + 1)
		if k == n-1 {
			next = to
		}
		p.Push(catmullRomSegment(prev, from, to, next))
	}
	return p, nil
}

// Interpolator turns a flat list of coordinates [x0, y0, x1, y1, ...] into
// cubic Bézier elements through those points, excluding the initial move.
// Implementations can rely on the list having an even length of at least 4.
type Interpolator func(coords []float64) []Element

// CatmullRom is the default [Interpolator]. It produces a uniform Catmull-Rom
// spline whose end points are duplicated, so the curve starts and ends
// heading straight at its neighbour.
func CatmullRom(coords []float64) []Element {
	n := len(coords) / 2
	at := func(i int) Point {
		i = min(max(i, 0), n-1)
		return Point{coords[2*i], coords[2*i+1]}
	}
	els := make([]Element, 0, n-1)
	for i := range n - 1 {
		els = append(els, catmullRomSegment(at(i-1), at(i), at(i+1), at(i+2)))
	}
	return els
}

// Spline returns a smooth open curve through points using [CatmullRom].
func Spline(points []Point) (Path, error) {
	return SplineWith(points, CatmullRom)
}

// SplineWith returns a smooth open curve through points, computed by interp.
// The path starts with a move to the first point.
//
// SplineWith returns an *[InvalidInputError] if fewer than two points are
// given.
func SplineWith(points []Point, interp Interpolator) (Path, error) {
	if len(points) < 2 {
		return nil, errors.WithStack(&InvalidInputError{Op: "Spline", Got: len(points), Min: 2})
	}
	coords := make([]float64, 0, 2*len(points))
	for _, pt := range points {
		coords = append(coords, pt.X, pt.Y)
	}
	p := Path{MoveTo(points[0])}
	return append(p, interp(coords)...), nil
}
