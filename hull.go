package outline

import (
	"github.com/pkg/errors"
)

// circleOutline returns a circle of radius padding around pt, drawn as two
// half circles from the top to the bottom and back.
func circleOutline(pt Point, padding float64) Path {
	top := Pt(pt.X, pt.Y-padding)
	bottom := Pt(pt.X, pt.Y+padding)
	r := Vec(padding, padding)
	return Path{
		MoveTo(top),
		ArcTo(r, 0, false, false, bottom),
		ArcTo(r, 0, false, false, top),
	}
}

// RoundedHull returns an outline that keeps a distance of padding from the
// points, built from straight edges and circular arcs.
//
// The points must be the vertices of a convex polygon, in order, with no two
// consecutive points equal. [ConvexHull] and [Dedup] produce such input; this
// function checks neither. The outline lies outside the polygon when the
// points run counter-clockwise on screen, as [ConvexHull] returns them.
//
// Depending on the number of points, the outline is
//
//   - empty, for no points,
//   - a circle of radius padding, for one point,
//   - a stadium (the segment widened by padding, with semicircular caps), for two points,
//   - the polygon's edges moved outwards by padding and joined by arcs around
//     the vertices, for more points.
//
// Coincident consecutive points result in a *[DegenerateInputError].
func RoundedHull(points []Point, padding float64) (Path, error) {
	switch len(points) {
	case 0:
		return nil, nil
	case 1:
		return circleOutline(points[0], padding), nil
	case 2:
		return roundedHull2(points[0], points[1], padding)
	}

	r := Vec(padding, padding)
	type edge struct{ from, to Point }
	edges := make([]edge, len(points))
	for i := range points {
		p0 := points[(i+len(points)-1)%len(points)]
		p1 := points[i]
		n, err := UnitNormal(p0, p1)
		if err != nil {
			return nil, errors.Wrapf(err, "RoundedHull: edge %d", i)
		}
		off := n.Mul(padding)
		edges[i] = edge{p0.Translate(off), p1.Translate(off)}
	}

	p := make(Path, 0, 2*len(edges)+1)
	p.MoveTo(edges[len(edges)-1].to)
	for _, e := range edges {
		p.ArcTo(r, 0, false, false, e.from)
		p.LineTo(e.to)
	}
	return p, nil
}

func roundedHull2(p0, p1 Point, padding float64) (Path, error) {
	n, err := UnitNormal(p0, p1)
	if err != nil {
		return nil, errors.Wrap(err, "RoundedHull")
	}
	off := n.Mul(padding)
	r := Vec(padding, padding)
	return Path{
		MoveTo(p0.Translate(off)),
		LineTo(p1.Translate(off)),
		ArcTo(r, 0, false, false, p1.Translate(off.Negate())),
		LineTo(p0.Translate(off.Negate())),
		ArcTo(r, 0, false, false, p0.Translate(off)),
	}, nil
}

// OutlineKind says which field of a [PaddedOutline] is populated.
type OutlineKind int

const (
	// No points, no outline.
	EmptyOutline OutlineKind = iota
	// Path holds a ready-to-draw closed outline.
	PathOutline
	// Points holds the padded vertices; fitting a curve through them is up
	// to the caller.
	PointsOutline
)

func (k OutlineKind) String() string {
	switch k {
	case EmptyOutline:
		return "EmptyOutline"
	case PathOutline:
		return "PathOutline"
	case PointsOutline:
		return "PointsOutline"
	default:
		return "InvalidOutline"
	}
}

// PaddedOutline is the result of [PaddedHull]. Small inputs produce a path,
// larger ones a ring of padded points; Kind says which.
type PaddedOutline struct {
	Kind   OutlineKind
	Path   Path
	Points []Point
}

// SVG returns the SVG path data of a PathOutline and the empty string
// otherwise. Use [PaddedOutline.Smooth] to get a path for every kind.
func (o PaddedOutline) SVG() string {
	if o.Kind != PathOutline {
		return ""
	}
	return o.Path.SVG()
}

// Smooth returns a drawable path for any kind of outline. Padded points are
// joined with [ClosedSpline]; paths are returned as they are.
func (o PaddedOutline) Smooth() (Path, error) {
	switch o.Kind {
	case PathOutline:
		return o.Path, nil
	case PointsOutline:
		return ClosedSpline(o.Points)
	default:
		return nil, nil
	}
}

// PaddedHull pads the points of a convex polygon by padding, for drawing a
// smooth Bézier-based outline around them.
//
// Like [RoundedHull] it expects the vertices of a convex polygon, in order.
// Depending on the number of points, the result is
//
//   - EmptyOutline, for no points,
//   - a PathOutline holding a circle of radius padding, for one point,
//   - a PathOutline holding a closed stadium-like curve made of a cubic and a
//     smooth cubic Bézier, for two points,
//   - a PointsOutline for more points, where every vertex has been moved by
//     padding along the bisector of its exterior angle.
//
// A vertex whose neighbouring edges are parallel has no exterior angle and
// stays where it is. A zero-length edge has no direction, so the vertices at
// either end of it are moved along their other edge only: away from it for the
// vertex before, against it for the vertex after. Two coincident points result
// in a *[DegenerateInputError].
func PaddedHull(points []Point, padding float64) (PaddedOutline, error) {
	switch len(points) {
	case 0:
		return PaddedOutline{Kind: EmptyOutline}, nil
	case 1:
		return PaddedOutline{Kind: PathOutline, Path: circleOutline(points[0], padding)}, nil
	case 2:
		p, err := paddedHull2(points[0], points[1], padding)
		if err != nil {
			return PaddedOutline{}, err
		}
		return PaddedOutline{Kind: PathOutline, Path: p}, nil
	}

	n := len(points)
	dirs := make([]Vec2, n)
	for i, pt := range points {
		dirs[i] = Direction(pt, points[(i+1)%n])
	}
	out := make([]Point, n)
	for i, pt := range points {
		ext := dirs[(i+n-1)%n].Sub(dirs[i]).Normalize()
		if ext.IsZero() {
			Logger().Debug("padded hull vertex has no exterior angle", "index", i, "point", pt)
		}
		out[i] = pt.Translate(ext.Mul(padding))
	}
	return PaddedOutline{Kind: PointsOutline, Points: out}, nil
}

func paddedHull2(p0, p1 Point, padding float64) (Path, error) {
	n, err := UnitNormal(p0, p1)
	if err != nil {
		return nil, errors.Wrap(err, "PaddedHull")
	}
	ext := Direction(p0, p1).Mul(padding)
	ext0 := p0.Translate(ext.Negate())
	ext1 := p1.Translate(ext)
	// Control arm length that makes the caps look round.
	d := n.Mul(1.2 * padding)
	return Path{
		MoveTo(ext0),
		CubicTo(ext0.Translate(d.Negate()), ext1.Translate(d.Negate()), ext1),
		SmoothCubicTo(ext0.Translate(d), ext0),
		ClosePath(),
	}, nil
}
