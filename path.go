package outline

import (
	"fmt"
	"math"
)

type ElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind ElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Draw a cubic Bézier whose first control point is the reflection of the
	// previous element's second control point. SVG's S command.
	SmoothCubicToKind
	// Draw an elliptical arc to the point. SVG's A command.
	ArcToKind
	// Close off the path.
	ClosePathKind
)

// Element is one drawing command of a [Path].
//
// The meaning of the points depends on Kind:
//
//   - MoveTo, LineTo, ArcTo: P0 is the end point.
//   - CubicTo: P0 and P1 are the control points, P2 is the end point.
//   - SmoothCubicTo: P0 is the second control point, P1 is the end point.
//   - ClosePath: no points.
//
// Radii, Rotation, LargeArc and Sweep are only used by ArcTo. Rotation is the
// rotation of the ellipse's x-axis, in degrees.
type Element struct {
	Kind ElementKind
	P0   Point
	P1   Point
	P2   Point

	Radii    Vec2
	Rotation float64
	LargeArc bool
	Sweep    bool
}

func (el Element) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case SmoothCubicToKind:
		return fmt.Sprintf("SmoothCubicTo(%s, %s)", el.P0, el.P1)
	case ArcToKind:
		return fmt.Sprintf("ArcTo(%s, %g, %t, %t, %s)", el.Radii, el.Rotation, el.LargeArc, el.Sweep, el.P0)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidElement"
	}
}

func MoveTo(pt Point) Element {
	return Element{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) Element {
	return Element{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) Element {
	return Element{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func SmoothCubicTo(p0, p1 Point) Element {
	return Element{Kind: SmoothCubicToKind, P0: p0, P1: p1}
}

// ArcTo returns an elliptical arc to pt. rotation is in degrees.
func ArcTo(radii Vec2, rotation float64, largeArc, sweep bool, pt Point) Element {
	return Element{
		Kind:     ArcToKind,
		P0:       pt,
		Radii:    radii,
		Rotation: rotation,
		LargeArc: largeArc,
		Sweep:    sweep,
	}
}

func ClosePath() Element {
	return Element{Kind: ClosePathKind}
}

// EndPoint returns the point the pen is at after drawing el. ClosePath has no
// end point of its own.
func (el Element) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind, ArcToKind:
		return el.P0, true
	case SmoothCubicToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func (el Element) Transform(aff Affine) Element {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case SmoothCubicToKind:
		return SmoothCubicTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case ArcToKind:
		// The arc's ellipse is the unit circle under rotate·scale; mapping it
		// through aff yields another ellipse whose radii and rotation are
		// that of the composed map.
		inner := aff.WithTranslation(Vec2{}).
			Mul(Rotate(el.Rotation * math.Pi / 180)).
			Mul(Scale(math.Abs(el.Radii.X), math.Abs(el.Radii.Y)))
		radii, th := inner.svd()
		el.P0 = el.P0.Transform(aff)
		el.Radii = radii
		el.Rotation = th * 180 / math.Pi
		if aff.Determinant() < 0 {
			el.Sweep = !el.Sweep
		}
		return el
	case ClosePathKind:
		return ClosePath()
	default:
		return Element{}
	}
}

func (el Element) IsInf() bool {
	return el.P0.IsInf() ||
		el.P1.IsInf() ||
		el.P2.IsInf() ||
		el.Radii.IsInf()
}

func (el Element) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN() ||
		el.Radii.IsNaN()
}

// Path is a sequence of drawing commands. A non-empty path starts with
// MoveTo.
type Path []Element

func (p *Path) Push(el Element) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// CubicTo pushes a "cubic to" element onto the path.
func (p *Path) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// SmoothCubicTo pushes a "smooth cubic to" element onto the path.
func (p *Path) SmoothCubicTo(p2, p3 Point) { p.Push(SmoothCubicTo(p2, p3)) }

// ArcTo pushes an "arc to" element onto the path.
func (p *Path) ArcTo(radii Vec2, rotation float64, largeArc, sweep bool, pt Point) {
	p.Push(ArcTo(radii, rotation, largeArc, sweep, pt))
}

// ClosePath pushes a "close path" element onto the path.
func (p *Path) ClosePath() { p.Push(ClosePath()) }

func (p Path) Transform(aff Affine) Path {
	out := make(Path, len(p))
	for i, el := range p {
		out[i] = el.Transform(aff)
	}
	return out
}

// Points returns the end point of every element, in order. Control points
// and close commands contribute nothing.
func (p Path) Points() []Point {
	pts := make([]Point, 0, len(p))
	for _, el := range p {
		if pt, ok := el.EndPoint(); ok {
			pts = append(pts, pt)
		}
	}
	return pts
}

// ControlBox returns the smallest rectangle that encloses all points of the
// path, including control points. Arcs are accounted for by their radii, which
// over-approximates them.
func (p Path) ControlBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	var bbox Rect
	first := true
	add := func(pt Point) {
		if first {
			bbox = Rect{pt.X, pt.Y, pt.X, pt.Y}
			first = false
		} else {
			bbox = bbox.UnionPoint(pt)
		}
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			add(el.P0)
		case CubicToKind:
			add(el.P0)
			add(el.P1)
			add(el.P2)
		case SmoothCubicToKind:
			add(el.P0)
			add(el.P1)
		case ArcToKind:
			r := max(math.Abs(el.Radii.X), math.Abs(el.Radii.Y))
			add(el.P0)
			bbox = bbox.Union(Rect{el.P0.X - 2*r, el.P0.Y - 2*r, el.P0.X + 2*r, el.P0.Y + 2*r})
		}
	}
	return bbox
}

// IsInf reports whether any coordinate or radius in the path is infinite.
func (p Path) IsInf() bool {
	for _, el := range p {
		if el.IsInf() {
			return true
		}
	}
	return false
}

// IsNaN reports whether any coordinate or radius in the path is NaN.
func (p Path) IsNaN() bool {
	for _, el := range p {
		if el.IsNaN() {
			return true
		}
	}
	return false
}
