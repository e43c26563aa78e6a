package outline

import (
	"iter"
	"math"
)

// Arc is an elliptical arc in center parametrization.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	// Rotation of the ellipse's x-axis, in radians.
	XRotation float64
}

// NewArcFromEndpoints converts the endpoint parametrization used by SVG's A
// command into an [Arc], following the SVG implementation notes (F.6.5 and
// F.6.6). rotation is in degrees.
//
// It reports false if the arc degenerates to a straight line, either because
// a radius is zero or infinite or because the end points coincide. NaN radii
// are treated the same.
func NewArcFromEndpoints(from, to Point, radii Vec2, rotation float64, largeArc, sweep bool) (Arc, bool) {
	if from == to || radii.IsNaN() || radii.IsInf() {
		return Arc{}, false
	}
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if rx == 0 || ry == 0 {
		return Arc{}, false
	}
	phi := rotation * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	// Step 1: the midpoint of the chord in the ellipse's frame.
	dx, dy := (from.X-to.X)/2, (from.Y-to.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// Radii too small to span the chord are scaled up uniformly.
	if lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 2: the center in the ellipse's frame.
	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(max(0, num/den))
	if largeArc == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := coef * -ry * x1 / rx

	// Step 3: back to user space.
	center := Point{
		X: cosPhi*cx1 - sinPhi*cy1 + (from.X+to.X)/2,
		Y: sinPhi*cx1 + cosPhi*cy1 + (from.Y+to.Y)/2,
	}

	// Step 4: angles.
	u := Vec2{(x1 - cx1) / rx, (y1 - cy1) / ry}
	v := Vec2{(-x1 - cx1) / rx, (-y1 - cy1) / ry}
	start := u.Angle()
	sweepAngle := math.Atan2(u.Cross(v), u.Dot(v))
	if !sweep && sweepAngle > 0 {
		sweepAngle -= 2 * math.Pi
	} else if sweep && sweepAngle < 0 {
		sweepAngle += 2 * math.Pi
	}

	return Arc{
		Center:     center,
		Radii:      Vec2{rx, ry},
		StartAngle: start,
		SweepAngle: sweepAngle,
		XRotation:  phi,
	}, true
}

// CubicElements approximates the arc with cubic Béziers, excluding the
// initial move to the arc's start point.
func (a Arc) CubicElements(tolerance float64) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
		// Number of subdivisions per ellipse based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle
		p0 := sampleEllipse(a.Radii, a.XRotation, angle0)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, a.XRotation, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			)) {
				break
			}
		}
	}
}

// Start returns the point the arc starts at.
func (a Arc) Start() Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle))
}

// End returns the point the arc ends at.
func (a Arc) End() Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle+a.SweepAngle))
}

// sampleEllipse returns the point at angle on the ellipse with the given radii
// and x-axis rotation, relative to its center.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

// rotatePt rotates pt about the origin by angle radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}

// Cubics returns a copy of the path in which every ArcTo and SmoothCubicTo
// element has been replaced by CubicTo elements, for consumers that only
// understand M, L, C and Z. Arcs are approximated to within tolerance;
// degenerate arcs become lines.
func (p Path) Cubics(tolerance float64) Path {
	out := make(Path, 0, len(p))
	var cur, start Point
	// The second control point of the previous cubic, for reflecting.
	var lastCtrl Point
	prevCubic := false
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			out = append(out, el)
			cur, start = el.P0, el.P0
			prevCubic = false
		case LineToKind:
			out = append(out, el)
			cur = el.P0
			prevCubic = false
		case CubicToKind:
			out = append(out, el)
			lastCtrl, cur = el.P1, el.P2
			prevCubic = true
		case SmoothCubicToKind:
			c1 := cur
			if prevCubic {
				c1 = cur.Translate(cur.Sub(lastCtrl))
			}
			out = append(out, CubicTo(c1, el.P0, el.P1))
			lastCtrl, cur = el.P0, el.P1
			prevCubic = true
		case ArcToKind:
			a, ok := NewArcFromEndpoints(cur, el.P0, el.Radii, el.Rotation, el.LargeArc, el.Sweep)
			if !ok {
				if cur != el.P0 {
					out = append(out, LineTo(el.P0))
				}
			} else {
				n := len(out)
				for c := range a.CubicElements(tolerance) {
					out = append(out, c)
				}
				if len(out) > n {
					// Pin the end point so that rounding doesn't open gaps.
					out[len(out)-1].P2 = el.P0
				} else {
					out = append(out, LineTo(el.P0))
				}
			}
			cur = el.P0
			prevCubic = false
		case ClosePathKind:
			out = append(out, el)
			cur = start
			prevCubic = false
		}
	}
	return out
}
