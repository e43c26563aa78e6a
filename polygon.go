package outline

import (
	"cmp"
	"slices"
)

// Polygon returns the closed polygon through points: a move to the first
// point, a line to each following point and a close command. It returns an
// empty path for no points.
func Polygon(points []Point) Path {
	if len(points) == 0 {
		return nil
	}
	p := make(Path, 0, len(points)+1)
	p.MoveTo(points[0])
	for _, pt := range points[1:] {
		p.LineTo(pt)
	}
	p.ClosePath()
	return p
}

// Dedup returns points without consecutive duplicates. The ring is treated as
// closed, so a last point equal to the first is dropped as well, unless it is
// the only point left. points is not modified.
func Dedup(points []Point) []Point {
	out := slices.Compact(slices.Clone(points))
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

// ConvexHull returns the convex hull of points using Andrew's monotone chain
// algorithm. The hull starts at the point with the smallest x (and then y)
// coordinate and runs counter-clockwise on screen, that is, in a y-down
// coordinate system. Points on the hull's edges are left out.
//
// The result is suitable as input for [RoundedHull] and [PaddedHull], whose
// outlines then extend away from the interior. Fewer than three distinct
// points are returned as they are, deduplicated.
func ConvexHull(points []Point) []Point {
	pts := slices.Clone(points)
	slices.SortFunc(pts, func(a, b Point) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	pts = slices.Compact(pts)
	if len(pts) < 3 {
		return pts
	}

	turn := func(o, a, b Point) float64 {
		return a.Sub(o).Cross(b.Sub(o))
	}
	hull := make([]Point, 0, 2*len(pts))
	// Lower chain.
	for _, pt := range pts {
		for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	// Upper chain.
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		pt := pts[i]
		for len(hull) >= lower && turn(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	// The last point is the first one again. The chains run counter-clockwise
	// in y-up terms; flip them for screen space.
	hull = hull[:len(hull)-1]
	slices.Reverse(hull[1:])
	return hull
}
