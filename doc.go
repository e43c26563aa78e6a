// Package outline computes smooth path geometry for drawing diagrams: curves
// through ordered points, and padded, rounded outlines around clusters of
// nodes, such as the boundary of a group.
//
// All functions are pure. They never modify the slices they are given and
// can be called concurrently, including on the same input.
//
// # Paths
//
// Results are returned as a [Path], a slice of [Element] values that mirror
// the SVG path commands M, L, C, S, A and Z. [Path.SVG] and [WriteSVG] turn a
// path into SVG path data, [ParseSVG] does the reverse. [Path.Cubics] rewrites
// arcs and smooth cubics into plain cubic Béziers for backends that don't
// support them.
//
// # Splines
//
// [ClosedSpline] draws a closed Catmull-Rom curve through a ring of points.
// [Spline] and [SplineWith] draw an open one, the latter with a custom
// [Interpolator]. [ControlPoint] computes an offset point along a segment,
// for placing edge labels or bending an edge.
//
// # Hulls
//
// [RoundedHull] and [PaddedHull] outline a convex polygon at a fixed
// distance, with arcs or with Bézier curves respectively. Both handle one and
// two points specially, where a polygon doesn't exist: one point becomes a
// circle, two points a stadium shape.
//
// The hull functions do not compute convex hulls themselves. Use [ConvexHull]
// to get the hull of arbitrary points and [Dedup] to drop repeated points:
//
//	hull := outline.ConvexHull(nodes)
//	p, err := outline.RoundedHull(hull, 10)
//
// # Errors
//
// Operations that need at least two points return an *[InvalidInputError].
// Operations that need a direction between two points return a
// *[DegenerateInputError] when the points coincide. Both are wrapped with a
// stack trace; use errors.As to inspect them.
package outline
