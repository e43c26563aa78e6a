package outline

// ControlPoint returns a point between start and end, displaced sideways.
//
// The point is first interpolated along the segment, (1−percent)·start +
// percent·end, and then moved offset units along the perpendicular ⟨−t.y, t.x⟩
// of the unit tangent t of start→end. Pass 0 for either parameter to disable
// it. It is used to anchor edge labels and to bend single-segment curves.
//
// If start and end coincide there is no tangent and the offset is ignored;
// the result is the interpolated point.
func ControlPoint(start, end Point, percent, offset float64) Point {
	p := start.Lerp(end, percent)
	tangent := Direction(start, end)
	if tangent.IsZero() && offset != 0 {
		Logger().Debug("control point endpoints coincide, ignoring offset",
			"point", start, "offset", offset)
	}
	return p.Translate(tangent.Perp().Mul(offset))
}
