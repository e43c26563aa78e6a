package outline

import (
	"math"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Scale(1, -1)), Pt(3, -4), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestFit(t *testing.T) {
	const epsilon = 1e-9
	src := Rect{0, 0, 10, 5}
	dst := Rect{0, 0, 100, 100}
	aff := Fit(src, dst)

	// Scaled by 10 to fill the width, centered vertically.
	assertNear(t, Pt(0, 0).Transform(aff), Pt(0, 25), epsilon)
	assertNear(t, Pt(10, 5).Transform(aff), Pt(100, 75), epsilon)

	// A single point lands in the middle.
	aff = Fit(Rect{3, 3, 3, 3}, dst)
	assertNear(t, Pt(3, 3).Transform(aff), Pt(50, 50), epsilon)

	// NaN bounds, such as from a path with NaN coordinates, leave the
	// geometry alone.
	diff(t, Identity, Fit(Rect{0, math.NaN(), 1, 1}, dst))
	diff(t, Identity, Fit(src, Rect{X1: math.NaN()}))
}

func TestPathTransform(t *testing.T) {
	p := Path{
		MoveTo(Pt(1, 1)),
		LineTo(Pt(2, 1)),
		CubicTo(Pt(3, 1), Pt(3, 2), Pt(3, 3)),
		SmoothCubicTo(Pt(4, 4), Pt(5, 5)),
		ClosePath(),
	}
	want := Path{
		MoveTo(Pt(2, 12)),
		LineTo(Pt(4, 12)),
		CubicTo(Pt(6, 12), Pt(6, 14), Pt(6, 16)),
		SmoothCubicTo(Pt(8, 18), Pt(10, 20)),
		ClosePath(),
	}
	diff(t, want, p.Transform(Scale(2, 2).ThenTranslate(Vec(0, 10))))
}

func TestControlBox(t *testing.T) {
	p := Path{
		MoveTo(Pt(1, 1)),
		CubicTo(Pt(-3, 0), Pt(3, 8), Pt(5, 2)),
	}
	diff(t, Rect{-3, 0, 5, 8}, p.ControlBox())
	diff(t, Rect{}, Path(nil).ControlBox())

	// Arcs may bulge out by up to their diameter.
	circle := circleOutline(Pt(0, 0), 1)
	box := circle.ControlBox()
	for _, pt := range []Point{Pt(-1, 0), Pt(1, 0), Pt(0, -1), Pt(0, 1)} {
		if pt.X < box.X0 || pt.X > box.X1 || pt.Y < box.Y0 || pt.Y > box.Y1 {
			t.Errorf("%s lies outside the control box %v", pt, box)
		}
	}
}
