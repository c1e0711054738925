package geometry

import "testing"

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if r.Left != 10 || r.Top != 20 || r.Right != 40 || r.Bottom != 60 {
		t.Fatalf("got %+v", r)
	}
	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("size: got %gx%g", r.Width(), r.Height())
	}
	if r.Origin() != (Offset{X: 10, Y: 20}) {
		t.Errorf("origin: got %+v", r.Origin())
	}
	if r.Center() != (Offset{X: 25, Y: 40}) {
		t.Errorf("center: got %+v", r.Center())
	}
}

func TestRect_Contains(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10)

	cases := []struct {
		p    Offset
		want bool
	}{
		{Offset{X: 0, Y: 0}, true},
		{Offset{X: 5, Y: 5}, true},
		{Offset{X: 10, Y: 5}, false},
		{Offset{X: 5, Y: 10}, false},
		{Offset{X: -1, Y: 5}, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%+v): got %v, want %v", c.p, got, c.want)
		}
	}
}

func TestRect_UnionEmptyIdentity(t *testing.T) {
	r := RectFromLTWH(10, 10, 100, 50)
	var empty Rect

	if got := empty.Union(r); !RectEqual(got, r) {
		t.Errorf("empty.Union(r): got %+v", got)
	}
	if got := r.Union(empty); !RectEqual(got, r) {
		t.Errorf("r.Union(empty): got %+v", got)
	}
}

func TestRect_Union(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(20, 5, 10, 10)

	got := a.Union(b)
	want := Rect{Left: 0, Top: 0, Right: 30, Bottom: 15}
	if !RectEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRect_Intersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)

	got := a.Intersect(b)
	want := Rect{Left: 5, Top: 5, Right: 10, Bottom: 10}
	if !RectEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	c := RectFromLTWH(100, 100, 5, 5)
	if !a.Intersect(c).IsEmpty() {
		t.Fatal("disjoint rects should intersect to an empty rect")
	}
}

func TestRect_InsetOutset(t *testing.T) {
	r := RectFromLTWH(0, 0, 100, 50)
	o := SideOffsets{Top: 1, Right: 2, Bottom: 3, Left: 4}

	in := r.Inset(o)
	want := Rect{Left: 4, Top: 1, Right: 98, Bottom: 47}
	if !RectEqual(in, want) {
		t.Errorf("inset: got %+v, want %+v", in, want)
	}
	if !RectEqual(in.Outset(o), r) {
		t.Errorf("outset should invert inset, got %+v", in.Outset(o))
	}
}

func TestSideOffsets_Sums(t *testing.T) {
	o := SideOffsets{Top: 1, Right: 2, Bottom: 3, Left: 4}
	if o.Horizontal() != 6 {
		t.Errorf("horizontal: got %g", o.Horizontal())
	}
	if o.Vertical() != 4 {
		t.Errorf("vertical: got %g", o.Vertical())
	}

	u := UniformSideOffsets(5)
	if u.Horizontal() != 10 || u.Vertical() != 10 {
		t.Errorf("uniform sums: got %g, %g", u.Horizontal(), u.Vertical())
	}
}

func TestRect_WithOriginWithSize(t *testing.T) {
	r := RectFromLTWH(10, 10, 20, 30)

	moved := r.WithOrigin(Offset{X: 0, Y: 0})
	if !RectEqual(moved, RectFromLTWH(0, 0, 20, 30)) {
		t.Errorf("WithOrigin: got %+v", moved)
	}

	resized := r.WithSize(Size{Width: 5, Height: 5})
	if !RectEqual(resized, RectFromLTWH(10, 10, 5, 5)) {
		t.Errorf("WithSize: got %+v", resized)
	}
}

func TestFloatEqual(t *testing.T) {
	if !FloatEqual(1.0, 1.0+epsilon/2) {
		t.Error("values within epsilon should compare equal")
	}
	if FloatEqual(1.0, 1.001) {
		t.Error("values beyond epsilon should compare unequal")
	}
}
