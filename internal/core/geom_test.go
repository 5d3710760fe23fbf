package core

import "testing"

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 3, 3), true},
		{"touching edges", NewRect(10, 0, 5, 5), false},
		{"disjoint", NewRect(20, 20, 5, 5), false},
	}

	for _, c := range cases {
		if got := a.Intersects(c.b); got != c.want {
			t.Errorf("%s: Intersects = %v, want %v", c.name, got, c.want)
		}
		if got := c.b.Intersects(a); got != c.want {
			t.Errorf("%s (reversed): Intersects = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(2, 3) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(6, 3) {
		t.Error("right edge is exclusive")
	}
	if r.Contains(2, 8) {
		t.Error("bottom edge is exclusive")
	}
	if !r.Contains(5, 7) {
		t.Error("last interior point should be inside")
	}
}

func TestRectCenter(t *testing.T) {
	cx, cy := NewRect(0, 0, 10, 6).Center()
	if cx != 5 || cy != 3 {
		t.Errorf("Center = (%d,%d), want (5,3)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("in-range value should pass through")
	}
	if Clamp(-3, 0, 10) != 0 {
		t.Error("below min should clamp to min")
	}
	if Clamp(42, 0, 10) != 10 {
		t.Error("above max should clamp to max")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 || Max(3, 7) != 7 {
		t.Error("Min/Max wrong")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs wrong")
	}
}
