package geo

import "testing"

func TestUnion(t *testing.T) {
	a := NewBounds(0, 0, 10, 10)
	b := NewBounds(5, -5, 20, 5)

	u := a.Union(b)
	if u != NewBounds(0, -5, 25, 15) {
		t.Fatalf("unexpected union %s", u.ToString())
	}
}

func TestContains(t *testing.T) {
	b := NewBounds(10, 10, 100, 50)
	if !b.Contains(Point{X: 10, Y: 60}) {
		t.Fatalf("edge point should be contained")
	}
	if b.Contains(Point{X: 9, Y: 20}) {
		t.Fatalf("point left of bounds should not be contained")
	}
}

func TestRoundTo(t *testing.T) {
	cases := []struct {
		in, exp float64
	}{
		{in: 0, exp: 0},
		{in: 4.9, exp: 0},
		{in: 5, exp: 10},
		{in: 94, exp: 90},
		{in: 95, exp: 100},
	}
	for _, tc := range cases {
		if got := RoundTo(tc.in, Radix); got != tc.exp {
			t.Errorf("RoundTo(%v) = %v, expected %v", tc.in, got, tc.exp)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(500, 80, 420) != 420 {
		t.Fatalf("expected upper clamp")
	}
	if Clamp(10, 80, 420) != 80 {
		t.Fatalf("expected lower clamp")
	}
	if Clamp(100, 80, 420) != 100 {
		t.Fatalf("expected passthrough")
	}
}
