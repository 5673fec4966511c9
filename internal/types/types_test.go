package types

import "testing"

func TestDistanceIsSymmetric(t *testing.T) {
	a := Point{X: 5, Y: 5}
	b := Point{X: 8, Y: 9}
	if a.Distance(b) != b.Distance(a) {
		t.Fatalf("distance not symmetric: %v vs %v", a.Distance(b), b.Distance(a))
	}
	if got := a.Distance(b); got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
}

func TestWithin(t *testing.T) {
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{9, 9}, true},
		{Point{10, 3}, false},
		{Point{3, 10}, false},
		{Point{-1, 0}, false},
		{Point{0, -1}, false},
	}
	for _, c := range cases {
		if got := c.p.Within(10, 10); got != c.want {
			t.Errorf("%v.Within(10,10): expected %v, got %v", c.p, c.want, got)
		}
	}
}

func TestStringAndAdd(t *testing.T) {
	p := Point{X: 1, Y: 2}.Add(2, -1)
	if p.String() != "(3,1)" {
		t.Errorf("expected (3,1), got %s", p.String())
	}
}
