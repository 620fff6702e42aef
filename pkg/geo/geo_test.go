package geo

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestPointDistance(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(3, 4)
	if !approxEqual(a.Distance(b), 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", a.Distance(b))
	}
}

func TestPointDistanceSq(t *testing.T) {
	a := Pt(1, 2)
	b := Pt(4, 6)
	if !approxEqual(a.DistanceSq(b), 25.0, tolerance) {
		t.Errorf("expected squared distance 25, got %f", a.DistanceSq(b))
	}
}

func TestRound(t *testing.T) {
	p := Round(2.4, 7.6)
	if p.X != 2 || p.Y != 8 {
		t.Errorf("expected (2,8), got (%d,%d)", p.X, p.Y)
	}
	// Half-way values round away from zero.
	p = Round(2.5, 3.5)
	if p.X != 3 || p.Y != 4 {
		t.Errorf("expected (3,4), got (%d,%d)", p.X, p.Y)
	}
}

func TestClampRound(t *testing.T) {
	p := ClampRound(-3.2, 10.0, 8, 8)
	if p.X != 0 || p.Y != 7 {
		t.Errorf("expected (0,7), got (%d,%d)", p.X, p.Y)
	}
	p = ClampRound(7.9, -0.4, 8, 8)
	if p.X != 7 || p.Y != 0 {
		t.Errorf("expected (7,0), got (%d,%d)", p.X, p.Y)
	}
	p = ClampRound(4.0, 4.0, 8, 8)
	if p.X != 4 || p.Y != 4 {
		t.Errorf("expected (4,4), got (%d,%d)", p.X, p.Y)
	}
}
