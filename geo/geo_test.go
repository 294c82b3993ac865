package geo

import "testing"

func TestDistanceZero(t *testing.T) {
	p := Point{30.5, 50.45}
	if d := Distance(p, p); d != 0 {
		t.Errorf("distance of a point from itself = %v, want 0", d)
	}
}

func TestDistanceKnownOffset(t *testing.T) {
	// One degree of latitude is ~111.3 km at the equirectangular
	// approximation this package uses (R * pi/180 = 111319.5 m).
	p1 := Point{0, 0}
	p2 := Point{0, 1}
	d := Distance(p1, p2)
	if d < 110000 || d > 112000 {
		t.Errorf("distance = %v, want ~111320", d)
	}
}

func TestContainsBoundary(t *testing.T) {
	b := NewBound(10, 20, 11, 21)
	if !Contains(b, Point{10, 20}) {
		t.Error("lower-left corner should be contained (inclusive boundary)")
	}
	if !Contains(b, Point{11, 21}) {
		t.Error("upper-right corner should be contained (inclusive boundary)")
	}
	if Contains(b, Point{9.999, 20}) {
		t.Error("point just outside the box should not be contained")
	}
}

func TestMean(t *testing.T) {
	pts := []Point{{0, 0}, {2, 2}, {4, 4}}
	m := Mean(pts)
	if m[0] != 2 || m[1] != 2 {
		t.Errorf("mean = %v, want (2,2)", m)
	}
	if z := Mean(nil); z != (Point{}) {
		t.Errorf("mean of empty set = %v, want zero value", z)
	}
}
