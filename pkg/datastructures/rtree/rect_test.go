package rtree

import "testing"

func TestRectValidate(t *testing.T) {
	if err := (Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}).Validate(); err != nil {
		t.Fatalf("valid rect rejected: %v", err)
	}
	if err := (Rect{MinX: 2, MinY: 0, MaxX: 1, MaxY: 1}).Validate(); err == nil {
		t.Fatal("expected error for MinX > MaxX")
	}
	if err := (Rect{MinX: 0, MinY: 2, MaxX: 1, MaxY: 1}).Validate(); err == nil {
		t.Fatal("expected error for MinY > MaxY")
	}
}

func TestRectAreaAndPerimeter(t *testing.T) {
	r := Rect{MinX: 0, MinY: 0, MaxX: 3, MaxY: 4}
	if got := r.Area(); got != 12 {
		t.Errorf("Area() = %v, want 12", got)
	}
	if got := r.Perimeter(); got != 14 {
		t.Errorf("Perimeter() = %v, want 14", got)
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	b := Rect{MinX: 1, MinY: 1, MaxX: 4, MaxY: 3}
	want := Rect{MinX: 0, MinY: 0, MaxX: 4, MaxY: 3}
	if got := a.Union(b); got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}

func TestRectIntersectsAndIntersection(t *testing.T) {
	a := Rect{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	b := Rect{MinX: 1, MinY: 1, MaxX: 3, MaxY: 3}
	c := Rect{MinX: 5, MinY: 5, MaxX: 6, MaxY: 6}

	if !a.Intersects(b) {
		t.Error("expected a and b to intersect")
	}
	if a.Intersects(c) {
		t.Error("expected a and c to be disjoint")
	}

	inter, ok := a.Intersection(b)
	if !ok {
		t.Fatal("expected intersection to exist")
	}
	want := Rect{MinX: 1, MinY: 1, MaxX: 2, MaxY: 2}
	if inter != want {
		t.Errorf("Intersection() = %+v, want %+v", inter, want)
	}

	if _, ok := a.Intersection(c); ok {
		t.Error("expected no intersection between a and c")
	}
}

func TestRectEnlargementAndOverlap(t *testing.T) {
	a := Rect{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	b := Rect{MinX: 1, MinY: 1, MaxX: 4, MaxY: 4}

	if got := a.Enlargement(b); got != 12 {
		t.Errorf("Enlargement() = %v, want 12", got)
	}
	if got := a.Overlap(b); got != 1 {
		t.Errorf("Overlap() = %v, want 1", got)
	}

	disjoint := Rect{MinX: 10, MinY: 10, MaxX: 11, MaxY: 11}
	if got := a.Overlap(disjoint); got != 0 {
		t.Errorf("Overlap() of disjoint rects = %v, want 0", got)
	}
}

func TestRectCenterAndSquaredDistance(t *testing.T) {
	r := Rect{MinX: 0, MinY: 0, MaxX: 4, MaxY: 2}
	center := r.Center()
	if center != (Point{X: 2, Y: 1}) {
		t.Errorf("Center() = %+v, want {2 1}", center)
	}
	if got := center.SquaredDistanceTo(Point{X: 0, Y: 0}); got != 5 {
		t.Errorf("SquaredDistanceTo() = %v, want 5", got)
	}
}

func TestBoundingRect(t *testing.T) {
	rects := []Rect{
		{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		{MinX: 3, MinY: 3, MaxX: 5, MaxY: 5},
	}
	want := Rect{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}
	if got := boundingRect(rects); got != want {
		t.Errorf("boundingRect() = %+v, want %+v", got, want)
	}
}
