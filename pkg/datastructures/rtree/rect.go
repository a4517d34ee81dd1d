package rtree

import (
	"fmt"
	"math"

	cerrors "github.com/chris-alexander-pop/rstartree/pkg/errors"
)

// Rect is a closed axis-aligned 2-D rectangle. Degenerate (point or line)
// rectangles are legal: MinX may equal MaxX, and likewise for Y.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Validate returns an InvalidArgument error if min > max on either axis.
func (r Rect) Validate() error {
	if r.MinX > r.MaxX || r.MinY > r.MaxY {
		return cerrors.InvalidArgument(fmt.Sprintf("invalid rectangle: %+v", r), nil)
	}
	return nil
}

// Area returns the rectangle's area. A degenerate rectangle has area 0.
func (r Rect) Area() float64 {
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}

// Perimeter returns the rectangle's perimeter.
func (r Rect) Perimeter() float64 {
	return 2 * ((r.MaxX - r.MinX) + (r.MaxY - r.MinY))
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// Intersects reports whether r and o share at least one point.
func (r Rect) Intersects(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX && r.MinY <= o.MaxY && o.MinY <= r.MaxY
}

// Intersection returns the overlapping region of r and o, and false if they
// are disjoint.
func (r Rect) Intersection(o Rect) (Rect, bool) {
	if !r.Intersects(o) {
		return Rect{}, false
	}
	return Rect{
		MinX: math.Max(r.MinX, o.MinX),
		MinY: math.Max(r.MinY, o.MinY),
		MaxX: math.Min(r.MaxX, o.MaxX),
		MaxY: math.Min(r.MaxY, o.MaxY),
	}, true
}

// Enlargement returns the increase in area required for r to grow and
// contain o: area(union(r, o)) - area(r).
func (r Rect) Enlargement(o Rect) float64 {
	return r.Union(o).Area() - r.Area()
}

// Overlap returns the area shared between r and o, or 0 if they're disjoint.
func (r Rect) Overlap(o Rect) float64 {
	inter, ok := r.Intersection(o)
	if !ok {
		return 0
	}
	return inter.Area()
}

// Point is a 2-D coordinate, used for rectangle centroids during R*
// forced-reinsertion distance sorting.
type Point struct {
	X, Y float64
}

// Center returns the centroid of r.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// SquaredDistanceTo returns the squared Euclidean distance between two
// points. Squared distance is sufficient for comparison/sorting and avoids
// an unnecessary sqrt on the hot forced-reinsertion path.
func (p Point) SquaredDistanceTo(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// boundingRect returns the union of a non-empty slice of rectangles.
func boundingRect(rects []Rect) Rect {
	bb := rects[0]
	for _, r := range rects[1:] {
		bb = bb.Union(r)
	}
	return bb
}
