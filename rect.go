package rtree

import (
	"math"
	"strconv"
)

// Rect is an axis-aligned rectangle. Rects are values and are never modified
// by the tree. Two Rects are equal when all four coordinates are equal.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// emptyRect is the boundary of a node that has no entries. It is the identity
// for combine and does not intersect anything.
var emptyRect = Rect{
	MinX: math.Inf(+1),
	MinY: math.Inf(+1),
	MaxX: math.Inf(-1),
	MaxY: math.Inf(-1),
}

// NewRect creates a Rect, returning ErrInvalidGeometry if a minimum exceeds
// its maximum or any coordinate is NaN.
func NewRect(minX, minY, maxX, maxY float64) (Rect, error) {
	r := Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	if err := r.Validate(); err != nil {
		return Rect{}, err
	}
	return r, nil
}

// Validate checks that r is a well formed rectangle. Rects built as struct
// literals skip the check in NewRect, so the tree validates at its boundary.
func (r Rect) Validate() error {
	// NaN fails every comparison, so test for the good case.
	if !(r.MinX <= r.MaxX) || !(r.MinY <= r.MaxY) {
		return wrapErr(ErrInvalidGeometry, "%v", r)
	}
	return nil
}

// Intersects reports whether r and other share at least one point. Touching
// edges count as intersecting.
func (r Rect) Intersects(other Rect) bool {
	return true &&
		(r.MinX <= other.MaxX) && (r.MaxX >= other.MinX) &&
		(r.MinY <= other.MaxY) && (r.MaxY >= other.MinY)
}

// Area is the area of r. Degenerate rectangles have zero area.
func (r Rect) Area() float64 {
	return area(r)
}

// String formats r as [minX,minY,maxX,maxY].
func (r Rect) String() string {
	b := make([]byte, 0, 32)
	b = append(b, '[')
	for i, v := range [4]float64{r.MinX, r.MinY, r.MaxX, r.MaxY} {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendFloat(b, v, 'g', -1, 64)
	}
	return string(append(b, ']'))
}

// combine gives the smallest rectangle containing both r1 and r2.
func combine(r1, r2 Rect) Rect {
	return Rect{
		MinX: math.Min(r1.MinX, r2.MinX),
		MinY: math.Min(r1.MinY, r2.MinY),
		MaxX: math.Max(r1.MaxX, r2.MaxX),
		MaxY: math.Max(r1.MaxY, r2.MaxY),
	}
}

// enlargement returns how much additional area the existing Rect would have
// to enlarge by to accommodate the additional Rect.
func enlargement(existing, additional Rect) float64 {
	return area(combine(existing, additional)) - area(existing)
}

func area(r Rect) float64 {
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}

// centerDistance is the Euclidean distance between the centres of r1 and r2.
func centerDistance(r1, r2 Rect) float64 {
	dx := (r1.MinX+r1.MaxX)/2 - (r2.MinX+r2.MaxX)/2
	dy := (r1.MinY+r1.MaxY)/2 - (r2.MinY+r2.MaxY)/2
	return math.Hypot(dx, dy)
}

// overlapArea is the area shared by r1 and r2, or zero if they are disjoint
// or only touch.
func overlapArea(r1, r2 Rect) float64 {
	w := math.Min(r1.MaxX, r2.MaxX) - math.Max(r1.MinX, r2.MinX)
	h := math.Min(r1.MaxY, r2.MaxY) - math.Max(r1.MinY, r2.MinY)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}
