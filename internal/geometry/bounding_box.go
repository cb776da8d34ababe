package geometry

import "math"

// BoundingBox is the axis aligned bounding box of a point set, tracked as the
// per-axis minimum and maximum of every point seen so far.
type BoundingBox struct {
	Low  Point3
	High Point3
}

// NewBoundingBox returns a bounding box primed with sentinel bounds so that the
// first call to Extend snaps both corners onto the point.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Low:  Point3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		High: Point3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// NewBoundingBoxFromCorners builds a box with explicit corners.
func NewBoundingBoxFromCorners(low, high Point3) BoundingBox {
	return BoundingBox{Low: low, High: high}
}

// Extend widens the box on all three axes to include p.
func (b *BoundingBox) Extend(p Point3) {
	b.Low.X = math.Min(b.Low.X, p.X)
	b.Low.Y = math.Min(b.Low.Y, p.Y)
	b.Low.Z = math.Min(b.Low.Z, p.Z)
	b.High.X = math.Max(b.High.X, p.X)
	b.High.Y = math.Max(b.High.Y, p.Y)
	b.High.Z = math.Max(b.High.Z, p.Z)
}

// Merge widens the box to include the corners of other.
func (b *BoundingBox) Merge(other BoundingBox) {
	b.Extend(other.Low)
	b.Extend(other.High)
}

// Size returns the extent of the box along the given axis.
func (b BoundingBox) Size(a Axis) float64 {
	return b.High.Coord(a) - b.Low.Coord(a)
}

// IsDegenerate reports whether the box lacks positive width along the given
// axis, which would turn a grid fit on that axis into a division by zero.
// Written as a negated comparison so NaN bounds count as degenerate too.
func (b BoundingBox) IsDegenerate(a Axis) bool {
	return !(b.High.Coord(a) > b.Low.Coord(a))
}

// IsValid reports whether at least one point has been folded into the box.
func (b BoundingBox) IsValid() bool {
	return b.Low.X <= b.High.X && b.Low.Y <= b.High.Y && b.Low.Z <= b.High.Z
}
