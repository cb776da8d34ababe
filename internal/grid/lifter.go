package grid

import (
	"fmt"

	"github.com/terrain-map/hmap_converter/internal/geometry"
)

// Range is an explicit elevation interval used to normalize samples instead of
// the min/max discovered while reading a heightmap. It preserves absolute
// scale when a single tile of a larger map is converted.
type Range struct {
	Low  float64
	High float64
}

// Lifter converts heightmap cells into 3D points. Grid axes map onto object
// space with a fixed convention: column index to x, elevation to y, row index
// to z. Each normalized component is then fitted into the target box.
type Lifter struct {
	dimX   int
	dimY   int
	target geometry.BoundingBox
	remap  *Range
}

// NewLifter builds a lifter for a dimX by dimY heightmap. Both dimensions must
// be at least 2: the planar normalization divides by dim-1, so a dimension of
// exactly 1 has no defined cell spacing.
func NewLifter(dimX, dimY uint32, target geometry.BoundingBox, remap *Range) (*Lifter, error) {
	if dimX < 2 || dimY < 2 {
		return nil, fmt.Errorf("heightmap dimensions must be at least 2x2, got %dx%d", dimX, dimY)
	}
	return &Lifter{
		dimX:   int(dimX),
		dimY:   int(dimY),
		target: target,
		remap:  remap,
	}, nil
}

// Lift converts every grid cell into a point inside the target box. min and
// max are the elevation bounds discovered while reading the heightmap; the
// explicit remap range, when present, replaces them but is widened to still
// include them, so an under-specified range never clips data.
func (l *Lifter) Lift(g *Grid, min, max float64) ([]geometry.Point3, error) {
	low, high := min, max
	if l.remap != nil {
		low, high = l.remap.Low, l.remap.High
		if min < low {
			low = min
		}
		if max > high {
			high = max
		}
	}
	if !(high > low) {
		return nil, fmt.Errorf("degenerate elevation range [%g, %g]", low, high)
	}

	size := geometry.NewPoint3(
		l.target.High.X-l.target.Low.X,
		l.target.High.Y-l.target.Low.Y,
		l.target.High.Z-l.target.Low.Z,
	)

	points := make([]geometry.Point3, g.Len())
	for i := 0; i < g.Len(); i++ {
		u := float64(i%l.dimX) / float64(l.dimX-1)
		v := float64(i/l.dimY) / float64(l.dimY-1)
		w := (g.At(i) - low) / (high - low)

		points[i] = geometry.NewPoint3(
			l.target.Low.X+u*size.X,
			l.target.Low.Y+w*size.Y,
			l.target.Low.Z+v*size.Z,
		)
	}

	return points, nil
}
