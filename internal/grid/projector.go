package grid

import (
	"fmt"
	"math"

	"github.com/terrain-map/hmap_converter/internal/geometry"
)

// Projector flattens a 3D point cloud onto a 2D grid by dropping the
// displacement axis: the two retained axes are fitted onto integer cells and
// the displacement coordinate becomes the cell sample.
type Projector struct {
	dims [3]uint32
	axis geometry.Axis
}

// NewProjector builds a projector for the given per-axis cell counts and
// displacement axis. Every dimension must be positive.
func NewProjector(dims [3]uint32, axis geometry.Axis) (*Projector, error) {
	for i, d := range dims {
		if d < 1 {
			return nil, fmt.Errorf("grid dimension for axis %s must be positive, got %d", geometry.Axis(i), d)
		}
	}
	return &Projector{dims: dims, axis: axis}, nil
}

// Project maps every point into a single grid cell, storing its displacement
// coordinate as the cell sample. When several points land in the same cell the
// last one wins; cells no point lands in keep a sample of 0.
//
// The bounding box must enclose every point and must not be degenerate on the
// retained axes, otherwise the per-axis fit divides by zero.
func (p *Projector) Project(points []geometry.Point3, box geometry.BoundingBox) (*Grid, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no points to project")
	}

	var scale [3]float64
	for i := 0; i < 3; i++ {
		axis := geometry.Axis(i)
		if axis == p.axis {
			continue
		}
		if box.IsDegenerate(axis) {
			return nil, fmt.Errorf("bounding box is degenerate on retained axis %s: low %g, high %g",
				axis, box.Low.Coord(axis), box.High.Coord(axis))
		}
		scale[i] = float64(p.dims[i]-1) / box.Size(axis)
	}

	width, height := p.planeDims()
	out := NewGrid(width, height)

	for _, point := range points {
		index := 0
		stride := 1
		for i := 0; i < 3; i++ {
			axis := geometry.Axis(i)
			if axis == p.axis {
				continue
			}
			cell := math.Floor((point.Coord(axis) - box.Low.Coord(axis)) * scale[i])
			// Negated so a NaN coordinate fails the guard instead of slipping
			// through both comparisons into a corrupt index.
			if !(cell >= 0 && cell < float64(p.dims[i])) {
				return nil, fmt.Errorf("point (%g, %g, %g) falls outside the bounding box on axis %s",
					point.X, point.Y, point.Z, axis)
			}
			index += int(cell) * stride
			stride *= int(p.dims[i])
		}
		out.Set(index, point.Coord(p.axis))
	}

	return out, nil
}

// planeDims returns the grid extents over the two retained axes, first
// retained axis first (it is the one varying fastest in the flat index).
func (p *Projector) planeDims() (width, height int) {
	retained := make([]int, 0, 2)
	for i := 0; i < 3; i++ {
		if geometry.Axis(i) != p.axis {
			retained = append(retained, int(p.dims[i]))
		}
	}
	return retained[0], retained[1]
}

// DisplacementDim returns the cell count configured for the displacement axis.
// It defines the output value range when samples are rescaled for encoding.
func (p *Projector) DisplacementDim() uint32 {
	return p.dims[int(p.axis)]
}
