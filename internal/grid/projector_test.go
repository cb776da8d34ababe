package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terrain-map/hmap_converter/internal/geometry"
)

func regularPoints(n int, elevation func(x, z int) float64) ([]geometry.Point3, geometry.BoundingBox) {
	box := geometry.NewBoundingBox()
	var points []geometry.Point3
	for z := 0; z < n; z++ {
		for x := 0; x < n; x++ {
			p := geometry.NewPoint3(float64(x), elevation(x, z), float64(z))
			box.Extend(p)
			points = append(points, p)
		}
	}
	return points, box
}

func TestProjectRegularGrid(t *testing.T) {
	points, box := regularPoints(4, func(x, z int) float64 {
		return float64(x + 10*z)
	})

	projector, err := NewProjector([3]uint32{4, 100, 4}, geometry.AxisY)
	require.NoError(t, err)

	g, err := projector.Project(points, box)
	require.NoError(t, err)

	require.Equal(t, 4, g.Width())
	require.Equal(t, 4, g.Height())
	require.Equal(t, 16, g.Len())

	// Each point lands in its own cell and the cell keeps the raw elevation.
	for z := 0; z < 4; z++ {
		for x := 0; x < 4; x++ {
			require.Equal(t, float64(x+10*z), g.At(x+4*z), "cell (%d, %d)", x, z)
		}
	}
}

func TestProjectRowMajorXFastest(t *testing.T) {
	// Displacement on Z: the retained plane is (X, Y) with X varying fastest.
	box := geometry.NewBoundingBox()
	points := []geometry.Point3{
		geometry.NewPoint3(0, 0, 7),
		geometry.NewPoint3(1, 0, 8),
		geometry.NewPoint3(0, 1, 9),
	}
	for _, p := range points {
		box.Extend(p)
	}

	projector, err := NewProjector([3]uint32{2, 2, 50}, geometry.AxisZ)
	require.NoError(t, err)

	g, err := projector.Project(points, box)
	require.NoError(t, err)

	require.Equal(t, 7.0, g.At(0))
	require.Equal(t, 8.0, g.At(1))
	require.Equal(t, 9.0, g.At(2))
	require.Equal(t, 0.0, g.At(3)) // never visited
}

func TestProjectLastWriteWins(t *testing.T) {
	box := geometry.NewBoundingBox()
	points := []geometry.Point3{
		geometry.NewPoint3(0, 1, 0),
		geometry.NewPoint3(3, 2, 3),
		geometry.NewPoint3(0.1, 5, 0.1), // same cell as the first point
	}
	for _, p := range points {
		box.Extend(p)
	}

	projector, err := NewProjector([3]uint32{4, 10, 4}, geometry.AxisY)
	require.NoError(t, err)

	g, err := projector.Project(points, box)
	require.NoError(t, err)
	require.Equal(t, 5.0, g.At(0))
}

func TestProjectDegenerateBoxFails(t *testing.T) {
	box := geometry.NewBoundingBox()
	points := []geometry.Point3{
		geometry.NewPoint3(1, 0, 0),
		geometry.NewPoint3(1, 5, 3),
	}
	for _, p := range points {
		box.Extend(p)
	}

	// Zero width on retained axis X.
	projector, err := NewProjector([3]uint32{4, 10, 4}, geometry.AxisY)
	require.NoError(t, err)

	_, err = projector.Project(points, box)
	require.Error(t, err)
	require.Contains(t, err.Error(), "degenerate")
}

func TestProjectNoPointsFails(t *testing.T) {
	projector, err := NewProjector([3]uint32{4, 10, 4}, geometry.AxisY)
	require.NoError(t, err)

	_, err = projector.Project(nil, geometry.NewBoundingBox())
	require.Error(t, err)
}

func TestProjectPointsInsideBoxStayInGrid(t *testing.T) {
	points, box := regularPoints(7, func(x, z int) float64 {
		return float64(x*z) * 0.25
	})
	// Extra off-lattice points, still inside the box.
	points = append(points,
		geometry.NewPoint3(0.3, 1.2, 5.9),
		geometry.NewPoint3(5.99, 0.1, 0.01),
		geometry.NewPoint3(6, 9, 6),
	)
	box.Extend(geometry.NewPoint3(6, 9, 6))

	projector, err := NewProjector([3]uint32{16, 32, 16}, geometry.AxisY)
	require.NoError(t, err)

	g, err := projector.Project(points, box)
	require.NoError(t, err)
	require.Equal(t, 16*16, g.Len())
}

func TestProjectNaNPointFails(t *testing.T) {
	// A NaN coordinate must surface as an error from the cell guard, never as
	// a corrupt negative index into the grid storage.
	points, box := regularPoints(4, func(x, z int) float64 {
		return float64(x + z)
	})
	points = append(points, geometry.NewPoint3(math.NaN(), 1, 1))

	projector, err := NewProjector([3]uint32{4, 10, 4}, geometry.AxisY)
	require.NoError(t, err)

	_, err = projector.Project(points, box)
	require.Error(t, err)
	require.Contains(t, err.Error(), "outside the bounding box")
}

func TestProjectNaNBoxFails(t *testing.T) {
	box := geometry.NewBoundingBox()
	box.Extend(geometry.NewPoint3(0, 0, 0))
	box.Extend(geometry.NewPoint3(math.NaN(), 1, 1))

	projector, err := NewProjector([3]uint32{4, 10, 4}, geometry.AxisY)
	require.NoError(t, err)

	_, err = projector.Project([]geometry.Point3{geometry.NewPoint3(0, 0, 0)}, box)
	require.Error(t, err)
	require.Contains(t, err.Error(), "degenerate")
}

func TestNewProjectorRejectsZeroDimension(t *testing.T) {
	_, err := NewProjector([3]uint32{4, 0, 4}, geometry.AxisY)
	require.Error(t, err)
}
