package grid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terrain-map/hmap_converter/internal/geometry"
)

func gridFromSamples(width, height int, samples []float64) *Grid {
	g := NewGrid(width, height)
	for i, s := range samples {
		g.Set(i, s)
	}
	return g
}

func TestLiftThreeByThree(t *testing.T) {
	g := gridFromSamples(3, 3, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8})

	target := geometry.NewBoundingBoxFromCorners(
		geometry.NewPoint3(-0.5, 0, -0.5),
		geometry.NewPoint3(0.5, 1, 0.5),
	)
	lifter, err := NewLifter(3, 3, target, nil)
	require.NoError(t, err)

	points, err := lifter.Lift(g, 0, 8)
	require.NoError(t, err)
	require.Len(t, points, 9)

	// Center cell lands in the middle of the box at half elevation.
	center := points[4]
	require.InDelta(t, 0, center.X, 1e-9)
	require.InDelta(t, 0.5, center.Y, 1e-9)
	require.InDelta(t, 0, center.Z, 1e-9)

	// Corner cells land on the box corners with their own elevations.
	expect := []struct {
		index int
		x, z  float64
		elev  float64
	}{
		{0, -0.5, -0.5, 0},
		{2, 0.5, -0.5, 2},
		{6, -0.5, 0.5, 6},
		{8, 0.5, 0.5, 8},
	}
	for _, e := range expect {
		p := points[e.index]
		require.InDelta(t, e.x, p.X, 1e-9, "index %d", e.index)
		require.InDelta(t, e.elev/8, p.Y, 1e-9, "index %d", e.index)
		require.InDelta(t, e.z, p.Z, 1e-9, "index %d", e.index)
	}
}

func TestLiftColumnElevationRowAxisConvention(t *testing.T) {
	// Column index drives x, elevation drives y, row index drives z.
	g := gridFromSamples(2, 2, []float64{0, 0, 0, 10})

	target := geometry.NewBoundingBoxFromCorners(
		geometry.NewPoint3(0, 0, 0),
		geometry.NewPoint3(1, 1, 1),
	)
	lifter, err := NewLifter(2, 2, target, nil)
	require.NoError(t, err)

	points, err := lifter.Lift(g, 0, 10)
	require.NoError(t, err)

	require.Equal(t, geometry.NewPoint3(1, 0, 0), points[1]) // column 1, row 0
	require.Equal(t, geometry.NewPoint3(0, 0, 1), points[2]) // column 0, row 1
	require.Equal(t, geometry.NewPoint3(1, 1, 1), points[3])
}

func TestLiftRemapRangeKeepsAbsoluteScale(t *testing.T) {
	g := gridFromSamples(2, 2, []float64{100, 150, 200, 250})

	target := geometry.NewBoundingBoxFromCorners(
		geometry.NewPoint3(0, 0, 0),
		geometry.NewPoint3(1, 1, 1),
	)
	lifter, err := NewLifter(2, 2, target, &Range{Low: 0, High: 1000})
	require.NoError(t, err)

	points, err := lifter.Lift(g, 100, 250)
	require.NoError(t, err)

	require.InDelta(t, 0.1, points[0].Y, 1e-9)
	require.InDelta(t, 0.25, points[3].Y, 1e-9)
}

func TestLiftRemapRangeWidensToDiscovered(t *testing.T) {
	g := gridFromSamples(2, 2, []float64{0, 2, 8, 10})

	target := geometry.NewBoundingBoxFromCorners(
		geometry.NewPoint3(0, 0, 0),
		geometry.NewPoint3(1, 1, 1),
	)
	// Caller under-specifies the range; the discovered 0..10 widens it back.
	lifter, err := NewLifter(2, 2, target, &Range{Low: 2, High: 8})
	require.NoError(t, err)

	points, err := lifter.Lift(g, 0, 10)
	require.NoError(t, err)

	require.InDelta(t, 0, points[0].Y, 1e-9)
	require.InDelta(t, 1, points[3].Y, 1e-9)
}

func TestLiftDegenerateElevationRangeFails(t *testing.T) {
	g := gridFromSamples(2, 2, []float64{5, 5, 5, 5})

	target := geometry.NewBoundingBoxFromCorners(
		geometry.NewPoint3(0, 0, 0),
		geometry.NewPoint3(1, 1, 1),
	)
	lifter, err := NewLifter(2, 2, target, nil)
	require.NoError(t, err)

	_, err = lifter.Lift(g, 5, 5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "degenerate")
}

func TestNewLifterRejectsUnitDimensions(t *testing.T) {
	target := geometry.NewBoundingBoxFromCorners(
		geometry.NewPoint3(0, 0, 0),
		geometry.NewPoint3(1, 1, 1),
	)

	_, err := NewLifter(1, 4, target, nil)
	require.Error(t, err)

	_, err = NewLifter(4, 1, target, nil)
	require.Error(t, err)
}
