package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundingBoxExtend(t *testing.T) {
	box := NewBoundingBox()
	require.False(t, box.IsValid())

	box.Extend(NewPoint3(1, 2, 3))
	require.True(t, box.IsValid())
	require.Equal(t, NewPoint3(1, 2, 3), box.Low)
	require.Equal(t, NewPoint3(1, 2, 3), box.High)

	box.Extend(NewPoint3(-1, 5, 0))
	require.Equal(t, NewPoint3(-1, 2, 0), box.Low)
	require.Equal(t, NewPoint3(1, 5, 3), box.High)
}

func TestBoundingBoxDegenerateAxis(t *testing.T) {
	box := NewBoundingBox()
	box.Extend(NewPoint3(0, 0, 0))
	box.Extend(NewPoint3(0, 1, 1))

	require.True(t, box.IsDegenerate(AxisX))
	require.False(t, box.IsDegenerate(AxisY))
	require.False(t, box.IsDegenerate(AxisZ))
}

func TestBoundingBoxNaNBoundsAreDegenerate(t *testing.T) {
	box := NewBoundingBox()
	box.Extend(NewPoint3(0, 0, 0))
	box.Extend(NewPoint3(math.NaN(), 1, 1))

	require.True(t, box.IsDegenerate(AxisX))
	require.False(t, box.IsDegenerate(AxisY))
}

func TestBoundingBoxMerge(t *testing.T) {
	box := NewBoundingBoxFromCorners(NewPoint3(0, 0, 0), NewPoint3(1, 1, 1))
	other := NewBoundingBoxFromCorners(NewPoint3(-1, 0.5, 0), NewPoint3(0.5, 2, 1))

	box.Merge(other)
	require.Equal(t, NewPoint3(-1, 0, 0), box.Low)
	require.Equal(t, NewPoint3(1, 2, 1), box.High)
}

func TestAxisAccessors(t *testing.T) {
	p := NewPoint3(1, 2, 3)
	require.Equal(t, 1.0, p.Coord(AxisX))
	require.Equal(t, 2.0, p.Coord(AxisY))
	require.Equal(t, 3.0, p.Coord(AxisZ))

	require.Equal(t, NewPoint3(1, 9, 3), p.WithCoord(AxisY, 9))
	// WithCoord copies, the receiver is untouched.
	require.Equal(t, NewPoint3(1, 2, 3), p)
}
