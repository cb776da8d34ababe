package io

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terrain-map/hmap_converter/internal/geometry"
)

func TestReadObjVertices(t *testing.T) {
	obj := strings.Join([]string{
		"# exported terrain tile",
		"o terrain",
		"v 1 2 3",
		"vn 0 1 0",
		"vt 0.5 0.5",
		"v -1 -2 -3",
		"f 1 2 3",
		"",
	}, "\n")

	points, box, err := ReadObjVertices(strings.NewReader(obj))
	require.NoError(t, err)

	require.Equal(t, []geometry.Point3{
		geometry.NewPoint3(1, 2, 3),
		geometry.NewPoint3(-1, -2, -3),
	}, points)

	require.Equal(t, geometry.NewPoint3(-1, -2, -3), box.Low)
	require.Equal(t, geometry.NewPoint3(1, 2, 3), box.High)
}

func TestReadObjVerticesKeepsFileOrder(t *testing.T) {
	obj := "v 3 0 0\nv 1 0 0\nv 2 0 0\n"

	points, _, err := ReadObjVertices(strings.NewReader(obj))
	require.NoError(t, err)
	require.Equal(t, 3.0, points[0].X)
	require.Equal(t, 1.0, points[1].X)
	require.Equal(t, 2.0, points[2].X)
}

func TestReadObjVerticesScientificNotation(t *testing.T) {
	points, _, err := ReadObjVertices(strings.NewReader("v 1e2 -2.5e-1 0\n"))
	require.NoError(t, err)
	require.Equal(t, geometry.NewPoint3(100, -0.25, 0), points[0])
}

func TestReadObjVerticesBadCoordinateFails(t *testing.T) {
	_, _, err := ReadObjVertices(strings.NewReader("v 1 two 3\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 1")
}

func TestReadObjVerticesNonFiniteCoordinateFails(t *testing.T) {
	// ParseFloat accepts these spellings, but letting them through would
	// poison the bounding box and the grid fit built on it.
	for _, obj := range []string{"v NaN 0 0\n", "v 1 +Inf 3\n", "v 1 2 -inf\n"} {
		_, _, err := ReadObjVertices(strings.NewReader(obj))
		require.Error(t, err, "input %q", obj)
		require.Contains(t, err.Error(), "line 1")
		require.Contains(t, err.Error(), "non-finite")
	}
}

func TestReadObjVerticesShortVertexFails(t *testing.T) {
	_, _, err := ReadObjVertices(strings.NewReader("v 1 2\n"))
	require.Error(t, err)
}

func TestReadObjVerticesEmptyInput(t *testing.T) {
	points, _, err := ReadObjVertices(strings.NewReader("# nothing here\n"))
	require.NoError(t, err)
	require.Empty(t, points)
}
