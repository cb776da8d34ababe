package io

import (
	"bufio"
	"fmt"
	"io"

	"github.com/terrain-map/hmap_converter/internal/geometry"
)

// WriteObjMesh emits the point sequence as Wavefront OBJ vertex lines followed
// by a face list triangulating the points as a regular grid of the given row
// width. Vertices are implicitly 1-indexed by their position, which is what
// the face references use.
//
// Each grid quad is split into two triangles: for the 1-indexed vertex i not
// in the last row and not at the end of its row, faces (i, i+1, i+rowWidth)
// and (i+1, i+rowWidth, i+rowWidth+1) are written. The winding is consistent
// across the whole mesh.
func WriteObjMesh(w io.Writer, points []geometry.Point3, rowWidth uint32) error {
	out := bufio.NewWriter(w)

	for _, p := range points {
		if _, err := fmt.Fprintf(out, "v %g %g %g\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
	}

	width := int(rowWidth)
	for i := 1; i <= len(points)-width; i++ {
		if i%width == 0 {
			continue
		}
		if _, err := fmt.Fprintf(out, "f %d %d %d\n", i, i+1, i+width); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "f %d %d %d\n", i+1, i+width, i+width+1); err != nil {
			return err
		}
	}

	return out.Flush()
}
