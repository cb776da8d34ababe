package io

import (
	"fmt"
	"unsafe"

	"github.com/cobaltgray/go-plyfile"

	"github.com/terrain-map/hmap_converter/internal/geometry"
)

// plyVertex mirrors the x/y/z float properties of a PLY vertex element. The
// property offsets below are tied to this layout.
type plyVertex struct {
	X, Y, Z float32
}

var plyVertexProps = []plyfile.PlyProperty{
	{Name: "x", ExternalType: plyfile.PLY_FLOAT, InternalType: plyfile.PLY_FLOAT, Offset: int(unsafe.Offsetof(plyVertex{}.X))},
	{Name: "y", ExternalType: plyfile.PLY_FLOAT, InternalType: plyfile.PLY_FLOAT, Offset: int(unsafe.Offsetof(plyVertex{}.Y))},
	{Name: "z", ExternalType: plyfile.PLY_FLOAT, InternalType: plyfile.PLY_FLOAT, Offset: int(unsafe.Offsetof(plyVertex{}.Z))},
}

// ReadPlyVertices collects the vertex element of a PLY file into the same
// point sequence and bounding box ReadObjVertices produces, so both mesh
// formats feed the projection pipeline interchangeably.
func ReadPlyVertices(filePath string) ([]geometry.Point3, geometry.BoundingBox, error) {
	box := geometry.NewBoundingBox()

	cplyfile, elemNames := plyfile.PlyOpenForReading(filePath)
	if cplyfile == nil {
		return nil, box, fmt.Errorf("cannot open PLY file %s", filePath)
	}
	defer plyfile.PlyClose(cplyfile)

	var points []geometry.Point3
	for _, name := range elemNames {
		_, numElems, _ := plyfile.PlyGetElementDescription(cplyfile, name)
		if name != "vertex" {
			continue
		}

		for i := range plyVertexProps {
			plyfile.PlyGetProperty(cplyfile, name, &plyVertexProps[i])
		}

		points = make([]geometry.Point3, 0, numElems)
		for i := 0; i < numElems; i++ {
			var vertex plyVertex
			plyfile.PlyGetElement(cplyfile, &vertex, unsafe.Sizeof(vertex))

			point := geometry.NewPoint3(float64(vertex.X), float64(vertex.Y), float64(vertex.Z))
			box.Extend(point)
			points = append(points, point)
		}
	}

	if len(points) == 0 {
		return nil, box, fmt.Errorf("PLY file %s has no vertex element", filePath)
	}
	return points, box, nil
}
