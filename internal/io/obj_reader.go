package io

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/terrain-map/hmap_converter/internal/geometry"
)

// maxObjLineSize bounds a single OBJ line. Vertex lines are short but some
// exporters emit very long comment or group lines.
const maxObjLineSize = 1024 * 1024

// ReadObjVertices scans a Wavefront OBJ stream line by line collecting every
// vertex into a point sequence, in file order, and widening the bounding box
// on all three axes as it goes.
//
// Only lines starting with "v " are examined, everything else (faces, normals,
// comments, materials) is skipped verbatim. The scan is single-pass and never
// seeks, so arbitrarily large files stream through with memory bound by the
// vertex count.
func ReadObjVertices(r io.Reader) ([]geometry.Point3, geometry.BoundingBox, error) {
	box := geometry.NewBoundingBox()
	var points []geometry.Point3

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxObjLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(line) < 2 || line[0] != 'v' || line[1] != ' ' {
			continue
		}

		fields := strings.Fields(line[2:])
		if len(fields) < 3 {
			return nil, box, fmt.Errorf("line %d: vertex has %d coordinates, want 3", lineNo, len(fields))
		}

		var coords [3]float64
		for i := 0; i < 3; i++ {
			value, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, box, fmt.Errorf("line %d: bad vertex coordinate %q: %v", lineNo, fields[i], err)
			}
			// ParseFloat accepts "NaN" and "Inf" spellings; a non-finite
			// coordinate would poison the bounding box and every grid fit
			// derived from it.
			if math.IsNaN(value) || math.IsInf(value, 0) {
				return nil, box, fmt.Errorf("line %d: non-finite vertex coordinate %q", lineNo, fields[i])
			}
			coords[i] = value
		}

		point := geometry.NewPoint3(coords[0], coords[1], coords[2])
		box.Extend(point)
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, box, err
	}

	return points, box, nil
}
