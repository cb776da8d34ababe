package io

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/terrain-map/hmap_converter/internal/grid"
)

// ReadHeightmap reads exactly dimX*dimY unsigned 16-bit little-endian samples
// from a flat binary stream into a grid, tracking the minimum and maximum
// sample seen. A stream shorter than the declared dimensions is not an error:
// the remaining cells stay zero. Bytes beyond the required count are ignored.
//
// min and max start at the bounds of the sample type itself, so a stream that
// yields no samples at all comes back with an inverted (min, max) pair that
// downstream stages reject as a degenerate range.
func ReadHeightmap(r io.Reader, dimX, dimY uint32) (*grid.Grid, float64, float64, error) {
	out := grid.NewGrid(int(dimX), int(dimY))

	min := float64(math.MaxUint16)
	max := float64(0)

	buffered := bufio.NewReader(r)
	var raw [2]byte
	for i := 0; i < out.Len(); i++ {
		if _, err := io.ReadFull(buffered, raw[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return nil, 0, 0, err
		}
		value := float64(binary.LittleEndian.Uint16(raw[:]))
		out.Set(i, value)
		if value < min {
			min = value
		}
		if value > max {
			max = value
		}
	}

	return out, min, max, nil
}
