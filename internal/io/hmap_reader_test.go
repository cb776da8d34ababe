package io

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func u16Stream(samples ...uint16) *bytes.Buffer {
	var buf bytes.Buffer
	for _, s := range samples {
		binary.Write(&buf, binary.LittleEndian, s)
	}
	return &buf
}

func TestReadHeightmap(t *testing.T) {
	g, min, max, err := ReadHeightmap(u16Stream(7, 0, 65535, 12), 2, 2)
	require.NoError(t, err)

	require.Equal(t, 4, g.Len())
	require.Equal(t, []float64{7, 0, 65535, 12}, g.Samples())
	require.Equal(t, 0.0, min)
	require.Equal(t, 65535.0, max)
}

func TestReadHeightmapShortStreamZeroFills(t *testing.T) {
	g, min, max, err := ReadHeightmap(u16Stream(5, 9), 2, 2)
	require.NoError(t, err)

	require.Equal(t, []float64{5, 9, 0, 0}, g.Samples())
	// min/max only track samples actually read.
	require.Equal(t, 5.0, min)
	require.Equal(t, 9.0, max)
}

func TestReadHeightmapIgnoresTrailingBytes(t *testing.T) {
	stream := u16Stream(1, 2, 3, 4)
	stream.WriteString("trailing garbage")

	g, _, max, err := ReadHeightmap(stream, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, g.Samples())
	require.Equal(t, 4.0, max)
}

func TestReadHeightmapEmptyStreamLeavesSentinels(t *testing.T) {
	g, min, max, err := ReadHeightmap(&bytes.Buffer{}, 2, 2)
	require.NoError(t, err)

	require.Equal(t, []float64{0, 0, 0, 0}, g.Samples())
	// Inverted sentinel pair, rejected downstream as a degenerate range.
	require.Equal(t, float64(math.MaxUint16), min)
	require.Equal(t, 0.0, max)
}
