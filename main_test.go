package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terrain-map/hmap_converter/internal/converter"
)

func TestValidateHmap2ObjRejectsFolderProcessing(t *testing.T) {
	opts := &converter.Options{
		FolderProcessing: true,
		Hmap2ObjOptions:  &converter.Hmap2ObjOptions{GridSize: [2]uint32{64, 64}},
	}

	msg, ok := validateOptionsForCommandHmap2Obj(opts)
	require.False(t, ok)
	require.Contains(t, msg, "Folder processing")
}

func TestValidateCorners(t *testing.T) {
	msg, ok := validateCorners(0, [6]float64{})
	require.True(t, ok, msg)

	_, ok = validateCorners(4, [6]float64{0, 0, 0, 1, 1, 1})
	require.False(t, ok)

	// Inverted corner pair on one axis.
	_, ok = validateCorners(6, [6]float64{0, 2, 0, 1, 1, 1})
	require.False(t, ok)

	msg, ok = validateCorners(6, [6]float64{-1, -1, -1, 1, 1, 1})
	require.True(t, ok, msg)
}
