package tools

import (
	"math"
	"strconv"

	"github.com/terrain-map/hmap_converter/internal/converter"
)

// The historical command line surface of the two converters is loosely
// ordered: tokens are classified by what they parse as, not by position, and
// fill the first empty slot of their kind. Reserved keywords (axis selectors,
// encoding names, --absolute) are claimed first, then positive integers fill
// the dimension slots in encounter order, then anything that parses as a
// float fills the bounding box corner slots (all low components before high),
// and whatever is left fills the input path and then the output path.
//
// Numbers accept the 0x/0 prefixes, so a 0xFFFF dimension keeps working.

// DeriveObj2HmapParams classifies the positional arguments of the obj2hmap
// command into the given options.
func DeriveObj2HmapParams(args []string, opts *converter.Options) {
	cmdOpts := opts.Obj2HmapOptions

	for _, arg := range args {
		if axis, ok := converter.ParseAxis(arg); ok {
			cmdOpts.AxisMask[int(axis)] = true
			continue
		}
		if encoding := converter.ParseEncoding(arg); encoding != "" {
			cmdOpts.Encoding = encoding
			continue
		}
		if fillDimensionSlot(arg, cmdOpts.GridSize[:]) {
			continue
		}
		if fillCornerSlot(arg, cmdOpts.BoxCorners[:], &cmdOpts.BoxCornersFound) {
			continue
		}
		fillPathSlot(arg, opts)
	}
}

// DeriveHmap2ObjParams classifies the positional arguments of the hmap2obj
// command into the given options.
func DeriveHmap2ObjParams(args []string, opts *converter.Options) {
	cmdOpts := opts.Hmap2ObjOptions

	for _, arg := range args {
		if arg == "--absolute" || arg == "-absolute" {
			cmdOpts.Absolute = true
			continue
		}
		if fillDimensionSlot(arg, cmdOpts.GridSize[:]) {
			continue
		}
		if fillCornerSlot(arg, cmdOpts.BoxCorners[:], &cmdOpts.BoxCornersFound) {
			continue
		}
		fillPathSlot(arg, opts)
	}
}

// DeriveVerifyParams classifies the positional arguments of the verify
// command, which shares the obj2hmap surface minus the output path.
func DeriveVerifyParams(args []string, opts *converter.Options) {
	DeriveObj2HmapParams(args, opts)
}

// fillDimensionSlot claims tokens parsing as positive integers for the first
// still-empty dimension slot. Once every slot is taken, or for values that do
// not fit a uint32 dimension, the token is left for the corner classifier.
func fillDimensionSlot(arg string, dims []uint32) bool {
	n, err := strconv.ParseInt(arg, 0, 64)
	if err != nil || n <= 0 || n > math.MaxUint32 {
		return false
	}
	for i := range dims {
		if dims[i] == 0 {
			dims[i] = uint32(n)
			return true
		}
	}
	return false
}

// fillCornerSlot claims tokens parsing as floats for the next bounding box
// corner component.
func fillCornerSlot(arg string, corners []float64, found *int) bool {
	value, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return false
	}
	if *found < len(corners) {
		corners[*found] = value
		*found++
	}
	return true
}

// fillPathSlot assigns the token to the input path if still empty, then to
// the output path.
func fillPathSlot(arg string, opts *converter.Options) {
	if opts.Input == "" {
		opts.Input = arg
		return
	}
	if opts.Output == "" {
		opts.Output = arg
	}
}
