package io

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/terrain-map/hmap_converter/internal/converter"
	"github.com/terrain-map/hmap_converter/internal/grid"
)

// HmapWriter rescales raw grid samples into the output range of the selected
// encoding and serializes them, binary samples as fixed-width little-endian
// values and text samples as back to back decimal numbers.
type HmapWriter struct {
	encoding converter.Encoding
	dispDim  uint32
}

// NewHmapWriter builds a writer targeting the given encoding. dispDim is the
// cell count configured for the displacement axis and defines the top of the
// rescaled value range.
func NewHmapWriter(encoding converter.Encoding, dispDim uint32) (*HmapWriter, error) {
	if converter.ParseEncoding(string(encoding)) == "" {
		return nil, fmt.Errorf("unknown heightmap encoding %q", encoding)
	}
	if dispDim < 1 {
		return nil, fmt.Errorf("displacement dimension must be positive, got %d", dispDim)
	}
	return &HmapWriter{encoding: encoding, dispDim: dispDim}, nil
}

// Write rescales every sample with dispDim / (high - low) relative to low and
// emits it. Narrowing casts into the unsigned encodings saturate at the target
// type bounds instead of wrapping.
//
// low and high are the displacement-axis bounds of the source points; equal
// bounds have no defined rescale and are rejected.
func (w *HmapWriter) Write(out io.Writer, g *grid.Grid, low, high float64) error {
	if !(high > low) {
		return fmt.Errorf("degenerate displacement range [%g, %g]", low, high)
	}
	scale := float64(w.dispDim) / (high - low)

	buffered := bufio.NewWriter(out)
	for i := 0; i < g.Len(); i++ {
		value := (g.At(i) - low) * scale
		if err := w.writeSample(buffered, value); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

func (w *HmapWriter) writeSample(out *bufio.Writer, value float64) error {
	if w.encoding.IsFloat() {
		if w.encoding.IsText() {
			// decimal keeps plain notation for any magnitude, where
			// strconv would flip to exponent form.
			_, err := out.WriteString(decimal.NewFromFloat32(float32(value)).String())
			return err
		}
		return binary.Write(out, binary.LittleEndian, float32(value))
	}

	clamped := clampSample(value, w.encoding.MaxSampleValue())
	if w.encoding.IsText() {
		_, err := out.WriteString(strconv.FormatUint(clamped, 10))
		return err
	}

	switch w.encoding {
	case converter.EncodingU8:
		return out.WriteByte(uint8(clamped))
	case converter.EncodingU16:
		return binary.Write(out, binary.LittleEndian, uint16(clamped))
	case converter.EncodingU32:
		return binary.Write(out, binary.LittleEndian, uint32(clamped))
	}
	return fmt.Errorf("unknown heightmap encoding %q", w.encoding)
}

func clampSample(value, max float64) uint64 {
	if value < 0 {
		return 0
	}
	if value > max {
		return uint64(max)
	}
	return uint64(value)
}
