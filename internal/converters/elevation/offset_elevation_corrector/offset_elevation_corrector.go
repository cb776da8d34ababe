package offset_elevation_corrector

import "github.com/terrain-map/hmap_converter/internal/converters"

// OffsetElevationCorrector shifts every elevation by a constant amount,
// typically to rebase terrain tiles exported with different vertical datums.
type OffsetElevationCorrector struct {
	Offset float64
}

func NewOffsetElevationCorrector(offset float64) converters.ElevationCorrector {
	return &OffsetElevationCorrector{
		Offset: offset,
	}
}

func (c *OffsetElevationCorrector) CorrectElevation(x, y, z float64) float64 {
	return z + c.Offset
}
