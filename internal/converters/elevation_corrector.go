package converters

// ElevationCorrector adjusts the elevation of a point given its planar
// position. Corrections run before the point cloud is fitted into the grid.
type ElevationCorrector interface {
	CorrectElevation(x, y, z float64) float64
}
