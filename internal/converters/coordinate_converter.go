package converters

import (
	"github.com/terrain-map/hmap_converter/internal/geometry"
)

// CoordinateConverter reprojects points between spatial reference systems
// identified by EPSG srid codes. Cleanup releases whatever native resources
// the implementation holds and must be called once conversion is done.
type CoordinateConverter interface {
	ConvertPointSrid(sourceSrid int, targetSrid int, point geometry.Point3) (geometry.Point3, error)
	ConvertBoundingBoxSrid(sourceSrid int, targetSrid int, box geometry.BoundingBox) (geometry.BoundingBox, error)
	Cleanup()
}
