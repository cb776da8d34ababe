package proj4_coordinate_converter

import (
	"fmt"
	"math"

	proj "github.com/xeonx/proj4"

	"github.com/terrain-map/hmap_converter/internal/converters"
	"github.com/terrain-map/hmap_converter/internal/geometry"
)

// Proj4 definitions for the srid codes terrain sources commonly ship in.
// Anything else must be converted upstream.
var epsgDefinitions = map[int]string{
	4326:  "+proj=longlat +datum=WGS84 +no_defs",
	4269:  "+proj=longlat +datum=NAD83 +no_defs",
	3857:  "+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +wktext +no_defs",
	3395:  "+proj=merc +lon_0=0 +k=1 +x_0=0 +y_0=0 +datum=WGS84 +units=m +no_defs",
	32632: "+proj=utm +zone=32 +datum=WGS84 +units=m +no_defs",
	32633: "+proj=utm +zone=33 +datum=WGS84 +units=m +no_defs",
}

type proj4CoordinateConverter struct {
	projections map[int]*proj.Proj
}

// NewProj4CoordinateConverter returns a CoordinateConverter backed by the
// proj4 library. Projection handles are initialized lazily and cached per
// srid until Cleanup is called.
func NewProj4CoordinateConverter() converters.CoordinateConverter {
	return &proj4CoordinateConverter{
		projections: make(map[int]*proj.Proj),
	}
}

func (c *proj4CoordinateConverter) ConvertPointSrid(sourceSrid int, targetSrid int, point geometry.Point3) (geometry.Point3, error) {
	if sourceSrid == targetSrid {
		return point, nil
	}

	source, err := c.initProjection(sourceSrid)
	if err != nil {
		return point, err
	}
	target, err := c.initProjection(targetSrid)
	if err != nil {
		return point, err
	}

	x := []float64{point.X}
	y := []float64{point.Y}
	z := []float64{point.Z}

	if source.IsLatLong() {
		x[0] *= math.Pi / 180
		y[0] *= math.Pi / 180
	}

	if err := proj.TransformRaw(source, target, x, y, z); err != nil {
		return point, fmt.Errorf("transform from srid %d to %d: %v", sourceSrid, targetSrid, err)
	}

	if target.IsLatLong() {
		x[0] *= 180 / math.Pi
		y[0] *= 180 / math.Pi
	}

	return geometry.NewPoint3(x[0], y[0], z[0]), nil
}

func (c *proj4CoordinateConverter) ConvertBoundingBoxSrid(sourceSrid int, targetSrid int, box geometry.BoundingBox) (geometry.BoundingBox, error) {
	low, err := c.ConvertPointSrid(sourceSrid, targetSrid, box.Low)
	if err != nil {
		return box, err
	}
	high, err := c.ConvertPointSrid(sourceSrid, targetSrid, box.High)
	if err != nil {
		return box, err
	}

	out := geometry.NewBoundingBox()
	out.Extend(low)
	out.Extend(high)
	return out, nil
}

func (c *proj4CoordinateConverter) Cleanup() {
	for _, projection := range c.projections {
		projection.Close()
	}
	c.projections = make(map[int]*proj.Proj)
}

func (c *proj4CoordinateConverter) initProjection(srid int) (*proj.Proj, error) {
	if projection, ok := c.projections[srid]; ok {
		return projection, nil
	}

	definition, ok := epsgDefinitions[srid]
	if !ok {
		return nil, fmt.Errorf("no proj4 definition known for srid %d", srid)
	}

	projection, err := proj.InitPlus(definition)
	if err != nil {
		return nil, fmt.Errorf("init projection for srid %d: %v", srid, err)
	}

	c.projections[srid] = projection
	return projection, nil
}
