package pkg

import (
	"math"

	"github.com/terrain-map/hmap_converter/internal/converter"
	"github.com/terrain-map/hmap_converter/internal/grid"
	hmapio "github.com/terrain-map/hmap_converter/internal/io"
	"github.com/terrain-map/hmap_converter/tools"
)

// Hmap2ObjConverter drives the heightmap to mesh pipeline: read the samples,
// lift every cell into a point inside the target box, write the vertices and
// the regular triangulation.
type Hmap2ObjConverter struct{}

func NewHmap2ObjConverter() IConverter {
	return &Hmap2ObjConverter{}
}

func (c *Hmap2ObjConverter) RunConversion(opts *converter.Options) error {
	cmdOpts := opts.Hmap2ObjOptions
	dimX, dimY := cmdOpts.GridSize[0], cmdOpts.GridSize[1]

	tools.LogOutput("> reading heightmap file...")
	hmapFile := tools.OpenFileOrFail(opts.Input)
	defer hmapFile.Close()

	heightGrid, min, max, err := hmapio.ReadHeightmap(hmapFile, dimX, dimY)
	if err != nil {
		return err
	}
	tools.LogOutput("> min height:", min)
	tools.LogOutput("> max height:", max)

	var remap *grid.Range
	if cmdOpts.Absolute {
		remap = &grid.Range{Low: 0, High: math.MaxUint16}
	}

	lifter, err := grid.NewLifter(dimX, dimY, cmdOpts.TargetBox(), remap)
	if err != nil {
		return err
	}

	tools.LogOutput("> creating point cloud...")
	points, err := lifter.Lift(heightGrid, min, max)
	if err != nil {
		return err
	}

	tools.LogOutput("> dumping object file...")
	outputFile := tools.CreateFileOrFail(opts.Output)
	defer outputFile.Close()

	if err := hmapio.WriteObjMesh(outputFile, points, dimX); err != nil {
		return err
	}

	tools.LogOutput("> done processing")
	return nil
}
