package pkg

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/terrain-map/hmap_converter/internal/converter"
	"github.com/terrain-map/hmap_converter/internal/converters"
	"github.com/terrain-map/hmap_converter/internal/geometry"
	"github.com/terrain-map/hmap_converter/internal/grid"
	hmapio "github.com/terrain-map/hmap_converter/internal/io"
	"github.com/terrain-map/hmap_converter/tools"
)

type IConverter interface {
	RunConversion(opts *converter.Options) error
}

// Obj2HmapConverter drives the mesh to heightmap pipeline: stream the
// vertices, fit them onto the grid, rescale and serialize the samples.
type Obj2HmapConverter struct {
	fileFinder          tools.FileFinder
	coordinateConverter converters.CoordinateConverter
	elevationCorrector  converters.ElevationCorrector
}

func NewObj2HmapConverter(
	fileFinder tools.FileFinder,
	coordinateConverter converters.CoordinateConverter,
	elevationCorrector converters.ElevationCorrector,
) IConverter {
	return &Obj2HmapConverter{
		fileFinder:          fileFinder,
		coordinateConverter: coordinateConverter,
		elevationCorrector:  elevationCorrector,
	}
}

func (c *Obj2HmapConverter) RunConversion(opts *converter.Options) error {
	meshFiles := c.fileFinder.GetMeshFilesToProcess(opts)
	glog.Infoln("mesh file list", tools.FmtJSONString(meshFiles))

	for i, filePath := range meshFiles {
		tools.LogOutput("Processing file " + strconv.Itoa(i+1) + "/" + strconv.Itoa(len(meshFiles)))
		if err := c.convertMeshFile(filePath, c.outputPathFor(filePath, opts), opts); err != nil {
			return err
		}
	}

	if c.coordinateConverter != nil {
		c.coordinateConverter.Cleanup()
	}

	return nil
}

func (c *Obj2HmapConverter) convertMeshFile(filePath string, outputPath string, opts *converter.Options) error {
	cmdOpts := opts.Obj2HmapOptions

	axis, ok := cmdOpts.DisplacementAxis()
	if !ok {
		return fmt.Errorf("exactly one displacement axis must be selected")
	}

	points, box, err := readMeshFile(filePath)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no vertices found in %s", filePath)
	}
	tools.LogOutput("> parsed vertices:", len(points))
	tools.LogOutput("> bounding box:", tools.FmtJSONString(box))

	points, box, err = c.transformPoints(points, box, axis, opts)
	if err != nil {
		return err
	}

	if explicit, ok := cmdOpts.ExplicitBox(); ok {
		// Widen the explicit box with the discovered bounds so every point
		// keeps an in-grid cell even when the caller under-specifies the box.
		explicit.Merge(box)
		box = explicit
	}

	projector, err := grid.NewProjector(cmdOpts.GridSize, axis)
	if err != nil {
		return err
	}

	tools.LogOutput("> fitting into grid...")
	heightGrid, err := projector.Project(points, box)
	if err != nil {
		return err
	}

	tools.LogOutput("> dumping heights...")
	writer, err := hmapio.NewHmapWriter(cmdOpts.Encoding, projector.DisplacementDim())
	if err != nil {
		return err
	}

	outputFile := tools.CreateFileOrFail(outputPath)
	defer outputFile.Close()

	if err := writer.Write(outputFile, heightGrid, box.Low.Coord(axis), box.High.Coord(axis)); err != nil {
		return err
	}

	tools.LogOutput("> done processing", filepath.Base(filePath))
	return nil
}

// readMeshFile dispatches on the file extension: .ply vertices go through the
// PLY reader, anything else is treated as Wavefront OBJ.
func readMeshFile(filePath string) ([]geometry.Point3, geometry.BoundingBox, error) {
	tools.LogOutput("> reading mesh file...", filepath.Base(filePath))

	if strings.ToLower(filepath.Ext(filePath)) == ".ply" {
		return hmapio.ReadPlyVertices(filePath)
	}

	meshFile := tools.OpenFileOrFail(filePath)
	defer meshFile.Close()
	return hmapio.ReadObjVertices(meshFile)
}

// transformPoints applies the optional srid reprojection and elevation offset.
// The bounding box is rebuilt when any point moved.
func (c *Obj2HmapConverter) transformPoints(
	points []geometry.Point3,
	box geometry.BoundingBox,
	axis geometry.Axis,
	opts *converter.Options,
) ([]geometry.Point3, geometry.BoundingBox, error) {
	reproject := opts.SridIn != 0 && opts.SridOut != 0 && opts.SridIn != opts.SridOut
	correct := c.elevationCorrector != nil && opts.ZOffset != 0

	if !reproject && !correct {
		return points, box, nil
	}

	out := geometry.NewBoundingBox()
	for i, point := range points {
		if reproject {
			converted, err := c.coordinateConverter.ConvertPointSrid(opts.SridIn, opts.SridOut, point)
			if err != nil {
				return nil, box, err
			}
			point = converted
		}
		if correct {
			point = point.WithCoord(axis, c.elevationCorrector.CorrectElevation(point.X, point.Y, point.Coord(axis)))
		}
		points[i] = point
		out.Extend(point)
	}

	return points, out, nil
}

func (c *Obj2HmapConverter) outputPathFor(filePath string, opts *converter.Options) string {
	if !opts.FolderProcessing {
		return opts.Output
	}
	return filepath.Join(opts.Output, getFilenameWithoutExtension(filePath)+".hmap")
}

func getFilenameWithoutExtension(filePath string) string {
	nameWext := filepath.Base(filePath)
	extension := filepath.Ext(nameWext)
	return nameWext[0 : len(nameWext)-len(extension)]
}
