package pkg

import (
	"fmt"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"

	"github.com/golang/glog"

	"github.com/terrain-map/hmap_converter/internal/converter"
	"github.com/terrain-map/hmap_converter/internal/geometry"
	"github.com/terrain-map/hmap_converter/internal/grid"
	hmapio "github.com/terrain-map/hmap_converter/internal/io"
	"github.com/terrain-map/hmap_converter/tools"
)

// Verifier round-trips a mesh through the u16 heightmap encoding and back,
// reporting how far the recovered elevations drift from the projected ones.
// With matching conventions on both legs the drift must stay within one
// quantization step of the encoding.
type Verifier struct {
	fileFinder tools.FileFinder
}

func NewVerifier(fileFinder tools.FileFinder) IConverter {
	return &Verifier{fileFinder: fileFinder}
}

func (v *Verifier) RunConversion(opts *converter.Options) error {
	meshFiles := v.fileFinder.GetMeshFilesToProcess(opts)

	workdir := opts.VerifyOptions.Workdir
	if workdir == "" {
		dir, err := ioutil.TempDir("", "hmap-verify-")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)
		workdir = dir
	}

	for _, filePath := range meshFiles {
		if err := v.verifyMeshFile(filePath, workdir, opts); err != nil {
			return err
		}
	}
	return nil
}

func (v *Verifier) verifyMeshFile(filePath string, workdir string, opts *converter.Options) error {
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

	projector, err := grid.NewProjector(cmdOpts.GridSize, axis)
	if err != nil {
		return err
	}
	projected, err := projector.Project(points, box)
	if err != nil {
		return err
	}

	low, high := box.Low.Coord(axis), box.High.Coord(axis)

	hmapPath := filepath.Join(workdir, getFilenameWithoutExtension(filePath)+".r16")
	writer, err := hmapio.NewHmapWriter(converter.EncodingU16, projector.DisplacementDim())
	if err != nil {
		return err
	}
	hmapOut := tools.CreateFileOrFail(hmapPath)
	if err := writer.Write(hmapOut, projected, low, high); err != nil {
		hmapOut.Close()
		return err
	}
	hmapOut.Close()
	glog.Infoln("round-trip heightmap written to", hmapPath)

	hmapIn := tools.OpenFileOrFail(hmapPath)
	defer hmapIn.Close()
	recovered, min, max, err := hmapio.ReadHeightmap(hmapIn, uint32(projected.Width()), uint32(projected.Height()))
	if err != nil {
		return err
	}

	// Lift with the elevation range pinned to the displacement bounds so the
	// recovered y coordinate is directly comparable with the projected sample.
	target := geometry.NewBoundingBoxFromCorners(
		geometry.NewPoint3(0, low, 0),
		geometry.NewPoint3(1, low+(high-low)*float64(math.MaxUint16)/float64(projector.DisplacementDim()), 1),
	)
	lifter, err := grid.NewLifter(uint32(recovered.Width()), uint32(recovered.Height()), target, &grid.Range{Low: 0, High: math.MaxUint16})
	if err != nil {
		return err
	}
	lifted, err := lifter.Lift(recovered, min, max)
	if err != nil {
		return err
	}

	step := (high - low) / float64(projector.DisplacementDim())
	maxDrift := 0.0
	for i := range lifted {
		drift := math.Abs(lifted[i].Y - projected.At(i))
		if drift > maxDrift {
			maxDrift = drift
		}
	}

	tools.LogOutput("> quantization step:", step)
	tools.LogOutput("> max elevation drift:", maxDrift)
	if maxDrift > step {
		glog.Warningf("round-trip drift %g exceeds one quantization step %g for %s", maxDrift, step, filePath)
	} else {
		tools.LogOutput("> round-trip within one quantization step")
	}
	return nil
}
