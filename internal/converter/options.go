package converter

import (
	"strings"

	"github.com/terrain-map/hmap_converter/internal/geometry"
)

// Encoding selects the numeric range and serialization of heightmap samples.
type Encoding string

const (
	// Binary little-endian fixed width samples.
	EncodingU8  Encoding = "u8"
	EncodingU16 Encoding = "u16"
	EncodingU32 Encoding = "u32"
	EncodingF32 Encoding = "f32"

	// Text variants of the above. Values are written back to back in decimal
	// notation with no separator between them.
	EncodingTU8  Encoding = "tu8"
	EncodingTU16 Encoding = "tu16"
	EncodingTU32 Encoding = "tu32"
	EncodingTF32 Encoding = "tf32"
)

func (e Encoding) String() string {
	return string(e)
}

// IsText reports whether the encoding serializes samples as decimal text.
func (e Encoding) IsText() bool {
	return strings.HasPrefix(string(e), "t")
}

// IsFloat reports whether the encoding carries IEEE-754 samples rather than
// narrowed unsigned integers.
func (e Encoding) IsFloat() bool {
	return e == EncodingF32 || e == EncodingTF32
}

// MaxSampleValue returns the top of the target range for the unsigned integer
// encodings. Float encodings have no narrowing cast and return 0.
func (e Encoding) MaxSampleValue() float64 {
	switch e {
	case EncodingU8, EncodingTU8:
		return 255
	case EncodingU16, EncodingTU16:
		return 65535
	case EncodingU32, EncodingTU32:
		return 4294967295
	}
	return 0
}

// ParseEncoding maps a command line keyword onto an Encoding. Returns the
// empty Encoding if the keyword is not one of the 8 known variants.
func ParseEncoding(value string) Encoding {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "u8":
		return EncodingU8
	case "u16":
		return EncodingU16
	case "u32":
		return EncodingU32
	case "f32":
		return EncodingF32
	case "tu8":
		return EncodingTU8
	case "tu16":
		return EncodingTU16
	case "tu32":
		return EncodingTU32
	case "tf32":
		return EncodingTF32
	}
	return ""
}

// ParseAxis maps a command line keyword onto a displacement axis.
func ParseAxis(value string) (geometry.Axis, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "x":
		return geometry.AxisX, true
	case "y":
		return geometry.AxisY, true
	case "z":
		return geometry.AxisZ, true
	}
	return 0, false
}

// Contains the options shared by all conversion commands plus a pointer to the
// options of the specific command being run.
type Options struct {
	Input  string // Input mesh or heightmap file/folder
	Output string // Output heightmap or mesh file/folder

	SridIn           int     // EPSG code of input vertices, 0 disables reprojection
	SridOut          int     // EPSG code to reproject vertices into before gridding
	ZOffset          float64 // Offset applied to the displacement coordinate of every vertex
	FolderProcessing bool    // Enables the processing of all mesh files in the input folder
	Recursive        bool    // Recursive lookup of mesh files in subfolders

	Command         string
	Obj2HmapOptions *Obj2HmapOptions
	Hmap2ObjOptions *Hmap2ObjOptions
	VerifyOptions   *VerifyOptions
}

// Obj2HmapOptions carries the mesh to heightmap parameters derived from the
// loose positional command line surface.
type Obj2HmapOptions struct {
	GridSize [3]uint32 // Heightmap cell counts per axis, filled in encounter order
	AxisMask [3]bool   // Which axes were named as the displacement axis
	Encoding Encoding  // Output sample range and serialization

	// Explicit bounding box corners overriding the discovered AABB, used to
	// keep absolute scale when converting one tile of a larger map. Corner
	// components are filled in encounter order, all low slots before high.
	BoxCorners      [6]float64
	BoxCornersFound int
}

// Hmap2ObjOptions carries the heightmap to mesh parameters.
type Hmap2ObjOptions struct {
	GridSize [2]uint32 // Heightmap cell counts, X then Y

	// Target box for the lifted points. Defaults reproduce the historical
	// normalization of the tool: x and z in [-0.5, 0.5], y in [0, 0.5].
	BoxCorners      [6]float64
	BoxCornersFound int

	// Absolute remaps elevation against the full u16 sample range instead of
	// the min/max discovered in the file, preserving absolute scale across
	// tiles of the same map.
	Absolute bool
}

// VerifyOptions carries the round-trip verification parameters.
type VerifyOptions struct {
	Workdir string // Scratch folder for the intermediate files, empty for os.TempDir
}

// DisplacementAxis resolves the axis mask into the single selected axis.
// ok is false unless exactly one axis was selected.
func (o *Obj2HmapOptions) DisplacementAxis() (axis geometry.Axis, ok bool) {
	count := 0
	for i, set := range o.AxisMask {
		if set {
			axis = geometry.Axis(i)
			count++
		}
	}
	return axis, count == 1
}

// explicitBox converts the corner slots into a bounding box. ok is false when
// no corners were supplied; supplying some but not all six corners is left for
// the validator to reject.
func explicitBox(corners [6]float64, found int) (geometry.BoundingBox, bool) {
	if found == 0 {
		return geometry.BoundingBox{}, false
	}
	return geometry.NewBoundingBoxFromCorners(
		geometry.NewPoint3(corners[0], corners[1], corners[2]),
		geometry.NewPoint3(corners[3], corners[4], corners[5]),
	), true
}

func (o *Obj2HmapOptions) ExplicitBox() (geometry.BoundingBox, bool) {
	return explicitBox(o.BoxCorners, o.BoxCornersFound)
}

func (o *Hmap2ObjOptions) TargetBox() geometry.BoundingBox {
	if box, ok := explicitBox(o.BoxCorners, o.BoxCornersFound); ok {
		return box
	}
	return geometry.NewBoundingBoxFromCorners(
		geometry.NewPoint3(-0.5, 0, -0.5),
		geometry.NewPoint3(0.5, 0.5, 0.5),
	)
}
