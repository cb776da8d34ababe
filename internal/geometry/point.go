package geometry

// Point3 is a single terrain sample in object space.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// NewPoint3 builds a new Point3 from the given coordinates.
func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Axis identifies one of the three object-space axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return ""
}

// Coord returns the component of p along the given axis.
func (p Point3) Coord(a Axis) float64 {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	}
	return 0
}

// WithCoord returns a copy of p with the component along the given axis replaced.
func (p Point3) WithCoord(a Axis, v float64) Point3 {
	switch a {
	case AxisX:
		p.X = v
	case AxisY:
		p.Y = v
	case AxisZ:
		p.Z = v
	}
	return p
}
