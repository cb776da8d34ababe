package grid

// Grid is a dense 2D heightfield stored in row-major order with the first
// axis varying fastest. Samples keep the raw displacement coordinate of the
// points that produced them; rescaling into an output range happens only at
// serialization time.
type Grid struct {
	samples []float64
	width   int
	height  int
}

// NewGrid builds a zero-initialized grid of width*height cells.
func NewGrid(width, height int) *Grid {
	return &Grid{
		samples: make([]float64, width*height),
		width:   width,
		height:  height,
	}
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) Len() int {
	return len(g.samples)
}

func (g *Grid) At(i int) float64 {
	return g.samples[i]
}

func (g *Grid) Set(i int, value float64) {
	g.samples[i] = value
}

// Samples exposes the backing storage. Treat as read-only once the grid has
// been handed to the next pipeline stage.
func (g *Grid) Samples() []float64 {
	return g.samples
}
