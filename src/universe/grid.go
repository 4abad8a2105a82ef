package universe

//Cell is the state of a single grid position
type Cell bool

const (
	Live Cell = true
	Dead Cell = false
)

//Grid owns the 2D cell-state buffer
//dimensions are fixed after creation, every coordinate in
//[0,width)x[0,height) is addressable, there is no wraparound
type Grid struct {
	Width  int
	Height int
	cells  [][]Cell
}

//NewGrid allocates the grid rows from a single backing buffer
func NewGrid(width int, height int) *Grid {
	g := Grid{Width: width, Height: height, cells: make([][]Cell, height)}
	b := make([]Cell, width*height)
	for i := range g.cells {
		start := width * i
		g.cells[i] = b[start : start+width : start+width]
	}
	return &g
}

//InBounds reports whether x,y addresses a cell of the grid
func (g *Grid) InBounds(x int, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

//Get returns the state of the cell at x,y
func (g *Grid) Get(x int, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Dead, &OutOfBoundsError{X: x, Y: y}
	}
	return g.cells[y][x], nil
}

//Set places state at x,y
func (g *Grid) Set(x int, y int, state Cell) error {
	if !g.InBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y}
	}
	g.cells[y][x] = state
	return nil
}

//Row returns the cells of row y for read-only walking,
//nil when y is outside the grid
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= g.Height {
		return nil
	}
	return g.cells[y]
}

//walk walks the entire grid in row-major order and calls the cb function for each cell
func (g *Grid) walk(cb func(x int, y int, state Cell)) {
	for y := range g.cells {
		for x := range g.cells[y] {
			cb(x, y, g.cells[y][x])
		}
	}
}
