package universe

//Transition is a single cell flip produced by one rule evaluation pass
type Transition struct {
	X     int
	Y     int
	State Cell
}

//TransitionSet is the ordered sequence of flips produced by one pass,
//in row-major scan order
type TransitionSet []Transition

//Equal compares two sets element-wise, including order
func (ts TransitionSet) Equal(other TransitionSet) bool {
	if len(ts) != len(other) {
		return false
	}
	for i := range ts {
		if ts[i] != other[i] {
			return false
		}
	}
	return true
}

//neighborOffsets is the Moore neighborhood around a cell
var neighborOffsets = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

//liveNeighbors counts the live cells in the Moore neighborhood of x,y
//coordinates outside the grid contribute nothing
func liveNeighbors(g *Grid, x int, y int) int {
	n := 0
	for _, d := range neighborOffsets {
		nx := x + d[0]
		ny := y + d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		if g.cells[ny][nx] == Live {
			n++
		}
	}
	return n
}

//ComputeTransitions evaluates the transition rule for every cell of the
//grid and returns the flips to apply:
//a live cell with fewer than 2 or more than 3 live neighbors dies,
//a dead cell with exactly 3 live neighbors is born,
//any other cell is left out of the set (unchanged).
//The grid is never mutated here, so every neighbor count observes only
//the pre-tick state
func ComputeTransitions(g *Grid) TransitionSet {
	var changes TransitionSet
	g.walk(func(x int, y int, state Cell) {
		n := liveNeighbors(g, x, y)
		if state == Live && (n < 2 || n > 3) {
			changes = append(changes, Transition{x, y, Dead})
		} else if state == Dead && n == 3 {
			changes = append(changes, Transition{x, y, Live})
		}
	})
	return changes
}

//applyTransitions writes all flips of one pass to the grid
//each flip targets a distinct cell, so the order does not matter
func applyTransitions(g *Grid, changes TransitionSet) {
	for _, t := range changes {
		g.cells[t.Y][t.X] = t.State
	}
}
