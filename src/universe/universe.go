package universe

//Options represents the universe's configurable options
type Options struct {
	Width    int
	Height   int
	AutoSize bool    //size the universe to the terminal
	Rate     float64 //generations per second
	Cells    int     //initial live cells for random seeding, <0 means half of the universe
	Live     rune    //glyph of a live cell
	Dead     rune    //glyph of a dead cell
	Fill     rune    //glyph placed between the cells of a rendered row
	Wrap     bool    //wrap cells around the edges (recognized but not implemented)
	InFile   string  //seed file path, empty means random seeding
	Template string  //named seeding template, empty means random seeding
	Repeat   bool    //re-seed and restart after a halt
	Delay    float64 //seconds to wait before a restart
	Eternal  bool    //keep running through halts (overrides Repeat)
	Quiet    bool    //suppress status messages
}

//default options
const (
	DefWidth  = 64
	DefHeight = 64
	DefRate   = 10.0
	DefCells  = -1
	DefDelay  = 1.0
)

var DefaultOptions = Options{
	Width:  DefWidth,
	Height: DefHeight,
	Rate:   DefRate,
	Cells:  DefCells,
	Live:   '.',
	Dead:   ' ',
	Fill:   ' ',
	Delay:  DefDelay,
}

//Universe is one runnable instance of the automaton: the grid plus its
//evolution state (generation counter and recent transition history).
//A universe is seeded once and then advanced in place; a restart builds
//a fresh universe instead of resetting this one
type Universe struct {
	options     Options
	grid        *Grid
	past        history
	generations int
	templates   map[string]Template
}

//New creates an empty (all cells dead) universe
func New(o *Options) *Universe {
	if o == nil {
		o = &DefaultOptions
	}
	return &Universe{
		options:   *o,
		grid:      NewGrid(o.Width, o.Height),
		templates: map[string]Template{},
	}
}

//Options returns the universe configuration
func (u *Universe) Options() Options {
	return u.options
}

//Grid returns the cell field
//callers may read it only between Advance calls
func (u *Universe) Grid() *Grid {
	return u.grid
}

//Generations returns the number of completed Advance calls
func (u *Universe) Generations() int {
	return u.generations
}

//LiveCells calculates the count of live cells
func (u *Universe) LiveCells() int {
	liveCells := 0
	u.grid.walk(func(x int, y int, state Cell) {
		if state == Live {
			liveCells++
		}
	})
	return liveCells
}

//Advance runs one generation in two phases: evaluate the rule over the
//whole grid, then apply every flip at once, so neighbor counts never
//observe a partially updated field.
//When eternal is false, a halt is detected if the pass produced no flips
//or reproduced a transition set seen within the last HistoryDepth
//generations; the returned HaltedError carries the generation count at
//the halt. The transition set is recorded in the history regardless of
//the outcome
func (u *Universe) Advance(eternal bool) error {
	u.generations++
	changes := ComputeTransitions(u.grid)
	applyTransitions(u.grid, changes)

	halted := !eternal && (len(changes) == 0 || u.past.contains(changes))
	u.past.push(changes)
	if halted {
		return &HaltedError{Generations: u.generations}
	}
	return nil
}
