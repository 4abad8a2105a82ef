package universe

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
)

//Template represents a seeding template which can be used to settle
//the universe with a predefined pattern
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

//BuiltinTemplates are the patterns selectable from the command line
var BuiltinTemplates = []Template{
	{"glider", "the classic diagonal traveller", [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}},
	{"blinker", "period-2 row oscillator", [][]int{{1, 2}, {2, 2}, {3, 2}}},
	{"block", "2x2 still life", [][]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}},
	{"toad", "period-2 oscillator", [][]int{{2, 2}, {3, 2}, {4, 2}, {1, 3}, {2, 3}, {3, 3}}},
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (u *Universe) AddTemplate(tmpl Template) {
	u.templates[tmpl.Name] = tmpl
}

//SettleTemplate populates the universe with the seeding template,
//reports whether a template with this name is known
func (u *Universe) SettleTemplate(name string) bool {
	tmpl, ok := u.templates[name]
	if !ok {
		return false
	}
	u.settle(tmpl.Coordinates, Live)
	return true
}

//settle places state at each of the x,y coordinates,
//skipping any outside the grid
func (u *Universe) settle(vc [][]int, state Cell) {
	for _, v := range vc {
		if !u.grid.InBounds(v[0], v[1]) {
			continue
		}
		u.grid.cells[v[1]][v[0]] = state
	}
}

//FillRandom settles exactly n live cells at uniformly random positions:
//the flattened cell list gets n live entries and is shuffled, so the count
//is exact and the placement is without replacement.
//n < 0 fills half of the universe; n >= width*height is rejected with an
//OverpopulationError (n == width*height-1 is still valid and leaves a
//single dead cell)
func (u *Universe) FillRandom(n int) error {
	capacity := u.grid.Width * u.grid.Height
	if n < 0 {
		n = capacity / 2
	}
	if n >= capacity {
		return &OverpopulationError{Requested: n, Capacity: capacity}
	}

	flat := make([]Cell, capacity)
	for i := 0; i < n; i++ {
		flat[i] = Live
	}
	rand.Shuffle(capacity, func(i, j int) {
		flat[i], flat[j] = flat[j], flat[i]
	})
	u.grid.walk(func(x int, y int, _ Cell) {
		u.grid.cells[y][x] = flat[y*u.grid.Width+x]
	})
	return nil
}

//FillFromFile settles the universe from a text file: every character equal
//to the configured live glyph marks that line/column Live.
//Lines and columns beyond the grid dimensions are skipped, the grid size
//comes from the options alone
func (u *Universe) FillFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for y := 0; scanner.Scan(); y++ {
		for x, c := range []rune(scanner.Text()) {
			if c != u.options.Live {
				continue
			}
			if !u.grid.InBounds(x, y) {
				continue
			}
			u.grid.cells[y][x] = Live
		}
	}
	return scanner.Err()
}

//Seed creates and populates a fresh universe according to the options:
//a named template when Template is set, the seed file when InFile is set,
//random placement otherwise
func Seed(o *Options) (*Universe, error) {
	u := New(o)
	for _, tmpl := range BuiltinTemplates {
		u.AddTemplate(tmpl)
	}
	switch {
	case o.Template != "":
		if !u.SettleTemplate(o.Template) {
			return nil, fmt.Errorf("unknown template %q", o.Template)
		}
	case o.InFile != "":
		if err := u.FillFromFile(o.InFile); err != nil {
			return nil, err
		}
	default:
		if err := u.FillRandom(o.Cells); err != nil {
			return nil, err
		}
	}
	return u, nil
}
