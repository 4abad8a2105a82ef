package universe

import "fmt"

//OutOfBoundsError reports a grid access outside [0,width)x[0,height)
//it indicates a contract violation in the calling code
type OutOfBoundsError struct {
	X int
	Y int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%v,%v) is outside the universe", e.X, e.Y)
}

//OverpopulationError reports a random seeding request that exceeds
//the universe capacity
type OverpopulationError struct {
	Requested int
	Capacity  int
}

func (e *OverpopulationError) Error() string {
	return fmt.Sprintf("number of random cells cannot exceed universe size (max: %v)", e.Capacity)
}

//HaltedError signals that the universe reached a static or short-period
//cyclic state; it is the expected end of a run, not a failure
type HaltedError struct {
	Generations int
}

func (e *HaltedError) Error() string {
	return fmt.Sprintf("universe halted after %v generations", e.Generations)
}
