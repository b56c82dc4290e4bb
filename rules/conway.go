package rules

// Transition names which of Conway's rules decided a cell's next state.
type Transition uint8

const (
	StaysDead Transition = iota
	Underpopulation
	Survival
	Overpopulation
	Reproduction
)

var transitionNames = [...]string{
	StaysDead:       "stays dead",
	Underpopulation: "underpopulation",
	Survival:        "survival",
	Overpopulation:  "overpopulation",
	Reproduction:    "reproduction",
}

func (t Transition) String() string {
	if int(t) < len(transitionNames) {
		return transitionNames[t]
	}
	return "unknown"
}

// Alive reports whether the cell is alive after the transition.
func (t Transition) Alive() bool {
	return t == Survival || t == Reproduction
}

/*
Classify applies Conway's Game of Life rules to a cell with the given number of
living neighbors:

 1. A live cell with fewer than two live neighbors dies (underpopulation).
 2. A live cell with two or three live neighbors lives on (survival).
 3. A live cell with more than three live neighbors dies (overpopulation).
 4. A dead cell with exactly three live neighbors becomes alive (reproduction).
*/
func Classify(neighbors int, alive bool) Transition {
	switch {
	case alive && neighbors < 2:
		return Underpopulation
	case alive && neighbors > 3:
		return Overpopulation
	case alive:
		return Survival
	case neighbors == 3:
		return Reproduction
	default:
		return StaysDead
	}
}
