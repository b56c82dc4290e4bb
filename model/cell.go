package model

// CellState is the state of a single board position
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "Alive"
	}
	return "Dead"
}

// Toggle returns the opposite state
func (s CellState) Toggle() CellState {
	if s == Alive {
		return Dead
	}
	return Alive
}

// IsAlive reports whether s is Alive
func (s CellState) IsAlive() bool {
	return s == Alive
}

// StateOf converts a boolean liveness into a CellState
func StateOf(alive bool) CellState {
	if alive {
		return Alive
	}
	return Dead
}
