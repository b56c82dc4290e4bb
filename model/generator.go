package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

// CellStateGenerator seeds the state of the cell at column x, row y. It is
// only consulted while a board is being generated.
type CellStateGenerator func(x, y int) CellState

// RandomGenerator returns Alive or Dead with equal probability for every
// cell, drawing from r. A nil r uses the global source.
func RandomGenerator(r *rand.Rand) CellStateGenerator {
	intn := rand.Intn
	if r != nil {
		intn = r.Intn
	}
	return func(_, _ int) CellState {
		if intn(2) == 0 {
			return Dead
		}
		return Alive
	}
}

// Constant returns a generator that ignores coordinates and always yields s
func Constant(s CellState) CellStateGenerator {
	return func(_, _ int) CellState {
		return s
	}
}

// Generate builds a width x height board. The generator is called once per
// cell in row-major order; a nil generator seeds every cell uniformly at random.
func Generate(width, height int, generator CellStateGenerator) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions,
			"[Generate] width=%d height=%d", width, height)
	}
	if generator == nil {
		generator = RandomGenerator(nil)
	}

	b := newBoard(width, height)
	for y := range height {
		for x := range width {
			b.cells[y][x] = generator(x, y)
		}
	}
	return b, nil
}
