package model

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned for a pattern name that is not registered
var ErrUnknownPattern = errors.New("unknown pattern")

var patterns = map[string][][]CellState{
	"glider": {
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	},
	"blinker": {
		{Alive, Alive, Alive},
	},
	"block": {
		{Alive, Alive},
		{Alive, Alive},
	},
	"r-pentomino": {
		{Dead, Alive, Alive},
		{Alive, Alive, Dead},
		{Dead, Alive, Dead},
	},
}

// PatternNames lists the registered patterns in alphabetical order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPattern returns a copy of the named pattern's rows
func LookupPattern(name string) ([][]CellState, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q, want one of %v", name, PatternNames())
	}
	rows := make([][]CellState, len(p))
	for y := range p {
		rows[y] = append([]CellState(nil), p[y]...)
	}
	return rows, nil
}

// Stamp overlays pattern onto base with its top-left corner at (atX, atY).
// Cells covered by the pattern take its state; base is still called for
// every cell so stateful generators stay in step.
func Stamp(base CellStateGenerator, pattern [][]CellState, atX, atY int) CellStateGenerator {
	if base == nil {
		base = RandomGenerator(nil)
	}
	return func(x, y int) CellState {
		s := base(x, y)
		py, px := y-atY, x-atX
		if py >= 0 && py < len(pattern) && px >= 0 && px < len(pattern[py]) {
			return pattern[py][px]
		}
		return s
	}
}

// Centered returns the top-left corner that centers pattern on a width x height board
func Centered(pattern [][]CellState, width, height int) (x, y int) {
	pw := 0
	if len(pattern) > 0 {
		pw = len(pattern[0])
	}
	return (width - pw) / 2, (height - len(pattern)) / 2
}
