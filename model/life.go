package model

import "github.com/sheikhrachel/go-gol-board/rules"

// neighborOffsets lists the 8 surrounding positions:
//
//	A B C
//	D x E
//	F G H
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// CountAliveNeighbors counts living cells around (x, y). Positions off the
// board count as Dead; the board does not wrap.
func CountAliveNeighbors(x, y int, b *Board) int {
	if b == nil {
		return 0
	}

	count := 0
	for _, off := range neighborOffsets {
		if b.stateAt(x+off[0], y+off[1]) == Alive {
			count++
		}
	}
	return count
}

// Tally counts how many cells each rule decided during one generation
type Tally struct {
	Underpopulation int
	Overpopulation  int
	Survival        int
	Reproduction    int
}

// Births returns the number of dead cells that came alive
func (t Tally) Births() int {
	return t.Reproduction
}

// Deaths returns the number of live cells that died
func (t Tally) Deaths() int {
	return t.Underpopulation + t.Overpopulation
}

func (t *Tally) add(tr rules.Transition) {
	switch tr {
	case rules.Underpopulation:
		t.Underpopulation++
	case rules.Overpopulation:
		t.Overpopulation++
	case rules.Survival:
		t.Survival++
	case rules.Reproduction:
		t.Reproduction++
	}
}

// Advance computes the next generation into a new board. Every cell is
// decided from the unmodified input. A nil board advances to nil.
func Advance(b *Board) *Board {
	next, _ := AdvanceTally(b)
	return next
}

// AdvanceTally is Advance, also reporting which rule fired how often
func AdvanceTally(b *Board) (*Board, Tally) {
	if b == nil {
		return nil, Tally{}
	}

	var (
		next  = newBoard(b.width, b.height)
		tally Tally
	)
	for y := range b.height {
		for x := range b.width {
			tr := rules.Classify(CountAliveNeighbors(x, y, b), b.cells[y][x].IsAlive())
			tally.add(tr)
			next.cells[y][x] = StateOf(tr.Alive())
		}
	}
	return next, tally
}
