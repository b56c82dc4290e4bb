package model

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimensions is returned for a non-positive width or height
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	// ErrNonRectangular is returned when rows differ in length
	ErrNonRectangular = errors.New("board rows must all have the same length")
	// ErrOutOfRange is returned by direct cell access outside the board
	ErrOutOfRange = errors.New("cell coordinate out of range")
)

// Board is an immutable rectangular grid of cells. Every operation that
// changes the board produces a new Board.
type Board struct {
	width  int
	height int
	cells  [][]CellState
}

// newBoard allocates an all-Dead board; callers must have validated the dimensions
func newBoard(width, height int) *Board {
	cells := make([][]CellState, height)
	for i := range cells {
		cells[i] = make([]CellState, width)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// FromRows builds a board from explicit rows. The rows are copied.
func FromRows(rows [][]CellState) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, "[FromRows] empty board")
	}

	width := len(rows[0])
	b := newBoard(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrNonRectangular,
				"[FromRows] row %d has %d cells, want %d", y, len(row), width)
		}
		copy(b.cells[y], row)
	}
	return b, nil
}

// MustFromRows is like FromRows but panics on malformed input
func MustFromRows(rows [][]CellState) *Board {
	b, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return b
}

// Width returns the number of cells in each row
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

// Cell returns the state at column x, row y
func (b *Board) Cell(x, y int) (CellState, error) {
	if !b.inBounds(x, y) {
		return Dead, errors.Wrapf(ErrOutOfRange,
			"[Cell] (%d, %d) outside %dx%d board", x, y, b.width, b.height)
	}
	return b.cells[y][x], nil
}

// stateAt resolves any coordinate, treating positions off the board as Dead
func (b *Board) stateAt(x, y int) CellState {
	if !b.inBounds(x, y) {
		return Dead
	}
	return b.cells[y][x]
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Rows returns a deep copy of the cells, row by row
func (b *Board) Rows() [][]CellState {
	rows := make([][]CellState, b.height)
	for y := range b.height {
		rows[y] = make([]CellState, b.width)
		copy(rows[y], b.cells[y])
	}
	return rows
}

// Population returns the total number of living cells
func (b *Board) Population() (count int) {
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x] == Alive {
				count++
			}
		}
	}
	return
}

// Equal reports whether both boards have the same dimensions and cells
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.width != other.width || b.height != other.height {
		return false
	}
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 fingerprint of the dimensions and cells
func (b *Board) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", b.width, b.height)
	for y := range b.height {
		for x := range b.width {
			h.Write([]byte{byte(b.cells[y][x])})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the board with '#' for Alive and '.' for Dead, one row per line
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x] == Alive {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
