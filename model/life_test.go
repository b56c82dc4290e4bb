package model

import (
	"fmt"
	"math/rand"
	"testing"
)

func fixture() *Board {
	return MustFromRows([][]CellState{
		{A, D, A},
		{A, D, D},
		{D, A, D},
	})
}

func TestCountAliveNeighbors(t *testing.T) {
	board := fixture()

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"center", 1, 1, 4},
		{"left side", 0, 1, 2},
		{"corner", 0, 0, 1},
		{"right side", 2, 1, 2},
		{"bottom", 1, 2, 1},
		{"top", 1, 0, 3},
		{"far corner", 2, 2, 1},
		{"outside left of corner", -1, 0, 2},
		{"far outside", 10, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountAliveNeighbors(tt.x, tt.y, board); got != tt.want {
				t.Errorf("CountAliveNeighbors(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCountAliveNeighborsDoesNotWrap(t *testing.T) {
	b, _ := Generate(3, 3, Constant(Alive))

	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 3}, {2, 0, 3}, {0, 2, 3}, {2, 2, 3},
		{1, 0, 5}, {0, 1, 5}, {2, 1, 5}, {1, 2, 5},
		{1, 1, 8},
	}
	for _, tt := range tests {
		if got := CountAliveNeighbors(tt.x, tt.y, b); got != tt.want {
			t.Errorf("CountAliveNeighbors(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCountAliveNeighborsNilBoard(t *testing.T) {
	if got := CountAliveNeighbors(0, 0, nil); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestAdvance(t *testing.T) {
	board := fixture()
	want := MustFromRows([][]CellState{
		{D, A, D},
		{A, D, D},
		{D, D, D},
	})

	got := Advance(board)
	if !got.Equal(want) {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if !board.Equal(fixture()) {
		t.Error("Advance modified its input")
	}
}

func TestAdvanceNilBoard(t *testing.T) {
	if got := Advance(nil); got != nil {
		t.Errorf("Advance(nil) = %v, want nil", got)
	}
	if next, tally := AdvanceTally(nil); next != nil || tally != (Tally{}) {
		t.Errorf("AdvanceTally(nil) = %v, %+v", next, tally)
	}
}

func TestAdvanceTally(t *testing.T) {
	_, tally := AdvanceTally(fixture())
	want := Tally{Underpopulation: 3, Survival: 1, Reproduction: 1}
	if tally != want {
		t.Errorf("tally = %+v, want %+v", tally, want)
	}
	if tally.Births() != 1 || tally.Deaths() != 3 {
		t.Errorf("births=%d deaths=%d", tally.Births(), tally.Deaths())
	}
}

func TestAdvancePatterns(t *testing.T) {
	tests := []struct {
		name string
		in   [][]CellState
		want [][]CellState
	}{
		{
			name: "all dead is a fixed point",
			in:   [][]CellState{{D, D, D}, {D, D, D}},
			want: [][]CellState{{D, D, D}, {D, D, D}},
		},
		{
			name: "block is still",
			in:   [][]CellState{{D, D, D, D}, {D, A, A, D}, {D, A, A, D}, {D, D, D, D}},
			want: [][]CellState{{D, D, D, D}, {D, A, A, D}, {D, A, A, D}, {D, D, D, D}},
		},
		{
			name: "blinker rotates",
			in:   [][]CellState{{D, D, D}, {A, A, A}, {D, D, D}},
			want: [][]CellState{{D, A, D}, {D, A, D}, {D, A, D}},
		},
		{
			name: "overpopulated plus collapses to a ring",
			in:   [][]CellState{{D, A, D}, {A, A, A}, {D, A, D}},
			want: [][]CellState{{A, A, A}, {A, D, A}, {A, A, A}},
		},
		{
			name: "lone cell dies",
			in:   [][]CellState{{A}},
			want: [][]CellState{{D}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(MustFromRows(tt.in))
			want := MustFromRows(tt.want)
			if !got.Equal(want) {
				t.Errorf("got\n%s\nwant\n%s", got, want)
			}
		})
	}
}

func TestAdvancePreservesDimensionsAndIsDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, dims := range [][2]int{{1, 1}, {5, 2}, {3, 8}, {20, 20}} {
		b, err := Generate(dims[0], dims[1], RandomGenerator(r))
		if err != nil {
			t.Fatal(err)
		}
		copyOf := MustFromRows(b.Rows())

		first := Advance(b)
		second := Advance(copyOf)
		if first.Width() != b.Width() || first.Height() != b.Height() {
			t.Errorf("%dx%d advanced to %dx%d", b.Width(), b.Height(), first.Width(), first.Height())
		}
		if !first.Equal(second) {
			t.Errorf("%dx%d: equal inputs advanced differently", dims[0], dims[1])
		}
	}
}

func BenchmarkAdvance(b *testing.B) {
	for _, size := range []int{16, 64, 256} {
		board, _ := Generate(size, size, RandomGenerator(rand.New(rand.NewSource(1))))
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				board = Advance(board)
			}
		})
	}
}
