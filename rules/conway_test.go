package rules

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      Transition
	}{
		{"lonely live cell", 0, true, Underpopulation},
		{"one neighbor", 1, true, Underpopulation},
		{"two neighbors keep alive", 2, true, Survival},
		{"three neighbors keep alive", 3, true, Survival},
		{"crowded live cell", 4, true, Overpopulation},
		{"fully surrounded", 8, true, Overpopulation},
		{"dead with two", 2, false, StaysDead},
		{"dead with three", 3, false, Reproduction},
		{"dead with four", 4, false, StaysDead},
		{"dead alone", 0, false, StaysDead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.neighbors, tt.alive); got != tt.want {
				t.Errorf("Classify(%d, %v) = %v, want %v", tt.neighbors, tt.alive, got, tt.want)
			}
		})
	}
}

func TestTransitionAlive(t *testing.T) {
	// (alive && neighbors == 2) || neighbors == 3
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{true, false} {
			want := (alive && n == 2) || n == 3
			if Classify(n, alive).Alive() != want {
				t.Errorf("mismatch for neighbors=%d alive=%v", n, alive)
			}
		}
	}
}

func TestTransitionString(t *testing.T) {
	if got := Reproduction.String(); got != "reproduction" {
		t.Errorf("Reproduction.String() = %q", got)
	}
	if got := Transition(42).String(); got != "unknown" {
		t.Errorf("Transition(42).String() = %q", got)
	}
}
