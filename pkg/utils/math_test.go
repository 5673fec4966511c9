package utils

import "testing"

func TestAbs(t *testing.T) {
	for in, want := range map[int]int{-3: 3, 0: 0, 5: 5} {
		if got := Abs(in); got != want {
			t.Errorf("Abs(%d): expected %d, got %d", in, want, got)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, lo, hi, want int }{
		{0, 1, 3, 1},
		{2, 1, 3, 2},
		{9, 1, 3, 3},
		{5, 1, 0, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d): expected %d, got %d", tt.v, tt.lo, tt.hi, tt.want, got)
		}
	}
}
