package util

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		start, end, amount, want float32
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{5, 5, 0.3, 5},
		{10, 0, 0.25, 7.5},
	}

	for _, tt := range tests {
		if got := Lerp(tt.start, tt.end, tt.amount); got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, esperava %v", tt.start, tt.end, tt.amount, got, tt.want)
		}
	}
}

func TestMax(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{1, 2, 2},
		{2, 1, 2},
		{-3, -5, -3},
		{7, 7, 7},
	}

	for _, tt := range tests {
		if got := Max(tt.a, tt.b); got != tt.want {
			t.Errorf("Max(%d, %d) = %d, esperava %d", tt.a, tt.b, got, tt.want)
		}
	}
}
