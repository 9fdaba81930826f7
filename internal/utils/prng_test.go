package utils

import "testing"

func TestPRNGSeededIsDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestPRNGRangeBounds(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := s.Range(-7, 7)
		if v < -7 || v >= 7 {
			t.Fatalf("Range(-7, 7) returned %f", v)
		}
	}
}

func TestPRNGChanceExtremes(t *testing.T) {
	s := NewPRNGService(1)
	for i := 0; i < 100; i++ {
		if s.Chance(0) {
			t.Fatal("Chance(0) must never succeed")
		}
		if !s.Chance(1) {
			t.Fatal("Chance(1) must always succeed")
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-5, 0},
		{0, 0},
		{42, 42},
		{100, 100},
		{180, 100},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 100); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v, want 5", got)
	}
}
