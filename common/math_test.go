package common

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{a: 1, b: 0, t: 0, want: 1},
		{a: 1, b: 0, t: 0.5, want: 0.5},
		{a: 0.8, b: 0, t: 1, want: 0},
		{a: -1, b: 1, t: 0.25, want: -0.5},
	}
	for _, tc := range tests {
		if got := Lerp(tc.a, tc.b, tc.t); got != tc.want {
			t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", tc.a, tc.b, tc.t, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-0.5, 0, 1); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
	if got := Clamp(0.3, 0, 1); got != 0.3 {
		t.Fatalf("expected 0.3, got %v", got)
	}
}
