package vmath

import (
	"math"
	"testing"
)

func TestFastRandFloat64Bounds(t *testing.T) {
	r := NewFastRand(12345)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Expected value in [0,1), got %f", v)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("Expected zero seed to be replaced with a non-zero state")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(99)
	b := NewFastRand(99)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}

func TestRange(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Range(-320, 320)
		if v < -320 || v >= 320 {
			t.Fatalf("Expected value in [-320,320), got %f", v)
		}
	}
}

func TestClampMagnitude(t *testing.T) {
	x, y := ClampMagnitude(30, 40, 10)
	if math.Abs(Magnitude(x, y)-10) > 1e-9 {
		t.Errorf("Expected magnitude 10, got %f", Magnitude(x, y))
	}

	x, y = ClampMagnitude(3, 4, 10)
	if x != 3 || y != 4 {
		t.Errorf("Expected unchanged (3,4), got (%f,%f)", x, y)
	}
}

func TestFacingAngle(t *testing.T) {
	if FacingAngle(0, 1) != 0 {
		t.Errorf("Expected 0 for up vector, got %f", FacingAngle(0, 1))
	}
	if math.Abs(FacingAngle(-1, 0)-math.Pi/2) > 1e-9 {
		t.Errorf("Expected pi/2 for left vector, got %f", FacingAngle(-1, 0))
	}
	if FacingAngle(0, 0) != 0 {
		t.Error("Expected zero vector to face up")
	}
}
