package showcase

import (
	"math"
	"testing"
)

func TestInterpolateFixedPoint(t *testing.T) {
	for _, v := range []float64{-300, 0, 12.5} {
		if got := Interpolate(v, v, 0.1); got != v {
			t.Errorf("Interpolate(%v, %v) = %v, want fixed point", v, v, got)
		}
	}
}

func TestInterpolateConvergesWithoutOvershoot(t *testing.T) {
	current, target := 0.0, 100.0
	prev := math.Abs(target - current)
	for i := 0; i < 200; i++ {
		current = Interpolate(current, target, 0.1)
		if current > target {
			t.Fatalf("step %d overshot: %v", i, current)
		}
		d := math.Abs(target - current)
		if d > prev {
			t.Fatalf("step %d distance grew: %v > %v", i, d, prev)
		}
		prev = d
	}
	if !approxEqual(current, target, 1e-6) {
		t.Errorf("current = %v after 200 steps, want ~%v", current, target)
	}

	// Factor 1 lands exactly.
	if got := Interpolate(3, 7, 1); got != 7 {
		t.Errorf("Interpolate(3, 7, 1) = %v, want 7", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		lo, hi, v float64
		want      float64
	}{
		{"inside", 0, 10, 5, 5},
		{"below", 0, 10, -1, 0},
		{"above", 0, 10, 11, 10},
		{"swapped bounds", 10, 0, 11, 10},
		{"swapped below", 0, -1200, 50, 0},
		{"degenerate", 0, 0, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.lo, tt.hi, tt.v); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.lo, tt.hi, tt.v, got, tt.want)
			}
		})
	}
}

func TestMapRange(t *testing.T) {
	assertNear(t, "midpoint", MapRange(0, 10, 100, 200, 5), 150)
	assertNear(t, "inverted output", MapRange(-5, 5, maxTilt, -maxTilt, 5), -maxTilt)
	assertNear(t, "extrapolates", MapRange(0, 10, 0, 1, 20), 2)
	assertNear(t, "degenerate input", MapRange(3, 3, 7, 9, 100), 7)
}

func TestSnapZero(t *testing.T) {
	if got := SnapZero(0.005, pageScrollSnap); got != 0 {
		t.Errorf("SnapZero(0.005) = %v, want 0", got)
	}
	if got := SnapZero(0.02, pageScrollSnap); got != 0.02 {
		t.Errorf("SnapZero(0.02) = %v, want 0.02", got)
	}
}

func TestScrollStateDamp(t *testing.T) {
	s := NewScrollState(defaultScrollLerp)
	s.Target = 100
	s.Damp()
	assertNear(t, "current", s.Current, 10)
	s.Damp()
	assertNear(t, "current", s.Current, 19)

	s.Reset(-40)
	if s.Current != -40 || s.Target != -40 || s.Last != -40 || s.Start != -40 {
		t.Errorf("Reset(-40) = %+v", s)
	}
}

func TestScrollStateClampTarget(t *testing.T) {
	s := NewScrollState(defaultScrollLerp)
	s.Target = -2000
	s.ClampTarget(-1200, 0)
	if s.Target != -1200 {
		t.Errorf("Target = %v, want -1200", s.Target)
	}
}

func TestScrollDirections(t *testing.T) {
	if got := horizontalDirection(10, 5, DirectionNone); got != DirectionLeft {
		t.Errorf("decreasing x = %v, want left", got)
	}
	if got := horizontalDirection(5, 10, DirectionNone); got != DirectionRight {
		t.Errorf("increasing x = %v, want right", got)
	}
	if got := horizontalDirection(5, 5, DirectionLeft); got != DirectionLeft {
		t.Errorf("unchanged x = %v, want previous", got)
	}
	if got := verticalDirection(5, 10, DirectionNone); got != DirectionDown {
		t.Errorf("increasing y = %v, want down", got)
	}
	if got := verticalDirection(10, 5, DirectionNone); got != DirectionUp {
		t.Errorf("decreasing y = %v, want up", got)
	}
	if got := verticalDirection(5, 5, DirectionUp); got != DirectionUp {
		t.Errorf("unchanged y = %v, want previous", got)
	}
}
