package core

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

func TestRangeToPercentClamp01(t *testing.T) {
	tests := []struct {
		name             string
		number, min, max float64
		expected         float64
	}{
		{"at min", 10, 10, 20, 0},
		{"at max", 20, 10, 20, 1},
		{"midpoint", 15, 10, 20, 0.5},
		{"below min clamps", 0, 10, 20, 0},
		{"above max clamps", 35, 10, 20, 1},
		{"inverted range", 15, 20, 10, 0.5},
		{"negative range", -5, -10, 0, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := RangeToPercentClamp01(tc.number, tc.min, tc.max)
			if math.Abs(result-tc.expected) > epsilon {
				t.Errorf("RangeToPercentClamp01(%v, %v, %v) = %v, expected %v",
					tc.number, tc.min, tc.max, result, tc.expected)
			}
		})
	}
}

func TestPercentToRange(t *testing.T) {
	tests := []struct {
		name              string
		percent, min, max float64
		expected          float64
	}{
		{"zero", 0, 10, 20, 10},
		{"one", 1, 10, 20, 20},
		{"half", 0.5, 10, 20, 15},
		{"extrapolates above", 1.5, 10, 20, 25},
		{"extrapolates below", -1, 10, 20, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := PercentToRange(tc.percent, tc.min, tc.max)
			if math.Abs(result-tc.expected) > epsilon {
				t.Errorf("PercentToRange(%v, %v, %v) = %v, expected %v",
					tc.percent, tc.min, tc.max, result, tc.expected)
			}
		})
	}
}

func TestRangeRoundTrip(t *testing.T) {
	min, max := -3.0, 7.0
	for x := min; x <= max; x += 0.25 {
		back := PercentToRange(RangeToPercentClamp01(x, min, max), min, max)
		if math.Abs(back-x) > 1e-9 {
			t.Errorf("round trip of %v gave %v", x, back)
		}
	}
}

func TestRandomVector3IsUnitLength(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		v := RandomVector3(rng)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("RandomVector3() length = %v, expected 1 (v=%+v)", v.Length(), v)
		}
		if math.Abs(v.X) > 1 || math.Abs(v.Y) > 1 || math.Abs(v.Z) > 1 {
			t.Fatalf("RandomVector3() component out of range: %+v", v)
		}
	}
}

func TestRandomVector3Deterministic(t *testing.T) {
	a := RandomVector3(rand.New(rand.NewSource(99)))
	b := RandomVector3(rand.New(rand.NewSource(99)))
	if a != b {
		t.Errorf("same seed produced different vectors: %+v vs %+v", a, b)
	}
}

func TestRGB255(t *testing.T) {
	c := RGB255(255, 0, 51)
	if c.R != 1 || c.G != 0 || math.Abs(c.B-0.2) > epsilon {
		t.Errorf("RGB255(255, 0, 51) = %+v", c)
	}

	clamped := RGB255(300, -20, 128)
	if clamped.R != 1 || clamped.G != 0 {
		t.Errorf("RGB255 should clamp out of range channels, got %+v", clamped)
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		c        RGB
		expected string
	}{
		{RGB255(0, 0, 0), "#000000"},
		{RGB255(255, 255, 255), "#ffffff"},
		{RGB255(255, 110, 20), "#ff6e14"},
	}

	for _, tc := range tests {
		if got := tc.c.Hex(); got != tc.expected {
			t.Errorf("Hex() = %s, expected %s", got, tc.expected)
		}
	}
}

func TestVec3Normalized(t *testing.T) {
	v := Vec3{X: 3, Y: 4}
	n := v.Normalized()
	if math.Abs(n.X-0.6) > epsilon || math.Abs(n.Y-0.8) > epsilon {
		t.Errorf("Normalized() = %+v, expected (0.6, 0.8, 0)", n)
	}

	if (Vec3{}).Normalized() != (Vec3{}) {
		t.Error("zero vector should normalize to itself")
	}
}

func TestHealthColor(t *testing.T) {
	if HealthColor(1) != ColorHealthHigh {
		t.Error("full health should be high color")
	}
	if HealthColor(0.5) != ColorHealthMid {
		t.Error("half health should be mid color")
	}
	if HealthColor(0.1) != ColorHealthLow {
		t.Error("low health should be low color")
	}
	if _, ok := ColorDefault.RGB(); ok {
		t.Error("default color should have no palette entry")
	}
}
