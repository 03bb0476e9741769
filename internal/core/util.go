package core

import (
	"fmt"
	"math/rand"
)

// RangeToPercentClamp01 maps number from [min, max] onto [0, 1].
// Inputs outside the range clamp to the nearest end. Callers must not
// pass min == max.
func RangeToPercentClamp01(number, min, max float64) float64 {
	return ClampF((number-min)/(max-min), 0, 1)
}

// PercentToRange maps percent from [0, 1] back onto [min, max].
// The result is not clamped, so percents outside [0, 1] extrapolate.
func PercentToRange(percent, min, max float64) float64 {
	return (max-min)*percent + min
}

// RandomVector3 returns a unit vector built by sampling each axis in
// [-1, 1) and normalizing. Directions bias toward the cube corners; it is
// not uniform on the sphere and is only used for cosmetic scatter.
func RandomVector3(rng *rand.Rand) Vec3 {
	v := Vec3{
		X: rng.Float64()*2 - 1,
		Y: rng.Float64()*2 - 1,
		Z: rng.Float64()*2 - 1,
	}
	return v.Normalized()
}

// RGB is a color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// RGB255 builds a color from byte channels. Values outside [0, 255] clamp.
func RGB255(r, g, b int) RGB {
	return RGB{
		R: RangeToPercentClamp01(float64(r), 0, 255),
		G: RangeToPercentClamp01(float64(g), 0, 255),
		B: RangeToPercentClamp01(float64(b), 0, 255),
	}
}

// Hex returns the color as a "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", toByte(c.R), toByte(c.G), toByte(c.B))
}

func toByte(channel float64) int {
	return int(PercentToRange(ClampF(channel, 0, 1), 0, 255) + 0.5)
}
