package core

// Color identifies the palette entry used to draw a screen cell.
type Color uint8

// Palette entries for game elements.
const (
	ColorDefault Color = iota
	ColorHero
	ColorHeroHurt
	ColorEnemy
	ColorSpikes
	ColorBullet
	ColorLava
	ColorQuicksand
	ColorGround
	ColorSpark
	ColorHUD
	ColorHealthHigh
	ColorHealthMid
	ColorHealthLow
)

// palette holds the RGB value for every non-default color.
var palette = map[Color]RGB{
	ColorHero:       RGB255(120, 200, 255),
	ColorHeroHurt:   RGB255(255, 90, 90),
	ColorEnemy:      RGB255(200, 60, 220),
	ColorSpikes:     RGB255(190, 190, 200),
	ColorBullet:     RGB255(255, 220, 80),
	ColorLava:       RGB255(255, 110, 20),
	ColorQuicksand:  RGB255(200, 170, 90),
	ColorGround:     RGB255(110, 90, 70),
	ColorSpark:      RGB255(255, 240, 160),
	ColorHUD:        RGB255(230, 230, 230),
	ColorHealthHigh: RGB255(60, 220, 60),
	ColorHealthMid:  RGB255(220, 220, 60),
	ColorHealthLow:  RGB255(220, 60, 60),
}

// RGB returns the palette value for c. ColorDefault reports ok=false,
// meaning the terminal's own foreground should be used.
func (c Color) RGB() (RGB, bool) {
	rgb, ok := palette[c]
	return rgb, ok
}

// HealthColor picks a health bar color from a fraction in [0, 1].
func HealthColor(frac float64) Color {
	if frac > 0.6 {
		return ColorHealthHigh
	}
	if frac > 0.3 {
		return ColorHealthMid
	}
	return ColorHealthLow
}
