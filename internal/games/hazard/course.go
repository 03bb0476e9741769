package hazard

import (
	"math/rand"

	"github.com/vovakirdan/hazard-run/internal/character"
	"github.com/vovakirdan/hazard-run/internal/config"
	"github.com/vovakirdan/hazard-run/internal/core"
)

// spawnOrder fixes the iteration order over weights so a seed always
// produces the same course.
var spawnOrder = []character.Tag{
	character.TagEnemy,
	character.TagSpikes,
	character.TagBullet,
	character.TagLava,
	character.TagQuicksand,
}

// bulletSpeed is how much faster than the course bullets travel.
const bulletSpeed = 0.5

// Hazard is one thing on the course the hero can touch.
type Hazard struct {
	Tag    character.Tag
	X      float64 // Left edge in screen columns
	Width  int
	Height int
	Lift   int  // Rows between the ground and the hazard's bottom edge
	Hit    bool // Damage already dispatched for this hazard
}

// flat reports whether the hazard lies in the ground rather than on it.
func (h Hazard) flat() bool {
	return h.Tag == character.TagLava || h.Tag == character.TagQuicksand
}

// Rect returns the collision rectangle for this hazard.
// Flat hazards occupy the row just above the ground line.
func (h Hazard) Rect(groundY int) core.Rect {
	if h.flat() {
		return core.NewRect(int(h.X), groundY-1, h.Width, 1)
	}
	return core.NewRect(int(h.X), groundY-h.Lift-h.Height, h.Width, h.Height)
}

// Course spawns, scrolls and removes hazards.
type Course struct {
	hazards    []Hazard
	rng        *rand.Rand
	screenW    int
	nextSpawnX float64
	cfg        *config.HazardConfig
	difficulty *config.DifficultyManager
}

// NewCourse creates a course with the given RNG seed.
func NewCourse(seed int64, screenW int, cfg *config.HazardConfig, diff *config.DifficultyManager) *Course {
	c := &Course{
		hazards:    make([]Hazard, 0, 8),
		screenW:    screenW,
		cfg:        cfg,
		difficulty: diff,
	}
	c.Reset(seed)
	return c
}

// Reset clears all hazards and reseeds the RNG.
func (c *Course) Reset(seed int64) {
	c.hazards = c.hazards[:0]
	c.rng = rand.New(rand.NewSource(seed))
	c.nextSpawnX = float64(c.screenW + c.cfg.Hazards.MinSpacing) // First hazard spawns off-screen
}

// Update scrolls hazards left by distance and spawns new ones as needed.
func (c *Course) Update(distance float64, score int, ticks int) {
	for i := range c.hazards {
		c.hazards[i].X -= distance
		if c.hazards[i].Tag == character.TagBullet {
			c.hazards[i].X -= bulletSpeed
		}
	}

	kept := c.hazards[:0]
	for _, h := range c.hazards {
		if h.X+float64(h.Width) > 0 {
			kept = append(kept, h)
		}
	}
	c.hazards = kept

	c.nextSpawnX -= distance
	for c.nextSpawnX <= float64(c.screenW) {
		c.spawn(score, ticks)
	}
}

// spawn places a new hazard at the spawn position.
func (c *Course) spawn(score int, ticks int) {
	h := Hazard{
		Tag: c.pickTag(),
		X:   c.nextSpawnX,
	}

	switch h.Tag {
	case character.TagEnemy:
		h.Width, h.Height = 2, 2
	case character.TagSpikes:
		h.Width, h.Height = 1+c.rng.Intn(3), 1
	case character.TagBullet:
		h.Width, h.Height = 2, 1
		h.Lift = c.cfg.Hazards.BulletHeight
	case character.TagLava:
		h.Width, h.Height = 3+c.rng.Intn(3), 1
	case character.TagQuicksand:
		h.Width, h.Height = 6+c.rng.Intn(5), 1
	default:
		h.Width, h.Height = 1, 1
	}

	c.hazards = append(c.hazards, h)

	minSpacing := c.cfg.Hazards.MinSpacing
	current := c.difficulty.Spacing(c.cfg.Hazards.MaxSpacing, score, ticks)
	if current < minSpacing {
		current = minSpacing
	}

	spacing := minSpacing
	if current > minSpacing {
		spacing = minSpacing + c.rng.Intn(current-minSpacing+1)
	}
	if spacing < 1 {
		spacing = 1
	}

	c.nextSpawnX += float64(h.Width + spacing)
}

// pickTag draws a tag using the configured weights.
func (c *Course) pickTag() character.Tag {
	total := 0
	for _, tag := range spawnOrder {
		total += c.weight(tag)
	}
	if total <= 0 {
		return character.TagEnemy
	}

	roll := c.rng.Intn(total)
	for _, tag := range spawnOrder {
		w := c.weight(tag)
		if roll < w {
			return tag
		}
		roll -= w
	}
	return character.TagEnemy
}

func (c *Course) weight(tag character.Tag) int {
	w := c.cfg.Hazards.Weights[string(tag)]
	if w < 0 {
		return 0
	}
	return w
}

// Hazards returns the hazards currently on the course.
func (c *Course) Hazards() []Hazard {
	return c.hazards
}

// UpdateConfig swaps the configuration after a reset.
func (c *Course) UpdateConfig(cfg *config.HazardConfig, diff *config.DifficultyManager) {
	c.cfg = cfg
	c.difficulty = diff
}

// UpdateScreenSize updates the screen width.
func (c *Course) UpdateScreenSize(screenW int) {
	c.screenW = screenW
}
