// Package hazard implements Hazard Run, a side-scrolling runner where the
// hero dodges enemies, spikes, bullets, lava and quicksand. Collisions are
// resolved through the character package's damage table and the scroll
// speed comes from its speed selector.
package hazard

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/hazard-run/internal/character"
	"github.com/vovakirdan/hazard-run/internal/config"
	"github.com/vovakirdan/hazard-run/internal/core"
	"github.com/vovakirdan/hazard-run/internal/registry"
)

const (
	GroundChar    = '═'
	BodyChar      = '█'
	LegLeft       = '╱'
	LegRight      = '╲'
	EnemyChar     = '☗'
	SpikeChar     = '▲'
	BulletChar    = '◄'
	LavaChar      = '≈'
	QuicksandChar = '░'
	SparkChar     = '*'

	healthBarWidth = 20
	sparksPerHit   = 6
	sparkLife      = 12
	minScreenH     = 8
)

// spark is a cosmetic particle thrown off when the hero is hit.
type spark struct {
	pos  core.Vec3 // Screen cell, rows grow downward
	vel  core.Vec3
	life int
}

// Game implements the Hazard Run game logic.
type Game struct {
	endless bool

	hero      *character.Character
	speeds    character.SpeedRules
	heroY     float64 // Height above ground, up is positive
	heroVel   float64 // Vertical velocity, up is positive
	runSpeed  float64 // Speed applied by the last Move
	scroll    float64 // Columns scrolled in the last tick
	distance  float64
	inSand    bool
	recoverIn int       // Ticks until the hurt flag clears
	hitFrom   core.Rect // Hazard behind the latest hit

	course     *Course
	sparks     []spark
	sparkRNG   *rand.Rand
	hits       []core.HitEvent
	score      int
	gameOver   bool
	paused     bool
	tickCount  int
	groundY    int
	legFrame   int
	runtime    core.RuntimeConfig
	cfg        config.HazardConfig
	difficulty *config.DifficultyManager
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a Hazard Run game. Endless runs keep difficulty at the
// initial level and never spawn lava.
func New(endless bool) *Game {
	return &Game{endless: endless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.endless {
		return "hazard_endless"
	}
	return "hazard"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.endless {
		return "Hazard Run: Endless"
	}
	return "Hazard Run"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadHazard(configPath)
	if err != nil {
		cfg = config.DefaultHazardConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHazardPreset(&cfg, difficultyPreset)
	}
	if g.endless {
		weights := make(map[string]int, len(cfg.Hazards.Weights))
		for tag, w := range cfg.Hazards.Weights {
			weights[tag] = w
		}
		weights[string(character.TagLava)] = 0
		cfg.Hazards.Weights = weights
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	if g.endless {
		g.difficulty.SetEnabled(false)
	}
	g.hero = character.New(cfg.Character.MaxHealth, cfg.DamageTable(), heroEffects{g})
	g.speeds = cfg.SpeedTable()

	g.groundY = core.Max(runtime.ScreenH, minScreenH) - 2
	g.heroY = 0
	g.heroVel = 0
	g.runSpeed = 0
	g.scroll = 0
	g.distance = 0
	g.inSand = false
	g.recoverIn = 0
	g.hitFrom = core.Rect{}
	g.sparks = g.sparks[:0]
	g.sparkRNG = rand.New(rand.NewSource(runtime.Seed + 1))
	g.hits = nil
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.legFrame = 0

	if g.course == nil {
		g.course = NewCourse(runtime.Seed, runtime.ScreenW, &g.cfg, g.difficulty)
	} else {
		g.course.UpdateConfig(&g.cfg, g.difficulty)
		g.course.UpdateScreenSize(runtime.ScreenW)
		g.course.Reset(runtime.Seed)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.legFrame = (g.legFrame + 1) % 10
	g.tickTimers()

	character.Jump(g, character.JumpCheck{
		PositionY:   g.heroY,
		GroundY:     0,
		JumpPressed: in.Has(core.ActionJump),
		StunTimer:   g.hero.StunTimer(),
	}, g.cfg.Physics.JumpImpulse)
	g.applyGravity()

	g.checkCollisions()

	state := g.hero.MovementState(g.inSand, g.grounded())
	base := character.PlayerSpeed(state, g.speeds)
	character.Move(g, base, in.Has(core.ActionBoost), g.cfg.BoostMultiplier())

	g.scroll = g.difficulty.Speed(g.runSpeed, g.score, g.tickCount)
	g.distance += g.scroll
	g.course.Update(g.scroll, g.score, g.tickCount)
	g.updateSparks()

	g.score = int(g.distance)

	if g.hero.Dead() {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// ApplyForce records the run speed chosen for this tick.
func (g *Game) ApplyForce(speed float64) {
	g.runSpeed = speed
}

// AddImpulse adds an instantaneous change to the hero's vertical velocity.
func (g *Game) AddImpulse(impulse core.Vec3) {
	g.heroVel += impulse.Y
}

func (g *Game) grounded() bool {
	return g.heroY <= 0 && g.heroVel <= 0
}

func (g *Game) tickTimers() {
	g.hero.Tick()
	if g.recoverIn > 0 {
		g.recoverIn--
		if g.recoverIn == 0 {
			g.hero.Recover()
		}
	}
}

func (g *Game) applyGravity() {
	if g.grounded() {
		g.heroY = 0
		g.heroVel = 0
		return
	}

	g.heroVel -= g.cfg.Physics.Gravity
	if g.heroVel < -g.cfg.Physics.MaxFallSpeed {
		g.heroVel = -g.cfg.Physics.MaxFallSpeed
	}
	g.heroY += g.heroVel

	if g.heroY <= 0 {
		g.heroY = 0
		g.heroVel = 0
	}
}

// heroRect returns the hero's collision rectangle in screen coordinates.
func (g *Game) heroRect() core.Rect {
	y := g.groundY - g.cfg.Character.Height - int(g.heroY)
	return core.NewRect(g.cfg.Character.X, y, g.cfg.Character.Width, g.cfg.Character.Height)
}

// checkCollisions dispatches each newly touched hazard once and tracks
// whether the hero stands in quicksand.
func (g *Game) checkCollisions() {
	hero := g.heroRect()
	hazards := g.course.Hazards()

	g.inSand = false
	for i := range hazards {
		h := &hazards[i]
		if !hero.Intersects(h.Rect(g.groundY)) {
			continue
		}

		if h.Tag == character.TagQuicksand {
			g.inSand = true
			continue
		}
		if h.Hit {
			continue
		}

		h.Hit = true
		g.trigger(h.Tag, h.Rect(g.groundY))
	}
}

// trigger forwards a collision with the hazard at src to the hero and
// records any damage dealt.
func (g *Game) trigger(tag character.Tag, src core.Rect) {
	amount := g.hero.DamageTable().Amount(tag)
	g.hitFrom = src
	g.hero.OnTrigger(tag)
	if amount <= 0 {
		return
	}
	g.hits = append(g.hits, core.HitEvent{
		Tag:         string(tag),
		Amount:      amount,
		HealthAfter: g.hero.Health(),
		Died:        g.hero.Dead(),
	})
}

// DrainHits returns the hits recorded since the last call.
func (g *Game) DrainHits() []core.HitEvent {
	hits := g.hits
	g.hits = nil
	return hits
}

// heroEffects presents hits on the hero.
type heroEffects struct {
	g *Game
}

func (e heroEffects) Hurt() {
	g := e.g
	g.recoverIn = g.cfg.Character.RecoverTicks
	g.hero.Stun(g.cfg.Character.StunTicks)

	origin := rectCenter(g.heroRect())
	away := character.DirectionTo(rectCenter(g.hitFrom), origin, true)
	for i := 0; i < sparksPerHit; i++ {
		dir := core.RandomVector3(g.sparkRNG)
		g.sparks = append(g.sparks, spark{
			pos:  origin,
			vel:  dir.Add(away).Scale(0.5),
			life: sparkLife,
		})
	}
}

func (e heroEffects) Died() {
	e.g.recoverIn = 0
}

func rectCenter(r core.Rect) core.Vec3 {
	x, y := r.Center()
	return core.Vec3{X: float64(x), Y: float64(y)}
}

func (g *Game) updateSparks() {
	drift := core.Vec3{X: -g.scroll}
	alive := g.sparks[:0]
	for _, s := range g.sparks {
		s.pos = s.pos.Add(s.vel).Add(drift)
		s.life--
		if s.life > 0 {
			alive = append(alive, s)
		}
	}
	g.sparks = alive
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawHLine(0, g.groundY, dst.Width(), GroundChar, core.ColorGround)

	for _, h := range g.course.Hazards() {
		g.drawHazard(dst, h)
	}
	for _, s := range g.sparks {
		dst.SetColored(int(s.pos.X), int(s.pos.Y), SparkChar, core.ColorSpark)
	}
	g.drawHero(dst)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "YOU DIED", fmt.Sprintf("Distance: %d  |  Press R to restart", g.score))
	}
}

func (g *Game) drawHazard(dst *core.Screen, h Hazard) {
	r := h.Rect(g.groundY)

	switch h.Tag {
	case character.TagLava:
		dst.DrawHLine(r.X, g.groundY, r.W, LavaChar, core.ColorLava)
	case character.TagQuicksand:
		dst.DrawHLine(r.X, g.groundY, r.W, QuicksandChar, core.ColorQuicksand)
	case character.TagEnemy:
		dst.DrawRect(r, EnemyChar, core.ColorEnemy)
	case character.TagSpikes:
		dst.DrawRect(r, SpikeChar, core.ColorSpikes)
	case character.TagBullet:
		dst.DrawRect(r, BulletChar, core.ColorBullet)
	default:
		dst.DrawRect(r, '?', core.ColorDefault)
	}
}

func (g *Game) drawHero(dst *core.Screen) {
	r := g.heroRect()

	color := core.ColorHero
	if g.hero.Hurt() && g.tickCount%4 < 2 {
		color = core.ColorHeroHurt
	}

	for dy := 0; dy < r.H-1; dy++ {
		dst.DrawHLine(r.X, r.Y+dy, r.W, BodyChar, color)
	}

	legY := r.Bottom() - 1
	if g.grounded() && g.legFrame >= 5 {
		dst.SetColored(r.X, legY, LegRight, color)
		dst.SetColored(r.Right()-1, legY, LegLeft, color)
	} else {
		dst.SetColored(r.X, legY, LegLeft, color)
		dst.SetColored(r.Right()-1, legY, LegRight, color)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	frac := g.hero.HealthPercent()
	filled := int(frac*healthBarWidth + 0.5)

	dst.DrawTextColored(2, 0, "HP ", core.ColorHUD)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", healthBarWidth-filled)
	dst.DrawTextColored(5, 0, bar, core.HealthColor(frac))
	dst.DrawTextColored(6+healthBarWidth, 0,
		fmt.Sprintf("%d/%d", core.Max(g.hero.Health(), 0), g.hero.MaxHealth()), core.ColorHUD)

	state := character.StateName(g.hero.MovementState(g.inSand, g.grounded()))
	right := fmt.Sprintf(" Dist: %d  Spd: %.2f (%s) ", g.score, g.scroll, state)
	dst.DrawTextColored(dst.Width()-len(right)-2, 0, right, core.ColorHUD)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Hero exposes the character for inspection.
func (g *Game) Hero() *character.Character {
	return g.hero
}

func init() {
	registry.Register("hazard", func() registry.Game {
		return New(false)
	})
	registry.Register("hazard_endless", func() registry.Game {
		return New(true)
	})
}
