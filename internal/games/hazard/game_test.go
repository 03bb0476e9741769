package hazard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/hazard-run/internal/character"
	"github.com/vovakirdan/hazard-run/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(false)
	g.Reset(testRuntime(1))
	return g
}

// place puts a single hazard at the hero's column.
func place(g *Game, tag character.Tag, width int) {
	g.course.hazards = append(g.course.hazards[:0], Hazard{
		Tag:    tag,
		X:      float64(g.cfg.Character.X),
		Width:  width,
		Height: 1,
	})
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%12 == 0 {
			inputs[i].Set(core.ActionJump)
		}
		if i%5 == 0 {
			inputs[i].Set(core.ActionBoost)
		}
	}

	run := func() (core.GameState, int, int) {
		g := New(false)
		g.Reset(testRuntime(12345))
		var state core.GameState
		for _, in := range inputs {
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		return state, g.tickCount, g.hero.Health()
	}

	s1, ticks1, hp1 := run()
	s2, ticks2, hp2 := run()

	if s1 != s2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", s1, s2)
	}
	if ticks1 != ticks2 || hp1 != hp2 {
		t.Errorf("Determinism failed: ticks %d/%d health %d/%d", ticks1, ticks2, hp1, hp2)
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)
	place(g, character.TagBullet, 2)
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	g.Reset(testRuntime(1))

	if g.score != 0 || g.tickCount != 0 {
		t.Errorf("Reset should clear score and ticks, got %d/%d", g.score, g.tickCount)
	}
	if g.gameOver || g.paused {
		t.Error("Reset should clear gameOver and paused")
	}
	if g.hero.Health() != g.hero.MaxHealth() || g.hero.Hurt() {
		t.Error("Reset should restore a fresh hero")
	}
	if len(g.DrainHits()) != 0 {
		t.Error("Reset should drop recorded hits")
	}
}

func TestSpikesKill(t *testing.T) {
	g := newTestGame(t)
	place(g, character.TagSpikes, 1)

	result := g.Step(core.NewInputFrame())

	if !g.hero.Dead() {
		t.Fatal("spikes should kill a full-health hero")
	}
	if !result.State.GameOver {
		t.Error("death should end the game")
	}
	if g.runSpeed != g.cfg.Speed.Dead {
		t.Errorf("dead hero should use dead speed, got %v", g.runSpeed)
	}

	hits := g.DrainHits()
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Tag != "Spikes" || hits[0].Amount != 100 || !hits[0].Died {
		t.Errorf("unexpected hit %+v", hits[0])
	}
	if len(g.DrainHits()) != 0 {
		t.Error("DrainHits should forget returned hits")
	}
}

func TestHazardHitsOnce(t *testing.T) {
	g := newTestGame(t)
	place(g, character.TagEnemy, 2)

	for i := 0; i < 3; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.hero.Health() != g.hero.MaxHealth()-10 {
		t.Errorf("enemy should hit exactly once, health = %d", g.hero.Health())
	}
	if !g.hero.Hurt() {
		t.Error("hero should be hurt")
	}
	if g.runSpeed != g.cfg.Speed.Hurt {
		t.Errorf("hurt hero should use hurt speed %v, got %v", g.cfg.Speed.Hurt, g.runSpeed)
	}
	if g.hero.StunTimer() == 0 {
		t.Error("a hit should stun the hero")
	}
	if len(g.sparks) == 0 {
		t.Error("a hit should throw sparks")
	}
}

func TestSparksFlyAwayFromHazard(t *testing.T) {
	tests := []struct {
		name string
		dx   int // Hazard offset from the hero in columns
	}{
		{"hit from the right", 12},
		{"hit from the left", -12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			hero := g.heroRect()
			g.trigger(character.TagEnemy, core.NewRect(hero.X+tc.dx, hero.Y, hero.W, hero.H))

			if len(g.sparks) != sparksPerHit {
				t.Fatalf("expected %d sparks, got %d", sparksPerHit, len(g.sparks))
			}
			for _, s := range g.sparks {
				if tc.dx > 0 && s.vel.X > 0 || tc.dx < 0 && s.vel.X < 0 {
					t.Errorf("spark velocity %+v points toward the hazard", s.vel)
				}
			}
		})
	}
}

func TestSparksDriftWithScroll(t *testing.T) {
	g := newTestGame(t)
	g.scroll = 1
	g.sparks = append(g.sparks[:0], spark{
		pos:  core.Vec3{X: 5, Y: 5},
		vel:  core.Vec3{X: 1, Y: -1},
		life: 2,
	})

	g.updateSparks()
	if len(g.sparks) != 1 {
		t.Fatalf("spark should live one more tick, got %d sparks", len(g.sparks))
	}
	if got := g.sparks[0].pos; got != (core.Vec3{X: 5, Y: 4}) {
		t.Errorf("spark position = %+v, expected {X:5 Y:4}", got)
	}

	g.updateSparks()
	if len(g.sparks) != 0 {
		t.Error("spark should expire when its life runs out")
	}
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hazard.yaml")
	if err := os.WriteFile(path, []byte("damage:\n  Enemy: 15\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := newTestGame(t)
	if g.hero.MaxHealth() != 100 {
		t.Errorf("MaxHealth() = %d, expected the default 100", g.hero.MaxHealth())
	}
	if hero := g.heroRect(); hero.W != 2 || hero.H != 2 {
		t.Errorf("hero rect = %+v, expected the default 2x2 size", hero)
	}

	place(g, character.TagEnemy, 2)
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.hero.Health() != 85 {
		t.Errorf("Health() = %d, expected 85 after one configured enemy hit", g.hero.Health())
	}
	if !g.hero.Hurt() || g.hero.Dead() {
		t.Errorf("hero should be hurt but alive: hurt=%v dead=%v", g.hero.Hurt(), g.hero.Dead())
	}
	if g.runSpeed != g.cfg.Speed.Hurt || g.runSpeed <= 0 {
		t.Errorf("runSpeed = %v, expected the default hurt speed", g.runSpeed)
	}
	if g.distance <= 0 {
		t.Error("hero should keep running")
	}
}

func TestHurtWearsOff(t *testing.T) {
	g := newTestGame(t)
	place(g, character.TagBullet, 2)

	g.Step(core.NewInputFrame())
	if !g.hero.Hurt() {
		t.Fatal("bullet should hurt")
	}

	for i := 0; i < g.cfg.Character.RecoverTicks; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.hero.Hurt() {
		t.Error("hurt flag should clear after recover_ticks")
	}
	if g.hero.Health() != g.hero.MaxHealth()-5 {
		t.Errorf("recovering must not heal, health = %d", g.hero.Health())
	}
}

func TestQuicksandSlowsWithoutDamage(t *testing.T) {
	g := newTestGame(t)
	place(g, character.TagQuicksand, 8)

	g.Step(core.NewInputFrame())

	if g.hero.Health() != g.hero.MaxHealth() {
		t.Error("quicksand should not deal damage")
	}
	if !g.inSand {
		t.Error("hero should be in quicksand")
	}
	if g.runSpeed != g.cfg.Speed.QuickSand {
		t.Errorf("quicksand speed = %v, got %v", g.cfg.Speed.QuickSand, g.runSpeed)
	}
	if len(g.DrainHits()) != 0 {
		t.Error("quicksand should not be logged as a hit")
	}
}

func TestLandAndBoostSpeed(t *testing.T) {
	g := newTestGame(t)

	g.Step(core.NewInputFrame())
	if g.runSpeed != g.cfg.Speed.Land {
		t.Errorf("grounded speed = %v, expected land %v", g.runSpeed, g.cfg.Speed.Land)
	}

	boost := core.NewInputFrame()
	boost.Set(core.ActionBoost)
	g.Step(boost)
	expected := g.cfg.Speed.Land * g.cfg.BoostMultiplier()
	if g.runSpeed != expected {
		t.Errorf("boosted speed = %v, expected %v", g.runSpeed, expected)
	}
}

func TestJumpAndAirSpeed(t *testing.T) {
	g := newTestGame(t)

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	g.Step(jump)

	if g.heroY <= 0 {
		t.Fatalf("jump should lift the hero, heroY = %v", g.heroY)
	}
	if g.runSpeed != g.cfg.Speed.Default {
		t.Errorf("airborne speed = %v, expected default %v", g.runSpeed, g.cfg.Speed.Default)
	}

	// Jumping again mid-air does nothing.
	vel := g.heroVel
	g.Step(jump)
	if g.heroVel > vel {
		t.Error("hero should not jump while airborne")
	}
}

func TestStunnedHeroCannotJump(t *testing.T) {
	g := newTestGame(t)
	g.hero.Stun(10)

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	g.Step(jump)

	if g.heroY != 0 {
		t.Errorf("stunned hero should stay grounded, heroY = %v", g.heroY)
	}
}

func TestJumpClearsSpikes(t *testing.T) {
	g := newTestGame(t)

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	g.Step(jump)

	place(g, character.TagSpikes, 1)
	g.Step(core.NewInputFrame())

	if g.hero.Dead() {
		t.Error("airborne hero should pass over spikes")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	state := g.Step(pause).State
	if !state.Paused {
		t.Fatal("pause should toggle on")
	}

	ticks := g.tickCount
	g.Step(core.NewInputFrame())
	if g.tickCount != ticks {
		t.Error("paused game should not advance")
	}

	if g.Step(pause).State.Paused {
		t.Error("pause should toggle off")
	}
}

func TestScoreTracksDistance(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.score != int(g.distance) || g.score <= 0 {
		t.Errorf("score %d should equal travelled distance %v", g.score, g.distance)
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t)
	place(g, character.TagEnemy, 2)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	top := screen.Row(0)
	if !strings.Contains(top, "HP") || !strings.Contains(top, "90/100") {
		t.Errorf("HUD missing health: %q", top)
	}
	if !strings.Contains(top, "(hurt)") {
		t.Errorf("HUD should show the selected speed rule: %q", top)
	}
	if screen.Get(0, g.groundY) != GroundChar {
		t.Error("ground line should be drawn")
	}
}

func TestEndlessVariant(t *testing.T) {
	g := New(true)
	g.Reset(testRuntime(3))

	if g.ID() != "hazard_endless" {
		t.Errorf("ID() = %q", g.ID())
	}
	if g.cfg.Hazards.Weights["Lava"] != 0 {
		t.Error("endless runs should not spawn lava")
	}
	if g.difficulty.IsEnabled() {
		t.Error("endless runs should not ramp difficulty")
	}

	for i := 0; i < 2000 && !g.State().GameOver; i++ {
		for _, h := range g.course.Hazards() {
			if h.Tag == character.TagLava {
				t.Fatal("lava spawned in endless run")
			}
		}
		g.Step(core.NewInputFrame())
	}
}
