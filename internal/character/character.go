package character

import "github.com/vovakirdan/hazard-run/internal/core"

// Effects presents damage to the player. The game uses it for hurt
// flashes, sparks and the game over banner.
type Effects interface {
	Hurt()
	Died()
}

// NopEffects ignores every effect.
type NopEffects struct{}

func (NopEffects) Hurt() {}
func (NopEffects) Died() {}

// Character is the hero's mutable state. Health only ever drops by a
// positive damage amount and dead never reverts.
type Character struct {
	health    int
	maxHealth int
	hurt      bool
	dead      bool
	stunTimer int
	damage    DamageTable
	effects   Effects
}

// New creates a character at full health. A nil table uses the default
// damage amounts and nil effects are ignored. With maxHealth <= 0 the
// character starts dead.
func New(maxHealth int, damage DamageTable, effects Effects) *Character {
	if damage == nil {
		damage = DefaultDamageTable()
	}
	if effects == nil {
		effects = NopEffects{}
	}
	return &Character{
		health:    maxHealth,
		maxHealth: maxHealth,
		dead:      maxHealth <= 0,
		damage:    damage,
		effects:   effects,
	}
}

// OnTrigger handles contact with something tagged tag.
func (c *Character) OnTrigger(tag Tag) {
	c.ApplyDamage(c.damage.Amount(tag))
}

// ApplyDamage subtracts amount from health and marks the character hurt.
// Zero or negative amounts are ignored.
func (c *Character) ApplyDamage(amount int) {
	if amount <= 0 {
		return
	}

	c.health -= amount
	c.hurt = true

	c.hurtEffects()
	c.checkForDeath()
}

func (c *Character) hurtEffects() {
	c.effects.Hurt()
}

func (c *Character) checkForDeath() {
	if c.health > 0 || c.dead {
		return
	}
	c.dead = true
	c.effects.Died()
}

// Recover clears the hurt flag once the hit has worn off.
func (c *Character) Recover() {
	c.hurt = false
}

// Stun blocks jumping for the given number of ticks.
func (c *Character) Stun(ticks int) {
	if ticks > c.stunTimer {
		c.stunTimer = ticks
	}
}

// Tick advances per-tick timers.
func (c *Character) Tick() {
	if c.stunTimer > 0 {
		c.stunTimer--
	}
}

// Health returns current health. It may be negative after a fatal hit.
func (c *Character) Health() int { return c.health }

// MaxHealth returns the starting health.
func (c *Character) MaxHealth() int { return c.maxHealth }

// Hurt reports whether the character has taken damage that has not worn off.
func (c *Character) Hurt() bool { return c.hurt }

// Dead reports whether health has reached zero.
func (c *Character) Dead() bool { return c.dead }

// StunTimer returns the remaining stun ticks.
func (c *Character) StunTimer() int { return c.stunTimer }

// DamageTable returns the table used by OnTrigger.
func (c *Character) DamageTable() DamageTable { return c.damage }

// HealthPercent returns health as a fraction of max health in [0, 1].
func (c *Character) HealthPercent() float64 {
	if c.maxHealth <= 0 {
		return 0
	}
	return core.RangeToPercentClamp01(float64(c.health), 0, float64(c.maxHealth))
}

// MovementState snapshots the flags the speed selector needs.
func (c *Character) MovementState(inQuickSand, onLand bool) MovementState {
	return MovementState{
		Dead:        c.dead,
		Hurt:        c.hurt,
		InQuickSand: inQuickSand,
		OnLand:      onLand,
	}
}
