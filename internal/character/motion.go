package character

import "github.com/vovakirdan/hazard-run/internal/core"

// DefaultBoostMultiplier scales base speed while boosting.
const DefaultBoostMultiplier = 1.5

// ForceApplier receives the horizontal drive for a tick.
type ForceApplier interface {
	ApplyForce(speed float64)
}

// ImpulseApplier receives an instantaneous push.
type ImpulseApplier interface {
	AddImpulse(impulse core.Vec3)
}

// BoostedSpeed returns base, scaled by multiplier while boosting.
func BoostedSpeed(base float64, boosting bool, multiplier float64) float64 {
	if boosting {
		return base * multiplier
	}
	return base
}

// Move drives body at base speed, boosted when requested, and returns the
// speed that was applied.
func Move(body ForceApplier, base float64, boosting bool, multiplier float64) float64 {
	speed := BoostedSpeed(base, boosting, multiplier)
	body.ApplyForce(speed)
	return speed
}

// JumpCheck gathers the inputs that decide whether a jump may start.
// Y grows upward, so the character is grounded at or below GroundY.
type JumpCheck struct {
	PositionY   float64
	GroundY     float64
	JumpPressed bool
	StunTimer   int
}

// CanJump reports whether the character is grounded, pressing jump and not stunned.
func (j JumpCheck) CanJump() bool {
	onGround := j.PositionY <= j.GroundY
	jumpPressed := j.JumpPressed
	notStunned := j.StunTimer <= 0

	return onGround && jumpPressed && notStunned
}

// Jump pushes body up by force when the check allows it.
func Jump(body ImpulseApplier, check JumpCheck, force float64) bool {
	if !check.CanJump() {
		return false
	}
	body.AddImpulse(core.Up.Scale(force))
	return true
}

// DirectionTo returns the vector from from to to, optionally normalized.
func DirectionTo(from, to core.Vec3, normalize bool) core.Vec3 {
	result := to.Sub(from)

	if normalize {
		result = result.Normalized()
	}

	return result
}
