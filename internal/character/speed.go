package character

// MovementState is the set of flags that decide the character's speed.
type MovementState struct {
	Dead        bool
	Hurt        bool
	InQuickSand bool
	OnLand      bool
}

// SpeedRules produces the speed for each movement state.
type SpeedRules interface {
	DeadSpeed() float64
	HurtSpeed() float64
	QuickSandSpeed() float64
	LandSpeed() float64
	DefaultSpeed() float64
}

// PlayerSpeed returns the speed of the first matching state, checked in
// the order dead, hurt, quicksand, land. Rules for later states are not called.
func PlayerSpeed(state MovementState, rules SpeedRules) float64 {
	if state.Dead {
		return rules.DeadSpeed()
	}

	if state.Hurt {
		return rules.HurtSpeed()
	}

	if state.InQuickSand {
		return rules.QuickSandSpeed()
	}

	if state.OnLand {
		return rules.LandSpeed()
	}

	return rules.DefaultSpeed()
}

// StateName returns the label of the rule PlayerSpeed would pick.
func StateName(state MovementState) string {
	switch {
	case state.Dead:
		return "dead"
	case state.Hurt:
		return "hurt"
	case state.InQuickSand:
		return "quicksand"
	case state.OnLand:
		return "land"
	default:
		return "default"
	}
}

// SpeedTable is a SpeedRules with a fixed value per state.
type SpeedTable struct {
	Dead      float64
	Hurt      float64
	QuickSand float64
	Land      float64
	Default   float64
}

// DefaultSpeedTable returns the stock speeds in cells per tick.
func DefaultSpeedTable() SpeedTable {
	return SpeedTable{
		Dead:      0,
		Hurt:      0.4,
		QuickSand: 0.25,
		Land:      1.0,
		Default:   0.8,
	}
}

func (s SpeedTable) DeadSpeed() float64      { return s.Dead }
func (s SpeedTable) HurtSpeed() float64      { return s.Hurt }
func (s SpeedTable) QuickSandSpeed() float64 { return s.QuickSand }
func (s SpeedTable) LandSpeed() float64      { return s.Land }
func (s SpeedTable) DefaultSpeed() float64   { return s.Default }
