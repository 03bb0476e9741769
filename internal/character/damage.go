// Package character holds the rules for the runner's hero: how damage
// sources resolve to amounts, how damage changes health and state, and
// how the current state selects a movement speed.
package character

// Tag names the source of a collision.
type Tag string

// Known collision tags.
const (
	TagEnemy     Tag = "Enemy"
	TagSpikes    Tag = "Spikes"
	TagBullet    Tag = "Bullet"
	TagLava      Tag = "Lava"
	TagQuicksand Tag = "Quicksand" // terrain, deals no damage
)

// DamageTags lists the tags that deal damage in the default table, in display order.
var DamageTags = []Tag{TagEnemy, TagSpikes, TagBullet, TagLava}

// DamageTable maps a tag to the damage it deals.
type DamageTable map[Tag]int

// DefaultDamageTable returns the stock damage amounts.
func DefaultDamageTable() DamageTable {
	return DamageTable{
		TagEnemy:  10,
		TagSpikes: 100,
		TagBullet: 5,
		TagLava:   50,
	}
}

// Amount returns the damage for tag. Unknown tags deal no damage and
// negative entries read as zero.
func (t DamageTable) Amount(tag Tag) int {
	amount := t[tag]
	if amount < 0 {
		return 0
	}
	return amount
}

var defaultDamage = DefaultDamageTable()

// DamageAmount looks tag up in the default table.
func DamageAmount(tag Tag) int {
	return defaultDamage.Amount(tag)
}
