package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavebattle/internal/gamedata"
)

// Enemy represents a hostile creature in an encounter.
type Enemy struct {
	Def   *gamedata.EnemyDef // Kind definition
	Name  string             // Display name, suffixed when a group has duplicates
	Tier  int                // Encounter tier the stats were scaled for
	Stats Stats
	Exp   int // Tier-scaled experience reward
	Gold  int // Tier-scaled gold reward
}

// scale applies the tier multiplier (3+tier)/4 so tier 1 uses base stats.
func scale(base, tier int) int {
	return base * (3 + tier) / 4
}

// NewEnemy creates an enemy of the given kind with stats derived for tier.
// Tiers below 1 are treated as tier 1.
func NewEnemy(def *gamedata.EnemyDef, tier int) *Enemy {
	tier = max(tier, 1)
	hp := scale(def.HP, tier)
	mp := scale(def.MP, tier)
	return &Enemy{
		Def:  def,
		Name: def.Name,
		Tier: tier,
		Stats: Stats{
			HP:      hp,
			MaxHP:   hp,
			MP:      mp,
			MaxMP:   mp,
			Attack:  scale(def.Attack, tier),
			Defense: scale(def.Defense, tier),
			Speed:   def.Speed,
		},
		Exp:  def.Exp * tier,
		Gold: def.Gold * tier,
	}
}

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool { return e.Stats.IsAlive() }

// SpellIDs returns the kind's spell table in priority order.
func (e *Enemy) SpellIDs() []string {
	return e.Def.Spells
}

// Symbol returns the display glyph.
func (e *Enemy) Symbol() rune {
	return e.Def.GlyphRune()
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	return e.Def.TCellColor()
}

// Clone returns an independent copy of the enemy.
func (e *Enemy) Clone() *Enemy {
	c := *e
	return &c
}
