package entity

import (
	"github.com/samdwyer/cavebattle/internal/gamedata"
)

// Member represents an individual party member.
type Member struct {
	Name      string             // Character name
	Class     *gamedata.ClassDef // Character class
	Level     int
	Exp       int
	Stats     Stats
	Inventory Inventory
	Equipment Equipment
}

// NewMember creates a party member of the given class and level with full HP
// and MP derived from the class definition.
func NewMember(name string, class *gamedata.ClassDef, level int) *Member {
	m := &Member{
		Name:      name,
		Class:     class,
		Level:     max(level, 1),
		Inventory: Inventory{},
	}
	m.applyClassStats()
	m.Stats.HP = m.Stats.MaxHP
	m.Stats.MP = m.Stats.MaxMP
	return m
}

// applyClassStats sets max HP/MP and base attributes for the current level,
// keeping current HP and MP.
func (m *Member) applyClassStats() {
	if m.Class == nil {
		return
	}
	block := m.Class.StatsAt(m.Level)
	m.Stats.MaxHP = block.HP
	m.Stats.MaxMP = block.MP
	m.Stats.Attack = block.Attack
	m.Stats.Defense = block.Defense
	m.Stats.Speed = block.Speed
}

// IsAlive returns true if the member has HP remaining.
func (m *Member) IsAlive() bool { return m.Stats.IsAlive() }

// Symbol returns the class symbol used for rendering.
func (m *Member) Symbol() rune {
	if m.Class == nil {
		return '?'
	}
	return m.Class.SymbolRune()
}

// KnownSpells returns the spell IDs available at the member's level.
func (m *Member) KnownSpells() []string {
	if m.Class == nil {
		return nil
	}
	return m.Class.SpellsAt(m.Level)
}

// ExpToNext returns the total experience required to reach the next level.
func (m *Member) ExpToNext() int {
	return 10 * m.Level * m.Level
}

// GainExp adds experience and applies any level-ups. Each level-up raises
// the stat ceilings by the class growth and grants the added HP and MP.
// Returns the number of levels gained.
func (m *Member) GainExp(amount int) int {
	if amount <= 0 {
		return 0
	}
	m.Exp += amount
	gained := 0
	for m.Exp >= m.ExpToNext() {
		oldMaxHP, oldMaxMP := m.Stats.MaxHP, m.Stats.MaxMP
		m.Level++
		gained++
		m.applyClassStats()
		m.Stats.Heal(m.Stats.MaxHP - oldMaxHP)
		m.Stats.MP = min(m.Stats.MP+m.Stats.MaxMP-oldMaxMP, m.Stats.MaxMP)
	}
	return gained
}

// Clone returns a copy whose stats and inventory can be mutated without
// affecting m. Class and equipment definitions are shared.
func (m *Member) Clone() *Member {
	c := *m
	c.Inventory = m.Inventory.Clone()
	return &c
}
