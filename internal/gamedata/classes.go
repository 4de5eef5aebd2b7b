package gamedata

// StatBlock is a set of per-level stat increases.
type StatBlock struct {
	HP      int `json:"hp"`
	MP      int `json:"mp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
}

// LearnEntry unlocks a spell once a member reaches Level.
type LearnEntry struct {
	Level int    `json:"level"`
	Spell string `json:"spell"`
}

// ClassDef defines a playable class loaded from JSON.
type ClassDef struct {
	ID       string       `json:"id"`       // Unique identifier (e.g., "warrior")
	Name     string       `json:"name"`     // Display name (e.g., "Warrior")
	Symbol   string       `json:"symbol"`   // Single character for rendering (e.g., "W")
	HP       int          `json:"hp"`       // Level 1 hit points
	MP       int          `json:"mp"`       // Level 1 mana points
	Attack   int          `json:"attack"`   // Level 1 attack power
	Defense  int          `json:"defense"`  // Level 1 defense value
	Speed    int          `json:"speed"`    // Level 1 speed
	Growth   StatBlock    `json:"growth"`   // Added once per level above 1
	Learnset []LearnEntry `json:"learnset"` // Spells unlocked by level
}

// SymbolRune returns the symbol as a rune for rendering.
func (c *ClassDef) SymbolRune() rune {
	if len(c.Symbol) == 0 {
		return '?'
	}
	return rune(c.Symbol[0])
}

// StatsAt returns the class's stat block at the given level.
// Levels below 1 are treated as level 1.
func (c *ClassDef) StatsAt(level int) StatBlock {
	n := max(level, 1) - 1
	return StatBlock{
		HP:      c.HP + c.Growth.HP*n,
		MP:      c.MP + c.Growth.MP*n,
		Attack:  c.Attack + c.Growth.Attack*n,
		Defense: c.Defense + c.Growth.Defense*n,
		Speed:   c.Speed + c.Growth.Speed*n,
	}
}

// SpellsAt returns the IDs of every spell known at the given level, in
// learnset order. A spell once learned is never dropped at a higher level.
func (c *ClassDef) SpellsAt(level int) []string {
	var spells []string
	for _, entry := range c.Learnset {
		if entry.Level <= level {
			spells = append(spells, entry.Spell)
		}
	}
	return spells
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}
