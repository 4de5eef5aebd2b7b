package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyDef defines an enemy kind loaded from JSON.
type EnemyDef struct {
	ID          string   `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string   `json:"name"`        // Display name (e.g., "Goblin")
	Glyph       string   `json:"glyph"`       // Single character for rendering (e.g., "g")
	Color       string   `json:"color"`       // Hex color code (e.g., "#00FF00")
	HP          int      `json:"hp"`          // Tier 1 hit points
	MP          int      `json:"mp"`          // Tier 1 mana points
	Attack      int      `json:"attack"`      // Tier 1 attack power
	Defense     int      `json:"defense"`     // Tier 1 defense value
	Speed       int      `json:"speed"`       // Tier 1 speed
	Spells      []string `json:"spells"`      // Spell IDs in priority order
	Exp         int      `json:"exp"`         // Tier 1 experience reward
	Gold        int      `json:"gold"`        // Tier 1 gold reward
	SpawnWeight int      `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
	MinTier     int      `json:"minTier"`     // Lowest encounter tier this kind appears in
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	return ColorOr(e.Color, tcell.ColorWhite)
}

// HasSpells returns true if the kind can cast anything.
func (e *EnemyDef) HasSpells() bool {
	return len(e.Spells) > 0
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}
