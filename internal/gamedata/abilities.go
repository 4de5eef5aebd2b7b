package gamedata

// =============================================================================
// ABILITY CATALOG
// =============================================================================
//
// Spells and items are static, data-driven records loaded from the embedded
// JSON tables at startup. The combat resolver only ever reads them.
//
// 1. TargetShape - Who an ability affects, relative to the caster:
//    - single_enemy / all_enemies: the opposing side
//    - single_ally / all_allies: the caster's own side
//
// 2. Effect - What a spell does:
//    - damage:       power - defense/4, scaled by the turn's random factor
//    - heal:         power, scaled by the random factor
//    - attack_buff:  sets the attack-up slot to power for BuffDuration turns
//    - defense_buff: sets the defense-up slot to power for BuffDuration turns
//    - mp_drain:     removes power (scaled) MP from the target
//    - ailment:      inflicts Ailment when randomFactor*100 < power
//
// 3. Ailment - Which status an ailment spell inflicts (sleep, poison).
//
// JSON Schema:
// ------------
// {
//   "id": "sleep",
//   "name": "Sleep",
//   "mpCost": 4,
//   "power": 60,
//   "target": "single_enemy",
//   "effect": "ailment",
//   "ailment": "sleep"
// }

// TargetShape represents who an ability can target.
type TargetShape string

const (
	TargetSingleEnemy TargetShape = "single_enemy"
	TargetAllEnemies  TargetShape = "all_enemies"
	TargetSingleAlly  TargetShape = "single_ally"
	TargetAllAllies   TargetShape = "all_allies"
)

// IsOffensive returns true if the shape aims at the opposing side.
func (t TargetShape) IsOffensive() bool {
	return t == TargetSingleEnemy || t == TargetAllEnemies
}

// IsArea returns true if the shape hits every living member of a side.
func (t TargetShape) IsArea() bool {
	return t == TargetAllEnemies || t == TargetAllAllies
}

// Valid reports whether t is one of the known shapes.
func (t TargetShape) Valid() bool {
	switch t {
	case TargetSingleEnemy, TargetAllEnemies, TargetSingleAlly, TargetAllAllies:
		return true
	}
	return false
}

// Effect represents what a spell does.
type Effect string

const (
	EffectDamage      Effect = "damage"
	EffectHeal        Effect = "heal"
	EffectAttackBuff  Effect = "attack_buff"
	EffectDefenseBuff Effect = "defense_buff"
	EffectMPDrain     Effect = "mp_drain"
	EffectAilment     Effect = "ailment"
)

// Ailment represents a persistent negative status.
type Ailment string

const (
	AilmentNone   Ailment = ""
	AilmentSleep  Ailment = "sleep"
	AilmentPoison Ailment = "poison"
)

// SpellDef defines a spell loaded from JSON.
type SpellDef struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	MPCost  int         `json:"mpCost"`
	Power   int         `json:"power"` // Damage/heal base, buff amount, or ailment success rate (0-100)
	Target  TargetShape `json:"target"`
	Effect  Effect      `json:"effect"`
	Ailment Ailment     `json:"ailment,omitempty"`
}

// NeedsTarget returns true if the spell requires target selection.
func (s *SpellDef) NeedsTarget() bool {
	return !s.Target.IsArea()
}

// IsOffensive returns true if the spell targets the caster's opponents.
func (s *SpellDef) IsOffensive() bool {
	return s.Target.IsOffensive()
}

// SpellsFile represents the structure of spells.json.
type SpellsFile struct {
	Spells []SpellDef `json:"spells"`
}
