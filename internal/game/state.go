// Package game drives battles: it builds encounters from config, picks party
// commands, rolls the turn randomness and records the outcome.
package game

import "github.com/samdwyer/cavebattle/internal/combat"

// Outcome is how an encounter ended.
type Outcome int

const (
	// OutcomeUnresolved means the turn limit was reached first.
	OutcomeUnresolved Outcome = iota
	// OutcomeVictory means every enemy was defeated.
	OutcomeVictory
	// OutcomeDefeat means every party member was defeated.
	OutcomeDefeat
	// OutcomeFled means the party escaped.
	OutcomeFled
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeUnresolved:
		return "unresolved"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeFled:
		return "fled"
	default:
		return "unknown"
	}
}

// outcomeOf classifies the current state of b.
func outcomeOf(b *combat.Battle) Outcome {
	switch {
	case b.HasFled():
		return OutcomeFled
	case b.IsVictory():
		return OutcomeVictory
	case b.IsPartyWiped():
		return OutcomeDefeat
	default:
		return OutcomeUnresolved
	}
}
