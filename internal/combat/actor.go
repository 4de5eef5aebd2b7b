// Package combat provides the deterministic turn resolver for party-vs-enemy
// battles. A Battle owns both rosters for the duration of an encounter and
// ExecuteTurn resolves one complete round into an ordered event log. All
// randomness is supplied by the caller, so a round is a pure function of the
// battle state, the commands and the random factors.
package combat

import "fmt"

// Side identifies which roster an actor belongs to.
type Side int

const (
	SideParty Side = iota
	SideEnemy
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideParty:
		return "party"
	case SideEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideParty {
		return SideEnemy
	}
	return SideParty
}

// ActorID addresses a combatant by its position in the party or enemy roster.
type ActorID struct {
	Side  Side
	Index int
}

// Party returns the ID of the party member at index i.
func Party(i int) ActorID { return ActorID{Side: SideParty, Index: i} }

// Enemy returns the ID of the enemy at index i.
func Enemy(i int) ActorID { return ActorID{Side: SideEnemy, Index: i} }

// IsParty returns true for party members.
func (a ActorID) IsParty() bool { return a.Side == SideParty }

// String returns a compact form such as "party[0]" or "enemy[2]".
func (a ActorID) String() string {
	return fmt.Sprintf("%s[%d]", a.Side, a.Index)
}

// MarshalText lets loggers and encoders print IDs in their String form.
func (a ActorID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
