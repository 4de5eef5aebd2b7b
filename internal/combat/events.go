package combat

import "github.com/samdwyer/cavebattle/internal/gamedata"

// BuffStat identifies which buff slot an event refers to.
type BuffStat int

const (
	StatAttack BuffStat = iota
	StatDefense
)

// String returns the stat name.
func (s BuffStat) String() string {
	switch s {
	case StatAttack:
		return "attack"
	case StatDefense:
		return "defense"
	default:
		return "unknown"
	}
}

// MarshalText lets loggers print the stat by name.
func (s BuffStat) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// TurnResult is one discrete outcome of a turn. Events are emitted in the
// order they happened and presentation layers must replay them in that order.
// The set of implementations is closed.
type TurnResult interface {
	// Kind returns a stable snake_case name for the event type.
	Kind() string
	isTurnResult()
}

// AttackResult is a physical hit.
type AttackResult struct {
	Actor, Target ActorID
	Damage        int
}

// SpellDamage is a damaging spell hitting one target.
type SpellDamage struct {
	Actor, Target ActorID
	Spell         string
	Damage        int
}

// Healed is a heal spell restoring HP on one target.
type Healed struct {
	Actor, Target ActorID
	Spell         string
	Amount        int
}

// Buffed is an attack-up or defense-up applied to one target.
type Buffed struct {
	Actor, Target ActorID
	Stat          BuffStat
	Amount        int
}

// BuffExpired is a buff running out at turn end.
type BuffExpired struct {
	Target ActorID
	Stat   BuffStat
}

// ItemUsed is a heal item restoring HP on one target.
type ItemUsed struct {
	Actor, Target ActorID
	Item          string
	Amount        int
}

// MPDrained is MP removed from a target.
type MPDrained struct {
	Actor, Target ActorID
	Amount        int
}

// Defeated is an actor's HP reaching zero.
type Defeated struct {
	Target ActorID
}

// AilmentInflicted is an ailment spell landing.
type AilmentInflicted struct {
	Actor, Target ActorID
	Ailment       gamedata.Ailment
}

// AilmentResisted is an ailment spell failing its success roll.
type AilmentResisted struct {
	Actor, Target ActorID
	Ailment       gamedata.Ailment
}

// Sleeping is an actor losing its action to sleep.
type Sleeping struct {
	Actor ActorID
}

// PoisonDamage is the turn-end poison tick on one actor.
type PoisonDamage struct {
	Target ActorID
	Amount int
}

// AilmentCured is an ailment being removed from an actor.
type AilmentCured struct {
	Target  ActorID
	Ailment gamedata.Ailment
}

// Fled is the party escaping; it ends the battle.
type Fled struct {
	Actor ActorID
}

// FleeFailed is an escape attempt that did not succeed.
type FleeFailed struct {
	Actor ActorID
}

func (AttackResult) Kind() string     { return "attack" }
func (SpellDamage) Kind() string      { return "spell_damage" }
func (Healed) Kind() string           { return "healed" }
func (Buffed) Kind() string           { return "buffed" }
func (BuffExpired) Kind() string      { return "buff_expired" }
func (ItemUsed) Kind() string         { return "item_used" }
func (MPDrained) Kind() string        { return "mp_drained" }
func (Defeated) Kind() string         { return "defeated" }
func (AilmentInflicted) Kind() string { return "ailment_inflicted" }
func (AilmentResisted) Kind() string  { return "ailment_resisted" }
func (Sleeping) Kind() string         { return "sleeping" }
func (PoisonDamage) Kind() string     { return "poison_damage" }
func (AilmentCured) Kind() string     { return "ailment_cured" }
func (Fled) Kind() string             { return "fled" }
func (FleeFailed) Kind() string       { return "flee_failed" }

func (AttackResult) isTurnResult()     {}
func (SpellDamage) isTurnResult()      {}
func (Healed) isTurnResult()           {}
func (Buffed) isTurnResult()           {}
func (BuffExpired) isTurnResult()      {}
func (ItemUsed) isTurnResult()         {}
func (MPDrained) isTurnResult()        {}
func (Defeated) isTurnResult()         {}
func (AilmentInflicted) isTurnResult() {}
func (AilmentResisted) isTurnResult()  {}
func (Sleeping) isTurnResult()         {}
func (PoisonDamage) isTurnResult()     {}
func (AilmentCured) isTurnResult()     {}
func (Fled) isTurnResult()             {}
func (FleeFailed) isTurnResult()       {}
