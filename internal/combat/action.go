package combat

// Action is a command supplied for one party member for one turn.
// The set of implementations is closed: Attack, CastSpell, UseItem, Flee.
type Action interface {
	isAction()
}

// Attack performs a physical attack on the enemy at Target.
type Attack struct {
	Target int
}

// CastSpell casts Spell. Target is an index on the side the spell's target
// shape points at and is ignored for area spells.
type CastSpell struct {
	Spell  string
	Target int
}

// UseItem uses one Item from the member's inventory on the ally at Target.
type UseItem struct {
	Item   string
	Target int
}

// Flee attempts to end the battle by running away.
type Flee struct{}

func (Attack) isAction()    {}
func (CastSpell) isAction() {}
func (UseItem) isAction()   {}
func (Flee) isAction()      {}
