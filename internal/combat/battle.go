package combat

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/samdwyer/cavebattle/internal/entity"
	"github.com/samdwyer/cavebattle/internal/gamedata"
)

// Battle is the complete state of one encounter. It holds its own copies of
// both rosters, indexed by ActorID, and is mutated only by ExecuteTurn.
type Battle struct {
	ID uuid.UUID

	catalog     *gamedata.Catalog
	party       []*entity.Member
	enemies     []*entity.Enemy
	partyStatus *Tracker
	enemyStatus *Tracker
	turn        int
	log         []TurnResult
}

// NewBattle starts an encounter. The members and enemies are copied; use
// CommitTo to write the outcome back to the persistent party.
func NewBattle(party []*entity.Member, enemies []*entity.Enemy, catalog *gamedata.Catalog) *Battle {
	b := &Battle{
		ID:          uuid.New(),
		catalog:     catalog,
		party:       make([]*entity.Member, len(party)),
		enemies:     make([]*entity.Enemy, len(enemies)),
		partyStatus: NewTracker(SideParty, len(party)),
		enemyStatus: NewTracker(SideEnemy, len(enemies)),
	}
	for i, m := range party {
		b.party[i] = m.Clone()
	}
	for i, e := range enemies {
		b.enemies[i] = e.Clone()
	}
	return b
}

// Catalog returns the ability catalog the battle resolves against.
func (b *Battle) Catalog() *gamedata.Catalog { return b.catalog }

// Party returns the battle's party roster.
func (b *Battle) Party() []*entity.Member { return b.party }

// Enemies returns the battle's enemy roster.
func (b *Battle) Enemies() []*entity.Enemy { return b.enemies }

// Turn returns the number of turns executed so far.
func (b *Battle) Turn() int { return b.turn }

// TurnLog returns every event of the battle so far, oldest first.
func (b *Battle) TurnLog() []TurnResult {
	out := make([]TurnResult, len(b.log))
	copy(out, b.log)
	return out
}

// Stats returns the live stats of an actor.
func (b *Battle) Stats(id ActorID) *entity.Stats {
	if id.IsParty() {
		return &b.party[id.Index].Stats
	}
	return &b.enemies[id.Index].Stats
}

// Status returns a copy of an actor's buffs and ailments.
func (b *Battle) Status(id ActorID) Status {
	return b.tracker(id.Side).Status(id.Index)
}

// Name returns the display name of an actor.
func (b *Battle) Name(id ActorID) string {
	if id.IsParty() {
		return b.party[id.Index].Name
	}
	return b.enemies[id.Index].Name
}

func (b *Battle) tracker(side Side) *Tracker {
	if side == SideParty {
		return b.partyStatus
	}
	return b.enemyStatus
}

func (b *Battle) rosterLen(side Side) int {
	if side == SideParty {
		return len(b.party)
	}
	return len(b.enemies)
}

// EffectiveAttack is base attack plus equipment (party only) plus buff.
func (b *Battle) EffectiveAttack(id ActorID) int {
	atk := b.Stats(id).Attack + b.tracker(id.Side).BuffAmount(id.Index, StatAttack)
	if id.IsParty() {
		atk += b.party[id.Index].Equipment.AttackBonus()
	}
	return atk
}

// EffectiveDefense is base defense plus equipment (party only) plus buff.
func (b *Battle) EffectiveDefense(id ActorID) int {
	def := b.Stats(id).Defense + b.tracker(id.Side).BuffAmount(id.Index, StatDefense)
	if id.IsParty() {
		def += b.party[id.Index].Equipment.DefenseBonus()
	}
	return def
}

// living returns the IDs of every living actor on side in roster order.
func (b *Battle) living(side Side) []ActorID {
	var ids []ActorID
	for i := range b.rosterLen(side) {
		id := ActorID{Side: side, Index: i}
		if b.Stats(id).IsAlive() {
			ids = append(ids, id)
		}
	}
	return ids
}

// IsVictory returns true if every enemy is dead.
func (b *Battle) IsVictory() bool {
	return len(b.living(SideEnemy)) == 0
}

// IsPartyWiped returns true if every party member is dead.
func (b *Battle) IsPartyWiped() bool {
	return len(b.living(SideParty)) == 0
}

// HasFled returns true if the battle log contains a successful escape.
func (b *Battle) HasFled() bool {
	for _, ev := range b.log {
		if _, ok := ev.(Fled); ok {
			return true
		}
	}
	return false
}

// IsOver returns true once the battle has been won, lost or fled.
func (b *Battle) IsOver() bool {
	return b.IsVictory() || b.IsPartyWiped() || b.HasFled()
}

// Rewards is the experience and gold an encounter pays out.
type Rewards struct {
	Exp  int
	Gold int
}

// Rewards returns the tier-scaled rewards of the defeated group, or zero
// unless the battle ended in victory.
func (b *Battle) Rewards() Rewards {
	var r Rewards
	if !b.IsVictory() {
		return r
	}
	for _, e := range b.enemies {
		r.Exp += e.Exp
		r.Gold += e.Gold
	}
	return r
}

// CommitTo copies the battle's final member stats and inventories back to
// the persistent party. Equipment is never touched and buffs and ailments
// end with the battle.
func (b *Battle) CommitTo(p *entity.Party) error {
	if len(p.Members) != len(b.party) {
		return fmt.Errorf("party has %d members, battle has %d: %w", len(p.Members), len(b.party), ErrRosterMismatch)
	}
	for i, m := range b.party {
		p.Members[i].Stats = m.Stats
		p.Members[i].Inventory = m.Inventory.Clone()
	}
	return nil
}
