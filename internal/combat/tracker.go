package combat

import "github.com/samdwyer/cavebattle/internal/gamedata"

const (
	// BuffDuration is the remaining-turn count a buff is (re)set to.
	BuffDuration = 5
	// PoisonTick is the fixed HP loss of a poison tick.
	PoisonTick = 3
)

// Buff is a timed stat bonus.
type Buff struct {
	Amount         int
	RemainingTurns int
}

// Status is the transient combat state of one actor.
type Status struct {
	AttackUp  *Buff
	DefenseUp *Buff
	Sleep     bool
	Poison    bool
}

// Tracker holds the buffs and ailments of one roster, parallel-indexed to it.
type Tracker struct {
	side     Side
	statuses []Status
}

// NewTracker creates a tracker for a roster of n actors on side.
func NewTracker(side Side, n int) *Tracker {
	return &Tracker{side: side, statuses: make([]Status, n)}
}

// Len returns the roster size.
func (t *Tracker) Len() int {
	return len(t.statuses)
}

// Status returns a copy of actor i's state.
func (t *Tracker) Status(i int) Status {
	s := t.statuses[i]
	if s.AttackUp != nil {
		b := *s.AttackUp
		s.AttackUp = &b
	}
	if s.DefenseUp != nil {
		b := *s.DefenseUp
		s.DefenseUp = &b
	}
	return s
}

func (t *Tracker) slot(i int, stat BuffStat) **Buff {
	if stat == StatAttack {
		return &t.statuses[i].AttackUp
	}
	return &t.statuses[i].DefenseUp
}

// ApplyBuff sets actor i's buff for stat to amount with a fresh duration.
// An existing buff of the same stat is replaced, never stacked.
func (t *Tracker) ApplyBuff(i int, stat BuffStat, amount int) {
	*t.slot(i, stat) = &Buff{Amount: amount, RemainingTurns: BuffDuration}
}

// BuffAmount returns the active bonus for stat, or 0 without a buff.
func (t *Tracker) BuffAmount(i int, stat BuffStat) int {
	if b := *t.slot(i, stat); b != nil {
		return b.Amount
	}
	return 0
}

// Inflict sets ailment a on actor i.
func (t *Tracker) Inflict(i int, a gamedata.Ailment) {
	switch a {
	case gamedata.AilmentSleep:
		t.statuses[i].Sleep = true
	case gamedata.AilmentPoison:
		t.statuses[i].Poison = true
	}
}

// Cure clears ailment a on actor i and reports whether it was set.
func (t *Tracker) Cure(i int, a gamedata.Ailment) bool {
	s := &t.statuses[i]
	switch a {
	case gamedata.AilmentSleep:
		was := s.Sleep
		s.Sleep = false
		return was
	case gamedata.AilmentPoison:
		was := s.Poison
		s.Poison = false
		return was
	}
	return false
}

// IsAsleep reports whether actor i is asleep.
func (t *Tracker) IsAsleep(i int) bool {
	return t.statuses[i].Sleep
}

// IsPoisoned reports whether actor i is poisoned.
func (t *Tracker) IsPoisoned(i int) bool {
	return t.statuses[i].Poison
}

// Decay ages every buff by one turn. A buff already at zero remaining turns
// is removed and reported instead, so a buff applied during turn N is last
// in effect for turn N+5 and expires at the end of it.
func (t *Tracker) Decay() []TurnResult {
	var events []TurnResult
	for i := range t.statuses {
		for _, stat := range []BuffStat{StatAttack, StatDefense} {
			slot := t.slot(i, stat)
			b := *slot
			if b == nil {
				continue
			}
			if b.RemainingTurns == 0 {
				*slot = nil
				events = append(events, BuffExpired{Target: ActorID{Side: t.side, Index: i}, Stat: stat})
				continue
			}
			b.RemainingTurns--
		}
	}
	return events
}
