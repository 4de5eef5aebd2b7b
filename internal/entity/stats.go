// Package entity provides the combatants that feed a battle: party members
// with their inventory and equipment, and tier-scaled enemies.
package entity

// Stats holds the numeric combat attributes of any actor.
// HP stays within [0, MaxHP] and MP within [0, MaxMP].
type Stats struct {
	HP, MaxHP int
	MP, MaxMP int
	Attack    int
	Defense   int
	Speed     int
}

// IsAlive returns true if the actor has HP remaining.
func (s *Stats) IsAlive() bool {
	return s.HP > 0
}

// TakeDamage reduces HP by amount, never below zero.
func (s *Stats) TakeDamage(amount int) {
	s.HP = max(s.HP-amount, 0)
}

// Heal restores HP by amount, never above MaxHP.
func (s *Stats) Heal(amount int) {
	s.HP = min(s.HP+amount, s.MaxHP)
}

// UseMP deducts cost and returns true only if enough MP is available.
// On failure MP is left untouched.
func (s *Stats) UseMP(cost int) bool {
	if s.MP < cost {
		return false
	}
	s.MP -= cost
	return true
}

// DrainMP removes amount MP unconditionally, never below zero.
func (s *Stats) DrainMP(amount int) {
	s.MP = max(s.MP-amount, 0)
}
