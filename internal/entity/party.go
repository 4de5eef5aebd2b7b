package entity

// Party represents the player's persistent roster of adventurers.
type Party struct {
	Members []*Member
	Gold    int
}

// NewParty creates a party from the given members.
func NewParty(members ...*Member) *Party {
	return &Party{Members: members}
}

// AliveMemberCount returns how many members have HP remaining.
func (p *Party) AliveMemberCount() int {
	count := 0
	for _, m := range p.Members {
		if m.IsAlive() {
			count++
		}
	}
	return count
}

// IsDefeated returns true if every member is down.
func (p *Party) IsDefeated() bool {
	return p.AliveMemberCount() == 0
}

// TotalHP returns the sum of all members' current HP.
func (p *Party) TotalHP() int {
	total := 0
	for _, m := range p.Members {
		total += m.Stats.HP
	}
	return total
}

// AwardRewards adds gold to the party and splits exp evenly among living
// members (remainder discarded). Returns the levels gained per member index.
func (p *Party) AwardRewards(exp, gold int) map[int]int {
	p.Gold += gold

	alive := p.AliveMemberCount()
	if alive == 0 || exp <= 0 {
		return nil
	}
	share := exp / alive
	levelUps := make(map[int]int)
	for i, m := range p.Members {
		if !m.IsAlive() {
			continue
		}
		if gained := m.GainExp(share); gained > 0 {
			levelUps[i] = gained
		}
	}
	return levelUps
}
