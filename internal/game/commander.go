package game

import (
	"github.com/samdwyer/cavebattle/internal/combat"
	"github.com/samdwyer/cavebattle/internal/entity"
	"github.com/samdwyer/cavebattle/internal/gamedata"
)

// Commander chooses the party's actions for the next turn. The returned slice
// is indexed by party roster position; nil entries skip that member.
type Commander interface {
	Commands(b *combat.Battle) []combat.Action
}

// CommanderFunc adapts a function to the Commander interface.
type CommanderFunc func(b *combat.Battle) []combat.Action

// Commands calls f(b).
func (f CommanderFunc) Commands(b *combat.Battle) []combat.Action { return f(b) }

// lowHPPercent is the HP threshold below which AutoCommander heals an ally.
const lowHPPercent = 40

// AutoCommander is a simple party AI. It never flees. A member who knows a
// heal spell mends the most wounded ally under 40% HP; a member who knows a
// damage spell casts the strongest one it can afford; everyone else attacks
// the first living enemy.
type AutoCommander struct{}

// Commands implements Commander.
func (AutoCommander) Commands(b *combat.Battle) []combat.Action {
	target := firstLivingEnemy(b)
	if target < 0 {
		return nil
	}

	catalog := b.Catalog()
	commands := make([]combat.Action, len(b.Party()))
	for i, m := range b.Party() {
		if !m.IsAlive() {
			continue
		}
		if heal := bestSpell(catalog, m, gamedata.EffectHeal); heal != nil {
			if ally := woundedAlly(b.Party()); ally >= 0 {
				commands[i] = combat.CastSpell{Spell: heal.ID, Target: ally}
				continue
			}
		}
		if spell := bestSpell(catalog, m, gamedata.EffectDamage); spell != nil {
			commands[i] = combat.CastSpell{Spell: spell.ID, Target: target}
			continue
		}
		commands[i] = combat.Attack{Target: target}
	}
	return commands
}

func firstLivingEnemy(b *combat.Battle) int {
	for i, e := range b.Enemies() {
		if e.IsAlive() {
			return i
		}
	}
	return -1
}

// woundedAlly returns the living member with the lowest HP ratio under
// lowHPPercent, or -1.
func woundedAlly(party []*entity.Member) int {
	best := -1
	for i, m := range party {
		if !m.IsAlive() || m.Stats.MaxHP == 0 || m.Stats.HP*100 >= m.Stats.MaxHP*lowHPPercent {
			continue
		}
		if best < 0 || m.Stats.HP*party[best].Stats.MaxHP < party[best].Stats.HP*m.Stats.MaxHP {
			best = i
		}
	}
	return best
}

// bestSpell returns the highest-power spell with the given effect that m
// knows and can afford.
func bestSpell(catalog *gamedata.Catalog, m *entity.Member, effect gamedata.Effect) *gamedata.SpellDef {
	var best *gamedata.SpellDef
	for _, spell := range catalog.Spells.GetMultiple(m.KnownSpells()) {
		if spell.Effect != effect || spell.MPCost > m.Stats.MP {
			continue
		}
		if best == nil || spell.Power > best.Power {
			best = spell
		}
	}
	return best
}
