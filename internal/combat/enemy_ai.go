package combat

import "github.com/samdwyer/cavebattle/internal/gamedata"

// enemyAct picks and performs an enemy's action. A spell-capable enemy
// casts when its spell random is under SpellThreshold and it can afford a
// spell; otherwise it attacks the first living party member.
func (t *turn) enemyAct(id ActorID, rf float32) {
	if t.rf.SpellRandoms[id.Index] < SpellThreshold {
		if spell := t.affordableSpell(id); spell != nil {
			t.enemyCast(id, spell, rf)
			return
		}
	}

	target, ok := t.retarget(SideParty, 0)
	if !ok {
		return
	}
	t.physicalAttack(id, target, rf)
}

// affordableSpell returns the first spell in the enemy's table that its
// current MP covers, or nil.
func (t *turn) affordableSpell(id ActorID) *gamedata.SpellDef {
	enemy := t.b.enemies[id.Index]
	for _, spellID := range enemy.SpellIDs() {
		spell := t.b.catalog.Spells.GetByID(spellID)
		if spell != nil && spell.MPCost <= enemy.Stats.MP {
			return spell
		}
	}
	return nil
}

// enemyCast resolves an enemy spell. Offensive spells aim at the party, heals
// aim at the caster, and buffs are not used by enemies.
func (t *turn) enemyCast(caster ActorID, spell *gamedata.SpellDef, rf float32) {
	switch {
	case spell.Effect == gamedata.EffectAttackBuff || spell.Effect == gamedata.EffectDefenseBuff:
		return
	case spell.Effect == gamedata.EffectHeal:
		t.castSpell(caster, spell, []ActorID{caster}, rf)
	default:
		t.castSpell(caster, spell, t.targets(SideParty, spell.Target, 0), rf)
	}
}
