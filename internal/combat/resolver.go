package combat

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samdwyer/cavebattle/internal/gamedata"
)

// turn accumulates the events of one ExecuteTurn call.
type turn struct {
	b      *Battle
	rf     TurnRandomFactors
	events []TurnResult
}

func (t *turn) emit(ev TurnResult) {
	t.events = append(t.events, ev)
}

// ExecuteTurn resolves one complete round and returns its events, which are
// also appended to the battle's turn log.
//
// commands is indexed by party roster position; a nil entry means the member
// does not act. Commands for dead members are ignored. The round runs as a
// fixed pipeline: flee check, action ordering, per-actor execution, buff
// decay, poison ticks.
//
// An error is returned only for contract violations (see the Err variables),
// in which case the battle is left untouched.
func (b *Battle) ExecuteTurn(commands []Action, rf TurnRandomFactors) ([]TurnResult, error) {
	if b.IsOver() {
		return nil, ErrBattleOver
	}
	if err := b.validate(commands, rf); err != nil {
		return nil, err
	}

	t := &turn{b: b, rf: rf}
	if fleeing, ok := b.fleeingMember(commands); ok {
		if !t.resolveFlee(fleeing) {
			t.housekeeping()
		}
	} else {
		t.execute(b.actionOrder(commands), commands)
		t.housekeeping()
	}

	b.turn++
	b.log = append(b.log, t.events...)
	return t.events, nil
}

// SlotsNeeded returns how many damage randoms ExecuteTurn will consume for
// commands: one per acting slot, or one per living enemy when a member flees.
func (b *Battle) SlotsNeeded(commands []Action) int {
	if _, ok := b.fleeingMember(commands); ok {
		return len(b.living(SideEnemy))
	}
	return len(b.actionOrder(commands))
}

// command returns the action for party member i, or nil.
func command(commands []Action, i int) Action {
	if i < len(commands) {
		return commands[i]
	}
	return nil
}

// validate checks the call contract before anything is mutated.
func (b *Battle) validate(commands []Action, rf TurnRandomFactors) error {
	if len(commands) > len(b.party) {
		return fmt.Errorf("%d commands for %d members: %w", len(commands), len(b.party), ErrCommandCount)
	}

	for i, cmd := range commands {
		if cmd == nil || !b.party[i].IsAlive() {
			continue
		}
		if err := b.validateCommand(cmd); err != nil {
			return fmt.Errorf("command for %s: %w", Party(i), err)
		}
	}

	if len(rf.SpellRandoms) < len(b.enemies) {
		return fmt.Errorf("%d spell randoms for %d enemies: %w", len(rf.SpellRandoms), len(b.enemies), ErrRandomFactorsShort)
	}
	if need := b.SlotsNeeded(commands); len(rf.DamageRandoms) < need {
		return fmt.Errorf("%d damage randoms for %d slots: %w", len(rf.DamageRandoms), need, ErrRandomFactorsShort)
	}
	return nil
}

func (b *Battle) validateCommand(cmd Action) error {
	inRange := func(side Side, i int) error {
		if i < 0 || i >= b.rosterLen(side) {
			return fmt.Errorf("%s index %d: %w", side, i, ErrTargetOutOfRange)
		}
		return nil
	}

	switch a := cmd.(type) {
	case Attack:
		return inRange(SideEnemy, a.Target)
	case CastSpell:
		spell := b.catalog.Spells.GetByID(a.Spell)
		if spell == nil {
			return fmt.Errorf("spell %q: %w", a.Spell, ErrUnknownAbility)
		}
		if spell.Target.IsArea() {
			return nil
		}
		side := SideParty
		if spell.IsOffensive() {
			side = SideEnemy
		}
		return inRange(side, a.Target)
	case UseItem:
		item := b.catalog.Items.GetByID(a.Item)
		if item == nil {
			return fmt.Errorf("item %q: %w", a.Item, ErrUnknownAbility)
		}
		if !item.UsableInBattle() || item.Target.IsArea() {
			return nil
		}
		return inRange(SideParty, a.Target)
	case Flee:
		return nil
	default:
		return fmt.Errorf("unsupported action %T", cmd)
	}
}

// fleeingMember returns the first living member commanded to flee.
func (b *Battle) fleeingMember(commands []Action) (int, bool) {
	for i, cmd := range commands {
		if _, ok := cmd.(Flee); ok && b.party[i].IsAlive() {
			return i, true
		}
	}
	return 0, false
}

// actionOrder lists the living members with a command and all living enemies,
// fastest first. Ties go to the party, then to the lower roster index.
func (b *Battle) actionOrder(commands []Action) []ActorID {
	var order []ActorID
	for _, id := range b.living(SideParty) {
		if command(commands, id.Index) != nil {
			order = append(order, id)
		}
	}
	order = append(order, b.living(SideEnemy)...)

	slices.SortStableFunc(order, func(x, y ActorID) int {
		if c := cmp.Compare(b.Stats(y).Speed, b.Stats(x).Speed); c != 0 {
			return c
		}
		if c := cmp.Compare(x.Side, y.Side); c != 0 {
			return c
		}
		return cmp.Compare(x.Index, y.Index)
	})
	return order
}

// resolveFlee handles an escape attempt and reports whether it succeeded.
// On failure only the enemies act, in roster order.
func (t *turn) resolveFlee(member int) bool {
	actor := Party(member)
	if t.rf.FleeRandom < FleeThreshold {
		t.emit(Fled{Actor: actor})
		return true
	}
	t.emit(FleeFailed{Actor: actor})

	for slot, id := range t.b.living(SideEnemy) {
		t.act(id, nil, t.rf.DamageRandoms[slot])
	}
	return false
}

// execute runs every slot of the action order. Each slot owns the damage
// random at its position, whether or not the actor ends up acting.
func (t *turn) execute(order []ActorID, commands []Action) {
	for slot, id := range order {
		t.act(id, command(commands, id.Index), t.rf.DamageRandoms[slot])
	}
}

// act resolves one actor's slot.
func (t *turn) act(id ActorID, cmd Action, rf float32) {
	if !t.b.Stats(id).IsAlive() {
		return
	}
	if t.b.tracker(id.Side).IsAsleep(id.Index) {
		t.emit(Sleeping{Actor: id})
		return
	}
	if id.IsParty() {
		t.partyAct(id, cmd, rf)
		return
	}
	t.enemyAct(id, rf)
}

func (t *turn) partyAct(id ActorID, cmd Action, rf float32) {
	switch a := cmd.(type) {
	case Attack:
		target, ok := t.retarget(SideEnemy, a.Target)
		if !ok {
			return
		}
		t.physicalAttack(id, target, rf)
	case CastSpell:
		spell := t.b.catalog.Spells.GetByID(a.Spell)
		side := SideParty
		if spell.IsOffensive() {
			side = SideEnemy
		}
		t.castSpell(id, spell, t.targets(side, spell.Target, a.Target), rf)
	case UseItem:
		t.useItem(id, t.b.catalog.Items.GetByID(a.Item), a.Target, rf)
	}
}

// retarget returns the intended target if it is still alive, otherwise the
// lowest-index living member of side. ok is false if side is wiped out.
func (t *turn) retarget(side Side, index int) (ActorID, bool) {
	id := ActorID{Side: side, Index: index}
	if index >= 0 && index < t.b.rosterLen(side) && t.b.Stats(id).IsAlive() {
		return id, true
	}
	living := t.b.living(side)
	if len(living) == 0 {
		return ActorID{}, false
	}
	return living[0], true
}

// targets resolves the target list of an ability at execution time.
func (t *turn) targets(side Side, shape gamedata.TargetShape, index int) []ActorID {
	if shape.IsArea() {
		return t.b.living(side)
	}
	id, ok := t.retarget(side, index)
	if !ok {
		return nil
	}
	return []ActorID{id}
}

func (t *turn) physicalAttack(actor, target ActorID, rf float32) {
	dmg := PhysicalDamage(t.b.EffectiveAttack(actor), t.b.EffectiveDefense(target), rf)
	t.b.Stats(target).TakeDamage(dmg)
	t.emit(AttackResult{Actor: actor, Target: target, Damage: dmg})
	t.afterHit(target)
}

// afterHit wakes a sleeping target and reports its defeat.
func (t *turn) afterHit(target ActorID) {
	if t.b.tracker(target.Side).Cure(target.Index, gamedata.AilmentSleep) {
		t.emit(AilmentCured{Target: target, Ailment: gamedata.AilmentSleep})
	}
	t.checkDefeated(target)
}

func (t *turn) checkDefeated(target ActorID) {
	if !t.b.Stats(target).IsAlive() {
		t.emit(Defeated{Target: target})
	}
}

// castSpell spends the caster's MP and applies spell to every target. Nothing
// happens, and no MP is spent, when there is no target or not enough MP.
func (t *turn) castSpell(caster ActorID, spell *gamedata.SpellDef, targets []ActorID, rf float32) {
	if len(targets) == 0 {
		return
	}
	if !t.b.Stats(caster).UseMP(spell.MPCost) {
		return
	}
	for _, target := range targets {
		t.applySpell(caster, spell, target, rf)
	}
}

func (t *turn) applySpell(caster ActorID, spell *gamedata.SpellDef, target ActorID, rf float32) {
	stats := t.b.Stats(target)
	tracker := t.b.tracker(target.Side)

	switch spell.Effect {
	case gamedata.EffectDamage:
		dmg := MagicDamage(spell.Power, t.b.EffectiveDefense(target), rf)
		stats.TakeDamage(dmg)
		t.emit(SpellDamage{Actor: caster, Target: target, Spell: spell.ID, Damage: dmg})
		t.afterHit(target)
	case gamedata.EffectHeal:
		amount := HealAmount(spell.Power, rf)
		stats.Heal(amount)
		t.emit(Healed{Actor: caster, Target: target, Spell: spell.ID, Amount: amount})
	case gamedata.EffectAttackBuff:
		tracker.ApplyBuff(target.Index, StatAttack, spell.Power)
		t.emit(Buffed{Actor: caster, Target: target, Stat: StatAttack, Amount: spell.Power})
	case gamedata.EffectDefenseBuff:
		tracker.ApplyBuff(target.Index, StatDefense, spell.Power)
		t.emit(Buffed{Actor: caster, Target: target, Stat: StatDefense, Amount: spell.Power})
	case gamedata.EffectMPDrain:
		amount := DrainAmount(spell.Power, rf)
		stats.DrainMP(amount)
		t.emit(MPDrained{Actor: caster, Target: target, Amount: amount})
	case gamedata.EffectAilment:
		if AilmentSucceeds(spell.Power, rf) {
			tracker.Inflict(target.Index, spell.Ailment)
			t.emit(AilmentInflicted{Actor: caster, Target: target, Ailment: spell.Ailment})
		} else {
			t.emit(AilmentResisted{Actor: caster, Target: target, Ailment: spell.Ailment})
		}
	}
}

// useItem consumes one item after a valid target is confirmed and applies
// it. Items without a combat effect, and items not carried, do nothing.
func (t *turn) useItem(actor ActorID, item *gamedata.ItemDef, index int, rf float32) {
	if !item.UsableInBattle() {
		return
	}
	member := t.b.party[actor.Index]
	if member.Inventory.Count(item.ID) == 0 {
		return
	}
	targets := t.targets(SideParty, item.Target, index)
	if len(targets) == 0 || !member.Inventory.Consume(item.ID) {
		return
	}
	amount := HealAmount(item.Power, rf)
	for _, target := range targets {
		t.b.Stats(target).Heal(amount)
		t.emit(ItemUsed{Actor: actor, Target: target, Item: item.ID, Amount: amount})
	}
}

// housekeeping runs the turn-end steps: buff decay, then poison.
func (t *turn) housekeeping() {
	t.events = append(t.events, t.b.partyStatus.Decay()...)
	t.events = append(t.events, t.b.enemyStatus.Decay()...)
	t.tickPoison()
}

// tickPoison damages every poisoned living actor, party first.
func (t *turn) tickPoison() {
	for _, side := range []Side{SideParty, SideEnemy} {
		tracker := t.b.tracker(side)
		for _, id := range t.b.living(side) {
			if !tracker.IsPoisoned(id.Index) {
				continue
			}
			t.b.Stats(id).TakeDamage(PoisonTick)
			t.emit(PoisonDamage{Target: id, Amount: PoisonTick})
			t.checkDefeated(id)
		}
	}
}
