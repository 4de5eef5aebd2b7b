// Package battlelog turns combat events into player-facing messages.
package battlelog

import (
	"fmt"

	"github.com/samdwyer/cavebattle/internal/combat"
	"github.com/samdwyer/cavebattle/internal/gamedata"
)

// Namer resolves an actor ID to a display name. *combat.Battle implements it.
type Namer interface {
	Name(id combat.ActorID) string
}

// Describe renders a single event. Spell and item IDs are shown by their
// catalog names when catalog is non-nil.
func Describe(ev combat.TurnResult, names Namer, catalog *gamedata.Catalog) string {
	switch e := ev.(type) {
	case combat.AttackResult:
		return fmt.Sprintf("%s attacks %s for %d damage.", names.Name(e.Actor), names.Name(e.Target), e.Damage)
	case combat.SpellDamage:
		return fmt.Sprintf("%s casts %s! %s takes %d damage.", names.Name(e.Actor), spellName(catalog, e.Spell), names.Name(e.Target), e.Damage)
	case combat.Healed:
		return fmt.Sprintf("%s casts %s. %s recovers %d HP.", names.Name(e.Actor), spellName(catalog, e.Spell), names.Name(e.Target), e.Amount)
	case combat.Buffed:
		return fmt.Sprintf("%s's %s rises by %d.", names.Name(e.Target), e.Stat, e.Amount)
	case combat.BuffExpired:
		return fmt.Sprintf("%s's %s boost wears off.", names.Name(e.Target), e.Stat)
	case combat.ItemUsed:
		return fmt.Sprintf("%s uses %s. %s recovers %d HP.", names.Name(e.Actor), itemName(catalog, e.Item), names.Name(e.Target), e.Amount)
	case combat.MPDrained:
		return fmt.Sprintf("%s drains %d MP from %s.", names.Name(e.Actor), e.Amount, names.Name(e.Target))
	case combat.Defeated:
		return fmt.Sprintf("%s is defeated!", names.Name(e.Target))
	case combat.AilmentInflicted:
		return fmt.Sprintf("%s is afflicted with %s!", names.Name(e.Target), e.Ailment)
	case combat.AilmentResisted:
		return fmt.Sprintf("%s resists %s.", names.Name(e.Target), e.Ailment)
	case combat.Sleeping:
		return fmt.Sprintf("%s is fast asleep.", names.Name(e.Actor))
	case combat.PoisonDamage:
		return fmt.Sprintf("%s takes %d poison damage.", names.Name(e.Target), e.Amount)
	case combat.AilmentCured:
		if e.Ailment == gamedata.AilmentSleep {
			return fmt.Sprintf("%s wakes up!", names.Name(e.Target))
		}
		return fmt.Sprintf("%s is no longer afflicted with %s.", names.Name(e.Target), e.Ailment)
	case combat.Fled:
		return fmt.Sprintf("%s leads the party to safety!", names.Name(e.Actor))
	case combat.FleeFailed:
		return fmt.Sprintf("%s tries to flee, but the way is blocked!", names.Name(e.Actor))
	default:
		return ev.Kind()
	}
}

// Lines renders events in order.
func Lines(events []combat.TurnResult, names Namer, catalog *gamedata.Catalog) []string {
	lines := make([]string, len(events))
	for i, ev := range events {
		lines[i] = Describe(ev, names, catalog)
	}
	return lines
}

func spellName(catalog *gamedata.Catalog, id string) string {
	if catalog != nil {
		if spell := catalog.Spells.GetByID(id); spell != nil {
			return spell.Name
		}
	}
	return id
}

func itemName(catalog *gamedata.Catalog, id string) string {
	if catalog != nil {
		if item := catalog.Items.GetByID(id); item != nil {
			return item.Name
		}
	}
	return id
}
