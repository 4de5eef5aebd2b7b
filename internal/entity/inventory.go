package entity

import (
	"maps"
	"slices"

	"github.com/samdwyer/cavebattle/internal/gamedata"
)

// Inventory counts carried items by item ID.
type Inventory map[string]int

// Count returns how many of the item are carried.
func (inv Inventory) Count(id string) int {
	return inv[id]
}

// Add puts n copies of the item in the inventory.
func (inv Inventory) Add(id string, n int) {
	if n <= 0 {
		return
	}
	inv[id] += n
}

// Consume removes one copy of the item and returns false if none is carried.
func (inv Inventory) Consume(id string) bool {
	if inv[id] <= 0 {
		return false
	}
	inv[id]--
	if inv[id] == 0 {
		delete(inv, id)
	}
	return true
}

// IDs returns the carried item IDs in sorted order.
func (inv Inventory) IDs() []string {
	return slices.Sorted(maps.Keys(inv))
}

// Clone returns an independent copy of the inventory.
func (inv Inventory) Clone() Inventory {
	if inv == nil {
		return Inventory{}
	}
	return maps.Clone(inv)
}

// Equipment holds a member's worn gear. Slots may be nil.
type Equipment struct {
	Weapon *gamedata.ItemDef
	Armor  *gamedata.ItemDef
}

// AttackBonus returns the attack added by all equipped items.
func (e Equipment) AttackBonus() int {
	bonus := 0
	for _, item := range e.slots() {
		bonus += item.AttackBonus
	}
	return bonus
}

// DefenseBonus returns the defense added by all equipped items.
func (e Equipment) DefenseBonus() int {
	bonus := 0
	for _, item := range e.slots() {
		bonus += item.DefenseBonus
	}
	return bonus
}

func (e Equipment) slots() []*gamedata.ItemDef {
	var items []*gamedata.ItemDef
	if e.Weapon != nil {
		items = append(items, e.Weapon)
	}
	if e.Armor != nil {
		items = append(items, e.Armor)
	}
	return items
}
