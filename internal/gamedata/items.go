package gamedata

// ItemKind classifies inventory items. Only heal items do anything in battle.
type ItemKind string

const (
	ItemHeal      ItemKind = "heal"
	ItemKey       ItemKind = "key"
	ItemMaterial  ItemKind = "material"
	ItemEquipment ItemKind = "equipment"
)

// ItemDef defines an item loaded from JSON.
type ItemDef struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Kind         ItemKind    `json:"kind"`
	Power        int         `json:"power,omitempty"`  // Heal amount before the random factor
	Target       TargetShape `json:"target,omitempty"` // Heal items only
	AttackBonus  int         `json:"attackBonus,omitempty"`
	DefenseBonus int         `json:"defenseBonus,omitempty"`
}

// UsableInBattle returns true if using the item has a combat effect.
func (i *ItemDef) UsableInBattle() bool {
	return i.Kind == ItemHeal
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}
