package gamedata

import (
	"math/rand"
)

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
type EnemyRegistry struct {
	enemies []EnemyDef
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	return &EnemyRegistry{enemies: enemies}
}

// SpawnRandom selects a random enemy definition eligible for tier using
// weighted probability. Enemies with higher spawnWeight are more likely to be
// selected. Returns nil when no kind is eligible.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand, tier int) *EnemyDef {
	totalWeight := 0
	for i := range r.enemies {
		if r.enemies[i].MinTier <= tier {
			totalWeight += r.enemies[i].SpawnWeight
		}
	}
	if totalWeight <= 0 {
		return nil
	}

	roll := rng.Intn(totalWeight)

	cumulative := 0
	for i := range r.enemies {
		if r.enemies[i].MinTier > tier {
			continue
		}
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}
	return nil
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.enemies
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// SpellRegistry
// =============================================================================

// SpellRegistry holds loaded spell definitions and provides lookup utilities.
type SpellRegistry struct {
	spells map[string]*SpellDef
	all    []SpellDef
}

// NewSpellRegistry creates a registry from loaded spell definitions.
func NewSpellRegistry(spells []SpellDef) *SpellRegistry {
	registry := &SpellRegistry{
		spells: make(map[string]*SpellDef, len(spells)),
		all:    spells,
	}
	for i := range spells {
		registry.spells[spells[i].ID] = &spells[i]
	}
	return registry
}

// GetByID returns the spell definition with the given ID, or nil if not found.
func (r *SpellRegistry) GetByID(id string) *SpellDef {
	return r.spells[id]
}

// GetMultiple returns spell definitions for a list of IDs, preserving order.
// Missing IDs are silently skipped.
func (r *SpellRegistry) GetMultiple(ids []string) []*SpellDef {
	result := make([]*SpellDef, 0, len(ids))
	for _, id := range ids {
		if spell := r.spells[id]; spell != nil {
			result = append(result, spell)
		}
	}
	return result
}

// All returns all spell definitions.
func (r *SpellRegistry) All() []SpellDef {
	return r.all
}

// Count returns the number of spells in the registry.
func (r *SpellRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// ItemRegistry
// =============================================================================

// ItemRegistry holds loaded item definitions.
type ItemRegistry struct {
	items map[string]*ItemDef
	all   []ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	registry := &ItemRegistry{
		items: make(map[string]*ItemDef, len(items)),
		all:   items,
	}
	for i := range items {
		registry.items[items[i].ID] = &items[i]
	}
	return registry
}

// GetByID returns the item definition with the given ID, or nil if not found.
func (r *ItemRegistry) GetByID(id string) *ItemDef {
	return r.items[id]
}

// Count returns the number of items in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// ClassRegistry
// =============================================================================

// ClassRegistry holds loaded class definitions.
type ClassRegistry struct {
	classes map[string]*ClassDef
	all     []ClassDef
}

// NewClassRegistry creates a registry from loaded class definitions.
func NewClassRegistry(classes []ClassDef) *ClassRegistry {
	registry := &ClassRegistry{
		classes: make(map[string]*ClassDef, len(classes)),
		all:     classes,
	}
	for i := range classes {
		registry.classes[classes[i].ID] = &classes[i]
	}
	return registry
}

// GetByID returns the class definition with the given ID, or nil if not found.
func (r *ClassRegistry) GetByID(id string) *ClassDef {
	return r.classes[id]
}

// All returns all class definitions.
func (r *ClassRegistry) All() []ClassDef {
	return r.all
}
