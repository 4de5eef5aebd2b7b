package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/samdwyer/cavebattle/internal/gamedata"
)

// ErrNoEligibleEnemies is returned when no enemy kind can spawn at a tier.
var ErrNoEligibleEnemies = errors.New("no enemy kinds eligible for tier")

// GenerateGroup spawns size enemies for an encounter at the given tier using
// the registry's weighted spawn table. Kinds that appear more than once get
// letter suffixes ("Slime A", "Slime B").
func GenerateGroup(rng *rand.Rand, registry *gamedata.EnemyRegistry, size, tier int) ([]*Enemy, error) {
	tier = max(tier, 1)
	group := make([]*Enemy, 0, size)
	counts := make(map[string]int)
	for range size {
		def := registry.SpawnRandom(rng, tier)
		if def == nil {
			return nil, fmt.Errorf("tier %d: %w", tier, ErrNoEligibleEnemies)
		}
		counts[def.ID]++
		group = append(group, NewEnemy(def, tier))
	}

	seen := make(map[string]int)
	for _, e := range group {
		if counts[e.Def.ID] < 2 {
			continue
		}
		e.Name = fmt.Sprintf("%s %c", e.Def.Name, 'A'+rune(seen[e.Def.ID]))
		seen[e.Def.ID]++
	}
	return group, nil
}
