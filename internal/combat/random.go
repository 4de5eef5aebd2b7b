package combat

import "math/rand"

// Random factor ranges drawn by RollRandomFactors.
const (
	MinDamageRandom = 0.8
	MaxDamageRandom = 1.2
	// FleeThreshold and SpellThreshold are the cut-offs below which a flee
	// succeeds and a spell-capable enemy casts instead of attacking.
	FleeThreshold  = 0.5
	SpellThreshold = 0.5
)

// TurnRandomFactors carries every random value one turn consumes.
//
// DamageRandoms holds one factor in [0.8, 1.2) per acting slot, in action
// order. FleeRandom in [0, 1) decides an escape attempt. SpellRandoms holds
// one value in [0, 1) per enemy roster position.
type TurnRandomFactors struct {
	DamageRandoms []float32
	FleeRandom    float32
	SpellRandoms  []float32
}

// RollRandomFactors draws a bundle for a turn with the given number of
// acting slots and enemies.
func RollRandomFactors(rng *rand.Rand, slots, enemies int) TurnRandomFactors {
	rf := TurnRandomFactors{
		DamageRandoms: make([]float32, slots),
		SpellRandoms:  make([]float32, enemies),
	}
	for i := range rf.DamageRandoms {
		rf.DamageRandoms[i] = MinDamageRandom + rng.Float32()*(MaxDamageRandom-MinDamageRandom)
	}
	rf.FleeRandom = rng.Float32()
	for i := range rf.SpellRandoms {
		rf.SpellRandoms[i] = rng.Float32()
	}
	return rf
}
