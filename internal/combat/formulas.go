package combat

import "math"

// scaleRound multiplies base by the random factor in float32 precision and
// rounds half away from zero.
func scaleRound(base int, rf float32) int {
	return int(math.Round(float64(float32(base) * rf)))
}

// PhysicalDamage returns round((attack - defense/2) * rf), at least 1.
func PhysicalDamage(attack, defense int, rf float32) int {
	return max(scaleRound(attack-defense/2, rf), 1)
}

// MagicDamage returns round((power - defense/4) * rf), at least 1.
func MagicDamage(power, defense int, rf float32) int {
	return max(scaleRound(power-defense/4, rf), 1)
}

// HealAmount returns round(power * rf), at least 1.
func HealAmount(power int, rf float32) int {
	return max(scaleRound(power, rf), 1)
}

// DrainAmount returns round(power * rf), at least 1.
func DrainAmount(power int, rf float32) int {
	return max(scaleRound(power, rf), 1)
}

// AilmentSucceeds reports whether an ailment with the given success rate
// (0-100) lands for random factor rf.
func AilmentSucceeds(successRate int, rf float32) bool {
	return rf*100 < float32(successRate)
}
