package combat

import "errors"

// Contract violations. ExecuteTurn returns these (wrapped) before mutating
// any state; in-game failures such as missing MP are silent no-ops instead.
var (
	ErrBattleOver         = errors.New("battle is already over")
	ErrCommandCount       = errors.New("more commands than party members")
	ErrTargetOutOfRange   = errors.New("target index out of range")
	ErrUnknownAbility     = errors.New("unknown spell or item")
	ErrRandomFactorsShort = errors.New("random factor bundle too short")
	ErrRosterMismatch     = errors.New("party roster does not match battle")
)
