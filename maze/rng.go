package maze

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// NewRand returns a deterministic source for New.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is not goroutine-safe; use one source per run.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
