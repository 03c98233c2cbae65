package seeding

import "math/rand/v2"

const (
	worldStream  = 0x57a7e
	policyStream = 0x9011c
)

// Resolve returns the requested seed, or a fresh one from gen (or the global
// source when gen is nil).
func Resolve(requested *uint64, gen func() uint64) uint64 {
	if requested != nil {
		return *requested
	}
	if gen != nil {
		return gen()
	}
	return rand.Uint64()
}

// Streams splits one seed into independent sources for world layout and
// policy fallbacks, so two teams run with the same seed face the same targets.
func Streams(seed uint64) (world, policy *rand.Rand) {
	return rand.New(rand.NewPCG(seed, worldStream)), rand.New(rand.NewPCG(seed, policyStream))
}
