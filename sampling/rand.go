package sampling

import "math/rand/v2"

// New constructs the pseudorandom source for one generation run from the
// configuration's four 32-bit seed words. The words are packed pairwise
// into the two 64-bit PCG state words, so equal seeds always yield equal
// streams.
func New(seed [4]uint32) *rand.Rand {
	hi := uint64(seed[0])<<32 | uint64(seed[1])
	lo := uint64(seed[2])<<32 | uint64(seed[3])

	return rand.New(rand.NewPCG(hi, lo))
}
