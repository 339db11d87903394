package chip8

import "math/rand/v2"

// Random is a source of random bytes.
type Random interface {
	Byte() byte
}

type pcgRandom struct {
	rnd *rand.Rand
}

// NewRandom returns a random byte source. A zero seed selects a random seed,
// any other seed produces a reproducible sequence.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &pcgRandom{
		rnd: rand.New(rand.NewPCG(seed, seed>>32|seed<<32)),
	}
}

func (r *pcgRandom) Byte() byte {
	return byte(r.rnd.Uint32())
}
