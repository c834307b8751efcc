package card

import "math/rand/v2"

// RNG is the source of randomness for card generation.
// Intn returns a uniformly distributed integer in [0, n).
type RNG interface {
	Intn(n int) int
}

// stdRNG delegates to the auto-seeded math/rand/v2 source. It is safe for
// concurrent use.
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.IntN(n) }

// DefaultRNG returns the process-wide random source.
func DefaultRNG() RNG { return stdRNG{} }

// seededRNG is reproducible for a given seed. It is not safe for concurrent use.
type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a deterministic RNG, for reproducible documents and tests.
func NewSeededRNG(seed uint64) RNG {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Intn(n int) int { return s.r.IntN(n) }
