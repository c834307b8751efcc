package card

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultMaxAttempts bounds how many whole cards are drawn before giving up.
// A single attempt succeeds with a probability of roughly 1.5%, so exhausting
// this many attempts points at a broken RNG rather than bad luck.
const DefaultMaxAttempts = 10000

// ErrExhausted is returned when no valid card was produced within the attempt cap.
var ErrExhausted = errors.New("card: attempt limit exhausted")

// Generator draws cards from an RNG.
type Generator struct {
	rng         RNG
	maxAttempts int
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithMaxAttempts sets the attempt cap. Values below 1 are ignored.
func WithMaxAttempts(n int) GeneratorOption {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// NewGenerator returns a Generator reading from rng. A nil rng uses DefaultRNG.
func NewGenerator(rng RNG, opts ...GeneratorOption) *Generator {
	if rng == nil {
		rng = DefaultRNG()
	}
	g := &Generator{rng: rng, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a new valid card. Each attempt fills all nine columns
// independently; when the rows do not end up with exactly five numbers each
// the whole card is discarded and drawn again.
func (g *Generator) Generate() (Card, error) {
	for range g.maxAttempts {
		c, ok := g.attempt()
		if !ok {
			continue
		}
		if err := c.Validate(); err != nil {
			return Card{}, fmt.Errorf("card: generated card failed validation: %w", err)
		}
		return c, nil
	}
	return Card{}, fmt.Errorf("%w after %d attempts", ErrExhausted, g.maxAttempts)
}

// attempt draws one candidate card and reports whether every row has PerRow numbers.
func (g *Generator) attempt() (Card, bool) {
	var c Card
	var perRow [Rows]int
	for col, r := range ColumnRanges {
		count := 1 + g.rng.Intn(2)
		for _, n := range g.distinct(r, count) {
			row, ok := g.freeRow(&c, col)
			if !ok {
				return Card{}, false
			}
			c[row][col] = n
			perRow[row]++
		}
	}
	for _, n := range perRow {
		if n != PerRow {
			return Card{}, false
		}
	}
	return c, true
}

// maxDraws caps each rejection-sampling loop within one column.
const maxDraws = 256

// freeRow picks a uniformly random row whose cell in col is still empty.
func (g *Generator) freeRow(c *Card, col int) (int, bool) {
	for range maxDraws {
		if row := g.rng.Intn(Rows); c[row][col] == Empty {
			return row, true
		}
	}
	return 0, false
}

// distinct draws count different numbers uniformly from r.
func (g *Generator) distinct(r Range, count int) []int {
	out := make([]int, 0, count)
	for draws := 0; len(out) < count && draws < maxDraws; draws++ {
		if n := r.Min + g.rng.Intn(r.Size()); !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}

// Generate returns a card drawn from DefaultRNG.
func Generate() (Card, error) {
	return NewGenerator(nil).Generate()
}
