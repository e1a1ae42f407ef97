package core

import "math/rand"

// PairGenerator draws unordered pairs of distinct columns for two-bomb rows.
// It keeps a shuffled bag containing every pair exactly once and reshuffles a
// fresh full enumeration when the bag runs out, so over any window aligned to
// a full cycle each pair appears exactly once.
type PairGenerator struct {
	width int
	rng   *rand.Rand
	bag   [][2]int
}

// NewPairGenerator creates a generator over the given column count, seeded
// by the provided random source. Pairs need two distinct columns, so widths
// below 2 are rejected.
func NewPairGenerator(width int, rng *rand.Rand) *PairGenerator {
	if width < 2 {
		panic("core: pair generator needs at least 2 columns")
	}
	g := &PairGenerator{width: width, rng: rng}
	g.shuffle()
	return g
}

func (g *PairGenerator) shuffle() {
	bag := make([][2]int, 0, g.width*(g.width-1)/2)
	for first := 0; first < g.width; first++ {
		for second := first + 1; second < g.width; second++ {
			bag = append(bag, [2]int{first, second})
		}
	}
	g.rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	g.bag = bag
}

// Next pops the next column pair, reshuffling a full cycle when the bag is
// exhausted.
func (g *PairGenerator) Next() (int, int) {
	if len(g.bag) == 0 {
		g.shuffle()
	}
	pair := g.bag[len(g.bag)-1]
	g.bag = g.bag[:len(g.bag)-1]
	return pair[0], pair[1]
}

// Reset discards the current bag and starts a fresh cycle.
func (g *PairGenerator) Reset() {
	g.shuffle()
}

// SpreadGenerator picks bomb columns weighted against their placement
// history: a column's weight is exponential in how far it trails the most
// used column, so under-served columns are exponentially more likely and no
// column's count can drift arbitrarily far from the others.
type SpreadGenerator struct {
	rng       *rand.Rand
	generated []int
}

// NewSpreadGenerator creates a generator over the given column count, seeded
// by the provided random source. Double rows need two distinct columns, so
// widths below 2 are rejected.
func NewSpreadGenerator(width int, rng *rand.Rand) *SpreadGenerator {
	if width < 2 {
		panic("core: spread generator needs at least 2 columns")
	}
	return &SpreadGenerator{
		rng:       rng,
		generated: make([]int, width),
	}
}

// weights returns the current per-column weight: 4^(max-count), so each
// placement quarters a column's near-term probability relative to its peers.
func (g *SpreadGenerator) weights() []int {
	max := g.generated[0]
	for _, n := range g.generated[1:] {
		if n > max {
			max = n
		}
	}
	weights := make([]int, len(g.generated))
	for i, n := range g.generated {
		weights[i] = 1 << (2 * (max - n))
	}
	return weights
}

// draw picks a column by cumulative-weight inverse-CDF sampling: sum the
// weights, draw a random integer under the total and select the first column
// whose running total exceeds it.
func (g *SpreadGenerator) draw(weights []int) int {
	sum := 0
	for _, w := range weights {
		sum += w
	}
	r := g.rng.Intn(sum)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if r < cumulative {
			return i
		}
	}
	// Unreachable: r < sum guarantees a hit above.
	return len(weights) - 1
}

// NextSingle picks one bomb column and records the placement.
func (g *SpreadGenerator) NextSingle() int {
	column := g.draw(g.weights())
	g.generated[column]++
	return column
}

// NextDouble picks two distinct bomb columns, excluding the first from the
// second draw, and records both placements.
func (g *SpreadGenerator) NextDouble() (int, int) {
	weights := g.weights()
	left := g.draw(weights)
	weights[left] = 0
	right := g.draw(weights)

	g.generated[left]++
	g.generated[right]++
	return left, right
}

// Width returns the number of columns the generator draws from.
func (g *SpreadGenerator) Width() int {
	return len(g.generated)
}

// Counts returns a copy of the per-column placement history.
func (g *SpreadGenerator) Counts() []int {
	counts := make([]int, len(g.generated))
	copy(counts, g.generated)
	return counts
}

// Reset clears the placement history for a new game.
func (g *SpreadGenerator) Reset() {
	for i := range g.generated {
		g.generated[i] = 0
	}
}
