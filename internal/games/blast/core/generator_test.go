package core

import (
	"math/rand"
	"testing"
)

func TestPairGeneratorFullCycleFairness(t *testing.T) {
	const width = 8
	g := NewPairGenerator(width, rand.New(rand.NewSource(1)))

	cycle := width * (width - 1) / 2
	seen := make(map[[2]int]int)
	for i := 0; i < cycle; i++ {
		a, b := g.Next()
		if a == b {
			t.Fatalf("draw %d returned identical columns (%d, %d)", i, a, b)
		}
		if a > b {
			a, b = b, a
		}
		seen[[2]int{a, b}]++
	}

	if len(seen) != cycle {
		t.Fatalf("saw %d distinct pairs over one cycle, want %d", len(seen), cycle)
	}
	for pair, n := range seen {
		if n != 1 {
			t.Errorf("pair %v drawn %d times in one cycle, want exactly once", pair, n)
		}
	}
}

func TestPairGeneratorReshufflesWhenExhausted(t *testing.T) {
	const width = 4
	g := NewPairGenerator(width, rand.New(rand.NewSource(7)))

	// Drain two full cycles plus one: the bag must replenish itself.
	draws := 2*(width*(width-1)/2) + 1
	for i := 0; i < draws; i++ {
		a, b := g.Next()
		if a < 0 || a >= width || b < 0 || b >= width {
			t.Fatalf("draw %d out of range: (%d, %d)", i, a, b)
		}
	}
}

func TestPairGeneratorDeterministicForSeed(t *testing.T) {
	g1 := NewPairGenerator(8, rand.New(rand.NewSource(42)))
	g2 := NewPairGenerator(8, rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		a1, b1 := g1.Next()
		a2, b2 := g2.Next()
		if a1 != a2 || b1 != b2 {
			t.Fatalf("draw %d diverged: (%d,%d) vs (%d,%d)", i, a1, b1, a2, b2)
		}
	}
}

func TestSpreadGeneratorPlacementStaysBounded(t *testing.T) {
	const width = 8
	g := NewSpreadGenerator(width, rand.New(rand.NewSource(3)))

	check := func(step int) {
		counts := g.Counts()
		min, max := counts[0], counts[0]
		for _, n := range counts[1:] {
			if n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}
		// Each placement quarters a column's weight, so the spread
		// self-corrects long before the counts drift apart.
		if max-min > 4 {
			t.Fatalf("after %d draws spread = %d (counts %v), want <= 4", step, max-min, counts)
		}
	}

	for i := 0; i < 500; i++ {
		g.NextDouble()
		check(i)
	}
	for i := 0; i < 500; i++ {
		g.NextSingle()
		check(500 + i)
	}
}

func TestSpreadGeneratorDoubleDrawsDistinctColumns(t *testing.T) {
	g := NewSpreadGenerator(8, rand.New(rand.NewSource(11)))
	for i := 0; i < 200; i++ {
		left, right := g.NextDouble()
		if left == right {
			t.Fatalf("draw %d returned the same column twice: %d", i, left)
		}
	}
}

func TestGeneratorsRejectSingleColumn(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s should reject a 1-column board", name)
			}
		}()
		fn()
	}

	// Both generators place two bombs in distinct columns; one column can
	// never satisfy a draw.
	mustPanic("NewPairGenerator", func() {
		NewPairGenerator(1, rand.New(rand.NewSource(1)))
	})
	mustPanic("NewSpreadGenerator", func() {
		NewSpreadGenerator(1, rand.New(rand.NewSource(1)))
	})
}

func TestSpreadGeneratorMinimumWidthNeverStalls(t *testing.T) {
	g := NewSpreadGenerator(2, rand.New(rand.NewSource(9)))
	for i := 0; i < 100; i++ {
		left, right := g.NextDouble()
		if left == right {
			t.Fatalf("draw %d returned the same column twice: %d", i, left)
		}
	}
}

func TestSpreadGeneratorResetClearsHistory(t *testing.T) {
	g := NewSpreadGenerator(4, rand.New(rand.NewSource(5)))
	for i := 0; i < 10; i++ {
		g.NextSingle()
	}
	g.Reset()
	for _, n := range g.Counts() {
		if n != 0 {
			t.Fatalf("counts after reset = %v, want all zero", g.Counts())
		}
	}
}
