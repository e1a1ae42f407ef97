package server

import (
	"math/rand"

	"github.com/tuigames/blastgrid/internal/games/blast/core"
)

// BoardManager maintains the authoritative board for one match participant.
// Online boards skip the client-side animation layer entirely; removals
// settle immediately and the client mirrors them from the wire messages.
type BoardManager struct {
	board   *core.Board
	gen     *core.SpreadGenerator
	removed int
}

// NewBoardManager creates a board of the given size with its own bomb
// generator.
func NewBoardManager(width, height int, rng *rand.Rand) *BoardManager {
	return &BoardManager{
		board: core.NewBoard(width, height),
		gen:   core.NewSpreadGenerator(width, rng),
	}
}

// Remove detonates the cell at (x, y) and settles the board.
// Returns the number of cells cleared, zero if the slot was empty.
func (m *BoardManager) Remove(x, y int) int {
	removed := len(m.board.Remove(x, y))
	m.board.ApplyGravity()
	m.removed += removed
	return removed
}

// Feed pushes a fresh row with two bombs onto the bottom of the board.
// Returns the bomb mask for the row, indexed by column.
func (m *BoardManager) Feed() []bool {
	width := m.board.Width()
	row := make([]core.Kind, width)
	for i := range row {
		row[i] = core.KindTile
	}
	left, right := m.gen.NextDouble()
	row[left] = core.KindBomb
	row[right] = core.KindBomb
	m.board.Feed(row)

	bombs := make([]bool, width)
	bombs[left] = true
	bombs[right] = true
	return bombs
}

// Removed reports the total number of cells this participant has cleared.
func (m *BoardManager) Removed() int {
	return m.removed
}
