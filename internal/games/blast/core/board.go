// Package core implements the pure simulation engine for the blast puzzle:
// the cell grid with chain-reaction removal, gravity compaction and row
// feeding, plus the bomb placement generators. It has no dependencies on the
// platform or rendering layers, keeping the game logic deterministic and
// directly testable.
package core

// Default board dimensions, matching the classic game layout.
const (
	DefaultWidth  = 8
	DefaultHeight = 9
)

// Kind distinguishes the two cell types on the board.
type Kind uint8

const (
	KindTile Kind = iota
	KindBomb
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if k == KindBomb {
		return "Bomb"
	}
	return "Tile"
}

// Cell is a single occupied slot. The ID is assigned at feed time from the
// board's monotonically increasing counter, is never reused and never
// mutated; it is the join key animation code uses to track a cell across
// gravity and feed shifts.
type Cell struct {
	ID   uint64
	Kind Kind
}

// Removed describes one cell destroyed during a chain reaction.
// Dist is the breadth-first layer at which the cell was reached from the
// detonation point (0 for the detonated cell itself); it drives downstream
// animation stagger and scoring.
type Removed struct {
	ID   uint64
	Dist int
	X    int
	Y    int
	Kind Kind
}

// Board is a fixed-size grid of optional cells, stored column-major with
// row 0 at the top. Cells only ever move within their own column: up one row
// on feed, down on gravity, and out on removal.
type Board struct {
	width  int
	height int
	nextID uint64
	cells  [][]*Cell // cells[x][y]
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(width, height int) *Board {
	cells := make([][]*Cell, width)
	for x := range cells {
		cells[x] = make([]*Cell, height)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// At returns the cell at (x, y). The second result is false for empty or
// out-of-bounds slots.
func (b *Board) At(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) || b.cells[x][y] == nil {
		return Cell{}, false
	}
	return *b.cells[x][y], true
}

// Each calls fn for every occupied slot, columns left to right, rows top to
// bottom within a column.
func (b *Board) Each(fn func(x, y int, cell Cell)) {
	for x := range b.cells {
		for y, cell := range b.cells[x] {
			if cell != nil {
				fn(x, y, *cell)
			}
		}
	}
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Remove detonates the slot at (x, y) and returns every cell destroyed by
// the resulting chain reaction, in breadth-first order. An empty or
// out-of-bounds slot is a no-op yielding an empty result.
//
// The flood fill runs over an explicit work queue rather than recursion, so
// chain depth is bounded by the queue, not the stack. Removal doubles as the
// visited marker: a slot emptied earlier in the chain short-circuits.
func (b *Board) Remove(x, y int) []Removed {
	if !b.inBounds(x, y) {
		return nil
	}

	type visit struct {
		x, y, dist int
	}
	queue := []visit{{x, y, 0}}
	var removed []Removed

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		cell := b.cells[v.x][v.y]
		if cell == nil {
			continue
		}
		b.cells[v.x][v.y] = nil
		removed = append(removed, Removed{
			ID:   cell.ID,
			Dist: v.dist,
			X:    v.x,
			Y:    v.y,
			Kind: cell.Kind,
		})

		// Tiles are destroyed but never propagate; bombs enqueue all
		// eight neighbors at the next blast distance.
		if cell.Kind != KindBomb {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := v.x+dx, v.y+dy
				if b.inBounds(nx, ny) {
					queue = append(queue, visit{nx, ny, v.dist + 1})
				}
			}
		}
	}

	return removed
}

// ApplyGravity compacts every column toward the bottom, preserving the
// relative order of the remaining cells, and returns how many rows each
// moved cell fell. Cells that did not move are absent from the map, so a
// second call with no intervening mutation returns an empty map.
func (b *Board) ApplyGravity() map[uint64]int {
	dists := make(map[uint64]int)
	for x := range b.cells {
		blanks := 0
		for y := b.height - 1; y >= 0; y-- {
			cell := b.cells[x][y]
			if cell == nil {
				blanks++
				continue
			}
			if blanks > 0 {
				b.cells[x][y+blanks] = cell
				b.cells[x][y] = nil
				dists[cell.ID] = blanks
			}
		}
	}
	return dists
}

// Feed pushes a new row in from the bottom: in every column the topmost
// cell is discarded, the remainder shifts one row up and a freshly minted
// cell of the given kind enters at the bottom. Column length is invariant.
// The inserted cells are returned in column order.
//
// The row must have exactly Width entries; anything else is a programming
// error.
func (b *Board) Feed(row []Kind) []Cell {
	if len(row) != b.width {
		panic("core: fed row width does not match board width")
	}

	fed := make([]Cell, b.width)
	for x := 0; x < b.width; x++ {
		copy(b.cells[x], b.cells[x][1:])
		cell := &Cell{ID: b.nextID, Kind: row[x]}
		b.nextID++
		b.cells[x][b.height-1] = cell
		fed[x] = *cell
	}
	return fed
}

// IsFilled reports whether any column's topmost slot is occupied, the
// terminal condition for the board. Only row 0 is considered.
func (b *Board) IsFilled() bool {
	for x := range b.cells {
		if b.cells[x][0] != nil {
			return true
		}
	}
	return false
}

// Clear empties the whole board. The id counter is not reset: identities
// stay unique across a reset so in-flight animations never collide with
// cells of the next phase.
func (b *Board) Clear() {
	for x := range b.cells {
		for y := range b.cells[x] {
			b.cells[x][y] = nil
		}
	}
}
