package blast

import "github.com/tuigames/blastgrid/internal/games/blast/core"

// CellSnapshot is the position and identity of one settled board cell.
type CellSnapshot struct {
	ID   uint64
	X    int
	Y    int
	Bomb bool
}

// Snapshot contains the complete settled game state. Uses primitive types
// only for stable serialization; animation state is intentionally absent
// since it is derived and cannot be transferred.
type Snapshot struct {
	Tick         uint64
	Mode         string
	Score        int
	Level        int
	BombsRemoved int
	CursorX      int
	CursorY      int
	GameOver     bool
	Cells        []CellSnapshot
}

// Snapshot returns the current settled state. Cells are listed in
// column-major board order, so equal states produce equal snapshots.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Score:        g.score,
		BombsRemoved: g.bombsRemoved,
		CursorX:      g.cursorX,
		CursorY:      g.cursorY,
		GameOver:     g.isOver() && !g.board.IsAnimating(),
	}
	if g.mode == ModeHard {
		snap.Level = g.hard.level
	}

	g.board.Board().Each(func(x, y int, cell core.Cell) {
		snap.Cells = append(snap.Cells, CellSnapshot{
			ID:   cell.ID,
			X:    x,
			Y:    y,
			Bomb: cell.Kind == core.KindBomb,
		})
	})
	return snap
}
