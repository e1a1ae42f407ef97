package blast

import (
	"math/rand"

	"github.com/tuigames/blastgrid/internal/anim"
	platformcore "github.com/tuigames/blastgrid/internal/core"
	"github.com/tuigames/blastgrid/internal/games/blast/core"
	"github.com/tuigames/blastgrid/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeNormal Mode = "normal"
	ModeHard   Mode = "hard"
)

// Options holds the tunables the platform can override before Reset,
// typically from the YAML game config.
type Options struct {
	Width      int // board width in columns
	Height     int // board height in rows
	BombLimit  int // normal mode: bombs to defuse before the game is won
	LevelLimit int // hard mode: level at which the game is won
	LevelQuota int // hard mode: levels per section
}

// DefaultOptions returns the original game constants.
func DefaultOptions() Options {
	return Options{
		Width:      core.DefaultWidth,
		Height:     core.DefaultHeight,
		BombLimit:  999,
		LevelLimit: 999,
		LevelQuota: 100,
	}
}

var opts = DefaultOptions()

// Configure overrides the game tunables. Called by the platform before
// games are instantiated; zero fields keep their defaults. The width needs
// at least 2 columns to hold a two-bomb row, narrower values fall back to
// the default.
func Configure(o Options) {
	d := DefaultOptions()
	if o.Width < 2 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.BombLimit <= 0 {
		o.BombLimit = d.BombLimit
	}
	if o.LevelLimit <= 0 {
		o.LevelLimit = d.LevelLimit
	}
	if o.LevelQuota <= 0 {
		o.LevelQuota = d.LevelQuota
	}
	opts = o
}

// Game implements the falling-block elimination puzzle. A detonation
// removes a chain of bombs, the survivors settle, and a fresh row is fed
// in from the bottom. The game ends when a column reaches the top row.
type Game struct {
	mode Mode
	cfg  platformcore.RuntimeConfig
	rng  *rand.Rand
	tick uint64

	width  int
	height int
	board  *AnimatedBoard

	// Normal mode feeds two bombs per row from a fair cycle bag.
	pairs        *core.PairGenerator
	bombsRemoved int
	bombsLimit   int

	// Hard mode state lives in hard.go.
	hard *hardState

	score     int
	scoreAnim *NumberAnimator
	scoreView *anim.FrameAnimator[int]

	cursorX int
	cursorY int

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool

	// Last sampled animation frame, drawn by Render.
	frameCells  []FloatingCell
	frameSounds []Sound
}

// New creates a new normal mode game.
func New() *Game {
	return &Game{mode: ModeNormal}
}

// NewHard creates a new hard mode game.
func NewHard() *Game {
	return &Game{mode: ModeHard}
}

func init() {
	registry.Register("blast", func() registry.Game {
		return New()
	})
	registry.Register("blast_hard", func() registry.Game {
		return NewHard()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeHard {
		return "blast_hard"
	}
	return "blast"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeHard {
		return "Blast Grid (Hard)"
	}
	return "Blast Grid"
}

// Reset initializes/restarts the game. All in-flight animation state is
// discarded with the old board; restart always starts from a clean slate.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.bombsRemoved = 0
	g.bombsLimit = opts.BombLimit
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false

	g.width = opts.Width
	g.height = opts.Height
	g.board = NewAnimatedBoard(g.width, g.height)

	g.cursorX = g.width / 2
	g.cursorY = g.height / 2

	g.scoreAnim = NewNumberAnimator(0)
	g.scoreView = anim.NewFrameAnimator[int](g.scoreAnim)

	g.frameCells = nil
	g.frameSounds = nil

	switch g.mode {
	case ModeHard:
		g.pairs = nil
		g.hard = newHardState(g.width, g.rng)
	default:
		g.pairs = core.NewPairGenerator(g.width, g.rng)
		g.hard = nil
		g.board.Feed(g.nextRow())
	}

	g.checkScreenSize()
}

// nextRow builds the row of kinds for the next feed.
func (g *Game) nextRow() []core.Kind {
	if g.mode == ModeHard {
		return g.hard.nextRow()
	}

	row := make([]core.Kind, g.width)
	a, b := g.pairs.Next()
	row[a] = core.KindBomb
	row[b] = core.KindBomb
	return row
}

// isOver reports whether play has ended. Feeding stops; the board keeps
// animating until in-flight effects settle.
func (g *Game) isOver() bool {
	if g.mode == ModeHard {
		return g.board.IsFilled() || g.hard.level >= g.hard.levelLimit
	}
	return g.board.IsFilled() || g.bombsRemoved >= g.bombsLimit
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := g.width*cellWidth + 2
	minH := g.height + 2 + hudHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionRestart) && g.isOver() && !g.board.IsAnimating() {
		g.restart()
		return platformcore.StepResult{State: g.State()}
	}

	g.handleCursor(in)
	if x, y, ok := g.detonationTarget(in); ok {
		g.detonate(x, y)
	}

	// Board reactions above are enqueued before the clock advances, so a
	// fresh animation is sampled from this very tick with zero elapsed time.
	g.board.Animate()
	g.scoreView.Animate()
	if g.mode == ModeHard {
		g.hard.animate(g)
	}
	g.frameCells, g.frameSounds = g.board.Frame()

	var sounds []string
	for _, s := range g.frameSounds {
		sounds = append(sounds, s.String())
	}
	if g.mode == ModeHard && g.hard.takeLevelUp() {
		sounds = append(sounds, SoundLevelUp.String())
	}

	return platformcore.StepResult{State: g.State(), Sounds: sounds}
}

// restart discards the whole controller state and begins a new game with
// a fresh random stream.
func (g *Game) restart() {
	cfg := g.cfg
	cfg.Seed = g.rng.Int63()
	g.Reset(cfg)
}

// handleCursor moves the selection cursor within board bounds.
func (g *Game) handleCursor(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionUp) {
		g.cursorY--
	}
	if in.Has(platformcore.ActionDown) {
		g.cursorY++
	}
	if in.Has(platformcore.ActionLeft) {
		g.cursorX--
	}
	if in.Has(platformcore.ActionRight) {
		g.cursorX++
	}
	g.cursorX = platformcore.Clamp(g.cursorX, 0, g.width-1)
	g.cursorY = platformcore.Clamp(g.cursorY, 0, g.height-1)
}

// detonationTarget resolves this frame's detonation request, if any.
// Mouse clicks inside the board both move the cursor and detonate.
func (g *Game) detonationTarget(in platformcore.InputFrame) (int, int, bool) {
	if in.HasClick {
		if x, y, ok := g.cellAt(in.ClickX, in.ClickY); ok {
			g.cursorX, g.cursorY = x, y
			return x, y, true
		}
	}
	if in.Has(platformcore.ActionDetonate) {
		return g.cursorX, g.cursorY, true
	}
	return 0, 0, false
}

// detonate removes the chain at (x, y) and, on success, settles the board
// and feeds the next row. After the game ends a further detonation
// restarts once the last animation has settled.
func (g *Game) detonate(x, y int) {
	if g.isOver() {
		if !g.board.IsAnimating() {
			g.restart()
		}
		return
	}

	removed, bombs := g.board.Remove(x, y)
	if removed == 0 {
		return
	}

	g.score += (removed + 1) * removed / 2
	g.scoreAnim.SetTarget(g.score)
	g.bombsRemoved += bombs

	if g.mode == ModeHard {
		g.hard.onRemoved(g, bombs)
	}

	g.board.ApplyGravity()
	g.board.Feed(g.nextRow())
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	level := 0
	if g.mode == ModeHard {
		level = g.hard.level
	}
	return platformcore.GameState{
		Score:    g.score,
		Level:    level,
		GameOver: g.isOver() && !g.board.IsAnimating(),
		Paused:   g.paused || g.tooSmall,
	}
}
