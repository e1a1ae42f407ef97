package blast

import (
	"fmt"
	"math/rand"

	"github.com/tuigames/blastgrid/internal/anim"
	"github.com/tuigames/blastgrid/internal/games/blast/core"
)

// singleFrequency maps a section to how many double-bomb rows are fed
// between two single-bomb rows. Early sections never feed singles; later
// sections starve the board of bombs.
var singleFrequency = [10]int{9999, 9, 8, 7, 6, 5, 4, 3, 2, 2}

// hardState carries the hard mode progression: levels climb with every
// feed and every defused bomb, sections tighten the bomb supply, and each
// section change sweeps the board clean.
type hardState struct {
	spread     *core.SpreadGenerator
	level      int
	levelLimit int
	quota      int // levels per section
	section    int

	untilSingle int
	frequency   int

	started   bool
	levelUp   bool
	timer     *levelTimer
	timerView *anim.FrameAnimator[string]
}

func newHardState(width int, rng *rand.Rand) *hardState {
	timer := newLevelTimer(anim.FramesPerSecond)
	return &hardState{
		spread:      core.NewSpreadGenerator(width, rng),
		levelLimit:  opts.LevelLimit,
		quota:       opts.LevelQuota,
		untilSingle: 9999,
		frequency:   9999,
		timer:       timer,
		timerView:   anim.NewFrameAnimator[string](timer),
	}
}

// nextRow advances the level and yields a single- or double-bomb row
// according to the current section's cadence. The level stalls one short
// of a section boundary so only defused bombs can cross it.
func (h *hardState) nextRow() []core.Kind {
	if h.level%h.quota != h.quota-1 && h.level != h.levelLimit-1 {
		h.level++
	}

	row := make([]core.Kind, h.spread.Width())
	if h.untilSingle == 0 {
		h.untilSingle = h.frequency - 1
		row[h.spread.NextSingle()] = core.KindBomb
		return row
	}

	a, b := h.spread.NextDouble()
	row[a] = core.KindBomb
	row[b] = core.KindBomb
	h.untilSingle--
	return row
}

// onRemoved credits defused bombs toward the level and handles section
// promotion: the board is swept clean and the bomb spread starts over.
func (h *hardState) onRemoved(g *Game, bombs int) {
	h.level += bombs
	section := h.level / h.quota
	if section > 9 {
		section = 9
	}

	if section > h.section {
		h.section = section
		h.frequency = singleFrequency[section]
		h.untilSingle = h.frequency
		h.levelUp = true
		g.board.Reset()
		h.spread.Reset()
	}
}

// animate drives the hard mode clocks. The first row is fed once the
// pre-game countdown elapses; the timer freezes when the game has ended
// and the last animation has settled.
func (h *hardState) animate(g *Game) {
	if !g.isOver() || g.board.IsAnimating() {
		h.timerView.Animate()
	}
	if !h.started && h.timer.Started() {
		h.started = true
		g.board.Feed(g.nextRow())
	}
}

// takeLevelUp reports a pending section promotion exactly once.
func (h *hardState) takeLevelUp() bool {
	up := h.levelUp
	h.levelUp = false
	return up
}

// elapsed returns the formatted play time for the HUD.
func (h *hardState) elapsed() string {
	return h.timerView.Frame()
}

// levelTimer counts play time in virtual frames after an initial
// countdown. Sampling formats it as MM:SS:CC.
type levelTimer struct {
	preFrames int
	elapsed   int
}

func newLevelTimer(preFrames int) *levelTimer {
	return &levelTimer{preFrames: preFrames}
}

// Started reports whether the countdown has elapsed.
func (t *levelTimer) Started() bool {
	return t.elapsed >= t.preFrames
}

func (t *levelTimer) AdvanceFrames(frames int) {
	t.elapsed += frames
}

func (t *levelTimer) CurrentFrame() string {
	frames := t.elapsed - t.preFrames
	if frames < 0 {
		frames = 0
	}
	centis := frames % 60 * 100 / 60
	seconds := frames / 60 % 60
	minutes := frames / 3600 % 60
	return fmt.Sprintf("%02d:%02d:%02d", minutes, seconds, centis)
}

func (t *levelTimer) IsOver() bool {
	return false
}
