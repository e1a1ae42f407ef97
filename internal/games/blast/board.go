package blast

import (
	"sort"

	"github.com/tuigames/blastgrid/internal/anim"
	platformcore "github.com/tuigames/blastgrid/internal/core"
	"github.com/tuigames/blastgrid/internal/games/blast/core"
)

// particleColors cycles with blast distance so each ring of a chain reaction
// flashes its own color.
var particleColors = [7]platformcore.Color{
	platformcore.ColorBrightRed,
	platformcore.ColorOrange,
	platformcore.ColorBrightYellow,
	platformcore.ColorBrightGreen,
	platformcore.ColorBrightCyan,
	platformcore.ColorBrightBlue,
	platformcore.ColorBrightMagenta,
}

// particleIDOffset keeps particle ids out of the cell id space, so a
// particle and the cell that spawned it never collide in renderer keys.
const particleIDOffset = 1_000_000

// boardFrame is one sample of the board's animation stream: the floating
// cells with their due sound cues, plus any particle animators the step
// hands off to the particle pool when it starts playing.
type boardFrame = anim.Pair[anim.Pair[[]FloatingCell, []Sound], []*ParticleAnimator]

// AnimatedBoard wraps the grid engine and translates every board transition
// into animation steps. Steps queue up in a serial stream so that a removal,
// the gravity settle and the next feed play back one after another even when
// they were computed in the same tick; particles run concurrently in their
// own unbounded pool.
type AnimatedBoard struct {
	board *core.Board

	stream   *anim.Stream[boardFrame]
	animator *anim.FrameAnimator[anim.Maybe[boardFrame]]

	pool      *anim.Endless[FloatingParticle]
	particles *anim.FrameAnimator[[]FloatingParticle]
}

// NewAnimatedBoard creates an idle animated board of the given dimensions.
func NewAnimatedBoard(width, height int) *AnimatedBoard {
	stream := anim.NewStream[boardFrame]()
	pool := anim.NewEndless[FloatingParticle](nil)
	return &AnimatedBoard{
		board:     core.NewBoard(width, height),
		stream:    stream,
		animator:  anim.NewFrameAnimator[anim.Maybe[boardFrame]](stream),
		pool:      pool,
		particles: anim.NewFrameAnimator[[]FloatingParticle](pool),
	}
}

// Board exposes the underlying grid engine for read access.
func (b *AnimatedBoard) Board() *core.Board {
	return b.board
}

// IsFilled reports the engine's terminal condition.
func (b *AnimatedBoard) IsFilled() bool {
	return b.board.IsFilled()
}

// IsAnimating reports whether queued animation steps are still playing.
func (b *AnimatedBoard) IsAnimating() bool {
	return !b.stream.IsOver()
}

// push queues one animation step: cell movements zipped with their sound
// cues and the particles to spawn when the step begins.
func (b *AnimatedBoard) push(cells []anim.Animation[FloatingCell], sounds []SoundEvent, particles []*ParticleAnimator) {
	step := anim.NewZip[anim.Pair[[]FloatingCell, []Sound], []*ParticleAnimator](
		anim.NewZip[[]FloatingCell, []Sound](anim.NewGroup(cells), NewSoundPlayer(sounds)),
		anim.NewBurst(particles),
	)
	b.stream.Push(step)
}

// Feed pushes a new row into the engine and queues the slide-up animation:
// every cell glides from one row below its new position over ten frames,
// with a feed cue and, if the board just filled up, a stuck cue.
func (b *AnimatedBoard) Feed(row []core.Kind) {
	b.board.Feed(row)

	var cells []anim.Animation[FloatingCell]
	b.board.Each(func(x, y int, cell core.Cell) {
		cells = append(cells, NewCellAnimator(
			cell.ID,
			float64(x),
			Span{From: float64(y + 1), To: float64(y)},
			Span{From: 1, To: 1},
			0, 10,
			cell.Kind,
		))
	})

	sounds := []SoundEvent{{Frame: 3, Sound: SoundFeed}}
	if b.board.IsFilled() {
		sounds = append(sounds, SoundEvent{Frame: 10, Sound: SoundStuck})
	}

	b.push(cells, sounds, nil)
}

// Remove detonates (x, y) and queues the blast animation: surviving cells
// hold still for a frame while each destroyed cell fades out with a delay
// proportional to its blast distance, a particle flashes where it stood and
// break cues fire once per blast ring. Returns the number of removed cells
// and how many of them were bombs.
func (b *AnimatedBoard) Remove(x, y int) (removed, bombs int) {
	dists := b.board.Remove(x, y)
	if len(dists) == 0 {
		return 0, 0
	}

	particles := make([]*ParticleAnimator, 0, len(dists))
	for _, d := range dists {
		color := platformcore.ColorBrightWhite
		expansion := Span{From: 0, To: 1}
		duration := 10
		if d.Kind == core.KindBomb {
			color = particleColors[d.Dist%len(particleColors)]
			expansion = Span{From: 0, To: 3}
			duration = 40
		}
		particles = append(particles, NewParticleAnimator(
			d.ID+particleIDOffset,
			color,
			d.Kind,
			float64(d.X), float64(d.Y),
			expansion,
			Span{From: 1, To: 0},
			d.Dist*3,
			duration,
		))
	}

	var cells []anim.Animation[FloatingCell]
	b.board.Each(func(cx, cy int, cell core.Cell) {
		cells = append(cells, NewCellAnimator(
			cell.ID,
			float64(cx),
			Span{From: float64(cy), To: float64(cy)},
			Span{From: 1, To: 1},
			0, 1,
			cell.Kind,
		))
	})
	for _, d := range dists {
		cells = append(cells, NewCellAnimator(
			d.ID,
			float64(d.X),
			Span{From: float64(d.Y), To: float64(d.Y)},
			Span{From: 1, To: 0},
			d.Dist*3,
			10,
			d.Kind,
		))
	}

	var sounds []SoundEvent
	seen := make(map[int]bool)
	for _, d := range dists {
		if d.Kind != core.KindBomb && d.Dist != 0 {
			continue
		}
		frame := d.Dist * 3
		if seen[frame] {
			continue
		}
		seen[frame] = true
		sounds = append(sounds, SoundEvent{Frame: frame, Sound: SoundBreak})
	}
	sort.Slice(sounds, func(i, j int) bool { return sounds[i].Frame < sounds[j].Frame })

	b.push(cells, sounds, particles)

	for _, d := range dists {
		if d.Kind == core.KindBomb {
			bombs++
		}
	}
	return len(dists), bombs
}

// ApplyGravity settles the engine and queues the fall animation: each moved
// cell drops from its old row over five frames per row fallen, and a fall
// cue lands once per distinct fall distance as that distance settles.
func (b *AnimatedBoard) ApplyGravity() {
	dists := b.board.ApplyGravity()

	var cells []anim.Animation[FloatingCell]
	b.board.Each(func(x, y int, cell core.Cell) {
		dist := dists[cell.ID]
		cells = append(cells, NewCellAnimator(
			cell.ID,
			float64(x),
			Span{From: float64(y - dist), To: float64(y)},
			Span{From: 1, To: 1},
			0, dist*5+1,
			cell.Kind,
		))
	})

	distinct := make(map[int]bool)
	for _, dist := range dists {
		distinct[dist] = true
	}
	sounds := make([]SoundEvent, 0, len(distinct))
	for dist := range distinct {
		sounds = append(sounds, SoundEvent{Frame: dist*5 + 1, Sound: SoundFall})
	}
	sort.Slice(sounds, func(i, j int) bool { return sounds[i].Frame < sounds[j].Frame })

	b.push(cells, sounds, nil)
}

// Reset queues a sweep that fades the whole board out row by row, bottom
// row last, with a particle for every cell, then clears the engine. Used on
// hard-mode phase transitions and on restart after a stuck board.
func (b *AnimatedBoard) Reset() {
	var cells []anim.Animation[FloatingCell]
	var particles []*ParticleAnimator

	height := b.board.Height()
	b.board.Each(func(x, y int, cell core.Cell) {
		delay := (height - y - 1) * 10
		cells = append(cells, NewCellAnimator(
			cell.ID,
			float64(x),
			Span{From: float64(y), To: float64(y)},
			Span{From: 1, To: 0},
			delay,
			10,
			cell.Kind,
		))

		color := platformcore.ColorBrightWhite
		expansion := Span{From: 0, To: 1}
		duration := 10
		if cell.Kind == core.KindBomb {
			color = particleColors[(height-y-1)%len(particleColors)]
			expansion = Span{From: 0, To: 3}
			duration = 40
		}
		particles = append(particles, NewParticleAnimator(
			cell.ID+particleIDOffset,
			color,
			cell.Kind,
			float64(x), float64(y),
			expansion,
			Span{From: 1, To: 0},
			delay,
			duration,
		))
	})

	b.push(cells, nil, particles)
	b.board.Clear()
}

// Animate advances both the step stream and the particle pool by the real
// time elapsed since the previous call.
func (b *AnimatedBoard) Animate() {
	b.animator.Animate()
	b.particles.Animate()
}

// Frame samples the current animation step: the floating cells to draw and
// the sound cues that came due. While the stream is idle it falls back to a
// static snapshot of the engine grid. Particles attached to the sampled step
// are handed to the particle pool as a side effect.
func (b *AnimatedBoard) Frame() ([]FloatingCell, []Sound) {
	sample := b.animator.Frame()
	if !sample.Ok {
		var cells []FloatingCell
		b.board.Each(func(x, y int, cell core.Cell) {
			cells = append(cells, FloatingCell{
				ID:      cell.ID,
				X:       float64(x),
				Y:       float64(y),
				Kind:    cell.Kind,
				Opacity: 1,
			})
		})
		return cells, nil
	}

	for _, p := range sample.Value.Second {
		b.pool.Push(p)
	}
	return sample.Value.First.First, sample.Value.First.Second
}

// Particles samples the particle pool.
func (b *AnimatedBoard) Particles() []FloatingParticle {
	return b.particles.Frame()
}
