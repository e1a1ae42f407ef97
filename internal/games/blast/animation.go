package blast

import (
	"sort"

	platformcore "github.com/tuigames/blastgrid/internal/core"
	"github.com/tuigames/blastgrid/internal/games/blast/core"
)

// FloatingCell is the point-in-time visual sample of one board cell:
// grid-space coordinates (fractional while the cell is in motion) plus
// opacity. The ID ties the sample back to the engine cell it animates.
type FloatingCell struct {
	ID      uint64
	X       float64
	Y       float64
	Kind    core.Kind
	Opacity float64
}

// FloatingParticle is the visual sample of one blast particle.
type FloatingParticle struct {
	ID        uint64
	Color     platformcore.Color
	Kind      core.Kind
	X         float64
	Y         float64
	Expansion float64
	Opacity   float64
}

// Sound identifies an audio cue emitted by the board. The platform layer
// decides how (or whether) to realize it.
type Sound uint8

const (
	SoundBreak Sound = iota
	SoundFall
	SoundFeed
	SoundStuck
	SoundLevelUp
)

// String returns the cue identifier used by the platform layer.
func (s Sound) String() string {
	switch s {
	case SoundBreak:
		return "break"
	case SoundFall:
		return "fall"
	case SoundFeed:
		return "feed"
	case SoundStuck:
		return "stuck"
	case SoundLevelUp:
		return "levelup"
	default:
		return "unknown"
	}
}

// Span is a (from, to) value pair interpolated over an animation's duration.
type Span struct {
	From, To float64
}

func (s Span) at(t float64) float64 {
	return s.From*(1-t) + s.To*t
}

// CellAnimator linearly interpolates a cell's row position and opacity over
// a fixed duration, after an optional delay during which elapsed frames
// contribute nothing. The column never changes: cells only move vertically.
type CellAnimator struct {
	id       uint64
	x        float64
	y        Span
	opacity  Span
	delay    int
	duration int
	elapsed  int
	kind     core.Kind
}

// NewCellAnimator creates a cell animation. A non-positive duration would
// break the done contract and is rejected outright.
func NewCellAnimator(id uint64, x float64, y, opacity Span, delay, duration int, kind core.Kind) *CellAnimator {
	if duration <= 0 {
		panic("blast: cell animation duration must be positive")
	}
	return &CellAnimator{
		id:       id,
		x:        x,
		y:        y,
		opacity:  opacity,
		delay:    delay,
		duration: duration,
		kind:     kind,
	}
}

func (c *CellAnimator) AdvanceFrames(frames int) {
	c.elapsed += frames
}

func (c *CellAnimator) CurrentFrame() FloatingCell {
	t := relativeTime(c.elapsed, c.delay, c.duration)
	return FloatingCell{
		ID:      c.id,
		X:       c.x,
		Y:       c.y.at(t),
		Kind:    c.kind,
		Opacity: c.opacity.at(t),
	}
}

func (c *CellAnimator) IsOver() bool {
	return c.delay+c.duration <= c.elapsed
}

// ParticleAnimator interpolates a blast particle's expansion and opacity.
type ParticleAnimator struct {
	id        uint64
	color     platformcore.Color
	kind      core.Kind
	x         float64
	y         float64
	expansion Span
	opacity   Span
	delay     int
	duration  int
	elapsed   int
}

// NewParticleAnimator creates a particle animation at a fixed board position.
func NewParticleAnimator(id uint64, color platformcore.Color, kind core.Kind, x, y float64, expansion, opacity Span, delay, duration int) *ParticleAnimator {
	if duration <= 0 {
		panic("blast: particle animation duration must be positive")
	}
	return &ParticleAnimator{
		id:        id,
		color:     color,
		kind:      kind,
		x:         x,
		y:         y,
		expansion: expansion,
		opacity:   opacity,
		delay:     delay,
		duration:  duration,
	}
}

func (p *ParticleAnimator) AdvanceFrames(frames int) {
	p.elapsed += frames
}

func (p *ParticleAnimator) CurrentFrame() FloatingParticle {
	t := relativeTime(p.elapsed, p.delay, p.duration)
	return FloatingParticle{
		ID:        p.id,
		Color:     p.color,
		Kind:      p.kind,
		X:         p.x,
		Y:         p.y,
		Expansion: p.expansion.at(t),
		Opacity:   p.opacity.at(t),
	}
}

func (p *ParticleAnimator) IsOver() bool {
	return p.delay+p.duration <= p.elapsed
}

// relativeTime maps elapsed frames to interpolation progress in [0, 1],
// clamping frames spent inside the delay window to zero contribution.
func relativeTime(elapsed, delay, duration int) float64 {
	progressed := elapsed - delay
	if progressed < 0 {
		progressed = 0
	}
	if progressed > duration {
		progressed = duration
	}
	return float64(progressed) / float64(duration)
}

// NumberAnimator eases a displayed number toward a mutable target with a
// one-pole low-pass filter. It never finishes: the on-screen score is meant
// to always be chasing the real score.
type NumberAnimator struct {
	target  int
	current int
}

// NewNumberAnimator creates an animator starting at zero.
func NewNumberAnimator(target int) *NumberAnimator {
	return &NumberAnimator{target: target}
}

// SetTarget changes the value the animator eases toward.
func (n *NumberAnimator) SetTarget(target int) {
	n.target = target
}

func (n *NumberAnimator) AdvanceFrames(frames int) {
	for range frames {
		n.current = (n.current*3 + n.target + 3) / 4
	}
}

func (n *NumberAnimator) CurrentFrame() int {
	return n.current
}

func (n *NumberAnimator) IsOver() bool {
	return false
}

// SoundEvent schedules a cue at a frame offset from the owning animation's
// start.
type SoundEvent struct {
	Frame int
	Sound Sound
}

// SoundPlayer drains scheduled cues into a ready buffer as frames elapse.
// Sampling hands the ready buffer over exactly once; a cue is never
// delivered twice even when sampling races ahead of advancing. The player
// is over once nothing is pending and nothing is waiting to be delivered.
type SoundPlayer struct {
	elapsed int
	pending []SoundEvent // sorted by frame, descending; popped from the end
	ready   []Sound
}

// NewSoundPlayer schedules the given cues. Cues due at frame zero are ready
// immediately.
func NewSoundPlayer(events []SoundEvent) *SoundPlayer {
	pending := make([]SoundEvent, len(events))
	copy(pending, events)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Frame > pending[j].Frame
	})
	p := &SoundPlayer{pending: pending}
	p.AdvanceFrames(0)
	return p
}

func (p *SoundPlayer) AdvanceFrames(frames int) {
	p.elapsed += frames
	for len(p.pending) > 0 {
		last := len(p.pending) - 1
		if p.pending[last].Frame > p.elapsed {
			break
		}
		p.ready = append(p.ready, p.pending[last].Sound)
		p.pending = p.pending[:last]
	}
}

func (p *SoundPlayer) CurrentFrame() []Sound {
	ready := p.ready
	p.ready = nil
	return ready
}

func (p *SoundPlayer) IsOver() bool {
	return len(p.pending) == 0 && len(p.ready) == 0
}
