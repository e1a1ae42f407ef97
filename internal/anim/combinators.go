package anim

// Group runs a set of animations in parallel and samples them all.
// The sample order is the insertion order and stays stable for the whole
// lifetime of the group.
type Group[T any] struct {
	members []Animation[T]
}

// NewGroup creates a parallel group over the given animations.
func NewGroup[T any](members []Animation[T]) *Group[T] {
	return &Group[T]{members: members}
}

func (g *Group[T]) AdvanceFrames(frames int) {
	for _, m := range g.members {
		m.AdvanceFrames(frames)
	}
}

func (g *Group[T]) CurrentFrame() []T {
	frame := make([]T, 0, len(g.members))
	for _, m := range g.members {
		frame = append(frame, m.CurrentFrame())
	}
	return frame
}

// IsOver reports true once every member is over. An empty group is over.
func (g *Group[T]) IsOver() bool {
	for _, m := range g.members {
		if !m.IsOver() {
			return false
		}
	}
	return true
}

// Zip runs two differently-typed animations in lockstep and samples them
// as a pair. It is over once both halves are over.
type Zip[A, B any] struct {
	first  Animation[A]
	second Animation[B]
}

// NewZip pairs two animations.
func NewZip[A, B any](first Animation[A], second Animation[B]) *Zip[A, B] {
	return &Zip[A, B]{first: first, second: second}
}

func (z *Zip[A, B]) AdvanceFrames(frames int) {
	z.first.AdvanceFrames(frames)
	z.second.AdvanceFrames(frames)
}

func (z *Zip[A, B]) CurrentFrame() Pair[A, B] {
	return Pair[A, B]{
		First:  z.first.CurrentFrame(),
		Second: z.second.CurrentFrame(),
	}
}

func (z *Zip[A, B]) IsOver() bool {
	return z.first.IsOver() && z.second.IsOver()
}

// Chain plays animations back to back. Only the active animation advances;
// when it finishes mid-call the remaining frame budget flows into the next
// one, so no frames are lost across the seam.
type Chain[T any] struct {
	pending []Animation[T]
}

// NewChain concatenates the given animations.
func NewChain[T any](animations []Animation[T]) *Chain[T] {
	return &Chain[T]{pending: animations}
}

func (c *Chain[T]) AdvanceFrames(frames int) {
	for range frames {
		if len(c.pending) == 0 {
			break
		}
		c.pending[0].AdvanceFrames(1)

		// Keep the last animation around even when over so the chain
		// still has a frame to sample.
		for len(c.pending) >= 2 && c.pending[0].IsOver() {
			c.pending = c.pending[1:]
		}
	}
}

func (c *Chain[T]) CurrentFrame() T {
	return c.pending[0].CurrentFrame()
}

func (c *Chain[T]) IsOver() bool {
	return c.pending[0].IsOver()
}

// Stream is a serial FIFO of animations. The head advances one frame at a
// time; as soon as it is over it is discarded and the remaining frames of
// the same AdvanceFrames call flow into the new head. An idle stream yields
// an absent sample.
type Stream[T any] struct {
	pending []Animation[T]
}

// NewStream creates an empty serial queue.
func NewStream[T any]() *Stream[T] {
	return &Stream[T]{}
}

// Push appends an animation to the queue. An already-finished animation is
// ignored: it would contribute a zero-length phantom step.
func (s *Stream[T]) Push(a Animation[T]) {
	if a.IsOver() {
		return
	}
	s.pending = append(s.pending, a)
}

func (s *Stream[T]) AdvanceFrames(frames int) {
	for range frames {
		if len(s.pending) == 0 {
			break
		}
		s.pending[0].AdvanceFrames(1)
		if s.pending[0].IsOver() {
			s.pending = s.pending[1:]
		}
	}
}

func (s *Stream[T]) CurrentFrame() Maybe[T] {
	if len(s.pending) == 0 {
		return Maybe[T]{}
	}
	return Some(s.pending[0].CurrentFrame())
}

func (s *Stream[T]) IsOver() bool {
	return len(s.pending) == 0
}

// Endless is an unbounded pool of concurrently running animations.
// Finished members are pruned after every advance; the order of the
// remaining members carries no meaning.
//
// IsOver always reports true, so an Endless pool must never be nested
// inside a Chain or Stream. It is meant to be owned and driven directly
// by a host (a particle layer sampled every tick).
type Endless[T any] struct {
	running []Animation[T]
}

// NewEndless creates a pool seeded with the given animations.
func NewEndless[T any](animations []Animation[T]) *Endless[T] {
	return &Endless[T]{running: animations}
}

// Push inserts a new member into the pool.
func (e *Endless[T]) Push(a Animation[T]) {
	e.running = append(e.running, a)
}

func (e *Endless[T]) AdvanceFrames(frames int) {
	for _, a := range e.running {
		a.AdvanceFrames(frames)
	}
	alive := e.running[:0]
	for _, a := range e.running {
		if !a.IsOver() {
			alive = append(alive, a)
		}
	}
	e.running = alive
}

func (e *Endless[T]) CurrentFrame() []T {
	frame := make([]T, 0, len(e.running))
	for _, a := range e.running {
		frame = append(frame, a.CurrentFrame())
	}
	return frame
}

func (e *Endless[T]) IsOver() bool {
	return true
}

// Burst delivers a payload exactly once: the first CurrentFrame drains it,
// after which the burst is over. Used to hand one-shot side effects (particle
// spawns) through a Zip without them repeating on every sample.
type Burst[T any] struct {
	payload []T
}

// NewBurst creates a burst holding the given items. An empty burst is
// immediately over.
func NewBurst[T any](payload []T) *Burst[T] {
	return &Burst[T]{payload: payload}
}

func (b *Burst[T]) AdvanceFrames(frames int) {}

func (b *Burst[T]) CurrentFrame() []T {
	payload := b.payload
	b.payload = nil
	return payload
}

func (b *Burst[T]) IsOver() bool {
	return len(b.payload) == 0
}
