// Package anim provides a generic frame-based animation framework.
// Animations advance in discrete virtual frames, can be sampled for their
// current value, and report when they are finished. Combinators compose
// animations into groups, chains, queues and pools without dynamic dispatch:
// everything is generic over the payload type it produces.
//
// No operation blocks. Time only enters the system through AdvanceFrames,
// so every animation is fully deterministic and testable frame by frame.
package anim

// Animation is the minimal scheduling contract. Implementations mutate
// internal elapsed state in AdvanceFrames, report a point-in-time sample
// from CurrentFrame, and signal completion through IsOver.
//
// Drain-style animations (sound sequencers, one-shot bursts) are allowed
// to consume their buffered value inside CurrentFrame; a consumed value is
// delivered exactly once.
type Animation[T any] interface {
	// AdvanceFrames moves the animation forward by the given number of
	// virtual frames. Advancing by zero is a no-op.
	AdvanceFrames(frames int)

	// CurrentFrame returns the animation's value at its current elapsed time.
	CurrentFrame() T

	// IsOver reports whether the animation has played out completely.
	IsOver() bool
}

// Constant is an animation that always yields the value produced by fn and
// is immediately over. Useful as a placeholder leg in a Zip.
type Constant[T any] struct {
	fn func() T
}

// NewConstant wraps fn into an always-finished animation.
func NewConstant[T any](fn func() T) *Constant[T] {
	return &Constant[T]{fn: fn}
}

func (c *Constant[T]) AdvanceFrames(frames int) {}

func (c *Constant[T]) CurrentFrame() T {
	return c.fn()
}

func (c *Constant[T]) IsOver() bool {
	return true
}

// Maybe is an optional animation sample. Combinators whose value can be
// absent (an idle Stream) yield Maybe frames instead of overloading the
// payload's zero value.
type Maybe[T any] struct {
	Value T
	Ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{Value: v, Ok: true}
}

// Pair is the frame produced by Zip: one sample from each half.
type Pair[A, B any] struct {
	First  A
	Second B
}
