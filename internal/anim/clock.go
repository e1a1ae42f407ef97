package anim

import "time"

// FramesPerSecond is the fixed virtual frame rate every FrameAnimator
// converts wall-clock time into.
const FramesPerSecond = 60

// FrameAnimator drives an animation from real time. Each Animate call reads
// the clock, converts the total elapsed time into a cumulative virtual frame
// count and advances the wrapped animation by the positive delta since the
// previous call. Irregular host callback timing therefore never causes drift:
// a late tick advances by exactly the frames that truly elapsed, and a
// zero-delta tick has no side effects.
type FrameAnimator[T any] struct {
	beginAt       time.Time
	elapsedFrames int
	now           func() time.Time

	// Animation is the wrapped schedule. Hosts may reach through to push
	// new entries between ticks.
	Animation Animation[T]
}

// NewFrameAnimator wraps an animation and captures the current time as the
// playback origin.
func NewFrameAnimator[T any](animation Animation[T]) *FrameAnimator[T] {
	return newFrameAnimator(animation, time.Now)
}

func newFrameAnimator[T any](animation Animation[T], now func() time.Time) *FrameAnimator[T] {
	return &FrameAnimator[T]{
		beginAt:   now(),
		now:       now,
		Animation: animation,
	}
}

// Animate advances the wrapped animation by the number of virtual frames
// elapsed since the last call.
func (f *FrameAnimator[T]) Animate() {
	elapsed := f.now().Sub(f.beginAt)
	frames := int(elapsed.Milliseconds() * FramesPerSecond / 1000)
	delta := frames - f.elapsedFrames
	f.elapsedFrames = frames

	if delta > 0 {
		f.Animation.AdvanceFrames(delta)
	}
}

// Frame samples the wrapped animation without advancing it.
func (f *FrameAnimator[T]) Frame() T {
	return f.Animation.CurrentFrame()
}
