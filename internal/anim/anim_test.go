package anim

import (
	"testing"
	"time"
)

// double is a test animation that yields twice its elapsed frame count and
// finishes after a fixed duration.
type double struct {
	elapsed  int
	duration int
}

func newDouble(duration int) *double {
	return &double{duration: duration}
}

func (d *double) AdvanceFrames(frames int) {
	d.elapsed += frames
}

func (d *double) CurrentFrame() int {
	return d.elapsed * 2
}

func (d *double) IsOver() bool {
	return d.elapsed >= d.duration
}

func TestGroupSamplesAllMembersInOrder(t *testing.T) {
	group := NewGroup([]Animation[int]{
		NewConstant(func() int { return 2 }),
		newDouble(5),
	})

	var frames [][]int
	for {
		frames = append(frames, group.CurrentFrame())
		group.AdvanceFrames(1)
		if group.IsOver() {
			break
		}
	}

	want := [][]int{{2, 0}, {2, 2}, {2, 4}, {2, 6}, {2, 8}}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d: %v", len(frames), len(want), frames)
	}
	for i, frame := range frames {
		if frame[0] != want[i][0] || frame[1] != want[i][1] {
			t.Errorf("frame %d = %v, want %v", i, frame, want[i])
		}
	}
}

func TestGroupIsOverOnlyWhenAllMembersAre(t *testing.T) {
	group := NewGroup([]Animation[int]{newDouble(2), newDouble(5)})

	group.AdvanceFrames(2)
	if group.IsOver() {
		t.Error("group reported over while a member is still running")
	}
	group.AdvanceFrames(3)
	if !group.IsOver() {
		t.Error("group did not report over after all members finished")
	}
}

func TestZipPairsSamples(t *testing.T) {
	z := NewZip[int, string](newDouble(3), NewConstant(func() string { return "x" }))

	z.AdvanceFrames(2)
	frame := z.CurrentFrame()
	if frame.First != 4 || frame.Second != "x" {
		t.Errorf("frame = (%d, %q), want (4, %q)", frame.First, frame.Second, "x")
	}
	if z.IsOver() {
		t.Error("zip over before first half finished")
	}
	z.AdvanceFrames(1)
	if !z.IsOver() {
		t.Error("zip not over after both halves finished")
	}
}

func TestChainHandsRemainingFramesToNext(t *testing.T) {
	chain := NewChain([]Animation[int]{newDouble(3), newDouble(4)})

	// 5 frames: 3 consumed by the first animation, 2 flow into the second
	// within the same call.
	chain.AdvanceFrames(5)
	if got := chain.CurrentFrame(); got != 4 {
		t.Errorf("frame after catch-up advance = %d, want 4", got)
	}
	if chain.IsOver() {
		t.Error("chain over with second animation still running")
	}
	chain.AdvanceFrames(2)
	if !chain.IsOver() {
		t.Error("chain not over after both animations finished")
	}
}

func TestStreamCatchUpEquivalence(t *testing.T) {
	build := func() *Stream[int] {
		s := NewStream[int]()
		s.Push(newDouble(3))
		s.Push(newDouble(5))
		s.Push(newDouble(2))
		return s
	}

	const frames = 7

	bulk := build()
	bulk.AdvanceFrames(frames)

	stepwise := build()
	for range frames {
		stepwise.AdvanceFrames(1)
	}

	got, want := bulk.CurrentFrame(), stepwise.CurrentFrame()
	if got.Ok != want.Ok || got.Value != want.Value {
		t.Errorf("bulk advance sample = %+v, stepwise = %+v", got, want)
	}
}

func TestStreamDiscardsFinishedHeadWithinOneCall(t *testing.T) {
	s := NewStream[int]()
	s.Push(newDouble(2))
	s.Push(newDouble(10))

	s.AdvanceFrames(5)

	frame := s.CurrentFrame()
	if !frame.Ok {
		t.Fatal("stream idle, want second animation active")
	}
	// 2 frames consumed by the head, 3 by the successor.
	if frame.Value != 6 {
		t.Errorf("frame = %d, want 6", frame.Value)
	}
}

func TestStreamRejectsFinishedAnimations(t *testing.T) {
	s := NewStream[int]()

	finished := newDouble(1)
	finished.AdvanceFrames(1)
	s.Push(finished)

	if !s.IsOver() {
		t.Error("stream accepted an already-finished animation")
	}
	if frame := s.CurrentFrame(); frame.Ok {
		t.Errorf("idle stream yielded %v, want absent", frame.Value)
	}
}

func TestEndlessPrunesFinishedMembers(t *testing.T) {
	pool := NewEndless([]Animation[int]{newDouble(2), newDouble(6)})
	pool.Push(newDouble(4))

	pool.AdvanceFrames(3)
	if got := pool.CurrentFrame(); len(got) != 2 {
		t.Errorf("pool kept %d members, want 2: %v", len(got), got)
	}

	pool.AdvanceFrames(10)
	if got := pool.CurrentFrame(); len(got) != 0 {
		t.Errorf("pool kept %d members, want 0: %v", len(got), got)
	}

	// The pool never chains: it must report over even while populated.
	pool.Push(newDouble(8))
	if !pool.IsOver() {
		t.Error("endless pool must always report over")
	}
}

func TestBurstDeliversPayloadOnce(t *testing.T) {
	b := NewBurst([]int{1, 2, 3})
	if b.IsOver() {
		t.Fatal("burst over before delivery")
	}
	if got := b.CurrentFrame(); len(got) != 3 {
		t.Fatalf("first sample = %v, want 3 items", got)
	}
	if got := b.CurrentFrame(); len(got) != 0 {
		t.Errorf("second sample = %v, want empty", got)
	}
	if !b.IsOver() {
		t.Error("burst not over after delivery")
	}
}

func TestFrameAnimatorAdvancesByElapsedTime(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	d := newDouble(1000)
	fa := newFrameAnimator[int](d, clock)

	// 100ms at 60fps = 6 frames.
	now = now.Add(100 * time.Millisecond)
	fa.Animate()
	if d.elapsed != 6 {
		t.Errorf("elapsed = %d frames after 100ms, want 6", d.elapsed)
	}

	// A long gap (backgrounded host) advances by exactly the missed frames.
	now = now.Add(1 * time.Second)
	fa.Animate()
	if d.elapsed != 66 {
		t.Errorf("elapsed = %d frames after 1.1s, want 66", d.elapsed)
	}
}

func TestFrameAnimatorZeroDeltaTickIsFree(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	d := newDouble(1000)
	fa := newFrameAnimator[int](d, clock)

	now = now.Add(50 * time.Millisecond)
	fa.Animate()
	fa.Animate() // same instant: no time elapsed between ticks
	if d.elapsed != 3 {
		t.Errorf("elapsed = %d frames, want 3 (zero-delta tick must not advance)", d.elapsed)
	}

	// Sub-frame progress accumulates without double counting.
	now = now.Add(10 * time.Millisecond)
	fa.Animate()
	if d.elapsed != 3 {
		t.Errorf("elapsed = %d frames after 60ms, want 3", d.elapsed)
	}
	now = now.Add(7 * time.Millisecond)
	fa.Animate()
	if d.elapsed != 4 {
		t.Errorf("elapsed = %d frames after 67ms, want 4", d.elapsed)
	}
}
