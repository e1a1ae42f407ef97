package server

import (
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestServer(t *testing.T, pairInterval time.Duration) string {
	t.Helper()

	s, err := New(Config{
		Address:      ":0",
		BoardWidth:   8,
		BoardHeight:  9,
		PairInterval: pairInterval,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	ts := httptest.NewServer(s.Handler())
	s.Start()
	t.Cleanup(func() {
		ts.Close()
		s.Shutdown()
	})

	return "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
}

func dialClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := Dial(url)
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

// expectNext reads the next message and fails unless it has the wanted shape.
func expectNext(t *testing.T, c *Client, want string) Response {
	t.Helper()
	resp, err := c.Next(2 * time.Second)
	if err != nil {
		t.Fatalf("Expected %s, got error: %v", want, err)
	}
	switch want {
	case "Ready":
		if _, ok := resp.(ReadyResponse); !ok {
			t.Fatalf("Expected ReadyResponse, got %T", resp)
		}
	case "Remove":
		if _, ok := resp.(RemoveResponse); !ok {
			t.Fatalf("Expected RemoveResponse, got %T", resp)
		}
	case "Feed":
		if _, ok := resp.(FeedResponse); !ok {
			t.Fatalf("Expected FeedResponse, got %T", resp)
		}
	}
	return resp
}

func TestMatchPairingAndInitialFeed(t *testing.T) {
	url := newTestServer(t, 20*time.Millisecond)

	c1 := dialClient(t, url)
	c2 := dialClient(t, url)

	if err := c1.Join(); err != nil {
		t.Fatalf("Join() failed: %v", err)
	}
	if err := c2.Join(); err != nil {
		t.Fatalf("Join() failed: %v", err)
	}

	for _, c := range []*Client{c1, c2} {
		expectNext(t, c, "Ready")
		feed := expectNext(t, c, "Feed").(FeedResponse)
		if len(feed.Row) != 8 {
			t.Errorf("Expected fed row of width 8, got %d", len(feed.Row))
		}
		bombs := 0
		for _, b := range feed.Row {
			if b {
				bombs++
			}
		}
		if bombs != 2 {
			t.Errorf("Expected 2 bombs in initial feed, got %d", bombs)
		}
	}
}

func TestRemoveConfirmsAndFeedsFreshRow(t *testing.T) {
	url := newTestServer(t, 20*time.Millisecond)

	c1 := dialClient(t, url)
	c2 := dialClient(t, url)
	c1.Join()
	c2.Join()

	expectNext(t, c1, "Ready")
	expectNext(t, c1, "Feed")
	expectNext(t, c2, "Ready")
	expectNext(t, c2, "Feed")

	// The initial feed filled the bottom row, so (0, 8) holds a cell.
	if err := c1.Remove(0, 8); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}

	rm := expectNext(t, c1, "Remove").(RemoveResponse)
	if rm.X != 0 || rm.Y != 8 {
		t.Errorf("Expected confirmed removal at (0, 8), got (%d, %d)", rm.X, rm.Y)
	}
	expectNext(t, c1, "Feed")
}

func TestRemoveOnEmptySlotStaysSilent(t *testing.T) {
	url := newTestServer(t, 20*time.Millisecond)

	c1 := dialClient(t, url)
	c2 := dialClient(t, url)
	c1.Join()
	c2.Join()

	expectNext(t, c1, "Ready")
	expectNext(t, c1, "Feed")

	// Only the bottom row is populated; the top row is empty.
	if err := c1.Remove(0, 0); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}

	// A valid removal afterwards must be the next message seen. That only
	// holds if the empty-slot removal produced nothing.
	if err := c1.Remove(3, 8); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	rm := expectNext(t, c1, "Remove").(RemoveResponse)
	if rm.X != 3 || rm.Y != 8 {
		t.Errorf("Expected confirmed removal at (3, 8), got (%d, %d)", rm.X, rm.Y)
	}
}

func TestLeaveExitsMatchmakingQueue(t *testing.T) {
	mm := NewMatchmaker(log.New(io.Discard), nil, 8, 9, time.Minute)

	p1 := &player{id: "p1", send: make(chan []byte, 16)}
	p2 := &player{id: "p2", send: make(chan []byte, 16)}

	mm.Join(p1)
	mm.Leave(p1)
	mm.Join(p2)
	mm.pairWaiting()

	if p2.currentMatch() != nil {
		t.Error("Player should not be paired after opponent left the queue")
	}
	if len(p2.send) != 0 {
		t.Errorf("Expected no queued messages, got %d", len(p2.send))
	}

	// With both players waiting, the next sweep pairs them.
	mm.Join(p1)
	mm.pairWaiting()

	if p1.currentMatch() == nil || p2.currentMatch() == nil {
		t.Fatal("Both players should be in a match")
	}
	if p1.currentMatch() != p2.currentMatch() {
		t.Error("Players should share the same match")
	}
}

func TestNewClampsUnplayableBoardSize(t *testing.T) {
	s, err := New(Config{Address: ":0", BoardWidth: 1, PairInterval: time.Minute})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer s.Shutdown()

	// Every feed spreads two bombs over distinct columns, so a 1-wide
	// board would stall the generator.
	if s.config.BoardWidth != 8 {
		t.Errorf("BoardWidth = %d, want fallback 8", s.config.BoardWidth)
	}
	if s.config.BoardHeight != 9 {
		t.Errorf("BoardHeight = %d, want fallback 9", s.config.BoardHeight)
	}
}

func TestEnqueueAfterDisconnectIsDropped(t *testing.T) {
	logger := log.New(io.Discard)
	p := &player{id: "p", send: make(chan []byte, 16)}

	// close is idempotent; the read loop and any future caller may both
	// try it.
	p.close()
	p.close()

	// What the pairing sweep sends must turn into silent drops once the
	// player is gone, never a send on a closed channel.
	p.enqueue(ReadyResponse{}, logger)
	p.enqueue(FeedResponse{Row: []bool{true, false}}, logger)
}

func TestPairingSweepSurvivesDisconnectedPlayer(t *testing.T) {
	mm := NewMatchmaker(log.New(io.Discard), nil, 8, 9, time.Minute)

	p1 := &player{id: "p1", send: make(chan []byte, 16)}
	p2 := &player{id: "p2", send: make(chan []byte, 16)}
	mm.Join(p1)
	mm.Join(p2)

	// p2's connection drops right as the sweep runs. The sweep still
	// pairs from its drained snapshot and must not crash on the sends.
	p2.close()
	mm.pairWaiting()

	if p1.currentMatch() == nil {
		t.Fatal("Surviving player should still be placed in the match")
	}
	if len(p1.send) != 2 {
		t.Errorf("Surviving player should receive Ready and Feed, got %d messages", len(p1.send))
	}
}

func TestEnqueueConcurrentWithClose(t *testing.T) {
	logger := log.New(io.Discard)

	for i := 0; i < 200; i++ {
		p := &player{id: "p", send: make(chan []byte, 1)}

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				p.enqueue(ReadyResponse{}, logger)
			}
		}()
		go func() {
			defer wg.Done()
			p.close()
		}()
		wg.Wait()
	}
}
