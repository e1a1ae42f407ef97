package server

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tuigames/blastgrid/internal/storage"
)

// player is one connected websocket client.
type player struct {
	id   string
	send chan []byte

	mu     sync.Mutex
	match  *match
	closed bool
}

// enqueue serializes a response and queues it for the write loop.
// Messages are dropped if the client cannot keep up or is already gone.
// The closed flag is checked under p.mu, so a concurrent disconnect can
// never leave a send racing against close(p.send).
func (p *player) enqueue(resp Response, logger *log.Logger) {
	data, err := EncodeResponse(resp)
	if err != nil {
		logger.Error("cannot encode response", "error", err)
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	select {
	case p.send <- data:
	default:
		logger.Warn("dropping message to slow client", "player", p.id)
	}
}

// close shuts the send channel exactly once. Later enqueues become no-ops.
func (p *player) close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.send)
}

func (p *player) currentMatch() *match {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.match
}

func (p *player) setMatch(m *match) {
	p.mu.Lock()
	p.match = m
	p.mu.Unlock()
}

// match is a running game between two players. Each participant plays on
// their own board; the server only relays confirmed removals and feeds.
type match struct {
	id      string
	started time.Time
	players [2]*player

	mu     sync.Mutex
	boards map[*player]*BoardManager
	ended  bool
}

// handleRemove applies a removal to the requesting player's board. On a
// successful removal the board settles, the player is told, and a fresh
// row is fed.
func (m *match) handleRemove(p *player, x, y int, logger *log.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()

	board, ok := m.boards[p]
	if !ok || m.ended {
		return
	}
	if removed := board.Remove(x, y); removed > 0 {
		p.enqueue(RemoveResponse{X: x, Y: y}, logger)
		p.enqueue(FeedResponse{Row: board.Feed()}, logger)
	}
}

// handleFeed feeds a fresh row to the given player's board.
func (m *match) handleFeed(p *player, logger *log.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if board, ok := m.boards[p]; ok && !m.ended {
		p.enqueue(FeedResponse{Row: board.Feed()}, logger)
	}
}

// finish marks the match over and returns its result record.
// Only the first call produces a record.
func (m *match) finish(reason string) (storage.MatchResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ended {
		return storage.MatchResult{}, false
	}
	m.ended = true

	return storage.MatchResult{
		MatchID:      m.id,
		Player1:      m.players[0].id,
		Player2:      m.players[1].id,
		Removed1:     m.boards[m.players[0]].Removed(),
		Removed2:     m.boards[m.players[1]].Removed(),
		EndReason:    reason,
		DurationSecs: int(time.Since(m.started) / time.Second),
	}, true
}

// Matchmaker pairs waiting players into matches at a fixed interval.
type Matchmaker struct {
	logger   *log.Logger
	store    *storage.Store
	interval time.Duration
	width    int
	height   int

	mu      sync.Mutex
	waiting map[*player]struct{}
	rng     *rand.Rand
	nextID  int
}

// NewMatchmaker creates a matchmaker pairing players every interval.
// store may be nil, in which case match results are not persisted.
func NewMatchmaker(logger *log.Logger, store *storage.Store, width, height int, interval time.Duration) *Matchmaker {
	return &Matchmaker{
		logger:   logger,
		store:    store,
		interval: interval,
		width:    width,
		height:   height,
		waiting:  make(map[*player]struct{}),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run pairs waiting players until done is closed.
func (mm *Matchmaker) Run(done <-chan struct{}) {
	ticker := time.NewTicker(mm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			mm.pairWaiting()
		}
	}
}

// Join puts a player into the matchmaking queue.
func (mm *Matchmaker) Join(p *player) {
	mm.mu.Lock()
	mm.waiting[p] = struct{}{}
	mm.mu.Unlock()
}

// Leave removes a player from the matchmaking queue.
func (mm *Matchmaker) Leave(p *player) {
	mm.mu.Lock()
	delete(mm.waiting, p)
	mm.mu.Unlock()
}

// pairWaiting drains the queue two players at a time and starts their
// matches.
func (mm *Matchmaker) pairWaiting() {
	mm.mu.Lock()
	var queue []*player
	for p := range mm.waiting {
		queue = append(queue, p)
	}
	var started []*match
	for len(queue) >= 2 {
		left, right := queue[0], queue[1]
		queue = queue[2:]
		delete(mm.waiting, left)
		delete(mm.waiting, right)

		mm.nextID++
		m := &match{
			id:      fmt.Sprintf("m-%d", mm.nextID),
			started: time.Now(),
			players: [2]*player{left, right},
			boards: map[*player]*BoardManager{
				left:  NewBoardManager(mm.width, mm.height, rand.New(rand.NewSource(mm.rng.Int63()))),
				right: NewBoardManager(mm.width, mm.height, rand.New(rand.NewSource(mm.rng.Int63()))),
			},
		}
		started = append(started, m)
	}
	mm.mu.Unlock()

	for _, m := range started {
		for _, p := range m.players {
			p.setMatch(m)
			p.enqueue(ReadyResponse{}, mm.logger)
			m.handleFeed(p, mm.logger)
		}
		mm.logger.Info("match started",
			"match", m.id,
			"player1", m.players[0].id,
			"player2", m.players[1].id,
		)
	}
}

// playerGone handles a disconnect: the player leaves the queue and any
// running match ends with its result recorded.
func (mm *Matchmaker) playerGone(p *player) {
	mm.Leave(p)

	m := p.currentMatch()
	if m == nil {
		return
	}
	result, ok := m.finish("disconnect")
	if !ok {
		return
	}

	mm.logger.Info("match ended",
		"match", result.MatchID,
		"reason", result.EndReason,
		"duration_secs", result.DurationSecs,
	)
	if mm.store != nil {
		if _, err := mm.store.SaveMatchResult(result); err != nil {
			mm.logger.Error("cannot save match result", "error", err)
		}
	}
}
