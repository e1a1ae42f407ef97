package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/tuigames/blastgrid/internal/storage"
)

// Config holds configuration for the match server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":9000").
	Address string

	// DBPath is the path to the results database.
	// If empty, match results are not persisted.
	DBPath string

	// BoardWidth and BoardHeight size each participant's board.
	BoardWidth  int
	BoardHeight int

	// PairInterval is how often waiting players are paired up.
	PairInterval time.Duration
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:      ":9000",
		DBPath:       "~/.blastgrid/scores.db",
		BoardWidth:   8,
		BoardHeight:  9,
		PairInterval: 5 * time.Second,
	}
}

// Server is the websocket match server.
type Server struct {
	config     Config
	logger     *log.Logger
	store      *storage.Store
	matchmaker *Matchmaker
	upgrader   websocket.Upgrader
	http       *http.Server
	done       chan struct{}
}

// New creates a match server with the given configuration.
func New(cfg Config) (*Server, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blastgrid-matchd",
	})

	// Each fed row spreads two bombs over distinct columns.
	if cfg.BoardWidth < 2 {
		cfg.BoardWidth = DefaultConfig().BoardWidth
	}
	if cfg.BoardHeight < 1 {
		cfg.BoardHeight = DefaultConfig().BoardHeight
	}

	var store *storage.Store
	if cfg.DBPath != "" {
		var err error
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open results database", "error", err)
			// Continue without persistence
			store = nil
		}
	}

	s := &Server{
		config:     cfg,
		logger:     logger,
		store:      store,
		matchmaker: NewMatchmaker(logger, store, cfg.BoardWidth, cfg.BoardHeight, cfg.PairInterval),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		done: make(chan struct{}),
	}
	s.http = &http.Server{
		Addr:    cfg.Address,
		Handler: s.Handler(),
	}
	return s, nil
}

// Handler returns the HTTP handler serving the websocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintln(w, "blastgrid match server")
	})
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// handleWS upgrades the connection and runs the player's read loop.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	p := &player{
		id:   conn.RemoteAddr().String(),
		send: make(chan []byte, 16),
	}
	s.logger.Info("player connected", "player", p.id)

	go s.writeLoop(conn, p)
	go s.readLoop(conn, p)
}

func (s *Server) readLoop(conn *websocket.Conn, p *player) {
	defer func() {
		s.matchmaker.playerGone(p)
		p.close()
		conn.Close()
		s.logger.Info("player disconnected", "player", p.id)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		req, err := DecodeRequest(data)
		if err != nil {
			// Malformed input is ignored, not fatal
			s.logger.Debug("ignoring bad request", "player", p.id, "error", err)
			continue
		}
		switch r := req.(type) {
		case JoinRequest:
			s.matchmaker.Join(p)
		case LeaveRequest:
			s.matchmaker.Leave(p)
		case RemoveRequest:
			if m := p.currentMatch(); m != nil {
				m.handleRemove(p, r.X, r.Y, s.logger)
			}
		}
	}
}

func (s *Server) writeLoop(conn *websocket.Conn, p *player) {
	for data := range p.send {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			return
		}
	}
}

// ListenAndServe starts the match server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting match server", "address", s.config.Address)

	go s.matchmaker.Run(s.done)

	// Setup signal handling for graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-sig
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Start begins pairing without blocking. Used when the HTTP side is
// served elsewhere, e.g. behind httptest in package tests.
func (s *Server) Start() {
	go s.matchmaker.Run(s.done)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	close(s.done)
	if s.store != nil {
		s.store.Close()
	}
	return s.http.Shutdown(ctx)
}
