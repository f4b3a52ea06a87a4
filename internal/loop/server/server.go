// Package server is the process-wide session hub. Every terminal session
// plays its own game; the hub only tracks who is connected, collects
// finished scores into a shared leaderboard and broadcasts shutdown.
package server

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/cyberjet/internal/loop/config"
)

// GameServer is the interface clients use to communicate with the hub.
// Decouples the Client from the concrete Server implementation, enabling
// testing with fakes.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID uuid.UUID)
	ReportScore(clientID uuid.UUID, score int)
	GetSnapshot() *HubSnapshot
}

// Server tracks sessions and the leaderboard.
type Server struct {
	snapshot     atomic.Pointer[HubSnapshot]
	clients      map[uuid.UUID]*ClientHandle
	registerCh   chan *ClientHandle
	unregisterCh chan uuid.UUID
	scoreCh      chan scoreReport
	mu           sync.RWMutex

	done     chan struct{} // Closed once Run returns
	stopOnce sync.Once

	board  *Leaderboard
	logger *log.Logger
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the hub.
type ClientHandle struct {
	ID       uuid.UUID
	Username string           // Display name for this client
	EventsCh chan ClientEvent // Events sent to client (shutdown, etc.)
	Joined   time.Time
}

// ClientEvent represents an event sent from the hub to a client.
type ClientEvent struct {
	Type ClientEventType
	Rank int // 1-based leaderboard position for EventTopScore
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
	EventTopScore
)

type scoreReport struct {
	clientID uuid.UUID
	score    int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the hub logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer creates a new hub.
func NewServer(opts ...Option) *Server {
	s := &Server{
		clients:      make(map[uuid.UUID]*ClientHandle),
		registerCh:   make(chan *ClientHandle, 16),
		unregisterCh: make(chan uuid.UUID, 16),
		scoreCh:      make(chan scoreReport, 64),
		board:        NewLeaderboard(config.TopScoresCount),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	// Create initial empty snapshot
	s.snapshot.Store(&HubSnapshot{})

	return s
}

// Run starts the hub loop. Blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) {
	defer s.stopOnce.Do(func() { close(s.done) })

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frameStart := time.Now()

		s.step()

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ServerTickTime {
			time.Sleep(config.ServerTickTime - elapsed)
		}
	}
}

// step drains pending messages and publishes a new snapshot.
// Scores are collected between joins and leaves: a client always reports
// after registering and before unregistering.
func (s *Server) step() {
	s.processJoins()
	s.collectScores()
	s.processLeaves()
	s.createSnapshot()
}

// Shutdown gracefully shuts down the hub by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
// The caller should cancel the hub context after Shutdown returns.
func (s *Server) Shutdown(timeout time.Duration) {
	// Notify all connected clients about the shutdown
	s.mu.RLock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	// Wait for all clients to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return
		case <-ticker.C:
			if s.PlayerCount() == 0 {
				return
			}
		}
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	handle := &ClientHandle{
		ID:       uuid.New(),
		Username: TruncateUsername(username),
		EventsCh: make(chan ClientEvent, 16),
		Joined:   time.Now(),
	}

	select {
	case s.registerCh <- handle:
	case <-s.done:
	}
	return handle
}

// UnregisterClient removes a client from the hub. It does not block once
// the hub loop has stopped.
func (s *Server) UnregisterClient(clientID uuid.UUID) {
	select {
	case s.unregisterCh <- clientID:
	case <-s.done:
	}
}

// ReportScore submits the final score of a client's finished game.
func (s *Server) ReportScore(clientID uuid.UUID, score int) {
	select {
	case s.scoreCh <- scoreReport{clientID: clientID, score: score}:
	default:
		s.logger.Warn("score dropped, queue full", "client", clientID, "score", score)
	}
}

// GetSnapshot returns the current hub snapshot.
func (s *Server) GetSnapshot() *HubSnapshot {
	return s.snapshot.Load()
}

// PlayerCount returns the number of registered clients (thread-safe).
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// processJoins handles pending client registrations.
func (s *Server) processJoins() {
	for {
		select {
		case handle := <-s.registerCh:
			s.mu.Lock()
			s.clients[handle.ID] = handle
			s.mu.Unlock()
			s.logger.Info("client joined", "client", handle.ID, "user", handle.Username)
		default:
			return
		}
	}
}

// processLeaves handles pending client unregistrations.
func (s *Server) processLeaves() {
	for {
		select {
		case clientID := <-s.unregisterCh:
			s.mu.Lock()
			if handle, ok := s.clients[clientID]; ok {
				close(handle.EventsCh)
				delete(s.clients, clientID)
				s.logger.Info("client left", "client", clientID, "user", handle.Username)
			}
			s.mu.Unlock()
		default:
			return
		}
	}
}

// collectScores moves reported scores onto the leaderboard.
func (s *Server) collectScores() {
	for {
		select {
		case r := <-s.scoreCh:
			handle := s.client(r.clientID)
			if handle == nil {
				// The registration may have arrived after this step's joins.
				s.processJoins()
				handle = s.client(r.clientID)
			}
			if handle == nil {
				s.logger.Warn("score from unknown client", "client", r.clientID, "score", r.score)
				continue
			}
			rank := s.board.Add(handle.Username, r.score)
			if rank == 0 {
				continue
			}
			s.logger.Info("new top score", "user", handle.Username, "score", r.score, "rank", rank)
			select {
			case handle.EventsCh <- ClientEvent{Type: EventTopScore, Rank: rank}:
			default:
			}
		default:
			return
		}
	}
}

// client returns the registered handle for id, or nil.
func (s *Server) client(id uuid.UUID) *ClientHandle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clients[id]
}

// createSnapshot creates an immutable snapshot of the hub state.
func (s *Server) createSnapshot() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := &HubSnapshot{
		Players:   len(s.clients),
		TopScores: s.board.Entries(),
	}

	s.snapshot.Store(snapshot)
}
