package server

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/asif-cs/portfolio/internal/interact"
)

// session is one browser page view: its engine and, once the page opens
// its websocket, the connection updates are pushed through.
type session struct {
	id       string
	clientID string
	engine   *interact.Engine
	log      *zap.Logger

	// claimed is set when a websocket takes the session over, so cache
	// eviction no longer owns its lifetime.
	claimed atomic.Bool

	mu      sync.Mutex
	conn    *websocket.Conn
	backlog []outbound
	closed  bool
}

// push delivers an engine update. Updates produced before the websocket
// attaches are held and replayed on attach.
func (s *session) push(u interact.Update) {
	s.send(encodeUpdate(u))
}

func (s *session) send(msg outbound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.conn == nil {
		s.backlog = append(s.backlog, msg)
		return
	}
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.Debug("websocket write", zap.Error(err))
	}
}

// attach binds conn and flushes the backlog.
func (s *session) attach(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn = conn
	backlog := s.backlog
	s.backlog = nil
	for _, msg := range backlog {
		if err := conn.WriteJSON(msg); err != nil {
			return err
		}
	}
	return nil
}

// start begins the title animation for the lifetime of ctx.
func (s *session) start(ctx context.Context) {
	s.engine.StartRotation(ctx)
}

// close stops the engine. It is safe to call more than once.
func (s *session) close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.backlog = nil
	s.mu.Unlock()

	s.engine.Close()
}
