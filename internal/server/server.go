// Package server serves a portfolio live: every page view gets its own
// interaction engine, driven over a websocket.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/asif-cs/portfolio/internal/content"
	"github.com/asif-cs/portfolio/internal/db"
	"github.com/asif-cs/portfolio/internal/interact"
	"github.com/asif-cs/portfolio/internal/prefs"
	"github.com/asif-cs/portfolio/internal/site"
	"github.com/asif-cs/portfolio/internal/synth"
)

const (
	clientCookie = "portfolio_client"
	// colorSchemeHint is the client hint carrying prefers-color-scheme.
	colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"
)

// Config holds server configuration.
type Config struct {
	Port         int
	ContentFile  string // reloaded on change when Watch is set
	AssetsDir    string // served at the site root
	DefaultTheme interact.ThemePreference
	AllowAll     bool // allow all CORS origins (dev mode)
	Watch        bool

	// SessionTTL is how long a rendered page may take to open its
	// websocket before its engine is discarded.
	SessionTTL time.Duration
}

// Server is the live portfolio server.
type Server struct {
	cfg    Config
	db     *db.DB
	prefs  *prefs.SQLiteStore
	log    *zap.Logger
	router chi.Router

	httpServer *http.Server
	baseCtx    context.Context
	cancel     context.CancelFunc

	mu    sync.RWMutex
	graph *content.Graph

	// pending holds sessions between page render and websocket attach.
	pending *cache.Cache

	liveMu sync.Mutex
	live   map[*session]bool

	upgrader websocket.Upgrader
}

// New creates a server for graph. Preferences are kept in database.
func New(cfg Config, database *db.DB, graph *content.Graph, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 2 * time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:     cfg,
		db:      database,
		prefs:   prefs.NewSQLiteStore(database),
		log:     log,
		baseCtx: ctx,
		cancel:  cancel,
		graph:   graph,
		pending: cache.New(cfg.SessionTTL, cfg.SessionTTL/2),
		live:    make(map[*session]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	s.pending.OnEvicted(func(_ string, v any) {
		if sess := v.(*session); !sess.claimed.Load() {
			s.log.Debug("discarding unclaimed session", zap.String("session", sess.id))
			sess.close()
		}
	})

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// The websocket outlives any request timeout.
	r.Get("/ws", s.handleWebSocket)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", s.handleHealth)
		r.Get("/", s.handlePage)
		r.Get("/"+site.StyleFile, staticText("text/css; charset=utf-8", site.Stylesheet()))
		r.Get("/"+site.ScriptFile, staticText("text/javascript; charset=utf-8", site.Script()))
		r.Get("/"+site.ContentFile, s.handleContent)
		if s.cfg.AssetsDir != "" {
			r.Handle("/*", noCache(http.FileServer(http.Dir(s.cfg.AssetsDir))))
		}
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Graph returns the content currently served.
func (s *Server) Graph() *content.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph
}

// SetGraph replaces the served content and asks open pages to reload.
func (s *Server) SetGraph(g *content.Graph) {
	s.mu.Lock()
	s.graph = g
	s.mu.Unlock()
	s.broadcast(reloadMessage)
}

// Sessions reports how many pages hold an open websocket.
func (s *Server) Sessions() int {
	s.liveMu.Lock()
	defer s.liveMu.Unlock()
	return len(s.live)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":   "ok",
		"sessions": s.Sessions(),
	})
}

// handlePage synthesizes a fresh page with its own engine.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	clientID := s.clientID(w, r)
	if err := s.prefs.Touch(r.Context(), clientID); err != nil {
		s.log.Warn("recording client", zap.String("client", clientID), zap.Error(err))
	}

	g := s.Graph()
	sess := &session{
		id:       uuid.NewString(),
		clientID: clientID,
		log:      s.log.With(zap.String("client", clientID)),
	}
	sess.log = sess.log.With(zap.String("session", sess.id))

	page := synth.Synthesize(g, synth.Options{
		Stylesheet: "/" + site.StyleFile,
		Script:     "/" + site.ScriptFile,
	})
	page.Body.SetAttr("data-live", "/ws?session="+sess.id)

	ambient := s.ambientTheme(r)
	sess.engine = interact.Attach(page, g, interact.Deps{
		Context: s.baseCtx,
		Prefs:   s.prefs.ForClient(clientID),
		Ambient: func() interact.ThemePreference { return ambient },
		Logger:  sess.log,
		Notify:  sess.push,
	})
	s.pending.SetDefault(sess.id, sess)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Accept-CH", colorSchemeHint)
	if err := sess.engine.Render(w); err != nil {
		sess.log.Error("rendering page", zap.Error(err))
	}
}

// handleWebSocket connects a rendered page to its engine.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	v, ok := s.pending.Get(id)
	if !ok {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}
	sess := v.(*session)
	if !sess.claimed.CompareAndSwap(false, true) {
		http.Error(w, "session already connected", http.StatusConflict)
		return
	}
	s.pending.Delete(id)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		sess.log.Warn("websocket upgrade", zap.Error(err))
		sess.close()
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(s.baseCtx)
	defer cancel()
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	s.track(sess, true)
	defer func() {
		s.track(sess, false)
		sess.close()
		sess.log.Info("session closed")
	}()

	if err := sess.attach(conn); err != nil {
		sess.log.Debug("websocket write", zap.Error(err))
		return
	}
	sess.log.Info("session connected")
	sess.start(ctx)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				sess.log.Warn("websocket read", zap.Error(err))
			}
			return
		}
		ev, err := decodeEvent(msg)
		if err != nil {
			sess.log.Debug("dropping malformed event", zap.Error(err))
			continue
		}
		if u := sess.engine.Dispatch(ev); !u.Empty() {
			sess.push(u)
		}
	}
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := content.Encode(w, s.Graph()); err != nil {
		s.log.Error("writing content", zap.Error(err))
	}
}

// clientID returns the browser's client id, issuing one when the cookie is
// missing or malformed.
func (s *Server) clientID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(clientCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     clientCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// ambientTheme reads the browser's colour-scheme hint, falling back to the
// configured default.
func (s *Server) ambientTheme(r *http.Request) interact.ThemePreference {
	switch r.Header.Get(colorSchemeHint) {
	case "dark", `"dark"`:
		return interact.ThemeDark
	case "light", `"light"`:
		return interact.ThemeLight
	}
	if s.cfg.DefaultTheme != "" {
		return s.cfg.DefaultTheme
	}
	return interact.ThemeLight
}

func (s *Server) track(sess *session, open bool) {
	s.liveMu.Lock()
	defer s.liveMu.Unlock()
	if open {
		s.live[sess] = true
	} else {
		delete(s.live, sess)
	}
}

func (s *Server) broadcast(msg outbound) {
	s.liveMu.Lock()
	sessions := make([]*session, 0, len(s.live))
	for sess := range s.live {
		sessions = append(sessions, sess)
	}
	s.liveMu.Unlock()

	if len(sessions) > 0 {
		s.log.Info("notifying open pages", zap.String("message", msg.Type), zap.Int("sessions", len(sessions)))
	}
	for _, sess := range sessions {
		sess.send(msg)
	}
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", s.cfg.Port, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if s.cfg.Watch && s.cfg.ContentFile != "" {
		w, err := s.watch()
		if err != nil {
			return err
		}
		defer w.Close()
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("portfolio server listening", zap.String("addr", ln.Addr().String()))
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		s.cancel()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := s.Shutdown(shutdownCtx)
	<-errCh
	return err
}

// Shutdown gracefully shuts down the server and closes every session.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()
	for id := range s.pending.Items() {
		s.pending.Delete(id)
	}

	s.liveMu.Lock()
	for sess := range s.live {
		sess.close()
	}
	s.liveMu.Unlock()

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func staticText(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		w.Write([]byte(body))
	}
}

func noCache(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		h.ServeHTTP(w, r)
	})
}
