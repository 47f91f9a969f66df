package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/liftlog-dev/liftlog/internal/workout"
	"github.com/liftlog-dev/liftlog/pkg/assets"
	"github.com/liftlog-dev/liftlog/pkg/middleware"
	"github.com/liftlog-dev/liftlog/pkg/store"
)

//go:embed static
var staticFS embed.FS

// assetManifest is the fixed set of static assets the page shell uses.
var assetManifest = assets.NewManifest(map[string]string{
	"app.css":   "app.css",
	"client.js": "client.js",
})

// Config configures the server.
type Config struct {
	// Addr is the listen address (default ":8080").
	Addr string

	// AssetVersion tags the asset cache (default "dev").
	AssetVersion string

	// ReadTimeout is the WebSocket read deadline (default 60s).
	ReadTimeout time.Duration

	// WriteTimeout is the WebSocket write deadline (default 10s).
	WriteTimeout time.Duration

	// HeartbeatInterval is the WebSocket ping cadence (default 30s).
	HeartbeatInterval time.Duration

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.AssetVersion == "" {
		c.AssetVersion = "dev"
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 60 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.HeartbeatInterval == 0 {
		c.HeartbeatInterval = 30 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Server serves the application over HTTP and WebSocket.
type Server struct {
	cfg      Config
	logger   *slog.Logger
	store    store.Store
	cache    *assets.Cache
	router   chi.Router
	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[string]*LiveSession
}

// New creates a server over the given record store and installs the
// versioned asset cache.
func New(cfg Config, st store.Store) (*Server, error) {
	cfg.applyDefaults()

	source, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	cache := assets.NewCache(cfg.AssetVersion, source, assetManifest)
	if err := cache.Install(context.Background()); err != nil {
		return nil, fmt.Errorf("install asset cache: %w", err)
	}
	if err := cache.Activate(context.Background()); err != nil {
		return nil, fmt.Errorf("activate asset cache: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		logger:   cfg.Logger,
		store:    st,
		cache:    cache,
		sessions: make(map[string]*LiveSession),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Metrics())
	r.Use(middleware.Tracing())
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/assets/{name}", s.handleAsset)
	r.Get("/export.csv", s.handleExport)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully and closes all live sessions.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.closeSessions()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) closeSessions() {
	s.mu.Lock()
	sessions := make([]*LiveSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}
}

func (s *Server) addSession(sess *LiveSession) {
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	middleware.RecordSessionStart()
}

func (s *Server) removeSession(sess *LiveSession) {
	s.mu.Lock()
	_, ok := s.sessions[sess.id]
	delete(s.sessions, sess.id)
	s.mu.Unlock()
	if ok {
		middleware.RecordSessionEnd()
	}
}

// SessionCount returns the number of live sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	data, ctype, err := s.cache.Fetch(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", ctype)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Write(data)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	entries := store.LoadEntries(r.Context(), s.store, s.logger)
	workout.SortEntries(entries)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="workouts.csv"`)
	if err := workout.WriteCSV(w, entries); err != nil {
		s.logger.Error("csv export failed", "error", err)
	}
}
