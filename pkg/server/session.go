package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"

	"github.com/liftlog-dev/liftlog/internal/app"
	"github.com/liftlog-dev/liftlog/pkg/dom"
	"github.com/liftlog-dev/liftlog/pkg/ui"
	"github.com/liftlog-dev/liftlog/pkg/vdom"
)

// clientFrame is a message from the browser: a DOM event addressed by
// the target element's eid.
type clientFrame struct {
	Type   string `json:"type"`
	Target string `json:"target,omitempty"`
	Event  string `json:"event,omitempty"`
	Value  string `json:"value,omitempty"`
}

// serverFrame is a message to the browser: the full HTML of the mounted
// tree plus the chart drawing ops to replay, if any.
type serverFrame struct {
	Type  string   `json:"type"`
	HTML  string   `json:"html,omitempty"`
	Chart []dom.Op `json:"chart,omitempty"`
}

// LiveSession is one WebSocket connection with its own document, hook
// runtime, and application instance. Sessions never share state: each
// rebuilds and pushes its tree independently.
type LiveSession struct {
	id     string
	conn   *websocket.Conn
	logger *slog.Logger
	cfg    Config

	app *app.App
	doc *dom.Document
	rt  *ui.Runtime

	writeMu sync.Mutex
	done    chan struct{}
	once    sync.Once
}

func (s *Server) newLiveSession(conn *websocket.Conn) *LiveSession {
	id := ulid.Make().String()
	sess := &LiveSession{
		id:     id,
		conn:   conn,
		logger: s.logger.With("session", id),
		cfg:    s.cfg,
		app:    app.New(context.Background(), s.store, s.logger),
		doc:    dom.NewDocument(),
		rt:     ui.New(),
		done:   make(chan struct{}),
	}
	return sess
}

// ID returns the session identifier.
func (s *LiveSession) ID() string { return s.id }

// Close tears the session down. Safe to call more than once.
func (s *LiveSession) Close() {
	s.once.Do(func() {
		close(s.done)
		s.conn.Close()
	})
}

// render rebuilds the whole tree and pushes it to the browser.
func (s *LiveSession) render() error {
	s.rt.Render(vdom.H(s.app.Root, nil), s.doc.Body())
	return s.push()
}

// push sends the current document state without re-rendering. Used after
// Dispatch, which already re-rendered synchronously through the state
// setters it triggered.
func (s *LiveSession) push() error {
	s.app.DrawChart(s.doc)

	frame := serverFrame{Type: "render", HTML: s.doc.HTML()}
	if ctx2d, err := s.doc.Context2D(app.ChartElementID); err == nil {
		frame.Chart = ctx2d.Ops()
	}
	return s.writeJSON(frame)
}

func (s *LiveSession) writeJSON(v any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.conn.SetWriteDeadline(deadline(s.cfg.WriteTimeout)); err != nil {
		return err
	}
	return s.conn.WriteJSON(v)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// Server-side render of a throwaway session so the shell arrives
	// populated. The WebSocket session re-renders on connect.
	doc := dom.NewDocument()
	rt := ui.New()
	a := app.New(r.Context(), s.store, s.logger)
	rt.Render(vdom.H(a.Root, nil), doc.Body())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, doc.HTML())
}

const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>liftlog</title>
<link rel="stylesheet" href="/assets/app.css">
</head>
<body>
<div id="app">%s</div>
<script src="/assets/client.js"></script>
</body>
</html>
`
