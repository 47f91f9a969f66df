package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/liftlog-dev/liftlog/pkg/dom"
	"github.com/liftlog-dev/liftlog/pkg/middleware"
)

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		middleware.RecordWebSocketError("upgrade")
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	sess := s.newLiveSession(conn)
	s.addSession(sess)
	defer func() {
		s.removeSession(sess)
		sess.Close()
	}()

	sess.logger.Info("session opened", "remote", conn.RemoteAddr())

	go sess.heartbeat()

	if err := sess.render(); err != nil {
		middleware.RecordWebSocketError("write")
		sess.logger.Warn("initial render push failed", "error", err)
		return
	}

	sess.readLoop()
	sess.logger.Info("session closed")
}

// readLoop consumes client frames until the connection drops. Every
// event re-renders the whole tree and pushes the result.
func (s *LiveSession) readLoop() {
	s.conn.SetReadLimit(1 << 16)
	// A failed deadline surfaces on the next read.
	_ = s.conn.SetReadDeadline(deadline(s.cfg.ReadTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(deadline(s.cfg.ReadTimeout))
	})

	for {
		var frame clientFrame
		if err := s.conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				middleware.RecordWebSocketError("read")
				s.logger.Warn("read failed", "error", err)
			}
			return
		}
		_ = s.conn.SetReadDeadline(deadline(s.cfg.ReadTimeout))

		switch frame.Type {
		case "event":
			s.handleEvent(frame)
		case "ping":
			// Client-level keepalive, nothing to do.
		default:
			s.logger.Warn("unknown frame type", "type", frame.Type)
		}
	}
}

// handleEvent resolves the target by eid in the currently mounted tree
// and dispatches. A stale eid (tree rebuilt since the client's HTML) is
// dropped; the push that replaced the tree already carried fresh eids.
func (s *LiveSession) handleEvent(frame clientFrame) {
	target := s.doc.ByEID(frame.Target)
	if target == nil {
		middleware.RecordEvent(frame.Event, false)
		s.logger.Debug("event for unmounted target", "eid", frame.Target, "event", frame.Event)
		return
	}

	// Dispatch runs the listeners; any state setter they call re-renders
	// the tree synchronously before Dispatch returns.
	handled := target.Dispatch(dom.Event{Type: frame.Event, Value: frame.Value})
	middleware.RecordEvent(frame.Event, handled)

	if err := s.push(); err != nil {
		middleware.RecordWebSocketError("write")
		s.logger.Warn("render push failed", "error", err)
		s.Close()
		return
	}
	middleware.RecordRender(len(s.doc.HTML()))
}

// heartbeat pings the client until the session closes.
func (s *LiveSession) heartbeat() {
	ticker := time.NewTicker(s.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.writeMu.Lock()
			err := s.conn.WriteControl(websocket.PingMessage, nil, deadline(s.cfg.WriteTimeout))
			s.writeMu.Unlock()
			if err != nil {
				middleware.RecordWebSocketError("ping")
				s.Close()
				return
			}
		}
	}
}

func deadline(d time.Duration) time.Time { return time.Now().Add(d) }
