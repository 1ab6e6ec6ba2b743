package main

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/signalscope/signalscope/convert"
	"github.com/signalscope/signalscope/core"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 65536,
	// The daemon serves trusted front-ends; origin policy is left to the
	// reverse proxy.
	CheckOrigin: func(*http.Request) bool { return true },
}

const (
	wsWriteTimeout = 10 * time.Second
	wsPongTimeout  = 60 * time.Second
	wsPingInterval = 30 * time.Second
)

// wsRequest is one conversion over the socket. ID is echoed back so clients
// can correlate concurrent requests.
type wsRequest struct {
	ID string `json:"id,omitempty"`
	convert.Request
}

type wsResponse struct {
	ID     string             `json:"id,omitempty"`
	Result *core.SignalResult `json:"result,omitempty"`
	Error  string             `json:"error,omitempty"`
	Kind   string             `json:"kind,omitempty"`
}

// handleWebSocket upgrades the connection and serves conversion requests
// until the client disconnects. One goroutine per connection; requests on a
// single socket are handled in order.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR: websocket upgrade: %v", err)
		return
	}

	connID := uuid.NewString()
	s.metrics.RecordWSConnect()
	log.Printf("websocket %s connected from %s", connID, r.RemoteAddr)

	defer func() {
		conn.Close()
		s.metrics.RecordWSDisconnect()
		log.Printf("websocket %s disconnected", connID)
	}()

	conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
	})

	done := make(chan struct{})
	defer close(done)
	go s.pingLoop(conn, done)

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ERROR: websocket %s read: %v", connID, err)
			}
			return
		}
		s.metrics.RecordWSMessage("received")

		resp := wsResponse{ID: req.ID}
		switch {
		case len(req.Bits) > s.cfg.Limits.MaxBits:
			resp.Error = "bit string exceeds configured maximum"
			resp.Kind = "invalid_input"
			s.metrics.RecordError("invalid_input")
		default:
			res, err := convert.Do(req.Request)
			if err != nil {
				kind := convert.Classify(err)
				resp.Error = err.Error()
				resp.Kind = kindLabel(kind)
				s.metrics.RecordError(kindLabel(kind))
				s.metrics.RecordConversion(req.Family, req.Scheme, "error", 0)
			} else {
				resp.Result = &res
				s.metrics.RecordConversion(req.Family, req.Scheme, "ok", res.CalcTimeMs)
			}
		}

		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("ERROR: websocket %s write: %v", connID, err)
			return
		}
		s.metrics.RecordWSMessage("sent")
	}
}

// pingLoop keeps the connection alive. It runs beside the response writer,
// so it must only use WriteControl: gorilla permits a single concurrent
// writer for data frames, but control frames may be written concurrently.
func (s *Server) pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(wsWriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}
