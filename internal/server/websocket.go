package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type wsHub struct {
	mu     sync.Mutex
	groups map[string]map[*websocket.Conn]struct{}
	// writes serializes writes per connection; gorilla allows one writer.
	writes map[*websocket.Conn]*sync.Mutex
}

func newWSHub() *wsHub {
	return &wsHub{
		groups: make(map[string]map[*websocket.Conn]struct{}),
		writes: make(map[*websocket.Conn]*sync.Mutex),
	}
}

func (h *wsHub) Add(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	group := h.groups[sessionID]
	if group == nil {
		group = make(map[*websocket.Conn]struct{})
		h.groups[sessionID] = group
	}
	group[conn] = struct{}{}
	h.writes[conn] = &sync.Mutex{}
}

func (h *wsHub) Remove(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.writes, conn)
	_ = conn.Close()
	group := h.groups[sessionID]
	if group == nil {
		return
	}
	delete(group, conn)
	if len(group) == 0 {
		delete(h.groups, sessionID)
	}
}

// CloseGroup disconnects every socket watching the session.
func (h *wsHub) CloseGroup(sessionID string) {
	h.mu.Lock()
	group := h.groups[sessionID]
	delete(h.groups, sessionID)
	locks := make(map[*websocket.Conn]*sync.Mutex, len(group))
	for conn := range group {
		locks[conn] = h.writes[conn]
		delete(h.writes, conn)
	}
	h.mu.Unlock()
	for conn, lock := range locks {
		if lock != nil {
			lock.Lock()
		}
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"))
		_ = conn.Close()
		if lock != nil {
			lock.Unlock()
		}
	}
}

func (h *wsHub) Count(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.groups[sessionID])
}

func (h *wsHub) Send(conn *websocket.Conn, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	h.mu.Lock()
	lock := h.writes[conn]
	h.mu.Unlock()
	if lock == nil {
		return websocket.ErrCloseSent
	}
	lock.Lock()
	defer lock.Unlock()
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (h *wsHub) Broadcast(sessionID string, payload any) {
	h.mu.Lock()
	group := h.groups[sessionID]
	conns := make([]*websocket.Conn, 0, len(group))
	for conn := range group {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := h.Send(conn, payload); err != nil {
			h.Remove(sessionID, conn)
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (s *Server) handleWebsocket(c *gin.Context) {
	var uri sessionURI
	if !bindURI(c, &uri) {
		return
	}
	if !s.store.Exists(uri.SessionID) {
		c.Status(http.StatusNotFound)
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	log.Printf("ws connected session_id=%s remote=%s", uri.SessionID, c.Request.RemoteAddr)
	s.ws.Add(uri.SessionID, conn)
	snap, err := s.currentSnapshot(uri.SessionID)
	if err != nil {
		s.ws.Remove(uri.SessionID, conn)
		return
	}
	_ = s.ws.Send(conn, snap)
	go s.readWS(uri.SessionID, conn)
}

// readWS only drains the socket; intents arrive over the HTTP API.
func (s *Server) readWS(sessionID string, conn *websocket.Conn) {
	defer s.ws.Remove(sessionID, conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Printf("ws disconnected session_id=%s error=%v", sessionID, err)
			return
		}
	}
}
