package server

import (
	"net/http"
	"sync"

	"playroom/internal/games"
)

const lobbyCookie = "pr_session"

// sessionStore remembers which game each browser is in. It lives in memory
// only: a restart sends everyone back to the lobby.
type sessionStore struct {
	mu      sync.Mutex
	lobbies map[string]lobbyState
}

type lobbyState struct {
	GameID    games.ID
	SessionID string
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		lobbies: make(map[string]lobbyState),
	}
}

func (s *sessionStore) Get(w http.ResponseWriter, r *http.Request) lobbyState {
	id := s.ensureSessionID(w, r)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lobbies[id]
}

func (s *sessionStore) Set(w http.ResponseWriter, r *http.Request, state lobbyState) {
	id := s.ensureSessionID(w, r)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lobbies[id] = state
}

// ClearSession forgets sessionID for this browser if it is still the current
// one.
func (s *sessionStore) ClearSession(w http.ResponseWriter, r *http.Request, sessionID string) {
	id := s.ensureSessionID(w, r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lobbies[id].SessionID == sessionID {
		delete(s.lobbies, id)
	}
}

func (s *sessionStore) ensureSessionID(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(lobbyCookie)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := newSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     lobbyCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	// Later lookups in the same request must see the new id.
	r.AddCookie(&http.Cookie{Name: lobbyCookie, Value: id})
	return id
}
