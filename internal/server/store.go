package server

import (
	"errors"
	"sort"
	"sync"
	"time"

	"playroom/internal/audio"
	"playroom/internal/games"
	"playroom/internal/round"
)

var errSessionNotFound = errors.New("session not found")

// Session is one running game for one browser. ID, GameID, Sound and PlayID
// are fixed once the session is added to the store; everything else is only
// touched inside Store.Update.
type Session struct {
	ID        string
	GameID    games.ID
	Game      games.Game
	Sound     *audio.Gate
	PlayID    uint
	Seq       int
	CreatedAt time.Time
}

type SessionSummary struct {
	ID        string
	GameID    games.ID
	Phase     round.Phase
	Round     int
	Score     int
	CreatedAt time.Time
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

func (s *Store) Add(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

func (s *Store) Exists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	return ok
}

// Update runs fn with exclusive access to the session.
func (s *Store) Update(id string, fn func(session *Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return errSessionNotFound
	}
	return fn(session)
}

func (s *Store) Remove(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	return session, ok
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) ListSummaries() []SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]SessionSummary, 0, len(s.sessions))
	for _, session := range s.sessions {
		snap := session.Game.Snapshot()
		list = append(list, SessionSummary{
			ID:        session.ID,
			GameID:    session.GameID,
			Phase:     snap.Phase,
			Round:     snap.Round,
			Score:     snap.Score,
			CreatedAt: session.CreatedAt,
		})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}

func timeNowUTC() time.Time {
	return time.Now().UTC()
}
