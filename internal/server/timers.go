package server

import (
	"log"
	"time"

	"playroom/internal/games"
	"playroom/internal/round"
)

type timerKey struct {
	sessionID string
	kind      round.TimerKind
}

var timerKinds = []round.TimerKind{round.TimerAdvance, round.TimerClear}

// scheduleTimer replaces any pending timer of the same kind for the session.
func (s *Server) scheduleTimer(sessionID string, timer round.Timer) {
	key := timerKey{sessionID: sessionID, kind: timer.Kind}
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	if existing, ok := s.timers[key]; ok {
		existing.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(timer.After, func() {
		s.timersMu.Lock()
		if s.timers[key] == t {
			delete(s.timers, key)
		}
		s.timersMu.Unlock()
		s.fireTimer(key, timer.Token)
	})
	s.timers[key] = t
}

func (s *Server) cancelTimers(sessionID string) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	for _, kind := range timerKinds {
		key := timerKey{sessionID: sessionID, kind: kind}
		if timer, ok := s.timers[key]; ok {
			timer.Stop()
			delete(s.timers, key)
		}
	}
}

func (s *Server) pendingTimers(sessionID string) int {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	count := 0
	for _, kind := range timerKinds {
		if _, ok := s.timers[timerKey{sessionID: sessionID, kind: kind}]; ok {
			count++
		}
	}
	return count
}

// fireTimer hands the token back to the game. A token from before an exit,
// restart or newer pick is ignored by the game itself.
func (s *Server) fireTimer(key timerKey, token int) {
	_, res, err := s.transition(key.sessionID, func(game games.Game) round.Result {
		switch key.kind {
		case round.TimerAdvance:
			return game.Advance(token)
		case round.TimerClear:
			return game.ClearFeedback(token)
		default:
			return round.Ignored()
		}
	})
	if err != nil {
		return
	}
	if res.Changed() {
		log.Printf("session auto-advanced session_id=%s timer=%s outcome=%s", key.sessionID, key.kind, res.Outcome)
	}
}
