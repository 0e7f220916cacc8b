package server

import (
	"fmt"
	"log"
	"net/http"

	"playroom/internal/audio"
	"playroom/internal/games"

	"github.com/gin-gonic/gin"
)

type navigateRequest struct {
	GameID string `json:"game_id" binding:"required,gameid"`
}

func (s *Server) handleListGames(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"games": s.registry.List()})
}

func (s *Server) handleLobbyState(c *gin.Context) {
	lobby := s.currentLobby(c)
	c.JSON(http.StatusOK, gin.H{
		"current_game_id": lobby.GameID,
		"session_id":      lobby.SessionID,
	})
}

// handleNavigate opens a game for this browser. Whatever game it had open is
// closed first.
func (s *Server) handleNavigate(c *gin.Context) {
	var req navigateRequest
	if !bindJSON(c, &req, bindMessages{
		"GameID": {
			"required": "game_id is required",
			"gameid":   "game_id is invalid",
		},
	}, "invalid request") {
		return
	}
	gameID := games.ID(req.GameID)
	info, ok := s.registry.Lookup(gameID)
	if !ok {
		writeError(c, http.StatusNotFound, "game not found")
		return
	}

	previous := s.sessions.Get(c.Writer, c.Request)
	if previous.SessionID != "" {
		s.destroySession(previous.SessionID, "navigated")
	}

	session, err := s.createSession(gameID)
	if err != nil {
		log.Printf("session create failed game_id=%s error=%v", gameID, err)
		writeError(c, http.StatusInternalServerError, "failed to open game")
		return
	}
	s.sessions.Set(c.Writer, c.Request, lobbyState{GameID: gameID, SessionID: session.ID})
	c.JSON(http.StatusCreated, gin.H{
		"session_id": session.ID,
		"game_id":    gameID,
		"title":      info.Title,
	})
}

// currentLobby drops a remembered session that no longer exists.
func (s *Server) currentLobby(c *gin.Context) lobbyState {
	lobby := s.sessions.Get(c.Writer, c.Request)
	if lobby.SessionID != "" && !s.store.Exists(lobby.SessionID) {
		s.sessions.ClearSession(c.Writer, c.Request, lobby.SessionID)
		return lobbyState{}
	}
	return lobby
}

func (s *Server) createSession(gameID games.ID) (*Session, error) {
	game, err := s.registry.Create(gameID, s.rng(), s.settings())
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	session := &Session{
		ID:        newSessionID(),
		GameID:    gameID,
		Game:      game,
		Sound:     audio.NewGate(s.sound),
		CreatedAt: timeNowUTC(),
	}
	s.journalCreatePlay(session)
	s.store.Add(session)
	log.Printf("session created session_id=%s game_id=%s", session.ID, gameID)
	return session, nil
}

// destroySession stops the session's timers, disconnects its sockets and
// forgets it.
func (s *Server) destroySession(sessionID, reason string) {
	session, ok := s.store.Remove(sessionID)
	if !ok {
		return
	}
	s.cancelTimers(sessionID)
	s.ws.CloseGroup(sessionID)
	s.journalExit(session, reason)
	log.Printf("session destroyed session_id=%s game_id=%s reason=%s", sessionID, session.GameID, reason)
}
