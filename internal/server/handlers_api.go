package server

import (
	"errors"
	"log"
	"net/http"

	"playroom/internal/audio"
	"playroom/internal/games"
	"playroom/internal/round"

	"github.com/gin-gonic/gin"
)

type selectRequest struct {
	ChoiceID string `json:"choice_id" binding:"required,choice"`
}

type clickRequest struct {
	X *float64 `json:"x" binding:"required,gte=0,lte=500"`
	Y *float64 `json:"y" binding:"required,gte=0,lte=500"`
}

func (s *Server) handleGetSession(c *gin.Context) {
	var uri sessionURI
	if !bindURI(c, &uri) {
		return
	}
	snap, err := s.currentSnapshot(uri.SessionID)
	if err != nil {
		writeError(c, http.StatusNotFound, err.Error())
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleStart(c *gin.Context) {
	s.handleTransition(c, "start", games.Game.Start)
}

func (s *Server) handleRestart(c *gin.Context) {
	var uri sessionURI
	if !bindURI(c, &uri) {
		return
	}
	s.cancelTimers(uri.SessionID)
	s.respondTransition(c, uri.SessionID, "restart", games.Game.Restart)
}

// handleExit returns the browser to the lobby and ends the session.
func (s *Server) handleExit(c *gin.Context) {
	var uri sessionURI
	if !bindURI(c, &uri) {
		return
	}
	s.cancelTimers(uri.SessionID)
	snap, res, err := s.transition(uri.SessionID, games.Game.Exit)
	if err != nil {
		writeError(c, http.StatusNotFound, err.Error())
		return
	}
	log.Printf("session exit session_id=%s outcome=%s", uri.SessionID, res.Outcome)
	s.destroySession(uri.SessionID, "exit")
	s.sessions.ClearSession(c.Writer, c.Request, uri.SessionID)
	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleSelect(c *gin.Context) {
	var uri sessionURI
	if !bindURI(c, &uri) {
		return
	}
	var req selectRequest
	if !bindJSON(c, &req, bindMessages{
		"ChoiceID": {
			"required": "choice_id is required",
			"choice":   "choice_id is invalid",
		},
	}, "invalid request") {
		return
	}
	s.respondTransition(c, uri.SessionID, "select", func(game games.Game) round.Result {
		return game.Select(req.ChoiceID)
	})
}

func (s *Server) handleClick(c *gin.Context) {
	var uri sessionURI
	if !bindURI(c, &uri) {
		return
	}
	var req clickRequest
	if !bindJSON(c, &req, bindMessages{
		"X": {"required": "x is required", "gte": "x is off the board", "lte": "x is off the board"},
		"Y": {"required": "y is required", "gte": "y is off the board", "lte": "y is off the board"},
	}, "invalid request") {
		return
	}
	s.respondTransition(c, uri.SessionID, "click", func(game games.Game) round.Result {
		return game.Click(*req.X, *req.Y)
	})
}

func (s *Server) handleTransition(c *gin.Context, action string, fn func(games.Game) round.Result) {
	var uri sessionURI
	if !bindURI(c, &uri) {
		return
	}
	s.respondTransition(c, uri.SessionID, action, fn)
}

// respondTransition answers with the resulting snapshot. Ignored intents still
// get 200 and the unchanged state.
func (s *Server) respondTransition(c *gin.Context, sessionID, action string, fn func(games.Game) round.Result) {
	snap, res, err := s.transition(sessionID, fn)
	if err != nil {
		writeError(c, http.StatusNotFound, err.Error())
		return
	}
	if res.Changed() {
		log.Printf("session %s session_id=%s outcome=%s round=%d score=%d", action, sessionID, res.Outcome, snap.Round, snap.Score)
	}
	c.JSON(http.StatusOK, snap)
}

// handleSound plays the current round's sound: generated audio when a speech
// backend answers, the bundled clip otherwise.
func (s *Server) handleSound(c *gin.Context) {
	var uri sessionURI
	if !bindURI(c, &uri) {
		return
	}
	var (
		req     audio.Request
		ok      bool
		session *Session
	)
	err := s.store.Update(uri.SessionID, func(sess *Session) error {
		req, ok = sess.Game.SoundRequest()
		session = sess
		return nil
	})
	if err != nil {
		writeError(c, http.StatusNotFound, err.Error())
		return
	}
	if !ok {
		writeError(c, http.StatusConflict, "no sound to play right now")
		return
	}

	clip, err := session.Sound.Generate(c.Request.Context(), req)
	if errors.Is(err, audio.ErrBusy) {
		writeError(c, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		log.Printf("sound unavailable session_id=%s key=%s error=%v", uri.SessionID, req.Key, err)
		writeError(c, http.StatusNotFound, "sound unavailable")
		return
	}
	if clip.Fallback {
		s.journalSoundFallback(session, req.Key)
	}
	if len(clip.Data) > 0 {
		c.Data(http.StatusOK, clip.ContentType, clip.Data)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": clip.URL})
}
