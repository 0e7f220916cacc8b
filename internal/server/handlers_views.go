package server

import (
	"log"
	"net/http"

	"playroom/internal/web"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleLobbyView(c *gin.Context) {
	lobby := s.currentLobby(c)
	data := web.LobbyData{
		CurrentSessionID: lobby.SessionID,
	}
	for _, info := range s.registry.List() {
		card := web.GameCard{
			ID:      string(info.ID),
			Title:   info.Title,
			Tagline: info.Tagline,
			Theme:   info.Theme,
		}
		if info.ID == lobby.GameID {
			card.Current = true
			data.CurrentTitle = info.Title
		}
		data.Games = append(data.Games, card)
	}
	templ.Handler(web.Lobby(data)).ServeHTTP(c.Writer, c.Request)
}

func (s *Server) handlePlayView(c *gin.Context) {
	var uri sessionURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	snap, err := s.currentSnapshot(uri.SessionID)
	if err != nil {
		log.Printf("play view missing session_id=%s", uri.SessionID)
		c.Redirect(http.StatusFound, "/")
		return
	}
	templ.Handler(web.Play(web.PlayData{
		SessionID: uri.SessionID,
		GameID:    string(snap.GameID),
		Title:     snap.Info.Title,
		Tagline:   snap.Info.Tagline,
		Theme:     snap.Info.Theme,
	})).ServeHTTP(c.Writer, c.Request)
}
