package server

import (
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"
	"time"

	"playroom/internal/audio"
	"playroom/internal/config"
	"playroom/internal/games"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	store    *Store
	db       *gorm.DB
	ws       *wsHub
	cfg      config.Config
	registry *games.Registry
	sessions *sessionStore
	sound    audio.Source
	rng      func() *rand.Rand
	timersMu sync.Mutex
	timers   map[timerKey]*time.Timer
}

func New(conn *gorm.DB, cfg config.Config) *Server {
	static := audio.NewStatic(games.AnimalClips())
	var primary audio.Source
	if strings.TrimSpace(cfg.OpenAIAPIKey) != "" {
		primary = audio.NewOpenAISpeech(cfg.OpenAIAPIKey, cfg.OpenAISpeechModel, cfg.OpenAISpeechVoice)
	}
	return &Server{
		store:    NewStore(),
		db:       conn,
		ws:       newWSHub(),
		cfg:      cfg,
		registry: games.Default(),
		sessions: newSessionStore(),
		sound:    audio.WithFallback(primary, static),
		rng:      newRNG,
		timers:   make(map[timerKey]*time.Timer),
	}
}

func (s *Server) settings() games.Settings {
	return games.Settings{
		TotalRounds:      s.cfg.TotalRounds,
		ChoicesPerRound:  s.cfg.ChoicesPerRound,
		RevealDelay:      s.cfg.RevealDelay(),
		ShapeRevealDelay: s.cfg.ShapeRevealDelay(),
		RetryDelay:       s.cfg.RetryDelay(),
		StarsRevealDelay: s.cfg.StarsRevealDelay(),
		StarRadius:       float64(s.cfg.StarRadius),
	}
}

func (s *Server) Handler() http.Handler {
	registerValidators()

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", s.handleLobbyView)
	r.GET("/play/:sessionID", s.handlePlayView)
	r.GET("/admin/plays", s.handleAdminPlays)
	r.Static("/static", s.cfg.StaticDir)

	api := r.Group("/api")
	api.GET("/games", s.handleListGames)
	api.GET("/lobby", s.handleLobbyState)
	api.POST("/lobby/navigate", s.handleNavigate)

	sessions := api.Group("/sessions/:sessionID")
	sessions.GET("", s.handleGetSession)
	sessions.POST("/start", s.handleStart)
	sessions.POST("/restart", s.handleRestart)
	sessions.POST("/exit", s.handleExit)
	sessions.POST("/select", s.handleSelect)
	sessions.POST("/click", s.handleClick)
	sessions.POST("/sound", s.handleSound)

	r.GET("/ws/sessions/:sessionID", s.handleWebsocket)
	return r
}
