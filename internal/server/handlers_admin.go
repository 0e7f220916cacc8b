package server

import (
	"log"

	"playroom/internal/db"
	"playroom/internal/web"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	adminPlaysPerPage    = 25
	adminPlaysMaxPerPage = 100
)

// handleAdminPlays lists the sessions running now and, with a database, the
// journal of past plays.
func (s *Server) handleAdminPlays(c *gin.Context) {
	data := web.AdminPlaysData{}
	for _, summary := range s.store.ListSummaries() {
		data.Active = append(data.Active, web.ActiveSession{
			ID:        summary.ID,
			GameID:    string(summary.GameID),
			Phase:     string(summary.Phase),
			Round:     summary.Round,
			Score:     summary.Score,
			Sockets:   s.ws.Count(summary.ID),
			CreatedAt: summary.CreatedAt,
		})
	}

	page, perPage := parsePagination(c, adminPlaysPerPage, adminPlaysMaxPerPage)
	if s.db == nil {
		data.Error = "Database not configured."
		data.Pagination = buildPaginationData("/admin/plays", page, perPage, 0)
		templ.Handler(web.AdminPlays(data)).ServeHTTP(c.Writer, c.Request)
		return
	}

	if gameID := c.Query("game"); gameID != "" {
		if _, err := validateGameID(gameID); err == nil {
			data.GameFilter = gameID
		}
	}
	plays := func() *gorm.DB {
		query := s.db.Model(&db.Play{})
		if data.GameFilter != "" {
			query = query.Where("game_id = ?", data.GameFilter)
		}
		return query
	}
	var total int64
	if err := plays().Count(&total).Error; err != nil {
		log.Printf("admin plays count failed error=%v", err)
		data.Error = "Failed to load plays."
	}
	data.Pagination = buildPaginationData("/admin/plays", page, perPage, total)
	if data.GameFilter != "" {
		data.Pagination.BasePath = "/admin/plays?game=" + data.GameFilter
	}

	var records []db.Play
	if err := plays().Order("created_at desc").Offset(data.Pagination.Offset).Limit(data.Pagination.PerPage).Find(&records).Error; err != nil {
		log.Printf("admin plays load failed error=%v", err)
		data.Error = "Failed to load plays."
	}
	for _, play := range records {
		data.Plays = append(data.Plays, web.PlaySummary{
			ID:          play.ID,
			SessionID:   play.SessionID,
			GameID:      play.GameID,
			Score:       play.Score,
			TotalRounds: play.TotalRounds,
			Starts:      play.Starts,
			FinishedAt:  play.FinishedAt,
			ExitedAt:    play.ExitedAt,
			CreatedAt:   play.CreatedAt,
		})
	}
	templ.Handler(web.AdminPlays(data)).ServeHTTP(c.Writer, c.Request)
}
