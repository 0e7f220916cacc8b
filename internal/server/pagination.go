package server

import (
	"strconv"
	"strings"

	"playroom/internal/web"

	"github.com/gin-gonic/gin"
)

// parsePagination reads page and per_page, falling back on anything that is
// not a positive number.
func parsePagination(c *gin.Context, defaultPerPage, maxPerPage int) (int, int) {
	page := positiveQuery(c, "page", 1)
	perPage := positiveQuery(c, "per_page", defaultPerPage)
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

func positiveQuery(c *gin.Context, key string, fallback int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

// buildPaginationData clamps page into range, so Offset is always usable.
func buildPaginationData(basePath string, page, perPage int, total int64) web.PaginationData {
	perPage = max(perPage, 1)
	totalPages := max(int((total+int64(perPage)-1)/int64(perPage)), 1)
	page = min(max(page, 1), totalPages)
	data := web.PaginationData{
		BasePath:   basePath,
		Page:       page,
		PerPage:    perPage,
		Offset:     (page - 1) * perPage,
		Total:      int(total),
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	if data.HasPrev {
		data.PrevPage = page - 1
	}
	if data.HasNext {
		data.NextPage = page + 1
	}
	return data
}
