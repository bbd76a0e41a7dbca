package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spendlens/spendlens/internal/database"
)

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func spendingFilterFromQuery(c *gin.Context) database.SpendingFilter {
	return database.SpendingFilter{
		TimePeriod: c.DefaultQuery("time_period", "month"),
		Category:   c.Query("category"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
	}
}

// splitRecordIDs разбирает список идентификаторов через запятую,
// пустые элементы отбрасываются
func splitRecordIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// paginate выдает страницу среза; балансы набираются целиком,
// поэтому страницы режутся уже в памяти
func paginate[T any](items []T, page database.PageParams) []T {
	start := page.Offset()
	if start >= len(items) {
		return nil
	}
	end := start + page.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
