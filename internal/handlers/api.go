package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spendlens/spendlens/internal/charts"
	"github.com/spendlens/spendlens/internal/database"
	"github.com/spendlens/spendlens/utils"
)

// SpendingHandler отдаёт расходы по категориям в JSON для диаграмм на страницах
func SpendingHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := spendingFilterFromQuery(c)

		spendingData, totalSpending, err := database.GetSpendingByCategory(pool, filter)
		if err != nil {
			log.Printf("Ошибка получения расходов по категориям: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения расходов по категориям"})
			return
		}

		items := make([]gin.H, 0, len(spendingData))
		for _, item := range spendingData {
			items = append(items, gin.H{
				"category": item.Category,
				"amount":   item.Amount,
				"color":    utils.CategoryColor(item.Category),
			})
		}

		c.JSON(http.StatusOK, gin.H{"items": items, "total": totalSpending})
	}
}

// BalancesHandler отдаёт месячные и годовые балансы в JSON
func BalancesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		monthly, err := database.GetMonthlyBalances(pool)
		if err != nil {
			log.Printf("Ошибка получения месячных балансов: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения балансов"})
			return
		}
		yearly, err := database.GetYearlyBalances(pool)
		if err != nil {
			log.Printf("Ошибка получения годовых балансов: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения балансов"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"monthly": monthly, "yearly": yearly})
	}
}

// SpendingChartHandler отдаёт PNG-диаграмму расходов (для экспорта)
func SpendingChartHandler(pool *pgxpool.Pool, generator *charts.ChartGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := spendingFilterFromQuery(c)

		spendingData, _, err := database.GetSpendingByCategory(pool, filter)
		if err != nil {
			log.Printf("Ошибка получения данных для диаграммы: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка построения диаграммы"})
			return
		}

		png, err := generator.GenerateSpendingChart(spendingData)
		if err != nil {
			log.Printf("Ошибка построения диаграммы: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка построения диаграммы"})
			return
		}
		if png == nil {
			c.Status(http.StatusNoContent)
			return
		}

		c.Data(http.StatusOK, "image/png", png)
	}
}

// HealthHandler проверяет доступность БД
func HealthHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
