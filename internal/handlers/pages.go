package handlers

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spendlens/spendlens/internal/database"
	"github.com/spendlens/spendlens/utils"
)

type chartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// IndexHandler рендерит главную страницу: расходы по категориям за выбранный
// период и таблицы месячных/годовых балансов с пагинацией
func IndexHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := spendingFilterFromQuery(c)

		spendingData, totalSpending, err := database.GetSpendingByCategory(pool, filter)
		if err != nil {
			// страница рендерится с пустыми данными, ошибка только в логе
			log.Printf("Ошибка получения расходов по категориям: %v", err)
			spendingData, totalSpending = nil, 0
		}

		monthlyBalances, err := database.GetMonthlyBalances(pool)
		if err != nil {
			log.Printf("Ошибка получения месячных балансов: %v", err)
			monthlyBalances = nil
		}
		yearlyBalances, err := database.GetYearlyBalances(pool)
		if err != nil {
			log.Printf("Ошибка получения годовых балансов: %v", err)
			yearlyBalances = nil
		}

		perPage := intQuery(c, "per_page", 10)
		monthlyPage := database.NormalizePage(intQuery(c, "monthly_page", 1), perPage)
		yearlyPage := database.NormalizePage(intQuery(c, "yearly_page", 1), perPage)

		points := make([]chartPoint, 0, len(spendingData))
		for _, item := range spendingData {
			points = append(points, chartPoint{
				Label: item.Category,
				Value: item.Amount,
				Color: utils.CategoryColor(item.Category),
			})
		}
		spendingJSON, err := json.Marshal(points)
		if err != nil {
			log.Printf("Ошибка сериализации данных диаграммы: %v", err)
			spendingJSON = []byte("[]")
		}

		c.HTML(http.StatusOK, "index.html", gin.H{
			"SpendingData":      spendingData,
			"TotalSpending":     totalSpending,
			"TimePeriod":        filter.TimePeriod,
			"CategoryFilter":    filter.Category,
			"StartDate":         filter.StartDate,
			"EndDate":           filter.EndDate,
			"MonthlyBalances":   paginate(monthlyBalances, monthlyPage),
			"YearlyBalances":    paginate(yearlyBalances, yearlyPage),
			"MonthlyTotalPages": database.TotalPages(len(monthlyBalances), monthlyPage.PerPage),
			"YearlyTotalPages":  database.TotalPages(len(yearlyBalances), yearlyPage.PerPage),
			"MonthlyPage":       monthlyPage.Page,
			"YearlyPage":        yearlyPage.Page,
			"PerPage":           monthlyPage.PerPage,
			"SpendingJSON":      template.JS(spendingJSON),
		})
	}
}

// AdminHandler рендерит список необработанных банковских записей
func AdminHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := database.NormalizePage(intQuery(c, "page", 1), intQuery(c, "per_page", 10))

		records, total, err := database.ListUnprocessedRecords(pool, page)
		if err != nil {
			log.Printf("Ошибка получения необработанных записей: %v", err)
			c.String(http.StatusInternalServerError, "Error fetching records: %v", err)
			return
		}

		c.HTML(http.StatusOK, "admin.html", gin.H{
			"Records":    records,
			"Page":       page.Page,
			"PerPage":    page.PerPage,
			"TotalPages": database.TotalPages(total, page.PerPage),
			"TotalCount": total,
		})
	}
}

// RecordTransformerHandler рендерит список обработанных записей с фильтрами,
// поиском и сортировкой
func RecordTransformerHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := database.NormalizePage(intQuery(c, "page", 1), intQuery(c, "per_page", 10))
		filter := database.RecordFilter{
			Category:  c.Query("category"),
			Search:    c.Query("search"),
			SortBy:    c.DefaultQuery("sort_by", "transaction_date"),
			SortOrder: c.DefaultQuery("sort_order", "desc"),
		}
		sortBy, sortOrder := database.NormalizeSort(filter.SortBy, filter.SortOrder)

		categories, err := database.GetDistinctCategories(pool)
		if err != nil {
			log.Printf("Ошибка получения списка категорий: %v", err)
			c.String(http.StatusInternalServerError, "Error fetching records: %v", err)
			return
		}

		records, total, err := database.ListProcessedRecords(pool, filter, page)
		if err != nil {
			log.Printf("Ошибка получения обработанных записей: %v", err)
			c.String(http.StatusInternalServerError, "Error fetching records: %v", err)
			return
		}

		c.HTML(http.StatusOK, "record_transformer.html", gin.H{
			"Records":           records,
			"Page":              page.Page,
			"PerPage":           page.PerPage,
			"TotalPages":        database.TotalPages(total, page.PerPage),
			"TotalCount":        total,
			"Categories":        categories,
			"CategoryFilter":    filter.Category,
			"SearchDescription": filter.Search,
			"SortBy":            sortBy,
			"SortOrder":         sortOrder,
		})
	}
}
