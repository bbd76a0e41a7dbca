package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/spendlens/spendlens/models"
)

type SpendingFilter struct {
	TimePeriod string
	Category   string
	StartDate  string
	EndDate    string
}

// GetSpendingByCategory возвращает суммы по категориям за выбранный период
// (день/неделя/месяц/год) или за произвольный диапазон дат, а также общий итог.
// Произвольный диапазон имеет приоритет над периодом.
func GetSpendingByCategory(pool *pgxpool.Pool, filter SpendingFilter) ([]models.CategorySpending, float64, error) {
	var (
		args       []interface{}
		dateFilter string
	)

	if filter.StartDate != "" && filter.EndDate != "" {
		args = append(args, filter.StartDate, filter.EndDate)
		dateFilter = "transaction_date >= $1 AND transaction_date <= $2"
	} else {
		switch filter.TimePeriod {
		case "day":
			dateFilter = "DATE(transaction_date) = CURRENT_DATE"
		case "week":
			dateFilter = "EXTRACT(YEAR FROM transaction_date) = EXTRACT(YEAR FROM CURRENT_DATE) AND EXTRACT(WEEK FROM transaction_date) = EXTRACT(WEEK FROM CURRENT_DATE)"
		case "month":
			dateFilter = "EXTRACT(YEAR FROM transaction_date) = EXTRACT(YEAR FROM CURRENT_DATE) AND EXTRACT(MONTH FROM transaction_date) = EXTRACT(MONTH FROM CURRENT_DATE)"
		case "year":
			dateFilter = "EXTRACT(YEAR FROM transaction_date) = EXTRACT(YEAR FROM CURRENT_DATE)"
		default:
			// без фильтра отдаются все записи
			dateFilter = "1=1"
		}
	}

	whereClause := dateFilter
	if filter.Category != "" {
		args = append(args, filter.Category)
		whereClause += fmt.Sprintf(" AND category = $%d", len(args))
	}

	query := `
		SELECT
			COALESCE(category, 'Uncategorized') AS category,
			SUM(amount) AS total_amount
		FROM processed_records
		WHERE ` + whereClause + `
		GROUP BY category
		ORDER BY total_amount DESC`

	rows, err := pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка при получении расходов по категориям: %v", err)
	}
	defer rows.Close()

	var (
		items []models.CategorySpending
		total = decimal.Zero
	)
	for rows.Next() {
		var item models.CategorySpending
		if err := rows.Scan(&item.Category, &item.Amount); err != nil {
			return nil, 0, fmt.Errorf("ошибка чтения строки расходов: %v", err)
		}
		items = append(items, item)
		total = total.Add(decimal.NewFromFloat(item.Amount))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка обхода строк расходов: %v", err)
	}

	return items, total.InexactFloat64(), nil
}
