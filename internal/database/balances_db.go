package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spendlens/spendlens/models"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// GetMonthlyBalances возвращает помесячные балансы за всё время,
// от новых к старым (положительный итог — доход, отрицательный — расход)
func GetMonthlyBalances(pool *pgxpool.Pool) ([]models.MonthlyBalance, error) {
	query := `
		SELECT
			EXTRACT(YEAR FROM transaction_date)::int AS year,
			EXTRACT(MONTH FROM transaction_date)::int AS month,
			COALESCE(SUM(amount), 0) AS total_amount,
			CASE
				WHEN SUM(amount) > 0 THEN 'positive'
				WHEN SUM(amount) < 0 THEN 'negative'
				ELSE 'zero'
			END AS balance_status
		FROM processed_records
		GROUP BY EXTRACT(YEAR FROM transaction_date), EXTRACT(MONTH FROM transaction_date)
		ORDER BY year DESC, month DESC`

	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении месячных балансов: %v", err)
	}
	defer rows.Close()

	var balances []models.MonthlyBalance
	for rows.Next() {
		var b models.MonthlyBalance
		if err := rows.Scan(&b.Year, &b.Month, &b.Amount, &b.Status); err != nil {
			return nil, fmt.Errorf("ошибка чтения месячного баланса: %v", err)
		}
		b.MonthName = MonthName(b.Month)
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обхода месячных балансов: %v", err)
	}

	return balances, nil
}

// GetYearlyBalances возвращает годовые балансы за всё время, от новых к старым
func GetYearlyBalances(pool *pgxpool.Pool) ([]models.YearlyBalance, error) {
	query := `
		SELECT
			EXTRACT(YEAR FROM transaction_date)::int AS year,
			COALESCE(SUM(amount), 0) AS total_amount,
			CASE
				WHEN SUM(amount) > 0 THEN 'positive'
				WHEN SUM(amount) < 0 THEN 'negative'
				ELSE 'zero'
			END AS balance_status
		FROM processed_records
		GROUP BY EXTRACT(YEAR FROM transaction_date)
		ORDER BY year DESC`

	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении годовых балансов: %v", err)
	}
	defer rows.Close()

	var balances []models.YearlyBalance
	for rows.Next() {
		var b models.YearlyBalance
		if err := rows.Scan(&b.Year, &b.Amount, &b.Status); err != nil {
			return nil, fmt.Errorf("ошибка чтения годового баланса: %v", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обхода годовых балансов: %v", err)
	}

	return balances, nil
}

func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "Unknown"
	}
	return monthNames[month-1]
}
