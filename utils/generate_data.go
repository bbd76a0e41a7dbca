package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
)

var sampleCategories = []string{
	"Groceries", "Transport", "Restaurants", "Utilities", "Entertainment",
	"Health", "Travel", "Shopping", "Salary", "Rent",
}

// GenerateUnprocessedRecords наполняет unprocessed_records тестовыми данными
func GenerateUnprocessedRecords(pool *pgxpool.Pool, numRecords int) {
	for i := 0; i < numRecords; i++ {
		date := gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now())
		_, err := pool.Exec(context.Background(), `
			INSERT INTO unprocessed_records (record_id_bank, transaction_date, currency_date, account, description, amount, currency)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			gofakeit.UUID(),
			date,
			date,
			gofakeit.AchAccount(),
			gofakeit.Company(),
			-gofakeit.Price(1, 500),
			"EUR",
		)
		if err != nil {
			log.Fatalf("ошибка при добавлении необработанной записи: %v", err)
		}
	}
}

// GenerateProcessedRecords наполняет processed_records тестовыми данными:
// расходы по случайным категориям и ежемесячная зарплата
func GenerateProcessedRecords(pool *pgxpool.Pool, numRecords int) {
	for i := 0; i < numRecords; i++ {
		date := gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now())
		category := gofakeit.RandomString(sampleCategories)
		amount := -gofakeit.Price(1, 500)
		if category == "Salary" {
			amount = gofakeit.Price(1500, 4000)
		}

		_, err := pool.Exec(context.Background(), `
			INSERT INTO processed_records (record_id_bank, transaction_date, currency_date, account, description, amount, currency, category)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			fmt.Sprintf("seed-%s", gofakeit.UUID()),
			date,
			date,
			gofakeit.AchAccount(),
			gofakeit.Company(),
			amount,
			"EUR",
			category,
		)
		if err != nil {
			log.Fatalf("ошибка при добавлении обработанной записи: %v", err)
		}
	}
}
