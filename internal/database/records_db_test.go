package database_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spendlens/spendlens/internal/config"
	"github.com/spendlens/spendlens/internal/database"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load()

	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST не задан, пропускаем интеграционный тест")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("ошибка загрузки конфигурации: %v", err)
	}

	pool, err := database.Connect(context.Background(), cfg)
	if err != nil {
		t.Fatalf("ошибка подключения к бд: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.EnsureSchema(context.Background(), pool); err != nil {
		t.Fatalf("ошибка подготовки схемы: %v", err)
	}

	return pool
}

func insertProcessed(t *testing.T, pool *pgxpool.Pool, recordID, category string, amount float64) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO processed_records (record_id_bank, transaction_date, currency_date, account, description, amount, currency, category)
		VALUES ($1, CURRENT_DATE, CURRENT_DATE, 'test-account', 'test record', $2, 'EUR', $3)`,
		recordID, amount, category)
	if err != nil {
		t.Fatalf("ошибка вставки тестовой записи: %v", err)
	}
}

func insertProcessedOn(t *testing.T, pool *pgxpool.Pool, recordID, category, date string, amount float64) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO processed_records (record_id_bank, transaction_date, currency_date, account, description, amount, currency, category)
		VALUES ($1, $2, $2, 'test-account', 'test record', $3, 'EUR', $4)`,
		recordID, date, amount, category)
	if err != nil {
		t.Fatalf("ошибка вставки тестовой записи: %v", err)
	}
}

func spendingFor(t *testing.T, pool *pgxpool.Pool, filter database.SpendingFilter) int {
	t.Helper()
	items, _, err := database.GetSpendingByCategory(pool, filter)
	if err != nil {
		t.Fatalf("ошибка получения расходов по категориям: %v", err)
	}
	return len(items)
}

func TestUpdateAndDeleteRecords(t *testing.T) {
	pool := testPool(t)

	recordID := fmt.Sprintf("test-%d", time.Now().UnixNano())
	insertProcessed(t, pool, recordID, "Test Category", -42.50)

	updated, err := database.UpdateRecordCategories(pool, []string{recordID}, "Updated Category")
	if err != nil {
		t.Fatalf("ошибка обновления категорий: %v", err)
	}
	if updated != 1 {
		t.Errorf("ожидалась 1 обновлённая запись, получили %d", updated)
	}

	deleted, err := database.DeleteRecords(pool, []string{recordID})
	if err != nil {
		t.Fatalf("ошибка удаления записей: %v", err)
	}
	if deleted != 1 {
		t.Errorf("ожидалась 1 удалённая запись, получили %d", deleted)
	}
}

func TestGetSpendingByCategory(t *testing.T) {
	pool := testPool(t)

	recordID := fmt.Sprintf("test-%d", time.Now().UnixNano())
	category := fmt.Sprintf("Test Spending %d", time.Now().UnixNano())
	insertProcessed(t, pool, recordID, category, -100.00)
	defer database.DeleteRecords(pool, []string{recordID})

	items, total, err := database.GetSpendingByCategory(pool, database.SpendingFilter{
		TimePeriod: "all",
		Category:   category,
	})
	if err != nil {
		t.Fatalf("ошибка получения расходов по категориям: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("ожидалась 1 категория, получили %d", len(items))
	}
	if items[0].Category != category {
		t.Errorf("категория не совпадает: получили %q, хотели %q", items[0].Category, category)
	}
	if items[0].Amount != -100.00 || total != -100.00 {
		t.Errorf("сумма не совпадает: amount=%v, total=%v", items[0].Amount, total)
	}
}

func TestGetSpendingByCategoryPeriods(t *testing.T) {
	pool := testPool(t)

	// запись сегодняшним числом попадает во все стандартные периоды
	nowID := fmt.Sprintf("test-now-%d", time.Now().UnixNano())
	nowCategory := fmt.Sprintf("Test Period Now %d", time.Now().UnixNano())
	insertProcessed(t, pool, nowID, nowCategory, -20.00)
	defer database.DeleteRecords(pool, []string{nowID})

	for _, period := range []string{"day", "week", "month", "year", "all"} {
		got := spendingFor(t, pool, database.SpendingFilter{TimePeriod: period, Category: nowCategory})
		if got != 1 {
			t.Errorf("период %q: ожидалась 1 категория, получили %d", period, got)
		}
	}

	// старая запись не попадает ни в один стандартный период, кроме "all"
	oldID := fmt.Sprintf("test-old-%d", time.Now().UnixNano())
	oldCategory := fmt.Sprintf("Test Period Old %d", time.Now().UnixNano())
	insertProcessedOn(t, pool, oldID, oldCategory, "2020-06-15", -30.00)
	defer database.DeleteRecords(pool, []string{oldID})

	for _, period := range []string{"day", "week", "month", "year"} {
		got := spendingFor(t, pool, database.SpendingFilter{TimePeriod: period, Category: oldCategory})
		if got != 0 {
			t.Errorf("период %q: старая запись не должна попадать в выборку, получили %d категорий", period, got)
		}
	}
	if got := spendingFor(t, pool, database.SpendingFilter{TimePeriod: "all", Category: oldCategory}); got != 1 {
		t.Errorf("период \"all\": ожидалась 1 категория, получили %d", got)
	}
}

func TestGetSpendingByCategoryDateRange(t *testing.T) {
	pool := testPool(t)

	recordID := fmt.Sprintf("test-range-%d", time.Now().UnixNano())
	category := fmt.Sprintf("Test Range %d", time.Now().UnixNano())
	insertProcessedOn(t, pool, recordID, category, "2020-06-15", -30.00)
	defer database.DeleteRecords(pool, []string{recordID})

	// границы диапазона включительные
	got := spendingFor(t, pool, database.SpendingFilter{
		Category:  category,
		StartDate: "2020-06-15",
		EndDate:   "2020-06-15",
	})
	if got != 1 {
		t.Errorf("диапазон с совпадающими границами: ожидалась 1 категория, получили %d", got)
	}

	got = spendingFor(t, pool, database.SpendingFilter{
		Category:  category,
		StartDate: "2020-06-16",
		EndDate:   "2020-06-17",
	})
	if got != 0 {
		t.Errorf("диапазон вне даты записи: ожидалось 0 категорий, получили %d", got)
	}

	// произвольный диапазон важнее периода: период "day" запись бы отсеял
	got = spendingFor(t, pool, database.SpendingFilter{
		TimePeriod: "day",
		Category:   category,
		StartDate:  "2020-06-01",
		EndDate:    "2020-06-30",
	})
	if got != 1 {
		t.Errorf("диапазон должен иметь приоритет над периодом: ожидалась 1 категория, получили %d", got)
	}
}

func TestListProcessedRecordsFilters(t *testing.T) {
	pool := testPool(t)

	recordID := fmt.Sprintf("test-%d", time.Now().UnixNano())
	category := fmt.Sprintf("Test List %d", time.Now().UnixNano())
	insertProcessed(t, pool, recordID, category, -5.00)
	defer database.DeleteRecords(pool, []string{recordID})

	records, total, err := database.ListProcessedRecords(pool,
		database.RecordFilter{Category: category, Search: "test rec"},
		database.NormalizePage(1, 10))
	if err != nil {
		t.Fatalf("ошибка получения обработанных записей: %v", err)
	}
	if total != 1 || len(records) != 1 {
		t.Fatalf("ожидалась 1 запись, получили total=%d, len=%d", total, len(records))
	}
	if records[0].RecordIDBank != recordID {
		t.Errorf("идентификатор не совпадает: получили %q, хотели %q", records[0].RecordIDBank, recordID)
	}

	categories, err := database.GetDistinctCategories(pool)
	if err != nil {
		t.Fatalf("ошибка получения списка категорий: %v", err)
	}
	found := false
	for _, c := range categories {
		if c == category {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("категория %q отсутствует в списке", category)
	}
}

func TestPromoteRecords(t *testing.T) {
	pool := testPool(t)

	recordID := fmt.Sprintf("test-%d", time.Now().UnixNano())
	_, err := pool.Exec(context.Background(), `
		INSERT INTO unprocessed_records (record_id_bank, transaction_date, currency_date, account, description, amount, currency)
		VALUES ($1, CURRENT_DATE, CURRENT_DATE, 'test-account', 'promote me', -10.00, 'EUR')`,
		recordID)
	if err != nil {
		t.Fatalf("ошибка вставки необработанной записи: %v", err)
	}

	promoted, err := database.PromoteRecords(pool, []string{recordID}, "Promoted")
	if err != nil {
		t.Fatalf("ошибка переноса записей: %v", err)
	}
	if promoted != 1 {
		t.Errorf("ожидалась 1 перенесённая запись, получили %d", promoted)
	}
	defer database.DeleteRecords(pool, []string{recordID})

	records, _, err := database.ListProcessedRecords(pool,
		database.RecordFilter{Category: "Promoted", Search: "promote me"},
		database.NormalizePage(1, 10))
	if err != nil {
		t.Fatalf("ошибка получения обработанных записей: %v", err)
	}
	if len(records) == 0 {
		t.Fatalf("перенесённая запись не найдена среди обработанных")
	}

	// исходная строка должна исчезнуть из unprocessed_records
	var leftover int
	if err := pool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM unprocessed_records WHERE record_id_bank = $1", recordID).Scan(&leftover); err != nil {
		t.Fatalf("ошибка проверки остатка: %v", err)
	}
	if leftover != 0 {
		t.Errorf("запись %q осталась в unprocessed_records после переноса", recordID)
	}
}

func TestGetMonthlyBalances(t *testing.T) {
	pool := testPool(t)

	recordID := fmt.Sprintf("test-%d", time.Now().UnixNano())
	insertProcessed(t, pool, recordID, "Balances", -1.00)
	defer database.DeleteRecords(pool, []string{recordID})

	monthly, err := database.GetMonthlyBalances(pool)
	if err != nil {
		t.Fatalf("ошибка получения месячных балансов: %v", err)
	}
	if len(monthly) == 0 {
		t.Fatalf("ожидался хотя бы один месячный баланс")
	}
	for _, b := range monthly {
		if b.Status != "positive" && b.Status != "negative" && b.Status != "zero" {
			t.Errorf("недопустимый статус баланса: %q", b.Status)
		}
		if b.MonthName == "Unknown" {
			t.Errorf("не определено имя месяца для %d", b.Month)
		}
	}

	yearly, err := database.GetYearlyBalances(pool)
	if err != nil {
		t.Fatalf("ошибка получения годовых балансов: %v", err)
	}
	if len(yearly) == 0 {
		t.Fatalf("ожидался хотя бы один годовой баланс")
	}
}
