package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spendlens/spendlens/models"
)

type RecordFilter struct {
	Category  string
	Search    string
	SortBy    string
	SortOrder string
}

// ListProcessedRecords возвращает страницу обработанных записей с фильтром по
// категории, поиском по описанию (ILIKE) и сортировкой, а также общее число
// записей, попадающих под фильтры
func ListProcessedRecords(pool *pgxpool.Pool, filter RecordFilter, page PageParams) ([]models.ProcessedRecord, int, error) {
	sortBy, sortOrder := NormalizeSort(filter.SortBy, filter.SortOrder)

	var (
		whereClauses []string
		args         []interface{}
	)
	if filter.Category != "" {
		args = append(args, filter.Category)
		whereClauses = append(whereClauses, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		whereClauses = append(whereClauses, fmt.Sprintf("description ILIKE $%d", len(args)))
	}

	where := ""
	if len(whereClauses) > 0 {
		where = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM processed_records" + where
	if err := pool.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчёта обработанных записей: %v", err)
	}

	args = append(args, page.PerPage, page.Offset())
	// sortBy/sortOrder прошли белый список, подстановка в ORDER BY безопасна
	query := fmt.Sprintf(`
		SELECT id, record_id_bank, transaction_date, currency_date, account, description, amount, currency, category
		FROM processed_records%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d`,
		where, sortBy, sortOrder, len(args)-1, len(args))

	rows, err := pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка при получении обработанных записей: %v", err)
	}
	defer rows.Close()

	var records []models.ProcessedRecord
	for rows.Next() {
		var r models.ProcessedRecord
		if err := rows.Scan(
			&r.ID,
			&r.RecordIDBank,
			&r.TransactionDate,
			&r.CurrencyDate,
			&r.Account,
			&r.Description,
			&r.Amount,
			&r.Currency,
			&r.Category,
		); err != nil {
			return nil, 0, fmt.Errorf("ошибка чтения обработанной записи: %v", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка обхода обработанных записей: %v", err)
	}

	return records, total, nil
}

// GetDistinctCategories возвращает список категорий для выпадающего фильтра
func GetDistinctCategories(pool *pgxpool.Pool) ([]string, error) {
	query := `
		SELECT DISTINCT category
		FROM processed_records
		WHERE category IS NOT NULL
		ORDER BY category`

	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка категорий: %v", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("ошибка чтения категории: %v", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обхода категорий: %v", err)
	}

	return categories, nil
}

// UpdateRecordCategories присваивает категорию всем записям с указанными
// банковскими идентификаторами
func UpdateRecordCategories(pool *pgxpool.Pool, recordIDs []string, newCategory string) (int64, error) {
	query := `
		UPDATE processed_records
		SET category = $1
		WHERE record_id_bank = ANY($2)`

	result, err := pool.Exec(context.Background(), query, newCategory, recordIDs)
	if err != nil {
		return 0, fmt.Errorf("ошибка обновления категорий: %v", err)
	}
	return result.RowsAffected(), nil
}

// DeleteRecords удаляет записи по банковским идентификаторам
func DeleteRecords(pool *pgxpool.Pool, recordIDs []string) (int64, error) {
	query := `
		DELETE FROM processed_records
		WHERE record_id_bank = ANY($1)`

	result, err := pool.Exec(context.Background(), query, recordIDs)
	if err != nil {
		return 0, fmt.Errorf("ошибка удаления записей: %v", err)
	}
	return result.RowsAffected(), nil
}
