package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spendlens/spendlens/models"
)

// ListUnprocessedRecords возвращает страницу необработанных записей
// (свежие первыми) и их общее количество
func ListUnprocessedRecords(pool *pgxpool.Pool, page PageParams) ([]models.UnprocessedRecord, int, error) {
	var total int
	if err := pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM unprocessed_records").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчёта необработанных записей: %v", err)
	}

	query := `
		SELECT id, record_id_bank, transaction_date, currency_date, account, description, amount, currency
		FROM unprocessed_records
		ORDER BY transaction_date DESC
		LIMIT $1 OFFSET $2`

	rows, err := pool.Query(context.Background(), query, page.PerPage, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка при получении необработанных записей: %v", err)
	}
	defer rows.Close()

	var records []models.UnprocessedRecord
	for rows.Next() {
		var r models.UnprocessedRecord
		if err := rows.Scan(
			&r.ID,
			&r.RecordIDBank,
			&r.TransactionDate,
			&r.CurrencyDate,
			&r.Account,
			&r.Description,
			&r.Amount,
			&r.Currency,
		); err != nil {
			return nil, 0, fmt.Errorf("ошибка чтения необработанной записи: %v", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка обхода необработанных записей: %v", err)
	}

	return records, total, nil
}

// PromoteRecords переносит необработанные записи в processed_records в одной
// транзакции: копирует строки (с необязательной категорией) и удаляет исходные.
// Уже существующие record_id_bank пропускаются.
func PromoteRecords(pool *pgxpool.Pool, recordIDs []string, category string) (int64, error) {
	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия транзакции: %v", err)
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO processed_records (record_id_bank, transaction_date, currency_date, account, description, amount, currency, category)
		SELECT record_id_bank, transaction_date, currency_date, account, description, amount, currency, NULLIF($2, '')
		FROM unprocessed_records
		WHERE record_id_bank = ANY($1)
		ON CONFLICT (record_id_bank) DO NOTHING`

	result, err := tx.Exec(ctx, insertQuery, recordIDs, category)
	if err != nil {
		return 0, fmt.Errorf("ошибка переноса записей: %v", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM unprocessed_records WHERE record_id_bank = ANY($1)`, recordIDs); err != nil {
		return 0, fmt.Errorf("ошибка удаления перенесённых записей: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("ошибка фиксации транзакции: %v", err)
	}

	return result.RowsAffected(), nil
}

// CleanupPromotedRecords удаляет из unprocessed_records строки, уже попавшие
// в processed_records (запускается по расписанию)
func CleanupPromotedRecords(pool *pgxpool.Pool) (int64, error) {
	query := `
		DELETE FROM unprocessed_records u
		WHERE EXISTS (
			SELECT 1 FROM processed_records p
			WHERE p.record_id_bank = u.record_id_bank
		)`

	result, err := pool.Exec(context.Background(), query)
	if err != nil {
		return 0, fmt.Errorf("ошибка очистки перенесённых записей: %v", err)
	}
	return result.RowsAffected(), nil
}
