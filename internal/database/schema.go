package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS unprocessed_records (
	id SERIAL PRIMARY KEY,
	record_id_bank TEXT NOT NULL,
	transaction_date DATE NOT NULL,
	currency_date DATE,
	account TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	amount NUMERIC(14,2) NOT NULL DEFAULT 0,
	currency TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS processed_records (
	id SERIAL PRIMARY KEY,
	record_id_bank TEXT NOT NULL UNIQUE,
	transaction_date DATE NOT NULL,
	currency_date DATE,
	account TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	amount NUMERIC(14,2) NOT NULL DEFAULT 0,
	currency TEXT NOT NULL DEFAULT '',
	category TEXT
);

CREATE INDEX IF NOT EXISTS idx_processed_records_transaction_date
	ON processed_records (transaction_date);
CREATE INDEX IF NOT EXISTS idx_processed_records_category
	ON processed_records (category);
CREATE INDEX IF NOT EXISTS idx_unprocessed_records_transaction_date
	ON unprocessed_records (transaction_date);
`

// EnsureSchema создаёт таблицы записей, если их ещё нет
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ошибка создания схемы БД: %v", err)
	}
	return nil
}
