package models

import "time"

type ProcessedRecord struct {
	ID              int        `json:"id"`
	RecordIDBank    string     `json:"record_id_bank"`
	TransactionDate time.Time  `json:"transaction_date"`
	CurrencyDate    *time.Time `json:"currency_date"`
	Account         string     `json:"account"`
	Description     string     `json:"description"`
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency"`
	Category        *string    `json:"category"`
}

// CategoryName возвращает категорию или пустую строку для некатегоризованных записей
func (r ProcessedRecord) CategoryName() string {
	if r.Category == nil {
		return ""
	}
	return *r.Category
}

type UnprocessedRecord struct {
	ID              int        `json:"id"`
	RecordIDBank    string     `json:"record_id_bank"`
	TransactionDate time.Time  `json:"transaction_date"`
	CurrencyDate    *time.Time `json:"currency_date"`
	Account         string     `json:"account"`
	Description     string     `json:"description"`
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency"`
}
