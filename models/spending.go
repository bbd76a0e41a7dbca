package models

type CategorySpending struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type MonthlyBalance struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	MonthName string  `json:"month_name"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}

type YearlyBalance struct {
	Year   int     `json:"year"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}
