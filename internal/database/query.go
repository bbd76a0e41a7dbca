package database

// Допустимые поля сортировки для списка обработанных записей.
// Имена подставляются в ORDER BY, поэтому всё вне этого списка отбрасывается.
var processedSortFields = map[string]bool{
	"record_id_bank":   true,
	"transaction_date": true,
	"currency_date":    true,
	"account":          true,
	"description":      true,
	"amount":           true,
	"currency":         true,
	"category":         true,
}

type PageParams struct {
	Page    int
	PerPage int
}

// NormalizePage приводит параметры пагинации к допустимым значениям:
// страница не меньше 1, размер страницы от 1 до 100 (иначе 10)
func NormalizePage(page, perPage int) PageParams {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}
	return PageParams{Page: page, PerPage: perPage}
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func TotalPages(count, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return (count + perPage - 1) / perPage
}

// NormalizeSort проверяет поле и направление сортировки по белому списку
func NormalizeSort(sortBy, sortOrder string) (string, string) {
	if !processedSortFields[sortBy] {
		sortBy = "transaction_date"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}
	return sortBy, sortOrder
}
