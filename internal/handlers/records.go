package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spendlens/spendlens/internal/database"
)

// UpdateCategoriesHandler массово присваивает категорию обработанным записям.
// Принимает форму с record_ids (через запятую) и new_category.
func UpdateCategoriesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawIDs := c.PostForm("record_ids")
		newCategory := c.PostForm("new_category")

		if rawIDs == "" || newCategory == "" {
			c.String(http.StatusBadRequest, "Missing record IDs or category")
			return
		}

		recordIDs := splitRecordIDs(rawIDs)
		if len(recordIDs) == 0 {
			c.String(http.StatusBadRequest, "No valid record IDs provided")
			return
		}

		updated, err := database.UpdateRecordCategories(pool, recordIDs, newCategory)
		if err != nil {
			log.Printf("Ошибка обновления категорий: %v", err)
			c.String(http.StatusInternalServerError, "Error updating categories: %v", err)
			return
		}
		log.Printf("Категория %q присвоена %d записям (запрошено %d)", newCategory, updated, len(recordIDs))

		c.String(http.StatusOK, "Successfully updated %d records to category '%s'", len(recordIDs), newCategory)
	}
}

// DeleteRecordsHandler массово удаляет обработанные записи по record_ids
func DeleteRecordsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawIDs := c.PostForm("record_ids")

		if rawIDs == "" {
			c.String(http.StatusBadRequest, "Missing record IDs")
			return
		}

		recordIDs := splitRecordIDs(rawIDs)
		if len(recordIDs) == 0 {
			c.String(http.StatusBadRequest, "No valid record IDs provided")
			return
		}

		deleted, err := database.DeleteRecords(pool, recordIDs)
		if err != nil {
			log.Printf("Ошибка удаления записей: %v", err)
			c.String(http.StatusInternalServerError, "Error deleting records: %v", err)
			return
		}
		log.Printf("Удалено %d записей (запрошено %d)", deleted, len(recordIDs))

		c.String(http.StatusOK, "Successfully deleted %d records", len(recordIDs))
	}
}

// PromoteRecordsHandler переносит необработанные записи в обработанные,
// категория необязательна
func PromoteRecordsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawIDs := c.PostForm("record_ids")
		category := c.PostForm("category")

		if rawIDs == "" {
			c.String(http.StatusBadRequest, "Missing record IDs")
			return
		}

		recordIDs := splitRecordIDs(rawIDs)
		if len(recordIDs) == 0 {
			c.String(http.StatusBadRequest, "No valid record IDs provided")
			return
		}

		promoted, err := database.PromoteRecords(pool, recordIDs, category)
		if err != nil {
			log.Printf("Ошибка переноса записей: %v", err)
			c.String(http.StatusInternalServerError, "Error promoting records: %v", err)
			return
		}

		c.String(http.StatusOK, "Successfully promoted %d records", promoted)
	}
}
