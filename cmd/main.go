package main

import (
	"context"
	"flag"
	"html/template"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"

	"github.com/spendlens/spendlens/internal/charts"
	"github.com/spendlens/spendlens/internal/config"
	"github.com/spendlens/spendlens/internal/database"
	"github.com/spendlens/spendlens/internal/handlers"
	"github.com/spendlens/spendlens/internal/metrics"
	"github.com/spendlens/spendlens/utils"
)

// ScheduleRecordCleanup раз в сутки убирает из unprocessed_records строки,
// уже перенесённые в processed_records
func ScheduleRecordCleanup(pool *pgxpool.Pool) {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		deleted, err := database.CleanupPromotedRecords(pool)
		if err != nil {
			log.Printf("Ошибка очистки перенесённых записей: %v", err)
			return
		}
		if deleted > 0 {
			log.Printf("Удалено %d уже перенесённых записей", deleted)
		}
	})
	if err != nil {
		log.Fatalf("Ошибка настройки CRON-задачи очистки: %v", err)
	}
	c.Start()
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

func main() {
	seed := flag.Int("seed", 0, "сгенерировать N тестовых записей в каждой таблице и выйти")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	pool, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatalf("Ошибка подготовки схемы БД: %v", err)
	}

	if *seed > 0 {
		utils.GenerateUnprocessedRecords(pool, *seed)
		utils.GenerateProcessedRecords(pool, *seed)
		log.Printf("Сгенерировано по %d тестовых записей в каждой таблице", *seed)
		return
	}

	ScheduleRecordCleanup(pool)

	r := gin.Default()
	r.Use(CORSMiddleware())
	r.Use(RequestIDMiddleware())
	r.Use(metrics.Middleware())

	r.SetFuncMap(template.FuncMap{
		"categoryColor": utils.CategoryColor,
		"add":           func(a, b int) int { return a + b },
	})
	r.LoadHTMLGlob("templates/*")

	r.GET("/", handlers.IndexHandler(pool))
	r.GET("/admin", handlers.AdminHandler(pool))
	r.GET("/record_transformer", handlers.RecordTransformerHandler(pool))
	r.POST("/update_categories", handlers.UpdateCategoriesHandler(pool))
	r.POST("/delete_records", handlers.DeleteRecordsHandler(pool))
	r.POST("/promote_records", handlers.PromoteRecordsHandler(pool))

	api := r.Group("/api")
	{
		api.GET("/spending", handlers.SpendingHandler(pool))
		api.GET("/balances", handlers.BalancesHandler(pool))
	}

	r.GET("/charts/spending.png", handlers.SpendingChartHandler(pool, charts.NewChartGenerator()))
	r.GET("/health", handlers.HealthHandler(pool))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
		log.Fatalf("Ошибка при запуске сервера: %v", err)
	}
}
