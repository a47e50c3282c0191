package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	"github.com/Yasinqurni/m-app-server/internal/config"
	"github.com/Yasinqurni/m-app-server/internal/handler"
	"github.com/Yasinqurni/m-app-server/internal/middleware"
	"github.com/Yasinqurni/m-app-server/internal/repository"
	"github.com/Yasinqurni/m-app-server/internal/usecase"
)

func main() {
	cfg := config.Load()
	if cfg.DB.Driver != "postgres" {
		log.Fatalf("Unsupported DB driver: %s", cfg.DB.Driver)
	}

	db, err := sql.Open(cfg.DB.Driver, cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	// Repositories
	productRepo := repository.NewProductRepository(db)
	cashflowRepo := repository.NewCashflowRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// Usecases
	productUsecase := usecase.NewProductUsecase(productRepo)
	cashflowUsecase := usecase.NewCashflowUsecase(cashflowRepo)
	transactionUsecase := usecase.NewTransactionUsecase(transactionRepo, productRepo)

	// Handlers
	productHandler := handler.NewProductHandler(productUsecase)
	cashflowHandler := handler.NewCashflowHandler(cashflowUsecase)
	transactionHandler := handler.NewTransactionHandler(transactionUsecase)
	healthHandler := handler.NewHealthHandler(db)

	// Setup router
	router := gin.Default()
	router.Use(middleware.LoggingMiddleware())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	router.GET("/health", healthHandler.HealthCheck)

	v1 := router.Group("/api/v1")

	product := v1.Group("/product")
	{
		product.POST("", productHandler.CreateProduct)
		product.GET("", productHandler.ListProducts)
		product.GET("/:id", productHandler.GetProduct)
		product.PUT("/:id", productHandler.UpdateProduct)
		product.DELETE("/:id", productHandler.DeleteProduct)
	}

	cashflow := v1.Group("/cashflow")
	{
		cashflow.POST("", cashflowHandler.CreateCashflow)
		cashflow.GET("", cashflowHandler.ListCashflows)
		cashflow.GET("/:id", cashflowHandler.GetCashflow)
		cashflow.PUT("/:id", cashflowHandler.UpdateCashflow)
		cashflow.DELETE("/:id", cashflowHandler.DeleteCashflow)
	}

	transaction := v1.Group("/transaction")
	{
		transaction.POST("", transactionHandler.CreateTransaction)
		transaction.GET("", transactionHandler.ListTransactions)
		transaction.GET("/:id", transactionHandler.GetTransaction)
		transaction.PUT("/:id", transactionHandler.UpdateTransaction)
		transaction.DELETE("/:id", transactionHandler.DeleteTransaction)
	}

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Printf("Server starting on port %d", cfg.App.Port)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
