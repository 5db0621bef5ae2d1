package router

import (
	"time"

	"adultease/api"
	"adultease/config"
	_ "adultease/docs"
	"adultease/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter builds the route table.
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())

	categoryHandler := api.NewCategoryHandler()
	ledgerHandler := api.NewLedgerHandler()
	summaryHandler := api.NewSummaryHandler()
	budgetHandler := api.NewBudgetHandler()
	exportHandler := api.NewExportHandler()

	// Read endpoints, all user-scoped.
	r.GET("/finance-categories/:userId", categoryHandler.List)
	r.GET("/finance-rows/:userId", ledgerHandler.List)
	r.GET("/finance-sums/:userId", summaryHandler.Sums)
	r.GET("/finance-category-sums/:userId", summaryHandler.CategorySums)
	r.GET("/finance-budget/:userId", budgetHandler.Entries)
	r.GET("/finance-budget-summary/:userId", budgetHandler.Summary)

	// Exports.
	export := r.Group("/finance-export")
	{
		export.GET("/csv/:userId", exportHandler.ExportCSV)
		export.GET("/json/:userId", exportHandler.ExportJSON)
		export.GET("/excel/:userId", exportHandler.ExportExcel)
	}

	// Mutations go through the rate limiter.
	window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	mutations := r.Group("")
	mutations.Use(middleware.MutationRateLimit(cfg.RateLimit.MaxMutations, window))
	{
		mutations.POST("/insert-tracking-row", ledgerHandler.Insert)
		mutations.POST("/update-tracking-row", ledgerHandler.Update)
		mutations.POST("/delete-tracking-row", ledgerHandler.Delete)
		mutations.POST("/insert-category", categoryHandler.Create)
		mutations.POST("/delete-category", categoryHandler.Delete)
		mutations.POST("/update-budget-income-table", budgetHandler.UpdateIncomeTable)
		mutations.POST("/update-budget-fixed-table", budgetHandler.UpdateFixedTable)
		mutations.POST("/update-budget-variable-table", budgetHandler.UpdateVariableTable)
	}

	// Swagger docs.
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware handles cross-origin requests from the SPA.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
