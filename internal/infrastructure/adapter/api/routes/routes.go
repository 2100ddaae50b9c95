package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/printa-studio/credits-ledger/internal/domain/port/core"
	"github.com/printa-studio/credits-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/printa-studio/credits-ledger/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	ledgerHandler *handler.LedgerHandler,
	usageHandler *handler.UsageHandler,
	identityHandler *handler.IdentityHandler,
) {
	// Credit ledger routes
	creditRoutes := router.Group("/credits")
	{
		creditRoutes.GET("/:owner/balance", ledgerHandler.GetBalance)
		creditRoutes.POST("/:owner/spend", ledgerHandler.Spend)
		creditRoutes.POST("/:owner/add", ledgerHandler.AddCredits)
		creditRoutes.GET("/:owner/transactions", ledgerHandler.ListTransactions)
		creditRoutes.GET("/:owner/verify", ledgerHandler.Verify)
	}

	// Free-tier usage routes
	usageRoutes := router.Group("/usage")
	{
		usageRoutes.GET("/:owner", usageHandler.GetUsage)
		usageRoutes.POST("/:owner/increment", usageHandler.IncrementUsage)
	}

	// Identity reconciliation routes
	identityRoutes := router.Group("/identity")
	{
		identityRoutes.POST("/migrate", identityHandler.Migrate)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
