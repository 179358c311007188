package api

import (
	"os"
	"path/filepath"

	"github.com/wcib/ipoportal/internal/config"
	"github.com/wcib/ipoportal/internal/middleware"
	"github.com/wcib/ipoportal/internal/service"
	"github.com/wcib/ipoportal/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(
	r *gin.Engine,
	cfg *config.Config,
	marketService service.MarketService,
	overrideService service.OverrideService,
	userService service.UserService,
	kycService service.KYCService,
	ipoService service.IPOService,
	portfolioService service.PortfolioService,
	txService service.TransactionService,
	commissionService service.CommissionService,
	documentService service.DocumentService,
	adminService service.AdminService,
	logService service.LogService,
	wsHandler *ws.WebSocketHandler,
) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	marketHandler := NewMarketHandler(marketService, overrideService)
	userHandler := NewUserHandler(userService, kycService, logService, cfg)
	ipoHandler := NewIPOHandler(ipoService, userService, logService)
	portfolioHandler := NewPortfolioHandler(portfolioService)
	transactionHandler := NewTransactionHandler(txService, userService, logService)
	commissionHandler := NewCommissionHandler(commissionService)
	documentHandler := NewDocumentHandler(documentService)
	adminHandler := NewAdminHandler(adminService, userService, kycService, logService)

	wd, err := os.Getwd()
	if err != nil {
		return
	}
	swaggerJSONPath := filepath.Join(wd, "..", "..", "docs", "swagger.json")
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/docs/swagger.json")))
	r.GET("/docs/swagger.json", func(c *gin.Context) {
		c.File(swaggerJSONPath)
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/market/status", marketHandler.GetMarketStatus)
		v1.GET("/market/schedule", marketHandler.GetSchedule)
		v1.POST("/users/register", userHandler.Register)
		v1.POST("/users/login", userHandler.Login)
		v1.GET("/ipos", ipoHandler.GetAllIPOs)
		v1.GET("/ipos/:id", ipoHandler.GetIPO)
		v1.GET("/ipos/:id/documents", documentHandler.GetDocumentsByIPO)
		v1.GET("/documents", documentHandler.GetAllDocuments)
		v1.GET("/documents/:id", documentHandler.GetDocument)

		user := v1.Group("/").Use(middleware.UserAuthMiddleware(cfg))
		{
			user.GET("/users/me", userHandler.GetProfile)
			user.POST("/users/kyc", userHandler.SubmitKYC)
			user.POST("/ipos/:id/subscribe", ipoHandler.Subscribe)
			user.GET("/portfolio/investments", portfolioHandler.GetInvestments)
			user.GET("/portfolio/summary", portfolioHandler.GetSummary)
			user.GET("/portfolio/sectors", portfolioHandler.GetSectorAllocation)
			user.POST("/transactions/deposit", transactionHandler.Deposit)
			user.GET("/transactions", transactionHandler.GetTransactions)
			user.GET("/transactions/stats", transactionHandler.GetStats)
			user.POST("/commissions/calculate", commissionHandler.CalculateCommission)
		}

		admin := v1.Group("/admin").Use(middleware.AdminAuthMiddleware(cfg))
		{
			admin.GET("/override", marketHandler.GetOverrideStatus)
			admin.POST("/override", marketHandler.ActivateOverride)
			admin.DELETE("/override", marketHandler.DeactivateOverride)
			admin.DELETE("/override/clear", marketHandler.ClearOverride)
			admin.GET("/override/logs", marketHandler.GetOverrideAuditLog)
			admin.GET("/stats", adminHandler.GetPlatformStats)
			admin.GET("/users", adminHandler.GetAllUsers)
			admin.PUT("/users/:id/status", adminHandler.SetUserStatus)
			admin.GET("/kyc", adminHandler.GetAllKYC)
			admin.GET("/kyc/pending", adminHandler.GetPendingKYC)
			admin.PUT("/kyc/:id/review", adminHandler.ReviewKYC)
			admin.GET("/logs", adminHandler.GetActivityLogs)
			admin.POST("/ipos", ipoHandler.CreateIPO)
			admin.PUT("/ipos/:id", ipoHandler.UpdateIPO)
			admin.GET("/transactions", transactionHandler.GetAllTransactions)
			admin.GET("/commissions", commissionHandler.GetAllRules)
			admin.GET("/commissions/summary", commissionHandler.GetSummary)
			admin.GET("/commissions/:id", commissionHandler.GetRule)
			admin.POST("/commissions", commissionHandler.CreateRule)
			admin.PUT("/commissions/:id", commissionHandler.UpdateRule)
			admin.DELETE("/commissions/:id", commissionHandler.DeleteRule)
			admin.POST("/documents", documentHandler.CreateDocument)
			admin.PUT("/documents/:id/status", documentHandler.SetDocumentStatus)
			admin.DELETE("/documents/:id", documentHandler.DeleteDocument)
		}
	}

	r.GET("/ws", wsHandler.HandleConnection)
}
