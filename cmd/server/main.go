package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/wcib/ipoportal/internal/api"
	"github.com/wcib/ipoportal/internal/cache"
	"github.com/wcib/ipoportal/internal/config"
	"github.com/wcib/ipoportal/internal/market"
	"github.com/wcib/ipoportal/internal/middleware"
	"github.com/wcib/ipoportal/internal/repository"
	"github.com/wcib/ipoportal/internal/service"
	"github.com/wcib/ipoportal/internal/ws"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	var ipoCache service.IPOCache
	if redisCache, err := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB); err != nil {
		log.Printf("Redis unavailable, IPO listings served without cache: %v", err)
	} else {
		ipoCache = redisCache
	}

	clock := market.SystemClock{}

	userRepo := repository.NewUserRepository(client, cfg.MongoDB, "users")
	ipoRepo := repository.NewIPORepository(client, cfg.MongoDB, "ipos")
	investmentRepo := repository.NewInvestmentRepository(client, cfg.MongoDB, "investments")
	txRepo := repository.NewTransactionRepository(client, cfg.MongoDB, "transactions")
	commissionRepo := repository.NewCommissionRepository(client, cfg.MongoDB, "commission_rules")
	documentRepo := repository.NewDocumentRepository(client, cfg.MongoDB, "documents")
	kycRepo := repository.NewKYCRepository(client, cfg.MongoDB, "kyc_submissions")
	logRepo := repository.NewActivityLogRepository(client, cfg.MongoDB, "activity_logs")
	overrideRepo := repository.NewOverrideRepository(client, cfg.MongoDB)

	overrideService := service.NewOverrideService(overrideRepo, clock)
	if err := overrideService.Initialize(); err != nil {
		log.Fatalf("Failed to initialize market override state: %v", err)
	}

	marketService := service.NewMarketService(overrideService, clock)
	userService := service.NewUserService(userRepo)
	kycService := service.NewKYCService(kycRepo, userRepo)
	commissionService := service.NewCommissionService(commissionRepo, txRepo)
	ipoService := service.NewIPOService(ipoRepo, investmentRepo, txRepo, userRepo, marketService, commissionService, ipoCache, clock)
	portfolioService := service.NewPortfolioService(investmentRepo, txRepo)
	transactionService := service.NewTransactionService(txRepo, userRepo)
	documentService := service.NewDocumentService(documentRepo)
	logService := service.NewLogService(logRepo)
	adminService := service.NewAdminService(userRepo, ipoRepo, investmentRepo, txRepo, kycRepo, commissionService)

	if err := config.EnsureAdminUser(userRepo, cfg.AdminEmail, cfg.AdminPass); err != nil {
		log.Fatalf("Failed to ensure admin user: %v", err)
	}

	hub := ws.NewHub()
	go hub.Run()
	go hub.RunStatusRefresher(marketService, time.Minute)
	wsHandler := ws.NewWebSocketHandler(hub, marketService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())

	api.SetupRoutes(r, cfg, marketService, overrideService, userService, kycService, ipoService,
		portfolioService, transactionService, commissionService, documentService, adminService,
		logService, wsHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	log.Printf("Starting server on %s", addr)
	log.Printf("WebSocket endpoint available at %s/ws", cfg.BaseURL)
	log.Printf("Swagger UI available at %s/swagger/index.html", cfg.BaseURL)

	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
