package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"sportzino-backend/auth"
	"sportzino-backend/config"
	"sportzino-backend/handlers"
	"sportzino-backend/models"
	"sportzino-backend/services"
	"sportzino-backend/utils"
	"sportzino-backend/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // ID scans and transfer screenshots
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	if err := utils.InitR2(); err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}
	if !utils.R2Enabled() {
		log.Println("⚠️  R2 not configured, uploads are stored on local disk")
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.FreeplayEntry{},
		&models.Transaction{},
		&models.KYCSubmission{},
		&models.ManualPayment{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	if err := utils.EnsureUploadDir(); err != nil {
		log.Fatal("failed to ensure upload dir:", err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	} else {
		log.Println("⚠️  REDIS_ADDR not set, leaderboard served from SQL only")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	leaderboardService := services.NewLeaderboardService(db, rdb)
	accountService := services.NewAccountService(db, leaderboardService)
	freeplayService := services.NewFreeplayService(db)
	kycService := services.NewKYCService(db)
	paymentService := services.NewPaymentService(db)

	// The configured admin becomes a role on the account, resolved at login.
	if err := accountService.PromoteAdmin(cfg.AdminEmail); err != nil {
		log.Printf("admin bootstrap failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	creditWorker := workers.NewPaymentCreditWorker(db)
	go workers.PollPayments(ctx, creditWorker, 30*time.Second)

	leaderboardService.StartRebuildScheduler()

	handlers.SetupAuthRoutes(app, accountService, tokens)
	handlers.SetupReferralRoutes(app, freeplayService, leaderboardService, tokens)
	handlers.SetupKYCRoutes(app, kycService, accountService, tokens)
	handlers.SetupPaymentRoutes(app, paymentService, tokens)

	app.Static("/uploads", "./uploads")

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on %s", cfg.HTTPAddress())
	log.Println("✅ Payment credit worker running (every 30s)")
	log.Println("✅ Leaderboard rebuild scheduler running (every 1m)")

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
