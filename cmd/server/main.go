package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/learnhq/backend/internal/cache"
	"github.com/learnhq/backend/internal/config"
	"github.com/learnhq/backend/internal/db"
	"github.com/learnhq/backend/internal/handlers"
	"github.com/learnhq/backend/internal/otp"
	"github.com/learnhq/backend/internal/repository"
	"github.com/learnhq/backend/internal/service"
	"github.com/learnhq/backend/internal/sms"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("✓ Configuration loaded")

	// 2. Initialize database and cache connections
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DBUrl)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer pool.Close()

	redisClient, err := cache.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to redis:", err)
	}
	defer redisClient.Close()

	// 3. Select the SMS provider for the configured mode
	var provider sms.Provider
	apiKeyConfigured := true
	if cfg.SMSMode == config.SMSModeDisabled {
		provider = sms.NewStub()
		log.Println("⚠ SMS disabled: stub provider active, OTP is", sms.StubCode)
	} else {
		provider = sms.NewClient(cfg.SMSEndpoint(), cfg.SMSAPIKey)
		apiKeyConfigured = cfg.SMSAPIKey != ""
		if !apiKeyConfigured {
			log.Println("⚠ SMS_API_KEY is not set; OTP endpoints will report a configuration error")
		}
	}

	// 4. Initialize layers
	sessionStore := otp.NewRedisStore(redisClient)
	otpManager := otp.NewManager(provider, sessionStore)

	identityRepo := repository.NewIdentityRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	progressRepo := repository.NewProgressRepository(pool)
	leaderboardRepo := repository.NewLeaderboardRepository(redisClient)
	profileCache := repository.NewProfileCache(redisClient)

	authService := service.NewAuthService(otpManager, identityRepo, profileRepo, cfg.CountryCode, cfg.JWTSecret)
	profileService := service.NewProfileService(profileRepo, profileCache, leaderboardRepo)
	progressService := service.NewProgressService(progressRepo)
	leaderboardService := service.NewLeaderboardService(leaderboardRepo, identityRepo)

	otpHandler := handlers.NewOTPHandler(otpManager, apiKeyConfigured)
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService, cfg.JWTSecret)
	progressHandler := handlers.NewProgressHandler(progressService, cfg.JWTSecret)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	healthHandler := handlers.NewHealthHandler()

	// 5. Setup Gin router
	router := gin.Default()
	router.Use(handlers.CORSMiddleware())

	healthHandler.RegisterRoutes(router)
	otpHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router)
	profileHandler.RegisterRoutes(router)
	progressHandler.RegisterRoutes(router)
	leaderboardHandler.RegisterRoutes(router)

	// 6. Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Println("🚀 Server starting on :" + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	// Graceful shutdown with 5 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("✓ Server exited")
}
