package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dumbuddy/internal/cache"
	"dumbuddy/internal/config"
	"dumbuddy/internal/game"
	"dumbuddy/internal/repository"
	"dumbuddy/internal/service"
	"dumbuddy/internal/transport/rest"
)

// @title dumBuddy Game API
// @version 1.0
// @description Party card game rooms with AI deck generation
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	aiConfig, err := config.LoadAI()
	if err != nil {
		log.Fatal("Failed to load AI config:", err)
	}
	log.Printf("AI Config:")
	log.Printf("  Model:   %s", aiConfig.Model)
	if aiConfig.IsEnabled() {
		log.Println("  API Key: configured ✓")
	} else {
		log.Println("  API Key: NOT SET (built-in deck only)")
	}

	// Redis is optional; without it the analytics log stays in memory.
	var eventCache cache.EventCache
	if cfg.RedisURI != "" {
		redisAddr := cfg.RedisURI
		if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
			redisAddr = redisAddr[8:]
		}

		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatal("Failed to ping Redis:", err)
		}
		log.Println("Connected to Redis")
		eventCache = cache.NewEventCache(rdb)
	} else {
		log.Println("REDIS_URI not set, analytics cache disabled")
	}

	// Mongo is optional; it only archives analytics events, never room state.
	var eventRepo repository.EventRepo
	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			log.Fatal("Failed to ping MongoDB:", err)
		}
		log.Println("Connected to MongoDB")
		eventRepo = repository.NewEventRepo(mongoClient.Database(cfg.MongoDB))
	} else {
		log.Println("MONGO_URI not set, analytics archive disabled")
	}

	generator := service.NewGeneratorService(aiConfig)
	registry := game.NewRegistry(generator)
	analyticsSvc := service.NewAnalyticsService(eventCache, eventRepo)
	authSvc := service.NewAuthService(cfg)

	container := &rest.Container{
		Config:      cfg,
		Registry:    registry,
		Generator:   generator,
		Analytics:   analyticsSvc,
		AuthService: authSvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/rooms")
		log.Println("  GET/POST /v1/rooms/{roomId}")
		log.Println("  POST /v1/rooms/{roomId}/join")
		log.Println("  POST /v1/ai-questions")
		log.Println("  POST /v1/analytics/events")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/admin/summary")
		log.Println("  GET  /v1/admin/events")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
