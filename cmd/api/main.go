package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	v1 "github.com/AnujYadav540/SkillSwap/cmd/api/router/v1"
	cacheadapter "github.com/AnujYadav540/SkillSwap/internal/infrastructure/cache/adapter"
	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/database"
	queueadapter "github.com/AnujYadav540/SkillSwap/internal/infrastructure/queue/adapter"
	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/realtime"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/chat/application/task"
	matchusecase "github.com/AnujYadav540/SkillSwap/internal/pkg/match/application/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to the database on startup
	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := database.NewPoolFromEnv(connectCtx)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(connectCtx, pool); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}

	cache, err := cacheadapter.NewRedisAdapter()
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer cache.Close()

	queueClient, err := queueadapter.NewAsynqClientFromEnv()
	if err != nil {
		log.Fatalf("failed to create queue client: %v", err)
	}
	defer queueClient.Close()

	queueServer, err := queueadapter.NewAsynqServer()
	if err != nil {
		log.Fatalf("failed to create queue server: %v", err)
	}

	registry := realtime.NewRegistry()
	defer registry.Close()

	task.RegisterNotifyMessageTask(queueServer, registry)

	go func() {
		if err := queueServer.Run(ctx); err != nil {
			log.Printf("queue server stopped: %v", err)
		}
	}()

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	v1.RegisterRoutes(r, pool, cache, queueClient, registry, matchThresholdKm(), matchCacheTTL())

	srv := &http.Server{
		Addr:    ":" + port(),
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()
	log.Printf("listening on %s", srv.Addr)

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	if err := queueServer.Stop(shutdownCtx); err != nil {
		log.Printf("queue shutdown: %v", err)
	}
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}

func matchThresholdKm() float64 {
	raw := os.Getenv("MATCH_ONLINE_THRESHOLD_KM")
	if raw == "" {
		return matchusecase.DefaultOnlineThresholdKm
	}
	km, err := strconv.ParseFloat(raw, 64)
	if err != nil || km <= 0 {
		log.Printf("Warning: invalid MATCH_ONLINE_THRESHOLD_KM %q, using default", raw)
		return matchusecase.DefaultOnlineThresholdKm
	}
	return km
}

func matchCacheTTL() time.Duration {
	raw := os.Getenv("MATCH_CACHE_TTL")
	if raw == "" {
		return 0 // use the use case default
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		log.Printf("Warning: invalid MATCH_CACHE_TTL %q, using default", raw)
		return 0
	}
	return ttl
}
