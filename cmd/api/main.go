package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fortune-api/internal/config"
	"fortune-api/internal/db"
	apihttp "fortune-api/internal/http"
	"fortune-api/internal/llm"
	"fortune-api/internal/repository"
	"fortune-api/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var results repository.MBTIResultRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.Ping(ctx, pool); err != nil {
			logger.Fatal("db ping", zap.Error(err))
		}
		if err := db.EnsureSchema(ctx, pool); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		results = repository.NewPgMBTIResultRepository(pool)
	} else {
		logger.Warn("database not configured, result history disabled")
	}

	submitWindow := time.Duration(cfg.SubmitWindowMinutes) * time.Minute
	var (
		drafts  service.AnswerDraftStore
		limiter service.SubmissionLimiter
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory drafts", zap.Error(err))
		} else {
			drafts = service.NewRedisAnswerDraftStore(redisClient)
			limiter = service.NewRedisSubmissionLimiter(redisClient, submitWindow, cfg.SubmitMaxPerWindow)
		}
		cancel()
	}
	if drafts == nil {
		drafts = service.NewMemoryAnswerDraftStore()
		limiter = service.NewMemorySubmissionLimiter(submitWindow, cfg.SubmitMaxPerWindow)
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	var llmClient llm.LLMClient
	if cfg.LLMAPIKey != "" {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	} else {
		logger.Warn("llm api key not configured, readings use static profiles")
	}

	mbtiSvc := service.NewMBTIService(logger, results, drafts, limiter, time.Duration(cfg.DraftTTLMinutes)*time.Minute)
	readingSvc := service.NewReadingService(llmClient, logger)
	mbtiHandler := apihttp.NewMBTIHandler(logger, mbtiSvc, readingSvc)
	router := apihttp.NewRouter(logger, mbtiHandler, jwtSvc)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}
