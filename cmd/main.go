package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"webgen_server/config"
	"webgen_server/internal/ai"
	"webgen_server/internal/api"
	"webgen_server/internal/github"
	"webgen_server/internal/images"
	"webgen_server/internal/logger"
	"webgen_server/internal/prompts"
)

func main() {
	// Load .env before viper reads the environment.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zlog.Sync() //nolint:errcheck

	ctx := context.Background()

	var aiClient ai.Client
	switch cfg.AIProvider {
	case "openai":
		aiClient = ai.NewOpenAIClient(cfg.OpenAIKey, cfg.AIModel, zlog)
	default:
		aiClient, err = ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.AIModel)
		if err != nil {
			zlog.Fatal("failed to create Gemini client", zap.Error(err))
		}
	}
	zlog.Info("AI client initialized",
		zap.String("provider", cfg.AIProvider),
		zap.String("model", cfg.AIModel),
	)

	imageClient := images.NewClient(cfg.PexelsAPIKey, zlog)
	promptBuilder := prompts.NewBuilder(imageClient)
	pusher := github.NewManager(cfg.GitHubToken, zlog)

	apiHandler := api.NewAPIHandler(aiClient, promptBuilder, pusher, zlog)

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(zlog))
	router.Use(cors.Default())

	api.RegisterRoutes(router, apiHandler)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Write timeout is generous: a single LLM round trip can take minutes.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("starting API server", zap.String("address", cfg.ServerAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("API server listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zlog.Info("shutting down server", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	} else {
		zlog.Info("server stopped gracefully")
	}
}

// requestLogger logs one line per request with method, path, status and latency.
func requestLogger(zlog *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		zlog.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
