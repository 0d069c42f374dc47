/*
Package main is the entry point for the interview assistant.

It loads configuration (optionally from a .env file), initializes the global logger, opens
the configured persistence backend, builds the model client and the session registry, serves
HTTP, and shuts everything down gracefully on SIGINT or SIGTERM.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"interviewbot/internal/app/interview"
	"interviewbot/internal/app/llm"
	"interviewbot/internal/app/session"
	"interviewbot/internal/app/store"
	"interviewbot/internal/app/user"
	"interviewbot/internal/configs"
	"interviewbot/internal/handler"
	"interviewbot/internal/pkg/logx"
	"interviewbot/internal/view"
)

func main() {
	// A missing .env file is fine; the environment may already be populated.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "WARN: Failed to read .env file: %v\n", err)
	}

	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.InitGlobalLogger(cfg.IsDevelopment(), cfg.LogLevel)
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("store_backend", cfg.StoreBackend).
		Str("llm_provider", cfg.LLMProvider).
		Str("llm_mode", cfg.LLMMode).
		Msg("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := openBackend(ctx, cfg)
	if err != nil {
		logx.Fatal(err, "Failed to open store backend", "backend", cfg.StoreBackend)
	}
	defer backend.Close()

	client, err := llm.NewClient(llmConfig(cfg))
	if err != nil {
		logx.Fatal(err, "Failed to build model client")
	}
	if apiKey(cfg) == "" {
		logx.Warn("Model API key is not set; model calls will report it", "provider", cfg.LLMProvider)
	}

	renderer, err := view.New()
	if err != nil {
		logx.Fatal(err, "Failed to parse templates")
	}

	creds, err := user.New(cfg.PasswordHashing, cfg.BcryptCost)
	if err != nil {
		logx.Fatal(err, "Failed to set up password hashing")
	}

	sessions := session.NewManager(cfg.SessionTTL)

	router, stopLimiters := handler.Router(&handler.AppDeps{
		Config:    cfg,
		Sessions:  sessions,
		Interview: interview.NewService(backend, client, creds),
		View:      renderer,
	})

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:        serverAddr,
		Handler:     router,
		ReadTimeout: 5 * time.Second,
		// No WriteTimeout: an action response stays open for the whole model call.
		IdleTimeout: 120 * time.Second,
	}

	go func() {
		logx.Info("Interview Assistant starting", "addr", "http://localhost"+serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Error(err, "Server forced to shutdown")
	}

	stopLimiters()
	sessions.Shutdown()

	logx.Info("Server gracefully stopped.")
}

// openBackend opens the persistence backend selected by STORE_BACKEND.
func openBackend(ctx context.Context, cfg *configs.AppConfig) (store.Backend, error) {
	switch cfg.StoreBackend {
	case configs.StorePostgres:
		return store.NewPostgresBackend(ctx, cfg.DatabaseDSN)
	case configs.StoreS3:
		return store.NewS3Backend(ctx, store.S3Config{
			Bucket:          cfg.S3BucketName,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			KeyPrefix:       cfg.S3KeyPrefix,
		})
	default:
		return store.NewFileBackend(cfg.UserDBPath, cfg.ChatDBPath), nil
	}
}

func apiKey(cfg *configs.AppConfig) string {
	if cfg.LLMProvider == string(llm.ProviderGemini) {
		return cfg.GoogleAPIKey
	}
	return cfg.NvidiaAPIKey
}

func llmConfig(cfg *configs.AppConfig) llm.Config {
	return llm.Config{
		Provider: llm.Provider(cfg.LLMProvider),
		Mode:     llm.Mode(cfg.LLMMode),
		APIKey:   apiKey(cfg),
		Timeout:  cfg.LLMTimeout,
	}
}
