package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/custodia-labs/botdesk-client/internal/adapters/driven/api"
	"github.com/custodia-labs/botdesk-client/internal/adapters/driven/auth"
	"github.com/custodia-labs/botdesk-client/internal/adapters/driven/localfile"
	redisadapter "github.com/custodia-labs/botdesk-client/internal/adapters/driven/redis"
	"github.com/custodia-labs/botdesk-client/internal/core/ports/driven"
	"github.com/custodia-labs/botdesk-client/internal/core/services"
	"github.com/custodia-labs/botdesk-client/internal/reconciler"
	"github.com/custodia-labs/botdesk-client/internal/state"
)

var version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := newLogger(getEnv("LOG_LEVEL", "info"))
	slog.SetDefault(logger)

	log.Printf("botdesk %s starting", version)

	// Configuration from environment
	baseURL := getEnv("API_URL", "http://localhost:8000/api/v1")
	redisURL := getEnv("REDIS_URL", "")
	storagePath := getEnv("STORAGE_PATH", defaultStoragePath())
	httpTimeout := time.Duration(getEnvInt("HTTP_TIMEOUT_SEC", 30)) * time.Second
	summaryInterval := time.Duration(getEnvInt("SUMMARY_POLL_SEC", 10)) * time.Second
	statusInterval := time.Duration(getEnvInt("STATUS_POLL_SEC", 5)) * time.Second

	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutdown signal received, stopping...")
		cancel()
	}()

	// ===== Client storage (Redis if available, otherwise a local file) =====
	var tokenStore driven.TokenStore
	var prefStore driven.PreferenceStore
	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()

		tokenStore = redisadapter.NewTokenStore(redisClient)
		prefStore = redisadapter.NewPreferenceStore(redisClient)
		log.Println("Using Redis client storage")
	} else {
		fileStore := localfile.NewStore(storagePath)
		tokenStore = fileStore
		prefStore = fileStore
		log.Printf("Using local storage at %s", storagePath)
	}

	// ===== State container =====
	store := state.NewStore(state.Config{
		Preferences: prefStore,
		Logger:      logger,
	})
	store.Hydrate(ctx)

	// ===== API gateway =====
	gateway := api.NewClient(api.Config{
		BaseURL: baseURL,
		Timeout: httpTimeout,
		Tokens:  tokenStore,
		Logger:  logger,
		OnSessionExpired: func() {
			store.ClearSession()
			store.Notify(state.NotificationWarning, "Session expired, please sign in again")
		},
	})

	// ===== Core services =====
	inspector := auth.NewInspector()
	authService := services.NewAuthService(gateway, tokenStore, prefStore, inspector)
	documentService := services.NewDocumentService(gateway)
	chatbotService := services.NewChatbotService(gateway)
	chatService := services.NewChatService(gateway)
	companyService := services.NewCompanyService(gateway)

	// ===== Startup session check =====
	session, err := authService.SessionInfo(ctx)
	if err != nil {
		log.Fatalf("Failed to read stored session: %v", err)
	}
	if !session.Authenticated {
		log.Println("No stored session; sign in before starting document reconciliation")
		return
	}
	logger.Info("stored session found", "email", session.Email, "expires_at", session.ExpiresAt)

	if user, err := authService.CurrentUser(ctx); err != nil {
		logger.Warn("session check against backend failed", "error", err)
	} else {
		store.SetUser(user)
	}
	if company, err := companyService.Current(ctx); err != nil {
		logger.Warn("company fetch failed", "error", err)
	} else {
		store.SetCompany(company)
	}

	// Prime the chatbot and conversation sections so the views have data
	// before their own fetches land
	if bots, err := chatbotService.List(ctx); err != nil {
		logger.Warn("chatbot list fetch failed", "error", err)
	} else {
		store.SetChatbots(bots)
		for _, bot := range bots {
			threads, err := chatService.Threads(ctx, bot.ID)
			if err != nil {
				logger.Warn("thread list fetch failed", "chatbot_id", bot.ID, "error", err)
				continue
			}
			store.SetThreads(bot.ID, threads)
		}
	}

	// ===== Document reconciler =====
	rec := reconciler.New(reconciler.Config{
		Documents:       documentService,
		State:           store,
		Logger:          logger,
		SummaryInterval: summaryInterval,
		StatusInterval:  statusInterval,
	})
	if err := rec.Start(ctx); err != nil {
		log.Fatalf("Failed to start reconciler: %v", err)
	}

	log.Println("botdesk running, press Ctrl+C to stop")
	<-ctx.Done()

	rec.Stop()
	log.Println("botdesk stopped")
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "botdesk.json"
	}
	return home + "/.botdesk/storage.json"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
