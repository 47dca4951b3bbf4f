// Package main is the entry point for the chatbot API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/leadpilot-ai/chatbot-platform/internal/config"
	"github.com/leadpilot-ai/chatbot-platform/internal/events"
	"github.com/leadpilot-ai/chatbot-platform/internal/handler"
	"github.com/leadpilot-ai/chatbot-platform/internal/intent"
	"github.com/leadpilot-ai/chatbot-platform/internal/llm"
	"github.com/leadpilot-ai/chatbot-platform/internal/middleware"
	"github.com/leadpilot-ai/chatbot-platform/internal/respond"
	"github.com/leadpilot-ai/chatbot-platform/internal/scoring"
	"github.com/leadpilot-ai/chatbot-platform/internal/service"
	"github.com/leadpilot-ai/chatbot-platform/internal/session"
	"github.com/leadpilot-ai/chatbot-platform/internal/tenant"
	"github.com/leadpilot-ai/chatbot-platform/pkg/logger"
	"github.com/leadpilot-ai/chatbot-platform/pkg/tracing"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting chatbot API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, handler.ServiceName, cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(context.Background(), tp)
		}
	}

	llmClient := newLLMClient(cfg, log)
	publisher := newPublisher(ctx, cfg, log)
	defer publisher.Close()

	registry := tenant.NewRegistry()
	sessions := session.NewStore()

	reaper := session.NewReaper(sessions, cfg.SessionTTL, cfg.SessionReapInterval, log)
	go reaper.Run(ctx)

	generator := respond.NewGenerator(llmClient, cfg.LLMTimeout, respond.NewRandomPicker(), log)
	chatSvc := service.NewChatService(registry, sessions, intent.NewDetector(), scoring.NewScorer(), generator, publisher, log)

	chatHandler := handler.NewChatHandler(chatSvc, log)
	healthHandler := handler.NewHealthHandler(registry, sessions, publisher)
	configHandler := handler.NewClientConfigHandler(registry)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))
	r.NotFound(handler.NotFound)

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/chat", chatHandler.Chat)
	r.Get("/clients/{client_id}/config", configHandler.Get)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}

// newLLMClient picks a provider from the configured API keys. A nil client
// is valid: the response generator then skips straight to fillers.
func newLLMClient(cfg *config.Config, log *logger.Logger) llm.Client {
	provider := llm.Provider(cfg.DefaultLLM)
	switch {
	case provider == llm.ProviderAnthropic && cfg.AnthropicAPIKey != "":
	case provider == llm.ProviderOpenAI && cfg.OpenAIAPIKey != "":
	case cfg.AnthropicAPIKey != "":
		provider = llm.ProviderAnthropic
	case cfg.OpenAIAPIKey != "":
		provider = llm.ProviderOpenAI
	default:
		log.Warn("no LLM API key configured, generative replies disabled")
		return nil
	}

	client, err := llm.NewClient(provider, apiKeyFor(cfg, provider))
	if err != nil {
		log.Warn("failed to create LLM client, generative replies disabled",
			zap.String("provider", string(provider)),
			zap.Error(err),
		)
		return nil
	}
	log.Info("LLM client ready", zap.String("provider", string(provider)))
	return client
}

func apiKeyFor(cfg *config.Config, provider llm.Provider) string {
	if provider == llm.ProviderAnthropic {
		return cfg.AnthropicAPIKey
	}
	return cfg.OpenAIAPIKey
}

// newPublisher connects to NATS when configured; otherwise lead events are
// discarded.
func newPublisher(ctx context.Context, cfg *config.Config, log *logger.Logger) events.Publisher {
	if cfg.NATSURL == "" {
		log.Info("NATS not configured, lead events disabled")
		return events.NoopPublisher{}
	}

	p, err := events.Connect(ctx, events.Config{URL: cfg.NATSURL, Token: cfg.NATSToken}, log)
	if err != nil {
		log.Warn("failed to connect to NATS, lead events disabled", zap.Error(err))
		return events.NoopPublisher{}
	}
	log.Info("NATS connected", zap.String("url", cfg.NATSURL))
	return p
}
