package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"ai-intro-scoring-service/internal/app"
	"ai-intro-scoring-service/internal/config"
	"ai-intro-scoring-service/internal/events"
	httpapi "ai-intro-scoring-service/internal/http"
	"ai-intro-scoring-service/internal/observability"
	"ai-intro-scoring-service/internal/service/engine/embed"
	"ai-intro-scoring-service/internal/service/engine/languagetool"
	"ai-intro-scoring-service/internal/service/engine/vader"
	"ai-intro-scoring-service/internal/service/rubric"
)

func main() {
	cfg := config.Load()

	application := app.New(cfg)
	if err := application.Start(); err != nil {
		log.Fatal().Err(err).Msg("application start failed")
	}

	// Engines are constructed once and shared across all requests. Each is
	// stateless or read-only, so no locking is required.
	grammar := languagetool.New(cfg.Engines.GrammarURL, cfg.Engines.GrammarLanguage, cfg.Engines.GrammarTimeout)
	sentiment := vader.New()
	embedder := embed.New(cfg.Engines.EmbedURL, cfg.Engines.EmbedModel, cfg.Engines.EmbedTimeout)

	analyzer := rubric.NewAnalyzer(cfg.Rubric(), grammar, sentiment, embedder)

	publisher := events.New(&events.Config{
		Enabled:   cfg.Kafka.Enabled,
		Brokers:   cfg.Kafka.Brokers,
		Topic:     cfg.Kafka.Topic,
		Principal: cfg.Kafka.Principal,
	})
	defer publisher.Close()

	obsServer := observability.NewServer(":" + cfg.Service.MetricsPort)
	obsServer.Start()

	handler := httpapi.NewHandler(application, analyzer, publisher)
	apiServer := &http.Server{
		Addr:         ":" + cfg.Service.HTTPPort,
		Handler:      httpapi.NewRouter(handler, cfg.Service.CORSOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", apiServer.Addr).Msg("Intro scoring service started")
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http serve failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("api server shutdown error")
	}
	if err := obsServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("observability server shutdown error")
	}
	application.Shutdown()
}
