package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/generator"
	"github.com/passgen/passgen-go/internal/handler"
	"github.com/passgen/passgen-go/internal/history"
	"github.com/passgen/passgen-go/internal/middleware"
	"github.com/passgen/passgen-go/internal/service"
	"github.com/passgen/passgen-go/internal/wordlist"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	// A configured wordlist that fails to load disables only the memorable
	// variant; random and PIN generation stay available.
	var vocab *wordlist.Vocabulary
	if cfg.WordlistPath != "" {
		var err error
		vocab, err = wordlist.LoadFile(cfg.WordlistPath)
		if err != nil {
			slog.Warn("wordlist load failed — memorable passwords disabled", "path", cfg.WordlistPath, "error", err)
		} else {
			slog.Info("wordlist loaded", "path", cfg.WordlistPath, "words", vocab.Len())
		}
	} else {
		vocab = wordlist.Default()
		slog.Info("using built-in wordlist", "words", vocab.Len())
	}

	hist := history.NewRing(cfg.HistoryCap)
	svc := service.NewPasswordService(generator.CryptoSource, vocab, hist)
	h := handler.NewPasswordHandler(svc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

		r.Post("/api/v1/generate", h.HandleGenerate)
		r.Post("/api/v1/evaluate", h.HandleEvaluate)

		r.Get("/api/v1/history", h.HandleListHistory)
		r.Delete("/api/v1/history", h.HandleClearHistory)
		r.Get("/api/v1/history/{entry_id}/export", h.HandleExport)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
