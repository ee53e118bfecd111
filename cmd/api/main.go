package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookrec/internal/app"
	"bookrec/internal/book"
	"bookrec/internal/config"
	"bookrec/internal/httpx"
	"bookrec/internal/platform/logger"
	"bookrec/internal/preference"
	"bookrec/internal/profile"
	"bookrec/internal/readinglist"
	"bookrec/internal/recommend"
	"bookrec/internal/search"
	"bookrec/internal/user"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxBodyBytes = 1 << 20

type handlers struct {
	books       *book.HTTPHandler
	search      *search.HTTPHandler
	users       *user.HTTPHandler
	preferences *preference.HTTPHandler
	profiles    *profile.HTTPHandler
	library     *readinglist.HTTPHandler
	recommend   *recommend.HTTPHandler
}

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()
	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("startup failed", "error", err)
	}
	defer a.Close()
	log.Info("database connection OK", "dsn", app.RedactDSN(cfg.DBDSN))

	h := handlers{
		books:       book.NewHTTPHandler(a.Books),
		search:      search.NewHTTPHandler(a.Search),
		users:       user.NewHTTPHandler(a.Users),
		preferences: preference.NewHTTPHandler(a.Preferences),
		profiles:    profile.NewHTTPHandler(a.Profiles),
		library:     readinglist.NewHTTPHandler(a.Library),
		recommend:   recommend.NewHTTPHandler(a.Recommend),
	}

	router := http.NewServeMux()
	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := a.DB.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", promhttp.Handler())
	registerRoutes(router, h)

	rateLimiter := httpx.NewRateLimitMiddleware(float64(cfg.RateLimitRPS), cfg.RateLimitBurst)
	defer rateLimiter.Close()

	handler := httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORSOrigins),
		rateLimiter.Middleware,
		httpx.RequestSizeLimitMiddleware(maxBodyBytes),
	)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		log.Error("server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

func registerRoutes(router *http.ServeMux, h handlers) {
	router.HandleFunc("GET /v1/books/search", h.search.Search)
	router.HandleFunc("GET /v1/books/search/genre/{genre}", h.search.ByGenre)
	router.HandleFunc("GET /v1/books/search/author/{author}", h.search.ByAuthor)
	router.HandleFunc("GET /v1/books/{providerID}", h.books.GetByProviderID)

	router.HandleFunc("POST /v1/users", h.users.Create)
	router.HandleFunc("GET /v1/users/{id}", h.users.Get)
	router.HandleFunc("GET /v1/users/{id}/profile", h.profiles.Get)
	router.HandleFunc("GET /v1/users/{id}/preferences", h.preferences.Get)
	router.HandleFunc("PUT /v1/users/{id}/preferences", h.preferences.Replace)
	router.HandleFunc("GET /v1/users/{id}/library", h.library.List)
	router.HandleFunc("POST /v1/users/{id}/library", h.library.Add)
	router.HandleFunc("DELETE /v1/users/{id}/library/{providerID}", h.library.Remove)
	router.HandleFunc("PUT /v1/users/{id}/library/{providerID}/rating", h.library.Rate)
	router.HandleFunc("GET /v1/users/{id}/recommendations", h.recommend.Get)
}
