package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventBoard/internal/config"
	"eventBoard/internal/http-server/handlers/board/showBoard"
	"eventBoard/internal/http-server/handlers/event/listEvents"
	"eventBoard/internal/http-server/handlers/status"
	"eventBoard/internal/http-server/middleware/mwlogger"
	"eventBoard/internal/lib/logger/handlers/slogpretty"
	"eventBoard/internal/lib/logger/sl"
	"eventBoard/internal/metrics"
	"eventBoard/internal/render"
	"eventBoard/internal/storage/memory"
	"eventBoard/internal/upstream"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event board", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage := memory.New()
	client := upstream.New(cfg.Upstream)

	// Initial load. A failure is not fatal: the board serves an error
	// page until a refresh succeeds.
	if err := refreshEvents(client, storage, log); err != nil {
		log.Error("initial events load failed", sl.Err(err))
	}

	renderer := render.New()

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(middleware.Compress(5, "text/html", "application/json"))

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", showBoard.New(log, renderer, storage))
	router.Get("/api/events", listEvents.New(log, storage))
	router.Get("/_status", status.New(log, storage))
	router.Handle("/metrics", promhttp.Handler())

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		ticker := time.NewTicker(cfg.Upstream.RefreshInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := refreshEvents(client, storage, log); err != nil {
					log.Error("failed to refresh events", sl.Err(err))
				}
			case <-stop:
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}

// refreshEvents replaces the snapshot wholesale on success and leaves it
// untouched on failure. One attempt per call.
func refreshEvents(client *upstream.Client, storage *memory.Storage, log *slog.Logger) error {
	events, err := client.Refresh()
	if err != nil {
		metrics.UpstreamFetches.WithLabelValues(metrics.OutcomeError).Inc()
		return err
	}

	metrics.UpstreamFetches.WithLabelValues(metrics.OutcomeOK).Inc()
	storage.Replace(events)

	log.Info("events snapshot refreshed", slog.Int("count", len(events)))

	return nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
