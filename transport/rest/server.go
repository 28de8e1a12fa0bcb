package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - builds the HTTP routes of the board UI.
func NewRouter(logger *slog.Logger, gameManager gameManager) http.Handler {
	handlers := newHandlers(logger, gameManager)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/ping", pingHandler)

	router.Route("/sessions", func(r chi.Router) {
		r.Post("/", handlers.startSession)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", handlers.getSession)
			r.Delete("/", handlers.endSession)
			r.Post("/moves", handlers.makeMove)
			r.Post("/round/reset", handlers.resetRound)
			r.Post("/match/reset", handlers.resetMatch)
		})
	})

	return router
}

// Start - serves the router until the context is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
