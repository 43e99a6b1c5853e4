package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type registry interface {
	ListTables(ctx context.Context) ([]entity.Table, error)
	Table(ctx context.Context, number int) (entity.Table, error)
	FindTableOf(playerID string) (int, bool)
}

type playerDirectory interface {
	GetPlayer(ctx context.Context, id string) (*entity.Player, error)
}

// Server - read-only lobby API. All state changes go through the websocket channel.
type Server struct {
	logger   *slog.Logger
	registry registry
	players  playerDirectory
}

func New(logger *slog.Logger, registry registry, players playerDirectory) *Server {
	return &Server{
		logger:   logger.With("component", "rest"),
		registry: registry,
		players:  players,
	}
}

func (that *Server) Router() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/ping", that.pingHandler).Methods(http.MethodGet)
	router.HandleFunc("/tables", that.listTablesHandler).Methods(http.MethodGet)
	router.HandleFunc("/tables/{number:[0-9]+}", that.tableHandler).Methods(http.MethodGet)
	router.HandleFunc("/players/{id}", that.playerHandler).Methods(http.MethodGet)
	router.HandleFunc("/players/{id}/table", that.playerTableHandler).Methods(http.MethodGet)

	return router
}

func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
