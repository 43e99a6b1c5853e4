package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
)

type tablesResponse struct {
	Tables []entity.Table `json:"tables"`
}

type playerTableResponse struct {
	PlayerID string        `json:"player_id"`
	Table    *entity.Table `json:"table"`
}

type playerResponse struct {
	Player      *entity.Player `json:"player"`
	TableNumber int            `json:"table_number,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) listTablesHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "listTablesHandler")

	tables, err := that.registry.ListTables(r.Context())
	if err != nil {
		log.Error("failed to list tables", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list tables"})

		return
	}

	that.writeJSON(w, http.StatusOK, tablesResponse{Tables: tables})
}

func (that *Server) tableHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "tableHandler")

	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid table number"})
		return
	}

	table, err := that.registry.Table(r.Context(), number)

	switch {
	case errors.Is(err, apperror.ErrNoSuchTable):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case err != nil:
		log.Error("failed to get table", "table", number, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to get table"})
	default:
		that.writeJSON(w, http.StatusOK, table)
	}
}

// playerHandler - the stored player and, when seated, the number of their table.
func (that *Server) playerHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "playerHandler")

	playerID := mux.Vars(r)["id"]

	player, err := that.players.GetPlayer(r.Context(), playerID)

	switch {
	case errors.Is(err, repository.ErrPlayerNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: repository.ErrPlayerNotFound.Error()})
	case err != nil:
		log.Error("failed to get player", "playerID", playerID, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to get player"})
	default:
		number, _ := that.registry.FindTableOf(playerID)
		that.writeJSON(w, http.StatusOK, playerResponse{Player: player, TableNumber: number})
	}
}

func (that *Server) playerTableHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "playerTableHandler")

	playerID := mux.Vars(r)["id"]

	number, ok := that.registry.FindTableOf(playerID)
	if !ok {
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrNotSeated.Error()})
		return
	}

	table, err := that.registry.Table(r.Context(), number)
	if err != nil {
		log.Error("failed to get table", "table", number, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to get table"})

		return
	}

	that.writeJSON(w, http.StatusOK, playerTableResponse{PlayerID: playerID, Table: &table})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
