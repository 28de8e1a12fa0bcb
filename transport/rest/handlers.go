package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-tally/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tally/internal/entity"
)

type gameManager interface {
	StartSession(ctx context.Context) (*entity.SessionView, error)
	GetSession(ctx context.Context, sessionID string) (*entity.SessionView, error)
	MakeMove(ctx context.Context, sessionID string, cell int) (*entity.SessionView, error)
	ResetRound(ctx context.Context, sessionID string) (*entity.SessionView, error)
	ResetMatch(ctx context.Context, sessionID string) (*entity.SessionView, error)
	EndSession(ctx context.Context, sessionID string) error
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger      *slog.Logger
	gameManager gameManager
}

func newHandlers(logger *slog.Logger, gameManager gameManager) *handlers {
	return &handlers{
		logger:      logger.With("component", "rest"),
		gameManager: gameManager,
	}
}

func (that *handlers) startSession(w http.ResponseWriter, r *http.Request) {
	view, err := that.gameManager.StartSession(r.Context())
	if err != nil {
		that.writeError(w, "startSession", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, view)
}

func (that *handlers) getSession(w http.ResponseWriter, r *http.Request) {
	view, err := that.gameManager.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		that.writeError(w, "getSession", err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *handlers) endSession(w http.ResponseWriter, r *http.Request) {
	if err := that.gameManager.EndSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		that.writeError(w, "endSession", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) makeMove(w http.ResponseWriter, r *http.Request) {
	var request moveRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Cell == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be {\"cell\": <0-8>}"})
		return
	}

	view, err := that.gameManager.MakeMove(r.Context(), chi.URLParam(r, "sessionID"), *request.Cell)
	if err != nil {
		that.writeError(w, "makeMove", err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *handlers) resetRound(w http.ResponseWriter, r *http.Request) {
	view, err := that.gameManager.ResetRound(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		that.writeError(w, "resetRound", err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *handlers) resetMatch(w http.ResponseWriter, r *http.Request) {
	view, err := that.gameManager.ResetMatch(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		that.writeError(w, "resetMatch", err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidCell):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, apperror.ErrRoundNotInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := errorStatus(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		message = http.StatusText(status)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
