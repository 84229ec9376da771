// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/danielhkuo/songvote/auth"
	"github.com/danielhkuo/songvote/cliparse"
	"github.com/danielhkuo/songvote/display"
	"github.com/danielhkuo/songvote/game"
	"github.com/danielhkuo/songvote/middleware"
	"github.com/danielhkuo/songvote/models"
)

// EventHandler owns the single engine of a running event. Every command
// goes through dispatch, one at a time, and its Change is forwarded to
// the board.
type EventHandler struct {
	mu      sync.Mutex
	engine  *game.Engine
	board   *display.Board
	eventID string
	cfg     cliparse.Config
}

func NewEventHandler(engine *game.Engine, eventID string, cfg cliparse.Config) *EventHandler {
	return &EventHandler{
		engine:  engine,
		board:   display.NewBoard(engine.Snapshot()),
		eventID: eventID,
		cfg:     cfg,
	}
}

func (h *EventHandler) dispatch(cmd game.Command) (game.Change, string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	player, _ := h.engine.CurrentPlayer()
	change := game.Dispatch(h.engine, cmd)
	h.board.Apply(change)

	if change.Err != nil {
		slog.Warn("command rejected", "command", cmd.Kind, "song", cmd.Song, "reason", change.Err)
	} else {
		slog.Info("command applied",
			"command", cmd.Kind,
			"player", player.Name,
			"song", cmd.Song,
			"points", change.Points,
			"game_over", change.Snapshot.GameOver,
		)
	}
	return change, h.board.Status()
}

// GetEvent handles GET /event
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	resp := models.EventResponse{
		EventID:  h.eventID,
		Rules:    models.NewRulesInfo(h.engine.Rules()),
		Songs:    h.engine.Songs(),
		Players:  h.engine.Players(),
		Snapshot: h.engine.Snapshot(),
	}
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetRanking handles GET /event/ranking
// Live order by combined score, not the frozen board order
func (h *EventHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	ranking := h.engine.Ranking()
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, models.RankingResponse{Rankings: ranking})
}

// GetBoard handles GET /display
func (h *EventHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	resp := models.BoardResponse{
		Status:   h.board.Status(),
		GameOver: h.board.Snapshot().GameOver,
		Rows:     h.board.Rows(),
	}
	h.mu.Unlock()

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetStandings handles GET /display/standings
func (h *EventHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	text := h.board.Standings()
	h.mu.Unlock()

	middleware.TextResponse(w, http.StatusOK, text)
}

// AssignPoint handles POST /turn/votes
func (h *EventHandler) AssignPoint(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	var req models.AssignPointRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Song == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "song is required")
		return
	}

	h.respond(w, http.StatusCreated, game.Assign(req.Song))
}

// FinalizeTurn handles POST /turn/finalize
func (h *EventHandler) FinalizeTurn(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	h.respond(w, http.StatusOK, game.Finalize())
}

// ResetTurn handles POST /turn/reset
func (h *EventHandler) ResetTurn(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	h.respond(w, http.StatusOK, game.Reset())
}

func (h *EventHandler) respond(w http.ResponseWriter, okStatus int, cmd game.Command) {
	change, status := h.dispatch(cmd)
	if change.Err != nil {
		code, message := rejection(change.Err)
		middleware.ErrorResponse(w, code, message)
		return
	}

	middleware.JSONResponse(w, okStatus, models.CommandResponse{
		Command:  string(cmd.Kind),
		Points:   change.Points,
		Status:   status,
		Snapshot: change.Snapshot,
	})
}

func (h *EventHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	key := r.Header.Get(models.HeaderPresenterKey)
	if err := auth.ValidatePresenterKey(h.eventID, key, h.cfg.PresenterKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid presenter key")
		return false
	}
	return true
}

// rejection maps an engine rejection to a status code and presenter message
func rejection(err error) (int, string) {
	switch {
	case errors.Is(err, game.ErrUnknownSong):
		return http.StatusNotFound, "Song not found"
	case errors.Is(err, game.ErrGameOver):
		return http.StatusConflict, "Game is over. No more points can be assigned."
	case errors.Is(err, game.ErrTurnAllocated):
		return http.StatusConflict, "All points have been distributed. Finalize turn."
	case errors.Is(err, game.ErrTurnIncomplete):
		return http.StatusConflict, "Not all points have been assigned yet."
	case errors.Is(err, game.ErrAlreadyVoted):
		return http.StatusConflict, "This song already received points this turn."
	}
	return http.StatusBadRequest, err.Error()
}
