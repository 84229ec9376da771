// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/songvote/handlers"
	"github.com/danielhkuo/songvote/middleware"
)

func NewRouter(eventHandler *handlers.EventHandler) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Event state (public)
	mux.HandleFunc("GET /event", middleware.WithLogging(eventHandler.GetEvent))
	mux.HandleFunc("GET /event/ranking", middleware.WithLogging(eventHandler.GetRanking))

	// Spectator board (public)
	mux.HandleFunc("GET /display", middleware.WithLogging(eventHandler.GetBoard))
	mux.HandleFunc("GET /display/standings", middleware.WithLogging(eventHandler.GetStandings))

	// Presenter commands (require X-Presenter-Key)
	mux.HandleFunc("POST /turn/votes", middleware.WithLogging(eventHandler.AssignPoint))
	mux.HandleFunc("POST /turn/finalize", middleware.WithLogging(eventHandler.FinalizeTurn))
	mux.HandleFunc("POST /turn/reset", middleware.WithLogging(eventHandler.ResetTurn))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("songvote API v1"))
	})

	return mux
}
